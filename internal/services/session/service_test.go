package session_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"moneybox/internal/domain"
	"moneybox/internal/services/session"
)

func TestSession_Lifecycle(t *testing.T) {
	var s domain.TokenStore = session.New()

	_, ok := s.Token()
	require.False(t, ok)

	s.SetToken("abc")
	tok, ok := s.Token()
	require.True(t, ok)
	require.Equal(t, "abc", tok)

	s.Clear()
	_, ok = s.Token()
	require.False(t, ok)
}

func TestSession_EmptyTokenIsSignedOut(t *testing.T) {
	s := session.New()
	s.SetToken("")
	require.False(t, s.Authenticated())
}

func TestSession_Independent(t *testing.T) {
	a, b := session.New(), session.New()
	a.SetToken("a")
	require.True(t, a.Authenticated())
	require.False(t, b.Authenticated())
}
