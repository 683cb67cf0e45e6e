package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"moneybox/internal/app"
	"moneybox/internal/provider/providertest"
	"moneybox/internal/services/session"
	"moneybox/internal/viewmodels/accounts"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestViewModelsShareSession(t *testing.T) {
	fake := &providertest.Fake{
		LoginResponse:   providertest.LoginOK(),
		AccountResponse: providertest.Accounts(),
	}
	a := app.New(fake, session.New(), "device-1")
	ctx := context.Background()

	lvm := a.NewLogin()
	<-lvm.Login(ctx, "demo@example.com", "pw")
	require.True(t, lvm.LoggedIn.Get())
	require.Equal(t, "device-1", fake.LoginCalls[0].Idfa)
	require.True(t, a.Session.Authenticated())

	avm := a.NewAccounts()
	<-avm.FetchAccounts(ctx)
	require.Equal(t, []string{"token-123"}, fake.FetchTokens)
	require.Len(t, avm.Accounts.Get(), 2)

	dvm := a.NewDetail(avm.Accounts.Get()[0])
	require.Equal(t, "Stocks & Shares ISA", dvm.AccountName())
}

func TestLogoutClearsSession(t *testing.T) {
	fake := &providertest.Fake{
		LoginResponse:   providertest.LoginOK(),
		AccountResponse: providertest.Accounts(),
	}
	a := app.New(fake, session.New(), "")
	ctx := context.Background()

	<-a.NewLogin().Login(ctx, "demo@example.com", "pw")
	avm := a.NewAccounts()
	a.Logout()

	<-avm.FetchAccounts(ctx)
	require.Equal(t, accounts.ErrNotAuthenticated, avm.Err.Get())
	_, fetches, _ := fake.Calls()
	require.Zero(t, fetches)
}

func TestNewWire(t *testing.T) {
	a, err := app.NewWire(app.Config{APIURL: "http://127.0.0.1:8080", AppID: "x"})
	require.NoError(t, err)
	require.NotEmpty(t, a.DeviceID)
	require.False(t, a.Session.Authenticated())

	_, err = app.NewWire(app.Config{APIURL: "not a url"})
	require.Error(t, err)
}
