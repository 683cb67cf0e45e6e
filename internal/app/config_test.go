package app_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"moneybox/internal/app"
)

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (stand-in for testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"MONEYBOX_API_URL", "MONEYBOX_APP_ID", "MONEYBOX_APP_VERSION",
		"MONEYBOX_API_VERSION", "MONEYBOX_TIMEOUT", "MONEYBOX_EMAIL", "MONEYBOX_PASSWORD",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	cfg, err := app.LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "http://127.0.0.1:8080", cfg.APIURL)
	require.Equal(t, 30*time.Second, cfg.Timeout)
	require.NotEmpty(t, cfg.AppID)
}

func TestLoadConfigFromFile(t *testing.T) {
	clearEnv(t)
	// godotenv does not override variables that are already set, even empty.
	for _, k := range []string{"MONEYBOX_API_URL", "MONEYBOX_TIMEOUT", "MONEYBOX_EMAIL"} {
		require.NoError(t, os.Unsetenv(k))
	}

	path := filepath.Join(t.TempDir(), "test.env")
	content := "MONEYBOX_API_URL=http://api.test\nMONEYBOX_TIMEOUT=5s\nMONEYBOX_EMAIL=a@b.c\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("MONEYBOX_API_URL")
		os.Unsetenv("MONEYBOX_TIMEOUT")
		os.Unsetenv("MONEYBOX_EMAIL")
	})

	cfg, err := app.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "http://api.test", cfg.APIURL)
	require.Equal(t, 5*time.Second, cfg.Timeout)
	require.Equal(t, "a@b.c", cfg.Email)
}

func TestLoadConfigErrors(t *testing.T) {
	clearEnv(t)

	_, err := app.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)

	t.Setenv("MONEYBOX_TIMEOUT", "soon")
	chdir(t, t.TempDir())
	_, err = app.LoadConfig()
	require.Error(t, err)
}
