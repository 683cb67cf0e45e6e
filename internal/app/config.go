package app

import (
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/luno/jettison/errors"
	"github.com/luno/jettison/j"
)

const (
	defaultAPIURL     = "http://127.0.0.1:8080"
	defaultAppID      = "8cb2237d0679ca88db6464"
	defaultAppVersion = "7.15.0"
	defaultAPIVersion = "3.0.0"
	defaultTimeout    = 30 * time.Second
)

// Config holds runtime wiring options for building the app.
type Config struct {
	APIURL     string        // API base URL, e.g. http://127.0.0.1:8080
	AppID      string        // sent as the AppId header
	AppVersion string        // sent as the appVersion header
	APIVersion string        // sent as the apiVersion header
	Timeout    time.Duration // per-request timeout
	Email      string        // default login email for one-shot commands
	Password   string        // default login password for one-shot commands
	HTTP       *http.Client  // optional; built from Timeout when nil
}

// LoadConfig loads the given env files (".env" when none are named) and reads
// MONEYBOX_* variables over the defaults. A missing default .env is ignored;
// a named file that cannot be read is an error.
func LoadConfig(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if len(files) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, errors.Wrap(err, "load env", j.MKV{"files": files})
		}
	}

	timeout := defaultTimeout
	if raw := os.Getenv("MONEYBOX_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, errors.Wrap(err, "parse MONEYBOX_TIMEOUT", j.MKV{"value": raw})
		}
		timeout = d
	}

	return Config{
		APIURL:     getEnv("MONEYBOX_API_URL", defaultAPIURL),
		AppID:      getEnv("MONEYBOX_APP_ID", defaultAppID),
		AppVersion: getEnv("MONEYBOX_APP_VERSION", defaultAppVersion),
		APIVersion: getEnv("MONEYBOX_API_VERSION", defaultAPIVersion),
		Timeout:    timeout,
		Email:      os.Getenv("MONEYBOX_EMAIL"),
		Password:   os.Getenv("MONEYBOX_PASSWORD"),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
