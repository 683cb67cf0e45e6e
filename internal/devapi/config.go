package devapi

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/luno/jettison/log"
)

// Config holds the dev server's listen address, signing key and demo user.
type Config struct {
	Addr          string
	JWTSecret     string
	TokenTTL      time.Duration
	DemoEmail     string
	DemoPassword  string
	DemoFirstName string
	DemoLastName  string
}

// LoadConfig reads .env if present and then the environment.
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Info(context.Background(), "no .env file found, relying on environment")
	}

	ttl, err := time.ParseDuration(getEnv("MONEYBOX_DEV_TOKEN_TTL", "1h"))
	if err != nil {
		ttl = time.Hour
	}
	return Config{
		Addr:          getEnv("MONEYBOX_DEV_ADDR", ":8080"),
		JWTSecret:     getEnv("MONEYBOX_DEV_JWT_SECRET", "dev-secret"),
		TokenTTL:      ttl,
		DemoEmail:     getEnv("MONEYBOX_DEV_EMAIL", "test+ios@moneyboxapp.com"),
		DemoPassword:  getEnv("MONEYBOX_DEV_PASSWORD", "P455word12"),
		DemoFirstName: getEnv("MONEYBOX_DEV_FIRST_NAME", "Michael"),
		DemoLastName:  getEnv("MONEYBOX_DEV_LAST_NAME", "Jordan"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
