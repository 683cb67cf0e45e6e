package app

import (
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/luno/jettison/errors"
	"github.com/luno/jettison/j"

	"moneybox/internal/provider"
	"moneybox/internal/services/session"
)

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*App, error) {
	u, err := url.Parse(cfg.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errors.New("invalid API URL", j.MKV{"url": cfg.APIURL})
	}

	// Ensure an HTTP client is available for outbound calls
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	p := provider.NewHTTP(cfg.APIURL, httpClient, provider.Headers{
		AppID:      cfg.AppID,
		AppVersion: cfg.AppVersion,
		APIVersion: cfg.APIVersion,
	})

	return New(p, session.New(), uuid.NewString()), nil
}
