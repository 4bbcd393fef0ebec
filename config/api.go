package config

import (
	"strings"
	"time"
)

// APIConfig configures the backend API client.
type APIConfig struct {
	// BaseURL is the backend origin; request paths already start with /api.
	BaseURL string `env:"API_URL" envDefault:"http://localhost:4000"`

	// Timeout bounds every backend request.
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"10s"`
}

// Sanitize applies guardrails to API client values.
func (a *APIConfig) Sanitize() {
	a.BaseURL = strings.TrimRight(strings.TrimSpace(a.BaseURL), "/")
	if a.BaseURL == "" {
		a.BaseURL = "http://localhost:4000"
	}
	if a.Timeout <= 0 {
		a.Timeout = 10 * time.Second
	}
}

// Origin returns scheme://host of BaseURL for the CSP connect-src.
func (a APIConfig) Origin() string {
	scheme, rest, ok := strings.Cut(a.BaseURL, "://")
	if !ok {
		return a.BaseURL
	}
	host, _, _ := strings.Cut(rest, "/")
	return scheme + "://" + host
}
