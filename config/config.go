package config

import "strings"

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - api.go: Backend API client configuration
//   - auth.go: Social sign-in configuration
//   - credential.go: Credential store and Redis configuration
//   - http.go: Edge server configuration
//   - session.go: Session refresh configuration
type AppConfig struct {
	// IsDev controls development mode behavior.
	// Set DEV=true or NODE_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// NodeEnv mirrors the front-end deployment environment; "production" turns on Secure cookies.
	NodeEnv string `env:"NODE_ENV" envDefault:"development"`

	API        APIConfig
	Auth       AuthConfig
	Credential CredentialConfig `envPrefix:"CREDENTIAL_"`
	Redis      RedisConfig      `envPrefix:"REDIS_"`
	HTTP       HTTPConfig
	Session    SessionConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.NodeEnv = strings.ToLower(strings.TrimSpace(c.NodeEnv))
	c.API.Sanitize()
	c.Credential.Sanitize()
	c.HTTP.Sanitize()
	c.Session.Sanitize()
	c.detectDevMode()
}

// IsProduction reports whether cookies must be marked Secure.
func (c *AppConfig) IsProduction() bool {
	return c.NodeEnv == "production" && !c.IsDev
}

// detectDevMode checks NODE_ENV as a fallback for the DEV flag.
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		c.IsDev = c.NodeEnv == "development" || c.NodeEnv == "dev"
	}
}
