package config

import (
	"fmt"
	"strings"
)

// AuthMode selects how the edge server offers social sign-in.
type AuthMode string

const (
	// AuthModeOff disables social sign-in; email and password still work through the API.
	AuthModeOff AuthMode = "off"
	// AuthModeOAuth uses an OpenID Connect provider.
	AuthModeOAuth AuthMode = "oauth"
	// AuthModeMock uses the dev provider (for development only).
	AuthModeMock AuthMode = "mock"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	switch v {
	case "", "off":
		*a = AuthModeOff
		return nil
	case "oauth", "mock":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: off, oauth, mock)", v)
	}
}

// OAuthConfig contains OIDC provider configuration.
type OAuthConfig struct {
	Provider     string `env:"PROVIDER"      envDefault:"google"`
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
	RedirectURL  string `env:"REDIRECT_URL"  envDefault:"http://localhost:3000/auth/callback"`
	Scope        string `env:"SCOPE"         envDefault:"openid profile email"`
	IssuerURL    string `env:"ISSUER_URL"    envDefault:"https://accounts.google.com"`
}

// DevAuthConfig controls the mock sign-in identity.
// Used when AUTH_MODE=mock for development and testing.
type DevAuthConfig struct {
	Email     string `env:"EMAIL"      envDefault:"dev@example.com"`
	FirstName string `env:"FIRST_NAME" envDefault:"Dev"`
	LastName  string `env:"LAST_NAME"  envDefault:"Stylist"`
}

// AuthConfig groups social sign-in configuration.
type AuthConfig struct {
	Mode AuthMode `env:"AUTH_MODE" envDefault:"off"`

	// OAuth configuration (used when Mode=oauth).
	OAuth OAuthConfig `envPrefix:"OAUTH_"`

	// DevAuth configuration (used when Mode=mock).
	DevAuth DevAuthConfig `envPrefix:"DEV_AUTH_"`
}
