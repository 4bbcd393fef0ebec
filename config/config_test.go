package config

import (
	"reflect"
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func parseEnv(t *testing.T) AppConfig {
	t.Helper()
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()
	return cfg
}

func TestAppConfig_Defaults(t *testing.T) {
	t.Setenv("NODE_ENV", "development")
	cfg := parseEnv(t)

	if cfg.API.BaseURL != "http://localhost:4000" {
		t.Errorf("API.BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 10*time.Second {
		t.Errorf("API.Timeout = %v", cfg.API.Timeout)
	}
	if cfg.Auth.Mode != AuthModeOff {
		t.Errorf("Auth.Mode = %q", cfg.Auth.Mode)
	}
	if cfg.Credential.Store != CredentialBackendSQLite || cfg.Credential.CookieName != "auth_token" {
		t.Errorf("unexpected credential config: %#v", cfg.Credential)
	}
	if cfg.Credential.TTL != 7*24*time.Hour {
		t.Errorf("Credential.TTL = %v", cfg.Credential.TTL)
	}
	if cfg.HTTP.Addr != ":3000" || !cfg.HTTP.CompressionEnabled {
		t.Errorf("unexpected http config: %#v", cfg.HTTP)
	}
	if cfg.Session.RefreshInterval != 5*time.Minute {
		t.Errorf("Session.RefreshInterval = %v", cfg.Session.RefreshInterval)
	}
	if !cfg.IsDev || cfg.IsProduction() {
		t.Errorf("development defaults expected, got IsDev=%v IsProduction=%v", cfg.IsDev, cfg.IsProduction())
	}
}

func TestAppConfig_ProductionDetection(t *testing.T) {
	tests := []struct {
		name    string
		nodeEnv string
		dev     string
		want    bool
	}{
		{name: "production", nodeEnv: "production", dev: "false", want: true},
		{name: "production uppercase", nodeEnv: "PRODUCTION", dev: "false", want: true},
		{name: "development", nodeEnv: "development", dev: "false", want: false},
		{name: "test", nodeEnv: "test", dev: "false", want: false},
		{name: "dev flag wins", nodeEnv: "production", dev: "true", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NODE_ENV", tt.nodeEnv)
			t.Setenv("DEV", tt.dev)
			cfg := parseEnv(t)
			if got := cfg.IsProduction(); got != tt.want {
				t.Fatalf("IsProduction() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppConfig_ParseAuthEnv(t *testing.T) {
	t.Setenv("AUTH_MODE", "OAuth")
	t.Setenv("OAUTH_PROVIDER", "google")
	t.Setenv("OAUTH_CLIENT_ID", "app-client")
	t.Setenv("OAUTH_CLIENT_SECRET", "super-secret")
	t.Setenv("OAUTH_REDIRECT_URL", "https://stylist.example.com/auth/callback")
	t.Setenv("OAUTH_ISSUER_URL", "https://accounts.google.com")
	t.Setenv("DEV_AUTH_EMAIL", "jess@example.com")

	cfg := parseEnv(t)

	expected := AuthConfig{
		Mode: AuthModeOAuth,
		OAuth: OAuthConfig{
			Provider:     "google",
			ClientID:     "app-client",
			ClientSecret: "super-secret",
			RedirectURL:  "https://stylist.example.com/auth/callback",
			Scope:        "openid profile email",
			IssuerURL:    "https://accounts.google.com",
		},
		DevAuth: DevAuthConfig{
			Email:     "jess@example.com",
			FirstName: "Dev",
			LastName:  "Stylist",
		},
	}

	if !reflect.DeepEqual(cfg.Auth, expected) {
		t.Fatalf("unexpected auth configuration:\nexpected: %#v\ngot:      %#v", expected, cfg.Auth)
	}
}

func TestAuthMode_UnmarshalText(t *testing.T) {
	var m AuthMode
	if err := m.UnmarshalText([]byte("MOCK")); err != nil || m != AuthModeMock {
		t.Fatalf("got %q, %v", m, err)
	}
	if err := m.UnmarshalText([]byte("")); err != nil || m != AuthModeOff {
		t.Fatalf("got %q, %v", m, err)
	}
	if err := m.UnmarshalText([]byte("saml")); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestCredentialConfig_ParseEnv(t *testing.T) {
	t.Setenv("CREDENTIAL_STORE", "redis")
	t.Setenv("CREDENTIAL_TTL", "24h")
	t.Setenv("CREDENTIAL_KEY_PREFIX", "salon:")
	t.Setenv("REDIS_URI", "redis://cache:6379/2")

	cfg := parseEnv(t)

	if cfg.Credential.Store != CredentialBackendRedis {
		t.Errorf("Store = %q", cfg.Credential.Store)
	}
	if cfg.Credential.TTL != 24*time.Hour || cfg.Credential.KeyPrefix != "salon:" {
		t.Errorf("unexpected credential config: %#v", cfg.Credential)
	}
	if cfg.Redis.URI != "redis://cache:6379/2" {
		t.Errorf("Redis.URI = %q", cfg.Redis.URI)
	}

	t.Setenv("CREDENTIAL_STORE", "floppy")
	var bad AppConfig
	if err := env.Parse(&bad); err == nil {
		t.Fatal("expected error for unknown credential store")
	}
}

func TestSanitize_Guardrails(t *testing.T) {
	cfg := AppConfig{
		API:        APIConfig{BaseURL: " https://api.stylist.example.com/ "},
		Credential: CredentialConfig{CookieName: " "},
		Session:    SessionConfig{RefreshInterval: time.Second},
	}
	cfg.Sanitize()

	if cfg.API.BaseURL != "https://api.stylist.example.com" {
		t.Errorf("API.BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 10*time.Second {
		t.Errorf("API.Timeout = %v", cfg.API.Timeout)
	}
	if cfg.Credential.CookieName != "auth_token" || cfg.Credential.Store != CredentialBackendSQLite {
		t.Errorf("unexpected credential config: %#v", cfg.Credential)
	}
	if cfg.Session.RefreshInterval != MinRefreshInterval {
		t.Errorf("Session.RefreshInterval = %v", cfg.Session.RefreshInterval)
	}
	if cfg.HTTP.Addr != ":3000" {
		t.Errorf("HTTP.Addr = %q", cfg.HTTP.Addr)
	}
}

func TestAPIConfig_Origin(t *testing.T) {
	tests := map[string]string{
		"http://localhost:4000":              "http://localhost:4000",
		"https://api.example.com/v1/stylist": "https://api.example.com",
		"localhost:4000":                     "localhost:4000",
	}
	for in, want := range tests {
		if got := (APIConfig{BaseURL: in}).Origin(); got != want {
			t.Errorf("Origin(%q) = %q, want %q", in, got, want)
		}
	}
}
