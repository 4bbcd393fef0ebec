package config

import (
	"fmt"
	"strings"
	"time"
)

// CredentialBackend names where the CLI profile keeps the credential and session snapshot.
type CredentialBackend string

const (
	CredentialBackendMemory CredentialBackend = "memory"
	CredentialBackendSQLite CredentialBackend = "sqlite"
	CredentialBackendRedis  CredentialBackend = "redis"
)

// UnmarshalText implements encoding.TextUnmarshaler for CredentialBackend.
func (b *CredentialBackend) UnmarshalText(text []byte) error {
	v := CredentialBackend(strings.ToLower(strings.TrimSpace(string(text))))
	switch v {
	case CredentialBackendMemory, CredentialBackendSQLite, CredentialBackendRedis:
		*b = v
		return nil
	default:
		return fmt.Errorf("invalid credential store: %q (valid options: memory, sqlite, redis)", v)
	}
}

// CredentialConfig configures the client-side credential repository.
type CredentialConfig struct {
	Store CredentialBackend `env:"STORE" envDefault:"sqlite"`

	// ProfilePath is the SQLite profile; empty means <user config dir>/stylist/profile.db.
	ProfilePath string `env:"PROFILE"`

	// CookieName is the credential cookie shared with the edge route guard.
	CookieName string `env:"COOKIE_NAME" envDefault:"auth_token"`

	// CookieURL scopes the cookie jar; defaults to the API base URL.
	CookieURL string `env:"COOKIE_URL"`

	// TTL is the credential lifetime in both stores.
	TTL time.Duration `env:"TTL" envDefault:"168h"`

	// KeyPrefix namespaces Redis keys when Store=redis.
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"stylist:"`
}

// Sanitize applies guardrails to credential values.
func (c *CredentialConfig) Sanitize() {
	if c.Store == "" {
		c.Store = CredentialBackendSQLite
	}
	if strings.TrimSpace(c.CookieName) == "" {
		c.CookieName = "auth_token"
	}
	if c.TTL <= 0 {
		c.TTL = 7 * 24 * time.Hour
	}
}

// RedisConfig contains Redis connection configuration.
type RedisConfig struct {
	URI                string   `env:"URI"                  envDefault:"localhost:6379"`
	Password           string   `env:"PASSWORD"             envDefault:""`
	DB                 int      `env:"DB"                   envDefault:"0"`
	SentinelNodes      []string `env:"SENTINEL_NODES"       envDefault:"localhost:26379"`
	SentinelMasterName string   `env:"SENTINEL_MASTER_NAME" envDefault:"mymaster"`
	SentinelPassword   string   `env:"SENTINEL_PASSWORD"    envDefault:""`
	UseSentinel        bool     `env:"USE_SENTINEL"         envDefault:"false"`
}
