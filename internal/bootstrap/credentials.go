package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/redis/go-redis/v9"
	"github.com/target/stylist-web/config"
	"github.com/target/stylist-web/internal/adapters/credential"
	redisadapter "github.com/target/stylist-web/internal/adapters/redis"
	"github.com/target/stylist-web/internal/adapters/sqlite"
	"github.com/target/stylist-web/internal/ports"
)

// CredentialDeps contains what BuildCredentials needs.
type CredentialDeps struct {
	Config *config.AppConfig
	// Redis is required when Credential.Store is redis.
	Redis  redis.UniversalClient
	Logger *slog.Logger
}

// Credentials is the client-side persistence wired for one profile.
type Credentials struct {
	Repository *credential.Repository
	Token      *credential.Token
	Snapshots  *credential.SnapshotStore
	// Jar carries the credential cookie on outgoing requests; nil for the SQLite profile.
	Jar http.CookieJar
	// Profile is set for the SQLite backend.
	Profile *sqlite.Profile
}

// Close releases the profile database, if any.
func (c *Credentials) Close() error {
	if c == nil || c.Profile == nil {
		return nil
	}
	return c.Profile.Close()
}

// DefaultProfilePath returns <user config dir>/stylist/profile.db.
func DefaultProfilePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "stylist", "profile.db"), nil
}

// BuildCredentials opens the configured key/value and cookie stores and layers the credential
// repository, bearer token and session snapshot store on top.
func BuildCredentials(ctx context.Context, deps CredentialDeps) (*Credentials, error) {
	if deps.Config == nil {
		return nil, errors.New("credential config is required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config.Credential

	var (
		kv      ports.KeyValueStore
		cookies ports.CookieStore
		out     Credentials
	)

	switch cfg.Store {
	case config.CredentialBackendSQLite:
		path := cfg.ProfilePath
		if path == "" {
			var err error
			if path, err = DefaultProfilePath(); err != nil {
				return nil, err
			}
		}
		profile, err := sqlite.Open(ctx, path)
		if err != nil {
			return nil, err
		}
		out.Profile = profile
		kv, cookies = profile.KV(), profile.Cookies()
		logger.DebugContext(ctx, "credential profile opened", "path", path)

	case config.CredentialBackendRedis:
		if deps.Redis == nil {
			return nil, errors.New("redis credential store requires a redis client")
		}
		kv = redisadapter.NewKVStoreWithPrefix(deps.Redis, cfg.KeyPrefix)
		jar, err := newJar(cfg, deps.Config.API.BaseURL)
		if err != nil {
			return nil, err
		}
		cookies, out.Jar = jar, jar.Jar()

	case config.CredentialBackendMemory:
		kv = credential.NewMemoryStore()
		jar, err := newJar(cfg, deps.Config.API.BaseURL)
		if err != nil {
			return nil, err
		}
		cookies, out.Jar = jar, jar.Jar()

	default:
		return nil, fmt.Errorf("unsupported credential store %q", cfg.Store)
	}

	out.Repository = credential.NewRepository(credential.Options{
		KV:      kv,
		Cookies: cookies,
		Secure:  deps.Config.IsProduction(),
		Logger:  logger,
	})
	out.Token = credential.NewToken(out.Repository).WithName(cfg.CookieName).WithTTL(cfg.TTL)
	out.Snapshots = credential.NewSnapshotStore(kv)
	return &out, nil
}

func newJar(cfg config.CredentialConfig, apiBase string) (*credential.JarStore, error) {
	site := cfg.CookieURL
	if site == "" {
		site = apiBase
	}
	jar, err := credential.NewJarStore(site)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	return jar, nil
}
