package ports

import (
	"context"
	"net/http"
	"time"

	domainauth "github.com/target/stylist-web/internal/domain/auth"
)

// KeyValueStore is the authoritative string store for named values (the local-storage role).
type KeyValueStore interface {
	// Get returns the value and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set writes the value; ttl <= 0 means no expiry.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// CookieStore holds cookies visible to outgoing requests and to the edge route guard.
type CookieStore interface {
	// Cookie returns the value of a live (unexpired) cookie and whether it was present.
	Cookie(ctx context.Context, name string) (string, bool, error)
	SetCookie(ctx context.Context, c *http.Cookie) error
	DeleteCookie(ctx context.Context, name string) error
}

// CredentialStore is the single bearer-credential repository every component uses.
// Backend failures are logged by implementations and degrade to "absent" or no-op.
type CredentialStore interface {
	Token(ctx context.Context) (string, bool)
	Store(ctx context.Context, token string)
	Clear(ctx context.Context)
}

// SnapshotStore persists the {user, isAuthenticated} session snapshot across restarts.
type SnapshotStore interface {
	// Load returns the stored snapshot and whether one existed.
	Load(ctx context.Context) (domainauth.Snapshot, bool, error)
	Save(ctx context.Context, s domainauth.Snapshot) error
}
