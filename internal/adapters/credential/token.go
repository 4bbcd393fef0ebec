package credential

import (
	"context"
	"time"

	"github.com/target/stylist-web/internal/ports"
)

// TokenName is the storage key and cookie name of the bearer credential.
const TokenName = "auth_token"

var _ ports.CredentialStore = (*Token)(nil)

// Token binds a Repository to the bearer credential.
type Token struct {
	repo *Repository
	name string
	ttl  time.Duration
}

// NewToken returns the credential store for auth_token with the default 7-day cookie lifetime.
func NewToken(repo *Repository) *Token {
	return &Token{repo: repo, name: TokenName, ttl: DefaultTTL}
}

// WithName overrides the cookie/key name (config CREDENTIAL_COOKIE_NAME).
func (t *Token) WithName(name string) *Token {
	if name != "" {
		t.name = name
	}
	return t
}

// WithTTL overrides the cookie lifetime.
func (t *Token) WithTTL(ttl time.Duration) *Token {
	if ttl > 0 {
		t.ttl = ttl
	}
	return t
}

// Name is the key and cookie name in use.
func (t *Token) Name() string { return t.name }

func (t *Token) Token(ctx context.Context) (string, bool) {
	v, ok := t.repo.Get(ctx, t.name)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func (t *Token) Store(ctx context.Context, token string) {
	if token == "" {
		t.repo.Remove(ctx, t.name)
		return
	}
	t.repo.Set(ctx, t.name, token, t.ttl)
}

func (t *Token) Clear(ctx context.Context) {
	t.repo.Remove(ctx, t.name)
}
