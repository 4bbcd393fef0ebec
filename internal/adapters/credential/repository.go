// Package credential keeps named client-side values in two places at once: an authoritative
// key/value store and a cookie visible to the edge route guard.
package credential

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/target/stylist-web/internal/ports"
)

// DefaultTTL is the cookie lifetime used when Set is called without one.
const DefaultTTL = 7 * 24 * time.Hour

// Options configures a Repository. Either store may be nil; with both nil the repository is inert.
type Options struct {
	KV      ports.KeyValueStore
	Cookies ports.CookieStore
	// Secure marks written cookies Secure (production only).
	Secure bool
	Logger *slog.Logger
	Now    func() time.Time
}

// Repository reads the key/value store first and falls back to the cookie, resyncing the
// key/value store when only the cookie had the value. Backend errors are logged and degrade
// to "absent" or no-op.
type Repository struct {
	kv      ports.KeyValueStore
	cookies ports.CookieStore
	secure  bool
	logger  *slog.Logger
	now     func() time.Time
}

// NewRepository constructs a Repository.
func NewRepository(opts Options) *Repository {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Repository{
		kv:      opts.KV,
		cookies: opts.Cookies,
		secure:  opts.Secure,
		logger:  logger.With("component", "credential"),
		now:     now,
	}
}

// Enabled reports whether any backend is configured.
func (r *Repository) Enabled() bool {
	return r != nil && (r.kv != nil || r.cookies != nil)
}

// Set writes value to both stores. ttl <= 0 uses DefaultTTL for the cookie; the key/value copy
// never expires on its own.
func (r *Repository) Set(ctx context.Context, name, value string, ttl time.Duration) {
	if !r.Enabled() {
		return
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if r.kv != nil {
		if err := r.kv.Set(ctx, name, value, 0); err != nil {
			r.logger.WarnContext(ctx, "credential kv write failed", "name", name, "error", err)
		}
	}
	if r.cookies != nil {
		if err := r.cookies.SetCookie(ctx, r.cookie(name, value, ttl)); err != nil {
			r.logger.WarnContext(ctx, "credential cookie write failed", "name", name, "error", err)
		}
	}
}

// Get returns the value, preferring the key/value store.
func (r *Repository) Get(ctx context.Context, name string) (string, bool) {
	if !r.Enabled() {
		return "", false
	}
	if r.kv != nil {
		v, ok, err := r.kv.Get(ctx, name)
		switch {
		case err != nil:
			r.logger.WarnContext(ctx, "credential kv read failed", "name", name, "error", err)
		case ok:
			return v, true
		}
	}
	if r.cookies == nil {
		return "", false
	}

	v, ok, err := r.cookies.Cookie(ctx, name)
	if err != nil {
		r.logger.WarnContext(ctx, "credential cookie read failed", "name", name, "error", err)
		return "", false
	}
	if !ok {
		return "", false
	}
	if r.kv != nil {
		if err := r.kv.Set(ctx, name, v, 0); err != nil {
			r.logger.WarnContext(ctx, "credential kv resync failed", "name", name, "error", err)
		} else {
			r.logger.DebugContext(ctx, "credential resynced from cookie", "name", name)
		}
	}
	return v, true
}

// Remove deletes the value from both stores.
func (r *Repository) Remove(ctx context.Context, name string) {
	if !r.Enabled() {
		return
	}
	if r.kv != nil {
		if err := r.kv.Delete(ctx, name); err != nil {
			r.logger.WarnContext(ctx, "credential kv delete failed", "name", name, "error", err)
		}
	}
	if r.cookies != nil {
		if err := r.cookies.DeleteCookie(ctx, name); err != nil {
			r.logger.WarnContext(ctx, "credential cookie delete failed", "name", name, "error", err)
		}
	}
}

// cookie builds the cookie written next to the key/value copy. It is not HttpOnly: page
// script reads it back when local storage was cleared.
func (r *Repository) cookie(name, value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  r.now().Add(ttl),
		MaxAge:   int(ttl / time.Second),
		Secure:   r.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
