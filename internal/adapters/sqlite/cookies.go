package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	apperrors "github.com/target/stylist-web/internal/errors"
	"github.com/target/stylist-web/internal/ports"
)

var _ ports.CookieStore = (*CookieStore)(nil)

// CookieStore is the cookie table of a profile. Cookies are keyed by name only: the profile
// belongs to one site.
type CookieStore struct {
	p *Profile
}

// Cookie returns the value of a live cookie.
func (s *CookieStore) Cookie(ctx context.Context, name string) (string, bool, error) {
	var (
		value   string
		expires sql.NullInt64
	)
	err := s.p.db.QueryRowContext(ctx, `SELECT value, expires_at FROM cookies WHERE name = ?`, name).Scan(&value, &expires)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get cookie[%s]: %w", name, apperrors.MapStoreError(err))
	}
	if expires.Valid && expires.Int64 <= s.p.now().UnixMilli() {
		return "", false, nil
	}
	return value, true, nil
}

// SetCookie upserts a cookie. MaxAge < 0 deletes it, matching browser semantics.
func (s *CookieStore) SetCookie(ctx context.Context, c *http.Cookie) error {
	if c == nil || c.Name == "" {
		return apperrors.Validation("cookie name is required")
	}
	if c.MaxAge < 0 {
		return s.DeleteCookie(ctx, c.Name)
	}

	now := s.p.now()
	var expires sql.NullInt64
	switch {
	case c.MaxAge > 0:
		expires = sql.NullInt64{Int64: now.UnixMilli() + int64(c.MaxAge)*1000, Valid: true}
	case !c.Expires.IsZero():
		expires = sql.NullInt64{Int64: c.Expires.UnixMilli(), Valid: true}
	}
	path := c.Path
	if path == "" {
		path = "/"
	}

	_, err := s.p.db.ExecContext(ctx, `
		INSERT INTO cookies (name, value, path, domain, secure, http_only, same_site, expires_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			value = excluded.value, path = excluded.path, domain = excluded.domain,
			secure = excluded.secure, http_only = excluded.http_only, same_site = excluded.same_site,
			expires_at = excluded.expires_at, updated_at = excluded.updated_at
	`, c.Name, c.Value, path, c.Domain, c.Secure, c.HttpOnly, sameSiteName(c.SameSite), expires, now.UnixMilli())
	if err != nil {
		return fmt.Errorf("set cookie[%s]: %w", c.Name, apperrors.MapStoreError(err))
	}
	return nil
}

// DeleteCookie removes a cookie; deleting a missing cookie is not an error.
func (s *CookieStore) DeleteCookie(ctx context.Context, name string) error {
	if _, err := s.p.db.ExecContext(ctx, `DELETE FROM cookies WHERE name = ?`, name); err != nil {
		return fmt.Errorf("delete cookie[%s]: %w", name, apperrors.MapStoreError(err))
	}
	return nil
}

// Attributes returns the stored cookie with its attributes, for inspection.
func (s *CookieStore) Attributes(ctx context.Context, name string) (*http.Cookie, error) {
	var (
		c        http.Cookie
		sameSite string
		expires  sql.NullInt64
	)
	err := s.p.db.QueryRowContext(ctx, `
		SELECT name, value, path, domain, secure, http_only, same_site, expires_at FROM cookies WHERE name = ?
	`, name).Scan(&c.Name, &c.Value, &c.Path, &c.Domain, &c.Secure, &c.HttpOnly, &sameSite, &expires)
	if err != nil {
		return nil, fmt.Errorf("get cookie[%s]: %w", name, apperrors.MapStoreError(err))
	}
	c.SameSite = parseSameSite(sameSite)
	if expires.Valid {
		c.Expires = msToTime(expires.Int64)
	}
	return &c, nil
}

func sameSiteName(m http.SameSite) string {
	switch m {
	case http.SameSiteStrictMode:
		return "Strict"
	case http.SameSiteNoneMode:
		return "None"
	case http.SameSiteLaxMode:
		return "Lax"
	default:
		return ""
	}
}

func parseSameSite(s string) http.SameSite {
	switch s {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	case "Lax":
		return http.SameSiteLaxMode
	default:
		return http.SameSiteDefaultMode
	}
}
