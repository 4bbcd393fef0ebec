// Package sqlite provides the persistent local profile: a key/value table and a cookie table
// in one SQLite file, standing in for the browser's local storage and cookie jar.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/target/stylist-web/internal/migrate"
	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory profile (tests, throwaway runs).
const MemoryPath = ":memory:"

// Profile owns the SQLite handle shared by the key/value and cookie stores.
type Profile struct {
	db  *sql.DB
	now func() time.Time
}

// Open creates (if needed) and migrates the profile database at path.
func Open(ctx context.Context, path string) (*Profile, error) {
	dsn := path
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("create profile directory: %w", err)
		}
		dsn = path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open profile: %w", err)
	}
	// A single connection serializes writers and keeps an in-memory database alive.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping profile: %w", err)
	}
	if err := migrate.Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate profile: %w", err)
	}
	return &Profile{db: db, now: time.Now}, nil
}

// WithClock overrides the time source used for expiry checks.
func (p *Profile) WithClock(now func() time.Time) *Profile {
	if now != nil {
		p.now = now
	}
	return p
}

// KV returns the key/value view of the profile.
func (p *Profile) KV() *KVStore { return &KVStore{p: p} }

// Cookies returns the cookie view of the profile.
func (p *Profile) Cookies() *CookieStore { return &CookieStore{p: p} }

// Purge deletes expired rows from both tables.
func (p *Profile) Purge(ctx context.Context) (int64, error) {
	now := p.now().UnixMilli()
	var total int64
	for _, q := range []string{
		`DELETE FROM kv WHERE expires_at IS NOT NULL AND expires_at <= ?`,
		`DELETE FROM cookies WHERE expires_at IS NOT NULL AND expires_at <= ?`,
	} {
		res, err := p.db.ExecContext(ctx, q, now)
		if err != nil {
			return total, fmt.Errorf("purge profile: %w", err)
		}
		n, _ := res.RowsAffected()
		total += n
	}
	return total, nil
}

// Close releases the database handle.
func (p *Profile) Close() error {
	return p.db.Close()
}

func expiryMillis(now time.Time, ttl time.Duration) sql.NullInt64 {
	if ttl <= 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: now.Add(ttl).UnixMilli(), Valid: true}
}

func msToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
