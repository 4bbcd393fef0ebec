package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/target/stylist-web/internal/errors"
	"github.com/target/stylist-web/internal/ports"
)

var _ ports.KeyValueStore = (*KVStore)(nil)

// KVStore is the key/value table of a profile.
type KVStore struct {
	p *Profile
}

// Get returns a live value. Expired rows read as absent.
func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var (
		value   string
		expires sql.NullInt64
	)
	err := s.p.db.QueryRowContext(ctx, `SELECT value, expires_at FROM kv WHERE key = ?`, key).Scan(&value, &expires)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get kv[%s]: %w", key, apperrors.MapStoreError(err))
	}
	if expires.Valid && expires.Int64 <= s.p.now().UnixMilli() {
		return "", false, nil
	}
	return value, true, nil
}

// Set upserts the value.
func (s *KVStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	now := s.p.now()
	_, err := s.p.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, expires_at, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at, updated_at = excluded.updated_at
	`, key, value, expiryMillis(now, ttl), now.UnixMilli())
	if err != nil {
		return fmt.Errorf("set kv[%s]: %w", key, apperrors.MapStoreError(err))
	}
	return nil
}

// Delete removes the value; deleting a missing key is not an error.
func (s *KVStore) Delete(ctx context.Context, key string) error {
	if _, err := s.p.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete kv[%s]: %w", key, apperrors.MapStoreError(err))
	}
	return nil
}

// Keys lists the live keys in the store.
func (s *KVStore) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.p.db.QueryContext(ctx,
		`SELECT key FROM kv WHERE expires_at IS NULL OR expires_at > ? ORDER BY key`, s.p.now().UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("list kv: %w", apperrors.MapStoreError(err))
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scan kv row: %w", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate kv rows: %w", err)
	}
	return keys, nil
}
