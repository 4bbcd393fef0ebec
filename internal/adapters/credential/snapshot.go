package credential

import (
	"context"
	"encoding/json"
	"fmt"

	domainauth "github.com/target/stylist-web/internal/domain/auth"
	"github.com/target/stylist-web/internal/ports"
)

// SnapshotKey is the storage key of the persisted session snapshot.
const SnapshotKey = "auth-storage"

const snapshotVersion = 0

var _ ports.SnapshotStore = (*SnapshotStore)(nil)

// persisted wraps the snapshot with a format version.
type persisted struct {
	State   domainauth.Snapshot `json:"state"`
	Version int                 `json:"version"`
}

// SnapshotStore persists {user, isAuthenticated} in a key/value store.
type SnapshotStore struct {
	kv  ports.KeyValueStore
	key string
}

// NewSnapshotStore creates a snapshot store under SnapshotKey. A nil kv makes it inert.
func NewSnapshotStore(kv ports.KeyValueStore) *SnapshotStore {
	return &SnapshotStore{kv: kv, key: SnapshotKey}
}

func (s *SnapshotStore) Load(ctx context.Context) (domainauth.Snapshot, bool, error) {
	if s.kv == nil {
		return domainauth.Snapshot{}, false, nil
	}
	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil || !ok {
		return domainauth.Snapshot{}, false, err
	}
	var p persisted
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return domainauth.Snapshot{}, false, fmt.Errorf("decode %s: %w", s.key, err)
	}
	if p.Version != snapshotVersion {
		return domainauth.Snapshot{}, false, nil
	}
	// A snapshot claiming authentication without a user is meaningless.
	if p.State.User == nil {
		p.State.IsAuthenticated = false
	}
	return p.State, true, nil
}

func (s *SnapshotStore) Save(ctx context.Context, snap domainauth.Snapshot) error {
	if s.kv == nil {
		return nil
	}
	b, err := json.Marshal(persisted{State: snap, Version: snapshotVersion})
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.key, err)
	}
	return s.kv.Set(ctx, s.key, string(b), 0)
}
