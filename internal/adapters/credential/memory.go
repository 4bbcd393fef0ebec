package credential

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/target/stylist-web/internal/ports"
)

var (
	_ ports.KeyValueStore = (*MemoryStore)(nil)
	_ ports.CookieStore   = (*MemoryCookies)(nil)
)

type memEntry struct {
	value   string
	expires time.Time
}

func (e memEntry) live(now time.Time) bool {
	return e.expires.IsZero() || now.Before(e.expires)
}

// MemoryStore is a process-local key/value store.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]memEntry
	now  func() time.Time
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]memEntry), now: time.Now}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.data[key]
	if !ok || !e.live(m.now()) {
		return "", false, nil
	}
	return e.value, true, nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := memEntry{value: value}
	if ttl > 0 {
		e.expires = m.now().Add(ttl)
	}
	m.data[key] = e
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// MemoryCookies is a process-local cookie store keyed by cookie name.
type MemoryCookies struct {
	mu      sync.RWMutex
	cookies map[string]http.Cookie
	now     func() time.Time
}

// NewMemoryCookies creates an empty MemoryCookies.
func NewMemoryCookies() *MemoryCookies {
	return &MemoryCookies{cookies: make(map[string]http.Cookie), now: time.Now}
}

func (m *MemoryCookies) Cookie(_ context.Context, name string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.cookies[name]
	if !ok || (!c.Expires.IsZero() && !m.now().Before(c.Expires)) {
		return "", false, nil
	}
	return c.Value, true, nil
}

func (m *MemoryCookies) SetCookie(ctx context.Context, c *http.Cookie) error {
	if c.MaxAge < 0 {
		return m.DeleteCookie(ctx, c.Name)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *c
	if c.MaxAge > 0 {
		stored.Expires = m.now().Add(time.Duration(c.MaxAge) * time.Second)
	}
	m.cookies[c.Name] = stored
	return nil
}

func (m *MemoryCookies) DeleteCookie(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.cookies, name)
	return nil
}

// Raw returns the stored cookie with its attributes, for assertions.
func (m *MemoryCookies) Raw(name string) (http.Cookie, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.cookies[name]
	return c, ok
}
