package sqlite

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newProfile(t *testing.T) (*Profile, *clock) {
	t.Helper()
	p, err := Open(context.Background(), MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })
	c := &clock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	return p.WithClock(c.now), c
}

func TestKVStore_SetGetDelete(t *testing.T) {
	p, _ := newProfile(t)
	kv := p.KV()
	ctx := context.Background()

	_, ok, err := kv.Get(ctx, "auth_token")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, "auth_token", "tok-1", 0))
	require.NoError(t, kv.Set(ctx, "auth_token", "tok-2", 0))

	v, ok, err := kv.Get(ctx, "auth_token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok-2", v)

	keys, err := kv.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"auth_token"}, keys)

	require.NoError(t, kv.Delete(ctx, "auth_token"))
	require.NoError(t, kv.Delete(ctx, "auth_token"))
	_, ok, err = kv.Get(ctx, "auth_token")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKVStore_Expiry(t *testing.T) {
	p, c := newProfile(t)
	kv := p.KV()
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", "v", time.Hour))
	_, ok, _ := kv.Get(ctx, "k")
	assert.True(t, ok)

	c.t = c.t.Add(2 * time.Hour)
	_, ok, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok, "expired value reads as absent")

	n, err := p.Purge(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestCookieStore_Attributes(t *testing.T) {
	p, c := newProfile(t)
	cookies := p.Cookies()
	ctx := context.Background()

	require.NoError(t, cookies.SetCookie(ctx, &http.Cookie{
		Name:     "auth_token",
		Value:    "tok",
		Expires:  c.t.Add(7 * 24 * time.Hour),
		SameSite: http.SameSiteLaxMode,
	}))

	v, ok, err := cookies.Cookie(ctx, "auth_token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok", v)

	got, err := cookies.Attributes(ctx, "auth_token")
	require.NoError(t, err)
	assert.Equal(t, "/", got.Path, "path defaults to root")
	assert.Equal(t, http.SameSiteLaxMode, got.SameSite)
	assert.False(t, got.Secure)
	assert.True(t, got.Expires.Equal(c.t.Add(7*24*time.Hour)))

	c.t = c.t.Add(8 * 24 * time.Hour)
	_, ok, err = cookies.Cookie(ctx, "auth_token")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCookieStore_NegativeMaxAgeDeletes(t *testing.T) {
	p, _ := newProfile(t)
	cookies := p.Cookies()
	ctx := context.Background()

	require.NoError(t, cookies.SetCookie(ctx, &http.Cookie{Name: "auth_token", Value: "tok"}))
	require.NoError(t, cookies.SetCookie(ctx, &http.Cookie{Name: "auth_token", MaxAge: -1}))

	_, ok, err := cookies.Cookie(ctx, "auth_token")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCookieStore_RejectsNameless(t *testing.T) {
	p, _ := newProfile(t)
	assert.Error(t, p.Cookies().SetCookie(context.Background(), &http.Cookie{Value: "x"}))
}

func TestOpen_FileProfilePersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "profile.db")

	p, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, p.KV().Set(ctx, "auth-storage", `{"user":null,"isAuthenticated":false}`, 0))
	require.NoError(t, p.Close())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	v, ok, err := reopened.KV().Get(ctx, "auth-storage")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, v, "isAuthenticated")
}
