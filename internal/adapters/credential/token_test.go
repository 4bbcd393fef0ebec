package credential

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_StoreTokenClear(t *testing.T) {
	repo, _, cookies := newRepo(false)
	tok := NewToken(repo)
	ctx := context.Background()

	_, ok := tok.Token(ctx)
	assert.False(t, ok)

	tok.Store(ctx, "jwt-abc")
	v, ok := tok.Token(ctx)
	assert.True(t, ok)
	assert.Equal(t, "jwt-abc", v)

	c, ok := cookies.Raw(TokenName)
	require.True(t, ok)
	assert.Equal(t, "jwt-abc", c.Value)

	tok.Clear(ctx)
	_, ok = tok.Token(ctx)
	assert.False(t, ok)
}

func TestToken_StoreEmptyClears(t *testing.T) {
	repo, _, _ := newRepo(false)
	tok := NewToken(repo)
	ctx := context.Background()

	tok.Store(ctx, "jwt-abc")
	tok.Store(ctx, "")

	_, ok := tok.Token(ctx)
	assert.False(t, ok)
}

func TestToken_CustomNameAndTTL(t *testing.T) {
	repo, _, cookies := newRepo(false)
	tok := NewToken(repo).WithName("session_token").WithTTL(time.Hour).WithName("")
	tok.Store(context.Background(), "v")

	assert.Equal(t, "session_token", tok.Name())
	c, ok := cookies.Raw("session_token")
	require.True(t, ok)
	assert.Equal(t, 3600, c.MaxAge)
}
