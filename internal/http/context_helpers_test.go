package httpx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentialPresence(t *testing.T) {
	ctx := context.Background()
	assert.False(t, HasCredential(ctx))
	assert.True(t, HasCredential(WithCredentialPresence(ctx, true)))
	assert.False(t, HasCredential(WithCredentialPresence(ctx, false)))
}
