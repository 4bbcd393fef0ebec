package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainauth "github.com/target/stylist-web/internal/domain/auth"
	"github.com/target/stylist-web/internal/ports"
)

func TestMockAuthProvider_Begin_Defaults(t *testing.T) {
	provider := NewMockAuthProvider()
	ctx := context.Background()

	input := ports.BeginInput{RedirectURL: "http://localhost:3000/auth/callback"}
	authURL, state, nonce, err := provider.Begin(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "https://mock-idp/auth", authURL)
	assert.Equal(t, "state-1", state)
	assert.Equal(t, "nonce-1", nonce)

	// Second call should increment counters
	_, state2, nonce2, err2 := provider.Begin(ctx, input)
	require.NoError(t, err2)
	assert.Equal(t, "state-2", state2)
	assert.Equal(t, "nonce-2", nonce2)
}

func TestMockAuthProvider_Begin_CustomValues(t *testing.T) {
	provider := &MockAuthProvider{
		AuthURL:     "https://custom-idp/login",
		StatePrefix: "custom-state",
		NoncePrefix: "custom-nonce",
	}

	authURL, state, nonce, err := provider.Begin(context.Background(), ports.BeginInput{})

	require.NoError(t, err)
	assert.Equal(t, "https://custom-idp/login", authURL)
	assert.Equal(t, "custom-state-1", state)
	assert.Equal(t, "custom-nonce-1", nonce)
	assert.Equal(t, "google", provider.Name())
}

func TestMockAuthProvider_Exchange(t *testing.T) {
	provider := NewMockAuthProvider()

	id, err := provider.Exchange(context.Background(), ports.ExchangeInput{Code: "c", State: "s", Nonce: "n"})
	require.NoError(t, err)
	assert.Equal(t, "mock-user-1", id.Subject)
	assert.Equal(t, "mock-id-token", id.IDToken)
	assert.False(t, id.ExpiresAt.IsZero())

	provider.ExchangeFunc = func(context.Context, ports.ExchangeInput) (domainauth.Identity, error) {
		return domainauth.Identity{}, assert.AnError
	}
	_, err = provider.Exchange(context.Background(), ports.ExchangeInput{})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestRecordingNavigator(t *testing.T) {
	nav := NewRecordingNavigator("/workshops")
	nav.Navigate(context.Background(), "/login")
	nav.Navigate(context.Background(), "/")

	assert.Equal(t, "/", nav.CurrentPath())
	assert.Equal(t, []string{"/login", "/"}, nav.Visited())
}

func TestFuncAuthAPI_Defaults(t *testing.T) {
	api := &FuncAuthAPI{}
	ctx := context.Background()

	_, err := api.Me(ctx)
	assert.ErrorIs(t, err, ErrNotImplemented)
	assert.NoError(t, api.Logout(ctx))
	assert.NoError(t, api.ForgotPassword(ctx, "a@b.c"))
}
