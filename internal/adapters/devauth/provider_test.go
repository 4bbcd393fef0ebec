package devauth

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/target/stylist-web/internal/ports"
)

func TestProvider_BeginAndExchange(t *testing.T) {
	prov, err := NewProvider(Config{Email: "dev@example.com", FirstName: "Dev", LastName: "Stylist"})
	require.NoError(t, err)
	assert.Equal(t, "google", prov.Name())

	authURL, state, nonce, err := prov.Begin(context.Background(), ports.BeginInput{RedirectURL: "/"})
	require.NoError(t, err)
	require.NotEmpty(t, state)
	require.NotEmpty(t, nonce)
	assert.NotEqual(t, state, nonce)

	u, err := url.Parse(authURL)
	require.NoError(t, err)
	assert.Equal(t, "/auth/callback", u.Path)
	assert.Equal(t, state, u.Query().Get("state"))
	assert.Equal(t, "dev", u.Query().Get("code"))

	id, err := prov.Exchange(context.Background(), ports.ExchangeInput{Code: "dev", State: state, Nonce: nonce})
	require.NoError(t, err)
	assert.Equal(t, "dev@example.com", id.Email)
	assert.Equal(t, "dev-dev@example.com", id.Subject)
	assert.Equal(t, "google", id.Provider)
	assert.Equal(t, "Dev Stylist", id.DisplayName())
	assert.Equal(t, "dev-id-token", id.IDToken)
}

func TestNewProvider_Options(t *testing.T) {
	_, err := NewProvider(Config{})
	require.ErrorContains(t, err, "Email is required")

	prov, err := NewProvider(Config{Name: "Apple", Email: "a@example.com", CallbackPath: "/cb"})
	require.NoError(t, err)
	assert.Equal(t, "apple", prov.Name())

	authURL, _, _, err := prov.Begin(context.Background(), ports.BeginInput{})
	require.NoError(t, err)
	assert.Contains(t, authURL, "/cb?")
}
