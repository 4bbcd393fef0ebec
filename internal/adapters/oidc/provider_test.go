package oidc

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/target/stylist-web/internal/ports"
	"golang.org/x/oauth2"
)

const testClientID = "stylist-client"

// fakeIdP serves discovery, JWKS and a token endpoint that returns an ID token signed with key.
type fakeIdP struct {
	srv   *httptest.Server
	key   *rsa.PrivateKey
	nonce string
	email string
}

func newFakeIdP(t *testing.T) *fakeIdP {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	idp := &fakeIdP{key: key, email: "jess@example.com"}

	mux := http.NewServeMux()
	mux.HandleFunc("/.well-known/openid-configuration", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(DiscoveryDocument{
			Issuer:                idp.srv.URL,
			AuthorizationEndpoint: idp.srv.URL + "/auth",
			TokenEndpoint:         idp.srv.URL + "/token",
			UserinfoEndpoint:      idp.srv.URL + "/userinfo",
			JwksURI:               idp.srv.URL + "/jwks",
		})
	})
	mux.HandleFunc("/jwks", func(w http.ResponseWriter, _ *http.Request) {
		pub := idp.key.PublicKey
		_ = json.NewEncoder(w).Encode(map[string]any{"keys": []map[string]string{{
			"kty": "RSA",
			"alg": "RS256",
			"use": "sig",
			"kid": "k1",
			"n":   base64.RawURLEncoding.EncodeToString(pub.N.Bytes()),
			"e":   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(pub.E)).Bytes()),
		}}})
	})
	mux.HandleFunc("/token", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "at-1",
			"token_type":   "Bearer",
			"expires_in":   3600,
			"id_token":     idp.signIDToken(t),
		})
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"sub": "sub-1", "email": "from-userinfo@example.com"})
	})
	idp.srv = httptest.NewServer(mux)
	t.Cleanup(idp.srv.Close)
	return idp
}

func (f *fakeIdP) signIDToken(t *testing.T) string {
	t.Helper()
	claims := jwt.MapClaims{
		"iss":         f.srv.URL,
		"aud":         testClientID,
		"sub":         "sub-1",
		"exp":         time.Now().Add(time.Hour).Unix(),
		"iat":         time.Now().Unix(),
		"nonce":       f.nonce,
		"name":        "Jess Rivera",
		"given_name":  "Jess",
		"family_name": "Rivera",
		"picture":     "https://img.example.com/jess.png",
	}
	if f.email != "" {
		claims["email"] = f.email
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	tok.Header["kid"] = "k1"
	s, err := tok.SignedString(f.key)
	require.NoError(t, err)
	return s
}

func newTestProvider(t *testing.T, idp *fakeIdP) *Provider {
	t.Helper()
	p, err := NewProvider(context.Background(), ProviderConfig{
		ClientID:     testClientID,
		ClientSecret: "secret",
		RedirectURL:  "http://localhost:3000/auth/callback",
		IssuerURL:    idp.srv.URL + "/.well-known/openid-configuration",
	})
	require.NoError(t, err)
	return p
}

func TestNewProvider_Discovery(t *testing.T) {
	idp := newFakeIdP(t)
	p := newTestProvider(t, idp)

	assert.Equal(t, "google", p.Name())
	assert.Equal(t, idp.srv.URL+"/auth", p.config.Endpoint.AuthURL)
	assert.Equal(t, idp.srv.URL+"/token", p.config.Endpoint.TokenURL)
	assert.Equal(t, []string{"openid", "profile", "email"}, p.config.Scopes)

	var _ ports.AuthProvider = p
}

func TestNewProvider_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		config ProviderConfig
		errMsg string
	}{
		{"missing client ID", ProviderConfig{ClientSecret: "s", RedirectURL: "r", IssuerURL: "i"}, "client ID is required"},
		{"missing client secret", ProviderConfig{ClientID: "c", RedirectURL: "r", IssuerURL: "i"}, "client secret is required"},
		{"missing redirect URL", ProviderConfig{ClientID: "c", ClientSecret: "s", IssuerURL: "i"}, "redirect URL is required"},
		{"missing issuer URL", ProviderConfig{ClientID: "c", ClientSecret: "s", RedirectURL: "r"}, "issuer URL is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProvider(context.Background(), tt.config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestProvider_Begin(t *testing.T) {
	p := newTestProvider(t, newFakeIdP(t))

	authURL, state, nonce, err := p.Begin(context.Background(), ports.BeginInput{RedirectURL: "/workshops"})
	require.NoError(t, err)
	require.Len(t, state, 32)
	require.Len(t, nonce, 32)

	u, err := url.Parse(authURL)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, testClientID, q.Get("client_id"))
	assert.Equal(t, state, q.Get("state"))
	assert.Equal(t, nonce, q.Get("nonce"))
	assert.Equal(t, "select_account", q.Get("prompt"))
	assert.Equal(t, "http://localhost:3000/auth/callback", q.Get("redirect_uri"))

	_, _, _, err = p.Begin(context.Background(), ports.BeginInput{})
	assert.ErrorContains(t, err, "redirect URL is required")
}

func TestProvider_Exchange(t *testing.T) {
	idp := newFakeIdP(t)
	idp.nonce = "nonce-1"
	p := newTestProvider(t, idp)

	id, err := p.Exchange(context.Background(), ports.ExchangeInput{Code: "code", State: "s", Nonce: "nonce-1"})
	require.NoError(t, err)

	assert.Equal(t, "google", id.Provider)
	assert.Equal(t, "sub-1", id.Subject)
	assert.Equal(t, "jess@example.com", id.Email)
	assert.Equal(t, "Jess Rivera", id.DisplayName())
	assert.Equal(t, "Jess", id.FirstName)
	assert.Equal(t, "https://img.example.com/jess.png", id.Picture)
	assert.NotEmpty(t, id.IDToken)
	assert.WithinDuration(t, time.Now().Add(time.Hour), id.ExpiresAt, time.Minute)
}

func TestProvider_Exchange_FillsEmailFromUserInfo(t *testing.T) {
	idp := newFakeIdP(t)
	idp.nonce = "n"
	idp.email = ""
	p := newTestProvider(t, idp)

	id, err := p.Exchange(context.Background(), ports.ExchangeInput{Code: "code", State: "s", Nonce: "n"})
	require.NoError(t, err)
	assert.Equal(t, "from-userinfo@example.com", id.Email)
	assert.Equal(t, "Jess Rivera", id.Name)
}

func TestProvider_Exchange_NonceMismatch(t *testing.T) {
	idp := newFakeIdP(t)
	idp.nonce = "issued"
	p := newTestProvider(t, idp)

	_, err := p.Exchange(context.Background(), ports.ExchangeInput{Code: "code", State: "s", Nonce: "other"})
	assert.ErrorContains(t, err, "invalid nonce")
}

func TestProvider_Exchange_ValidationErrors(t *testing.T) {
	p := newTestProvider(t, newFakeIdP(t))

	tests := []struct {
		name   string
		input  ports.ExchangeInput
		errMsg string
	}{
		{"missing code", ports.ExchangeInput{State: "state", Nonce: "nonce"}, "authorization code is required"},
		{"missing state", ports.ExchangeInput{Code: "code", Nonce: "nonce"}, "state is required"},
		{"missing nonce", ports.ExchangeInput{Code: "code", State: "state"}, "nonce is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Exchange(context.Background(), tt.input)
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}

func TestGenerateRandomString(t *testing.T) {
	a, err := generateRandomString(16)
	require.NoError(t, err)
	b, err := generateRandomString(16)
	require.NoError(t, err)
	assert.Len(t, a, 16)
	assert.NotEqual(t, a, b)
}

func TestGetIDTokenFromToken(t *testing.T) {
	tok := (&oauth2.Token{}).WithExtra(map[string]any{"id_token": "abc.def.ghi"})
	raw, err := getIDTokenFromToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", raw)

	_, err = getIDTokenFromToken((&oauth2.Token{}).WithExtra(map[string]any{"x": "y"}))
	assert.ErrorContains(t, err, "missing id_token")

	_, err = getIDTokenFromToken(nil)
	assert.ErrorContains(t, err, "nil token")
}

func TestIssuerFrom(t *testing.T) {
	assert.Equal(t, "https://accounts.google.com", issuerFrom("https://accounts.google.com/.well-known/openid-configuration"))
	assert.Equal(t, "https://accounts.google.com", issuerFrom("https://accounts.google.com/"))
}
