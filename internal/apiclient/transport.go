package apiclient

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/target/stylist-web/internal/ports"
	"golang.org/x/oauth2"
)

// RequestIDHeader correlates client requests with backend logs.
const RequestIDHeader = "X-Request-ID"

// bearerTransport attaches the stored credential and a request ID to every outgoing request.
type bearerTransport struct {
	base  http.RoundTripper
	creds ports.CredentialStore
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	if r.Header.Get(RequestIDHeader) == "" {
		r.Header.Set(RequestIDHeader, uuid.NewString())
	}
	if t.creds != nil && r.Header.Get("Authorization") == "" {
		if tok, ok := t.creds.Token(r.Context()); ok {
			(&oauth2.Token{AccessToken: tok, TokenType: "Bearer"}).SetAuthHeader(r)
		}
	}
	return t.baseTransport().RoundTrip(r)
}

func (t *bearerTransport) baseTransport() http.RoundTripper {
	if t.base != nil {
		return t.base
	}
	return http.DefaultTransport
}
