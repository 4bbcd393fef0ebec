package auth

import (
	"strings"
	"time"
)

// Identity represents the principal returned by a social identity provider.
// Adapters map provider-specific claims into this shape.
type Identity struct {
	Provider  string // e.g. "google"
	Subject   string // stable provider user identifier (sub)
	Name      string
	FirstName string
	LastName  string
	Email     string
	Picture   string
	IDToken   string    // raw ID token, forwarded to the backend for verification
	ExpiresAt time.Time // absolute expiry from IdP token
}

// DisplayName prefers the full name claim, then given and family names joined.
func (i Identity) DisplayName() string {
	if n := strings.TrimSpace(i.Name); n != "" {
		return n
	}
	return strings.TrimSpace(strings.TrimSpace(i.FirstName) + " " + strings.TrimSpace(i.LastName))
}
