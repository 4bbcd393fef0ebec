// Package devauth provides a config-driven social sign-in provider for local development.
package devauth

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	domainauth "github.com/target/stylist-web/internal/domain/auth"
	"github.com/target/stylist-web/internal/ports"
)

// Config controls the dev provider. Email is required.
type Config struct {
	// Name is the provider key reported to the backend; defaults to "google".
	Name      string
	Subject   string
	Email     string
	FirstName string
	LastName  string
	// IDToken is forwarded to the backend as-is; defaults to "dev-id-token".
	IDToken         string
	SessionDuration time.Duration // default 8h when zero
	// CallbackPath is where Begin sends the browser; defaults to "/auth/callback".
	CallbackPath string
}

// Provider implements ports.AuthProvider without an IdP.
// Begin redirects straight back to the callback with locally generated state;
// Exchange ignores the code and returns the configured identity.
type Provider struct {
	mu              sync.Mutex
	name            string
	callback        string
	identity        domainauth.Identity
	sessionDuration time.Duration
}

// NewProvider constructs a dev provider from Config.
func NewProvider(cfg Config) (*Provider, error) {
	if strings.TrimSpace(cfg.Email) == "" {
		return nil, errors.New("dev auth: Email is required")
	}
	name := strings.ToLower(strings.TrimSpace(cfg.Name))
	if name == "" {
		name = "google"
	}
	dur := cfg.SessionDuration
	if dur == 0 {
		dur = 8 * time.Hour
	}
	callback := cfg.CallbackPath
	if callback == "" {
		callback = "/auth/callback"
	}
	subject := cfg.Subject
	if subject == "" {
		subject = "dev-" + cfg.Email
	}
	idToken := cfg.IDToken
	if idToken == "" {
		idToken = "dev-id-token"
	}
	return &Provider{
		name:     name,
		callback: callback,
		identity: domainauth.Identity{
			Provider:  name,
			Subject:   subject,
			Email:     cfg.Email,
			FirstName: cfg.FirstName,
			LastName:  cfg.LastName,
			IDToken:   idToken,
			ExpiresAt: time.Now().Add(dur),
		},
		sessionDuration: dur,
	}, nil
}

// Name returns the provider key.
func (p *Provider) Name() string { return p.name }

// Begin returns the local callback URL and a fresh state and nonce.
func (p *Provider) Begin(_ context.Context, _ ports.BeginInput) (string, string, string, error) {
	state := uuid.NewString()
	nonce := uuid.NewString()
	q := url.Values{}
	q.Set("code", "dev")
	q.Set("state", state)
	return p.callback + "?" + q.Encode(), state, nonce, nil
}

// Exchange ignores code, state and nonce (the handler validates state) and returns the dev identity.
func (p *Provider) Exchange(_ context.Context, _ ports.ExchangeInput) (domainauth.Identity, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if time.Until(p.identity.ExpiresAt) < 5*time.Minute {
		p.identity.ExpiresAt = time.Now().Add(p.sessionDuration)
	}
	return p.identity, nil
}
