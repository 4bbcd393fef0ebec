// Package ports defines interfaces (hexagonal ports) for session, credential and backend behavior.
// Implementations live in internal/adapters and internal/apiclient; orchestration in internal/service.
package ports

import (
	"context"

	domainauth "github.com/target/stylist-web/internal/domain/auth"
)

// BeginInput carries inputs for initiating a social sign-in flow.
type BeginInput struct {
	RedirectURL string
}

// AuthProvider initiates and completes a social sign-in flow against an IdP.
type AuthProvider interface {
	// Name identifies the provider in URLs and backend payloads (e.g. "google").
	Name() string

	// Begin starts the login flow and returns the provider auth URL, an opaque state, and a nonce.
	Begin(ctx context.Context, in BeginInput) (authURL, state, nonce string, err error)

	// Exchange completes the login flow, verifying state and nonce, and returns the authenticated identity.
	Exchange(ctx context.Context, in ExchangeInput) (domainauth.Identity, error)
}

// ExchangeInput groups parameters for the code/token exchange.
type ExchangeInput struct {
	Code  string
	State string
	Nonce string
}

// SocialLoginInput is forwarded to the backend after a provider exchange.
type SocialLoginInput struct {
	Provider string `json:"provider"`
	IDToken  string `json:"idToken"`
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

// AuthAPI is the backend account surface used by the session store.
type AuthAPI interface {
	Login(ctx context.Context, in domainauth.LoginCredentials) (domainauth.AuthResult, error)
	Signup(ctx context.Context, in domainauth.SignupCredentials) (domainauth.AuthResult, error)
	SocialLogin(ctx context.Context, in SocialLoginInput) (domainauth.AuthResult, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*domainauth.User, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, in domainauth.ResetPasswordInput) error
	UpdateProfile(ctx context.Context, patch domainauth.UserPatch) (*domainauth.User, error)
	ChangePassword(ctx context.Context, in domainauth.ChangePasswordInput) error
}
