package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	domainauth "github.com/target/stylist-web/internal/domain/auth"
	"github.com/target/stylist-web/internal/ports"
)

// ErrUnknownProvider is returned for a provider name with no configured AuthProvider.
var ErrUnknownProvider = errors.New("unknown sign-in provider")

// SocialAuthServiceOptions groups dependencies for SocialAuthService.
type SocialAuthServiceOptions struct {
	Providers []ports.AuthProvider // Required: at least one IdP
	API       ports.AuthAPI        // Required: backend that mints the credential
	Logger    *slog.Logger         // Optional: structured logger
}

// SocialAuthService orchestrates social sign-in: the IdP proves who the user is and the backend
// exchanges that proof for the stylist credential.
type SocialAuthService struct {
	providers map[string]ports.AuthProvider
	api       ports.AuthAPI
	logger    *slog.Logger
}

// NewSocialAuthService constructs a new SocialAuthService.
func NewSocialAuthService(opts SocialAuthServiceOptions) (*SocialAuthService, error) {
	if len(opts.Providers) == 0 {
		return nil, errors.New("at least one AuthProvider is required")
	}
	if opts.API == nil {
		return nil, errors.New("AuthAPI is required")
	}
	providers := make(map[string]ports.AuthProvider, len(opts.Providers))
	for _, p := range opts.Providers {
		providers[strings.ToLower(p.Name())] = p
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SocialAuthService{
		providers: providers,
		api:       opts.API,
		logger:    logger.With("component", "social_auth"),
	}, nil
}

// Providers lists the configured provider names in order.
func (s *SocialAuthService) Providers() []string {
	names := make([]string, 0, len(s.providers))
	for n := range s.providers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (s *SocialAuthService) provider(name string) (ports.AuthProvider, error) {
	p, ok := s.providers[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, name)
	}
	return p, nil
}

// BeginLoginResult contains the result of beginning a login flow.
type BeginLoginResult struct {
	Provider string
	AuthURL  string
	State    string
	Nonce    string
}

// BeginLogin initiates an authentication flow and returns the provider auth URL with state and nonce.
func (s *SocialAuthService) BeginLogin(ctx context.Context, provider, redirectURL string) (*BeginLoginResult, error) {
	if redirectURL == "" {
		return nil, errors.New("redirect URL is required")
	}
	p, err := s.provider(provider)
	if err != nil {
		return nil, err
	}

	authURL, state, nonce, err := p.Begin(ctx, ports.BeginInput{RedirectURL: redirectURL})
	if err != nil {
		return nil, fmt.Errorf("begin auth flow: %w", err)
	}

	return &BeginLoginResult{
		Provider: p.Name(),
		AuthURL:  authURL,
		State:    state,
		Nonce:    nonce,
	}, nil
}

// CompleteLoginInput groups parameters for completing a login flow.
type CompleteLoginInput struct {
	Provider string
	Code     string
	State    string
	Nonce    string
}

// CompleteLoginResult contains the result of completing a login flow.
type CompleteLoginResult struct {
	Identity domainauth.Identity
	Auth     domainauth.AuthResult
}

// CompleteLogin exchanges the authorization code for an identity and trades the identity for
// a backend credential.
func (s *SocialAuthService) CompleteLogin(ctx context.Context, input CompleteLoginInput) (*CompleteLoginResult, error) {
	if input.Code == "" {
		return nil, errors.New("authorization code is required")
	}
	if input.State == "" {
		return nil, errors.New("state parameter is required")
	}
	if input.Nonce == "" {
		return nil, errors.New("nonce parameter is required")
	}
	p, err := s.provider(input.Provider)
	if err != nil {
		return nil, err
	}

	identity, err := p.Exchange(ctx, ports.ExchangeInput{
		Code:  input.Code,
		State: input.State,
		Nonce: input.Nonce,
	})
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}

	res, err := s.api.SocialLogin(ctx, ports.SocialLoginInput{
		Provider: p.Name(),
		IDToken:  identity.IDToken,
		Email:    domainauth.NormalizeEmail(identity.Email),
		Name:     identity.DisplayName(),
		Avatar:   identity.Picture,
	})
	if err != nil {
		return nil, fmt.Errorf("backend social login: %w", err)
	}
	if res.Token == "" {
		return nil, errors.New("backend social login returned no token")
	}

	s.logger.InfoContext(ctx, "social sign-in completed", "provider", p.Name(), "subject", identity.Subject)
	return &CompleteLoginResult{Identity: identity, Auth: res}, nil
}
