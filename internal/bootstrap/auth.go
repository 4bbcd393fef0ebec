package bootstrap

import (
	"context"
	"log/slog"

	"github.com/target/stylist-web/config"
	"github.com/target/stylist-web/internal/adapters/devauth"
	"github.com/target/stylist-web/internal/adapters/oidc"
	"github.com/target/stylist-web/internal/ports"
	"github.com/target/stylist-web/internal/service"
)

// AuthDeps contains configuration for the social sign-in service.
type AuthDeps struct {
	Auth   config.AuthConfig
	API    ports.AuthAPI
	Logger *slog.Logger
}

// BuildSocialAuthService creates the social sign-in service for the configured auth mode.
// Returns nil if social sign-in is off or its configuration is invalid.
func BuildSocialAuthService(ctx context.Context, cfg AuthDeps) *service.SocialAuthService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.API == nil {
		logger.WarnContext(ctx, "social sign-in disabled: backend client not configured", "mode", cfg.Auth.Mode)
		return nil
	}

	var (
		prov ports.AuthProvider
		ok   bool
	)
	switch cfg.Auth.Mode {
	case config.AuthModeMock:
		prov, ok = buildDevAuthProvider(ctx, cfg.Auth, logger)
	case config.AuthModeOAuth:
		prov, ok = buildOIDCProvider(ctx, cfg.Auth, logger)
	default:
		return nil
	}
	if !ok {
		return nil
	}

	svc, err := service.NewSocialAuthService(service.SocialAuthServiceOptions{
		Providers: []ports.AuthProvider{prov},
		API:       cfg.API,
		Logger:    logger,
	})
	if err != nil {
		logger.WarnContext(ctx, "failed to create social sign-in service, disabled", "error", err)
		return nil
	}
	logger.InfoContext(ctx, "social sign-in enabled", "mode", cfg.Auth.Mode, "providers", svc.Providers())
	return svc
}

//nolint:ireturn // both providers satisfy ports.AuthProvider.
func buildDevAuthProvider(ctx context.Context, auth config.AuthConfig, logger *slog.Logger) (ports.AuthProvider, bool) {
	prov, err := devauth.NewProvider(devauth.Config{
		Name:      auth.OAuth.Provider,
		Email:     auth.DevAuth.Email,
		FirstName: auth.DevAuth.FirstName,
		LastName:  auth.DevAuth.LastName,
	})
	if err != nil {
		logger.WarnContext(ctx, "failed to create dev auth provider, social sign-in disabled", "error", err)
		return nil, false
	}
	return prov, true
}

//nolint:ireturn // both providers satisfy ports.AuthProvider.
func buildOIDCProvider(ctx context.Context, auth config.AuthConfig, logger *slog.Logger) (ports.AuthProvider, bool) {
	// Only enable when fully configured
	oauth := auth.OAuth
	if oauth.IssuerURL == "" || oauth.ClientID == "" || oauth.ClientSecret == "" {
		logger.WarnContext(ctx, "AuthModeOAuth selected but required config missing; social sign-in disabled",
			"issuer_url_empty", oauth.IssuerURL == "",
			"client_id_empty", oauth.ClientID == "",
			"client_secret_empty", oauth.ClientSecret == "",
		)
		return nil, false
	}

	prov, err := oidc.NewProvider(ctx, oidc.ProviderConfig{
		Name:         oauth.Provider,
		ClientID:     oauth.ClientID,
		ClientSecret: oauth.ClientSecret,
		RedirectURL:  oauth.RedirectURL,
		Scope:        oauth.Scope,
		IssuerURL:    oauth.IssuerURL,
	})
	if err != nil {
		logger.WarnContext(ctx, "failed to create OIDC provider, social sign-in disabled", "error", err)
		return nil, false
	}
	return prov, true
}
