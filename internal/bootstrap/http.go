package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/target/stylist-web/config"
	"github.com/target/stylist-web/internal/apiclient"
	httpx "github.com/target/stylist-web/internal/http"
	"golang.org/x/sync/errgroup"
)

// EdgeDeps contains what the edge web server is built from.
type EdgeDeps struct {
	Config *config.AppConfig
	// Pages overrides HTTP.StaticDir (tests).
	Pages fs.FS
	// Transport overrides the round tripper used for the backend (tests).
	Transport http.RoundTripper
	Logger    *slog.Logger
}

// BuildEdgeHandler wires the route guard, the /api proxy, the sign-in endpoints and the pages.
func BuildEdgeHandler(ctx context.Context, deps EdgeDeps) (http.Handler, error) {
	if deps.Config == nil {
		return nil, errors.New("edge config is required")
	}
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	proxy, err := httpx.NewAPIProxy(httpx.APIProxyConfig{
		Backend:    cfg.API.BaseURL,
		CookieName: cfg.Credential.CookieName,
		Transport:  deps.Transport,
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("api proxy: %w", err)
	}

	// The edge mints credentials itself; it never stores or forwards one of its own.
	api, err := apiclient.New(apiclient.Options{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout,
		Transport: deps.Transport,
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("api client: %w", err)
	}

	router := httpx.RouterOptions{
		APIProxy: proxy,
		Pages:    deps.Pages,
		Guard: httpx.GuardConfig{
			CookieName: cfg.Credential.CookieName,
			APIOrigin:  cfg.API.Origin(),
		},
		CookieDomain:  cfg.HTTP.CookieDomain,
		SecureCookies: cfg.IsProduction(),
		CredentialTTL: cfg.Credential.TTL,
		Compress:      cfg.HTTP.CompressionEnabled,
		Logger:        logger,
	}
	// A nil *SocialAuthService must stay a nil interface so the router skips social routes.
	if svc := BuildSocialAuthService(ctx, AuthDeps{Auth: cfg.Auth, API: api.Auth(), Logger: logger}); svc != nil {
		router.Auth = svc
	}
	if router.Pages == nil && cfg.HTTP.StaticDir != "" {
		router.Pages = os.DirFS(cfg.HTTP.StaticDir)
	}

	if cfg.HTTP.CompressionEnabled {
		logger.InfoContext(ctx, "HTTP compression enabled")
	}
	return httpx.NewRouter(router), nil
}

// HTTPServerConfig contains configuration for RunHTTPServer.
type HTTPServerConfig struct {
	Addr    string
	Handler http.Handler
	// Listener overrides Addr (tests).
	Listener          net.Listener
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
	Logger            *slog.Logger
}

// RunHTTPServer serves until ctx is canceled, then shuts the server down gracefully.
// It returns nil after a clean shutdown.
func RunHTTPServer(ctx context.Context, cfg HTTPServerConfig) error {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	addr := cfg.Addr
	// Guard against empty addr to avoid listening on Go default
	if addr == "" {
		addr = ":3000"
	}
	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}

	server := &http.Server{
		Addr:              addr,
		Handler:           cfg.Handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		IdleTimeout:       120 * time.Second,
	}

	ln := cfg.Listener
	if ln == nil {
		var err error
		if ln, err = net.Listen("tcp", addr); err != nil {
			return fmt.Errorf("listen %s: %w", addr, err)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.InfoContext(ctx, "starting HTTP server", "addr", ln.Addr().String())
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.InfoContext(ctx, "shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		logger.InfoContext(ctx, "HTTP server stopped")
		return nil
	})
	return g.Wait()
}
