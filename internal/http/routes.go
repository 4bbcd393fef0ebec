package httpx

import (
	"io/fs"
	"log/slog"
	"net/http"
	"time"
)

// RouterOptions groups what the edge router serves.
type RouterOptions struct {
	// Auth enables the social sign-in endpoints; nil leaves only logout and status.
	Auth SocialAuthService
	// APIProxy handles /api; nil answers 502.
	APIProxy http.Handler
	// Pages is the built front-end; nil serves a placeholder page.
	Pages fs.FS

	Guard         GuardConfig
	CookieDomain  string
	SecureCookies bool
	CredentialTTL time.Duration
	// Compress gzips text responses.
	Compress bool
	Logger   *slog.Logger
}

// NewRouter wires the edge routes behind the route guard.
func NewRouter(opts RouterOptions) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	mux := http.NewServeMux()

	health := healthHandler(opts.Guard.APIOrigin, opts.APIProxy != nil)
	mux.Handle("GET /healthz", health)
	mux.Handle("HEAD /healthz", health)

	api := opts.APIProxy
	if api == nil {
		api = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			WriteJSON(w, http.StatusBadGateway, map[string]string{"message": "Backend not configured"})
		})
	}
	mux.Handle(APIPrefix+"/", api)

	auth := &AuthHandlers{
		Svc:           opts.Auth,
		CookieName:    opts.Guard.CookieName,
		CookieDomain:  opts.CookieDomain,
		SecureCookies: opts.SecureCookies,
		CredentialTTL: opts.CredentialTTL,
		Logger:        logger,
	}
	registerAuthRoutes(mux, auth, opts.Auth != nil)

	if opts.Pages != nil {
		if sub, err := fs.Sub(opts.Pages, "static"); err == nil {
			mux.Handle("GET /static/", staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServerFS(sub))))
		}
	}
	mux.Handle("/", PageHandler(opts.Pages))

	var h http.Handler = mux
	h = RouteGuard(opts.Guard)(h)
	if opts.Compress {
		h = Compression()(h)
	}
	h = Logging(logger)(h)
	return Recover(logger)(h)
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers, social bool) {
	if social {
		mux.HandleFunc("GET /auth/social/login", h.Login)
		mux.HandleFunc("GET /auth/callback", h.Callback)
	}
	mux.HandleFunc("GET /auth/logout", h.Logout)
	mux.HandleFunc("POST /auth/logout", h.Logout)
	mux.HandleFunc("GET /auth/status", h.Status)
}
