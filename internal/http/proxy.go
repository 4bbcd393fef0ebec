package httpx

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// RequestIDHeader correlates proxied requests with backend logs.
const RequestIDHeader = "X-Request-ID"

// APIProxyConfig configures NewAPIProxy.
type APIProxyConfig struct {
	// Backend is the API origin, e.g. "http://localhost:4000".
	Backend string
	// CookieName is the credential cookie lifted into an Authorization header when the request has none.
	CookieName string
	Transport  http.RoundTripper
	Logger     *slog.Logger
}

// NewAPIProxy forwards /api requests to the backend unchanged apart from forwarding headers,
// a request ID and, for cookie-only callers, the bearer credential.
func NewAPIProxy(cfg APIProxyConfig) (http.Handler, error) {
	target, err := url.Parse(cfg.Backend)
	if err != nil || target.Scheme == "" || target.Host == "" {
		return nil, fmt.Errorf("invalid API backend URL %q", cfg.Backend)
	}
	cookieName := cfg.CookieName
	if cookieName == "" {
		cookieName = DefaultCredentialCookie
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.SetXForwarded()
			pr.Out.Host = target.Host
			if pr.Out.Header.Get(RequestIDHeader) == "" {
				pr.Out.Header.Set(RequestIDHeader, uuid.NewString())
			}
			if pr.Out.Header.Get("Authorization") == "" {
				if c, cErr := pr.In.Cookie(cookieName); cErr == nil && c.Value != "" {
					pr.Out.Header.Set("Authorization", "Bearer "+c.Value)
				}
			}
		},
		Transport:     cfg.Transport,
		FlushInterval: 100 * time.Millisecond,
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			if errors.Is(err, r.Context().Err()) {
				return
			}
			logger.WarnContext(r.Context(), "api proxy failed", "path", r.URL.Path, "error", err)
			WriteJSON(w, http.StatusBadGateway, map[string]string{"message": "Backend unavailable"})
		},
	}, nil
}
