package httpx

import (
	"net/http"
	"net/url"
	"path"
	"strings"
)

// Default route classes of the stylist pages.
var (
	DefaultProtectedRoutes = []string{"/", "/profile", "/workshops", "/tutorials", "/gallery", "/community", "/ai-chat"}
	DefaultPublicRoutes    = []string{"/login", "/signup", "/forgot-password", "/reset-password"}
)

const (
	// APIPrefix marks backend paths; the guard leaves them alone.
	APIPrefix = "/api"
	// LoginRoute is where unauthenticated visitors of protected pages are sent.
	LoginRoute = "/login"
	// SignupRoute is the other page an authenticated visitor is bounced from.
	SignupRoute = "/signup"
	// LandingRoute is where authenticated visitors land.
	LandingRoute = "/"
	// RedirectParam carries the originally requested path to the login page.
	RedirectParam = "redirect"
	// DefaultCredentialCookie is the cookie holding the bearer credential.
	DefaultCredentialCookie = "auth_token"
)

// GuardConfig configures RouteGuard.
type GuardConfig struct {
	Protected []string
	Public    []string
	// CookieName is the credential cookie; DefaultCredentialCookie when empty.
	CookieName string
	// APIOrigin is added to the CSP connect-src, e.g. "http://localhost:4000".
	APIOrigin string
	// RedirectStatus is used for guard redirects; 307 when zero.
	RedirectStatus int
}

func (c GuardConfig) withDefaults() GuardConfig {
	if c.Protected == nil {
		c.Protected = DefaultProtectedRoutes
	}
	if c.Public == nil {
		c.Public = DefaultPublicRoutes
	}
	if c.CookieName == "" {
		c.CookieName = DefaultCredentialCookie
	}
	if c.RedirectStatus == 0 {
		c.RedirectStatus = http.StatusTemporaryRedirect
	}
	return c
}

// RouteGuard returns a middleware that decides, once per request and before the handler runs,
// whether a page may be served. Only the presence of a credential is checked; validating it is
// the backend's job.
func RouteGuard(cfg GuardConfig) func(http.Handler) http.Handler {
	cfg = cfg.withDefaults()
	csp := ContentSecurityPolicy(cfg.APIOrigin)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := r.URL.Path
			if strings.HasPrefix(p, APIPrefix) || isStaticAsset(p) {
				next.ServeHTTP(w, r)
				return
			}

			authed := hasCredential(r, cfg.CookieName)
			switch {
			case matchesAny(p, cfg.Protected) && !authed:
				http.Redirect(w, r, loginRedirect(p), cfg.RedirectStatus)
				return
			case authed && (p == LoginRoute || p == SignupRoute) && matchesAny(p, cfg.Public):
				http.Redirect(w, r, LandingRoute, cfg.RedirectStatus)
				return
			}

			setSecurityHeaders(w.Header(), csp)
			next.ServeHTTP(w, r.WithContext(WithCredentialPresence(r.Context(), authed)))
		})
	}
}

// matchesRoute reports whether p is route or lies under it. "/" only matches itself.
func matchesRoute(p, route string) bool {
	return p == route || strings.HasPrefix(p, route+"/")
}

func matchesAny(p string, routes []string) bool {
	for _, route := range routes {
		if matchesRoute(p, route) {
			return true
		}
	}
	return false
}

// hasCredential reports whether the request carries the credential cookie or an
// Authorization header.
func hasCredential(r *http.Request, cookieName string) bool {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		return true
	}
	return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ") != ""
}

func loginRedirect(p string) string {
	q := url.Values{}
	q.Set(RedirectParam, p)
	return LoginRoute + "?" + q.Encode()
}

//nolint:gochecknoglobals // static read-only lookup
var staticExtensions = map[string]bool{
	".svg": true, ".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true, ".ico": true,
}

// isStaticAsset matches files the guard never sees: bundled assets and images.
func isStaticAsset(p string) bool {
	if strings.HasPrefix(p, "/static/") || p == "/favicon.ico" {
		return true
	}
	return staticExtensions[strings.ToLower(path.Ext(p))]
}

// ContentSecurityPolicy builds the page CSP; apiOrigin is allowed for connections.
func ContentSecurityPolicy(apiOrigin string) string {
	connect := "'self'"
	if apiOrigin != "" {
		connect += " " + apiOrigin
	}
	connect += " https:"
	return "default-src 'self'; " +
		"script-src 'self' 'unsafe-eval' 'unsafe-inline'; " +
		"style-src 'self' 'unsafe-inline'; " +
		"img-src 'self' data: https:; " +
		"font-src 'self' data:; " +
		"connect-src " + connect + ";"
}

func setSecurityHeaders(h http.Header, csp string) {
	h.Set("X-Frame-Options", "DENY")
	h.Set("X-Content-Type-Options", "nosniff")
	h.Set("Referrer-Policy", "origin-when-cross-origin")
	h.Set("X-XSS-Protection", "1; mode=block")
	h.Set("Content-Security-Policy", csp)
}
