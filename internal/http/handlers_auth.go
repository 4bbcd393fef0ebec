package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/target/stylist-web/internal/service"
)

// Cookie names used by the social sign-in flow.
const (
	stateCookie    = "oauth_state"
	nonceCookie    = "oauth_nonce"
	providerCookie = "oauth_provider"
	redirectCookie = "post_login_redirect"

	oauthCookieMaxAge = 600 // 10 minutes

	// DefaultCredentialTTL is the lifetime of the minted credential cookie.
	DefaultCredentialTTL = 7 * 24 * time.Hour
)

// SocialAuthService defines the social sign-in operations the handlers need.
type SocialAuthService interface {
	Providers() []string
	BeginLogin(ctx context.Context, provider, redirectURL string) (*service.BeginLoginResult, error)
	CompleteLogin(ctx context.Context, input service.CompleteLoginInput) (*service.CompleteLoginResult, error)
}

// AuthHandlers provides the edge endpoints for social sign-in and the credential cookie.
type AuthHandlers struct {
	Svc SocialAuthService
	// CookieName is the credential cookie; DefaultCredentialCookie when empty.
	CookieName   string
	CookieDomain string
	// SecureCookies marks the credential cookie Secure (production).
	SecureCookies bool
	// CredentialTTL defaults to DefaultCredentialTTL.
	CredentialTTL time.Duration
	Logger        *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

func (h *AuthHandlers) cookieName() string {
	if h.CookieName != "" {
		return h.CookieName
	}
	return DefaultCredentialCookie
}

// Login starts a social sign-in.
// GET /auth/social/login?provider=<name>&redirect=<optional_path>.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	redirect := safeRedirectPath(q.Get(RedirectParam))

	provider := q.Get("provider")
	if provider == "" {
		if names := h.Svc.Providers(); len(names) == 1 {
			provider = names[0]
		}
	}

	result, err := h.Svc.BeginLogin(r.Context(), provider, redirect)
	if err != nil {
		status, code := http.StatusInternalServerError, "login_failed"
		if errors.Is(err, service.ErrUnknownProvider) {
			status, code = http.StatusBadRequest, "unknown_provider"
		}
		WriteError(w, ErrorParams{Code: status, ErrCode: code, Err: err})
		return
	}

	secure := isHTTPS(r)
	h.setTempCookie(w, stateCookie, result.State, secure)
	h.setTempCookie(w, nonceCookie, result.Nonce, secure)
	h.setTempCookie(w, providerCookie, result.Provider, secure)
	h.setTempCookie(w, redirectCookie, redirect, secure)

	http.Redirect(w, r, result.AuthURL, http.StatusFound)
}

// Callback completes a social sign-in and mints the credential cookie.
// GET /auth/callback?code=<code>&state=<state>.
func (h *AuthHandlers) Callback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if idpErr := q.Get("error"); idpErr != "" {
		h.logger().WarnContext(r.Context(), "identity provider returned an error", "error", idpErr)
		h.clearTempCookies(w, r)
		http.Redirect(w, r, loginWithError("social_login_cancelled"), http.StatusFound)
		return
	}

	code, state := q.Get("code"), q.Get("state")
	if code == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_code",
			Err:     errors.New("authorization code is required"),
		})
		return
	}
	if state == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_state",
			Err:     errors.New("state parameter is required"),
		})
		return
	}

	sc, err := r.Cookie(stateCookie)
	if err != nil || sc.Value != state {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_state",
			Err:     errors.New("invalid or missing state parameter"),
		})
		return
	}
	nc, err := r.Cookie(nonceCookie)
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_nonce",
			Err:     errors.New("missing nonce parameter"),
		})
		return
	}
	var provider string
	if pc, pErr := r.Cookie(providerCookie); pErr == nil {
		provider = pc.Value
	}

	result, err := h.Svc.CompleteLogin(r.Context(), service.CompleteLoginInput{
		Provider: provider,
		Code:     code,
		State:    state,
		Nonce:    nc.Value,
	})
	if err != nil {
		h.logger().WarnContext(r.Context(), "social sign-in failed", "provider", provider, "error", err)
		h.clearTempCookies(w, r)
		http.Redirect(w, r, loginWithError("social_login_failed"), http.StatusFound)
		return
	}

	h.setCredentialCookie(w, result.Auth.Token)
	redirect := h.postLoginRedirect(r)
	h.clearTempCookies(w, r)
	http.Redirect(w, r, redirect, http.StatusFound)
}

// Logout drops the credential cookie and sends the browser to the login page.
// GET|POST /auth/logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.expireCookie(w, h.cookieName(), h.SecureCookies, false)

	isAJAX := strings.Contains(r.Header.Get("Accept"), "application/json") ||
		strings.EqualFold(r.Header.Get("X-Requested-With"), "XMLHttpRequest")
	if isAJAX {
		WriteJSON(w, http.StatusOK, map[string]string{
			"status":      "success",
			"redirect_to": LoginRoute,
		})
		return
	}
	http.Redirect(w, r, LoginRoute, http.StatusFound)
}

// Status reports whether the request carries a credential and which providers are offered.
// GET /auth/status.
func (h *AuthHandlers) Status(w http.ResponseWriter, r *http.Request) {
	providers := []string{}
	if h.Svc != nil {
		providers = h.Svc.Providers()
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"authenticated": hasCredential(r, h.cookieName()),
		"providers":     providers,
	})
}

// setCredentialCookie mirrors the client-side credential cookie: readable by scripts, Lax, Path=/.
func (h *AuthHandlers) setCredentialCookie(w http.ResponseWriter, token string) {
	ttl := h.CredentialTTL
	if ttl <= 0 {
		ttl = DefaultCredentialTTL
	}
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName(),
		Value:    token,
		Path:     "/",
		Domain:   h.CookieDomain,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(ttl.Seconds()),
		Expires:  time.Now().Add(ttl).UTC(),
	})
}

func (h *AuthHandlers) setTempCookie(w http.ResponseWriter, name, value string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   oauthCookieMaxAge,
	})
}

func (h *AuthHandlers) clearTempCookies(w http.ResponseWriter, r *http.Request) {
	secure := isHTTPS(r)
	for _, name := range []string{stateCookie, nonceCookie, providerCookie, redirectCookie} {
		h.expireCookie(w, name, secure, true)
	}
}

// expireCookie mirrors the attributes used when setting so browsers match the cookie on deletion.
func (h *AuthHandlers) expireCookie(w http.ResponseWriter, name string, secure, httpOnly bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: httpOnly,
		Secure:   secure,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandlers) postLoginRedirect(r *http.Request) string {
	if c, err := r.Cookie(redirectCookie); err == nil {
		return safeRedirectPath(c.Value)
	}
	return LandingRoute
}

func isHTTPS(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

func loginWithError(code string) string {
	q := url.Values{}
	q.Set("error", code)
	return LoginRoute + "?" + q.Encode()
}

// safeRedirectPath keeps redirects on this origin: a relative path starting with a single "/".
// Anything else becomes the landing page.
func safeRedirectPath(candidate string) string {
	if candidate == "" || strings.HasPrefix(candidate, "//") || strings.HasPrefix(candidate, `/\`) {
		return LandingRoute
	}
	u, err := url.Parse(candidate)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") {
		return LandingRoute
	}
	return candidate
}
