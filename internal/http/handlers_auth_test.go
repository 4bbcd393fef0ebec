package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainauth "github.com/target/stylist-web/internal/domain/auth"
	mockauth "github.com/target/stylist-web/internal/mocks/auth"
	"github.com/target/stylist-web/internal/ports"
	"github.com/target/stylist-web/internal/service"
)

type authHarness struct {
	h      *AuthHandlers
	api    *mockauth.FuncAuthAPI
	social []ports.SocialLoginInput
}

func newAuthHarness(t *testing.T) *authHarness {
	t.Helper()
	hs := &authHarness{}
	hs.api = &mockauth.FuncAuthAPI{
		SocialLoginFunc: func(_ context.Context, in ports.SocialLoginInput) (domainauth.AuthResult, error) {
			hs.social = append(hs.social, in)
			return domainauth.AuthResult{User: &domainauth.User{ID: "u1", Email: in.Email}, Token: "minted-token"}, nil
		},
	}
	svc, err := service.NewSocialAuthService(service.SocialAuthServiceOptions{
		Providers: []ports.AuthProvider{mockauth.NewMockAuthProvider()},
		API:       hs.api,
	})
	require.NoError(t, err)
	hs.h = &AuthHandlers{Svc: svc, SecureCookies: true}
	return hs
}

func cookieByName(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestAuthHandlers_Login(t *testing.T) {
	hs := newAuthHarness(t)
	rec := httptest.NewRecorder()
	hs.h.Login(rec, httptest.NewRequest(http.MethodGet, "/auth/social/login?provider=google&redirect=/workshops", nil))

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://mock-idp/auth", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.NotNil(t, cookieByName(cookies, stateCookie))
	assert.Equal(t, "state-1", cookieByName(cookies, stateCookie).Value)
	assert.Equal(t, "nonce-1", cookieByName(cookies, nonceCookie).Value)
	assert.Equal(t, "google", cookieByName(cookies, providerCookie).Value)
	assert.Equal(t, "/workshops", cookieByName(cookies, redirectCookie).Value)
	assert.True(t, cookieByName(cookies, stateCookie).HttpOnly)
	assert.Equal(t, oauthCookieMaxAge, cookieByName(cookies, stateCookie).MaxAge)
}

func TestAuthHandlers_Login_SingleProviderDefaultAndUnsafeRedirect(t *testing.T) {
	hs := newAuthHarness(t)
	rec := httptest.NewRecorder()
	hs.h.Login(rec, httptest.NewRequest(http.MethodGet, "/auth/social/login?redirect=https://evil.example", nil))

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", cookieByName(rec.Result().Cookies(), redirectCookie).Value)
}

func TestAuthHandlers_Login_UnknownProvider(t *testing.T) {
	hs := newAuthHarness(t)
	rec := httptest.NewRecorder()
	hs.h.Login(rec, httptest.NewRequest(http.MethodGet, "/auth/social/login?provider=myspace", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown_provider")
}

func callbackRequest(query string, cookies map[string]string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/auth/callback?"+query, nil)
	for name, v := range cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: v})
	}
	return req
}

func TestAuthHandlers_Callback_MintsCredential(t *testing.T) {
	hs := newAuthHarness(t)
	rec := httptest.NewRecorder()
	hs.h.Callback(rec, callbackRequest("code=abc&state=s1", map[string]string{
		stateCookie:    "s1",
		nonceCookie:    "n1",
		providerCookie: "google",
		redirectCookie: "/gallery",
	}))

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/gallery", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	cred := cookieByName(cookies, DefaultCredentialCookie)
	require.NotNil(t, cred)
	assert.Equal(t, "minted-token", cred.Value)
	assert.Equal(t, "/", cred.Path)
	assert.Equal(t, http.SameSiteLaxMode, cred.SameSite)
	assert.True(t, cred.Secure)
	assert.False(t, cred.HttpOnly)
	assert.Equal(t, int(DefaultCredentialTTL.Seconds()), cred.MaxAge)

	assert.Equal(t, -1, cookieByName(cookies, stateCookie).MaxAge)
	assert.Equal(t, -1, cookieByName(cookies, nonceCookie).MaxAge)

	require.Len(t, hs.social, 1)
	assert.Equal(t, "google", hs.social[0].Provider)
	assert.Equal(t, "mock.stylist@example.com", hs.social[0].Email)
	assert.Equal(t, "Mock Stylist", hs.social[0].Name)
	assert.Equal(t, "mock-id-token", hs.social[0].IDToken)
}

func TestAuthHandlers_Callback_Validation(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		cookies map[string]string
		errCode string
	}{
		{"missing code", "state=s1", map[string]string{stateCookie: "s1", nonceCookie: "n"}, "missing_code"},
		{"missing state", "code=c", map[string]string{stateCookie: "s1", nonceCookie: "n"}, "missing_state"},
		{"state mismatch", "code=c&state=other", map[string]string{stateCookie: "s1", nonceCookie: "n"}, "invalid_state"},
		{"no state cookie", "code=c&state=s1", map[string]string{nonceCookie: "n"}, "invalid_state"},
		{"no nonce cookie", "code=c&state=s1", map[string]string{stateCookie: "s1"}, "missing_nonce"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hs := newAuthHarness(t)
			rec := httptest.NewRecorder()
			hs.h.Callback(rec, callbackRequest(tt.query, tt.cookies))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.errCode, body["error"])
			assert.Empty(t, hs.social)
		})
	}
}

func TestAuthHandlers_Callback_BackendFailure(t *testing.T) {
	hs := newAuthHarness(t)
	hs.api.SocialLoginFunc = func(context.Context, ports.SocialLoginInput) (domainauth.AuthResult, error) {
		return domainauth.AuthResult{}, errors.New("backend down")
	}
	rec := httptest.NewRecorder()
	hs.h.Callback(rec, callbackRequest("code=c&state=s1", map[string]string{
		stateCookie: "s1", nonceCookie: "n1", providerCookie: "google",
	}))

	require.Equal(t, http.StatusFound, rec.Code)
	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, LoginRoute, loc.Path)
	assert.Equal(t, "social_login_failed", loc.Query().Get("error"))
	assert.Nil(t, cookieByName(rec.Result().Cookies(), DefaultCredentialCookie))
}

func TestAuthHandlers_Callback_IdPError(t *testing.T) {
	hs := newAuthHarness(t)
	rec := httptest.NewRecorder()
	hs.h.Callback(rec, callbackRequest("error=access_denied", nil))

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?error=social_login_cancelled", rec.Header().Get("Location"))
}

func TestAuthHandlers_Logout(t *testing.T) {
	hs := newAuthHarness(t)

	rec := httptest.NewRecorder()
	hs.h.Logout(rec, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, LoginRoute, rec.Header().Get("Location"))
	cred := cookieByName(rec.Result().Cookies(), DefaultCredentialCookie)
	require.NotNil(t, cred)
	assert.Equal(t, -1, cred.MaxAge)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Accept", "application/json")
	rec = httptest.NewRecorder()
	hs.h.Logout(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"success","redirect_to":"/login"}`, rec.Body.String())
}

func TestAuthHandlers_Status(t *testing.T) {
	hs := newAuthHarness(t)

	rec := httptest.NewRecorder()
	hs.h.Status(rec, httptest.NewRequest(http.MethodGet, "/auth/status", nil))
	assert.JSONEq(t, `{"authenticated":false,"providers":["google"]}`, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/auth/status", nil)
	req.AddCookie(&http.Cookie{Name: DefaultCredentialCookie, Value: "tok"})
	rec = httptest.NewRecorder()
	hs.h.Status(rec, req)
	assert.JSONEq(t, `{"authenticated":true,"providers":["google"]}`, rec.Body.String())

	rec = httptest.NewRecorder()
	(&AuthHandlers{}).Status(rec, httptest.NewRequest(http.MethodGet, "/auth/status", nil))
	assert.JSONEq(t, `{"authenticated":false,"providers":[]}`, rec.Body.String())
}

func TestSafeRedirectPath(t *testing.T) {
	cases := map[string]string{
		"":                    "/",
		"/workshops?tab=mine": "/workshops?tab=mine",
		"https://evil.com/x":  "/",
		"//evil.com":          "/",
		`/\evil.com`:          "/",
		"relative":            "/",
	}
	for in, want := range cases {
		assert.Equal(t, want, safeRedirectPath(in), in)
	}
}
