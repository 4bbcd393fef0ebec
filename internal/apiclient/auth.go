package apiclient

import (
	"context"
	"net/http"

	domainauth "github.com/target/stylist-web/internal/domain/auth"
	"github.com/target/stylist-web/internal/ports"
)

var _ ports.AuthAPI = (*AuthAPI)(nil)

// AuthAPI groups the /api/auth endpoints.
type AuthAPI struct{ c *Client }

// Auth returns the account endpoints.
func (c *Client) Auth() *AuthAPI { return &AuthAPI{c: c} }

func (a *AuthAPI) Login(ctx context.Context, in domainauth.LoginCredentials) (domainauth.AuthResult, error) {
	var out domainauth.AuthResult
	err := a.c.do(ctx, call{method: http.MethodPost, path: "/api/auth/login", body: in, out: &out, action: ActionAuth})
	return out, err
}

func (a *AuthAPI) Signup(ctx context.Context, in domainauth.SignupCredentials) (domainauth.AuthResult, error) {
	var out domainauth.AuthResult
	err := a.c.do(ctx, call{method: http.MethodPost, path: "/api/auth/signup", body: in, out: &out, action: ActionAuth})
	return out, err
}

func (a *AuthAPI) SocialLogin(ctx context.Context, in ports.SocialLoginInput) (domainauth.AuthResult, error) {
	var out domainauth.AuthResult
	err := a.c.do(ctx, call{method: http.MethodPost, path: "/api/auth/social", body: in, out: &out, action: ActionAuth})
	return out, err
}

func (a *AuthAPI) Logout(ctx context.Context) error {
	return a.c.do(ctx, call{method: http.MethodPost, path: "/api/auth/logout", action: ActionSignOut})
}

func (a *AuthAPI) Me(ctx context.Context) (*domainauth.User, error) {
	var out domainauth.User
	if err := a.c.do(ctx, call{method: http.MethodGet, path: "/api/auth/me", out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AuthAPI) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return a.c.do(ctx, call{method: http.MethodPost, path: "/api/auth/forgot-password", body: body, action: ActionAccountLookup})
}

func (a *AuthAPI) ResetPassword(ctx context.Context, in domainauth.ResetPasswordInput) error {
	return a.c.do(ctx, call{method: http.MethodPost, path: "/api/auth/reset-password", body: in})
}

func (a *AuthAPI) UpdateProfile(ctx context.Context, patch domainauth.UserPatch) (*domainauth.User, error) {
	var out domainauth.User
	if err := a.c.do(ctx, call{method: http.MethodPut, path: "/api/auth/profile", body: patch, out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AuthAPI) ChangePassword(ctx context.Context, in domainauth.ChangePasswordInput) error {
	return a.c.do(ctx, call{method: http.MethodPut, path: "/api/auth/change-password", body: in})
}
