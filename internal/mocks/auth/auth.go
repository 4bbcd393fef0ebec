// Package auth contains simple hand-written test doubles for session and navigation ports.
// These are lightweight and suitable for unit tests without codegen.
package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	domainauth "github.com/target/stylist-web/internal/domain/auth"
	"github.com/target/stylist-web/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.AuthProvider = (*MockAuthProvider)(nil)
	_ ports.Navigator    = (*RecordingNavigator)(nil)
	_ ports.AuthAPI      = (*FuncAuthAPI)(nil)
)

// MockAuthProvider simulates a social IdP for tests with deterministic state/nonce handling.
type MockAuthProvider struct {
	BeginFunc    func(ctx context.Context, in ports.BeginInput) (authURL, state, nonce string, err error)
	ExchangeFunc func(ctx context.Context, in ports.ExchangeInput) (domainauth.Identity, error)

	// Deterministic values for predictable testing
	ProviderName string
	AuthURL      string
	StatePrefix  string
	NoncePrefix  string
	DefaultUser  domainauth.Identity

	mu        sync.Mutex
	callCount int
}

// NewMockAuthProvider creates a MockAuthProvider with sensible defaults.
func NewMockAuthProvider() *MockAuthProvider {
	return &MockAuthProvider{
		ProviderName: "google",
		AuthURL:      "https://mock-idp/auth",
		StatePrefix:  "state",
		NoncePrefix:  "nonce",
		DefaultUser:  defaultIdentity(),
	}
}

func defaultIdentity() domainauth.Identity {
	return domainauth.Identity{
		Provider:  "google",
		Subject:   "mock-user-1",
		Name:      "Mock Stylist",
		FirstName: "Mock",
		LastName:  "Stylist",
		Email:     "mock.stylist@example.com",
		IDToken:   "mock-id-token",
	}
}

func (m *MockAuthProvider) Name() string {
	if m.ProviderName == "" {
		return "google"
	}
	return m.ProviderName
}

func (m *MockAuthProvider) Begin(ctx context.Context, in ports.BeginInput) (string, string, string, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx, in)
	}

	m.mu.Lock()
	m.callCount++
	n := m.callCount
	m.mu.Unlock()

	authURL := m.AuthURL
	if authURL == "" {
		authURL = "https://mock-idp/auth"
	}
	statePrefix := m.StatePrefix
	if statePrefix == "" {
		statePrefix = "state"
	}
	noncePrefix := m.NoncePrefix
	if noncePrefix == "" {
		noncePrefix = "nonce"
	}

	return authURL, fmt.Sprintf("%s-%d", statePrefix, n), fmt.Sprintf("%s-%d", noncePrefix, n), nil
}

func (m *MockAuthProvider) Exchange(ctx context.Context, in ports.ExchangeInput) (domainauth.Identity, error) {
	if m.ExchangeFunc != nil {
		return m.ExchangeFunc(ctx, in)
	}

	// Return a copy of the default user with a fresh expiration time
	user := m.DefaultUser
	if user.Subject == "" {
		user = defaultIdentity()
	}
	user.ExpiresAt = time.Now().Add(time.Hour)
	return user, nil
}

// RecordingNavigator records navigations and tracks the current path.
type RecordingNavigator struct {
	mu      sync.Mutex
	current string
	visited []string
}

// NewRecordingNavigator starts at path.
func NewRecordingNavigator(path string) *RecordingNavigator {
	return &RecordingNavigator{current: path}
}

func (n *RecordingNavigator) Navigate(_ context.Context, path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current = path
	n.visited = append(n.visited, path)
}

func (n *RecordingNavigator) CurrentPath() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Visited returns every path navigated to, in order.
func (n *RecordingNavigator) Visited() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.visited...)
}

// ErrNotImplemented is returned by FuncAuthAPI methods without a function set.
var ErrNotImplemented = errors.New("not implemented")

// FuncAuthAPI implements ports.AuthAPI with optional function fields. Handy when a test needs
// to block or sequence calls, which is awkward with gomock expectations.
type FuncAuthAPI struct {
	LoginFunc          func(ctx context.Context, in domainauth.LoginCredentials) (domainauth.AuthResult, error)
	SignupFunc         func(ctx context.Context, in domainauth.SignupCredentials) (domainauth.AuthResult, error)
	SocialLoginFunc    func(ctx context.Context, in ports.SocialLoginInput) (domainauth.AuthResult, error)
	LogoutFunc         func(ctx context.Context) error
	MeFunc             func(ctx context.Context) (*domainauth.User, error)
	ForgotPasswordFunc func(ctx context.Context, email string) error
	ResetPasswordFunc  func(ctx context.Context, in domainauth.ResetPasswordInput) error
	UpdateProfileFunc  func(ctx context.Context, patch domainauth.UserPatch) (*domainauth.User, error)
	ChangePasswordFunc func(ctx context.Context, in domainauth.ChangePasswordInput) error
}

func (f *FuncAuthAPI) Login(ctx context.Context, in domainauth.LoginCredentials) (domainauth.AuthResult, error) {
	if f.LoginFunc == nil {
		return domainauth.AuthResult{}, ErrNotImplemented
	}
	return f.LoginFunc(ctx, in)
}

func (f *FuncAuthAPI) Signup(ctx context.Context, in domainauth.SignupCredentials) (domainauth.AuthResult, error) {
	if f.SignupFunc == nil {
		return domainauth.AuthResult{}, ErrNotImplemented
	}
	return f.SignupFunc(ctx, in)
}

func (f *FuncAuthAPI) SocialLogin(ctx context.Context, in ports.SocialLoginInput) (domainauth.AuthResult, error) {
	if f.SocialLoginFunc == nil {
		return domainauth.AuthResult{}, ErrNotImplemented
	}
	return f.SocialLoginFunc(ctx, in)
}

func (f *FuncAuthAPI) Logout(ctx context.Context) error {
	if f.LogoutFunc == nil {
		return nil
	}
	return f.LogoutFunc(ctx)
}

func (f *FuncAuthAPI) Me(ctx context.Context) (*domainauth.User, error) {
	if f.MeFunc == nil {
		return nil, ErrNotImplemented
	}
	return f.MeFunc(ctx)
}

func (f *FuncAuthAPI) ForgotPassword(ctx context.Context, email string) error {
	if f.ForgotPasswordFunc == nil {
		return nil
	}
	return f.ForgotPasswordFunc(ctx, email)
}

func (f *FuncAuthAPI) ResetPassword(ctx context.Context, in domainauth.ResetPasswordInput) error {
	if f.ResetPasswordFunc == nil {
		return nil
	}
	return f.ResetPasswordFunc(ctx, in)
}

func (f *FuncAuthAPI) UpdateProfile(ctx context.Context, patch domainauth.UserPatch) (*domainauth.User, error) {
	if f.UpdateProfileFunc == nil {
		return nil, ErrNotImplemented
	}
	return f.UpdateProfileFunc(ctx, patch)
}

func (f *FuncAuthAPI) ChangePassword(ctx context.Context, in domainauth.ChangePasswordInput) error {
	if f.ChangePasswordFunc == nil {
		return nil
	}
	return f.ChangePasswordFunc(ctx, in)
}
