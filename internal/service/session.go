package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/target/stylist-web/internal/apiclient"
	"github.com/target/stylist-web/internal/core"
	domainauth "github.com/target/stylist-web/internal/domain/auth"
	apperrors "github.com/target/stylist-web/internal/errors"
	"github.com/target/stylist-web/internal/observability/notify"
	"github.com/target/stylist-web/internal/ports"
	"golang.org/x/sync/singleflight"
)

// DefaultRefreshInterval is how often Run re-fetches the signed-in user.
const DefaultRefreshInterval = 5 * time.Minute

// Notice texts shown by the session store.
const (
	MsgWelcomeBack     = "Welcome back!"
	MsgAccountCreated  = "Account created successfully!"
	MsgLoggedOut       = "Logged out successfully"
	MsgResetLinkSent   = "If an account exists for that email, a password reset link has been sent."
	MsgPasswordReset   = "Password reset successfully!"
	MsgProfileUpdated  = "Profile updated successfully!"
	MsgPasswordChanged = "Password changed successfully!"
)

// Fallback error messages held in State.Error when the backend gave none.
const (
	errLoginFailed     = "Login failed"
	errSignupFailed    = "Signup failed"
	errResetEmail      = "Failed to send reset email"
	errResetPassword   = "Failed to reset password"
	errUpdateProfile   = "Failed to update profile"
	errChangePassword  = "Failed to change password"
	errPasswordsDiffer = "Passwords do not match"
)

// ErrSuperseded is returned when the session changed (logout or an invalid token) while a
// request was in flight; its response was discarded.
var ErrSuperseded = errors.New("session changed while request was in flight")

// InvalidTokenSource delivers the invalid-token signal raised on 401 responses.
type InvalidTokenSource interface {
	OnInvalidToken(fn func(ctx context.Context)) (unsubscribe func())
}

// SessionConfig tunes the session store.
type SessionConfig struct {
	RefreshInterval time.Duration
	// Now overrides the clock (tests).
	Now func() time.Time
}

// SessionServiceOptions groups dependencies for SessionService.
type SessionServiceOptions struct {
	API         ports.AuthAPI         // Required: backend account endpoints
	Credentials ports.CredentialStore // Required: bearer credential repository
	Snapshots   ports.SnapshotStore   // Optional: persisted {user, isAuthenticated}
	Cache       *core.QueryCache      // Optional: cleared on logout, holds auth/me
	Signals     InvalidTokenSource    // Optional: 401 observer registration
	Notifier    notify.Notifier       // Optional: success notices
	Logger      *slog.Logger          // Optional: structured logger
	Config      SessionConfig
}

// State is the observable session state.
type State struct {
	User            *domainauth.User
	IsAuthenticated bool
	IsLoading       bool
	Error           string
}

// SessionService owns the client session: who is signed in, the credential that proves it,
// and the persisted snapshot that survives restarts.
//
// One instance exists per client process; it is created at start and torn down with Close.
type SessionService struct {
	api       ports.AuthAPI
	creds     ports.CredentialStore
	snapshots ports.SnapshotStore
	cache     *core.QueryCache
	notifier  notify.Notifier
	logger    *slog.Logger
	interval  time.Duration
	now       func() time.Time

	// mu guards the fields below and serialises credential and snapshot writes so they
	// land in the same order as the state changes they belong to.
	mu            sync.Mutex
	user          *domainauth.User
	authenticated bool
	inflight      int
	errMsg        string
	// generation increases whenever the session is torn down; responses to requests issued
	// under an older generation are discarded.
	generation uint64

	bootstrap   singleflight.Group
	unsubscribe func()
	closeOnce   sync.Once
}

// NewSessionService constructs a SessionService and registers it for the invalid-token signal.
func NewSessionService(opts SessionServiceOptions) (*SessionService, error) {
	if opts.API == nil {
		return nil, errors.New("AuthAPI is required")
	}
	if opts.Credentials == nil {
		return nil, errors.New("CredentialStore is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	notifier := opts.Notifier
	if notifier == nil {
		notifier = notify.Discard
	}
	interval := opts.Config.RefreshInterval
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	now := opts.Config.Now
	if now == nil {
		now = time.Now
	}

	s := &SessionService{
		api:       opts.API,
		creds:     opts.Credentials,
		snapshots: opts.Snapshots,
		cache:     opts.Cache,
		notifier:  notifier,
		logger:    logger.With("component", "session"),
		interval:  interval,
		now:       now,
	}
	if opts.Signals != nil {
		s.unsubscribe = opts.Signals.OnInvalidToken(s.HandleInvalidToken)
	}
	return s, nil
}

// MustNewSessionService constructs a SessionService and panics on error.
func MustNewSessionService(opts SessionServiceOptions) *SessionService {
	s, err := NewSessionService(opts)
	if err != nil {
		//nolint:forbidigo // Must constructor fails fast when dependencies are invalid during startup
		panic(fmt.Sprintf("failed to create SessionService: %v", err))
	}
	return s
}

// Close stops listening for the invalid-token signal. It does not touch the stored session.
func (s *SessionService) Close() {
	s.closeOnce.Do(func() {
		if s.unsubscribe != nil {
			s.unsubscribe()
		}
	})
}

// State returns a copy of the current state.
func (s *SessionService) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		User:            s.user.Clone(),
		IsAuthenticated: s.authenticated,
		IsLoading:       s.inflight > 0,
		Error:           s.errMsg,
	}
}

// Snapshot returns the persisted part of the state.
func (s *SessionService) Snapshot() domainauth.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// IsAuthenticated reports whether a user is signed in.
func (s *SessionService) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// Restore loads the persisted snapshot. A missing or unreadable snapshot leaves the session
// anonymous.
func (s *SessionService) Restore(ctx context.Context) error {
	if s.snapshots == nil {
		return nil
	}
	snap, ok, err := s.snapshots.Load(ctx)
	if err != nil {
		return fmt.Errorf("load session snapshot: %w", err)
	}
	if !ok {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = snap.User.Clone()
	s.authenticated = snap.IsAuthenticated && snap.User != nil
	return nil
}

// Login signs in with email and password.
func (s *SessionService) Login(ctx context.Context, in domainauth.LoginCredentials) error {
	in.Email = domainauth.NormalizeEmail(in.Email)
	gen := s.begin()
	res, err := s.api.Login(ctx, in)
	if err := s.completeAuth(ctx, gen, res, err, errLoginFailed); err != nil {
		return err
	}
	s.notifier.Notify(ctx, notify.Success(MsgWelcomeBack))
	return nil
}

// Signup creates an account and signs in with it.
func (s *SessionService) Signup(ctx context.Context, in domainauth.SignupCredentials) error {
	in.Email = domainauth.NormalizeEmail(in.Email)
	in.Name = strings.TrimSpace(in.Name)
	gen := s.begin()
	res, err := s.api.Signup(ctx, in)
	if err := s.completeAuth(ctx, gen, res, err, errSignupFailed); err != nil {
		return err
	}
	s.notifier.Notify(ctx, notify.Success(MsgAccountCreated))
	return nil
}

// LoginWithResult adopts a credential obtained elsewhere, such as a social sign-in completed
// by the edge server.
func (s *SessionService) LoginWithResult(ctx context.Context, res domainauth.AuthResult) error {
	gen := s.begin()
	if err := s.completeAuth(ctx, gen, res, nil, errLoginFailed); err != nil {
		return err
	}
	s.notifier.Notify(ctx, notify.Success(MsgWelcomeBack))
	return nil
}

func (s *SessionService) completeAuth(ctx context.Context, gen uint64, res domainauth.AuthResult, err error, fallback string) error {
	if err == nil && (res.User == nil || res.Token == "") {
		err = apperrors.Internal("authentication response is missing the user or token")
	}
	if err != nil {
		s.fail(err, fallback)
		return err
	}

	user := s.withTrial(res.User)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight--
	if gen != s.generation {
		return ErrSuperseded
	}
	s.creds.Store(ctx, res.Token)
	s.user = user
	s.authenticated = true
	s.errMsg = ""
	s.persistLocked(ctx)
	if s.cache != nil {
		s.cache.Invalidate(authKeys)
		s.cache.SetQueryData(authMeKey, user.Clone())
	}
	s.logger.InfoContext(ctx, "signed in", "user_id", user.ID)
	return nil
}

// Logout ends the session: a best-effort backend logout, then the local teardown.
func (s *SessionService) Logout(ctx context.Context) {
	if err := s.api.Logout(apiclient.WithAction(ctx, apiclient.ActionSignOut)); err != nil {
		s.logger.DebugContext(ctx, "backend logout failed", "error", err)
	}
	s.teardown(ctx, "logout")
	s.notifier.Notify(ctx, notify.Success(MsgLoggedOut))
}

// HandleInvalidToken tears the session down after the backend rejected the credential.
// It is idempotent.
func (s *SessionService) HandleInvalidToken(ctx context.Context) {
	s.teardown(ctx, "invalid_token")
}

func (s *SessionService) teardown(ctx context.Context, reason string) {
	s.mu.Lock()
	s.generation++
	hadUser := s.user != nil
	s.creds.Clear(ctx)
	s.user = nil
	s.authenticated = false
	s.errMsg = ""
	s.persistLocked(ctx)
	s.mu.Unlock()

	if s.cache != nil {
		s.cache.Clear()
	}
	if hadUser {
		s.logger.InfoContext(ctx, "signed out", "reason", reason)
	}
}

// Bootstrap validates a stored credential at start. With a credential and no held user it asks
// the backend who is signed in; a failure drops the credential. Without a credential any
// restored snapshot is discarded. Concurrent callers share one backend call.
func (s *SessionService) Bootstrap(ctx context.Context) error {
	_, err, _ := s.bootstrap.Do("bootstrap", func() (any, error) {
		return nil, s.doBootstrap(ctx)
	})
	return err
}

func (s *SessionService) doBootstrap(ctx context.Context) error {
	if _, ok := s.creds.Token(ctx); !ok {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.user != nil || s.authenticated {
			s.user = nil
			s.authenticated = false
			s.persistLocked(ctx)
			s.logger.DebugContext(ctx, "discarded snapshot without credential")
		}
		return nil
	}

	s.mu.Lock()
	if s.user != nil {
		s.mu.Unlock()
		return nil
	}
	gen := s.generation
	s.inflight++
	s.mu.Unlock()

	user, err := s.api.Me(apiclient.WithAction(ctx, apiclient.ActionBackground))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight--
	if gen != s.generation {
		return nil
	}
	if err != nil {
		if apiclient.IsKind(err, apiclient.KindCanceled) {
			return err
		}
		s.logger.WarnContext(ctx, "stored credential rejected", "error", err)
		s.creds.Clear(ctx)
		s.user = nil
		s.authenticated = false
		s.persistLocked(ctx)
		return nil
	}
	s.user = s.withTrial(user)
	s.authenticated = true
	s.persistLocked(ctx)
	if s.cache != nil {
		s.cache.SetQueryData(authMeKey, s.user.Clone())
	}
	return nil
}

// RefreshUser re-fetches the signed-in user. Failures are logged and otherwise ignored; only
// the invalid-token signal ends the session.
func (s *SessionService) RefreshUser(ctx context.Context) {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return
	}
	gen := s.generation
	s.mu.Unlock()

	user, err := s.api.Me(apiclient.WithAction(ctx, apiclient.ActionBackground))
	if err != nil {
		s.logger.WarnContext(ctx, "refresh user failed", "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation || s.user == nil {
		return
	}
	s.user = s.withTrial(user)
	s.persistLocked(ctx)
	if s.cache != nil {
		s.cache.SetQueryData(authMeKey, s.user.Clone())
	}
}

// Run refreshes the user every refresh interval while signed in, until ctx is done.
func (s *SessionService) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if s.IsAuthenticated() {
				s.RefreshUser(ctx)
			}
		}
	}
}

// UpdateUser merges patch into the held user. Without a user it does nothing.
func (s *SessionService) UpdateUser(ctx context.Context, patch domainauth.UserPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return
	}
	s.user = patch.Apply(s.user)
	s.persistLocked(ctx)
	if s.cache != nil {
		s.cache.SetQueryData(authMeKey, s.user.Clone())
	}
}

// CheckTrialStatus recomputes the trial days of a non-premium user from its creation time.
func (s *SessionService) CheckTrialStatus(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil || s.user.IsPremium {
		return
	}
	days := domainauth.TrialDaysLeft(s.user, s.now())
	if days == s.user.TrialDaysLeft {
		return
	}
	s.user = domainauth.WithTrial(s.user, s.now())
	s.persistLocked(ctx)
}

// ClearError drops the held error message.
func (s *SessionService) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = ""
}

// ForgotPassword asks for a reset link. The outcome does not reveal whether the account exists.
func (s *SessionService) ForgotPassword(ctx context.Context, email string) error {
	email = domainauth.NormalizeEmail(email)
	if email == "" {
		return s.reject(apperrors.ValidationField("email", "Email is required"))
	}

	s.begin()
	err := s.api.ForgotPassword(apiclient.WithAction(ctx, apiclient.ActionAccountLookup), email)
	if err != nil && !apiclient.IsKind(err, apiclient.KindNotFound) {
		s.fail(err, errResetEmail)
		return err
	}
	s.succeed()
	s.notifier.Notify(ctx, notify.Success(MsgResetLinkSent))
	return nil
}

// ResetPassword sets a new password with a reset token. Mismatched or short passwords are
// rejected without a backend call; the backend alone judges the token.
func (s *SessionService) ResetPassword(ctx context.Context, token, password, confirm string) error {
	if strings.TrimSpace(token) == "" {
		return s.reject(apperrors.ValidationField("token", "Reset token is required"))
	}
	if err := validateNewPassword("password", password, confirm); err != nil {
		return s.reject(err)
	}

	s.begin()
	in := domainauth.ResetPasswordInput{Token: token, Password: password, ConfirmPassword: confirm}
	if err := s.api.ResetPassword(ctx, in); err != nil {
		s.fail(err, errResetPassword)
		return err
	}
	s.succeed()
	s.notifier.Notify(ctx, notify.Success(MsgPasswordReset))
	return nil
}

// ChangePassword replaces the signed-in user's password.
func (s *SessionService) ChangePassword(ctx context.Context, in domainauth.ChangePasswordInput) error {
	if in.CurrentPassword == "" {
		return s.reject(apperrors.ValidationField("currentPassword", "Current password is required"))
	}
	if err := validateNewPassword("newPassword", in.NewPassword, in.ConfirmPassword); err != nil {
		return s.reject(err)
	}

	s.begin()
	if err := s.api.ChangePassword(ctx, in); err != nil {
		s.fail(err, errChangePassword)
		return err
	}
	s.succeed()
	s.notifier.Notify(ctx, notify.Success(MsgPasswordChanged))
	return nil
}

// UpdateProfile saves profile changes on the backend and adopts the returned user.
func (s *SessionService) UpdateProfile(ctx context.Context, patch domainauth.UserPatch) (*domainauth.User, error) {
	if patch.IsEmpty() {
		return s.State().User, nil
	}

	gen := s.begin()
	user, err := s.api.UpdateProfile(ctx, patch)
	if err != nil {
		s.fail(err, errUpdateProfile)
		return nil, err
	}

	s.mu.Lock()
	s.inflight--
	if gen != s.generation {
		s.mu.Unlock()
		return nil, ErrSuperseded
	}
	s.user = s.withTrial(user)
	s.persistLocked(ctx)
	updated := s.user.Clone()
	s.mu.Unlock()

	if s.cache != nil {
		s.cache.SetQueryData(authMeKey, updated.Clone())
	}
	s.notifier.Notify(ctx, notify.Success(MsgProfileUpdated))
	return updated, nil
}

func validateNewPassword(field, password, confirm string) error {
	if password != confirm {
		return apperrors.ValidationField(field, errPasswordsDiffer)
	}
	if utf8.RuneCountInString(password) < domainauth.MinPasswordLength {
		return apperrors.ValidationField(field,
			fmt.Sprintf("Password must be at least %d characters", domainauth.MinPasswordLength))
	}
	return nil
}

// begin marks a request in flight and returns the generation it runs under.
func (s *SessionService) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight++
	s.errMsg = ""
	return s.generation
}

func (s *SessionService) succeed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight--
}

// fail ends a request with an error message. Failures are held even when the session was torn
// down meanwhile: a rejected login raises the invalid-token signal before it returns.
func (s *SessionService) fail(err error, fallback string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight--
	if apiclient.IsKind(err, apiclient.KindCanceled) {
		return
	}
	s.errMsg = errorMessage(err, fallback)
}

// reject holds a local validation error without a backend call.
func (s *SessionService) reject(err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = apperrors.UserMessage(err, err.Error())
	return err
}

func errorMessage(err error, fallback string) string {
	if msg := apiclient.MessageOr(err, ""); msg != "" {
		return msg
	}
	if apperrors.IsValidation(err) {
		return apperrors.UserMessage(err, fallback)
	}
	return fallback
}

func (s *SessionService) withTrial(u *domainauth.User) *domainauth.User {
	if u == nil {
		return nil
	}
	if u.IsPremium {
		return u.Clone()
	}
	return domainauth.WithTrial(u, s.now())
}

func (s *SessionService) snapshotLocked() domainauth.Snapshot {
	return domainauth.Snapshot{User: s.user.Clone(), IsAuthenticated: s.authenticated}
}

func (s *SessionService) persistLocked(ctx context.Context) {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.Save(ctx, s.snapshotLocked()); err != nil {
		s.logger.WarnContext(ctx, "save session snapshot failed", "error", err)
	}
}
