package service

import (
	"context"

	domainauth "github.com/target/stylist-web/internal/domain/auth"
	"github.com/target/stylist-web/internal/ports"
)

// Landing pages used by AuthFlow.
const (
	HomePath  = "/"
	LoginPath = "/login"
)

// View is what pages read from the session: the state plus trial and subscription flags.
type View struct {
	User            *domainauth.User
	IsAuthenticated bool
	IsLoading       bool
	Error           string
	IsPremium       bool
	TrialDaysLeft   int
	IsTrialActive   bool
}

// ViewOf derives the view of a state.
func ViewOf(st State) View {
	v := View{
		User:            st.User,
		IsAuthenticated: st.IsAuthenticated,
		IsLoading:       st.IsLoading,
		Error:           st.Error,
	}
	if st.User != nil {
		v.IsPremium = st.User.IsPremium
		v.TrialDaysLeft = max(0, st.User.TrialDaysLeft)
		v.IsTrialActive = st.User.TrialDaysLeft > 0
	}
	return v
}

// View returns the current session view.
func (s *SessionService) View() View { return ViewOf(s.State()) }

// AuthFlow wraps the session operations that move the user between pages.
type AuthFlow struct {
	session *SessionService
	nav     ports.Navigator
}

// NewAuthFlow binds a session to a navigator.
func NewAuthFlow(session *SessionService, nav ports.Navigator) *AuthFlow {
	return &AuthFlow{session: session, nav: nav}
}

// Mount runs when a page that shows the session opens: it recomputes the trial of a
// non-premium user.
func (f *AuthFlow) Mount(ctx context.Context) View {
	f.session.CheckTrialStatus(ctx)
	return f.session.View()
}

// Login signs in and lands on the home page.
func (f *AuthFlow) Login(ctx context.Context, in domainauth.LoginCredentials) error {
	if err := f.session.Login(ctx, in); err != nil {
		return err
	}
	f.landIfAuthenticated(ctx)
	return nil
}

// Signup creates the account and lands on the home page.
func (f *AuthFlow) Signup(ctx context.Context, in domainauth.SignupCredentials) error {
	if err := f.session.Signup(ctx, in); err != nil {
		return err
	}
	f.landIfAuthenticated(ctx)
	return nil
}

// Logout signs out and goes to the login page.
func (f *AuthFlow) Logout(ctx context.Context) {
	f.session.Logout(ctx)
	if f.nav != nil {
		f.nav.Navigate(ctx, LoginPath)
	}
}

func (f *AuthFlow) landIfAuthenticated(ctx context.Context) {
	if f.nav != nil && f.session.IsAuthenticated() {
		f.nav.Navigate(ctx, HomePath)
	}
}
