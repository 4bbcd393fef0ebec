package apiclient

import "context"

// Action tags a request so failure handling can tell who is asking.
type Action int

const (
	// ActionDefault is any ordinary page request.
	ActionDefault Action = iota
	// ActionAuth is a login, signup or social sign-in call: a 401 means bad credentials, not an
	// expired session, so there is no redirect.
	ActionAuth
	// ActionRegistration is a workshop register/unregister call: no redirect and no
	// session-expired notice, the caller reports the failure itself.
	ActionRegistration
	// ActionBackground is a refresh the user did not ask for: only 401 handling is visible.
	ActionBackground
	// ActionAccountLookup is a request that must not reveal whether an account exists: a 404
	// is never surfaced.
	ActionAccountLookup
	// ActionSignOut is the best-effort backend logout: the credential is still cleared on 401 but
	// nothing is shown and the caller navigates.
	ActionSignOut
)

func (a Action) String() string {
	switch a {
	case ActionAuth:
		return "auth"
	case ActionRegistration:
		return "registration"
	case ActionBackground:
		return "background"
	case ActionAccountLookup:
		return "account_lookup"
	case ActionSignOut:
		return "sign_out"
	default:
		return "default"
	}
}

// redirectsOn401 reports whether a 401 should send the user to the login page.
func (a Action) redirectsOn401() bool {
	switch a {
	case ActionAuth, ActionRegistration, ActionSignOut:
		return false
	default:
		return true
	}
}

// noticesOn401 reports whether a 401 shows the session-expired notice.
func (a Action) noticesOn401() bool {
	return a != ActionRegistration && a != ActionSignOut
}

type actionKey struct{}

// WithAction tags every request made with ctx, overriding the endpoint's own tag.
func WithAction(ctx context.Context, a Action) context.Context {
	return context.WithValue(ctx, actionKey{}, a)
}

func actionFrom(ctx context.Context, fallback Action) Action {
	if a, ok := ctx.Value(actionKey{}).(Action); ok {
		return a
	}
	return fallback
}
