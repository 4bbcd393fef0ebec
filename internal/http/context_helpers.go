package httpx

import "context"

// credentialKey is an unexported context key type to avoid collisions across packages.
type credentialKey struct{}

// WithCredentialPresence records whether the route guard found a credential on the request.
func WithCredentialPresence(ctx context.Context, present bool) context.Context {
	return context.WithValue(ctx, credentialKey{}, present)
}

// HasCredential reports whether the guard saw a credential. Requests that bypassed the guard report false.
func HasCredential(ctx context.Context) bool {
	present, _ := ctx.Value(credentialKey{}).(bool)
	return present
}
