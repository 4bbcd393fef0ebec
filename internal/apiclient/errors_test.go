package apiclient

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindForStatus(t *testing.T) {
	cases := map[int]Kind{
		http.StatusBadRequest:          KindValidation,
		http.StatusUnauthorized:        KindUnauthorized,
		http.StatusForbidden:           KindForbidden,
		http.StatusNotFound:            KindNotFound,
		http.StatusConflict:            KindUnknown,
		http.StatusUnprocessableEntity: KindValidation,
		http.StatusTooManyRequests:     KindRateLimited,
		http.StatusInternalServerError: KindServer,
		http.StatusServiceUnavailable:  KindServer,
	}
	for status, want := range cases {
		assert.Equal(t, want, kindForStatus(status), "status %d", status)
	}
}

func TestParseErrorPayload(t *testing.T) {
	msg, fields := parseErrorPayload([]byte(`{"error":"boom"}`))
	assert.Equal(t, "boom", msg)
	assert.Nil(t, fields)

	msg, fields = parseErrorPayload([]byte(`{"message":"Invalid","errors":["a","b"]}`))
	assert.Equal(t, "Invalid", msg)
	assert.Equal(t, map[string][]string{"": {"a", "b"}}, fields)

	_, fields = parseErrorPayload([]byte(`{"errors":{"email":"", "name":["x"]}}`))
	assert.Equal(t, map[string][]string{"name": {"x"}}, fields)

	msg, fields = parseErrorPayload([]byte(`<html>`))
	assert.Empty(t, msg)
	assert.Nil(t, fields)
}

func TestError_MessageAndUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	e := &Error{Kind: KindNetwork, Method: "GET", Path: "/api/auth/me", Cause: cause}
	assert.Equal(t, "GET /api/auth/me: network: dial tcp: refused", e.Error())
	assert.ErrorIs(t, e, cause)

	wrapped := fmt.Errorf("bootstrap: %w", &Error{Kind: KindForbidden, Status: 403, Method: "GET", Path: "/x", Message: "no"})
	assert.Equal(t, KindForbidden, KindOf(wrapped))
	assert.Equal(t, "no", MessageOr(wrapped, "fallback"))
	assert.Equal(t, "fallback", MessageOr(errors.New("plain"), "fallback"))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
}

func TestAction_Tags(t *testing.T) {
	assert.True(t, ActionDefault.redirectsOn401())
	assert.False(t, ActionAuth.redirectsOn401())
	assert.False(t, ActionRegistration.noticesOn401())
	assert.True(t, ActionAuth.noticesOn401())
	assert.Equal(t, "account_lookup", ActionAccountLookup.String())
}
