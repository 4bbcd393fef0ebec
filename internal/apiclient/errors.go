package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
)

// Kind classifies a failed request.
type Kind string

const (
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindValidation   Kind = "validation"
	KindRateLimited  Kind = "rate_limited"
	KindServer       Kind = "server"
	KindNetwork      Kind = "network"
	KindCanceled     Kind = "canceled"
	KindUnknown      Kind = "unknown"
)

// User-facing notice texts.
const (
	MsgSessionExpired = "Session expired. Please login again."
	MsgForbidden      = "Access denied. You do not have permission to perform this action."
	MsgNotFound       = "Resource not found."
	MsgValidation     = "Validation failed."
	MsgRateLimited    = "Too many requests. Please try again later."
	MsgServer         = "Server error. Please try again later."
	MsgNetwork        = "Network error. Please check your connection."
	MsgUnexpected     = "An unexpected error occurred."
)

// Error is the classified outcome of a failed backend call.
type Error struct {
	Kind   Kind
	Status int // 0 when no response arrived
	Method string
	Path   string
	// Message is the backend's message, empty when the payload had none.
	Message string
	// FieldErrors holds per-field validation messages from a 422 payload.
	FieldErrors map[string][]string
	Cause       error
}

func (e *Error) Error() string {
	detail := e.Message
	if detail == "" && e.Cause != nil {
		detail = e.Cause.Error()
	}
	if e.Status == 0 {
		return fmt.Sprintf("%s %s: %s: %s", e.Method, e.Path, e.Kind, detail)
	}
	return fmt.Sprintf("%s %s: %d %s: %s", e.Method, e.Path, e.Status, e.Kind, detail)
}

func (e *Error) Unwrap() error { return e.Cause }

// FieldMessages flattens FieldErrors ordered by field name.
func (e *Error) FieldMessages() []string {
	fields := make([]string, 0, len(e.FieldErrors))
	for f := range e.FieldErrors {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	var out []string
	for _, f := range fields {
		out = append(out, e.FieldErrors[f]...)
	}
	return out
}

// Notices returns the messages shown for this failure, ignoring request tags.
func (e *Error) Notices() []string {
	if e.Kind == KindNetwork {
		return []string{MsgNetwork}
	}
	switch e.Status {
	case http.StatusUnauthorized:
		return []string{MsgSessionExpired}
	case http.StatusForbidden:
		return []string{MsgForbidden}
	case http.StatusNotFound:
		return []string{MsgNotFound}
	case http.StatusUnprocessableEntity:
		if msgs := e.FieldMessages(); len(msgs) > 0 {
			return msgs
		}
		return []string{orDefault(e.Message, MsgValidation)}
	case http.StatusTooManyRequests:
		return []string{MsgRateLimited}
	case http.StatusInternalServerError:
		return []string{MsgServer}
	case 0:
		return nil
	default:
		return []string{orDefault(e.Message, MsgUnexpected)}
	}
}

// KindOf returns the kind of an *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind reports whether err is an *Error of kind k.
func IsKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

// MessageOr returns the backend message carried by err, or fallback.
func MessageOr(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return fallback
}

func kindForStatus(status int) Kind {
	switch {
	case status == http.StatusUnauthorized:
		return KindUnauthorized
	case status == http.StatusForbidden:
		return KindForbidden
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusUnprocessableEntity || status == http.StatusBadRequest:
		return KindValidation
	case status == http.StatusTooManyRequests:
		return KindRateLimited
	case status >= 500:
		return KindServer
	default:
		return KindUnknown
	}
}

// errorPayload is the backend's failure body.
type errorPayload struct {
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Errors  json.RawMessage `json:"errors"`
}

// parseErrorPayload extracts the message and field errors. The errors member may be a map of
// field to message(s) or a bare list of messages.
func parseErrorPayload(body []byte) (string, map[string][]string) {
	var p errorPayload
	if len(body) == 0 || json.Unmarshal(body, &p) != nil {
		return "", nil
	}
	msg := p.Message
	if msg == "" {
		msg = p.Error
	}
	if len(p.Errors) == 0 || string(p.Errors) == "null" {
		return msg, nil
	}

	var byField map[string]json.RawMessage
	if json.Unmarshal(p.Errors, &byField) == nil {
		fields := make(map[string][]string, len(byField))
		for f, raw := range byField {
			if msgs := stringOrList(raw); len(msgs) > 0 {
				fields[f] = msgs
			}
		}
		return msg, nilIfEmpty(fields)
	}
	if list := stringOrList(p.Errors); len(list) > 0 {
		return msg, map[string][]string{"": list}
	}
	return msg, nil
}

func stringOrList(raw json.RawMessage) []string {
	var one string
	if json.Unmarshal(raw, &one) == nil {
		if one == "" {
			return nil
		}
		return []string{one}
	}
	var many []string
	if json.Unmarshal(raw, &many) == nil {
		return many
	}
	return nil
}

func nilIfEmpty(m map[string][]string) map[string][]string {
	if len(m) == 0 {
		return nil
	}
	return m
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
