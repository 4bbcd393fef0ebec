// Package apiclient is the single egress point to the stylist backend. It attaches the bearer
// credential, unwraps the {"data": ...} envelope and turns failures into classified errors
// with their user-visible side effects.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/target/stylist-web/internal/observability/notify"
	"github.com/target/stylist-web/internal/ports"
)

const (
	// DefaultBaseURL is used when no backend URL is configured.
	DefaultBaseURL = "http://localhost:4000"
	// DefaultTimeout bounds every request.
	DefaultTimeout = 10 * time.Second
	// LoginPath is where a 401 sends the user.
	LoginPath = "/login"

	maxErrorBody = 1 << 20
)

// Options configures a Client.
type Options struct {
	BaseURL     string
	Timeout     time.Duration
	Credentials ports.CredentialStore
	Navigator   ports.Navigator
	Notifier    notify.Notifier
	Logger      *slog.Logger
	// Transport overrides the underlying round tripper (tests).
	Transport http.RoundTripper
	// Jar carries cookies set by the backend; optional.
	Jar http.CookieJar
}

// Client performs backend calls.
type Client struct {
	base     *url.URL
	http     *http.Client
	creds    ports.CredentialStore
	nav      ports.Navigator
	notifier notify.Notifier
	logger   *slog.Logger

	mu        sync.RWMutex
	observers map[int]func(context.Context)
	nextID    int
}

// New constructs a Client.
func New(opts Options) (*Client, error) {
	raw := strings.TrimRight(orDefault(opts.BaseURL, DefaultBaseURL), "/")
	base, err := url.Parse(raw)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid API base URL %q", raw)
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	notifier := opts.Notifier
	if notifier == nil {
		notifier = notify.Discard
	}

	return &Client{
		base: base,
		http: &http.Client{
			Timeout:   timeout,
			Jar:       opts.Jar,
			Transport: &bearerTransport{base: opts.Transport, creds: opts.Credentials},
		},
		creds:     opts.Credentials,
		nav:       opts.Navigator,
		notifier:  notifier,
		logger:    logger.With("component", "apiclient"),
		observers: make(map[int]func(context.Context)),
	}, nil
}

// BaseURL returns the configured backend origin.
func (c *Client) BaseURL() string { return c.base.String() }

// OnInvalidToken registers fn to run synchronously whenever a request fails with 401.
// The returned function unregisters it.
func (c *Client) OnInvalidToken(fn func(ctx context.Context)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.observers[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.observers, id)
		c.mu.Unlock()
	}
}

func (c *Client) emitInvalidToken(ctx context.Context) {
	c.mu.RLock()
	fns := make([]func(context.Context), 0, len(c.observers))
	for _, fn := range c.observers {
		fns = append(fns, fn)
	}
	c.mu.RUnlock()

	for _, fn := range fns {
		fn(ctx)
	}
}

// call describes one backend request.
type call struct {
	method string
	path   string
	query  url.Values
	body   any
	// rawBody and contentType replace the JSON body (multipart uploads).
	rawBody     io.Reader
	contentType string
	out         any
	action      Action
}

func (c *Client) do(ctx context.Context, cl call) error {
	action := actionFrom(ctx, cl.action)

	req, err := c.newRequest(ctx, cl)
	if err != nil {
		return err
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		apiErr := &Error{Kind: KindNetwork, Method: cl.method, Path: cl.path, Cause: err}
		if ctx.Err() != nil {
			// The caller gave up; nothing to tell the user.
			apiErr.Kind = KindCanceled
			return apiErr
		}
		c.logger.WarnContext(ctx, "request failed", "method", cl.method, "path", cl.path, "error", err)
		c.handleFailure(ctx, apiErr, action)
		return apiErr
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "request",
		"method", cl.method, "path", cl.path, "status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(), "action", action.String())

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		msg, fields := parseErrorPayload(body)
		apiErr := &Error{
			Kind:        kindForStatus(resp.StatusCode),
			Status:      resp.StatusCode,
			Method:      cl.method,
			Path:        cl.path,
			Message:     msg,
			FieldErrors: fields,
		}
		c.handleFailure(ctx, apiErr, action)
		return apiErr
	}

	if cl.out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return decodeEnvelope(resp.Body, cl.out)
}

func (c *Client) newRequest(ctx context.Context, cl call) (*http.Request, error) {
	u := *c.base
	u.Path = strings.TrimRight(c.base.Path, "/") + cl.path
	if len(cl.query) > 0 {
		u.RawQuery = cl.query.Encode()
	}

	var body io.Reader
	contentType := ""
	switch {
	case cl.rawBody != nil:
		body = cl.rawBody
		contentType = cl.contentType
	case cl.body != nil:
		b, err := json.Marshal(cl.body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", cl.method, cl.path, err)
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", cl.method, cl.path, err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req, nil
}

// decodeEnvelope decodes {"data": X} into out, or the whole body when it carries no data member.
func decodeEnvelope(r io.Reader, out any) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 && string(env.Data) != "null" {
		raw = env.Data
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// handleFailure runs the side effects of a classified failure. It never retries.
func (c *Client) handleFailure(ctx context.Context, e *Error, action Action) {
	if e.Kind == KindUnauthorized {
		c.handleUnauthorized(ctx, action)
		return
	}

	switch {
	case action == ActionBackground || action == ActionSignOut:
		return
	case action == ActionAccountLookup && e.Kind == KindNotFound:
		return
	}
	for _, msg := range e.Notices() {
		c.notifier.Notify(ctx, notify.Error(msg))
	}
}

func (c *Client) handleUnauthorized(ctx context.Context, action Action) {
	if c.creds != nil {
		c.creds.Clear(ctx)
	}
	c.emitInvalidToken(ctx)

	if action.redirectsOn401() && c.nav != nil && !onLoginPage(c.nav.CurrentPath()) {
		c.nav.Navigate(ctx, LoginPath)
	}
	if action.noticesOn401() {
		c.notifier.Notify(ctx, notify.Error(MsgSessionExpired))
	}
}

func onLoginPage(path string) bool {
	return path == LoginPath || strings.HasPrefix(path, LoginPath+"/") || strings.HasPrefix(path, LoginPath+"?")
}

// ErrEmptyID is returned when an endpoint that needs an identifier is called without one.
var ErrEmptyID = errors.New("id is required")

func escape(id string) string { return url.PathEscape(id) }
