package notify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Level is the severity of a user-facing notice.
type Level string

// Levels recognised by notifiers.
const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelError   Level = "error"
)

// Notice is a transient user-facing message (a toast in the browser, a stderr line in the CLI).
type Notice struct {
	Level   Level
	Message string
}

// Error builds an error notice.
func Error(msg string) Notice { return Notice{Level: LevelError, Message: msg} }

// Success builds a success notice.
func Success(msg string) Notice { return Notice{Level: LevelSuccess, Message: msg} }

// Info builds an informational notice.
func Info(msg string) Notice { return Notice{Level: LevelInfo, Message: msg} }

// Notifier describes a destination capable of showing notices to the user.
type Notifier interface {
	Notify(ctx context.Context, n Notice)
}

// NotifierFunc adapts a function to the Notifier interface (useful for tests).
type NotifierFunc func(ctx context.Context, n Notice)

// Notify implements the Notifier interface.
func (f NotifierFunc) Notify(ctx context.Context, n Notice) {
	if f == nil {
		return
	}
	f(ctx, n)
}

// Discard drops every notice.
var Discard Notifier = NotifierFunc(nil)

// Fanout delivers each notice to every notifier in order.
type Fanout []Notifier

// Notify implements the Notifier interface.
func (f Fanout) Notify(ctx context.Context, n Notice) {
	for _, dst := range f {
		if dst != nil {
			dst.Notify(ctx, n)
		}
	}
}

// SlogNotifier writes notices as structured log records.
type SlogNotifier struct {
	Logger *slog.Logger
}

// Notify implements the Notifier interface.
func (s SlogNotifier) Notify(ctx context.Context, n Notice) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	level := slog.LevelInfo
	if n.Level == LevelError {
		level = slog.LevelWarn
	}
	logger.Log(ctx, level, "notice", "notice_level", string(n.Level), "message", n.Message)
}

// WriterNotifier prints one line per notice, prefixed with its level.
type WriterNotifier struct {
	Out io.Writer
}

// Notify implements the Notifier interface.
func (w WriterNotifier) Notify(_ context.Context, n Notice) {
	if w.Out == nil {
		return
	}
	fmt.Fprintf(w.Out, "[%s] %s\n", n.Level, n.Message)
}

// Recorder keeps every notice in memory. Safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	notices []Notice
}

// Notify implements the Notifier interface.
func (r *Recorder) Notify(_ context.Context, n Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

// Notices returns a copy of the recorded notices.
func (r *Recorder) Notices() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notice(nil), r.notices...)
}

// Messages returns the recorded messages in order.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.notices))
	for i, n := range r.notices {
		out[i] = n.Message
	}
	return out
}

// Reset drops all recorded notices.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = nil
}
