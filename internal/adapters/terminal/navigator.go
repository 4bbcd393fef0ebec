// Package terminal adapts page navigation to a command-line client: a navigation is a line
// telling the user where the app would have gone.
package terminal

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/target/stylist-web/internal/ports"
)

var _ ports.Navigator = (*Navigator)(nil)

// Navigator tracks the page a command represents and reports moves to out.
type Navigator struct {
	mu   sync.Mutex
	path string
	out  io.Writer
	// moves holds every path navigated to, in order.
	moves []string
}

// NewNavigator starts at path; a nil out discards the reports.
func NewNavigator(out io.Writer, path string) *Navigator {
	if out == nil {
		out = io.Discard
	}
	if path == "" {
		path = "/"
	}
	return &Navigator{path: path, out: out}
}

func (n *Navigator) Navigate(_ context.Context, path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if path == n.path && len(n.moves) > 0 && n.moves[len(n.moves)-1] == path {
		return
	}
	n.path = path
	n.moves = append(n.moves, path)
	fmt.Fprintf(n.out, "-> %s\n", path)
}

func (n *Navigator) CurrentPath() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.path
}

// Moves returns the paths navigated to so far.
func (n *Navigator) Moves() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.moves...)
}
