package terminal

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigatorReportsMoves(t *testing.T) {
	var out bytes.Buffer
	nav := NewNavigator(&out, "/profile")
	assert.Equal(t, "/profile", nav.CurrentPath())

	nav.Navigate(context.Background(), "/login")
	nav.Navigate(context.Background(), "/login")
	nav.Navigate(context.Background(), "/")

	assert.Equal(t, "/", nav.CurrentPath())
	assert.Equal(t, []string{"/login", "/"}, nav.Moves())
	assert.Equal(t, "-> /login\n-> /\n", out.String())
}

func TestNavigatorDefaults(t *testing.T) {
	nav := NewNavigator(nil, "")
	assert.Equal(t, "/", nav.CurrentPath())
	nav.Navigate(context.Background(), "/login")
	assert.Equal(t, "/login", nav.CurrentPath())
}
