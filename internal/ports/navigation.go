package ports

import "context"

// Navigator moves the client to another page. The CLI records the location; a browser would redirect.
type Navigator interface {
	Navigate(ctx context.Context, path string)
	CurrentPath() string
}
