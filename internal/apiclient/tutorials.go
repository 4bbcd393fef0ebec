package apiclient

import (
	"context"
	"net/http"

	"github.com/target/stylist-web/internal/domain/model"
	"github.com/target/stylist-web/internal/ports"
)

var _ ports.TutorialAPI = (*TutorialAPI)(nil)

// TutorialAPI groups the /api/tutorials endpoints.
type TutorialAPI struct{ c *Client }

// Tutorials returns the tutorial endpoints.
func (c *Client) Tutorials() *TutorialAPI { return &TutorialAPI{c: c} }

func (t *TutorialAPI) List(ctx context.Context, f model.TutorialFilters) ([]model.Tutorial, error) {
	var out []model.Tutorial
	err := t.c.do(ctx, call{method: http.MethodGet, path: "/api/tutorials", query: f.Values(), out: &out})
	return out, err
}

func (t *TutorialAPI) Get(ctx context.Context, id string) (model.Tutorial, error) {
	var out model.Tutorial
	if id == "" {
		return out, ErrEmptyID
	}
	err := t.c.do(ctx, call{method: http.MethodGet, path: "/api/tutorials/" + escape(id), out: &out})
	return out, err
}

type progressBody struct {
	Progress int `json:"progress"`
}

func (t *TutorialAPI) Progress(ctx context.Context, id string) (int, error) {
	var out progressBody
	if id == "" {
		return 0, ErrEmptyID
	}
	err := t.c.do(ctx, call{method: http.MethodGet, path: "/api/tutorials/" + escape(id) + "/progress", out: &out})
	return out.Progress, err
}

// UpdateProgress stores a completion percentage, clamped to 0-100.
func (t *TutorialAPI) UpdateProgress(ctx context.Context, id string, progress int) error {
	if id == "" {
		return ErrEmptyID
	}
	body := progressBody{Progress: model.ClampProgress(progress)}
	return t.c.do(ctx, call{method: http.MethodPut, path: "/api/tutorials/" + escape(id) + "/progress", body: body})
}

func (t *TutorialAPI) Favorite(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}
	return t.c.do(ctx, call{method: http.MethodPost, path: "/api/tutorials/" + escape(id) + "/favorite"})
}

func (t *TutorialAPI) Unfavorite(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}
	return t.c.do(ctx, call{method: http.MethodDelete, path: "/api/tutorials/" + escape(id) + "/favorite"})
}

func (t *TutorialAPI) Favorites(ctx context.Context) ([]model.Tutorial, error) {
	var out []model.Tutorial
	err := t.c.do(ctx, call{method: http.MethodGet, path: "/api/tutorials/favorites", out: &out})
	return out, err
}
