package apiclient

import (
	"context"
	"net/http"

	"github.com/target/stylist-web/internal/domain/model"
	"github.com/target/stylist-web/internal/ports"
)

var _ ports.WorkshopAPI = (*WorkshopAPI)(nil)

// WorkshopAPI groups the /api/workshops endpoints.
type WorkshopAPI struct{ c *Client }

// Workshops returns the workshop endpoints.
func (c *Client) Workshops() *WorkshopAPI { return &WorkshopAPI{c: c} }

func (w *WorkshopAPI) List(ctx context.Context, f model.WorkshopFilters) (model.WorkshopList, error) {
	var out model.WorkshopList
	err := w.c.do(ctx, call{method: http.MethodGet, path: "/api/workshops", query: f.Values(), out: &out})
	return out, err
}

func (w *WorkshopAPI) Get(ctx context.Context, id string) (model.Workshop, error) {
	var out model.Workshop
	if id == "" {
		return out, ErrEmptyID
	}
	err := w.c.do(ctx, call{method: http.MethodGet, path: "/api/workshops/" + escape(id), out: &out})
	return out, err
}

func (w *WorkshopAPI) Register(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}
	return w.c.do(ctx, call{method: http.MethodPost, path: "/api/workshops/" + escape(id) + "/register", action: ActionRegistration})
}

func (w *WorkshopAPI) Unregister(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}
	return w.c.do(ctx, call{method: http.MethodDelete, path: "/api/workshops/" + escape(id) + "/unregister", action: ActionRegistration})
}

func (w *WorkshopAPI) MyRegistrations(ctx context.Context) ([]model.Workshop, error) {
	var out []model.Workshop
	err := w.c.do(ctx, call{method: http.MethodGet, path: "/api/workshops/my/registrations", out: &out})
	return out, err
}
