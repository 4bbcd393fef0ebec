package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/target/stylist-web/internal/domain/model"
	"github.com/target/stylist-web/internal/ports"
)

var _ ports.GalleryAPI = (*GalleryAPI)(nil)

// GalleryAPI groups the /api/gallery endpoints.
type GalleryAPI struct{ c *Client }

// Gallery returns the hairstyle gallery endpoints.
func (c *Client) Gallery() *GalleryAPI { return &GalleryAPI{c: c} }

func (g *GalleryAPI) Hairstyles(ctx context.Context, f model.GalleryFilters) ([]model.Hairstyle, error) {
	var out []model.Hairstyle
	err := g.c.do(ctx, call{method: http.MethodGet, path: "/api/gallery/hairstyles", query: f.Values(), out: &out})
	return out, err
}

func (g *GalleryAPI) Hairstyle(ctx context.Context, id string) (model.Hairstyle, error) {
	var out model.Hairstyle
	if id == "" {
		return out, ErrEmptyID
	}
	err := g.c.do(ctx, call{method: http.MethodGet, path: "/api/gallery/hairstyles/" + escape(id), out: &out})
	return out, err
}

func (g *GalleryAPI) Favorite(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}
	return g.c.do(ctx, call{method: http.MethodPost, path: "/api/gallery/hairstyles/" + escape(id) + "/favorite"})
}

func (g *GalleryAPI) Unfavorite(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}
	return g.c.do(ctx, call{method: http.MethodDelete, path: "/api/gallery/hairstyles/" + escape(id) + "/favorite"})
}

func (g *GalleryAPI) Favorites(ctx context.Context) ([]model.Hairstyle, error) {
	var out []model.Hairstyle
	err := g.c.do(ctx, call{method: http.MethodGet, path: "/api/gallery/favorites", out: &out})
	return out, err
}

// UploadResult is the stored location of an uploaded image.
type UploadResult struct {
	URL string `json:"url"`
}

// Upload sends an image as multipart form field "image".
func (g *GalleryAPI) Upload(ctx context.Context, filename string, r io.Reader) (UploadResult, error) {
	var out UploadResult
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return out, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return out, fmt.Errorf("read upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return out, fmt.Errorf("close multipart: %w", err)
	}
	err = g.c.do(ctx, call{
		method:      http.MethodPost,
		path:        "/api/gallery/upload",
		rawBody:     &buf,
		contentType: mw.FormDataContentType(),
		out:         &out,
	})
	return out, err
}
