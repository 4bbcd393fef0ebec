package apiclient

import (
	"context"
	"net/http"

	"github.com/target/stylist-web/internal/domain/model"
	"github.com/target/stylist-web/internal/ports"
)

var _ ports.CommunityAPI = (*CommunityAPI)(nil)

// CommunityAPI groups the /api/community endpoints.
type CommunityAPI struct{ c *Client }

// Community returns the community feed endpoints.
func (c *Client) Community() *CommunityAPI { return &CommunityAPI{c: c} }

func (a *CommunityAPI) Posts(ctx context.Context, page model.PageRequest) ([]model.Post, error) {
	var out []model.Post
	err := a.c.do(ctx, call{method: http.MethodGet, path: "/api/community/posts", query: page.Values(), out: &out})
	return out, err
}

func (a *CommunityAPI) Post(ctx context.Context, id string) (model.Post, error) {
	var out model.Post
	if id == "" {
		return out, ErrEmptyID
	}
	err := a.c.do(ctx, call{method: http.MethodGet, path: "/api/community/posts/" + escape(id), out: &out})
	return out, err
}

func (a *CommunityAPI) CreatePost(ctx context.Context, in model.PostInput) (model.Post, error) {
	var out model.Post
	err := a.c.do(ctx, call{method: http.MethodPost, path: "/api/community/posts", body: in, out: &out})
	return out, err
}

func (a *CommunityAPI) UpdatePost(ctx context.Context, id string, in model.PostInput) (model.Post, error) {
	var out model.Post
	if id == "" {
		return out, ErrEmptyID
	}
	err := a.c.do(ctx, call{method: http.MethodPut, path: "/api/community/posts/" + escape(id), body: in, out: &out})
	return out, err
}

func (a *CommunityAPI) DeletePost(ctx context.Context, id string) error {
	return a.simple(ctx, http.MethodDelete, "/api/community/posts/", id, "")
}

func (a *CommunityAPI) LikePost(ctx context.Context, id string) error {
	return a.simple(ctx, http.MethodPost, "/api/community/posts/", id, "/like")
}

func (a *CommunityAPI) UnlikePost(ctx context.Context, id string) error {
	return a.simple(ctx, http.MethodDelete, "/api/community/posts/", id, "/like")
}

func (a *CommunityAPI) Comments(ctx context.Context, postID string) ([]model.Comment, error) {
	var out []model.Comment
	if postID == "" {
		return nil, ErrEmptyID
	}
	err := a.c.do(ctx, call{method: http.MethodGet, path: "/api/community/posts/" + escape(postID) + "/comments", out: &out})
	return out, err
}

func (a *CommunityAPI) CreateComment(ctx context.Context, postID string, in model.CommentInput) (model.Comment, error) {
	var out model.Comment
	if postID == "" {
		return out, ErrEmptyID
	}
	err := a.c.do(ctx, call{method: http.MethodPost, path: "/api/community/posts/" + escape(postID) + "/comments", body: in, out: &out})
	return out, err
}

func (a *CommunityAPI) UpdateComment(ctx context.Context, id string, in model.CommentInput) (model.Comment, error) {
	var out model.Comment
	if id == "" {
		return out, ErrEmptyID
	}
	err := a.c.do(ctx, call{method: http.MethodPut, path: "/api/community/comments/" + escape(id), body: in, out: &out})
	return out, err
}

func (a *CommunityAPI) DeleteComment(ctx context.Context, id string) error {
	return a.simple(ctx, http.MethodDelete, "/api/community/comments/", id, "")
}

func (a *CommunityAPI) LikeComment(ctx context.Context, id string) error {
	return a.simple(ctx, http.MethodPost, "/api/community/comments/", id, "/like")
}

func (a *CommunityAPI) UnlikeComment(ctx context.Context, id string) error {
	return a.simple(ctx, http.MethodDelete, "/api/community/comments/", id, "/like")
}

func (a *CommunityAPI) simple(ctx context.Context, method, prefix, id, suffix string) error {
	if id == "" {
		return ErrEmptyID
	}
	return a.c.do(ctx, call{method: method, path: prefix + escape(id) + suffix})
}
