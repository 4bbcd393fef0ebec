package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/target/stylist-web/internal/domain/model"
)

func TestContentEndpoints(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name   string
		method string
		path   string
		call   func(c *Client) error
	}{
		{"tutorial list", http.MethodGet, "/api/tutorials", func(c *Client) error {
			_, err := c.Tutorials().List(ctx, model.TutorialFilters{})
			return err
		}},
		{"tutorial detail", http.MethodGet, "/api/tutorials/t1", func(c *Client) error {
			_, err := c.Tutorials().Get(ctx, "t1")
			return err
		}},
		{"tutorial progress", http.MethodGet, "/api/tutorials/t1/progress", func(c *Client) error {
			_, err := c.Tutorials().Progress(ctx, "t1")
			return err
		}},
		{"tutorial favorite", http.MethodPost, "/api/tutorials/t1/favorite", func(c *Client) error {
			return c.Tutorials().Favorite(ctx, "t1")
		}},
		{"tutorial unfavorite", http.MethodDelete, "/api/tutorials/t1/favorite", func(c *Client) error {
			return c.Tutorials().Unfavorite(ctx, "t1")
		}},
		{"tutorial favorites", http.MethodGet, "/api/tutorials/favorites", func(c *Client) error {
			_, err := c.Tutorials().Favorites(ctx)
			return err
		}},
		{"hairstyle list", http.MethodGet, "/api/gallery/hairstyles", func(c *Client) error {
			_, err := c.Gallery().Hairstyles(ctx, model.GalleryFilters{})
			return err
		}},
		{"hairstyle detail", http.MethodGet, "/api/gallery/hairstyles/h1", func(c *Client) error {
			_, err := c.Gallery().Hairstyle(ctx, "h1")
			return err
		}},
		{"hairstyle favorite", http.MethodPost, "/api/gallery/hairstyles/h1/favorite", func(c *Client) error {
			return c.Gallery().Favorite(ctx, "h1")
		}},
		{"hairstyle unfavorite", http.MethodDelete, "/api/gallery/hairstyles/h1/favorite", func(c *Client) error {
			return c.Gallery().Unfavorite(ctx, "h1")
		}},
		{"hairstyle favorites", http.MethodGet, "/api/gallery/favorites", func(c *Client) error {
			_, err := c.Gallery().Favorites(ctx)
			return err
		}},
		{"post list", http.MethodGet, "/api/community/posts", func(c *Client) error {
			_, err := c.Community().Posts(ctx, model.PageRequest{})
			return err
		}},
		{"post detail", http.MethodGet, "/api/community/posts/p1", func(c *Client) error {
			_, err := c.Community().Post(ctx, "p1")
			return err
		}},
		{"post delete", http.MethodDelete, "/api/community/posts/p1", func(c *Client) error {
			return c.Community().DeletePost(ctx, "p1")
		}},
		{"post like", http.MethodPost, "/api/community/posts/p1/like", func(c *Client) error {
			return c.Community().LikePost(ctx, "p1")
		}},
		{"post unlike", http.MethodDelete, "/api/community/posts/p1/like", func(c *Client) error {
			return c.Community().UnlikePost(ctx, "p1")
		}},
		{"comment list", http.MethodGet, "/api/community/posts/p1/comments", func(c *Client) error {
			_, err := c.Community().Comments(ctx, "p1")
			return err
		}},
		{"comment delete", http.MethodDelete, "/api/community/comments/c1", func(c *Client) error {
			return c.Community().DeleteComment(ctx, "c1")
		}},
		{"comment like", http.MethodPost, "/api/community/comments/c1/like", func(c *Client) error {
			return c.Community().LikeComment(ctx, "c1")
		}},
		{"comment unlike", http.MethodDelete, "/api/community/comments/c1/like", func(c *Client) error {
			return c.Community().UnlikeComment(ctx, "c1")
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotMethod, gotPath string
			h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
				gotMethod, gotPath = r.Method, r.URL.Path
				w.WriteHeader(http.StatusNoContent)
			})
			require.NoError(t, tt.call(h.client))
			assert.Equal(t, tt.method, gotMethod)
			assert.Equal(t, tt.path, gotPath)
		})
	}
}

func TestTutorials_UpdateProgressClampsBody(t *testing.T) {
	var body map[string]int
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/tutorials/t1/progress", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		respond(http.StatusOK, `{}`)(w, r)
	})

	require.NoError(t, h.client.Tutorials().UpdateProgress(context.Background(), "t1", 140))
	assert.Equal(t, 100, body["progress"])
}

func TestCommunity_CreateCommentSendsInput(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/community/posts/p1/comments", r.URL.Path)
		var in model.CommentInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "nice", in.Content)
		respond(http.StatusCreated, `{"data":{"id":"c9","postId":"p1","content":"nice"}}`)(w, r)
	})

	c, err := h.client.Community().CreateComment(context.Background(), "p1", model.CommentInput{Content: "nice"})
	require.NoError(t, err)
	assert.Equal(t, "c9", c.ID)
}

func TestContentEndpoints_EmptyID(t *testing.T) {
	h := newHarness(t, respond(http.StatusOK, `{}`))
	ctx := context.Background()

	assert.ErrorIs(t, h.client.Tutorials().Favorite(ctx, ""), ErrEmptyID)
	assert.ErrorIs(t, h.client.Gallery().Unfavorite(ctx, ""), ErrEmptyID)
	assert.ErrorIs(t, h.client.Community().LikePost(ctx, ""), ErrEmptyID)
	_, err := h.client.Community().Comments(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyID)
}
