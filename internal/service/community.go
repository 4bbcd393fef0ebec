package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/target/stylist-web/internal/core"
	"github.com/target/stylist-web/internal/domain/model"
	apperrors "github.com/target/stylist-web/internal/errors"
	"github.com/target/stylist-web/internal/observability/notify"
	"github.com/target/stylist-web/internal/ports"
)

// Notice texts for the community feed.
const (
	MsgPostCreated    = "Post created successfully!"
	MsgPostUpdated    = "Post updated successfully!"
	MsgPostDeleted    = "Post deleted successfully"
	MsgCommentAdded   = "Comment added successfully!"
	MsgCommentUpdated = "Comment updated successfully!"
	MsgCommentDeleted = "Comment deleted successfully"
)

// CommunityServiceOptions groups dependencies for CommunityService.
type CommunityServiceOptions struct {
	API      ports.CommunityAPI // Required: backend community endpoints
	Cache    *core.QueryCache   // Required: shared query cache
	Notifier notify.Notifier    // Optional: success notices
	Logger   *slog.Logger       // Optional: structured logger
}

// CommunityService reads the community feed through the query cache. Likes and new comments
// patch cached posts in place; other edits mark the affected queries stale.
type CommunityService struct {
	api      ports.CommunityAPI
	cache    *core.QueryCache
	notifier notify.Notifier
	logger   *slog.Logger
}

// NewCommunityService constructs a CommunityService.
func NewCommunityService(opts CommunityServiceOptions) (*CommunityService, error) {
	if opts.API == nil {
		return nil, errors.New("CommunityAPI is required")
	}
	if opts.Cache == nil {
		return nil, errors.New("QueryCache is required")
	}
	notifier := opts.Notifier
	if notifier == nil {
		notifier = notify.Discard
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &CommunityService{
		api:      opts.API,
		cache:    opts.Cache,
		notifier: notifier,
		logger:   logger.With("component", "community"),
	}, nil
}

// Posts returns one page of the feed.
func (s *CommunityService) Posts(ctx context.Context, page model.PageRequest) ([]model.Post, error) {
	return core.Fetch(ctx, s.cache, PostListKey(page), func(ctx context.Context) ([]model.Post, error) {
		return s.api.Posts(ctx, page)
	})
}

// Post returns one post.
func (s *CommunityService) Post(ctx context.Context, id string) (model.Post, error) {
	return core.Fetch(ctx, s.cache, PostDetailKey(id), func(ctx context.Context) (model.Post, error) {
		return s.api.Post(ctx, id)
	})
}

// Comments returns the comments on post postID.
func (s *CommunityService) Comments(ctx context.Context, postID string) ([]model.Comment, error) {
	return core.Fetch(ctx, s.cache, CommentsKey(postID), func(ctx context.Context) ([]model.Comment, error) {
		return s.api.Comments(ctx, postID)
	})
}

// CreatePost publishes a post and marks every cached feed page stale.
func (s *CommunityService) CreatePost(ctx context.Context, in model.PostInput) (model.Post, error) {
	in.Content = strings.TrimSpace(in.Content)
	if in.Content == "" {
		return model.Post{}, apperrors.ValidationField("content", "Post content cannot be empty")
	}
	post, err := s.api.CreatePost(ctx, in)
	if err != nil {
		return model.Post{}, err
	}
	s.cache.Invalidate(postList)
	s.notifier.Notify(ctx, notify.Success(MsgPostCreated))
	return post, nil
}

// UpdatePost edits a post, caches the returned version and marks feed pages stale.
func (s *CommunityService) UpdatePost(ctx context.Context, id string, in model.PostInput) (model.Post, error) {
	in.Content = strings.TrimSpace(in.Content)
	if in.Content == "" {
		return model.Post{}, apperrors.ValidationField("content", "Post content cannot be empty")
	}
	post, err := s.api.UpdatePost(ctx, id, in)
	if err != nil {
		return model.Post{}, err
	}
	s.cache.SetQueryData(PostDetailKey(id), post)
	s.cache.Invalidate(postList)
	s.notifier.Notify(ctx, notify.Success(MsgPostUpdated))
	return post, nil
}

// DeletePost removes a post with its cached detail and comments and marks feed pages stale.
func (s *CommunityService) DeletePost(ctx context.Context, id string) error {
	if err := s.api.DeletePost(ctx, id); err != nil {
		return err
	}
	s.cache.Remove(PostDetailKey(id))
	s.cache.Remove(CommentsKey(id))
	s.cache.Invalidate(postList)
	s.notifier.Notify(ctx, notify.Success(MsgPostDeleted))
	return nil
}

// LikePost likes a post and bumps its cached like count.
func (s *CommunityService) LikePost(ctx context.Context, id string) error {
	if err := s.api.LikePost(ctx, id); err != nil {
		return err
	}
	s.applyPost(id, func(p model.Post) model.Post { return p.WithLike(true) })
	return nil
}

// UnlikePost withdraws a like and lowers the cached like count.
func (s *CommunityService) UnlikePost(ctx context.Context, id string) error {
	if err := s.api.UnlikePost(ctx, id); err != nil {
		return err
	}
	s.applyPost(id, func(p model.Post) model.Post { return p.WithLike(false) })
	return nil
}

// CreateComment replies on post postID, marks its comments stale and counts the new comment.
func (s *CommunityService) CreateComment(ctx context.Context, postID string, in model.CommentInput) (model.Comment, error) {
	in.Content = strings.TrimSpace(in.Content)
	if in.Content == "" {
		return model.Comment{}, apperrors.ValidationField("content", "Comment cannot be empty")
	}
	c, err := s.api.CreateComment(ctx, postID, in)
	if err != nil {
		return model.Comment{}, err
	}
	s.cache.Invalidate(CommentsKey(postID))
	s.applyPost(postID, model.Post.WithCommentAdded)
	s.notifier.Notify(ctx, notify.Success(MsgCommentAdded))
	return c, nil
}

// UpdateComment edits a comment. The owning post is unknown here, so every cached comment
// list is marked stale.
func (s *CommunityService) UpdateComment(ctx context.Context, id string, in model.CommentInput) (model.Comment, error) {
	c, err := s.api.UpdateComment(ctx, id, in)
	if err != nil {
		return model.Comment{}, err
	}
	s.cache.Invalidate(communityComments)
	s.notifier.Notify(ctx, notify.Success(MsgCommentUpdated))
	return c, nil
}

func (s *CommunityService) DeleteComment(ctx context.Context, id string) error {
	if err := s.api.DeleteComment(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(communityComments)
	s.notifier.Notify(ctx, notify.Success(MsgCommentDeleted))
	return nil
}

func (s *CommunityService) LikeComment(ctx context.Context, id string) error {
	if err := s.api.LikeComment(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(communityComments)
	return nil
}

func (s *CommunityService) UnlikeComment(ctx context.Context, id string) error {
	if err := s.api.UnlikeComment(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(communityComments)
	return nil
}

// applyPost patches post id wherever it is cached: its detail entry and every feed page.
func (s *CommunityService) applyPost(id string, fn func(model.Post) model.Post) {
	n := s.cache.UpdateQueries(communityPosts, func(_ core.Key, v any) (any, bool) {
		switch val := v.(type) {
		case model.Post:
			if val.ID != id {
				return nil, false
			}
			return fn(val), true
		case []model.Post:
			return patchByID(val, idOfPost, id, fn), true
		default:
			return nil, false
		}
	})
	s.logger.Debug("post change applied", "post_id", id, "entries", n)
}

func idOfPost(p model.Post) string { return p.ID }
