package ports

import (
	"context"

	"github.com/target/stylist-web/internal/domain/model"
)

// WorkshopAPI is the backend workshop surface.
type WorkshopAPI interface {
	List(ctx context.Context, f model.WorkshopFilters) (model.WorkshopList, error)
	Get(ctx context.Context, id string) (model.Workshop, error)
	Register(ctx context.Context, id string) error
	Unregister(ctx context.Context, id string) error
	MyRegistrations(ctx context.Context) ([]model.Workshop, error)
}

// TutorialAPI is the backend tutorial surface.
type TutorialAPI interface {
	List(ctx context.Context, f model.TutorialFilters) ([]model.Tutorial, error)
	Get(ctx context.Context, id string) (model.Tutorial, error)
	Progress(ctx context.Context, id string) (int, error)
	UpdateProgress(ctx context.Context, id string, progress int) error
	Favorite(ctx context.Context, id string) error
	Unfavorite(ctx context.Context, id string) error
	Favorites(ctx context.Context) ([]model.Tutorial, error)
}

// GalleryAPI is the backend hairstyle gallery surface.
type GalleryAPI interface {
	Hairstyles(ctx context.Context, f model.GalleryFilters) ([]model.Hairstyle, error)
	Hairstyle(ctx context.Context, id string) (model.Hairstyle, error)
	Favorite(ctx context.Context, id string) error
	Unfavorite(ctx context.Context, id string) error
	Favorites(ctx context.Context) ([]model.Hairstyle, error)
}

// CommunityAPI is the backend community feed surface.
type CommunityAPI interface {
	Posts(ctx context.Context, page model.PageRequest) ([]model.Post, error)
	Post(ctx context.Context, id string) (model.Post, error)
	CreatePost(ctx context.Context, in model.PostInput) (model.Post, error)
	UpdatePost(ctx context.Context, id string, in model.PostInput) (model.Post, error)
	DeletePost(ctx context.Context, id string) error
	LikePost(ctx context.Context, id string) error
	UnlikePost(ctx context.Context, id string) error
	Comments(ctx context.Context, postID string) ([]model.Comment, error)
	CreateComment(ctx context.Context, postID string, in model.CommentInput) (model.Comment, error)
	UpdateComment(ctx context.Context, id string, in model.CommentInput) (model.Comment, error)
	DeleteComment(ctx context.Context, id string) error
	LikeComment(ctx context.Context, id string) error
	UnlikeComment(ctx context.Context, id string) error
}
