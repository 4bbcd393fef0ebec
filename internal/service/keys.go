package service

import (
	"github.com/target/stylist-web/internal/core"
	"github.com/target/stylist-web/internal/domain/model"
)

// Query cache keys shared by the views.
var (
	authKeys     = core.Key{"auth"}
	authMeKey    = core.Key{"auth", "me"}
	workshopList = core.Key{"workshops", "list"}
	workshopMine = core.Key{"workshops", "my-registrations"}
)

// AuthMeKey is where the current user is cached.
func AuthMeKey() core.Key { return authMeKey }

// WorkshopListKey is the cache key of one filtered workshop list.
func WorkshopListKey(f model.WorkshopFilters) core.Key {
	return append(append(core.Key(nil), workshopList...), f.Key())
}

// WorkshopDetailKey is the cache key of one workshop.
func WorkshopDetailKey(id string) core.Key {
	return core.Key{"workshops", "detail", id}
}

// MyRegistrationsKey is the cache key of the caller's registrations.
func MyRegistrationsKey() core.Key { return workshopMine }

var (
	tutorialList      = core.Key{"tutorials", "list"}
	tutorialFavorites = core.Key{"tutorials", "favorites"}
	galleryList       = core.Key{"gallery", "list"}
	galleryFavorites  = core.Key{"gallery", "favorites"}
	communityPosts    = core.Key{"community", "posts"}
	postList          = core.Key{"community", "posts", "list"}
	communityComments = core.Key{"community", "comments"}
)

// TutorialListKey is the cache key of one filtered tutorial list.
func TutorialListKey(f model.TutorialFilters) core.Key {
	return append(append(core.Key(nil), tutorialList...), f.Values().Encode())
}

// TutorialDetailKey is the cache key of one tutorial.
func TutorialDetailKey(id string) core.Key {
	return core.Key{"tutorials", "detail", id}
}

// TutorialProgressKey is the cache key of the caller's progress on one tutorial. It lives
// under the tutorial's detail key.
func TutorialProgressKey(id string) core.Key {
	return core.Key{"tutorials", "detail", id, "progress"}
}

// TutorialFavoritesKey is the cache key of the caller's favorite tutorials.
func TutorialFavoritesKey() core.Key { return tutorialFavorites }

// HairstyleListKey is the cache key of one filtered gallery page.
func HairstyleListKey(f model.GalleryFilters) core.Key {
	return append(append(core.Key(nil), galleryList...), f.Values().Encode())
}

// HairstyleDetailKey is the cache key of one hairstyle.
func HairstyleDetailKey(id string) core.Key {
	return core.Key{"gallery", "detail", id}
}

// HairstyleFavoritesKey is the cache key of the caller's favorite hairstyles.
func HairstyleFavoritesKey() core.Key { return galleryFavorites }

// PostListKey is the cache key of one page of the community feed.
func PostListKey(page model.PageRequest) core.Key {
	return append(append(core.Key(nil), postList...), page.Values().Encode())
}

// PostDetailKey is the cache key of one post.
func PostDetailKey(id string) core.Key {
	return core.Key{"community", "posts", "detail", id}
}

// CommentsKey is the cache key of the comments on one post.
func CommentsKey(postID string) core.Key {
	return core.Key{"community", "comments", postID}
}

// patchByID returns a copy of list with fn applied to the entries id selects.
func patchByID[T any](list []T, id func(T) string, want string, fn func(T) T) []T {
	out := make([]T, len(list))
	for i, v := range list {
		if id(v) == want {
			v = fn(v)
		}
		out[i] = v
	}
	return out
}
