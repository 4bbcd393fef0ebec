package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/target/stylist-web/internal/core"
	"github.com/target/stylist-web/internal/domain/model"
	"github.com/target/stylist-web/internal/observability/notify"
	"github.com/target/stylist-web/internal/ports"
)

// Notice texts for favorites, shared by tutorials and the gallery.
const (
	MsgFavorited   = "Added to favorites!"
	MsgUnfavorited = "Removed from favorites"
)

// TutorialServiceOptions groups dependencies for TutorialService.
type TutorialServiceOptions struct {
	API      ports.TutorialAPI // Required: backend tutorial endpoints
	Cache    *core.QueryCache  // Required: shared query cache
	Notifier notify.Notifier   // Optional: success notices
	Logger   *slog.Logger      // Optional: structured logger
}

// TutorialService reads tutorials through the query cache and keeps cached lists, details and
// progress in step with progress updates and favorites.
type TutorialService struct {
	api      ports.TutorialAPI
	cache    *core.QueryCache
	notifier notify.Notifier
	logger   *slog.Logger
}

// NewTutorialService constructs a TutorialService.
func NewTutorialService(opts TutorialServiceOptions) (*TutorialService, error) {
	if opts.API == nil {
		return nil, errors.New("TutorialAPI is required")
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
	return &TutorialService{
		api:      opts.API,
		cache:    opts.Cache,
		notifier: notifier,
		logger:   logger.With("component", "tutorials"),
	}, nil
}

// List returns one filtered page of tutorials.
func (s *TutorialService) List(ctx context.Context, f model.TutorialFilters) ([]model.Tutorial, error) {
	return core.Fetch(ctx, s.cache, TutorialListKey(f), func(ctx context.Context) ([]model.Tutorial, error) {
		return s.api.List(ctx, f)
	})
}

// Get returns one tutorial.
func (s *TutorialService) Get(ctx context.Context, id string) (model.Tutorial, error) {
	return core.Fetch(ctx, s.cache, TutorialDetailKey(id), func(ctx context.Context) (model.Tutorial, error) {
		return s.api.Get(ctx, id)
	})
}

// Progress returns the caller's completion percentage for tutorial id.
func (s *TutorialService) Progress(ctx context.Context, id string) (int, error) {
	return core.Fetch(ctx, s.cache, TutorialProgressKey(id), func(ctx context.Context) (int, error) {
		return s.api.Progress(ctx, id)
	})
}

// Favorites returns the caller's favorite tutorials.
func (s *TutorialService) Favorites(ctx context.Context) ([]model.Tutorial, error) {
	return core.Fetch(ctx, s.cache, tutorialFavorites, func(ctx context.Context) ([]model.Tutorial, error) {
		return s.api.Favorites(ctx)
	})
}

// UpdateProgress stores the caller's completion percentage, clamped to 0-100, and writes it
// into every cached copy of the tutorial.
func (s *TutorialService) UpdateProgress(ctx context.Context, id string, progress int) error {
	progress = model.ClampProgress(progress)
	if err := s.api.UpdateProgress(ctx, id, progress); err != nil {
		return err
	}
	n := s.apply(id, func(t model.Tutorial) model.Tutorial { return t.WithProgress(progress) })
	s.cache.SetQueryData(TutorialProgressKey(id), progress)
	s.logger.Debug("tutorial progress applied", "tutorial_id", id, "progress", progress, "entries", n)
	return nil
}

// Favorite adds tutorial id to the caller's favorites.
func (s *TutorialService) Favorite(ctx context.Context, id string) error {
	return s.setFavorite(ctx, id, true)
}

// Unfavorite removes tutorial id from the caller's favorites.
func (s *TutorialService) Unfavorite(ctx context.Context, id string) error {
	return s.setFavorite(ctx, id, false)
}

func (s *TutorialService) setFavorite(ctx context.Context, id string, favorited bool) error {
	call, msg := s.api.Unfavorite, MsgUnfavorited
	if favorited {
		call, msg = s.api.Favorite, MsgFavorited
	}
	if err := call(ctx, id); err != nil {
		return err
	}
	s.apply(id, func(t model.Tutorial) model.Tutorial { return t.WithFavorite(favorited) })
	s.cache.Invalidate(tutorialFavorites)
	s.notifier.Notify(ctx, notify.Success(msg))
	return nil
}

// apply patches the cached detail and every cached list entry of tutorial id.
func (s *TutorialService) apply(id string, fn func(model.Tutorial) model.Tutorial) int {
	n := s.cache.UpdateQueries(TutorialDetailKey(id), func(_ core.Key, v any) (any, bool) {
		t, ok := v.(model.Tutorial)
		if !ok {
			return nil, false
		}
		return fn(t), true
	})
	n += s.cache.UpdateQueries(tutorialList, func(_ core.Key, v any) (any, bool) {
		l, ok := v.([]model.Tutorial)
		if !ok {
			return nil, false
		}
		return patchByID(l, tutorialID, id, fn), true
	})
	return n
}

func tutorialID(t model.Tutorial) string { return t.ID }
