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

// GalleryServiceOptions groups dependencies for GalleryService.
type GalleryServiceOptions struct {
	API      ports.GalleryAPI
	Cache    *core.QueryCache
	Notifier notify.Notifier
	Logger   *slog.Logger
}

// GalleryService reads the hairstyle gallery through the query cache and keeps the favorite
// flag of cached entries current.
type GalleryService struct {
	api      ports.GalleryAPI
	cache    *core.QueryCache
	notifier notify.Notifier
	logger   *slog.Logger
}

// NewGalleryService constructs a GalleryService.
func NewGalleryService(opts GalleryServiceOptions) (*GalleryService, error) {
	if opts.API == nil {
		return nil, errors.New("GalleryAPI is required")
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
	return &GalleryService{
		api:      opts.API,
		cache:    opts.Cache,
		notifier: notifier,
		logger:   logger.With("component", "gallery"),
	}, nil
}

func (s *GalleryService) Hairstyles(ctx context.Context, f model.GalleryFilters) ([]model.Hairstyle, error) {
	return core.Fetch(ctx, s.cache, HairstyleListKey(f), func(ctx context.Context) ([]model.Hairstyle, error) {
		return s.api.Hairstyles(ctx, f)
	})
}

func (s *GalleryService) Hairstyle(ctx context.Context, id string) (model.Hairstyle, error) {
	return core.Fetch(ctx, s.cache, HairstyleDetailKey(id), func(ctx context.Context) (model.Hairstyle, error) {
		return s.api.Hairstyle(ctx, id)
	})
}

func (s *GalleryService) Favorites(ctx context.Context) ([]model.Hairstyle, error) {
	return core.Fetch(ctx, s.cache, galleryFavorites, func(ctx context.Context) ([]model.Hairstyle, error) {
		return s.api.Favorites(ctx)
	})
}

func (s *GalleryService) Favorite(ctx context.Context, id string) error {
	if err := s.api.Favorite(ctx, id); err != nil {
		return err
	}
	s.applyFavorite(id, true)
	s.notifier.Notify(ctx, notify.Success(MsgFavorited))
	return nil
}

func (s *GalleryService) Unfavorite(ctx context.Context, id string) error {
	if err := s.api.Unfavorite(ctx, id); err != nil {
		return err
	}
	s.applyFavorite(id, false)
	s.notifier.Notify(ctx, notify.Success(MsgUnfavorited))
	return nil
}

func (s *GalleryService) applyFavorite(id string, favorited bool) {
	s.cache.UpdateQueries(HairstyleDetailKey(id), func(_ core.Key, v any) (any, bool) {
		h, ok := v.(model.Hairstyle)
		if !ok {
			return nil, false
		}
		return h.WithFavorite(favorited), true
	})
	n := s.cache.UpdateQueries(galleryList, func(_ core.Key, v any) (any, bool) {
		l, ok := v.([]model.Hairstyle)
		if !ok {
			return nil, false
		}
		return patchByID(l, hairstyleID, id, func(h model.Hairstyle) model.Hairstyle {
			return h.WithFavorite(favorited)
		}), true
	})
	s.cache.Invalidate(galleryFavorites)
	s.logger.Debug("hairstyle favorite applied", "hairstyle_id", id, "favorited", favorited, "lists", n)
}

func hairstyleID(h model.Hairstyle) string { return h.ID }
