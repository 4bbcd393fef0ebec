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

// Notice texts for workshop registration.
const (
	MsgRegistered   = "Successfully registered for workshop!"
	MsgUnregistered = "Successfully unregistered from workshop"
)

// WorkshopServiceOptions groups dependencies for WorkshopService.
type WorkshopServiceOptions struct {
	API      ports.WorkshopAPI // Required: backend workshop endpoints
	Cache    *core.QueryCache  // Required: shared query cache
	Notifier notify.Notifier   // Optional: success notices
	Logger   *slog.Logger      // Optional: structured logger
}

// WorkshopService reads workshops through the query cache and keeps cached lists and details
// in step with registrations.
type WorkshopService struct {
	api      ports.WorkshopAPI
	cache    *core.QueryCache
	notifier notify.Notifier
	logger   *slog.Logger
}

// NewWorkshopService constructs a WorkshopService.
func NewWorkshopService(opts WorkshopServiceOptions) (*WorkshopService, error) {
	if opts.API == nil {
		return nil, errors.New("WorkshopAPI is required")
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
	return &WorkshopService{
		api:      opts.API,
		cache:    opts.Cache,
		notifier: notifier,
		logger:   logger.With("component", "workshops"),
	}, nil
}

// List returns one filtered page of workshops.
func (s *WorkshopService) List(ctx context.Context, f model.WorkshopFilters) (model.WorkshopList, error) {
	return core.Fetch(ctx, s.cache, WorkshopListKey(f), func(ctx context.Context) (model.WorkshopList, error) {
		return s.api.List(ctx, f)
	})
}

// Get returns one workshop.
func (s *WorkshopService) Get(ctx context.Context, id string) (model.Workshop, error) {
	return core.Fetch(ctx, s.cache, WorkshopDetailKey(id), func(ctx context.Context) (model.Workshop, error) {
		return s.api.Get(ctx, id)
	})
}

// MyRegistrations returns the workshops the signed-in user registered for.
func (s *WorkshopService) MyRegistrations(ctx context.Context) ([]model.Workshop, error) {
	return core.Fetch(ctx, s.cache, MyRegistrationsKey(), func(ctx context.Context) ([]model.Workshop, error) {
		return s.api.MyRegistrations(ctx)
	})
}

// Register signs the user up for workshop id.
func (s *WorkshopService) Register(ctx context.Context, id string) error {
	if err := s.api.Register(ctx, id); err != nil {
		return err
	}
	s.applyRegistration(id, true)
	s.notifier.Notify(ctx, notify.Success(MsgRegistered))
	return nil
}

// Unregister cancels the user's registration for workshop id.
func (s *WorkshopService) Unregister(ctx context.Context, id string) error {
	if err := s.api.Unregister(ctx, id); err != nil {
		return err
	}
	s.applyRegistration(id, false)
	s.notifier.Notify(ctx, notify.Success(MsgUnregistered))
	return nil
}

// applyRegistration patches the cached detail and every cached list, then marks the
// registrations list stale.
func (s *WorkshopService) applyRegistration(id string, registered bool) {
	s.cache.UpdateQueries(WorkshopDetailKey(id), func(_ core.Key, v any) (any, bool) {
		w, ok := v.(model.Workshop)
		if !ok {
			return nil, false
		}
		return w.WithRegistration(registered), true
	})
	n := s.cache.UpdateQueries(workshopList, func(_ core.Key, v any) (any, bool) {
		l, ok := v.(model.WorkshopList)
		if !ok {
			return nil, false
		}
		return l.WithRegistration(id, registered), true
	})
	s.cache.Invalidate(workshopMine)
	s.logger.Debug("workshop registration applied", "workshop_id", id, "registered", registered, "lists", n)
}
