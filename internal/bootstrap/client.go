package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/target/stylist-web/config"
	"github.com/target/stylist-web/internal/apiclient"
	"github.com/target/stylist-web/internal/core"
	"github.com/target/stylist-web/internal/observability/notify"
	"github.com/target/stylist-web/internal/ports"
	"github.com/target/stylist-web/internal/service"
)

// ClientDeps groups the inputs for BuildClient.
type ClientDeps struct {
	Config      *config.AppConfig
	Credentials *Credentials
	Navigator   ports.Navigator
	Notifier    notify.Notifier
	Logger      *slog.Logger
}

// Client is the wired terminal client: one backend wrapper, one session store and the
// services that share its query cache.
type Client struct {
	API       *apiclient.Client
	Cache     *core.QueryCache
	Session   *service.SessionService
	Flow      *service.AuthFlow
	Workshops *service.WorkshopService
	Tutorials *service.TutorialService
	Gallery   *service.GalleryService
	Community *service.CommunityService
	Navigator ports.Navigator
}

// Close detaches the session store from the client's 401 signal.
func (c *Client) Close() {
	if c != nil && c.Session != nil {
		c.Session.Close()
	}
}

// BuildClient wires the HTTP client wrapper, session store and content services around one
// set of credentials.
func BuildClient(deps ClientDeps) (*Client, error) {
	if deps.Config == nil {
		return nil, errors.New("client config is required")
	}
	if deps.Credentials == nil {
		return nil, errors.New("credentials are required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	notifier := deps.Notifier
	if notifier == nil {
		notifier = notify.SlogNotifier{Logger: logger}
	}

	api, err := apiclient.New(apiclient.Options{
		BaseURL:     deps.Config.API.BaseURL,
		Timeout:     deps.Config.API.Timeout,
		Credentials: deps.Credentials.Token,
		Navigator:   deps.Navigator,
		Notifier:    notifier,
		Logger:      logger,
		Jar:         deps.Credentials.Jar,
	})
	if err != nil {
		return nil, fmt.Errorf("api client: %w", err)
	}

	cache := core.NewQueryCache(core.QueryCacheOptions{})

	session, err := service.NewSessionService(service.SessionServiceOptions{
		API:         api.Auth(),
		Credentials: deps.Credentials.Token,
		Snapshots:   deps.Credentials.Snapshots,
		Cache:       cache,
		Signals:     api,
		Notifier:    notifier,
		Logger:      logger,
		Config:      service.SessionConfig{RefreshInterval: deps.Config.Session.RefreshInterval},
	})
	if err != nil {
		return nil, fmt.Errorf("session service: %w", err)
	}

	workshops, err := service.NewWorkshopService(service.WorkshopServiceOptions{
		API:      api.Workshops(),
		Cache:    cache,
		Notifier: notifier,
		Logger:   logger,
	})
	if err != nil {
		session.Close()
		return nil, fmt.Errorf("workshop service: %w", err)
	}
	tutorials, err := service.NewTutorialService(service.TutorialServiceOptions{
		API: api.Tutorials(), Cache: cache, Notifier: notifier, Logger: logger,
	})
	if err != nil {
		session.Close()
		return nil, fmt.Errorf("tutorial service: %w", err)
	}
	gallery, err := service.NewGalleryService(service.GalleryServiceOptions{
		API: api.Gallery(), Cache: cache, Notifier: notifier, Logger: logger,
	})
	if err != nil {
		session.Close()
		return nil, fmt.Errorf("gallery service: %w", err)
	}
	community, err := service.NewCommunityService(service.CommunityServiceOptions{
		API: api.Community(), Cache: cache, Notifier: notifier, Logger: logger,
	})
	if err != nil {
		session.Close()
		return nil, fmt.Errorf("community service: %w", err)
	}

	return &Client{
		API:       api,
		Cache:     cache,
		Session:   session,
		Flow:      service.NewAuthFlow(session, deps.Navigator),
		Workshops: workshops,
		Tutorials: tutorials,
		Gallery:   gallery,
		Community: community,
		Navigator: deps.Navigator,
	}, nil
}
