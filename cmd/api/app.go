package main

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"

	"worldwise/internal/cities"
	"worldwise/internal/config"
	"worldwise/internal/location"
	"worldwise/internal/providers/citiesapi"
	"worldwise/internal/providers/openstreetmap"
	"worldwise/internal/timezone"
)

// App encapsulates application dependencies
type App struct {
	mux             *http.ServeMux
	api             huma.API
	logger          *slog.Logger
	store           *cities.Store
	locationService location.Service
	timezoneService timezone.Service
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, err
	}

	client := citiesapi.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, logger)
	geocoder := openstreetmap.NewClient(cfg.Geocode.BaseURL, cfg.Geocode.UserAgent, logger)

	locationService, err := location.NewLocationService(geocoder, logger)
	if err != nil {
		return nil, err
	}

	return newApp(
		logger,
		cities.NewStore(client, logger),
		locationService,
		tzSvc,
	), nil
}

func newApp(
	logger *slog.Logger,
	store *cities.Store,
	locationService location.Service,
	timezoneService timezone.Service,
) *App {
	// Create standard library HTTP mux
	mux := http.NewServeMux()

	// Create Huma API with standard library adapter
	humaConfig := huma.DefaultConfig("Worldwise API", "1.0.0")
	humaConfig.Info.Description = "Visited cities and countries for the worldwise travel tracker"
	humaConfig.Servers = []*huma.Server{
		{URL: "http://localhost:8080", Description: "Development server"},
	}

	api := humago.New(mux, humaConfig)

	app := &App{
		mux:             mux,
		api:             api,
		logger:          logger,
		store:           store,
		locationService: locationService,
		timezoneService: timezoneService,
	}

	logger.Info("application initialized")

	// Register routes
	app.registerRoutes()

	return app
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return http.ListenAndServe(addr, app.mux)
}
