package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"worldwise/internal/cities"
	"worldwise/internal/config"
	"worldwise/internal/location"
	"worldwise/internal/providers/citiesapi"
	"worldwise/internal/providers/openstreetmap"
	"worldwise/internal/timezone"
)

// cli carries the dependencies shared by every command. Anything left nil is
// built from configuration when a command starts.
type cli struct {
	cfg             *config.Config
	logger          *slog.Logger
	store           *cities.Store
	locationService location.Service
	timezoneService timezone.Service

	backendURL string
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "worldwise",
		Short:         "Track the cities and countries you have visited",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&c.backendURL, "backend", "", "cities backend base URL (overrides config)")

	root.AddCommand(
		newCountriesCmd(c),
		newCitiesCmd(c),
		newCityCmd(c),
		newAddCmd(c),
		newDeleteCmd(c),
	)
	return root
}

// setup builds the store once and loads the city collection into it.
func (c *cli) setup(cmd *cobra.Command) error {
	if c.cfg == nil {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		c.cfg = cfg
	}
	if c.backendURL != "" {
		c.cfg.Backend.BaseURL = c.backendURL
	}
	if c.logger == nil {
		c.logger = c.cfg.NewLogger()
		slog.SetDefault(c.logger)
	}
	if c.store == nil {
		client := citiesapi.NewClient(c.cfg.Backend.BaseURL, c.cfg.Backend.Timeout, c.logger)
		c.store = cities.NewStore(client, c.logger)
	}

	return c.store.Load(cmd.Context())
}

func (c *cli) timezones() (timezone.Service, error) {
	if c.timezoneService == nil {
		svc, err := timezone.NewService()
		if err != nil {
			return nil, err
		}
		c.timezoneService = svc
	}
	return c.timezoneService, nil
}

func (c *cli) locations() (location.Service, error) {
	if c.locationService == nil {
		geocoder := openstreetmap.NewClient(c.cfg.Geocode.BaseURL, c.cfg.Geocode.UserAgent, c.logger)
		svc, err := location.NewLocationService(geocoder, c.logger)
		if err != nil {
			return nil, err
		}
		c.locationService = svc
	}
	return c.locationService, nil
}
