package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"worldwise/internal/location"
	"worldwise/internal/types"
	"worldwise/internal/views"
)

func newCountriesCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "countries",
		Short: "List visited countries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return views.NewCountryList(c.store.State()).Render(cmd.OutOrStdout())
		},
	}
}

func newCitiesCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "cities",
		Short: "List visited cities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return views.NewCityList(c.store.State()).Render(cmd.OutOrStdout())
		},
	}
}

func newCityCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "city <id>",
		Short: "Show one city",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			city, err := c.store.GetCity(cmd.Context(), types.CityID(args[0]))
			if err != nil {
				return err
			}

			var zone string
			if tz, err := c.timezones(); err == nil {
				zone, _ = tz.GetTimezone(city.Position)
			} else {
				c.logger.Warn("timezone lookup unavailable", "error", err)
			}

			return views.CityDetail(cmd.OutOrStdout(), *city, zone)
		},
	}
}

type addOptions struct {
	lat, lng    float64
	name        string
	country     string
	countryCode string
	date        string
	notes       string
}

func newAddCmd(c *cli) *cobra.Command {
	var opts addOptions

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a visited city at a map position",
		Long: "Add a visited city. Without --name the city, country and flag are looked up\n" +
			"from the position, as if the map had been clicked there.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var date time.Time
			if opts.date != "" {
				parsed, err := time.Parse(time.DateOnly, opts.date)
				if err != nil {
					return fmt.Errorf("invalid --date %q, want YYYY-MM-DD: %w", opts.date, err)
				}
				date = parsed
			}

			position := types.NewPosition(opts.lat, opts.lng)
			if err := location.Validate(position); err != nil {
				return err
			}

			var newCity types.NewCity

			if opts.name == "" {
				locations, err := c.locations()
				if err != nil {
					return err
				}
				draft, err := locations.DraftCity(cmd.Context(), position, date, opts.notes)
				if err != nil {
					return err
				}
				newCity = *draft
			} else {
				if date.IsZero() {
					date = time.Now().UTC()
				}
				newCity = types.NewCity{
					CityName: opts.name,
					Country:  opts.country,
					Emoji:    types.FlagEmoji(opts.countryCode),
					Date:     date,
					Notes:    opts.notes,
					Position: position,
				}
			}

			if _, err := c.store.CreateCity(cmd.Context(), newCity); err != nil {
				return err
			}
			return views.NewCityList(c.store.State()).Render(cmd.OutOrStdout())
		},
	}

	cmd.Flags().Float64Var(&opts.lat, "lat", 0, "latitude of the city")
	cmd.Flags().Float64Var(&opts.lng, "lng", 0, "longitude of the city")
	cmd.Flags().StringVar(&opts.name, "name", "", "city name (looked up from the position when empty)")
	cmd.Flags().StringVar(&opts.country, "country", "", "country name")
	cmd.Flags().StringVar(&opts.countryCode, "code", "", "ISO country code used for the flag")
	cmd.Flags().StringVar(&opts.date, "date", "", "visit date, YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&opts.notes, "notes", "", "notes about the trip")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lng")

	return cmd
}

func newDeleteCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a visited city",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.store.DeleteCity(cmd.Context(), types.CityID(args[0]))
			// The process is about to exit; let the DELETE reach the backend.
			c.store.Wait()
			return views.NewCityList(c.store.State()).Render(cmd.OutOrStdout())
		},
	}
}
