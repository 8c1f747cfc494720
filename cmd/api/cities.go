package main

import (
	"context"
	"errors"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"worldwise/internal/cities"
	"worldwise/internal/location"
	"worldwise/internal/providers/citiesapi"
	"worldwise/internal/types"
	"worldwise/internal/views"
)

type StateOutput struct {
	Body cities.State
}

type CityListOutput struct {
	Body views.CityList
}

type CityIDInput struct {
	ID string `path:"id" example:"73930385" doc:"City id"`
}

// CityDetail is a city plus the time zone at its position
type CityDetail struct {
	City     types.City `json:"city"`
	Timezone string     `json:"timezone,omitempty" example:"Europe/Lisbon" doc:"IANA time zone at the city position"`
}

type CityDetailOutput struct {
	Body CityDetail
}

// CreateCityInput mirrors the add-city form. Only position is required.
type CreateCityInput struct {
	Body struct {
		CityName string         `json:"cityName,omitempty" example:"Lisbon" doc:"City name; looked up from position when empty"`
		Country  string         `json:"country,omitempty" example:"Portugal" doc:"Country name"`
		Emoji    string         `json:"emoji,omitempty" example:"🇵🇹" doc:"Flag emoji"`
		Date     time.Time      `json:"date,omitempty" doc:"Date of the visit; defaults to now"`
		Notes    string         `json:"notes,omitempty" doc:"Notes about the trip"`
		Position types.Position `json:"position" doc:"Clicked map position"`
	}
}

type CityOutput struct {
	Body types.City
}

func (app *App) handleGetState(ctx context.Context, input *struct{}) (*StateOutput, error) {
	return &StateOutput{Body: app.store.State()}, nil
}

func (app *App) handleListCities(ctx context.Context, input *struct{}) (*CityListOutput, error) {
	return &CityListOutput{Body: views.NewCityList(app.store.State())}, nil
}

func (app *App) handleGetCity(ctx context.Context, input *CityIDInput) (*CityDetailOutput, error) {
	fetched, err := app.store.GetCity(ctx, types.CityID(input.ID))
	if err != nil {
		if errors.Is(err, citiesapi.ErrNotFound) {
			return nil, huma.Error404NotFound(err.Error())
		}
		return nil, huma.Error502BadGateway(err.Error())
	}

	city := *fetched

	tz, err := app.timezoneService.GetTimezone(city.Position)
	if err != nil {
		app.logger.Debug("no timezone for city", "id", city.ID, "error", err)
	}

	return &CityDetailOutput{Body: CityDetail{City: city, Timezone: tz}}, nil
}

func (app *App) handleCreateCity(ctx context.Context, input *CreateCityInput) (*CityOutput, error) {
	body := input.Body

	if err := location.Validate(body.Position); err != nil {
		return nil, huma.Error422UnprocessableEntity(err.Error())
	}

	newCity := types.NewCity{
		CityName: body.CityName,
		Country:  body.Country,
		Emoji:    body.Emoji,
		Date:     body.Date,
		Notes:    body.Notes,
		Position: body.Position,
	}

	if newCity.CityName == "" {
		draft, err := app.locationService.DraftCity(ctx, body.Position, body.Date, body.Notes)
		if err != nil {
			if errors.Is(err, location.ErrNotACity) {
				return nil, huma.Error422UnprocessableEntity(err.Error())
			}
			app.logger.Error("failed to look up city from position",
				"latitude", body.Position.Lat,
				"longitude", body.Position.Lng,
				"error", err,
			)
			return nil, huma.Error502BadGateway("failed to look up city from position")
		}
		newCity = *draft
	}

	if newCity.Date.IsZero() {
		newCity.Date = time.Now().UTC()
	}

	created, err := app.store.CreateCity(ctx, newCity)
	if err != nil {
		return nil, huma.Error502BadGateway(err.Error())
	}

	return &CityOutput{Body: *created}, nil
}

func (app *App) handleDeleteCity(ctx context.Context, input *CityIDInput) (*struct{}, error) {
	app.store.DeleteCity(ctx, types.CityID(input.ID))
	return nil, nil
}
