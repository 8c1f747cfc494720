package main

import (
	"context"

	"worldwise/internal/views"
)

type CountryListOutput struct {
	Body views.CountryList
}

func (app *App) handleListCountries(ctx context.Context, input *struct{}) (*CountryListOutput, error) {
	return &CountryListOutput{Body: views.NewCountryList(app.store.State())}, nil
}
