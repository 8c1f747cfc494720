package main

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	huma.Register(app.api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
		Summary:     "Ping health check",
		Description: "Check if the API is running",
		Tags:        []string{"health"},
	}, app.handlePing)

	huma.Register(app.api, huma.Operation{
		OperationID: "get-state",
		Method:      http.MethodGet,
		Path:        "/state",
		Summary:     "Cities state",
		Description: "Snapshot of the cities container: collection, current city, loading flag and last error",
		Tags:        []string{"cities"},
	}, app.handleGetState)

	huma.Register(app.api, huma.Operation{
		OperationID: "list-countries",
		Method:      http.MethodGet,
		Path:        "/countries",
		Summary:     "Visited countries",
		Description: "One entry per visited country, in the order the countries were first visited",
		Tags:        []string{"countries"},
	}, app.handleListCountries)

	huma.Register(app.api, huma.Operation{
		OperationID: "list-cities",
		Method:      http.MethodGet,
		Path:        "/cities",
		Summary:     "Visited cities",
		Tags:        []string{"cities"},
	}, app.handleListCities)

	huma.Register(app.api, huma.Operation{
		OperationID: "get-city",
		Method:      http.MethodGet,
		Path:        "/cities/{id}",
		Summary:     "Get a city",
		Description: "Loads the city from the backend, makes it the current city and adds its time zone",
		Tags:        []string{"cities"},
	}, app.handleGetCity)

	huma.Register(app.api, huma.Operation{
		OperationID:   "create-city",
		Method:        http.MethodPost,
		Path:          "/cities",
		Summary:       "Add a city",
		Description:   "Adds a visited city. When cityName is omitted the name, country and flag are looked up from the position.",
		Tags:          []string{"cities"},
		DefaultStatus: http.StatusCreated,
	}, app.handleCreateCity)

	huma.Register(app.api, huma.Operation{
		OperationID:   "delete-city",
		Method:        http.MethodDelete,
		Path:          "/cities/{id}",
		Summary:       "Delete a city",
		Tags:          []string{"cities"},
		DefaultStatus: http.StatusNoContent,
	}, app.handleDeleteCity)
}
