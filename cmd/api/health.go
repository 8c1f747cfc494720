package main

import (
	"context"
)

// PingOutput represents the response for the ping endpoint
type PingOutput struct {
	Body struct {
		Message   string `json:"message" example:"pong" doc:"Response message"`
		Cities    int    `json:"cities" example:"3" doc:"Cities currently held by the container"`
		LastError string `json:"lastError,omitempty" doc:"Last backend failure recorded by the container"`
	}
}

// handlePing reports liveness along with a summary of the cities container
func (app *App) handlePing(ctx context.Context, input *struct{}) (*PingOutput, error) {
	state := app.store.State()

	resp := &PingOutput{}
	resp.Body.Message = "pong"
	resp.Body.Cities = len(state.Cities)
	resp.Body.LastError = state.Error
	return resp, nil
}
