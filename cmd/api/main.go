package main

import (
	"context"
	"log"
	"log/slog"

	"worldwise/internal/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := cfg.NewLogger()
	slog.SetDefault(logger) // Set as default logger for the application

	// Create app
	app, err := NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	// The container is loaded once; a failure is kept in state and served from /state
	if err := app.store.Load(context.Background()); err != nil {
		logger.Warn("initial city load failed", "error", err)
	}

	// Start server
	logger.Info("starting server", "addr", cfg.GetServerAddr(), "backend", cfg.Backend.BaseURL)
	if err := app.Run(cfg.GetServerAddr()); err != nil {
		logger.Error("server failed", "error", err)
		log.Fatal(err)
	}
}
