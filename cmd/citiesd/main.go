package main

//go:generate go run github.com/swaggo/swag/cmd/swag@latest init -g main.go -o ../../docs

import (
	"log"
	"log/slog"

	"worldwise/internal/citystore"
	"worldwise/internal/config"

	_ "worldwise/docs" // Import generated docs
)

// @title           Worldwise cities backend
// @version         1.0
// @description     Development REST backend holding visited cities in a JSON file.
// @host            localhost:8000
// @BasePath        /
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	store, err := citystore.Open(cfg.Store.Path)
	if err != nil {
		log.Fatalf("Failed to open city store: %v", err)
	}

	app := NewApp(cfg, store, logger)

	logger.Info("starting cities backend",
		"addr", cfg.GetStoreAddr(),
		"path", cfg.Store.Path,
		"cities", len(store.List()),
	)
	if err := app.Run(cfg.GetStoreAddr()); err != nil {
		logger.Error("server failed", "error", err)
		log.Fatal(err)
	}
}
