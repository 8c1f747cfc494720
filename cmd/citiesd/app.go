package main

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"worldwise/internal/citystore"
	"worldwise/internal/config"
)

// App encapsulates application dependencies
type App struct {
	router *gin.Engine
	logger *slog.Logger
	store  *citystore.Store
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, store *citystore.Store, logger *slog.Logger) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	app := &App{
		router: router,
		logger: logger.With("component", "citiesd"),
		store:  store,
	}

	// Register routes
	app.registerRoutes()

	return app
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}

// requestLogger logs one line per request through slog.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
