package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	Backend BackendConfig
	Geocode GeocodeConfig
	Store   StoreConfig
}

// ServerConfig holds API server configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// BackendConfig points at the cities REST backend
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// GeocodeConfig configures reverse geocoding of map positions
type GeocodeConfig struct {
	BaseURL   string
	UserAgent string
}

// StoreConfig configures the development cities backend (citiesd)
type StoreConfig struct {
	Path string
	Port int
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.worldwise")

	// Set defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("backend.baseurl", "http://localhost:8000")
	v.SetDefault("backend.timeout", "10s")
	v.SetDefault("geocode.baseurl", "https://nominatim.openstreetmap.org/reverse")
	v.SetDefault("geocode.useragent", "worldwise/1.0")
	v.SetDefault("store.path", "data/cities.json")
	v.SetDefault("store.port", 8000)

	// Read from environment variables, e.g. WORLDWISE_BACKEND_BASEURL
	v.SetEnvPrefix("WORLDWISE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// GetServerAddr returns the API server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// GetStoreAddr returns the citiesd address in the format ":port"
func (c *Config) GetStoreAddr() string {
	return fmt.Sprintf(":%d", c.Store.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format. Logs go to stderr so CLI output stays clean.
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}
