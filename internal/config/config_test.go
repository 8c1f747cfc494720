package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

// chdir moves into an empty directory so no stray config.yaml is picked up.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Backend.BaseURL != "http://localhost:8000" {
		t.Errorf("Backend.BaseURL = %q", cfg.Backend.BaseURL)
	}
	if cfg.Backend.Timeout != 10*time.Second {
		t.Errorf("Backend.Timeout = %v, want 10s", cfg.Backend.Timeout)
	}
	if cfg.Store.Path != "data/cities.json" {
		t.Errorf("Store.Path = %q", cfg.Store.Path)
	}
	if cfg.GetStoreAddr() != ":8000" {
		t.Errorf("GetStoreAddr() = %q, want :8000", cfg.GetStoreAddr())
	}
}

func TestLoad_FileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())

	content := []byte("server:\n  port: 9090\nlog:\n  level: debug\nbackend:\n  timeout: 3s\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("WORLDWISE_BACKEND_BASEURL", "http://cities.internal:8000")

	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}

	if cfg.GetServerAddr() != ":9090" {
		t.Errorf("GetServerAddr() = %q, want :9090", cfg.GetServerAddr())
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Backend.Timeout != 3*time.Second {
		t.Errorf("Backend.Timeout = %v, want 3s", cfg.Backend.Timeout)
	}
	if cfg.Backend.BaseURL != "http://cities.internal:8000" {
		t.Errorf("Backend.BaseURL = %q, want env override", cfg.Backend.BaseURL)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())

	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: [port"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := load(viper.New()); err == nil {
		t.Error("load() expected error for malformed config")
	}
}

func TestNewLogger_Level(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := &Config{Log: LogConfig{Level: tt.level, Format: "json"}}
			logger := cfg.NewLogger()
			if !logger.Enabled(context.Background(), tt.want) {
				t.Errorf("logger not enabled at %v", tt.want)
			}
			if tt.want > slog.LevelDebug && logger.Enabled(context.Background(), tt.want-1) {
				t.Errorf("logger enabled below %v", tt.want)
			}
		})
	}
}
