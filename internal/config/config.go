package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the gateway configuration loaded from config.toml.
type Config struct {
	Server      ServerConfig      `toml:"server"`
	BookingCore BookingCoreConfig `toml:"booking_core"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

// BookingCoreConfig configures the upstream booking backend client.
type BookingCoreConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // seconds
}

// LogsConfig configures the logger.
type LogsConfig struct {
	File  string `toml:"file"` // empty or "stdout" logs to stdout
	Level string `toml:"level"`
}

// MetricsConfig configures the prometheus endpoint.
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Load reads and validates the configuration file.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			HTTPPort:        8081,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		BookingCore: BookingCoreConfig{
			Timeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "admin-gateway",
		},
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if cfg.BookingCore.URL == "" {
		return nil, fmt.Errorf("booking_core.url is required")
	}
	if cfg.Server.HTTPPort <= 0 {
		return nil, fmt.Errorf("server.http_port must be positive")
	}

	return cfg, nil
}
