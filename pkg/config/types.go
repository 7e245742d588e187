// Package config provides configuration management for typing-monitor.
//
// Configuration is loaded from multiple sources with the following precedence:
// 1. Environment variables (highest priority)
// 2. Configuration file
// 3. Default values (lowest priority)
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("listening on %s\n", cfg.Server.ListenAddr)
package config

import "time"

// Config represents the complete application configuration.
//
// Invariants:
// - Server.ListenAddr must be non-empty
// - Server timeouts must be > 0
// - Client.ServerURL must be non-empty
// - Client.Timeout must be > 0
// - Display.DefaultFormat must be table, json, or simple
// - Logging.Level must be debug, info, warn, or error
// - Logging.Format must be text or json.
type Config struct {
	// HTTP server settings
	Server ServerConfig `yaml:"server"`

	// API client settings used by the CLI query commands
	Client ClientConfig `yaml:"client"`

	// Display settings
	Display DisplayConfig `yaml:"display"`

	// Logging settings
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// Address to listen on (host:port)
	ListenAddr string `yaml:"listen_addr"`

	// Maximum duration for reading an entire request
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// Maximum duration before timing out response writes
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// Grace period for in-flight requests on shutdown
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// Allowed CORS origins; empty allows any origin
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
}

// ClientConfig contains API client settings.
type ClientConfig struct {
	// Base URL of the typing-monitor server
	ServerURL string `yaml:"server_url"`

	// Per-request timeout
	Timeout time.Duration `yaml:"timeout"`
}

// DisplayConfig contains display-related settings.
type DisplayConfig struct {
	// Default output format (table, json, simple)
	DefaultFormat string `yaml:"default_format"`

	// Enable colored output
	ColorEnabled bool `yaml:"color_enabled"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	// Log level (debug, info, warn, error)
	Level string `yaml:"level"`

	// Log output destination (stdout, stderr, file path)
	Output string `yaml:"output"`

	// Log format (text, json)
	Format string `yaml:"format"`
}

// Validate checks if the configuration satisfies all invariants.
//
// Thread-safety: This method is read-only and thread-safe.
func (c *Config) Validate() error {
	if c.Server.ListenAddr == "" {
		return ErrNoListenAddr
	}
	if c.Server.ReadTimeout <= 0 {
		return ErrInvalidReadTimeout
	}
	if c.Server.WriteTimeout <= 0 {
		return ErrInvalidWriteTimeout
	}
	if c.Server.ShutdownTimeout <= 0 {
		return ErrInvalidShutdownTimeout
	}

	if c.Client.ServerURL == "" {
		return ErrNoServerURL
	}
	if c.Client.Timeout <= 0 {
		return ErrInvalidClientTimeout
	}

	validFormats := map[string]bool{
		"table":  true,
		"json":   true,
		"simple": true,
	}
	if !validFormats[c.Display.DefaultFormat] {
		return ErrInvalidDisplayFormat
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validLogFormats[c.Logging.Format] {
		return ErrInvalidLogFormat
	}

	return nil
}

// Default returns a configuration with sensible default values.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			ListenAddr:      ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		Client: ClientConfig{
			ServerURL: "http://localhost:8080",
			Timeout:   10 * time.Second,
		},
		Display: DisplayConfig{
			DefaultFormat: "table",
			ColorEnabled:  true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Output: "stderr",
			Format: "text",
		},
	}
}
