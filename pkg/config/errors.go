package config

import "errors"

// Common errors returned by the config package.
var (
	// ErrNoListenAddr is returned when the server listen address is empty.
	ErrNoListenAddr = errors.New("no server listen address specified")

	// ErrInvalidReadTimeout is returned when the read timeout is <= 0.
	ErrInvalidReadTimeout = errors.New("invalid read timeout: must be > 0")

	// ErrInvalidWriteTimeout is returned when the write timeout is <= 0.
	ErrInvalidWriteTimeout = errors.New("invalid write timeout: must be > 0")

	// ErrInvalidShutdownTimeout is returned when the shutdown timeout is <= 0.
	ErrInvalidShutdownTimeout = errors.New("invalid shutdown timeout: must be > 0")

	// ErrNoServerURL is returned when the client server URL is empty.
	ErrNoServerURL = errors.New("no server URL specified")

	// ErrInvalidClientTimeout is returned when the client timeout is <= 0.
	ErrInvalidClientTimeout = errors.New("invalid client timeout: must be > 0")

	// ErrInvalidDisplayFormat is returned when the display format is not recognized.
	ErrInvalidDisplayFormat = errors.New("invalid display format: must be table, json, or simple")

	// ErrInvalidLogLevel is returned when the log level is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level: must be debug, info, warn, or error")

	// ErrInvalidLogFormat is returned when the log format is not recognized.
	ErrInvalidLogFormat = errors.New("invalid log format: must be text or json")

	// ErrConfigNotFound is returned when the config file is not found.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrInvalidYAML is returned when the config file has invalid YAML syntax.
	ErrInvalidYAML = errors.New("invalid YAML syntax in config file")
)
