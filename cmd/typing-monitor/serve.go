package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/wpmlab/typing-monitor/pkg/config"
	"github.com/wpmlab/typing-monitor/pkg/logger"
	"github.com/wpmlab/typing-monitor/pkg/server"
	"github.com/wpmlab/typing-monitor/pkg/store"
	"github.com/wpmlab/typing-monitor/pkg/watcher"
)

// serveCommand runs the HTTP API server.
type serveCommand struct {
	configPath string
	addr       string
}

// Execute runs the serve command.
func (c *serveCommand) Execute() error {
	cfg, err := config.LoadFromFile(c.resolveConfigPath())
	if err != nil {
		// Fall back to env + defaults when no file exists.
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	if c.addr != "" {
		cfg.Server.ListenAddr = c.addr
	}

	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Output: cfg.Logging.Output,
		Format: cfg.Logging.Format,
	})

	// The store is the single shared registry; it is constructed here and
	// handed to the transport by reference.
	typingStore := store.New(log)

	handler := server.Chain(
		server.NewHandler(typingStore, log),
		server.Recover(log),
		server.CORS(cfg.Server.CORSAllowedOrigins),
		server.RequestLog(log),
	)

	srv := server.New(server.Config{
		Addr:         cfg.Server.ListenAddr,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}, handler)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Reload the log level when the config file changes.
	c.watchConfig(ctx, log)

	errChan := make(chan error, 1)
	go func() {
		log.Info("server starting", "addr", cfg.Server.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down", "grace_period", cfg.Server.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	log.Info("server stopped")
	return nil
}

// watchConfig starts a config file watcher that reapplies the log level on
// change. Watching is best-effort: a missing config file disables it.
func (c *serveCommand) watchConfig(ctx context.Context, log logger.Logger) {
	path := c.resolveConfigPath()
	if _, err := os.Stat(path); err != nil {
		log.Debug("config watch disabled", "path", path, "reason", err)
		return
	}

	w, err := watcher.New(watcher.Config{Path: path}, log)
	if err != nil {
		log.Warn("failed to create config watcher", "error", err)
		return
	}

	if err := w.Start(ctx); err != nil {
		log.Warn("failed to start config watcher", "error", err)
		_ = w.Close()
		return
	}

	go func() {
		defer func() { _ = w.Close() }()

		for {
			select {
			case <-ctx.Done():
				return

			case _, ok := <-w.Events():
				if !ok {
					return
				}

				reloaded, err := config.LoadFromFile(path)
				if err != nil {
					log.Warn("ignoring config reload", "error", err)
					continue
				}

				log.SetLevel(reloaded.Logging.Level)
				log.Info("config reloaded", "log_level", reloaded.Logging.Level)

			case err, ok := <-w.Errors():
				if !ok {
					return
				}
				log.Warn("config watcher error", "error", err)
			}
		}
	}()
}

// resolveConfigPath returns the explicit config path or the default.
func (c *serveCommand) resolveConfigPath() string {
	if c.configPath != "" {
		return c.configPath
	}
	if env := os.Getenv("TYPING_MONITOR_CONFIG"); env != "" {
		return env
	}
	return config.DefaultConfigPath()
}
