package main

import (
	"context"
	"fmt"
	"os"

	"github.com/wpmlab/typing-monitor/pkg/client"
	"github.com/wpmlab/typing-monitor/pkg/config"
	"github.com/wpmlab/typing-monitor/pkg/display"
)

// sessionsCommand lists all typing sessions.
type sessionsCommand struct {
	configPath string
	format     string
}

// Execute runs the sessions command.
func (c *sessionsCommand) Execute() error {
	api, formatter, err := initializeClient(c.configPath, c.format)
	if err != nil {
		return err
	}

	summaries, err := api.ListSessions(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	return formatter.FormatSummaries(os.Stdout, summaries)
}

// summaryCommand shows the aggregate summary for one session.
type summaryCommand struct {
	configPath string
	format     string
	sessionID  string
}

// Execute runs the summary command.
func (c *summaryCommand) Execute() error {
	api, formatter, err := initializeClient(c.configPath, c.format)
	if err != nil {
		return err
	}

	summary, err := api.Summary(context.Background(), c.sessionID)
	if err != nil {
		return fmt.Errorf("failed to get summary: %w", err)
	}

	return formatter.FormatSummary(os.Stdout, summary)
}

// statsCommand shows the computed typing speed for one session.
type statsCommand struct {
	configPath string
	format     string
	sessionID  string
}

// Execute runs the stats command.
func (c *statsCommand) Execute() error {
	api, formatter, err := initializeClient(c.configPath, c.format)
	if err != nil {
		return err
	}

	stat, err := api.Stats(context.Background(), c.sessionID)
	if err != nil {
		return fmt.Errorf("failed to get stats: %w", err)
	}

	return formatter.FormatStat(os.Stdout, stat)
}

// deleteCommand deletes one session.
type deleteCommand struct {
	configPath string
	sessionID  string
}

// Execute runs the delete command.
func (c *deleteCommand) Execute() error {
	api, _, err := initializeClient(c.configPath, "")
	if err != nil {
		return err
	}

	if err := api.DeleteSession(context.Background(), c.sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	fmt.Printf("deleted %s\n", c.sessionID)
	return nil
}

// initializeClient loads configuration and builds the API client and
// formatter shared by the query commands.
func initializeClient(configPath, format string) (*client.Client, display.Formatter, error) {
	loader := config.NewLoader(configPath)
	cfg, err := loader.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if format == "" {
		format = cfg.Display.DefaultFormat
	}

	api := client.New(client.Config{
		ServerURL: cfg.Client.ServerURL,
		Timeout:   cfg.Client.Timeout,
	})

	formatter := display.New(display.Config{
		Format: display.Format(format),
	})

	return api, formatter, nil
}
