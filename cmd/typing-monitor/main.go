// Package main provides the typing-monitor CLI application.
//
// Typing Monitor tracks typing-speed telemetry: clients submit timestamped
// samples of characters typed and elapsed duration, and the server exposes
// computed words-per-minute and summary statistics over an HTTP API.
package main

import (
	"flag"
	"fmt"
	"os"
)

// version is set during build time.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run executes the main application logic.
func run() error {
	// Define global flags.
	configPath := flag.String("config", "", "path to configuration file")
	showVersion := flag.Bool("version", false, "show version information")

	// Parse command.
	flag.Parse()

	// Handle version flag.
	if *showVersion {
		fmt.Printf("typing-monitor %s\n", version)
		return nil
	}

	// Get command.
	args := flag.Args()
	if len(args) == 0 {
		return showUsage()
	}

	command := args[0]

	switch command {
	case "serve":
		return runServeCommand(*configPath, args[1:])
	case "sessions":
		return runSessionsCommand(*configPath, args[1:])
	case "summary":
		return runSummaryCommand(*configPath, args[1:])
	case "stats":
		return runStatsCommand(*configPath, args[1:])
	case "delete":
		return runDeleteCommand(*configPath, args[1:])
	case "config":
		return runConfigCommand(*configPath, args[1:])
	case "help":
		return showUsage()
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}

// runServeCommand runs the serve command.
func runServeCommand(configPath string, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", "", "listen address (overrides config)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cmd := &serveCommand{
		configPath: configPath,
		addr:       *addr,
	}

	return cmd.Execute()
}

// runSessionsCommand runs the sessions command.
func runSessionsCommand(configPath string, args []string) error {
	fs := flag.NewFlagSet("sessions", flag.ExitOnError)
	format := fs.String("format", "", "output format (table, json, simple)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cmd := &sessionsCommand{
		configPath: configPath,
		format:     *format,
	}

	return cmd.Execute()
}

// runSummaryCommand runs the summary command.
func runSummaryCommand(configPath string, args []string) error {
	fs := flag.NewFlagSet("summary", flag.ExitOnError)
	format := fs.String("format", "", "output format (table, json, simple)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: typing-monitor summary [flags] <session-id>")
	}

	cmd := &summaryCommand{
		configPath: configPath,
		format:     *format,
		sessionID:  fs.Arg(0),
	}

	return cmd.Execute()
}

// runStatsCommand runs the stats command.
func runStatsCommand(configPath string, args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	format := fs.String("format", "", "output format (table, json, simple)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: typing-monitor stats [flags] <session-id>")
	}

	cmd := &statsCommand{
		configPath: configPath,
		format:     *format,
		sessionID:  fs.Arg(0),
	}

	return cmd.Execute()
}

// runDeleteCommand runs the delete command.
func runDeleteCommand(configPath string, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: typing-monitor delete <session-id>")
	}

	cmd := &deleteCommand{
		configPath: configPath,
		sessionID:  fs.Arg(0),
	}

	return cmd.Execute()
}

// runConfigCommand runs the config command.
func runConfigCommand(configPath string, args []string) error {
	cmd := &configCommand{
		configPath: configPath,
	}
	return cmd.Execute(args)
}

// showUsage displays usage information.
func showUsage() error {
	fmt.Print(`typing-monitor - typing speed telemetry service

Usage:
  typing-monitor [flags] <command> [command flags]

Commands:
  serve      Run the HTTP API server
  sessions   List all typing sessions
  summary    Show the aggregate summary for a session
  stats      Show the computed typing speed for a session
  delete     Delete a session
  config     Manage configuration (show, path, init)
  help       Show this help

Flags:
  -config string   path to configuration file
  -version         show version information

Examples:
  typing-monitor serve -addr :8080
  typing-monitor sessions -format json
  typing-monitor stats a1b2c3d4-e5f6-7890-abcd-ef1234567890
`)
	return nil
}
