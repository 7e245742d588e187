// Package display provides output formatting for typing statistics.
//
// It supports multiple output formats (table, JSON, simple text) for the
// session summaries and speed stats returned by the API.
package display

import (
	"io"

	"github.com/wpmlab/typing-monitor/pkg/store"
)

// Format represents an output format.
type Format string

const (
	// FormatTable displays statistics in a formatted table.
	FormatTable Format = "table"

	// FormatJSON displays statistics as JSON.
	FormatJSON Format = "json"

	// FormatSimple displays statistics in simple text format.
	FormatSimple Format = "simple"
)

// Formatter formats typing statistics for display.
type Formatter interface {
	// FormatSummaries formats a list of session summaries.
	FormatSummaries(w io.Writer, summaries []store.Summary) error

	// FormatSummary formats a single session summary.
	FormatSummary(w io.Writer, summary store.Summary) error

	// FormatStat formats a computed speed statistic.
	FormatStat(w io.Writer, stat store.SpeedStat) error
}

// Config contains formatter configuration.
type Config struct {
	// Format specifies the output format.
	// Default: FormatTable.
	Format Format

	// Compact enables compact output (less whitespace, no indentation).
	// Default: false.
	Compact bool
}
