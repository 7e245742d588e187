package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/wpmlab/typing-monitor/pkg/store"
)

// tableFormatter formats output as tables.
type tableFormatter struct {
	config Config
}

// FormatSummaries implements Formatter.FormatSummaries.
func (f *tableFormatter) FormatSummaries(w io.Writer, summaries []store.Summary) error {
	if err := writeHeader(w, "Typing Sessions", f.config.Compact); err != nil {
		return err
	}

	if len(summaries) == 0 {
		_, err := fmt.Fprintln(w, "no sessions")
		return err
	}

	header := []string{"Session ID", "Samples", "Chars", "Duration", "Avg WPM", "Last Updated"}

	rows := make([][]string, len(summaries))
	for i, s := range summaries {
		rows[i] = []string{
			truncateID(s.SessionID, idColumnWidth(w)),
			formatNumber(s.SamplesCount),
			formatNumber(s.TotalChars),
			formatDuration(s.TotalDurationMS),
			formatFloat(s.AvgWPM, 1),
			s.LastUpdated.Format("2006-01-02 15:04:05"),
		}
	}

	return f.writeTable(w, header, rows)
}

// FormatSummary implements Formatter.FormatSummary.
func (f *tableFormatter) FormatSummary(w io.Writer, summary store.Summary) error {
	if err := writeHeader(w, "Session Summary", f.config.Compact); err != nil {
		return err
	}

	rows := [][]string{
		{"Session ID", summary.SessionID},
		{"Samples", formatNumber(summary.SamplesCount)},
		{"Total Chars", formatNumber(summary.TotalChars)},
		{"Total Duration", formatDuration(summary.TotalDurationMS)},
		{"Average WPM", formatFloat(summary.AvgWPM, 2)},
		{"Last Updated", summary.LastUpdated.Format("2006-01-02 15:04:05")},
	}

	return f.writeTable(w, []string{"Field", "Value"}, rows)
}

// FormatStat implements Formatter.FormatStat.
func (f *tableFormatter) FormatStat(w io.Writer, stat store.SpeedStat) error {
	if err := writeHeader(w, "Typing Speed", f.config.Compact); err != nil {
		return err
	}

	accuracy := "n/a"
	if stat.Accuracy != nil {
		accuracy = formatFloat(*stat.Accuracy, 1) + "%"
	}

	rows := [][]string{
		{"Session ID", stat.SessionID},
		{"WPM", formatFloat(stat.WPM, 2)},
		{"Accuracy", accuracy},
		{"Last Updated", stat.LastUpdated.Format("2006-01-02 15:04:05")},
	}

	return f.writeTable(w, []string{"Field", "Value"}, rows)
}

// writeTable writes a padded column table.
func (f *tableFormatter) writeTable(w io.Writer, header []string, rows [][]string) error {
	// Compute column widths.
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	writeRow := func(cells []string) error {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = pad(cell, widths[i])
		}
		_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
		return err
	}

	if err := writeRow(header); err != nil {
		return err
	}

	separators := make([]string, len(header))
	for i, width := range widths {
		separators[i] = strings.Repeat("-", width)
	}
	if err := writeRow(separators); err != nil {
		return err
	}

	for _, row := range rows {
		if err := writeRow(row); err != nil {
			return err
		}
	}

	return nil
}

// pad right-pads a cell to the column width.
func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// idColumnWidth returns the width budget for the session id column.
//
// When the writer is a narrow terminal, UUIDs dominate the row; size the id
// column so the numeric columns stay visible.
func idColumnWidth(w io.Writer) int {
	const full = 36 // UUID length

	f, ok := w.(*os.File)
	if !ok {
		return full
	}

	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return full
	}

	cols, _, err := term.GetSize(fd)
	if err != nil || cols >= 100 {
		return full
	}

	// Leave roughly 60 columns for the remaining fields.
	if budget := cols - 60; budget < full {
		if budget < 8 {
			return 8
		}
		return budget
	}

	return full
}

// truncateID shortens a session id to fit the column budget.
func truncateID(id string, width int) string {
	if len(id) <= width {
		return id
	}
	if width <= 3 {
		return id[:width]
	}
	return id[:width-3] + "..."
}
