package display

import (
	"fmt"
	"io"

	"github.com/wpmlab/typing-monitor/pkg/store"
)

// simpleFormatter formats output as plain one-line-per-item text.
type simpleFormatter struct {
	config Config
}

// FormatSummaries implements Formatter.FormatSummaries.
func (f *simpleFormatter) FormatSummaries(w io.Writer, summaries []store.Summary) error {
	if len(summaries) == 0 {
		_, err := fmt.Fprintln(w, "no sessions")
		return err
	}

	for _, s := range summaries {
		if err := f.FormatSummary(w, s); err != nil {
			return err
		}
	}
	return nil
}

// FormatSummary implements Formatter.FormatSummary.
func (f *simpleFormatter) FormatSummary(w io.Writer, summary store.Summary) error {
	_, err := fmt.Fprintf(w, "%s: %s samples, %s chars, %s, %.1f wpm\n",
		summary.SessionID,
		formatNumber(summary.SamplesCount),
		formatNumber(summary.TotalChars),
		formatDuration(summary.TotalDurationMS),
		summary.AvgWPM)
	return err
}

// FormatStat implements Formatter.FormatStat.
func (f *simpleFormatter) FormatStat(w io.Writer, stat store.SpeedStat) error {
	_, err := fmt.Fprintf(w, "%s: %.1f wpm\n", stat.SessionID, stat.WPM)
	return err
}
