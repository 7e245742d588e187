package display

import (
	"encoding/json"
	"io"

	"github.com/wpmlab/typing-monitor/pkg/store"
)

// jsonFormatter formats output as JSON.
type jsonFormatter struct {
	config Config
}

// FormatSummaries implements Formatter.FormatSummaries.
func (f *jsonFormatter) FormatSummaries(w io.Writer, summaries []store.Summary) error {
	return f.encode(w, summaries)
}

// FormatSummary implements Formatter.FormatSummary.
func (f *jsonFormatter) FormatSummary(w io.Writer, summary store.Summary) error {
	return f.encode(w, summary)
}

// FormatStat implements Formatter.FormatStat.
func (f *jsonFormatter) FormatStat(w io.Writer, stat store.SpeedStat) error {
	return f.encode(w, stat)
}

func (f *jsonFormatter) encode(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	if !f.config.Compact {
		encoder.SetIndent("", "  ")
	}

	return encoder.Encode(v)
}
