package formatting

import (
	"encoding/json"
	"io"
)

// JSONFormatter provides structured JSON output formatting
type JSONFormatter struct {
	options Options
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(options Options) Formatter {
	return &JSONFormatter{
		options: options,
	}
}

// Format writes r as JSON, compact in quiet mode and indented otherwise.
func (f *JSONFormatter) Format(w io.Writer, r Result) error {
	if r.Order == nil {
		r.Order = []string{}
	}
	enc := json.NewEncoder(w)
	if !f.options.Quiet {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(r)
}

// SetOptions updates the formatter options
func (f *JSONFormatter) SetOptions(options Options) {
	f.options = options
}

// GetOptions returns the current formatter options
func (f *JSONFormatter) GetOptions() Options {
	return f.options
}
