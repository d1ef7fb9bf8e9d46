package formatting

import (
	"fmt"
	"io"
	"strings"
)

// ConsoleFormatter prints the order on a single line
type ConsoleFormatter struct {
	options Options
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter(options Options) Formatter {
	return &ConsoleFormatter{
		options: options,
	}
}

// Format writes the order followed by an unresolved line when needed.
func (f *ConsoleFormatter) Format(w io.Writer, r Result) error {
	if _, err := fmt.Fprintln(w, strings.Join(r.Order, " ")); err != nil {
		return err
	}
	if r.Complete() || f.options.Quiet {
		return nil
	}
	_, err := fmt.Fprintf(w, "unresolved: %s\n", strings.Join(r.Unresolved, " "))
	return err
}

// SetOptions updates the formatter options
func (f *ConsoleFormatter) SetOptions(options Options) {
	f.options = options
}

// GetOptions returns the current formatter options
func (f *ConsoleFormatter) GetOptions() Options {
	return f.options
}
