package formatting

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// TableFormatter provides rich table output formatting
type TableFormatter struct {
	options Options
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(options Options) Formatter {
	return &TableFormatter{
		options: options,
	}
}

// Format renders one row per element: resolved ones with their position,
// unresolved ones at the end with a marker instead.
func (f *TableFormatter) Format(w io.Writer, r Result) error {
	if r.Total == 0 && len(r.Order) == 0 {
		_, err := fmt.Fprintln(w, f.colorize(text.FgYellow, "No elements found"))
		return err
	}

	t := f.createTable(w)
	t.AppendHeader(table.Row{
		f.colorize(text.FgHiCyan, "#"),
		f.colorize(text.FgHiCyan, "ELEMENT"),
		f.colorize(text.FgHiCyan, "STATUS"),
	})

	for i, e := range r.Order {
		t.AppendRow(table.Row{i + 1, e, f.colorize(text.FgGreen, "resolved")})
	}
	for _, e := range r.Unresolved {
		t.AppendRow(table.Row{"-", e, f.colorize(text.FgRed, "cycle")})
	}

	if !f.options.Quiet {
		t.AppendFooter(table.Row{"", fmt.Sprintf("%d/%d resolved", len(r.Order), r.Total), ""})
	}

	t.Render()
	return nil
}

// SetOptions updates the formatter options
func (f *TableFormatter) SetOptions(options Options) {
	f.options = options
}

// GetOptions returns the current formatter options
func (f *TableFormatter) GetOptions() Options {
	return f.options
}

// createTable creates a new table with standard styling
func (f *TableFormatter) createTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	return t
}

func (f *TableFormatter) colorize(c text.Color, s string) string {
	if !f.options.Color {
		return s
	}
	return c.Sprint(s)
}
