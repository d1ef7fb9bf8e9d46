// Package formatting renders a resolved dependency order for the CLI.
//
// Four output formats are supported: console (the order on one line,
// space separated), table (a go-pretty table with positions), JSON and YAML.
package formatting

import (
	"fmt"
	"io"
	"strings"
)

// OutputFormat represents the desired output format
type OutputFormat string

const (
	FormatConsole OutputFormat = "console" // Space separated order
	FormatJSON    OutputFormat = "json"    // JSON output
	FormatYAML    OutputFormat = "yaml"    // YAML output
	FormatTable   OutputFormat = "table"   // Rich table output
)

// ParseOutputFormat validates a format name.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(s)); f {
	case FormatConsole, FormatJSON, FormatYAML, FormatTable:
		return f, nil
	case "":
		return FormatConsole, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (expected console, table, json or yaml)", s)
	}
}

// Options configures the formatter behavior
type Options struct {
	Format OutputFormat
	Quiet  bool // Suppress decorative elements and the unresolved notice
	Color  bool // Enable colored output
}

// Result is a resolved dependency order.
type Result struct {
	// Order lists the resolved elements, dependencies first.
	Order []string `json:"order" yaml:"order"`
	// Unresolved lists elements left out because of a dependency cycle.
	Unresolved []string `json:"unresolved,omitempty" yaml:"unresolved,omitempty"`
	// Total is the number of elements in the graph.
	Total int `json:"total" yaml:"total"`
}

// Complete reports whether every element was resolved.
func (r Result) Complete() bool {
	return len(r.Unresolved) == 0
}

// Formatter writes a Result in one output format.
type Formatter interface {
	Format(w io.Writer, r Result) error

	SetOptions(options Options)
	GetOptions() Options
}

// Factory creates formatters for different output formats
type Factory interface {
	CreateFormatter(options Options) Formatter
}

// NewFactory creates a new formatter factory
func NewFactory() Factory {
	return &factory{}
}

// factory implements the Factory interface
type factory struct{}

// CreateFormatter creates the appropriate formatter based on options
func (f *factory) CreateFormatter(options Options) Formatter {
	switch options.Format {
	case FormatJSON:
		return NewJSONFormatter(options)
	case FormatYAML:
		return NewYAMLFormatter(options)
	case FormatTable:
		return NewTableFormatter(options)
	case FormatConsole:
		fallthrough
	default:
		return NewConsoleFormatter(options)
	}
}
