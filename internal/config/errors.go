package config

import (
	"fmt"
	"strings"
)

// Error types reported in SpecError.ErrorType.
const (
	ErrorTypeIO         = "io"
	ErrorTypeParse      = "parse"
	ErrorTypeValidation = "validation"
)

// SpecError represents a structured error that occurs while loading a
// specification file.
type SpecError struct {
	FilePath    string   `json:"filePath"`    // Path to the file that caused the error, empty for in-memory data
	ErrorType   string   `json:"errorType"`   // Type of error (io, parse, validation)
	Message     string   `json:"message"`     // Human-readable error message
	LineNumber  int      `json:"lineNumber"`  // Line number where the error occurred (if available)
	Suggestions []string `json:"suggestions"` // Actionable suggestions to fix the error
	Err         error    `json:"-"`           // Underlying cause, if any
}

// Error implements the error interface
func (se *SpecError) Error() string {
	var b strings.Builder
	if se.FilePath != "" {
		b.WriteString(se.FilePath)
		if se.LineNumber > 0 {
			fmt.Fprintf(&b, ":%d", se.LineNumber)
		}
		b.WriteString(": ")
	} else if se.LineNumber > 0 {
		fmt.Fprintf(&b, "line %d: ", se.LineNumber)
	}
	fmt.Fprintf(&b, "%s error: %s", se.ErrorType, se.Message)
	return b.String()
}

// Unwrap returns the underlying cause.
func (se *SpecError) Unwrap() error {
	return se.Err
}

// DetailedError returns a multi-line message including suggestions.
func (se *SpecError) DetailedError() string {
	parts := []string{se.Error()}
	if len(se.Suggestions) > 0 {
		parts = append(parts, "  Suggestions:")
		for _, suggestion := range se.Suggestions {
			parts = append(parts, fmt.Sprintf("    - %s", suggestion))
		}
	}
	return strings.Join(parts, "\n")
}

func newValidationError(line int, message string, suggestions ...string) *SpecError {
	return &SpecError{
		ErrorType:   ErrorTypeValidation,
		Message:     message,
		LineNumber:  line,
		Suggestions: suggestions,
	}
}
