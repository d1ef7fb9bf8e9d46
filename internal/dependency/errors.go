package dependency

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDependency is returned when an edge cannot be added to the graph.
	ErrInvalidDependency = errors.New("invalid dependency")

	// ErrEmptyIteration is returned by Order.Next when no element is ready.
	ErrEmptyIteration = errors.New("no more elements in dependency order")
)

// InvalidDependencyError describes a rejected edge. It unwraps to
// ErrInvalidDependency.
type InvalidDependencyError struct {
	// From is the element that was meant to depend on To.
	From any
	// To is the dependency target, nil when none was given.
	To any
	// Reason is a short human-readable explanation.
	Reason string
}

// Error implements the error interface.
func (e *InvalidDependencyError) Error() string {
	if e.To == nil {
		return fmt.Sprintf("%s: %s", ErrInvalidDependency, e.Reason)
	}
	return fmt.Sprintf("%s: %s (%v -> %v)", ErrInvalidDependency, e.Reason, e.From, e.To)
}

// Unwrap returns ErrInvalidDependency so callers can use errors.Is.
func (e *InvalidDependencyError) Unwrap() error {
	return ErrInvalidDependency
}

// IsCircular reports whether err is a rejected direct mutual dependency.
func IsCircular(err error) bool {
	var invalid *InvalidDependencyError
	return errors.As(err, &invalid) && invalid.Reason == reasonCircular
}

const (
	reasonCircular   = "circular dependency"
	reasonNilElement = "element must not be nil"
)
