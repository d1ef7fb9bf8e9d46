package reconciler

import "time"

// ChangeOperation represents the type of change detected.
type ChangeOperation string

const (
	// OperationCreate indicates the file was created.
	OperationCreate ChangeOperation = "Create"

	// OperationUpdate indicates the file was modified.
	OperationUpdate ChangeOperation = "Update"

	// OperationDelete indicates the file was removed or renamed away.
	OperationDelete ChangeOperation = "Delete"
)

// ChangeEvent describes a debounced change to the watched file.
type ChangeEvent struct {
	// FilePath is the path of the watched file.
	FilePath string

	// Operation describes what kind of change occurred.
	Operation ChangeOperation

	// Timestamp is when the last raw event of the burst was seen.
	Timestamp time.Time
}
