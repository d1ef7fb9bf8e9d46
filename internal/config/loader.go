package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"depmanager/pkg/logging"
)

// LoadSpec reads and parses the specification file at path.
func LoadSpec(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		se := &SpecError{
			FilePath:  path,
			ErrorType: ErrorTypeIO,
			Message:   err.Error(),
			Err:       err,
		}
		if errors.Is(err, os.ErrNotExist) {
			se.Message = "file does not exist"
			se.Suggestions = []string{"Check the --file path", "Omit --file to resolve the built-in example"}
		}
		return nil, se
	}

	spec, err := ParseSpec(data)
	if err != nil {
		var se *SpecError
		if errors.As(err, &se) {
			se.FilePath = path
		}
		return nil, err
	}
	logging.Info("Config", "Loaded specification from %s (%d elements)", path, spec.Count())
	return spec, nil
}

// ParseSpec parses a specification from YAML data. Empty data yields an
// empty specification.
func ParseSpec(data []byte) (*Spec, error) {
	spec := NewSpec()
	if err := yaml.Unmarshal(data, spec); err != nil {
		var se *SpecError
		if errors.As(err, &se) {
			return nil, se
		}
		return nil, &SpecError{
			ErrorType:   ErrorTypeParse,
			Message:     fmt.Sprintf("malformed YAML: %v", err),
			LineNumber:  parseErrorLine(err),
			Suggestions: []string{"Validate the file with a YAML linter"},
			Err:         err,
		}
	}
	return spec, nil
}

// parseErrorLine extracts the line number from a yaml.v3 syntax error such as
// "yaml: line 3: did not find expected key".
func parseErrorLine(err error) int {
	var line int
	if _, scanErr := fmt.Sscanf(err.Error(), "yaml: line %d:", &line); scanErr != nil {
		return 0
	}
	return line
}
