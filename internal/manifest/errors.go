package manifest

import (
	"errors"
	"fmt"
)

// Sentinel errors for the manifest package
var (
	// ErrFileNotFound indicates the manifest file does not exist
	ErrFileNotFound = errors.New("manifest file not found")

	// ErrInvalidFormat indicates the manifest file is not well-formed JSON or YAML
	ErrInvalidFormat = errors.New("manifest must be valid JSON or YAML")

	// ErrUnsupportedExt indicates an unsupported file extension
	ErrUnsupportedExt = errors.New("unsupported file extension (use .json, .yaml, or .yml)")
)

// ValidationError reports a schema or invariant violation at a specific
// field. Path uses dotted/bracketed notation (e.g. cases[2].roi.space) so a
// failure is locatable without a debugger. Read and parse failures are
// surfaced as plain errors, never as ValidationError.
type ValidationError struct {
	Path    string
	Message string
	Details any
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error at %s: %s", e.Path, e.Message)
}

// NewValidationError creates a new ValidationError
func NewValidationError(path, message string) *ValidationError {
	return &ValidationError{
		Path:    path,
		Message: message,
	}
}
