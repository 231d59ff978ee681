package pattern

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when inference is asked to consolidate no names.
	ErrEmptyInput = errors.New("pattern: empty input list")

	// ErrMalformedTemplate is returned when a template has no usable wildcard token.
	ErrMalformedTemplate = errors.New("pattern: malformed template")

	// ErrUnsupportedMultiWildcard is returned when a template holds more than one token.
	ErrUnsupportedMultiWildcard = errors.New("pattern: more than one wildcard token")
)

// TemplateError describes why a template string could not be parsed.
// It unwraps to ErrMalformedTemplate or ErrUnsupportedMultiWildcard.
type TemplateError struct {
	Template string
	Reason   string
	Err      error
}

func newTemplateError(template, reason string, err error) *TemplateError {
	return &TemplateError{Template: template, Reason: reason, Err: err}
}

// Error implements the error interface for TemplateError.
func (e *TemplateError) Error() string {
	return fmt.Sprintf("template %q: %s: %v", e.Template, e.Reason, e.Err)
}

// Unwrap returns the sentinel error for errors.Is support.
func (e *TemplateError) Unwrap() error {
	return e.Err
}
