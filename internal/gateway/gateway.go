// Package gateway lists candidate file names from a directory, local or in
// Google Cloud Storage, and confirms which of them instantiate a template.
package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/harrison/consolidator/internal/pattern"
)

// Lister enumerates file names directly under dir whose base name matches
// glob. Implementations return base names sorted alphabetically and never
// descend into subdirectories.
type Lister interface {
	ListFiles(ctx context.Context, dir, glob string) ([]string, error)
}

// ScanError reports that the underlying listing failed. No partial result
// accompanies it.
type ScanError struct {
	Dir  string
	Glob string
	Err  error
}

// Error implements the error interface for ScanError.
func (e *ScanError) Error() string {
	return fmt.Sprintf("directory scan failed for %s (glob %q): %v", e.Dir, e.Glob, e.Err)
}

// Unwrap returns the listing error.
func (e *ScanError) Unwrap() error {
	return e.Err
}

// IsScanFailure reports whether err wraps a ScanError.
func IsScanFailure(err error) bool {
	var se *ScanError
	return errors.As(err, &se)
}

// ListTemplateInstances returns the names under dir that match template.
// The listing is narrowed with the template's glob first and then confirmed
// with the template matcher, so the result keeps the lister's sort order.
func ListTemplateInstances(ctx context.Context, lister Lister, dir, template string) ([]string, error) {
	t, err := pattern.ParseTemplate(template)
	if err != nil {
		return nil, err
	}

	glob := t.Glob()
	names, err := lister.ListFiles(ctx, dir, glob)
	if err != nil {
		return nil, &ScanError{Dir: dir, Glob: glob, Err: err}
	}

	return t.Filter(names), nil
}
