package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ScanOptions configures the directory scanning behavior
type ScanOptions struct {
	// Glob is a doublestar pattern matched against each file's base name
	Glob string
	// Extensions is a list of file extensions to include (e.g., ".png", "exr")
	Extensions []string
}

// ScanResult contains the results of a directory scan
type ScanResult struct {
	// Files contains the absolute paths of all matched files
	Files []string
	// Errors contains any errors encountered during scanning
	Errors []error
}

// Names returns the base names of the matched files in Files order.
func (r *ScanResult) Names() []string {
	names := make([]string, len(r.Files))
	for i, f := range r.Files {
		names[i] = filepath.Base(f)
	}
	return names
}

// HasExtension reports whether name ends in one of exts, ignoring case. The
// leading dot is optional in exts. An empty list accepts every name.
func HasExtension(name string, exts []string) bool {
	if len(exts) == 0 {
		return true
	}
	ext := filepath.Ext(name)
	for _, want := range exts {
		if !strings.HasPrefix(want, ".") {
			want = "." + want
		}
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	return false
}

// ScanDirectory lists the files directly under dir that match the provided
// options. Subdirectories are not descended into.
func ScanDirectory(dir string, opts ScanOptions) (*ScanResult, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dir)
	}

	if opts.Glob != "" && !doublestar.ValidatePattern(opts.Glob) {
		return nil, fmt.Errorf("invalid glob %q: %w", opts.Glob, doublestar.ErrBadPattern)
	}

	result := &ScanResult{
		Files:  make([]string, 0),
		Errors: make([]error, 0),
	}

	err = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("error accessing %s: %w", path, err))
			return nil
		}

		if path == dir {
			return nil
		}

		if d.IsDir() {
			return filepath.SkipDir
		}

		filename := d.Name()
		if !HasExtension(filename, opts.Extensions) {
			return nil
		}

		if opts.Glob != "" {
			// The pattern was validated above, so Match cannot fail here.
			if ok, _ := doublestar.Match(opts.Glob, filename); !ok {
				return nil
			}
		}

		absPath, err := filepath.Abs(path)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("failed to resolve path %s: %w", path, err))
			return nil
		}

		result.Files = append(result.Files, absPath)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	sort.Strings(result.Files)

	return result, nil
}
