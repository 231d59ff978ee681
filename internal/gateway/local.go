package gateway

import (
	"context"

	"github.com/harrison/consolidator/internal/fileutil"
)

// LocalLister lists files from the local filesystem.
type LocalLister struct {
	// Extensions restricts listings to these file extensions (empty = all)
	Extensions []string
}

// NewLocalLister returns a lister backed by the local filesystem that keeps
// only names ending in one of exts, if any are given.
func NewLocalLister(exts ...string) *LocalLister {
	return &LocalLister{Extensions: exts}
}

// ListFiles returns the base names of regular files directly under dir that
// match glob.
func (l *LocalLister) ListFiles(ctx context.Context, dir, glob string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := fileutil.ScanDirectory(dir, fileutil.ScanOptions{Glob: glob, Extensions: l.Extensions})
	if err != nil {
		return nil, err
	}
	if len(result.Errors) > 0 {
		return nil, result.Errors[0]
	}

	return result.Names(), nil
}
