// Package filelock serializes writes to report files across processes and
// replaces their content atomically.
package filelock

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// ErrLockTimeout is returned when a lock could not be taken in time.
var ErrLockTimeout = errors.New("filelock: timed out waiting for lock")

// DefaultTimeout bounds how long LockAndWrite waits for another writer.
const DefaultTimeout = 10 * time.Second

// retryDelay is the polling interval while waiting for a held lock.
const retryDelay = 25 * time.Millisecond

// FileLock wraps a flock file lock for coordinating access to files.
type FileLock struct {
	flock *flock.Flock
	path  string
}

// NewFileLock creates a new file lock for the given path.
// The lock file will be created at the specified path.
func NewFileLock(path string) *FileLock {
	return &FileLock{
		flock: flock.New(path),
		path:  path,
	}
}

// LockWithTimeout polls for the lock until timeout elapses. It returns an
// error wrapping ErrLockTimeout when the lock stays held.
func (fl *FileLock) LockWithTimeout(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return fl.LockContext(ctx)
}

// LockContext polls for the lock until ctx is done.
func (fl *FileLock) LockContext(ctx context.Context) error {
	acquired, err := fl.flock.TryLockContext(ctx, retryDelay)
	if acquired {
		return nil
	}
	if err == nil || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %s", ErrLockTimeout, fl.path)
	}
	return fmt.Errorf("failed to acquire lock on %s: %w", fl.path, err)
}

// Unlock releases the lock.
func (fl *FileLock) Unlock() error {
	if err := fl.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", fl.path, err)
	}
	return nil
}

// AtomicWrite writes data to path through a temp file in the same directory
// and a rename, so readers never see a partial report. Missing parent
// directories are created. If the write fails the previous content survives.
func AtomicWrite(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	defer func() {
		if tempFile != nil {
			tempFile.Close()
			os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tempPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", path, err)
	}

	// Renamed into place; nothing left to clean up.
	tempFile = nil
	return nil
}

// LockAndWrite takes "<path>.lock", writes data atomically with mode 0644 and
// releases the lock. It waits at most timeout for a concurrent writer; a
// non-positive timeout uses DefaultTimeout.
func LockAndWrite(path string, data []byte, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	lock := NewFileLock(path + ".lock")
	if err := lock.LockWithTimeout(timeout); err != nil {
		return err
	}
	defer lock.Unlock()

	return AtomicWrite(path, data, 0644)
}
