// Package seed reads and writes the YAML file that supplies a task list's
// starting tasks.
//
// A seed file looks like:
//
//	tasks:
//	  - id: todo-0
//	    name: Eat
//	    completed: true
//	  - id: todo-1
//	    name: Sleep
package seed

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mrz1836/tasklist/internal/domain"
	tlerrors "github.com/mrz1836/tasklist/internal/errors"
	"github.com/mrz1836/tasklist/internal/flock"
)

// LockTimeout is how long Save waits for another writer of the same file.
const LockTimeout = 2 * time.Second

// lockRetryInterval is the pause between lock attempts.
const lockRetryInterval = 50 * time.Millisecond

const (
	// filePerm is the permission for seed files.
	filePerm = 0o644
	// dirPerm is the permission for directories created for seed files.
	dirPerm = 0o755
	// maxSeedFileSize caps how much is read from a seed file (1MB).
	maxSeedFileSize = 1024 * 1024
)

// File is the on-disk layout of a seed file.
type File struct {
	Tasks []domain.Task `yaml:"tasks"`
}

// Sample returns the demo tasks written by `tasklist init`.
func Sample() []domain.Task {
	return []domain.Task{
		{ID: "todo-0", Name: "Eat", Completed: true},
		{ID: "todo-1", Name: "Sleep"},
		{ID: "todo-2", Name: "Repeat"},
	}
}

// Load reads the tasks stored at path.
// A missing file returns ErrSeedNotFound; unparseable content returns ErrSeedInvalid.
// Id uniqueness is checked by the store, not here.
func Load(path string) ([]domain.Task, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", tlerrors.ErrSeedNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat seed file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", tlerrors.ErrSeedInvalid, path)
	}
	if info.Size() > maxSeedFileSize {
		return nil, fmt.Errorf("%w: file too large (%d > %d bytes)",
			tlerrors.ErrSeedInvalid, info.Size(), maxSeedFileSize)
	}

	data, err := os.ReadFile(path) //#nosec G304 -- path is chosen by the user
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	return Parse(data)
}

// Parse decodes seed file content.
func Parse(data []byte) ([]domain.Task, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", tlerrors.ErrSeedInvalid, err)
	}
	if f.Tasks == nil {
		return []domain.Task{}, nil
	}
	return f.Tasks, nil
}

// Save writes tasks to path atomically, creating parent directories.
// Concurrent writers of the same path are serialized through a sibling lock file.
func Save(ctx context.Context, path string, tasks []domain.Task) error {
	if tasks == nil {
		tasks = []domain.Task{}
	}
	data, err := yaml.Marshal(File{Tasks: tasks})
	if err != nil {
		return fmt.Errorf("failed to marshal seed file: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("failed to create seed directory: %w", err)
		}
	}

	lock, err := acquireLock(ctx, path)
	if err != nil {
		return err
	}
	defer func() { _ = releaseLock(lock) }()

	return atomicWrite(path, data)
}

// lockPath returns the lock file guarding writes to path.
func lockPath(path string) string {
	return path + ".lock"
}

// acquireLock takes the write lock for path, retrying until LockTimeout.
// It respects context cancellation during the retry loop.
func acquireLock(ctx context.Context, path string) (*os.File, error) {
	f, err := os.OpenFile(lockPath(path), os.O_CREATE|os.O_RDWR, filePerm) //#nosec G302,G304 -- lock file next to the user's seed file
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}

	deadline := time.Now().Add(LockTimeout)
	for {
		if err := ctx.Err(); err != nil {
			_ = f.Close()
			return nil, err
		}

		if err := flock.Exclusive(f.Fd()); err == nil {
			return f, nil
		}

		if time.Now().After(deadline) {
			_ = f.Close()
			return nil, fmt.Errorf("%w: %s", tlerrors.ErrSeedLocked, path)
		}

		time.Sleep(lockRetryInterval)
	}
}

// releaseLock releases and closes a lock taken by acquireLock.
func releaseLock(f *os.File) error {
	if err := flock.Unlock(f.Fd()); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to release lock: %w", err)
	}
	return f.Close()
}

// Exists reports whether a file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// atomicWrite writes data to a file using write-then-rename.
func atomicWrite(path string, data []byte) error {
	tmpPath := path + ".tmp"
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm) //#nosec G304 -- path is chosen by the user
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write data: %w", err)
	}

	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to sync file: %w", err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename file: %w", err)
	}

	return nil
}
