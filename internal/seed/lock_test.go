//go:build unix

package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/tasklist/internal/flock"
)

// holdLock takes the write lock of path through a separate file handle.
func holdLock(t *testing.T, path string) *os.File {
	t.Helper()
	f, err := os.OpenFile(lockPath(path), os.O_CREATE|os.O_RDWR, 0o600) //#nosec G304 -- test temp dir
	require.NoError(t, err)
	require.NoError(t, flock.Exclusive(f.Fd()))
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestSave_WaitsForLock(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tasks.yaml")
	held := holdLock(t, path)

	go func() {
		time.Sleep(100 * time.Millisecond)
		_ = flock.Unlock(held.Fd())
	}()

	require.NoError(t, Save(context.Background(), path, Sample()))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Sample(), got)
}

func TestSave_LockRespectsContext(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tasks.yaml")
	holdLock(t, path)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := Save(ctx, path, Sample())
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, Exists(path))
}

func TestSave_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "tasks.yaml")
	require.ErrorIs(t, Save(ctx, path, Sample()), context.Canceled)
	assert.False(t, Exists(path))
}
