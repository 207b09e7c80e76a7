package signal

import (
	"context"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_Signal_CancelsContext(t *testing.T) {
	h := NewHandler(context.Background())
	defer h.Stop()

	h.handleSignal(syscall.SIGINT)

	require.Error(t, h.Context().Err())
	assert.Equal(t, context.Canceled, h.Context().Err())
}

func TestHandler_Signal_ClosesInterrupted(t *testing.T) {
	h := NewHandler(context.Background())
	defer h.Stop()

	h.handleSignal(syscall.SIGTERM)

	select {
	case <-h.Interrupted():
	default:
		t.Fatal("interrupted channel should be closed after a signal")
	}
	assert.Equal(t, syscall.SIGTERM, h.Received())
	assert.Equal(t, ExitCodeInterrupted, h.ExitCode(1))
}

func TestHandler_FirstSignalWins(t *testing.T) {
	h := NewHandler(context.Background())
	defer h.Stop()

	h.handleSignal(syscall.SIGINT)
	h.handleSignal(syscall.SIGTERM)

	assert.Equal(t, syscall.SIGINT, h.Received())
}

func TestHandler_NoSignal(t *testing.T) {
	h := NewHandler(context.Background())
	defer h.Stop()

	require.NoError(t, h.Context().Err())
	assert.Nil(t, h.Received())
	assert.Equal(t, 2, h.ExitCode(2))

	select {
	case <-h.Interrupted():
		t.Fatal("interrupted channel should be open initially")
	default:
	}
}

func TestHandler_Stop(t *testing.T) {
	h := NewHandler(context.Background())

	h.Stop()
	h.Stop()

	require.Error(t, h.Context().Err())
	assert.Equal(t, 0, h.ExitCode(0), "stop is not an interrupt")
}

func TestHandler_ParentCanceled(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	h := NewHandler(parent)
	defer h.Stop()

	cancel()

	require.Error(t, h.Context().Err())
	assert.Equal(t, 0, h.ExitCode(0))
}

func TestHandler_ListenDrainsRepeatedSignals(t *testing.T) {
	h := NewHandler(context.Background(), syscall.SIGUSR1)
	defer h.Stop()

	h.sigChan <- syscall.SIGUSR1

	require.Eventually(t, func() bool {
		return h.Context().Err() != nil
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, syscall.SIGUSR1, h.Received())
}
