// Package signal turns SIGINT and SIGTERM into context cancellation for tasklist.
//
// The root context of every command comes from a Handler, so an interrupt
// stops the interactive UI the same way pressing ctrl+c does.
//
// Import rules:
//   - CAN import: std lib only
//   - MUST NOT import: internal packages
package signal

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// ExitCodeInterrupted is the conventional exit status after SIGINT (128 + 2).
const ExitCodeInterrupted = 130

// Handler cancels its context when one of the watched signals arrives.
type Handler struct {
	ctx         context.Context //nolint:containedctx // handler owns the context lifecycle
	cancel      context.CancelFunc
	interrupted chan struct{}
	done        chan struct{}
	once        sync.Once
	stopOnce    sync.Once
	sigChan     chan os.Signal

	mu       sync.Mutex
	received os.Signal
}

// NewHandler starts listening for sigs, or SIGINT and SIGTERM when none are given.
// The first signal cancels Context and closes Interrupted; later ones are ignored.
//
//	h := signal.NewHandler(ctx)
//	defer h.Stop()
//	err := run(h.Context())
func NewHandler(parent context.Context, sigs ...os.Signal) *Handler {
	if len(sigs) == 0 {
		sigs = []os.Signal{syscall.SIGINT, syscall.SIGTERM}
	}

	ctx, cancel := context.WithCancel(parent)
	h := &Handler{
		ctx:         ctx,
		cancel:      cancel,
		interrupted: make(chan struct{}),
		done:        make(chan struct{}),
		// Buffered so signal.Notify never drops a signal while we are busy.
		sigChan: make(chan os.Signal, 1),
	}

	signal.Notify(h.sigChan, sigs...)
	go h.listen()

	return h
}

// Context returns the context canceled on the first signal or on Stop.
func (h *Handler) Context() context.Context {
	return h.ctx
}

// Interrupted returns a channel closed when a signal was received.
// It stays open when the context ends for any other reason.
func (h *Handler) Interrupted() <-chan struct{} {
	return h.interrupted
}

// Received returns the first signal seen, or nil.
func (h *Handler) Received() os.Signal {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.received
}

// ExitCode returns ExitCodeInterrupted after a signal, otherwise fallback.
func (h *Handler) ExitCode(fallback int) int {
	select {
	case <-h.interrupted:
		return ExitCodeInterrupted
	default:
		return fallback
	}
}

// Stop unregisters the handler and cancels its context. Safe to call more than once.
func (h *Handler) Stop() {
	h.stopOnce.Do(func() {
		signal.Stop(h.sigChan)
		close(h.done)
		h.cancel()
	})
}

func (h *Handler) handleSignal(sig os.Signal) {
	h.once.Do(func() {
		h.mu.Lock()
		h.received = sig
		h.mu.Unlock()

		h.cancel()
		close(h.interrupted)
	})
}

func (h *Handler) listen() {
	for {
		select {
		case <-h.ctx.Done():
			return
		case <-h.done:
			return
		case sig := <-h.sigChan:
			h.handleSignal(sig)
		}
	}
}
