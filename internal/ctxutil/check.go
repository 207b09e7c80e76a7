// Package ctxutil provides context helpers shared by the command handlers and the UI.
//
// Import rules:
//   - CAN import: std lib and zerolog
//   - MUST NOT import: internal packages
package ctxutil

import (
	"context"

	"github.com/rs/zerolog"
)

// Canceled returns the context error once ctx is done, nil otherwise.
// Call it at the entry of any operation that should not start after cancellation.
func Canceled(ctx context.Context) error {
	return ctx.Err()
}

// WithLogger returns a copy of ctx carrying logger, retrievable with Logger
// or zerolog.Ctx.
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// Logger returns the logger stored in ctx, or a disabled logger when none was attached.
func Logger(ctx context.Context) zerolog.Logger {
	l := zerolog.Ctx(ctx)
	if l == nil || l == zerolog.DefaultContextLogger {
		return zerolog.Nop()
	}
	return *l
}
