package safe

import (
	"context"
	"io"
	"log/slog"

	"github.com/secmon-lab/slack2jira/pkg/utils/logging"
)

// Close safely closes an io.Closer and logs any errors.
// It handles nil closers gracefully.
func Close(ctx context.Context, closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.From(ctx).Error("Failed to close", slog.Any("error", err))
	}
}

// Drain reads the rest of r so the underlying HTTP connection can be reused,
// then closes it.
func Drain(ctx context.Context, r io.ReadCloser) {
	if r == nil {
		return
	}
	if _, err := io.Copy(io.Discard, r); err != nil {
		logging.From(ctx).Debug("Failed to drain body", slog.Any("error", err))
	}
	Close(ctx, r)
}
