package service

import (
	"context"
	"time"

	"clubnotes/internal/contextutil"
)

// RunTrashPurger purges sessions trashed longer than retention, once at start
// and then every interval, until ctx is done.
func RunTrashPurger(ctx context.Context, sessions SessionService, retention, interval time.Duration) {
	logger := contextutil.LoggerFromContext(ctx)

	purge := func() {
		if _, err := sessions.PurgeDeleted(ctx, retention); err != nil && ctx.Err() == nil {
			logger.ErrorContext(ctx, "failed to purge trash", "error", err)
		}
	}

	purge()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			purge()
		}
	}
}
