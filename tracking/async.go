package tracking

import (
	"context"
	"time"

	"encore.dev/rlog"
)

// asyncTimeout bounds every background operation. Signals and publishes that
// outlive it are abandoned and logged.
const asyncTimeout = 5 * time.Second

// runAsync dispatches background work (workflow signals, change-event
// publishes). Tests swap it out to run callers synchronously or to drop the
// work entirely.
var runAsync = safeAsync

func safeAsync(op string, fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), asyncTimeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			rlog.Error("async operation failed", "op", op, "error", err)
			return
		}
		rlog.Debug("async operation succeeded", "op", op)
	}()
}
