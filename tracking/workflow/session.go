package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

const (
	// DefaultPersistInterval is how often an active session flushes its
	// running duration to the database.
	DefaultPersistInterval = 30 * time.Second

	// DefaultMaxDuration is the safety cap after which a session that was
	// never stopped is completed automatically.
	DefaultMaxDuration = 12 * time.Hour
)

// TrackingSessionParams contains parameters for starting the session workflow
type TrackingSessionParams struct {
	EntryID         int64         `json:"entry_id"`
	PersistInterval time.Duration `json:"persist_interval"`
	MaxDuration     time.Duration `json:"max_duration"`
}

// TrackingSession manages the lifecycle of one open time-tracking session:
// it periodically persists elapsed time while the session is active, goes
// quiet while paused, and force-completes the session when the maximum
// duration elapses without a stop.
func TrackingSession(ctx workflow.Context, params TrackingSessionParams) error {
	logger := workflow.GetLogger(ctx)

	if params.PersistInterval <= 0 {
		params.PersistInterval = DefaultPersistInterval
	}
	if params.MaxDuration <= 0 {
		params.MaxDuration = DefaultMaxDuration
	}

	logger.Info("Starting tracking session workflow",
		"entryID", params.EntryID,
		"persistInterval", params.PersistInterval,
		"maxDuration", params.MaxDuration)

	pauseCh := workflow.GetSignalChannel(ctx, PauseSessionSignalName)
	resumeCh := workflow.GetSignalChannel(ctx, ResumeSessionSignalName)
	stopCh := workflow.GetSignalChannel(ctx, StopSessionSignalName)

	maxTimer := workflow.NewTimer(ctx, params.MaxDuration)

	active := true
	sessionEnded := false

	for !sessionEnded {
		selector := workflow.NewSelector(ctx)

		selector.AddReceive(pauseCh, func(c workflow.ReceiveChannel, more bool) {
			var signal PauseSessionSignal
			c.Receive(ctx, &signal)
			logger.Info("Session paused, suspending auto-persist", "entryID", params.EntryID, "pausedBy", signal.PausedBy)
			active = false
		})

		selector.AddReceive(resumeCh, func(c workflow.ReceiveChannel, more bool) {
			var signal ResumeSessionSignal
			c.Receive(ctx, &signal)
			logger.Info("Session resumed, re-arming auto-persist", "entryID", params.EntryID, "resumedBy", signal.ResumedBy)
			active = true
		})

		selector.AddReceive(stopCh, func(c workflow.ReceiveChannel, more bool) {
			var signal StopSessionSignal
			c.Receive(ctx, &signal)
			logger.Info("Session stopped", "entryID", params.EntryID, "reason", signal.Reason, "stoppedBy", signal.StoppedBy)
			sessionEnded = true
		})

		selector.AddFuture(maxTimer, func(f workflow.Future) {
			logger.Warn("Maximum session duration reached, auto-stopping", "entryID", params.EntryID)

			err := autoStopSession(ctx, params.EntryID)
			if err != nil {
				logger.Error("Failed to auto-stop session", "entryID", params.EntryID, "error", err)
			} else {
				logger.Info("Successfully auto-stopped session", "entryID", params.EntryID)
			}
			sessionEnded = true
		})

		// The tick timer only runs while the session is active; a paused
		// session accrues no persisted time.
		if active {
			tick := workflow.NewTimer(ctx, params.PersistInterval)
			selector.AddFuture(tick, func(f workflow.Future) {
				err := persistSessionProgress(ctx, params.EntryID)
				if err != nil {
					// A failed flush must never kill the session; the next
					// tick or the final stop recomputes from wall clock.
					logger.Error("Failed to persist session progress", "entryID", params.EntryID, "error", err)
				}
			})
		}

		selector.Select(ctx)
	}

	logger.Info("Tracking session workflow completed", "entryID", params.EntryID)
	return nil
}

// persistSessionProgress executes the PersistSessionProgress activity
func persistSessionProgress(ctx workflow.Context, entryID int64) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    500 * time.Millisecond,
			BackoffCoefficient: 2.0,
			MaximumInterval:    5 * time.Second,
			MaximumAttempts:    3,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, PersistSessionProgressActivity, entryID).Get(ctx, nil)
}

// autoStopSession executes the AutoStopSession activity
func autoStopSession(ctx workflow.Context, entryID int64) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    15 * time.Second,
			MaximumAttempts:    6,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, AutoStopSessionActivity, entryID).Get(ctx, nil)
}
