package workflow

import (
	"context"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"encore.app/tracking/business/session"
)

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	SessionBusiness session.Business
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(sessionBusiness session.Business) {
	activityDeps = &ActivityDependencies{
		SessionBusiness: sessionBusiness,
	}
}

// PersistSessionProgressActivity flushes the running duration and amount of
// an active session to the database. A session that was paused, stopped or
// deleted since the tick was scheduled is a no-op, not an error.
func PersistSessionProgressActivity(ctx context.Context, entryID int64) error {
	logger := activity.GetLogger(ctx)

	if activityDeps == nil || activityDeps.SessionBusiness == nil {
		logger.Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	err := activityDeps.SessionBusiness.PersistProgress(ctx, entryID)
	if err != nil {
		logger.Error("Failed to persist session progress", "entryID", entryID, "error", err)
		return err
	}
	return nil
}

// AutoStopSessionActivity completes a session that hit the maximum duration
// cap without being stopped by its owner.
func AutoStopSessionActivity(ctx context.Context, entryID int64) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing auto-stop session activity", "entryID", entryID)

	if activityDeps == nil || activityDeps.SessionBusiness == nil {
		logger.Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	_, err := activityDeps.SessionBusiness.StopEntry(ctx, entryID)
	if err != nil {
		logger.Error("Failed to auto-stop session", "entryID", entryID, "error", err)
		return err
	}

	logger.Info("Successfully auto-stopped session", "entryID", entryID)
	return nil
}
