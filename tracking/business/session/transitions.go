package session

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/tracking/model"
	"encore.app/tracking/repository/entries"
)

// Pause halts an active session. Wall-clock time keeps accruing against the
// start timestamp; only the auto-persist ticks stop.
func (b *business) Pause(ctx context.Context, actorID string, scopeID int64) (*model.TimeEntry, error) {
	open, err := b.requireOpen(ctx, actorID, scopeID)
	if err != nil {
		return nil, err
	}
	if open.Status != string(model.EntryStatusActive) {
		return nil, &errs.Error{Code: errs.FailedPrecondition, Message: "session is not active"}
	}

	dbEntry, err := b.entryRepo.UpdateEntryStatus(ctx, entries.UpdateEntryStatusParams{
		ID:     open.ID,
		Status: string(model.EntryStatusPaused),
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to pause session"}
	}
	return convertDBEntryToModel(dbEntry), nil
}

// Resume reactivates a paused session.
func (b *business) Resume(ctx context.Context, actorID string, scopeID int64) (*model.TimeEntry, error) {
	open, err := b.requireOpen(ctx, actorID, scopeID)
	if err != nil {
		return nil, err
	}
	if open.Status != string(model.EntryStatusPaused) {
		return nil, &errs.Error{Code: errs.FailedPrecondition, Message: "session is not paused"}
	}

	dbEntry, err := b.entryRepo.UpdateEntryStatus(ctx, entries.UpdateEntryStatusParams{
		ID:     open.ID,
		Status: string(model.EntryStatusActive),
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to resume session"}
	}
	return convertDBEntryToModel(dbEntry), nil
}

// Stop completes the open session. Duration is derived from the start
// timestamp, never from the last persisted tick. Paused wall-clock time is
// not subtracted; see the dashboard product notes before changing that.
func (b *business) Stop(ctx context.Context, actorID string, scopeID int64) (*model.TimeEntry, error) {
	open, err := b.requireOpen(ctx, actorID, scopeID)
	if err != nil {
		return nil, err
	}
	return b.complete(ctx, open)
}

// StopEntry completes a session by id, used by the workflow's max-duration
// auto-stop where no actor request is in flight.
func (b *business) StopEntry(ctx context.Context, entryID int64) (*model.TimeEntry, error) {
	dbEntry, err := b.entryRepo.GetEntry(ctx, entryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "entry not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load entry"}
	}
	if !model.EntryStatus(dbEntry.Status).Open() {
		return nil, &errs.Error{Code: errs.FailedPrecondition, Message: "session is not open"}
	}
	return b.complete(ctx, dbEntry)
}

func (b *business) complete(ctx context.Context, open entries.TimeEntry) (*model.TimeEntry, error) {
	now := b.now()
	minutes := durationMinutes(open.StartedAt.Time, now)

	dbEntry, err := b.entryRepo.CompleteEntry(ctx, entries.CompleteEntryParams{
		ID:              open.ID,
		EndedAt:         pgtype.Timestamptz{Time: now, Valid: true},
		DurationMinutes: minutes,
		AmountCents:     minutes * open.RatePerMinuteCents,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Raced with another stop; the slot is already clear.
			return nil, &errs.Error{Code: errs.FailedPrecondition, Message: "session already completed"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to complete session"}
	}
	return convertDBEntryToModel(dbEntry), nil
}

func (b *business) requireOpen(ctx context.Context, actorID string, scopeID int64) (entries.TimeEntry, error) {
	open, err := b.entryRepo.GetOpenEntry(ctx, entries.GetOpenEntryParams{ActorID: actorID, ScopeID: scopeID})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entries.TimeEntry{}, &errs.Error{Code: errs.FailedPrecondition, Message: "no open session for this scope"}
		}
		return entries.TimeEntry{}, &errs.Error{Code: errs.Internal, Message: "failed to load current session"}
	}
	return open, nil
}

// PersistProgress writes the provisional duration of a running session. It is
// best-effort: a session that paused, stopped or vanished since the tick was
// scheduled makes this a no-op rather than an error.
func (b *business) PersistProgress(ctx context.Context, entryID int64) error {
	dbEntry, err := b.entryRepo.GetEntry(ctx, entryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return &errs.Error{Code: errs.Internal, Message: "failed to load entry"}
	}
	if dbEntry.Status != string(model.EntryStatusActive) {
		return nil
	}

	minutes := durationMinutes(dbEntry.StartedAt.Time, b.now())
	if _, err := b.entryRepo.UpdateEntryProgress(ctx, entries.UpdateEntryProgressParams{
		ID:              entryID,
		DurationMinutes: minutes,
	}); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to persist session progress"}
	}
	return nil
}
