package session

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/tracking/business/rate"
	"encore.app/tracking/model"
	"encore.app/tracking/repository/entries"
)

// Start opens a new active session for (actor, scope), snapshotting the
// actor's billable rate. Callers that want stop-then-start semantics do the
// stop explicitly first; if an open session slips through, the partial unique
// index rejects the insert.
func (b *business) Start(ctx context.Context, actorID string, scopeID int64, description string, category model.TaskCategory) (*model.TimeEntry, error) {
	profile, err := b.profileRepo.GetProfile(ctx, actorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.FailedPrecondition, Message: "actor has no rate profile"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load rate profile"}
	}

	perMinute := rate.PerMinuteCents(model.RateProfile{
		ActorID:         profile.ActorID,
		BaseHourlyCents: profile.BaseHourlyCents,
		Tier:            model.SeniorityTier(profile.Tier),
		ExpertiseCount:  int(profile.ExpertiseCount),
		LanguageCount:   int(profile.LanguageCount),
	})

	dbEntry, err := b.entryRepo.CreateEntry(ctx, entries.CreateEntryParams{
		ActorID:            actorID,
		ScopeID:            scopeID,
		Description:        pgtype.Text{String: description, Valid: description != ""},
		Category:           string(category),
		Status:             string(model.EntryStatusActive),
		StartedAt:          pgtype.Timestamptz{Time: b.now(), Valid: true},
		RatePerMinuteCents: perMinute,
	})
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return nil, &errs.Error{Code: errs.AlreadyExists, Message: "an open session already exists for this scope"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to create session"}
	}

	return convertDBEntryToModel(dbEntry), nil
}

// Current returns the open (active or paused) session for the scope, or nil.
func (b *business) Current(ctx context.Context, actorID string, scopeID int64) (*model.TimeEntry, error) {
	dbEntry, err := b.entryRepo.GetOpenEntry(ctx, entries.GetOpenEntryParams{ActorID: actorID, ScopeID: scopeID})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load current session"}
	}
	return convertDBEntryToModel(dbEntry), nil
}

func convertDBEntryToModel(dbEntry entries.TimeEntry) *model.TimeEntry {
	entry := &model.TimeEntry{
		ID:                 dbEntry.ID,
		ActorID:            dbEntry.ActorID,
		ScopeID:            dbEntry.ScopeID,
		Category:           model.TaskCategory(dbEntry.Category),
		Status:             model.EntryStatus(dbEntry.Status),
		StartedAt:          dbEntry.StartedAt.Time,
		DurationMinutes:    dbEntry.DurationMinutes,
		RatePerMinuteCents: dbEntry.RatePerMinuteCents,
		AmountCents:        dbEntry.AmountCents,
		CreatedAt:          dbEntry.CreatedAt.Time,
		UpdatedAt:          dbEntry.UpdatedAt.Time,
	}
	if dbEntry.Description.Valid {
		entry.Description = dbEntry.Description.String
	}
	if dbEntry.EndedAt.Valid {
		t := dbEntry.EndedAt.Time
		entry.EndedAt = &t
	}
	return entry
}
