package session

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/tracking/model"
	"encore.app/tracking/repository/entries"
)

// UpdateDescription edits entry metadata. It is allowed for the open session
// and for any completed entry the actor owns.
func (b *business) UpdateDescription(ctx context.Context, actorID string, entryID int64, description string) (*model.TimeEntry, error) {
	dbEntry, err := b.entryRepo.UpdateEntryDescription(ctx, entries.UpdateEntryDescriptionParams{
		ID:          entryID,
		ActorID:     actorID,
		Description: pgtype.Text{String: description, Valid: description != ""},
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "entry not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to update description"}
	}
	return convertDBEntryToModel(dbEntry), nil
}

// Delete removes an entry. The caller supplies the confirmation decision
// explicitly; the engine never deletes implicitly.
func (b *business) Delete(ctx context.Context, actorID string, entryID int64, confirmed bool) (*model.TimeEntry, error) {
	if !confirmed {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "deletion requires confirmation"}
	}

	dbEntry, err := b.entryRepo.GetEntry(ctx, entryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "entry not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load entry"}
	}
	if dbEntry.ActorID != actorID {
		return nil, &errs.Error{Code: errs.NotFound, Message: "entry not found"}
	}

	affected, err := b.entryRepo.DeleteEntry(ctx, entries.DeleteEntryParams{ID: entryID, ActorID: actorID})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to delete entry"}
	}
	if affected == 0 {
		return nil, &errs.Error{Code: errs.NotFound, Message: "entry not found"}
	}
	return convertDBEntryToModel(dbEntry), nil
}

func (b *business) GetEntry(ctx context.Context, actorID string, entryID int64) (*model.TimeEntry, error) {
	dbEntry, err := b.entryRepo.GetEntry(ctx, entryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "entry not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load entry"}
	}
	if dbEntry.ActorID != actorID {
		return nil, &errs.Error{Code: errs.NotFound, Message: "entry not found"}
	}
	return convertDBEntryToModel(dbEntry), nil
}

func (b *business) ListEntries(ctx context.Context, actorID string, filter ListFilter) ([]*model.TimeEntry, int64, error) {
	limit := filter.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var from, to pgtype.Timestamptz
	if filter.From != nil {
		from = pgtype.Timestamptz{Time: *filter.From, Valid: true}
	}
	if filter.To != nil {
		to = pgtype.Timestamptz{Time: *filter.To, Valid: true}
	}

	rows, err := b.entryRepo.ListEntries(ctx, entries.ListEntriesParams{
		ActorID:  actorID,
		ScopeID:  filter.ScopeID,
		Category: string(filter.Category),
		Status:   string(filter.Status),
		From:     from,
		To:       to,
		Limit:    limit,
		Offset:   filter.Offset,
	})
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to list entries"}
	}

	total, err := b.entryRepo.CountEntries(ctx, entries.CountEntriesParams{
		ActorID:  actorID,
		ScopeID:  filter.ScopeID,
		Category: string(filter.Category),
		Status:   string(filter.Status),
		From:     from,
		To:       to,
	})
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to count entries"}
	}

	items := make([]*model.TimeEntry, 0, len(rows))
	for _, row := range rows {
		items = append(items, convertDBEntryToModel(row))
	}
	return items, total, nil
}

// Totals sums completed work in [from, to) and adds the live wall-clock
// duration of any open session started in the window.
func (b *business) Totals(ctx context.Context, actorID string, from, to time.Time) (*Totals, error) {
	sums, err := b.entryRepo.SumCompletedBetween(ctx, entries.SumCompletedBetweenParams{
		ActorID: actorID,
		From:    pgtype.Timestamptz{Time: from, Valid: true},
		To:      pgtype.Timestamptz{Time: to, Valid: true},
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to sum completed entries"}
	}

	totals := &Totals{Minutes: sums.Minutes, AmountCents: sums.AmountCents}

	open, err := b.entryRepo.ListOpenEntries(ctx, actorID)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list open sessions"}
	}
	now := b.now()
	for _, o := range open {
		started := o.StartedAt.Time
		if started.Before(from) || !started.Before(to) {
			continue
		}
		minutes := durationMinutes(started, now)
		totals.Minutes += minutes
		totals.AmountCents += minutes * o.RatePerMinuteCents
	}
	return totals, nil
}
