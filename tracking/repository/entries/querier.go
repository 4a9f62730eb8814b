package entries

import (
	"context"
)

type Querier interface {
	CreateEntry(ctx context.Context, arg CreateEntryParams) (TimeEntry, error)
	GetEntry(ctx context.Context, id int64) (TimeEntry, error)
	GetOpenEntry(ctx context.Context, arg GetOpenEntryParams) (TimeEntry, error)
	ListOpenEntries(ctx context.Context, actorID string) ([]TimeEntry, error)
	UpdateEntryStatus(ctx context.Context, arg UpdateEntryStatusParams) (TimeEntry, error)
	UpdateEntryProgress(ctx context.Context, arg UpdateEntryProgressParams) (int64, error)
	CompleteEntry(ctx context.Context, arg CompleteEntryParams) (TimeEntry, error)
	UpdateEntryDescription(ctx context.Context, arg UpdateEntryDescriptionParams) (TimeEntry, error)
	DeleteEntry(ctx context.Context, arg DeleteEntryParams) (int64, error)
	ListEntries(ctx context.Context, arg ListEntriesParams) ([]TimeEntry, error)
	CountEntries(ctx context.Context, arg CountEntriesParams) (int64, error)
	ListEntriesByIDs(ctx context.Context, arg ListEntriesByIDsParams) ([]TimeEntry, error)
	ListEntriesBetween(ctx context.Context, arg ListEntriesBetweenParams) ([]TimeEntry, error)
	SumCompletedBetween(ctx context.Context, arg SumCompletedBetweenParams) (SumCompletedBetweenRow, error)
	StatsTotals(ctx context.Context, actorID string) (StatsTotalsRow, error)
}

var _ Querier = (*Queries)(nil)
