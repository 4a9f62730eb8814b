package entries

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const entryColumns = `id, actor_id, scope_id, description, category, status, started_at, ended_at, duration_minutes, rate_per_minute_cents, amount_cents, created_at, updated_at`

func scanEntry(row interface{ Scan(dest ...interface{}) error }) (TimeEntry, error) {
	var e TimeEntry
	err := row.Scan(
		&e.ID,
		&e.ActorID,
		&e.ScopeID,
		&e.Description,
		&e.Category,
		&e.Status,
		&e.StartedAt,
		&e.EndedAt,
		&e.DurationMinutes,
		&e.RatePerMinuteCents,
		&e.AmountCents,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

const createEntry = `
INSERT INTO time_entries (actor_id, scope_id, description, category, status, started_at, duration_minutes, rate_per_minute_cents, amount_cents)
VALUES ($1, $2, $3, $4, $5, $6, 0, $7, 0)
RETURNING ` + entryColumns

type CreateEntryParams struct {
	ActorID            string
	ScopeID            int64
	Description        pgtype.Text
	Category           string
	Status             string
	StartedAt          pgtype.Timestamptz
	RatePerMinuteCents int64
}

func (q *Queries) CreateEntry(ctx context.Context, arg CreateEntryParams) (TimeEntry, error) {
	row := q.db.QueryRow(ctx, createEntry,
		arg.ActorID,
		arg.ScopeID,
		arg.Description,
		arg.Category,
		arg.Status,
		arg.StartedAt,
		arg.RatePerMinuteCents,
	)
	return scanEntry(row)
}

const getEntry = `
SELECT ` + entryColumns + `
FROM time_entries
WHERE id = $1`

func (q *Queries) GetEntry(ctx context.Context, id int64) (TimeEntry, error) {
	return scanEntry(q.db.QueryRow(ctx, getEntry, id))
}

const getOpenEntry = `
SELECT ` + entryColumns + `
FROM time_entries
WHERE actor_id = $1 AND scope_id = $2 AND status IN ('active', 'paused')`

type GetOpenEntryParams struct {
	ActorID string
	ScopeID int64
}

func (q *Queries) GetOpenEntry(ctx context.Context, arg GetOpenEntryParams) (TimeEntry, error) {
	return scanEntry(q.db.QueryRow(ctx, getOpenEntry, arg.ActorID, arg.ScopeID))
}

const listOpenEntries = `
SELECT ` + entryColumns + `
FROM time_entries
WHERE actor_id = $1 AND status IN ('active', 'paused')
ORDER BY started_at DESC`

func (q *Queries) ListOpenEntries(ctx context.Context, actorID string) ([]TimeEntry, error) {
	rows, err := q.db.Query(ctx, listOpenEntries, actorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []TimeEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

const updateEntryStatus = `
UPDATE time_entries
SET status = $2, updated_at = now()
WHERE id = $1
RETURNING ` + entryColumns

type UpdateEntryStatusParams struct {
	ID     int64
	Status string
}

func (q *Queries) UpdateEntryStatus(ctx context.Context, arg UpdateEntryStatusParams) (TimeEntry, error) {
	return scanEntry(q.db.QueryRow(ctx, updateEntryStatus, arg.ID, arg.Status))
}

const updateEntryProgress = `
UPDATE time_entries
SET duration_minutes = $2, updated_at = now()
WHERE id = $1 AND status = 'active'`

type UpdateEntryProgressParams struct {
	ID              int64
	DurationMinutes int64
}

// UpdateEntryProgress writes the provisional duration of a running session.
// The status guard makes a late write against a closed entry a no-op.
func (q *Queries) UpdateEntryProgress(ctx context.Context, arg UpdateEntryProgressParams) (int64, error) {
	tag, err := q.db.Exec(ctx, updateEntryProgress, arg.ID, arg.DurationMinutes)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const completeEntry = `
UPDATE time_entries
SET status = 'completed', ended_at = $2, duration_minutes = $3, amount_cents = $4, updated_at = now()
WHERE id = $1 AND status IN ('active', 'paused')
RETURNING ` + entryColumns

type CompleteEntryParams struct {
	ID              int64
	EndedAt         pgtype.Timestamptz
	DurationMinutes int64
	AmountCents     int64
}

func (q *Queries) CompleteEntry(ctx context.Context, arg CompleteEntryParams) (TimeEntry, error) {
	row := q.db.QueryRow(ctx, completeEntry, arg.ID, arg.EndedAt, arg.DurationMinutes, arg.AmountCents)
	return scanEntry(row)
}

const updateEntryDescription = `
UPDATE time_entries
SET description = $3, updated_at = now()
WHERE id = $1 AND actor_id = $2
RETURNING ` + entryColumns

type UpdateEntryDescriptionParams struct {
	ID          int64
	ActorID     string
	Description pgtype.Text
}

func (q *Queries) UpdateEntryDescription(ctx context.Context, arg UpdateEntryDescriptionParams) (TimeEntry, error) {
	row := q.db.QueryRow(ctx, updateEntryDescription, arg.ID, arg.ActorID, arg.Description)
	return scanEntry(row)
}

const deleteEntry = `
DELETE FROM time_entries
WHERE id = $1 AND actor_id = $2`

type DeleteEntryParams struct {
	ID      int64
	ActorID string
}

func (q *Queries) DeleteEntry(ctx context.Context, arg DeleteEntryParams) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteEntry, arg.ID, arg.ActorID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listEntries = `
SELECT ` + entryColumns + `
FROM time_entries
WHERE actor_id = $1
  AND ($2::bigint = 0 OR scope_id = $2)
  AND ($3::text = '' OR category = $3)
  AND ($4::text = '' OR status = $4)
  AND ($5::timestamptz IS NULL OR started_at >= $5)
  AND ($6::timestamptz IS NULL OR started_at < $6)
ORDER BY started_at DESC
LIMIT $7 OFFSET $8`

type ListEntriesParams struct {
	ActorID  string
	ScopeID  int64
	Category string
	Status   string
	From     pgtype.Timestamptz
	To       pgtype.Timestamptz
	Limit    int32
	Offset   int32
}

func (q *Queries) ListEntries(ctx context.Context, arg ListEntriesParams) ([]TimeEntry, error) {
	rows, err := q.db.Query(ctx, listEntries,
		arg.ActorID,
		arg.ScopeID,
		arg.Category,
		arg.Status,
		arg.From,
		arg.To,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []TimeEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

const countEntries = `
SELECT count(*)
FROM time_entries
WHERE actor_id = $1
  AND ($2::bigint = 0 OR scope_id = $2)
  AND ($3::text = '' OR category = $3)
  AND ($4::text = '' OR status = $4)
  AND ($5::timestamptz IS NULL OR started_at >= $5)
  AND ($6::timestamptz IS NULL OR started_at < $6)`

type CountEntriesParams struct {
	ActorID  string
	ScopeID  int64
	Category string
	Status   string
	From     pgtype.Timestamptz
	To       pgtype.Timestamptz
}

func (q *Queries) CountEntries(ctx context.Context, arg CountEntriesParams) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, countEntries,
		arg.ActorID,
		arg.ScopeID,
		arg.Category,
		arg.Status,
		arg.From,
		arg.To,
	).Scan(&count)
	return count, err
}

const listEntriesByIDs = `
SELECT ` + entryColumns + `
FROM time_entries
WHERE actor_id = $1 AND id = ANY($2::bigint[])
ORDER BY started_at`

type ListEntriesByIDsParams struct {
	ActorID string
	IDs     []int64
}

func (q *Queries) ListEntriesByIDs(ctx context.Context, arg ListEntriesByIDsParams) ([]TimeEntry, error) {
	rows, err := q.db.Query(ctx, listEntriesByIDs, arg.ActorID, arg.IDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []TimeEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

const listEntriesBetween = `
SELECT ` + entryColumns + `
FROM time_entries
WHERE actor_id = $1 AND started_at >= $2 AND started_at < $3
ORDER BY started_at DESC`

type ListEntriesBetweenParams struct {
	ActorID string
	From    pgtype.Timestamptz
	To      pgtype.Timestamptz
}

func (q *Queries) ListEntriesBetween(ctx context.Context, arg ListEntriesBetweenParams) ([]TimeEntry, error) {
	rows, err := q.db.Query(ctx, listEntriesBetween, arg.ActorID, arg.From, arg.To)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []TimeEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

const sumCompletedBetween = `
SELECT COALESCE(sum(duration_minutes), 0)::bigint AS minutes, COALESCE(sum(amount_cents), 0)::bigint AS amount_cents
FROM time_entries
WHERE actor_id = $1 AND status = 'completed' AND started_at >= $2 AND started_at < $3`

type SumCompletedBetweenParams struct {
	ActorID string
	From    pgtype.Timestamptz
	To      pgtype.Timestamptz
}

type SumCompletedBetweenRow struct {
	Minutes     int64
	AmountCents int64
}

func (q *Queries) SumCompletedBetween(ctx context.Context, arg SumCompletedBetweenParams) (SumCompletedBetweenRow, error) {
	var r SumCompletedBetweenRow
	err := q.db.QueryRow(ctx, sumCompletedBetween, arg.ActorID, arg.From, arg.To).Scan(&r.Minutes, &r.AmountCents)
	return r, err
}

const statsTotals = `
SELECT COALESCE(sum(duration_minutes), 0)::bigint AS total_minutes, count(DISTINCT scope_id) AS distinct_scopes
FROM time_entries
WHERE actor_id = $1 AND status = 'completed'`

type StatsTotalsRow struct {
	TotalMinutes   int64
	DistinctScopes int64
}

func (q *Queries) StatsTotals(ctx context.Context, actorID string) (StatsTotalsRow, error) {
	var r StatsTotalsRow
	err := q.db.QueryRow(ctx, statsTotals, actorID).Scan(&r.TotalMinutes, &r.DistinctScopes)
	return r, err
}
