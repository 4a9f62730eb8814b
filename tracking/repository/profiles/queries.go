package profiles

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

type Querier interface {
	GetProfile(ctx context.Context, actorID string) (RateProfile, error)
	UpsertProfile(ctx context.Context, arg UpsertProfileParams) (RateProfile, error)
}

var _ Querier = (*Queries)(nil)

type RateProfile struct {
	ActorID         string
	BaseHourlyCents int64
	Tier            string
	ExpertiseCount  int32
	LanguageCount   int32
	TaxRate         pgtype.Numeric
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

const profileColumns = `actor_id, base_hourly_cents, tier, expertise_count, language_count, tax_rate, created_at, updated_at`

func scanProfile(row interface{ Scan(dest ...interface{}) error }) (RateProfile, error) {
	var p RateProfile
	err := row.Scan(
		&p.ActorID,
		&p.BaseHourlyCents,
		&p.Tier,
		&p.ExpertiseCount,
		&p.LanguageCount,
		&p.TaxRate,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

const getProfile = `
SELECT ` + profileColumns + `
FROM rate_profiles
WHERE actor_id = $1`

func (q *Queries) GetProfile(ctx context.Context, actorID string) (RateProfile, error) {
	return scanProfile(q.db.QueryRow(ctx, getProfile, actorID))
}

const upsertProfile = `
INSERT INTO rate_profiles (actor_id, base_hourly_cents, tier, expertise_count, language_count, tax_rate)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (actor_id) DO UPDATE
SET base_hourly_cents = EXCLUDED.base_hourly_cents,
    tier = EXCLUDED.tier,
    expertise_count = EXCLUDED.expertise_count,
    language_count = EXCLUDED.language_count,
    tax_rate = EXCLUDED.tax_rate,
    updated_at = now()
RETURNING ` + profileColumns

type UpsertProfileParams struct {
	ActorID         string
	BaseHourlyCents int64
	Tier            string
	ExpertiseCount  int32
	LanguageCount   int32
	TaxRate         pgtype.Numeric
}

func (q *Queries) UpsertProfile(ctx context.Context, arg UpsertProfileParams) (RateProfile, error) {
	row := q.db.QueryRow(ctx, upsertProfile,
		arg.ActorID,
		arg.BaseHourlyCents,
		arg.Tier,
		arg.ExpertiseCount,
		arg.LanguageCount,
		arg.TaxRate,
	)
	return scanProfile(row)
}
