package entries

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type TimeEntry struct {
	ID                 int64
	ActorID            string
	ScopeID            int64
	Description        pgtype.Text
	Category           string
	Status             string
	StartedAt          pgtype.Timestamptz
	EndedAt            pgtype.Timestamptz
	DurationMinutes    int64
	RatePerMinuteCents int64
	AmountCents        int64
	CreatedAt          pgtype.Timestamptz
	UpdatedAt          pgtype.Timestamptz
}
