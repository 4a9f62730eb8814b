package payments

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Payment struct {
	ID              int64
	ScopeID         int64
	PayerID         string
	PayeeID         string
	PeriodStart     pgtype.Date
	PeriodEnd       pgtype.Date
	MinutesTotal    int64
	AmountCents     int64
	Status          string
	DisputeReason   pgtype.Text
	StatusChangedAt pgtype.Timestamptz
	IdempotencyKey  string
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

type PaymentItem struct {
	PaymentID   int64
	EntryID     int64
	Minutes     int64
	AmountCents int64
}
