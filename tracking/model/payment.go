package model

import (
	"time"
)

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusValidated  PaymentStatus = "validated"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusPaid       PaymentStatus = "paid"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusDisputed   PaymentStatus = "disputed"
	PaymentStatusRefunded   PaymentStatus = "refunded"
	PaymentStatusCancelled  PaymentStatus = "cancelled"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusValidated, PaymentStatusProcessing,
		PaymentStatusPaid, PaymentStatusFailed, PaymentStatusDisputed,
		PaymentStatusRefunded, PaymentStatusCancelled:
		return true
	}
	return false
}

type PaymentRecord struct {
	ID              int64         `json:"id"`
	ScopeID         int64         `json:"scope_id"`
	PayerID         string        `json:"payer_id"`
	PayeeID         string        `json:"payee_id"`
	PeriodStart     time.Time     `json:"period_start"`
	PeriodEnd       time.Time     `json:"period_end"`
	MinutesTotal    int64         `json:"minutes_total"`
	AmountCents     int64         `json:"amount_cents"`
	Status          PaymentStatus `json:"status"`
	DisputeReason   *string       `json:"dispute_reason,omitempty"`
	StatusChangedAt time.Time     `json:"status_changed_at"`
	IdempotencyKey  string        `json:"idempotency_key"`
	Items           []PaymentItem `json:"items,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// PaymentItem pins one completed time entry to a payment record. The minute
// and amount figures are snapshots taken at request time.
type PaymentItem struct {
	PaymentID   int64 `json:"payment_id"`
	EntryID     int64 `json:"entry_id"`
	Minutes     int64 `json:"minutes"`
	AmountCents int64 `json:"amount_cents"`
}
