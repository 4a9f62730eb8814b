package payments

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const paymentColumns = `id, scope_id, payer_id, payee_id, period_start, period_end, minutes_total, amount_cents, status, dispute_reason, status_changed_at, idempotency_key, created_at, updated_at`

func scanPayment(row interface{ Scan(dest ...interface{}) error }) (Payment, error) {
	var p Payment
	err := row.Scan(
		&p.ID,
		&p.ScopeID,
		&p.PayerID,
		&p.PayeeID,
		&p.PeriodStart,
		&p.PeriodEnd,
		&p.MinutesTotal,
		&p.AmountCents,
		&p.Status,
		&p.DisputeReason,
		&p.StatusChangedAt,
		&p.IdempotencyKey,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

const createPayment = `
INSERT INTO payments (scope_id, payer_id, payee_id, period_start, period_end, minutes_total, amount_cents, status, status_changed_at, idempotency_key)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), $9)
RETURNING ` + paymentColumns

type CreatePaymentParams struct {
	ScopeID        int64
	PayerID        string
	PayeeID        string
	PeriodStart    pgtype.Date
	PeriodEnd      pgtype.Date
	MinutesTotal   int64
	AmountCents    int64
	Status         string
	IdempotencyKey string
}

func (q *Queries) CreatePayment(ctx context.Context, arg CreatePaymentParams) (Payment, error) {
	row := q.db.QueryRow(ctx, createPayment,
		arg.ScopeID,
		arg.PayerID,
		arg.PayeeID,
		arg.PeriodStart,
		arg.PeriodEnd,
		arg.MinutesTotal,
		arg.AmountCents,
		arg.Status,
		arg.IdempotencyKey,
	)
	return scanPayment(row)
}

const createPaymentItem = `
INSERT INTO payment_items (payment_id, entry_id, minutes, amount_cents)
VALUES ($1, $2, $3, $4)`

type CreatePaymentItemParams struct {
	PaymentID   int64
	EntryID     int64
	Minutes     int64
	AmountCents int64
}

func (q *Queries) CreatePaymentItem(ctx context.Context, arg CreatePaymentItemParams) error {
	_, err := q.db.Exec(ctx, createPaymentItem, arg.PaymentID, arg.EntryID, arg.Minutes, arg.AmountCents)
	return err
}

const getPayment = `
SELECT ` + paymentColumns + `
FROM payments
WHERE id = $1`

func (q *Queries) GetPayment(ctx context.Context, id int64) (Payment, error) {
	return scanPayment(q.db.QueryRow(ctx, getPayment, id))
}

const getPaymentForUpdate = `
SELECT ` + paymentColumns + `
FROM payments
WHERE id = $1
FOR UPDATE`

func (q *Queries) GetPaymentForUpdate(ctx context.Context, id int64) (Payment, error) {
	return scanPayment(q.db.QueryRow(ctx, getPaymentForUpdate, id))
}

const updatePaymentStatus = `
UPDATE payments
SET status = $2, dispute_reason = $3, status_changed_at = $4, updated_at = now()
WHERE id = $1
RETURNING ` + paymentColumns

type UpdatePaymentStatusParams struct {
	ID              int64
	Status          string
	DisputeReason   pgtype.Text
	StatusChangedAt pgtype.Timestamptz
}

func (q *Queries) UpdatePaymentStatus(ctx context.Context, arg UpdatePaymentStatusParams) (Payment, error) {
	row := q.db.QueryRow(ctx, updatePaymentStatus, arg.ID, arg.Status, arg.DisputeReason, arg.StatusChangedAt)
	return scanPayment(row)
}

const deletePaymentItems = `
DELETE FROM payment_items
WHERE payment_id = $1`

// DeletePaymentItems releases the payment's entries so a cancelled record no
// longer counts against the one-payment-per-entry constraint.
func (q *Queries) DeletePaymentItems(ctx context.Context, paymentID int64) (int64, error) {
	tag, err := q.db.Exec(ctx, deletePaymentItems, paymentID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listPaymentItems = `
SELECT payment_id, entry_id, minutes, amount_cents
FROM payment_items
WHERE payment_id = $1
ORDER BY entry_id`

func (q *Queries) ListPaymentItems(ctx context.Context, paymentID int64) ([]PaymentItem, error) {
	rows, err := q.db.Query(ctx, listPaymentItems, paymentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []PaymentItem
	for rows.Next() {
		var it PaymentItem
		if err := rows.Scan(&it.PaymentID, &it.EntryID, &it.Minutes, &it.AmountCents); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

const listPayments = `
SELECT ` + paymentColumns + `
FROM payments
WHERE payee_id = $1
  AND ($2::bigint = 0 OR scope_id = $2)
  AND ($3::text = '' OR status = $3)
ORDER BY created_at DESC
LIMIT $4 OFFSET $5`

type ListPaymentsParams struct {
	PayeeID string
	ScopeID int64
	Status  string
	Limit   int32
	Offset  int32
}

func (q *Queries) ListPayments(ctx context.Context, arg ListPaymentsParams) ([]Payment, error) {
	rows, err := q.db.Query(ctx, listPayments, arg.PayeeID, arg.ScopeID, arg.Status, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

const countPayments = `
SELECT count(*)
FROM payments
WHERE payee_id = $1
  AND ($2::bigint = 0 OR scope_id = $2)
  AND ($3::text = '' OR status = $3)`

type CountPaymentsParams struct {
	PayeeID string
	ScopeID int64
	Status  string
}

func (q *Queries) CountPayments(ctx context.Context, arg CountPaymentsParams) (int64, error) {
	var count int64
	err := q.db.QueryRow(ctx, countPayments, arg.PayeeID, arg.ScopeID, arg.Status).Scan(&count)
	return count, err
}

const monthlyEarnings = `
SELECT date_trunc('month', status_changed_at)::date AS month, COALESCE(sum(amount_cents), 0)::bigint AS amount_cents
FROM payments
WHERE payee_id = $1 AND status = 'paid' AND status_changed_at >= $2
GROUP BY 1
ORDER BY 1`

type MonthlyEarningsParams struct {
	PayeeID string
	Since   pgtype.Timestamptz
}

type MonthlyEarningsRow struct {
	Month       pgtype.Date
	AmountCents int64
}

func (q *Queries) MonthlyEarnings(ctx context.Context, arg MonthlyEarningsParams) ([]MonthlyEarningsRow, error) {
	rows, err := q.db.Query(ctx, monthlyEarnings, arg.PayeeID, arg.Since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []MonthlyEarningsRow
	for rows.Next() {
		var r MonthlyEarningsRow
		if err := rows.Scan(&r.Month, &r.AmountCents); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const statusCounts = `
SELECT status, count(*) AS count
FROM payments
WHERE payee_id = $1
GROUP BY status`

type StatusCountsRow struct {
	Status string
	Count  int64
}

func (q *Queries) StatusCounts(ctx context.Context, payeeID string) ([]StatusCountsRow, error) {
	rows, err := q.db.Query(ctx, statusCounts, payeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []StatusCountsRow
	for rows.Next() {
		var r StatusCountsRow
		if err := rows.Scan(&r.Status, &r.Count); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const earningsTotals = `
SELECT
  COALESCE(sum(amount_cents) FILTER (WHERE status = 'paid'), 0)::bigint AS paid_cents,
  COALESCE(sum(amount_cents) FILTER (WHERE status IN ('pending', 'validated', 'processing')), 0)::bigint AS pending_cents
FROM payments
WHERE payee_id = $1`

type EarningsTotalsRow struct {
	PaidCents    int64
	PendingCents int64
}

func (q *Queries) EarningsTotals(ctx context.Context, payeeID string) (EarningsTotalsRow, error) {
	var r EarningsTotalsRow
	err := q.db.QueryRow(ctx, earningsTotals, payeeID).Scan(&r.PaidCents, &r.PendingCents)
	return r, err
}
