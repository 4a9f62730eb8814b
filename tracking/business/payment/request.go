package payment

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/tracking/business/calc"
	"encore.app/tracking/model"
	"encore.app/tracking/repository/entries"
	"encore.app/tracking/repository/payments"
)

// RequestPayment turns a set of completed entries into a pending payment
// record. Amounts are snapshots of each entry's rate at entry time; later
// rate changes never reprice an existing record.
func (b *business) RequestPayment(ctx context.Context, payeeID string, req RequestParams) (*model.PaymentRecord, error) {
	billable, err := b.loadBillableEntries(ctx, payeeID, req)
	if err != nil {
		return nil, err
	}

	var minutesTotal, amountTotal int64
	items := make([]payments.CreatePaymentItemParams, 0, len(billable))
	for _, e := range billable {
		amount := e.DurationMinutes * e.RatePerMinuteCents
		minutesTotal += e.DurationMinutes
		amountTotal += amount
		items = append(items, payments.CreatePaymentItemParams{
			EntryID:     e.ID,
			Minutes:     e.DurationMinutes,
			AmountCents: amount,
		})
	}

	created, err := b.stateMachine.CreateWithItems(ctx, payments.CreatePaymentParams{
		ScopeID:        req.ScopeID,
		PayerID:        req.PayerID,
		PayeeID:        payeeID,
		PeriodStart:    pgtype.Date{Time: req.PeriodStart, Valid: true},
		PeriodEnd:      pgtype.Date{Time: req.PeriodEnd, Valid: true},
		MinutesTotal:   minutesTotal,
		AmountCents:    amountTotal,
		Status:         string(model.PaymentStatusPending),
		IdempotencyKey: req.IdempotencyKey,
	}, items)
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			if e.ConstraintName == "payment_items_entry_once" {
				return nil, &errs.Error{Code: errs.FailedPrecondition, Message: "an entry is already part of another payment"}
			}
			return nil, &errs.Error{Code: errs.AlreadyExists, Message: "payment request is duplicated"}
		}
		var engineErr *errs.Error
		if errors.As(err, &engineErr) {
			return nil, err
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to create payment"}
	}

	result := convertDBPaymentToModel(*created)
	for _, it := range items {
		result.Items = append(result.Items, model.PaymentItem{
			PaymentID:   created.ID,
			EntryID:     it.EntryID,
			Minutes:     it.Minutes,
			AmountCents: it.AmountCents,
		})
	}
	return result, nil
}

// Preview computes the monetary breakdown the payee would be billing for,
// without writing anything.
func (b *business) Preview(ctx context.Context, payeeID string, entryIDs []int64) (*model.Breakdown, error) {
	rows, err := b.entryRepo.ListEntriesByIDs(ctx, entries.ListEntriesByIDsParams{ActorID: payeeID, IDs: entryIDs})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load entries"}
	}
	if len(rows) != len(entryIDs) {
		return nil, &errs.Error{Code: errs.NotFound, Message: "one or more entries do not exist"}
	}

	modelEntries := make([]model.TimeEntry, 0, len(rows))
	for _, row := range rows {
		if row.Status != string(model.EntryStatusCompleted) {
			return nil, &errs.Error{Code: errs.FailedPrecondition, Message: "only completed entries can be billed"}
		}
		modelEntries = append(modelEntries, *convertDBEntryToModel(row))
	}

	breakdown := calc.Calculate(modelEntries, b.taxRate(ctx, payeeID))
	return &breakdown, nil
}

func (b *business) loadBillableEntries(ctx context.Context, payeeID string, req RequestParams) ([]entries.TimeEntry, error) {
	if len(req.EntryIDs) == 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "a payment request needs at least one entry"}
	}

	rows, err := b.entryRepo.ListEntriesByIDs(ctx, entries.ListEntriesByIDsParams{ActorID: payeeID, IDs: req.EntryIDs})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load entries"}
	}
	if len(rows) != len(req.EntryIDs) {
		return nil, &errs.Error{Code: errs.NotFound, Message: "one or more entries do not exist"}
	}

	periodEnd := req.PeriodEnd.AddDate(0, 0, 1) // period end date is inclusive
	for _, row := range rows {
		if row.Status != string(model.EntryStatusCompleted) {
			return nil, &errs.Error{Code: errs.FailedPrecondition, Message: "only completed entries can be billed"}
		}
		if row.ScopeID != req.ScopeID {
			return nil, &errs.Error{Code: errs.InvalidArgument, Message: "entry does not belong to the requested scope"}
		}
		started := row.StartedAt.Time
		if started.Before(req.PeriodStart) || !started.Before(periodEnd) {
			return nil, &errs.Error{Code: errs.InvalidArgument, Message: "entry falls outside the billing period"}
		}
	}
	return rows, nil
}

// taxRate prefers the actor's region-configured rate and falls back to the
// default.
func (b *business) taxRate(ctx context.Context, payeeID string) float64 {
	profile, err := b.profileRepo.GetProfile(ctx, payeeID)
	if err != nil {
		return calc.DefaultTaxRate
	}
	f, err := profile.TaxRate.Float64Value()
	if err != nil || !f.Valid {
		return calc.DefaultTaxRate
	}
	return f.Float64
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
