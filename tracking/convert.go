package tracking

import (
	"encore.app/tracking/model"
	"encore.app/tracking/repository/entries"
	"encore.app/tracking/repository/payments"
)

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

func convertDBPaymentToModel(dbPayment payments.Payment) *model.PaymentRecord {
	payment := &model.PaymentRecord{
		ID:              dbPayment.ID,
		ScopeID:         dbPayment.ScopeID,
		PayerID:         dbPayment.PayerID,
		PayeeID:         dbPayment.PayeeID,
		PeriodStart:     dbPayment.PeriodStart.Time,
		PeriodEnd:       dbPayment.PeriodEnd.Time,
		MinutesTotal:    dbPayment.MinutesTotal,
		AmountCents:     dbPayment.AmountCents,
		Status:          model.PaymentStatus(dbPayment.Status),
		StatusChangedAt: dbPayment.StatusChangedAt.Time,
		IdempotencyKey:  dbPayment.IdempotencyKey,
		CreatedAt:       dbPayment.CreatedAt.Time,
		UpdatedAt:       dbPayment.UpdatedAt.Time,
	}
	if dbPayment.DisputeReason.Valid {
		payment.DisputeReason = &dbPayment.DisputeReason.String
	}
	return payment
}
