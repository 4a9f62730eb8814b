package domain

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/tracking/repository/payments"
)

// CreateWithItems inserts a payment record and its line items in one
// transaction. Constraint violations (duplicate idempotency key, entry
// already billed) are returned unwrapped so callers can classify them.
func (sm *PaymentStateMachine) CreateWithItems(ctx context.Context, arg payments.CreatePaymentParams, items []payments.CreatePaymentItemParams) (*payments.Payment, error) {
	tx, err := sm.db.Begin(ctx)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to start transaction"}
	}
	defer tx.Rollback(ctx)

	txRepo := sm.paymentRepo.WithTx(tx)

	created, err := txRepo.CreatePayment(ctx, arg)
	if err != nil {
		return nil, err
	}

	for i := range items {
		items[i].PaymentID = created.ID
		if err := txRepo.CreatePaymentItem(ctx, items[i]); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to commit payment"}
	}
	return &created, nil
}
