package payment

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/tracking/model"
)

// Validate marks a pending payment ready for the processor. No money moves.
func (b *business) Validate(ctx context.Context, payeeID string, id int64) (*model.PaymentRecord, error) {
	return b.payeeTransition(ctx, payeeID, id, model.PaymentStatusValidated, nil)
}

// Cancel soft-cancels a payment that has not been paid and releases its
// entries for re-billing. Irreversible.
func (b *business) Cancel(ctx context.Context, payeeID string, id int64) (*model.PaymentRecord, error) {
	return b.payeeTransition(ctx, payeeID, id, model.PaymentStatusCancelled, nil)
}

// Dispute flags a payment; the reason is mandatory.
func (b *business) Dispute(ctx context.Context, payeeID string, id int64, reason string) (*model.PaymentRecord, error) {
	if reason == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "dispute requires a reason"}
	}
	return b.payeeTransition(ctx, payeeID, id, model.PaymentStatusDisputed, &reason)
}

// RecordProcessorStatus applies a transition reported by the external payment
// processor. The engine only records status and date; it never initiates
// money movement.
func (b *business) RecordProcessorStatus(ctx context.Context, id int64, status model.PaymentStatus) (*model.PaymentRecord, error) {
	switch status {
	case model.PaymentStatusProcessing, model.PaymentStatusPaid, model.PaymentStatusFailed, model.PaymentStatusRefunded:
	default:
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "status is not processor-driven"}
	}

	updated, err := b.stateMachine.Transition(ctx, id, status, nil)
	if err != nil {
		return nil, err
	}
	return convertDBPaymentToModel(*updated), nil
}

func (b *business) payeeTransition(ctx context.Context, payeeID string, id int64, to model.PaymentStatus, reason *string) (*model.PaymentRecord, error) {
	if _, err := b.requireOwned(ctx, payeeID, id); err != nil {
		return nil, err
	}

	updated, err := b.stateMachine.Transition(ctx, id, to, reason)
	if err != nil {
		return nil, err
	}
	return convertDBPaymentToModel(*updated), nil
}

func (b *business) requireOwned(ctx context.Context, payeeID string, id int64) (*model.PaymentRecord, error) {
	dbPayment, err := b.paymentRepo.GetPayment(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "payment not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load payment"}
	}
	if dbPayment.PayeeID != payeeID {
		return nil, &errs.Error{Code: errs.NotFound, Message: "payment not found"}
	}
	return convertDBPaymentToModel(dbPayment), nil
}

func (b *business) GetPayment(ctx context.Context, payeeID string, id int64) (*model.PaymentRecord, error) {
	payment, err := b.requireOwned(ctx, payeeID, id)
	if err != nil {
		return nil, err
	}

	items, err := b.paymentRepo.ListPaymentItems(ctx, id)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load payment items"}
	}
	for _, it := range items {
		payment.Items = append(payment.Items, model.PaymentItem{
			PaymentID:   it.PaymentID,
			EntryID:     it.EntryID,
			Minutes:     it.Minutes,
			AmountCents: it.AmountCents,
		})
	}
	return payment, nil
}
