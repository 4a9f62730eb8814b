// Package domain owns the payment status state machine. All transitions run
// inside a transaction holding a row lock on the payment, so a webhook and a
// payee action racing on the same record serialize at the database.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.dev/beta/errs"

	"encore.app/tracking/model"
	"encore.app/tracking/repository/payments"
)

// transitions is the closed set of legal status moves. Anything not listed
// is rejected with FailedPrecondition.
var transitions = map[model.PaymentStatus][]model.PaymentStatus{
	model.PaymentStatusPending:    {model.PaymentStatusValidated, model.PaymentStatusCancelled, model.PaymentStatusDisputed},
	model.PaymentStatusValidated:  {model.PaymentStatusProcessing, model.PaymentStatusCancelled, model.PaymentStatusDisputed},
	model.PaymentStatusProcessing: {model.PaymentStatusPaid, model.PaymentStatusFailed, model.PaymentStatusCancelled, model.PaymentStatusDisputed},
	model.PaymentStatusPaid:       {model.PaymentStatusRefunded, model.PaymentStatusDisputed},
	model.PaymentStatusFailed:     {model.PaymentStatusProcessing, model.PaymentStatusCancelled, model.PaymentStatusDisputed},
	model.PaymentStatusDisputed:   {model.PaymentStatusCancelled, model.PaymentStatusProcessing},
	model.PaymentStatusRefunded:   {},
	model.PaymentStatusCancelled:  {},
}

// CanTransition reports whether from -> to is a legal status move.
func CanTransition(from, to model.PaymentStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type StateMachine interface {
	// Transition moves the payment to the target status under a row lock,
	// validating the move against the transition table. disputeReason is
	// stored for disputes and cleared otherwise.
	Transition(ctx context.Context, id int64, to model.PaymentStatus, disputeReason *string) (*payments.Payment, error)

	// ExecuteWithLock locks the payment row and runs businessLogic within the
	// transaction. The callback receives the locked row and a tx-bound querier.
	ExecuteWithLock(ctx context.Context, id int64, businessLogic func(current payments.Payment, txRepo *payments.Queries) error) error

	// CreateWithItems inserts a payment and its line items atomically.
	CreateWithItems(ctx context.Context, arg payments.CreatePaymentParams, items []payments.CreatePaymentItemParams) (*payments.Payment, error)
}

type PaymentStateMachine struct {
	db          *pgxpool.Pool
	paymentRepo *payments.Queries
	now         func() time.Time
}

func NewPaymentStateMachine(db *pgxpool.Pool) *PaymentStateMachine {
	return &PaymentStateMachine{
		db:          db,
		paymentRepo: payments.New(db),
		now:         time.Now,
	}
}

func (sm *PaymentStateMachine) ExecuteWithLock(ctx context.Context, id int64, businessLogic func(current payments.Payment, txRepo *payments.Queries) error) error {
	tx, err := sm.db.Begin(ctx)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to start transaction"}
	}
	defer tx.Rollback(ctx)

	txRepo := sm.paymentRepo.WithTx(tx)

	current, err := txRepo.GetPaymentForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &errs.Error{Code: errs.NotFound, Message: "payment not found"}
		}
		return &errs.Error{Code: errs.Internal, Message: "failed to lock payment"}
	}

	if err := businessLogic(current, txRepo); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to commit payment transition"}
	}
	return nil
}

func (sm *PaymentStateMachine) Transition(ctx context.Context, id int64, to model.PaymentStatus, disputeReason *string) (*payments.Payment, error) {
	var updated payments.Payment

	err := sm.ExecuteWithLock(ctx, id, func(current payments.Payment, txRepo *payments.Queries) error {
		from := model.PaymentStatus(current.Status)
		if from == to {
			// Re-applying the current status is an echo, not a conflict.
			updated = current
			return nil
		}
		if !CanTransition(from, to) {
			return &errs.Error{
				Code:    errs.FailedPrecondition,
				Message: "payment cannot move from " + string(from) + " to " + string(to),
			}
		}

		reason := pgtype.Text{}
		if to == model.PaymentStatusDisputed {
			if disputeReason == nil || *disputeReason == "" {
				return &errs.Error{Code: errs.InvalidArgument, Message: "dispute requires a reason"}
			}
			reason = pgtype.Text{String: *disputeReason, Valid: true}
		}

		var err error
		updated, err = txRepo.UpdatePaymentStatus(ctx, payments.UpdatePaymentStatusParams{
			ID:              id,
			Status:          string(to),
			DisputeReason:   reason,
			StatusChangedAt: pgtype.Timestamptz{Time: sm.now(), Valid: true},
		})
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to update payment status"}
		}

		if to == model.PaymentStatusCancelled {
			// Release the entries so they can be billed again.
			if _, err := txRepo.DeletePaymentItems(ctx, id); err != nil {
				return &errs.Error{Code: errs.Internal, Message: "failed to release payment items"}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
