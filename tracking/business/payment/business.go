package payment

import (
	"context"
	"time"

	"encore.app/tracking/domain"
	"encore.app/tracking/model"
	"encore.app/tracking/repository/entries"
	"encore.app/tracking/repository/payments"
	"encore.app/tracking/repository/profiles"
)

type Business interface {
	RequestPayment(ctx context.Context, payeeID string, req RequestParams) (*model.PaymentRecord, error)
	GetPayment(ctx context.Context, payeeID string, id int64) (*model.PaymentRecord, error)
	ListPayments(ctx context.Context, payeeID string, filter ListFilter) ([]*model.PaymentRecord, int64, error)
	Validate(ctx context.Context, payeeID string, id int64) (*model.PaymentRecord, error)
	Cancel(ctx context.Context, payeeID string, id int64) (*model.PaymentRecord, error)
	Dispute(ctx context.Context, payeeID string, id int64, reason string) (*model.PaymentRecord, error)
	RecordProcessorStatus(ctx context.Context, id int64, status model.PaymentStatus) (*model.PaymentRecord, error)
	Preview(ctx context.Context, payeeID string, entryIDs []int64) (*model.Breakdown, error)
}

type RequestParams struct {
	ScopeID        int64
	PayerID        string
	PeriodStart    time.Time
	PeriodEnd      time.Time
	EntryIDs       []int64
	IdempotencyKey string
}

type ListFilter struct {
	ScopeID int64
	Status  model.PaymentStatus
	Limit   int32
	Offset  int32
}

type business struct {
	paymentRepo  payments.Querier
	entryRepo    entries.Querier
	profileRepo  profiles.Querier
	stateMachine domain.StateMachine
	now          func() time.Time
}

func NewPaymentBusiness(
	paymentRepo payments.Querier,
	entryRepo entries.Querier,
	profileRepo profiles.Querier,
	stateMachine domain.StateMachine,
) Business {
	return &business{
		paymentRepo:  paymentRepo,
		entryRepo:    entryRepo,
		profileRepo:  profileRepo,
		stateMachine: stateMachine,
		now:          time.Now,
	}
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
