package payments

import (
	"context"
)

type Querier interface {
	CreatePayment(ctx context.Context, arg CreatePaymentParams) (Payment, error)
	CreatePaymentItem(ctx context.Context, arg CreatePaymentItemParams) error
	GetPayment(ctx context.Context, id int64) (Payment, error)
	GetPaymentForUpdate(ctx context.Context, id int64) (Payment, error)
	UpdatePaymentStatus(ctx context.Context, arg UpdatePaymentStatusParams) (Payment, error)
	DeletePaymentItems(ctx context.Context, paymentID int64) (int64, error)
	ListPaymentItems(ctx context.Context, paymentID int64) ([]PaymentItem, error)
	ListPayments(ctx context.Context, arg ListPaymentsParams) ([]Payment, error)
	CountPayments(ctx context.Context, arg CountPaymentsParams) (int64, error)
	MonthlyEarnings(ctx context.Context, arg MonthlyEarningsParams) ([]MonthlyEarningsRow, error)
	StatusCounts(ctx context.Context, payeeID string) ([]StatusCountsRow, error)
	EarningsTotals(ctx context.Context, payeeID string) (EarningsTotalsRow, error)
}

var _ Querier = (*Queries)(nil)
