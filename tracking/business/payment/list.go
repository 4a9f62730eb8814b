package payment

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/tracking/model"
	"encore.app/tracking/repository/payments"
)

func (b *business) ListPayments(ctx context.Context, payeeID string, filter ListFilter) ([]*model.PaymentRecord, int64, error) {
	limit := filter.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	rows, err := b.paymentRepo.ListPayments(ctx, payments.ListPaymentsParams{
		PayeeID: payeeID,
		ScopeID: filter.ScopeID,
		Status:  string(filter.Status),
		Limit:   limit,
		Offset:  filter.Offset,
	})
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to list payments"}
	}

	total, err := b.paymentRepo.CountPayments(ctx, payments.CountPaymentsParams{
		PayeeID: payeeID,
		ScopeID: filter.ScopeID,
		Status:  string(filter.Status),
	})
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to count payments"}
	}

	items := make([]*model.PaymentRecord, 0, len(rows))
	for _, row := range rows {
		items = append(items, convertDBPaymentToModel(row))
	}
	return items, total, nil
}
