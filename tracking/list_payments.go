package tracking

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/tracking/business/payment"
	"encore.app/tracking/model"
)

type ListPaymentsRequest struct {
	ScopeID int64  `query:"scope_id"`
	Status  string `query:"status"`
	Limit   int    `query:"limit"`
	Offset  int    `query:"offset"`
}

type ListPaymentsResponse struct {
	Payments   []model.PaymentRecord `json:"payments"`
	TotalCount int64                 `json:"total_count"`
	Limit      int                   `json:"limit"`
	Offset     int                   `json:"offset"`
}

//encore:api auth path=/v1/payments method=GET
func (s *Service) ListPayments(ctx context.Context, req *ListPaymentsRequest) (*ListPaymentsResponse, error) {
	if req.Status != "" && !model.PaymentStatus(req.Status).Valid() {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "unknown payment status"}
	}
	payeeID := currentActor()

	list, totalCount, err := s.payments.ListPayments(ctx, payeeID, payment.ListFilter{
		ScopeID: req.ScopeID,
		Status:  model.PaymentStatus(req.Status),
		Limit:   int32(req.Limit),
		Offset:  int32(req.Offset),
	})
	if err != nil {
		rlog.Error("failed to list payments", "error", err)
		return nil, err
	}

	response := &ListPaymentsResponse{
		Payments:   make([]model.PaymentRecord, len(list)),
		TotalCount: totalCount,
		Limit:      req.Limit,
		Offset:     req.Offset,
	}
	for i, p := range list {
		response.Payments[i] = *p
	}
	return response, nil
}

//encore:api auth path=/v1/payments/:id method=GET
func (s *Service) GetPayment(ctx context.Context, id int64) (*PaymentResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid payment ID"}
	}
	payeeID := currentActor()

	result, err := s.payments.GetPayment(ctx, payeeID, id)
	if err != nil {
		rlog.Error("failed to get payment", "error", err, "id", id)
		return nil, err
	}
	return &PaymentResponse{Payment: *result}, nil
}
