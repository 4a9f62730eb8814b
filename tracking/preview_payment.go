package tracking

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/tracking/model"
)

type PreviewPaymentRequest struct {
	EntryIDs []int64 `json:"entry_ids" validate:"required,min=1,dive,min=1"`
}

type PreviewPaymentResponse struct {
	Breakdown model.Breakdown `json:"breakdown"`
}

// PreviewPayment computes what a payment over the given entries would come
// to, with tax and per-category shares, without creating anything.
//
//encore:api auth path=/v1/payments/preview method=POST
func (s *Service) PreviewPayment(ctx context.Context, req *PreviewPaymentRequest) (*PreviewPaymentResponse, error) {
	payeeID := currentActor()

	result, err := s.payments.Preview(ctx, payeeID, req.EntryIDs)
	if err != nil {
		rlog.Error("failed to preview payment", "error", err)
		return nil, err
	}
	return &PreviewPaymentResponse{Breakdown: *result}, nil
}

// Validate implements validation for PreviewPaymentRequest
func (r *PreviewPaymentRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
