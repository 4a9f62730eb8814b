package tracking

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/tracking/model"
)

type ProcessorStatusRequest struct {
	PaymentID int64  `json:"payment_id" validate:"required,min=1"`
	Status    string `json:"status" validate:"required"`
	Reference string `json:"reference" validate:"max=100"`
}

type ProcessorStatusResponse struct {
	Payment model.PaymentRecord `json:"payment"`
}

// PaymentWebhook records a status update from the payment processor. Only
// processor-driven statuses are accepted; replays of the current status are
// acknowledged without effect.
//
//encore:api auth path=/v1/payments/webhook method=POST
func (s *Service) PaymentWebhook(ctx context.Context, req *ProcessorStatusRequest) (*ProcessorStatusResponse, error) {
	result, err := s.payments.RecordProcessorStatus(ctx, req.PaymentID, model.PaymentStatus(req.Status))
	if err != nil {
		rlog.Error("failed to record processor status", "error", err, "payment_id", req.PaymentID, "status", req.Status)
		return nil, err
	}

	s.publishPaymentChange(model.ChangeUpdated, *result)
	return &ProcessorStatusResponse{Payment: *result}, nil
}

// Validate implements validation for ProcessorStatusRequest
func (r *ProcessorStatusRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	if !model.PaymentStatus(r.Status).Valid() {
		return &errs.Error{Code: errs.InvalidArgument, Message: "unknown payment status"}
	}
	return nil
}
