package tracking

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/tracking/model"
)

// ValidatePayment moves a pending payment to validated.
//
//encore:api auth path=/v1/payments/:id/validate method=POST
func (s *Service) ValidatePayment(ctx context.Context, id int64) (*PaymentResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid payment ID"}
	}
	payeeID := currentActor()

	result, err := s.payments.Validate(ctx, payeeID, id)
	if err != nil {
		rlog.Error("failed to validate payment", "error", err, "id", id)
		return nil, err
	}

	s.publishPaymentChange(model.ChangeUpdated, *result)
	return &PaymentResponse{Payment: *result}, nil
}

// CancelPayment cancels a payment that has not been paid out yet and
// releases its entries for a future payment request.
//
//encore:api auth path=/v1/payments/:id/cancel method=POST
func (s *Service) CancelPayment(ctx context.Context, id int64) (*PaymentResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid payment ID"}
	}
	payeeID := currentActor()

	result, err := s.payments.Cancel(ctx, payeeID, id)
	if err != nil {
		rlog.Error("failed to cancel payment", "error", err, "id", id)
		return nil, err
	}

	s.publishPaymentChange(model.ChangeUpdated, *result)
	return &PaymentResponse{Payment: *result}, nil
}

type DisputePaymentRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

//encore:api auth path=/v1/payments/:id/dispute method=POST
func (s *Service) DisputePayment(ctx context.Context, id int64, req *DisputePaymentRequest) (*PaymentResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid payment ID"}
	}
	payeeID := currentActor()

	result, err := s.payments.Dispute(ctx, payeeID, id, req.Reason)
	if err != nil {
		rlog.Error("failed to dispute payment", "error", err, "id", id)
		return nil, err
	}

	s.publishPaymentChange(model.ChangeUpdated, *result)
	return &PaymentResponse{Payment: *result}, nil
}

// Validate implements validation for DisputePaymentRequest
func (r *DisputePaymentRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
