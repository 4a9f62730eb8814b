package tracking

import (
	"context"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/tracking/business/payment"
	"encore.app/tracking/model"
)

type RequestPaymentRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	ScopeID     int64     `json:"scope_id" validate:"required,min=1"`
	PayerID     string    `json:"payer_id" validate:"required,max=100"`
	PeriodStart time.Time `json:"period_start" validate:"required"`
	PeriodEnd   time.Time `json:"period_end" validate:"required"`
	EntryIDs    []int64   `json:"entry_ids" validate:"required,min=1,dive,min=1"`
}

type PaymentResponse struct {
	Payment model.PaymentRecord `json:"payment"`
}

// RequestPayment opens a payment record covering the given completed entries.
// The record starts in pending status; an entry can back at most one payment.
//
//encore:api auth path=/v1/payments method=POST tag:idempotency
func (s *Service) RequestPayment(ctx context.Context, req *RequestPaymentRequest) (*PaymentResponse, error) {
	payeeID := currentActor()

	result, err := s.payments.RequestPayment(ctx, payeeID, payment.RequestParams{
		ScopeID:        req.ScopeID,
		PayerID:        req.PayerID,
		PeriodStart:    req.PeriodStart,
		PeriodEnd:      req.PeriodEnd,
		EntryIDs:       req.EntryIDs,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		rlog.Error("failed to request payment", "error", err, "scope_id", req.ScopeID)
		return nil, err
	}

	s.publishPaymentChange(model.ChangeCreated, *result)

	return &PaymentResponse{Payment: *result}, nil
}

// Validate implements validation for RequestPaymentRequest
func (r *RequestPaymentRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	if r.PeriodEnd.Before(r.PeriodStart) {
		return &errs.Error{Code: errs.InvalidArgument, Message: "period_end must not be before period_start"}
	}
	return nil
}
