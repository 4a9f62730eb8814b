package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"encore.app/tracking/model"
)

func TestCanTransition(t *testing.T) {
	testCases := []struct {
		name    string
		from    model.PaymentStatus
		to      model.PaymentStatus
		allowed bool
	}{
		{"pending_to_validated", model.PaymentStatusPending, model.PaymentStatusValidated, true},
		{"pending_to_cancelled", model.PaymentStatusPending, model.PaymentStatusCancelled, true},
		{"pending_to_disputed", model.PaymentStatusPending, model.PaymentStatusDisputed, true},
		{"pending_to_paid_skips_processing", model.PaymentStatusPending, model.PaymentStatusPaid, false},
		{"validated_to_processing", model.PaymentStatusValidated, model.PaymentStatusProcessing, true},
		{"processing_to_paid", model.PaymentStatusProcessing, model.PaymentStatusPaid, true},
		{"processing_to_failed", model.PaymentStatusProcessing, model.PaymentStatusFailed, true},
		{"processing_to_cancelled", model.PaymentStatusProcessing, model.PaymentStatusCancelled, true},
		{"paid_to_refunded", model.PaymentStatusPaid, model.PaymentStatusRefunded, true},
		{"paid_to_pending_rejected", model.PaymentStatusPaid, model.PaymentStatusPending, false},
		{"paid_to_cancelled_rejected", model.PaymentStatusPaid, model.PaymentStatusCancelled, false},
		{"failed_to_processing_retry", model.PaymentStatusFailed, model.PaymentStatusProcessing, true},
		{"cancelled_is_terminal", model.PaymentStatusCancelled, model.PaymentStatusPending, false},
		{"refunded_is_terminal", model.PaymentStatusRefunded, model.PaymentStatusProcessing, false},
		{"validated_to_pending_rejected", model.PaymentStatusValidated, model.PaymentStatusPending, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, CanTransition(tc.from, tc.to))
		})
	}
}

func TestTerminalStatusesHaveNoExits(t *testing.T) {
	for _, terminal := range []model.PaymentStatus{model.PaymentStatusCancelled, model.PaymentStatusRefunded} {
		for _, to := range []model.PaymentStatus{
			model.PaymentStatusPending, model.PaymentStatusValidated, model.PaymentStatusProcessing,
			model.PaymentStatusPaid, model.PaymentStatusFailed, model.PaymentStatusDisputed,
			model.PaymentStatusRefunded, model.PaymentStatusCancelled,
		} {
			assert.False(t, CanTransition(terminal, to), "%s -> %s should be rejected", terminal, to)
		}
	}
}
