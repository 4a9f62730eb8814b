package tracking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRequestPaymentRequest_Validation(t *testing.T) {
	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

	valid := RequestPaymentRequest{
		ScopeID:     42,
		PayerID:     "client-9",
		PeriodStart: day,
		PeriodEnd:   day.AddDate(0, 1, 0),
		EntryIDs:    []int64{1, 2},
	}

	testCases := []struct {
		name          string
		mutate        func(r *RequestPaymentRequest)
		expectedError string
	}{
		{
			name:   "valid_request",
			mutate: func(r *RequestPaymentRequest) {},
		},
		{
			name: "single_day_period",
			mutate: func(r *RequestPaymentRequest) {
				r.PeriodEnd = r.PeriodStart
			},
		},
		{
			name: "period_end_before_start",
			mutate: func(r *RequestPaymentRequest) {
				r.PeriodEnd = r.PeriodStart.AddDate(0, 0, -1)
			},
			expectedError: "period_end must not be before period_start",
		},
		{
			name: "missing_payer",
			mutate: func(r *RequestPaymentRequest) {
				r.PayerID = ""
			},
			expectedError: "required",
		},
		{
			name: "no_entries",
			mutate: func(r *RequestPaymentRequest) {
				r.EntryIDs = nil
			},
			expectedError: "required",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)

			err := req.Validate()

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
