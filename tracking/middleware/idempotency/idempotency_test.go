package idempotency

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"encore.dev"
	"encore.dev/middleware"
)

func newMiddlewareRequest(ctx context.Context, path string, headers http.Header, payload interface{}) middleware.Request {
	encoreReq := &encore.Request{
		Path:    path,
		Headers: headers,
		Payload: payload,
	}
	return middleware.NewRequest(ctx, encoreReq)
}

func TestExtractKey(t *testing.T) {
	testCases := []struct {
		name          string
		headers       http.Header
		expectedKey   string
		expectedError string
	}{
		{
			name:        "valid_key",
			headers:     http.Header{HeaderName: []string{"pay-req-123"}},
			expectedKey: "pay-req-123",
		},
		{
			name:          "missing_header",
			headers:       http.Header{},
			expectedError: "X-Idempotency-Key header is required",
		},
		{
			name:          "empty_header_value",
			headers:       http.Header{HeaderName: []string{""}},
			expectedError: "X-Idempotency-Key header is required",
		},
		{
			name:        "multiple_values_takes_first",
			headers:     http.Header{HeaderName: []string{"first-key", "second-key"}},
			expectedKey: "first-key",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := newMiddlewareRequest(context.Background(), "/test", tc.headers, nil)

			key, err := extractKey(req)

			if tc.expectedError != "" {
				assert.NotNil(t, err)
				if err != nil {
					assert.Contains(t, err.Error(), tc.expectedError)
				}
				assert.Empty(t, key)
			} else {
				assert.Nil(t, err)
				assert.Equal(t, tc.expectedKey, key)
			}
		})
	}
}

func TestRequestBodyHash(t *testing.T) {
	empty := newMiddlewareRequest(context.Background(), "/test", http.Header{}, nil)
	assert.Empty(t, requestBodyHash(empty))

	payload := map[string]interface{}{"scope_id": 42, "entry_ids": []int64{1, 2}}
	req := newMiddlewareRequest(context.Background(), "/test", http.Header{}, payload)

	first := requestBodyHash(req)
	assert.Len(t, first, 64)
	assert.Regexp(t, "^[a-f0-9]{64}$", first)
	assert.Equal(t, first, requestBodyHash(req), "hash must be deterministic")

	other := newMiddlewareRequest(context.Background(), "/test", http.Header{},
		map[string]interface{}{"scope_id": 43, "entry_ids": []int64{1, 2}})
	assert.NotEqual(t, first, requestBodyHash(other))
}

func TestIdempotencyMiddleware_MissingKey(t *testing.T) {
	req := newMiddlewareRequest(context.Background(), "/v1/payments", http.Header{}, map[string]interface{}{"scope_id": 1})

	nextCalled := false
	next := func(req middleware.Request) middleware.Response {
		nextCalled = true
		return middleware.Response{Payload: map[string]interface{}{"id": 1}}
	}

	response := IdempotencyMiddleware(req, next)

	assert.NotNil(t, response.Err)
	if response.Err != nil {
		assert.Contains(t, response.Err.Error(), "X-Idempotency-Key header is required")
	}
	assert.False(t, nextCalled)
	assert.Nil(t, response.Payload)
}
