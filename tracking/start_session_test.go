package tracking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.temporal.io/sdk/mocks"
	"go.uber.org/mock/gomock"

	sessionmock "encore.app/tracking/mocks/business/session_business"
	"encore.app/tracking/model"
)

// Run tests using `encore test`, which compiles the Encore app and then runs `go test`.
// It supports all the same flags that the `go test` command does.

// silenceAsync makes background side effects (event publishes, workflow
// signals) no-ops for the duration of a test.
func silenceAsync(t *testing.T) {
	prev := runAsync
	runAsync = func(op string, fn func(ctx context.Context) error) {}
	t.Cleanup(func() { runAsync = prev })
}

func TestStartSession(t *testing.T) {
	silenceAsync(t)

	started := time.Date(2026, time.March, 11, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name              string
		request           *StartSessionRequest
		currentEntry      *model.TimeEntry
		mockStartReturn   *model.TimeEntry
		mockStartError    error
		mockTemporalError error
		expectedError     string
	}{
		{
			name: "successful_start_with_workflow",
			request: &StartSessionRequest{
				ScopeID:     42,
				Description: "api integration",
				Category:    "development",
			},
			mockStartReturn: &model.TimeEntry{
				ID:                 7,
				ActorID:            "freelancer-1",
				ScopeID:            42,
				Status:             model.EntryStatusActive,
				StartedAt:          started,
				RatePerMinuteCents: 150,
			},
		},
		{
			name: "start_succeeds_even_if_workflow_fails",
			request: &StartSessionRequest{
				ScopeID:  42,
				Category: "development",
			},
			mockStartReturn: &model.TimeEntry{
				ID:      8,
				ActorID: "freelancer-1",
				ScopeID: 42,
				Status:  model.EntryStatusActive,
			},
			mockTemporalError: errors.New("temporal unavailable"),
		},
		{
			name: "open_session_is_stopped_first",
			request: &StartSessionRequest{
				ScopeID:  42,
				Category: "development",
			},
			currentEntry: &model.TimeEntry{
				ID:      6,
				ActorID: "freelancer-1",
				ScopeID: 42,
				Status:  model.EntryStatusActive,
			},
			mockStartReturn: &model.TimeEntry{
				ID:      9,
				ActorID: "freelancer-1",
				ScopeID: 42,
				Status:  model.EntryStatusActive,
			},
		},
		{
			name: "start_failure_propagates",
			request: &StartSessionRequest{
				ScopeID:  42,
				Category: "development",
			},
			mockStartError: errors.New("no rate profile"),
			expectedError:  "no rate profile",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockBusiness := sessionmock.NewMockBusiness(ctrl)
			mockTemporal := mocks.NewClient(t)

			service := &Service{
				session:  mockBusiness,
				temporal: mockTemporal,
			}

			mockBusiness.EXPECT().
				Current(gomock.Any(), gomock.Any(), tc.request.ScopeID).
				Return(tc.currentEntry, nil).
				Times(1)

			if tc.currentEntry != nil {
				stopped := *tc.currentEntry
				stopped.Status = model.EntryStatusCompleted
				mockBusiness.EXPECT().
					Stop(gomock.Any(), gomock.Any(), tc.request.ScopeID).
					Return(&stopped, nil).
					Times(1)
			}

			mockBusiness.EXPECT().
				Start(gomock.Any(), gomock.Any(), tc.request.ScopeID, tc.request.Description, model.TaskCategory(tc.request.Category)).
				Return(tc.mockStartReturn, tc.mockStartError).
				Times(1)

			if tc.mockStartError == nil {
				mockTemporal.On("ExecuteWorkflow",
					mock.Anything,
					mock.Anything,
					mock.Anything,
					mock.Anything,
				).Return(nil, tc.mockTemporalError)
			}

			response, err := service.StartSession(context.Background(), tc.request)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Nil(t, response)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, response)
				assert.Equal(t, tc.mockStartReturn.ID, response.Entry.ID)
				assert.Equal(t, model.EntryStatusActive, response.Entry.Status)
			}
		})
	}
}

func TestStartSessionRequest_Validation(t *testing.T) {
	testCases := []struct {
		name          string
		request       *StartSessionRequest
		expectedError string
	}{
		{
			name:    "valid_request",
			request: &StartSessionRequest{ScopeID: 42, Category: "development"},
		},
		{
			name:          "missing_scope",
			request:       &StartSessionRequest{Category: "development"},
			expectedError: "required",
		},
		{
			name:          "unknown_category",
			request:       &StartSessionRequest{ScopeID: 42, Category: "juggling"},
			expectedError: "unknown task category",
		},
		{
			name:          "missing_category",
			request:       &StartSessionRequest{ScopeID: 42},
			expectedError: "required",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.request.Validate()

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
