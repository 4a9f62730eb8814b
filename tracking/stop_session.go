package tracking

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/tracking/model"
)

type StopSessionRequest struct {
	ScopeID int64 `json:"scope_id" validate:"required,min=1"`
}

// StopSession completes the caller's open session in the scope. The final
// duration is recomputed from the wall clock, never taken from the last
// auto-persist tick.
//
//encore:api auth path=/v1/sessions/stop method=POST
func (s *Service) StopSession(ctx context.Context, req *StopSessionRequest) (*SessionResponse, error) {
	actorID := currentActor()

	result, err := s.session.Stop(ctx, actorID, req.ScopeID)
	if err != nil {
		rlog.Error("failed to stop session", "error", err, "scope_id", req.ScopeID)
		return nil, err
	}

	s.endSessionWorkflow(result.ID, "stopped")
	s.publishEntryChange(model.ChangeUpdated, *result)

	return &SessionResponse{Entry: *result}, nil
}

// Validate implements validation for StopSessionRequest
func (r *StopSessionRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
