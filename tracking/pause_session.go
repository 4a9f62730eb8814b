package tracking

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/tracking/model"
	"encore.app/tracking/workflow"
)

type PauseSessionRequest struct {
	ScopeID int64 `json:"scope_id" validate:"required,min=1"`
}

//encore:api auth path=/v1/sessions/pause method=POST
func (s *Service) PauseSession(ctx context.Context, req *PauseSessionRequest) (*SessionResponse, error) {
	actorID := currentActor()

	result, err := s.session.Pause(ctx, actorID, req.ScopeID)
	if err != nil {
		rlog.Error("failed to pause session", "error", err, "scope_id", req.ScopeID)
		return nil, err
	}

	workflowID := sessionWorkflowID(result.ID)
	runAsync("pause session workflow", func(ctx context.Context) error {
		return s.temporal.SignalWorkflow(ctx, workflowID, "", workflow.PauseSessionSignalName, workflow.PauseSessionSignal{PausedBy: actorID})
	})

	s.publishEntryChange(model.ChangeUpdated, *result)

	return &SessionResponse{Entry: *result}, nil
}

// Validate implements validation for PauseSessionRequest
func (r *PauseSessionRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
