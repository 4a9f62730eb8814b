package tracking

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/tracking/model"
	"encore.app/tracking/workflow"
)

type ResumeSessionRequest struct {
	ScopeID int64 `json:"scope_id" validate:"required,min=1"`
}

//encore:api auth path=/v1/sessions/resume method=POST
func (s *Service) ResumeSession(ctx context.Context, req *ResumeSessionRequest) (*SessionResponse, error) {
	actorID := currentActor()

	result, err := s.session.Resume(ctx, actorID, req.ScopeID)
	if err != nil {
		rlog.Error("failed to resume session", "error", err, "scope_id", req.ScopeID)
		return nil, err
	}

	workflowID := sessionWorkflowID(result.ID)
	runAsync("resume session workflow", func(ctx context.Context) error {
		return s.temporal.SignalWorkflow(ctx, workflowID, "", workflow.ResumeSessionSignalName, workflow.ResumeSessionSignal{ResumedBy: actorID})
	})

	s.publishEntryChange(model.ChangeUpdated, *result)

	return &SessionResponse{Entry: *result}, nil
}

// Validate implements validation for ResumeSessionRequest
func (r *ResumeSessionRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
