package tracking

import (
	"context"
	"fmt"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"encore.app/tracking/model"
	"encore.app/tracking/workflow"
)

type StartSessionRequest struct {
	ScopeID     int64  `json:"scope_id" validate:"required,min=1"`
	Description string `json:"description" validate:"max=500"`
	Category    string `json:"category" validate:"required"`
}

type SessionResponse struct {
	Entry model.TimeEntry `json:"entry"`
}

// StartSession opens a new tracking session for the caller in the given
// scope. An open session in the same scope is stopped first, so starting is
// always a stop-then-start rather than an error.
//
//encore:api auth path=/v1/sessions/start method=POST
func (s *Service) StartSession(ctx context.Context, req *StartSessionRequest) (*SessionResponse, error) {
	actorID := currentActor()

	current, err := s.session.Current(ctx, actorID, req.ScopeID)
	if err != nil {
		rlog.Error("failed to check current session", "error", err, "scope_id", req.ScopeID)
		return nil, err
	}
	if current != nil {
		stopped, err := s.session.Stop(ctx, actorID, req.ScopeID)
		if err != nil {
			rlog.Error("failed to stop previous session", "error", err, "entry_id", current.ID)
			return nil, err
		}
		s.endSessionWorkflow(stopped.ID, "replaced")
		s.publishEntryChange(model.ChangeUpdated, *stopped)
	}

	result, err := s.session.Start(ctx, actorID, req.ScopeID, req.Description, model.TaskCategory(req.Category))
	if err != nil {
		rlog.Error("failed to start session", "error", err, "scope_id", req.ScopeID)
		return nil, err
	}

	if wfErr := s.startSessionWorkflow(ctx, result.ID); wfErr != nil {
		// The session row is authoritative; a workflow start failure only
		// degrades auto-persist and the max-duration cap.
		rlog.Error("workflow start issue", "entry_id", result.ID, "workflow_id", sessionWorkflowID(result.ID), "error", wfErr)
	}

	s.publishEntryChange(model.ChangeCreated, *result)

	return &SessionResponse{Entry: *result}, nil
}

// Validate implements validation for StartSessionRequest
func (r *StartSessionRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	if !model.TaskCategory(r.Category).Valid() {
		return &errs.Error{Code: errs.InvalidArgument, Message: "unknown task category"}
	}
	return nil
}

func sessionWorkflowID(entryID int64) string {
	return fmt.Sprintf("session-%d", entryID)
}

// startSessionWorkflow starts the Temporal workflow that drives auto-persist
// and the max-duration cap for one session.
func (s *Service) startSessionWorkflow(ctx context.Context, entryID int64) error {
	workflowID := sessionWorkflowID(entryID)

	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: taskQueue,
	}

	params := workflow.TrackingSessionParams{
		EntryID:         entryID,
		PersistInterval: workflow.DefaultPersistInterval,
		MaxDuration:     workflow.DefaultMaxDuration,
	}

	_, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.TrackingSession, params)
	if err != nil {
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("workflow already started", "entry_id", entryID, "workflow_id", workflowID)
			return nil
		}
		return fmt.Errorf("execute workflow %s: %w", workflowID, err)
	}
	return nil
}

// endSessionWorkflow signals the session workflow to finish, in the
// background so the API response never waits on Temporal.
func (s *Service) endSessionWorkflow(entryID int64, reason string) {
	workflowID := sessionWorkflowID(entryID)
	runAsync("stop session workflow", func(ctx context.Context) error {
		return s.temporal.SignalWorkflow(ctx, workflowID, "", workflow.StopSessionSignalName, workflow.StopSessionSignal{Reason: reason})
	})
}
