package tracking

import (
	"context"
	"time"

	"encore.dev/beta/errs"

	"encore.app/tracking/model"
)

type CurrentSessionRequest struct {
	ScopeID int64 `query:"scope_id"`
}

type CurrentSessionResponse struct {
	Entry *model.TimeEntry `json:"entry,omitempty"`

	// LiveMinutes is the up-to-the-minute duration of an open session,
	// which may be ahead of the last persisted figure.
	LiveMinutes int64 `json:"live_minutes"`
}

//encore:api auth path=/v1/sessions/current method=GET
func (s *Service) CurrentSession(ctx context.Context, req *CurrentSessionRequest) (*CurrentSessionResponse, error) {
	if req.ScopeID <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid scope ID"}
	}
	actorID := currentActor()

	result, err := s.session.Current(ctx, actorID, req.ScopeID)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return &CurrentSessionResponse{}, nil
	}

	return &CurrentSessionResponse{
		Entry:       result,
		LiveMinutes: result.LiveDurationMinutes(time.Now()),
	}, nil
}
