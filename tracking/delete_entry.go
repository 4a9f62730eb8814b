package tracking

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/tracking/model"
)

type DeleteEntryRequest struct {
	// Confirmed must be set; deletion is destructive and never implicit.
	Confirmed bool `json:"confirmed"`
}

type DeleteEntryResponse struct {
	Entry model.TimeEntry `json:"entry"`
}

//encore:api auth path=/v1/entries/:id/delete method=POST
func (s *Service) DeleteEntry(ctx context.Context, id int64, req *DeleteEntryRequest) (*DeleteEntryResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid entry ID"}
	}
	actorID := currentActor()

	result, err := s.session.Delete(ctx, actorID, id, req.Confirmed)
	if err != nil {
		rlog.Error("failed to delete entry", "error", err, "id", id)
		return nil, err
	}

	// Deleting an open session leaves its workflow behind; end it so the
	// persist timer stops instead of ticking against a removed row.
	if result.Status.Open() {
		s.endSessionWorkflow(id, "deleted")
	}

	s.publishEntryChange(model.ChangeDeleted, *result)

	return &DeleteEntryResponse{Entry: *result}, nil
}
