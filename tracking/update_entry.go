package tracking

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/tracking/model"
)

type UpdateEntryRequest struct {
	Description string `json:"description" validate:"required,max=500"`
}

//encore:api auth path=/v1/entries/:id method=PATCH
func (s *Service) UpdateEntry(ctx context.Context, id int64, req *UpdateEntryRequest) (*EntryResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid entry ID"}
	}
	actorID := currentActor()

	result, err := s.session.UpdateDescription(ctx, actorID, id, req.Description)
	if err != nil {
		rlog.Error("failed to update entry", "error", err, "id", id)
		return nil, err
	}

	s.publishEntryChange(model.ChangeUpdated, *result)

	return &EntryResponse{Entry: *result}, nil
}

// Validate implements validation for UpdateEntryRequest
func (r *UpdateEntryRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
