package tracking

import (
	"context"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/tracking/business/session"
	"encore.app/tracking/model"
)

type ListEntriesRequest struct {
	ScopeID  int64  `query:"scope_id"`
	Category string `query:"category"`
	Status   string `query:"status"`
	From     string `query:"from"`
	To       string `query:"to"`
	Limit    int    `query:"limit"`
	Offset   int    `query:"offset"`
}

type ListEntriesResponse struct {
	Entries    []model.TimeEntry `json:"entries"`
	TotalCount int64             `json:"total_count"`
	Limit      int               `json:"limit"`
	Offset     int               `json:"offset"`
}

//encore:api auth path=/v1/entries method=GET
func (s *Service) ListEntries(ctx context.Context, req *ListEntriesRequest) (*ListEntriesResponse, error) {
	actorID := currentActor()

	filter := session.ListFilter{
		ScopeID:  req.ScopeID,
		Category: model.TaskCategory(req.Category),
		Status:   model.EntryStatus(req.Status),
		Limit:    int32(req.Limit),
		Offset:   int32(req.Offset),
	}
	if req.Category != "" && !model.TaskCategory(req.Category).Valid() {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "unknown task category"}
	}
	if req.From != "" {
		from, err := time.Parse(time.RFC3339, req.From)
		if err != nil {
			return nil, &errs.Error{Code: errs.InvalidArgument, Message: "from must be RFC 3339"}
		}
		filter.From = &from
	}
	if req.To != "" {
		to, err := time.Parse(time.RFC3339, req.To)
		if err != nil {
			return nil, &errs.Error{Code: errs.InvalidArgument, Message: "to must be RFC 3339"}
		}
		filter.To = &to
	}

	list, totalCount, err := s.session.ListEntries(ctx, actorID, filter)
	if err != nil {
		rlog.Error("failed to list entries", "error", err)
		return nil, err
	}

	response := &ListEntriesResponse{
		Entries:    make([]model.TimeEntry, len(list)),
		TotalCount: totalCount,
		Limit:      req.Limit,
		Offset:     req.Offset,
	}
	for i, entry := range list {
		response.Entries[i] = *entry
	}
	return response, nil
}

type EntryResponse struct {
	Entry model.TimeEntry `json:"entry"`
}

//encore:api auth path=/v1/entries/:id method=GET
func (s *Service) GetEntry(ctx context.Context, id int64) (*EntryResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid entry ID"}
	}
	actorID := currentActor()

	result, err := s.session.GetEntry(ctx, actorID, id)
	if err != nil {
		rlog.Error("failed to get entry", "error", err, "id", id)
		return nil, err
	}
	return &EntryResponse{Entry: *result}, nil
}
