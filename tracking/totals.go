package tracking

import (
	"context"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/tracking/model"
)

type TotalsRequest struct {
	// Window is "today" or "week".
	Window string `query:"window"`
}

type TotalsResponse struct {
	Window      string `json:"window"`
	Minutes     int64  `json:"minutes"`
	AmountCents int64  `json:"amount_cents"`
	Entries     int    `json:"entries"`
}

// Totals reports the caller's tracked time for today or the current week,
// served from the reconciled in-memory mirror. Open sessions contribute
// their live wall-clock duration.
//
//encore:api auth path=/v1/time/totals method=GET
func (s *Service) Totals(ctx context.Context, req *TotalsRequest) (*TotalsResponse, error) {
	if req.Window == "" {
		req.Window = "today"
	}
	if req.Window != "today" && req.Window != "week" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "window must be today or week"}
	}
	actorID := currentActor()

	m, err := s.mirrorFor(ctx, actorID)
	if err != nil {
		rlog.Error("failed to load mirror", "error", err, "actor_id", actorID)
		return nil, err
	}

	var windowEntries []model.TimeEntry
	if req.Window == "today" {
		windowEntries = m.Today()
	} else {
		windowEntries = m.Week()
	}

	now := time.Now()
	resp := &TotalsResponse{Window: req.Window, Entries: len(windowEntries)}
	for _, e := range windowEntries {
		if e.Status.Open() {
			minutes := e.LiveDurationMinutes(now)
			resp.Minutes += minutes
			resp.AmountCents += minutes * e.RatePerMinuteCents
			continue
		}
		if e.Status == model.EntryStatusCompleted {
			resp.Minutes += e.DurationMinutes
			resp.AmountCents += e.AmountCents
		}
	}

	return resp, nil
}
