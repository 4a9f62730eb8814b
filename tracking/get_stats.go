package tracking

import (
	"context"

	"encore.dev/rlog"

	"encore.app/tracking/model"
)

type StatsRequest struct {
	// Refresh bypasses the cached snapshot and recomputes from the store.
	Refresh bool `query:"refresh"`
}

type StatsResponse struct {
	Stats model.Stats `json:"stats"`
}

// GetStats returns the caller's earnings dashboard snapshot. Snapshots are
// cached per actor and invalidated on entry and payment changes.
//
//encore:api auth path=/v1/stats method=GET
func (s *Service) GetStats(ctx context.Context, req *StatsRequest) (*StatsResponse, error) {
	actorID := currentActor()

	if req.Refresh {
		s.stats.Invalidate(actorID)
	}

	result, err := s.stats.Snapshot(ctx, actorID)
	if err != nil {
		rlog.Error("failed to compute stats", "error", err)
		return nil, err
	}
	return &StatsResponse{Stats: *result}, nil
}

type ForecastRequest struct {
	Months int `query:"months"`
}

type ForecastResponse struct {
	Forecast model.Forecast `json:"forecast"`
}

//encore:api auth path=/v1/stats/forecast method=GET
func (s *Service) GetForecast(ctx context.Context, req *ForecastRequest) (*ForecastResponse, error) {
	if req.Months == 0 {
		req.Months = 3
	}
	actorID := currentActor()

	result, err := s.stats.Forecast(ctx, actorID, req.Months)
	if err != nil {
		rlog.Error("failed to compute forecast", "error", err)
		return nil, err
	}
	return &ForecastResponse{Forecast: *result}, nil
}

type MovingAverageRequest struct {
	Periods int `query:"periods"`
}

type MovingAverageResponse struct {
	Points []model.MonthlyEarnings `json:"points"`
}

//encore:api auth path=/v1/stats/moving-average method=GET
func (s *Service) GetMovingAverage(ctx context.Context, req *MovingAverageRequest) (*MovingAverageResponse, error) {
	if req.Periods == 0 {
		req.Periods = 3
	}
	actorID := currentActor()

	result, err := s.stats.MovingAverage(ctx, actorID, req.Periods)
	if err != nil {
		rlog.Error("failed to compute moving average", "error", err)
		return nil, err
	}
	return &MovingAverageResponse{Points: result}, nil
}
