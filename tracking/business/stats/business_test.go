package stats

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.app/tracking/mocks/repository/entries_repo"
	"encore.app/tracking/mocks/repository/payments_repo"
	"encore.app/tracking/model"
	"encore.app/tracking/repository/entries"
	"encore.app/tracking/repository/payments"
)

func newTestBusiness(ctrl *gomock.Controller, now time.Time) (*business, *entries_repo.MockQuerier, *payments_repo.MockQuerier) {
	entryRepo := entries_repo.NewMockQuerier(ctrl)
	paymentRepo := payments_repo.NewMockQuerier(ctrl)
	b := &business{
		entryRepo:   entryRepo,
		paymentRepo: paymentRepo,
		now:         func() time.Time { return now },
		cache:       make(map[string]*model.Stats),
	}
	return b, entryRepo, paymentRepo
}

func TestSnapshot_AggregatesAndCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	b, entryRepo, paymentRepo := newTestBusiness(ctrl, now)

	// Each expectation is Times(1): the second Snapshot call below must be
	// served from the cache.
	entryRepo.EXPECT().StatsTotals(gomock.Any(), "freelancer-1").
		Return(entries.StatsTotalsRow{TotalMinutes: 600, DistinctScopes: 3}, nil).Times(1)
	paymentRepo.EXPECT().EarningsTotals(gomock.Any(), "freelancer-1").
		Return(payments.EarningsTotalsRow{PaidCents: 90000, PendingCents: 15000}, nil).Times(1)
	paymentRepo.EXPECT().StatusCounts(gomock.Any(), "freelancer-1").
		Return([]payments.StatusCountsRow{
			{Status: "paid", Count: 4},
			{Status: "pending", Count: 1},
		}, nil).Times(1)
	paymentRepo.EXPECT().MonthlyEarnings(gomock.Any(), gomock.Any()).
		Return([]payments.MonthlyEarningsRow{
			{Month: pgtype.Date{Time: time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), Valid: true}, AmountCents: 30000},
			{Month: pgtype.Date{Time: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), Valid: true}, AmountCents: 60000},
		}, nil).Times(1)

	snapshot, err := b.Snapshot(context.Background(), "freelancer-1")
	require.NoError(t, err)

	assert.Equal(t, int64(90000), snapshot.TotalEarnedCents)
	assert.Equal(t, int64(15000), snapshot.PendingCents)
	assert.Equal(t, int64(600), snapshot.TotalMinutes)
	assert.Equal(t, 10.0, snapshot.TotalHours)
	assert.Equal(t, int64(3), snapshot.DistinctScopes)
	assert.Equal(t, int64(9000), snapshot.AverageHourlyCents)
	assert.Equal(t, int64(4), snapshot.StatusCounts[model.PaymentStatusPaid])
	assert.Equal(t, int64(60000), snapshot.CurrentMonthCents)
	assert.Equal(t, int64(30000), snapshot.PreviousMonthCents)
	assert.InDelta(t, 100, snapshot.GrowthPercent, 0.001)
	assert.Equal(t, model.TrendUp, snapshot.Trend)

	cached, err := b.Snapshot(context.Background(), "freelancer-1")
	require.NoError(t, err)
	assert.Same(t, snapshot, cached)
}

func TestSnapshot_InvalidateForcesRecompute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	b, entryRepo, paymentRepo := newTestBusiness(ctrl, now)

	entryRepo.EXPECT().StatsTotals(gomock.Any(), "freelancer-1").
		Return(entries.StatsTotalsRow{}, nil).Times(2)
	paymentRepo.EXPECT().EarningsTotals(gomock.Any(), "freelancer-1").
		Return(payments.EarningsTotalsRow{}, nil).Times(2)
	paymentRepo.EXPECT().StatusCounts(gomock.Any(), "freelancer-1").
		Return(nil, nil).Times(2)
	paymentRepo.EXPECT().MonthlyEarnings(gomock.Any(), gomock.Any()).
		Return(nil, nil).Times(2)

	_, err := b.Snapshot(context.Background(), "freelancer-1")
	require.NoError(t, err)

	b.Invalidate("freelancer-1")

	_, err = b.Snapshot(context.Background(), "freelancer-1")
	require.NoError(t, err)
}

func TestForecastAndMovingAverage_RangeValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, _, _ := newTestBusiness(ctrl, time.Now())

	_, err := b.Forecast(context.Background(), "freelancer-1", 0)
	assert.Error(t, err)
	_, err = b.Forecast(context.Background(), "freelancer-1", 13)
	assert.Error(t, err)

	_, err = b.MovingAverage(context.Background(), "freelancer-1", 0)
	assert.Error(t, err)
	_, err = b.MovingAverage(context.Background(), "freelancer-1", 13)
	assert.Error(t, err)
}
