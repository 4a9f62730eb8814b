package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encore.app/tracking/model"
)

func month(y int, m time.Month, cents int64) model.MonthlyEarnings {
	return model.MonthlyEarnings{Month: time.Date(y, m, 1, 0, 0, 0, 0, time.UTC), AmountCents: cents}
}

func TestGrowth(t *testing.T) {
	testCases := []struct {
		name          string
		current       int64
		previous      int64
		expectedPct   float64
		expectedTrend model.Trend
	}{
		{"from_zero_to_positive", 500, 0, 100, model.TrendUp},
		{"both_zero", 0, 0, 0, model.TrendStable},
		{"doubled", 2000, 1000, 100, model.TrendUp},
		{"halved", 500, 1000, -50, model.TrendDown},
		{"inside_deadband_up", 1040, 1000, 4, model.TrendStable},
		{"inside_deadband_down", 960, 1000, -4, model.TrendStable},
		{"exactly_deadband_is_stable", 1050, 1000, 5, model.TrendStable},
		{"just_over_deadband", 1051, 1000, 5.1, model.TrendUp},
		{"dropped_to_zero", 0, 800, -100, model.TrendDown},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pct, trend := Growth(tc.current, tc.previous)
			assert.InDelta(t, tc.expectedPct, pct, 0.001)
			assert.Equal(t, tc.expectedTrend, trend)
		})
	}
}

func TestAverageHourlyCents(t *testing.T) {
	assert.Equal(t, int64(0), AverageHourlyCents(10000, 0), "no hours must yield 0, not a division error")
	assert.Equal(t, int64(6000), AverageHourlyCents(6000, 60))
	assert.Equal(t, int64(4500), AverageHourlyCents(6750, 90))
}

func TestFillMonths(t *testing.T) {
	ref := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)
	sparse := []model.MonthlyEarnings{
		month(2026, time.January, 1000),
		month(2026, time.March, 3000),
	}

	got := FillMonths(sparse, ref, 4)
	require.Len(t, got, 4)
	assert.Equal(t, month(2025, time.December, 0), got[0])
	assert.Equal(t, month(2026, time.January, 1000), got[1])
	assert.Equal(t, month(2026, time.February, 0), got[2])
	assert.Equal(t, month(2026, time.March, 3000), got[3])
}

func TestMovingAverage(t *testing.T) {
	series := []model.MonthlyEarnings{
		month(2026, time.January, 300),
		month(2026, time.February, 600),
		month(2026, time.March, 900),
		month(2026, time.April, 600),
	}

	got := MovingAverage(series, 3)
	require.Len(t, got, 2)
	assert.Equal(t, int64(600), got[0].AmountCents)
	assert.Equal(t, month(2026, time.March, 600).Month, got[0].Month)
	assert.Equal(t, int64(700), got[1].AmountCents)

	assert.Nil(t, MovingAverage(series, 5), "window larger than series")
	assert.Nil(t, MovingAverage(series, 0))
}
