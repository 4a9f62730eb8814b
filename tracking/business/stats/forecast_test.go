package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encore.app/tracking/model"
)

func TestForecastSteadyGrowth(t *testing.T) {
	// 10% growth every month; the projection should continue it.
	series := []model.MonthlyEarnings{
		month(2026, time.January, 1000),
		month(2026, time.February, 1100),
		month(2026, time.March, 1210),
	}

	got := Forecast(series, 2)
	require.Len(t, got.Months, 2)
	assert.Equal(t, month(2026, time.April, 0).Month, got.Months[0].Month)
	assert.Equal(t, int64(1331), got.Months[0].AmountCents)
	assert.Equal(t, int64(1464), got.Months[1].AmountCents)
}

func TestForecastFlatSeriesHasFullConfidence(t *testing.T) {
	series := []model.MonthlyEarnings{
		month(2026, time.January, 2000),
		month(2026, time.February, 2000),
		month(2026, time.March, 2000),
	}

	got := Forecast(series, 1)
	require.Len(t, got.Months, 1)
	assert.Equal(t, int64(2000), got.Months[0].AmountCents)
	assert.InDelta(t, 100, got.Confidence, 0.001)
}

func TestForecastConfidenceBounds(t *testing.T) {
	// Highly volatile earnings push CV past 1; confidence clamps at 0.
	volatile := []model.MonthlyEarnings{
		month(2026, time.January, 10000),
		month(2026, time.February, 0),
		month(2026, time.March, 0),
		month(2026, time.April, 0),
	}

	got := Forecast(volatile, 3)
	assert.GreaterOrEqual(t, got.Confidence, 0.0)
	assert.LessOrEqual(t, got.Confidence, 100.0)
	assert.Zero(t, got.Confidence)
}

func TestForecastNeverProjectsNegative(t *testing.T) {
	series := []model.MonthlyEarnings{
		month(2026, time.January, 1000),
		month(2026, time.February, 100),
	}

	got := Forecast(series, 4)
	require.Len(t, got.Months, 4)
	for _, m := range got.Months {
		assert.GreaterOrEqual(t, m.AmountCents, int64(0))
	}
}

func TestForecastEmptyInputs(t *testing.T) {
	assert.Empty(t, Forecast(nil, 3).Months)
	assert.Empty(t, Forecast([]model.MonthlyEarnings{month(2026, time.January, 100)}, 0).Months)
}

func TestForecastSkipsZeroMonthGrowth(t *testing.T) {
	// January -> February has no defined growth ratio; only the 500 -> 600
	// transition counts (+20%).
	series := []model.MonthlyEarnings{
		month(2026, time.January, 0),
		month(2026, time.February, 500),
		month(2026, time.March, 600),
	}

	got := Forecast(series, 1)
	require.Len(t, got.Months, 1)
	assert.Equal(t, int64(720), got.Months[0].AmountCents)
}
