// Package stats derives dashboard metrics from the reconciled time and
// payment records: period totals, growth, moving averages and a trend
// forecast.
package stats

import (
	"math"
	"time"

	"encore.app/tracking/model"
)

// growthDeadband is the ±5% band inside which month-over-month movement is
// reported as stable, so display trends do not flap on noise.
const growthDeadband = 5.0

// Growth computes the month-over-month earnings delta. A previous month of
// zero is treated as +100% growth when the current month earned anything,
// and 0% otherwise.
func Growth(currentCents, previousCents int64) (float64, model.Trend) {
	var pct float64
	switch {
	case previousCents == 0 && currentCents > 0:
		pct = 100
	case previousCents == 0:
		pct = 0
	default:
		pct = (float64(currentCents) - float64(previousCents)) / float64(previousCents) * 100
	}

	switch {
	case pct > growthDeadband:
		return pct, model.TrendUp
	case pct < -growthDeadband:
		return pct, model.TrendDown
	default:
		return pct, model.TrendStable
	}
}

// AverageHourlyCents is total earnings divided by total hours, defined as 0
// when no hours were worked.
func AverageHourlyCents(earnedCents, totalMinutes int64) int64 {
	if totalMinutes == 0 {
		return 0
	}
	hours := float64(totalMinutes) / 60
	return int64(math.Round(float64(earnedCents) / hours))
}

// MonthStart truncates t to the first instant of its calendar month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// FillMonths expands a sparse earnings series into a dense one covering the
// n months ending at (and including) the month of ref, with zero-earning
// months filled in.
func FillMonths(series []model.MonthlyEarnings, ref time.Time, n int) []model.MonthlyEarnings {
	byMonth := make(map[time.Time]int64, len(series))
	for _, m := range series {
		byMonth[MonthStart(m.Month)] = m.AmountCents
	}

	out := make([]model.MonthlyEarnings, 0, n)
	start := MonthStart(ref).AddDate(0, -(n - 1), 0)
	for i := 0; i < n; i++ {
		month := start.AddDate(0, i, 0)
		out = append(out, model.MonthlyEarnings{Month: month, AmountCents: byMonth[month]})
	}
	return out
}

// MovingAverage computes the trailing moving average over the given window
// for each point that has a full window behind it.
func MovingAverage(series []model.MonthlyEarnings, window int) []model.MonthlyEarnings {
	if window <= 0 || len(series) < window {
		return nil
	}
	out := make([]model.MonthlyEarnings, 0, len(series)-window+1)
	var sum int64
	for i, m := range series {
		sum += m.AmountCents
		if i >= window {
			sum -= series[i-window].AmountCents
		}
		if i >= window-1 {
			out = append(out, model.MonthlyEarnings{
				Month:       m.Month,
				AmountCents: int64(math.Round(float64(sum) / float64(window))),
			})
		}
	}
	return out
}
