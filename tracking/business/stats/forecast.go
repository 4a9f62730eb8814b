package stats

import (
	"math"

	"encore.app/tracking/model"
)

// forecastWindow is how many trailing months feed the growth estimate.
const forecastWindow = 6

// Forecast extrapolates earnings for monthsAhead months using the average
// month-over-month growth rate of the trailing window, and attaches a
// confidence score derived from the coefficient of variation of those
// months' earnings. This is a display heuristic, not a statistical model:
// low variance in recent months reads as high confidence.
func Forecast(series []model.MonthlyEarnings, monthsAhead int) model.Forecast {
	if monthsAhead <= 0 || len(series) == 0 {
		return model.Forecast{}
	}

	window := series
	if len(window) > forecastWindow {
		window = window[len(window)-forecastWindow:]
	}

	growth := averageGrowthRate(window)
	last := window[len(window)-1]

	months := make([]model.ForecastMonth, 0, monthsAhead)
	projected := float64(last.AmountCents)
	for i := 1; i <= monthsAhead; i++ {
		projected *= 1 + growth
		if projected < 0 {
			projected = 0
		}
		months = append(months, model.ForecastMonth{
			Month:       MonthStart(last.Month).AddDate(0, i, 0),
			AmountCents: int64(math.Round(projected)),
		})
	}

	return model.Forecast{
		Months:     months,
		Confidence: confidence(window),
	}
}

// averageGrowthRate is the mean of the month-over-month growth ratios.
// Transitions out of a zero month are skipped rather than treated as
// infinite growth.
func averageGrowthRate(window []model.MonthlyEarnings) float64 {
	var sum float64
	var n int
	for i := 1; i < len(window); i++ {
		prev := float64(window[i-1].AmountCents)
		if prev == 0 {
			continue
		}
		sum += (float64(window[i].AmountCents) - prev) / prev
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// confidence maps the coefficient of variation of the window's earnings to
// [0,100]: zero variance scores 100, CV >= 1 scores 0.
func confidence(window []model.MonthlyEarnings) float64 {
	if len(window) < 2 {
		return 0
	}

	var sum float64
	for _, m := range window {
		sum += float64(m.AmountCents)
	}
	mean := sum / float64(len(window))
	if mean == 0 {
		return 0
	}

	var variance float64
	for _, m := range window {
		d := float64(m.AmountCents) - mean
		variance += d * d
	}
	variance /= float64(len(window))

	cv := math.Sqrt(variance) / mean
	score := (1 - cv) * 100
	return math.Max(0, math.Min(100, score))
}
