package model

import (
	"time"
)

type CategoryShare struct {
	Category    TaskCategory `json:"category"`
	Minutes     int64        `json:"minutes"`
	AmountCents int64        `json:"amount_cents"`
	Percent     float64      `json:"percent"`
}

// Breakdown is the output of the payment calculator: the monetary split of a
// set of time entries before a payment request is submitted.
type Breakdown struct {
	TotalMinutes  int64           `json:"total_minutes"`
	SubtotalCents int64           `json:"subtotal_cents"`
	TaxCents      int64           `json:"tax_cents"`
	TotalCents    int64           `json:"total_cents"`
	ByCategory    []CategoryShare `json:"by_category"`
}

type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

type Stats struct {
	TotalEarnedCents   int64                   `json:"total_earned_cents"`
	PendingCents       int64                   `json:"pending_cents"`
	TotalMinutes       int64                   `json:"total_minutes"`
	TotalHours         float64                 `json:"total_hours"`
	DistinctScopes     int64                   `json:"distinct_scopes"`
	AverageHourlyCents int64                   `json:"average_hourly_cents"`
	StatusCounts       map[PaymentStatus]int64 `json:"status_counts"`
	CurrentMonthCents  int64                   `json:"current_month_cents"`
	PreviousMonthCents int64                   `json:"previous_month_cents"`
	GrowthPercent      float64                 `json:"growth_percent"`
	Trend              Trend                   `json:"trend"`
	GeneratedAt        time.Time               `json:"generated_at"`
}

// MonthlyEarnings is one point of the paid-earnings series, keyed by the
// first day of the calendar month.
type MonthlyEarnings struct {
	Month       time.Time `json:"month"`
	AmountCents int64     `json:"amount_cents"`
}

type ForecastMonth struct {
	Month       time.Time `json:"month"`
	AmountCents int64     `json:"amount_cents"`
}

// Forecast extrapolates earnings from the trailing months' average growth.
// Confidence is a coefficient-of-variation heuristic in [0,100], not a
// statistical guarantee.
type Forecast struct {
	Months     []ForecastMonth `json:"months"`
	Confidence float64         `json:"confidence"`
}
