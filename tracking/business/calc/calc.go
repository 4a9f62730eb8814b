// Package calc is the payment calculator: pure, deterministic money math over
// a set of time entries. It performs no I/O.
package calc

import (
	"math"
	"sort"

	"encore.app/tracking/model"
)

// DefaultTaxRate applies when the actor's profile does not configure a
// region-specific rate.
const DefaultTaxRate = 0.20

// Calculate derives the monetary breakdown of the given entries at the given
// tax rate. Open entries contribute their provisional duration as stored;
// callers billing for real money should pass completed entries only.
func Calculate(entries []model.TimeEntry, taxRate float64) model.Breakdown {
	type bucket struct {
		minutes int64
		amount  int64
	}

	var totalMinutes, subtotal int64
	buckets := make(map[model.TaskCategory]*bucket)

	for _, e := range entries {
		amount := e.DurationMinutes * e.RatePerMinuteCents
		totalMinutes += e.DurationMinutes
		subtotal += amount

		b, ok := buckets[e.Category]
		if !ok {
			b = &bucket{}
			buckets[e.Category] = b
		}
		b.minutes += e.DurationMinutes
		b.amount += amount
	}

	tax := int64(math.Round(float64(subtotal) * taxRate))

	byCategory := make([]model.CategoryShare, 0, len(buckets))
	for cat, b := range buckets {
		share := model.CategoryShare{
			Category:    cat,
			Minutes:     b.minutes,
			AmountCents: b.amount,
		}
		if subtotal > 0 {
			share.Percent = math.Round(float64(b.amount)/float64(subtotal)*1000) / 10
		}
		byCategory = append(byCategory, share)
	}
	sort.Slice(byCategory, func(i, j int) bool {
		if byCategory[i].AmountCents != byCategory[j].AmountCents {
			return byCategory[i].AmountCents > byCategory[j].AmountCents
		}
		return byCategory[i].Category < byCategory[j].Category
	})

	return model.Breakdown{
		TotalMinutes:  totalMinutes,
		SubtotalCents: subtotal,
		TaxCents:      tax,
		TotalCents:    subtotal + tax,
		ByCategory:    byCategory,
	}
}
