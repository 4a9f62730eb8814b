package rate

import (
	"math"

	"encore.app/tracking/model"
)

const (
	expertiseBonus = 0.02
	languageBonus  = 0.03

	maxExpertiseCounted = 10
	maxLanguagesCounted = 5
)

// tierMultiplier maps a seniority tier to its rate multiplier. Unknown tiers
// fall back to 1.0; tier validity is enforced at profile upsert.
func tierMultiplier(t model.SeniorityTier) float64 {
	switch t {
	case model.TierMid:
		return 1.25
	case model.TierSenior:
		return 1.5
	case model.TierPrincipal:
		return 2.0
	default:
		return 1.0
	}
}

// PerMinuteCents converts a rate profile into the billable per-minute rate in
// minor currency units. The expertise and language bonuses are capped so a
// padded profile cannot inflate the rate without bound.
func PerMinuteCents(p model.RateProfile) int64 {
	expertise := min(p.ExpertiseCount, maxExpertiseCounted)
	languages := min(p.LanguageCount, maxLanguagesCounted)

	multiplier := tierMultiplier(p.Tier) * (1 + expertiseBonus*float64(expertise) + languageBonus*float64(languages))
	return int64(math.Round(float64(p.BaseHourlyCents) * multiplier / 60))
}
