package model

type SeniorityTier string

const (
	TierJunior    SeniorityTier = "junior"
	TierMid       SeniorityTier = "mid"
	TierSenior    SeniorityTier = "senior"
	TierPrincipal SeniorityTier = "principal"
)

func (t SeniorityTier) Valid() bool {
	switch t {
	case TierJunior, TierMid, TierSenior, TierPrincipal:
		return true
	}
	return false
}

// RateProfile is the per-actor input to the rate model. TaxRate is the
// region-configured fraction applied on top of the subtotal.
type RateProfile struct {
	ActorID         string        `json:"actor_id"`
	BaseHourlyCents int64         `json:"base_hourly_cents"`
	Tier            SeniorityTier `json:"tier"`
	ExpertiseCount  int           `json:"expertise_count"`
	LanguageCount   int           `json:"language_count"`
	TaxRate         float64       `json:"tax_rate"`
}
