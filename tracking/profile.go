package tracking

import (
	"context"
	"errors"
	"math/big"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/tracking/business/calc"
	"encore.app/tracking/business/rate"
	"encore.app/tracking/model"
	"encore.app/tracking/repository/profiles"
)

type UpsertProfileRequest struct {
	BaseHourlyCents int64  `json:"base_hourly_cents" validate:"required,min=1"`
	Tier            string `json:"tier" validate:"required"`
	ExpertiseCount  int    `json:"expertise_count" validate:"min=0,max=100"`
	LanguageCount   int    `json:"language_count" validate:"min=0,max=100"`

	// TaxRate is optional; omitting it keeps the default. An explicit zero
	// is a valid rate, so the field is a pointer rather than a bare float.
	TaxRate *float64 `json:"tax_rate" validate:"omitempty,min=0,max=1"`
}

type ProfileResponse struct {
	Profile model.RateProfile `json:"profile"`

	// PerMinuteCents is the effective billing rate the profile yields.
	PerMinuteCents int64 `json:"per_minute_cents"`
}

// UpsertProfile creates or replaces the caller's rate profile. New sessions
// snapshot the effective rate at start; existing entries keep theirs.
//
//encore:api auth path=/v1/profile method=PUT
func (s *Service) UpsertProfile(ctx context.Context, req *UpsertProfileRequest) (*ProfileResponse, error) {
	actorID := currentActor()

	taxRate := calc.DefaultTaxRate
	if req.TaxRate != nil {
		taxRate = *req.TaxRate
	}

	result, err := s.repo.Profiles.UpsertProfile(ctx, profiles.UpsertProfileParams{
		ActorID:         actorID,
		BaseHourlyCents: req.BaseHourlyCents,
		Tier:            req.Tier,
		ExpertiseCount:  int32(req.ExpertiseCount),
		LanguageCount:   int32(req.LanguageCount),
		TaxRate:         taxRateNumeric(taxRate),
	})
	if err != nil {
		rlog.Error("failed to upsert profile", "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to save rate profile"}
	}

	profile := convertDBProfileToModel(result)
	return &ProfileResponse{
		Profile:        *profile,
		PerMinuteCents: rate.PerMinuteCents(*profile),
	}, nil
}

//encore:api auth path=/v1/profile method=GET
func (s *Service) GetProfile(ctx context.Context) (*ProfileResponse, error) {
	actorID := currentActor()

	result, err := s.repo.Profiles.GetProfile(ctx, actorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "rate profile not found"}
		}
		rlog.Error("failed to get profile", "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load rate profile"}
	}

	profile := convertDBProfileToModel(result)
	return &ProfileResponse{
		Profile:        *profile,
		PerMinuteCents: rate.PerMinuteCents(*profile),
	}, nil
}

// Validate implements validation for UpsertProfileRequest
func (r *UpsertProfileRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	if !model.SeniorityTier(r.Tier).Valid() {
		return &errs.Error{Code: errs.InvalidArgument, Message: "unknown seniority tier"}
	}
	return nil
}

func convertDBProfileToModel(dbProfile profiles.RateProfile) *model.RateProfile {
	profile := &model.RateProfile{
		ActorID:         dbProfile.ActorID,
		BaseHourlyCents: dbProfile.BaseHourlyCents,
		Tier:            model.SeniorityTier(dbProfile.Tier),
		ExpertiseCount:  int(dbProfile.ExpertiseCount),
		LanguageCount:   int(dbProfile.LanguageCount),
		TaxRate:         calc.DefaultTaxRate,
	}
	if v, err := dbProfile.TaxRate.Float64Value(); err == nil && v.Valid {
		profile.TaxRate = v.Float64
	}
	return profile
}

// taxRateNumeric stores the rate with four decimal places, matching the
// NUMERIC(5,4) column.
func taxRateNumeric(rate float64) pgtype.Numeric {
	return pgtype.Numeric{
		Int:   big.NewInt(int64(rate*10000 + 0.5)),
		Exp:   -4,
		Valid: true,
	}
}
