package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.app/tracking/repository/entries"
	"encore.app/tracking/repository/payments"
	"encore.app/tracking/repository/profiles"
)

// Repository combines all domain-specific queriers.
type Repository struct {
	Entries  entries.Querier
	Payments payments.Querier
	Profiles profiles.Querier
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Entries:  entries.New(db),
		Payments: payments.New(db),
		Profiles: profiles.New(db),
	}
}
