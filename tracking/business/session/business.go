// Package session implements the time session machine: at most one active or
// paused entry per (actor, scope), explicit transitions, and wall-clock
// derived durations. The final duration of a stopped session is always
// floor(end-start) in minutes; auto-persist ticks only refresh the
// provisional figure and can never corrupt the final one.
package session

import (
	"context"
	"time"

	"encore.app/tracking/model"
	"encore.app/tracking/repository/entries"
	"encore.app/tracking/repository/profiles"
)

type Business interface {
	Start(ctx context.Context, actorID string, scopeID int64, description string, category model.TaskCategory) (*model.TimeEntry, error)
	Current(ctx context.Context, actorID string, scopeID int64) (*model.TimeEntry, error)
	Pause(ctx context.Context, actorID string, scopeID int64) (*model.TimeEntry, error)
	Resume(ctx context.Context, actorID string, scopeID int64) (*model.TimeEntry, error)
	Stop(ctx context.Context, actorID string, scopeID int64) (*model.TimeEntry, error)
	StopEntry(ctx context.Context, entryID int64) (*model.TimeEntry, error)
	PersistProgress(ctx context.Context, entryID int64) error
	UpdateDescription(ctx context.Context, actorID string, entryID int64, description string) (*model.TimeEntry, error)
	Delete(ctx context.Context, actorID string, entryID int64, confirmed bool) (*model.TimeEntry, error)
	GetEntry(ctx context.Context, actorID string, entryID int64) (*model.TimeEntry, error)
	ListEntries(ctx context.Context, actorID string, filter ListFilter) ([]*model.TimeEntry, int64, error)
	Totals(ctx context.Context, actorID string, from, to time.Time) (*Totals, error)
}

// Totals aggregates completed work plus the live duration of any still-open
// session in the window.
type Totals struct {
	Minutes     int64 `json:"minutes"`
	AmountCents int64 `json:"amount_cents"`
}

type ListFilter struct {
	ScopeID  int64
	Category model.TaskCategory
	Status   model.EntryStatus
	From     *time.Time
	To       *time.Time
	Limit    int32
	Offset   int32
}

type business struct {
	entryRepo   entries.Querier
	profileRepo profiles.Querier
	now         func() time.Time
}

func NewSessionBusiness(entryRepo entries.Querier, profileRepo profiles.Querier) Business {
	return &business{
		entryRepo:   entryRepo,
		profileRepo: profileRepo,
		now:         time.Now,
	}
}

// durationMinutes is floor((now - start) / 60s), clamped at zero for clock
// skew between the app server and the database.
func durationMinutes(start, now time.Time) int64 {
	d := int64(now.Sub(start) / time.Minute)
	if d < 0 {
		return 0
	}
	return d
}
