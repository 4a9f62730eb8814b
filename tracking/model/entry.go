package model

import (
	"time"
)

type EntryStatus string

const (
	EntryStatusActive    EntryStatus = "active"
	EntryStatusPaused    EntryStatus = "paused"
	EntryStatusCompleted EntryStatus = "completed"
	EntryStatusCancelled EntryStatus = "cancelled"
)

// Open reports whether the entry still occupies the single open-session
// slot for its (actor, scope) pair.
func (s EntryStatus) Open() bool {
	return s == EntryStatusActive || s == EntryStatusPaused
}

type TaskCategory string

const (
	CategoryDevelopment   TaskCategory = "development"
	CategoryDesign        TaskCategory = "design"
	CategoryManagement    TaskCategory = "management"
	CategoryTesting       TaskCategory = "testing"
	CategoryDocumentation TaskCategory = "documentation"
	CategoryMeeting       TaskCategory = "meeting"
	CategoryResearch      TaskCategory = "research"
	CategorySupport       TaskCategory = "support"
	CategoryOther         TaskCategory = "other"
)

func (c TaskCategory) Valid() bool {
	switch c {
	case CategoryDevelopment, CategoryDesign, CategoryManagement, CategoryTesting,
		CategoryDocumentation, CategoryMeeting, CategoryResearch, CategorySupport, CategoryOther:
		return true
	}
	return false
}

type TimeEntry struct {
	ID                 int64        `json:"id"`
	ActorID            string       `json:"actor_id"`
	ScopeID            int64        `json:"scope_id"`
	Description        string       `json:"description"`
	Category           TaskCategory `json:"category"`
	Status             EntryStatus  `json:"status"`
	StartedAt          time.Time    `json:"started_at"`
	EndedAt            *time.Time   `json:"ended_at,omitempty"`
	DurationMinutes    int64        `json:"duration_minutes"`
	RatePerMinuteCents int64        `json:"rate_per_minute_cents"`
	AmountCents        int64        `json:"amount_cents"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

// LiveDurationMinutes returns the authoritative duration for a closed entry
// and the wall-clock provisional duration for an open one.
func (e *TimeEntry) LiveDurationMinutes(now time.Time) int64 {
	if !e.Status.Open() {
		return e.DurationMinutes
	}
	d := int64(now.Sub(e.StartedAt) / time.Minute)
	if d < 0 {
		return 0
	}
	return d
}
