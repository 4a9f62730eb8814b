package session

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/tracking/mocks/repository/entries_repo"
	"encore.app/tracking/mocks/repository/profiles_repo"
	"encore.app/tracking/model"
	"encore.app/tracking/repository/entries"
	"encore.app/tracking/repository/profiles"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func ts(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func newTestBusiness(entryRepo *entries_repo.MockQuerier, profileRepo *profiles_repo.MockQuerier, now time.Time) *business {
	return &business{
		entryRepo:   entryRepo,
		profileRepo: profileRepo,
		now:         fixedClock(now),
	}
}

func TestStop_DurationFromWallClock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryRepo := entries_repo.NewMockQuerier(ctrl)
	profileRepo := profiles_repo.NewMockQuerier(ctrl)

	start := time.Date(2026, time.March, 11, 10, 0, 0, 0, time.UTC)
	// 2h05m30s after start; seconds are truncated, not rounded.
	now := start.Add(2*time.Hour + 5*time.Minute + 30*time.Second)
	b := newTestBusiness(entryRepo, profileRepo, now)

	open := entries.TimeEntry{
		ID:                 7,
		ActorID:            "freelancer-1",
		ScopeID:            42,
		Status:             string(model.EntryStatusActive),
		StartedAt:          ts(start),
		RatePerMinuteCents: 150,
	}

	entryRepo.EXPECT().
		GetOpenEntry(gomock.Any(), entries.GetOpenEntryParams{ActorID: "freelancer-1", ScopeID: 42}).
		Return(open, nil)

	entryRepo.EXPECT().
		CompleteEntry(gomock.Any(), entries.CompleteEntryParams{
			ID:              7,
			EndedAt:         ts(now),
			DurationMinutes: 125,
			AmountCents:     125 * 150,
		}).
		Return(entries.TimeEntry{
			ID:                 7,
			ActorID:            "freelancer-1",
			ScopeID:            42,
			Status:             string(model.EntryStatusCompleted),
			StartedAt:          ts(start),
			EndedAt:            ts(now),
			DurationMinutes:    125,
			RatePerMinuteCents: 150,
			AmountCents:        125 * 150,
		}, nil)

	result, err := b.Stop(context.Background(), "freelancer-1", 42)
	require.NoError(t, err)
	assert.Equal(t, int64(125), result.DurationMinutes)
	assert.Equal(t, int64(18750), result.AmountCents)
	assert.Equal(t, model.EntryStatusCompleted, result.Status)
}

func TestStop_NoOpenSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryRepo := entries_repo.NewMockQuerier(ctrl)
	profileRepo := profiles_repo.NewMockQuerier(ctrl)
	b := newTestBusiness(entryRepo, profileRepo, time.Now())

	entryRepo.EXPECT().
		GetOpenEntry(gomock.Any(), gomock.Any()).
		Return(entries.TimeEntry{}, pgx.ErrNoRows)

	_, err := b.Stop(context.Background(), "freelancer-1", 42)
	require.Error(t, err)
	assert.Equal(t, errs.FailedPrecondition, err.(*errs.Error).Code)
	assert.Contains(t, err.Error(), "no open session")
}

func TestPauseResume_StatusPreconditions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryRepo := entries_repo.NewMockQuerier(ctrl)
	profileRepo := profiles_repo.NewMockQuerier(ctrl)
	b := newTestBusiness(entryRepo, profileRepo, time.Now())

	paused := entries.TimeEntry{ID: 1, Status: string(model.EntryStatusPaused)}
	active := entries.TimeEntry{ID: 1, Status: string(model.EntryStatusActive)}

	entryRepo.EXPECT().GetOpenEntry(gomock.Any(), gomock.Any()).Return(paused, nil)
	_, err := b.Pause(context.Background(), "freelancer-1", 42)
	require.Error(t, err)
	assert.Equal(t, errs.FailedPrecondition, err.(*errs.Error).Code)
	assert.Contains(t, err.Error(), "not active")

	entryRepo.EXPECT().GetOpenEntry(gomock.Any(), gomock.Any()).Return(active, nil)
	_, err = b.Resume(context.Background(), "freelancer-1", 42)
	require.Error(t, err)
	assert.Equal(t, errs.FailedPrecondition, err.(*errs.Error).Code)
	assert.Contains(t, err.Error(), "not paused")
}

func TestStart_SnapshotsRateAndMapsConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryRepo := entries_repo.NewMockQuerier(ctrl)
	profileRepo := profiles_repo.NewMockQuerier(ctrl)

	start := time.Date(2026, time.March, 11, 9, 0, 0, 0, time.UTC)
	b := newTestBusiness(entryRepo, profileRepo, start)

	profile := profiles.RateProfile{
		ActorID:         "freelancer-1",
		BaseHourlyCents: 6000,
		Tier:            "senior",
	}

	t.Run("snapshots_per_minute_rate", func(t *testing.T) {
		profileRepo.EXPECT().GetProfile(gomock.Any(), "freelancer-1").Return(profile, nil)
		entryRepo.EXPECT().
			CreateEntry(gomock.Any(), entries.CreateEntryParams{
				ActorID:            "freelancer-1",
				ScopeID:            42,
				Description:        pgtype.Text{String: "api work", Valid: true},
				Category:           string(model.CategoryDevelopment),
				Status:             string(model.EntryStatusActive),
				StartedAt:          ts(start),
				RatePerMinuteCents: 150,
			}).
			Return(entries.TimeEntry{ID: 9, ActorID: "freelancer-1", ScopeID: 42, Status: string(model.EntryStatusActive), StartedAt: ts(start), RatePerMinuteCents: 150}, nil)

		result, err := b.Start(context.Background(), "freelancer-1", 42, "api work", model.CategoryDevelopment)
		require.NoError(t, err)
		assert.Equal(t, int64(150), result.RatePerMinuteCents)
	})

	t.Run("open_session_conflict", func(t *testing.T) {
		profileRepo.EXPECT().GetProfile(gomock.Any(), "freelancer-1").Return(profile, nil)
		entryRepo.EXPECT().
			CreateEntry(gomock.Any(), gomock.Any()).
			Return(entries.TimeEntry{}, &pgconn.PgError{Code: "23505"})

		_, err := b.Start(context.Background(), "freelancer-1", 42, "", model.CategoryDevelopment)
		require.Error(t, err)
		assert.Equal(t, errs.AlreadyExists, err.(*errs.Error).Code)
	})

	t.Run("missing_profile", func(t *testing.T) {
		profileRepo.EXPECT().GetProfile(gomock.Any(), "freelancer-1").Return(profiles.RateProfile{}, pgx.ErrNoRows)

		_, err := b.Start(context.Background(), "freelancer-1", 42, "", model.CategoryDevelopment)
		require.Error(t, err)
		assert.Equal(t, errs.FailedPrecondition, err.(*errs.Error).Code)
		assert.Contains(t, err.Error(), "no rate profile")
	})
}

func TestPersistProgress_BestEffort(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryRepo := entries_repo.NewMockQuerier(ctrl)
	profileRepo := profiles_repo.NewMockQuerier(ctrl)

	start := time.Date(2026, time.March, 11, 9, 0, 0, 0, time.UTC)
	now := start.Add(31 * time.Minute)
	b := newTestBusiness(entryRepo, profileRepo, now)

	t.Run("writes_provisional_minutes", func(t *testing.T) {
		entryRepo.EXPECT().GetEntry(gomock.Any(), int64(7)).
			Return(entries.TimeEntry{ID: 7, Status: string(model.EntryStatusActive), StartedAt: ts(start)}, nil)
		entryRepo.EXPECT().
			UpdateEntryProgress(gomock.Any(), entries.UpdateEntryProgressParams{ID: 7, DurationMinutes: 31}).
			Return(int64(1), nil)

		assert.NoError(t, b.PersistProgress(context.Background(), 7))
	})

	t.Run("paused_session_is_noop", func(t *testing.T) {
		entryRepo.EXPECT().GetEntry(gomock.Any(), int64(7)).
			Return(entries.TimeEntry{ID: 7, Status: string(model.EntryStatusPaused), StartedAt: ts(start)}, nil)

		assert.NoError(t, b.PersistProgress(context.Background(), 7))
	})

	t.Run("vanished_entry_is_noop", func(t *testing.T) {
		entryRepo.EXPECT().GetEntry(gomock.Any(), int64(7)).
			Return(entries.TimeEntry{}, pgx.ErrNoRows)

		assert.NoError(t, b.PersistProgress(context.Background(), 7))
	})
}

func TestDelete_RequiresConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryRepo := entries_repo.NewMockQuerier(ctrl)
	profileRepo := profiles_repo.NewMockQuerier(ctrl)
	b := newTestBusiness(entryRepo, profileRepo, time.Now())

	_, err := b.Delete(context.Background(), "freelancer-1", 7, false)
	require.Error(t, err)
	assert.Equal(t, errs.InvalidArgument, err.(*errs.Error).Code)
	assert.Contains(t, err.Error(), "confirmation")
}
