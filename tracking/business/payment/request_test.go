package payment

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

	"encore.app/tracking/mocks/domain/state_machine"
	"encore.app/tracking/mocks/repository/entries_repo"
	"encore.app/tracking/mocks/repository/payments_repo"
	"encore.app/tracking/mocks/repository/profiles_repo"
	"encore.app/tracking/model"
	"encore.app/tracking/repository/entries"
	"encore.app/tracking/repository/payments"
	"encore.app/tracking/repository/profiles"
)

type paymentMocks struct {
	payments     *payments_repo.MockQuerier
	entries      *entries_repo.MockQuerier
	profiles     *profiles_repo.MockQuerier
	stateMachine *state_machine.MockStateMachine
}

func newTestBusiness(ctrl *gomock.Controller) (*business, paymentMocks) {
	m := paymentMocks{
		payments:     payments_repo.NewMockQuerier(ctrl),
		entries:      entries_repo.NewMockQuerier(ctrl),
		profiles:     profiles_repo.NewMockQuerier(ctrl),
		stateMachine: state_machine.NewMockStateMachine(ctrl),
	}
	b := &business{
		paymentRepo:  m.payments,
		entryRepo:    m.entries,
		profileRepo:  m.profiles,
		stateMachine: m.stateMachine,
		now:          time.Now,
	}
	return b, m
}

func completedEntry(id, scopeID int64, started time.Time, minutes, rate int64) entries.TimeEntry {
	return entries.TimeEntry{
		ID:                 id,
		ActorID:            "freelancer-1",
		ScopeID:            scopeID,
		Status:             string(model.EntryStatusCompleted),
		StartedAt:          pgtype.Timestamptz{Time: started, Valid: true},
		DurationMinutes:    minutes,
		RatePerMinuteCents: rate,
		AmountCents:        minutes * rate,
	}
}

func TestRequestPayment(t *testing.T) {
	periodStart := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC)
	inPeriod := periodStart.Add(48 * time.Hour)

	req := RequestParams{
		ScopeID:        42,
		PayerID:        "client-9",
		PeriodStart:    periodStart,
		PeriodEnd:      periodEnd,
		EntryIDs:       []int64{1, 2},
		IdempotencyKey: "pay-req-1",
	}

	t.Run("sums_minutes_and_snapshot_amounts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		b, m := newTestBusiness(ctrl)

		rows := []entries.TimeEntry{
			completedEntry(1, 42, inPeriod, 60, 150),
			completedEntry(2, 42, inPeriod.Add(time.Hour), 30, 150),
		}
		m.entries.EXPECT().
			ListEntriesByIDs(gomock.Any(), entries.ListEntriesByIDsParams{ActorID: "freelancer-1", IDs: []int64{1, 2}}).
			Return(rows, nil)

		m.stateMachine.EXPECT().
			CreateWithItems(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg payments.CreatePaymentParams, items []payments.CreatePaymentItemParams) (*payments.Payment, error) {
				assert.Equal(t, int64(90), arg.MinutesTotal)
				assert.Equal(t, int64(90*150), arg.AmountCents)
				assert.Equal(t, string(model.PaymentStatusPending), arg.Status)
				require.Len(t, items, 2)
				return &payments.Payment{
					ID:           11,
					ScopeID:      arg.ScopeID,
					PayerID:      arg.PayerID,
					PayeeID:      arg.PayeeID,
					MinutesTotal: arg.MinutesTotal,
					AmountCents:  arg.AmountCents,
					Status:       arg.Status,
				}, nil
			})

		result, err := b.RequestPayment(context.Background(), "freelancer-1", req)
		require.NoError(t, err)
		assert.Equal(t, int64(13500), result.AmountCents)
		assert.Equal(t, model.PaymentStatusPending, result.Status)
		assert.Len(t, result.Items, 2)
	})

	t.Run("rejects_open_entries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		b, m := newTestBusiness(ctrl)

		open := completedEntry(1, 42, inPeriod, 60, 150)
		open.Status = string(model.EntryStatusActive)
		m.entries.EXPECT().ListEntriesByIDs(gomock.Any(), gomock.Any()).
			Return([]entries.TimeEntry{open, completedEntry(2, 42, inPeriod, 30, 150)}, nil)

		_, err := b.RequestPayment(context.Background(), "freelancer-1", req)
		require.Error(t, err)
		assert.Equal(t, errs.FailedPrecondition, err.(*errs.Error).Code)
		assert.Contains(t, err.Error(), "only completed entries")
	})

	t.Run("rejects_missing_entries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		b, m := newTestBusiness(ctrl)

		m.entries.EXPECT().ListEntriesByIDs(gomock.Any(), gomock.Any()).
			Return([]entries.TimeEntry{completedEntry(1, 42, inPeriod, 60, 150)}, nil)

		_, err := b.RequestPayment(context.Background(), "freelancer-1", req)
		require.Error(t, err)
		assert.Equal(t, errs.NotFound, err.(*errs.Error).Code)
	})

	t.Run("rejects_entries_outside_period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		b, m := newTestBusiness(ctrl)

		m.entries.EXPECT().ListEntriesByIDs(gomock.Any(), gomock.Any()).
			Return([]entries.TimeEntry{
				completedEntry(1, 42, periodStart.AddDate(0, 0, -1), 60, 150),
				completedEntry(2, 42, inPeriod, 30, 150),
			}, nil)

		_, err := b.RequestPayment(context.Background(), "freelancer-1", req)
		require.Error(t, err)
		assert.Equal(t, errs.InvalidArgument, err.(*errs.Error).Code)
		assert.Contains(t, err.Error(), "billing period")
	})

	t.Run("entry_already_billed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		b, m := newTestBusiness(ctrl)

		m.entries.EXPECT().ListEntriesByIDs(gomock.Any(), gomock.Any()).
			Return([]entries.TimeEntry{
				completedEntry(1, 42, inPeriod, 60, 150),
				completedEntry(2, 42, inPeriod, 30, 150),
			}, nil)
		m.stateMachine.EXPECT().CreateWithItems(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, &pgconn.PgError{Code: "23505", ConstraintName: "payment_items_entry_once"})

		_, err := b.RequestPayment(context.Background(), "freelancer-1", req)
		require.Error(t, err)
		assert.Equal(t, errs.FailedPrecondition, err.(*errs.Error).Code)
		assert.Contains(t, err.Error(), "already part of another payment")
	})

	t.Run("duplicate_request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		b, m := newTestBusiness(ctrl)

		m.entries.EXPECT().ListEntriesByIDs(gomock.Any(), gomock.Any()).
			Return([]entries.TimeEntry{
				completedEntry(1, 42, inPeriod, 60, 150),
				completedEntry(2, 42, inPeriod, 30, 150),
			}, nil)
		m.stateMachine.EXPECT().CreateWithItems(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, &pgconn.PgError{Code: "23505", ConstraintName: "payments_idempotency_key_key"})

		_, err := b.RequestPayment(context.Background(), "freelancer-1", req)
		require.Error(t, err)
		assert.Equal(t, errs.AlreadyExists, err.(*errs.Error).Code)
	})
}

func TestPreview_UsesProfileTaxRate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	b, m := newTestBusiness(ctrl)

	started := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	dev := completedEntry(1, 42, started, 60, 75)
	dev.Category = string(model.CategoryDevelopment)
	testing_ := completedEntry(2, 42, started.Add(2*time.Hour), 30, 75)
	testing_.Category = string(model.CategoryTesting)

	m.entries.EXPECT().
		ListEntriesByIDs(gomock.Any(), entries.ListEntriesByIDsParams{ActorID: "freelancer-1", IDs: []int64{1, 2}}).
		Return([]entries.TimeEntry{dev, testing_}, nil)
	m.profiles.EXPECT().GetProfile(gomock.Any(), "freelancer-1").
		Return(profiles.RateProfile{}, pgx.ErrNoRows)

	result, err := b.Preview(context.Background(), "freelancer-1", []int64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, int64(90), result.TotalMinutes)
	assert.Equal(t, int64(6750), result.SubtotalCents)
	assert.Equal(t, int64(1350), result.TaxCents) // default 20% tax
	assert.Equal(t, int64(8100), result.TotalCents)
	require.Len(t, result.ByCategory, 2)
	assert.InDelta(t, 66.7, result.ByCategory[0].Percent, 0.001)
	assert.InDelta(t, 33.3, result.ByCategory[1].Percent, 0.001)
}
