package tracking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	statsmock "encore.app/tracking/mocks/business/stats_business"
	"encore.app/tracking/mocks/repository/entries_repo"
	"encore.app/tracking/mocks/repository/payments_repo"
	"encore.app/tracking/repository"
	"encore.app/tracking/repository/entries"
	"encore.app/tracking/repository/payments"
)

func TestMirrorRegistry_DropsIdleMirrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEntries := entries_repo.NewMockQuerier(ctrl)
	mockPayments := payments_repo.NewMockQuerier(ctrl)
	mockStats := statsmock.NewMockBusiness(ctrl)

	s := &Service{
		repo:  &repository.Repository{Entries: mockEntries, Payments: mockPayments},
		stats: mockStats,
	}
	s.mirrors = newMirrorRegistry(s)

	// Each seed hits the store once; the idle actor re-seeds after eviction.
	expectSeed := func(actorID string, times int) {
		mockEntries.EXPECT().
			ListEntriesBetween(gomock.Any(), gomock.Cond(func(x any) bool {
				p, ok := x.(entries.ListEntriesBetweenParams)
				return ok && p.ActorID == actorID
			})).
			Return(nil, nil).Times(times)
		mockPayments.EXPECT().
			ListPayments(gomock.Any(), gomock.Cond(func(x any) bool {
				p, ok := x.(payments.ListPaymentsParams)
				return ok && p.PayeeID == actorID
			})).
			Return(nil, nil).Times(times)
	}
	expectSeed("idle-actor", 2)
	expectSeed("busy-actor", 1)

	_, err := s.mirrorFor(context.Background(), "idle-actor")
	require.NoError(t, err)
	require.NotNil(t, s.existingMirror("idle-actor"))

	s.mirrors.mu.Lock()
	s.mirrors.lastRead["idle-actor"] = time.Now().Add(-2 * mirrorIdleTTL)
	s.mirrors.mu.Unlock()

	_, err = s.mirrorFor(context.Background(), "busy-actor")
	require.NoError(t, err)

	assert.Nil(t, s.existingMirror("idle-actor"))
	assert.NotNil(t, s.existingMirror("busy-actor"))

	_, err = s.mirrorFor(context.Background(), "idle-actor")
	require.NoError(t, err)
	assert.NotNil(t, s.existingMirror("idle-actor"))
}

func TestMirrorRegistry_ReadKeepsMirrorAlive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEntries := entries_repo.NewMockQuerier(ctrl)
	mockPayments := payments_repo.NewMockQuerier(ctrl)
	mockStats := statsmock.NewMockBusiness(ctrl)

	s := &Service{
		repo:  &repository.Repository{Entries: mockEntries, Payments: mockPayments},
		stats: mockStats,
	}
	s.mirrors = newMirrorRegistry(s)

	mockEntries.EXPECT().ListEntriesBetween(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)
	mockPayments.EXPECT().ListPayments(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)

	first, err := s.mirrorFor(context.Background(), "freelancer-1")
	require.NoError(t, err)

	// A fresh read renews the idle clock; the same mirror is returned with
	// no second seed.
	again, err := s.mirrorFor(context.Background(), "freelancer-1")
	require.NoError(t, err)
	assert.Same(t, first, again)
}
