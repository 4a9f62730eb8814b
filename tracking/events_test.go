package tracking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.app/tracking/mirror"
	statsmock "encore.app/tracking/mocks/business/stats_business"
	"encore.app/tracking/model"
)

func newEventService(t *testing.T) (*Service, *statsmock.MockBusiness) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStats := statsmock.NewMockBusiness(ctrl)
	s := &Service{stats: mockStats}
	s.mirrors = newMirrorRegistry(s)
	return s, mockStats
}

func TestApplyEntryEvent_InvalidatesStats(t *testing.T) {
	t.Run("targeted_event_without_live_mirror", func(t *testing.T) {
		s, mockStats := newEventService(t)

		mockStats.EXPECT().Invalidate("freelancer-1").Times(1)

		err := s.applyEntryEvent(context.Background(), &EntryChangeEvent{
			Type: model.ChangeUpdated,
			At:   time.Now(),
			Entry: model.TimeEntry{
				ID:      7,
				ActorID: "freelancer-1",
				Status:  model.EntryStatusCompleted,
			},
		})
		assert.NoError(t, err)
	})

	t.Run("id_only_delete_invalidates_every_mirror_owner", func(t *testing.T) {
		s, mockStats := newEventService(t)
		s.mirrors.m["freelancer-1"] = mirror.New("freelancer-1", &repoFetcher{})
		s.mirrors.m["freelancer-2"] = mirror.New("freelancer-2", &repoFetcher{})

		mockStats.EXPECT().Invalidate("freelancer-1").Times(1)
		mockStats.EXPECT().Invalidate("freelancer-2").Times(1)

		err := s.applyEntryEvent(context.Background(), &EntryChangeEvent{
			Type:  model.ChangeDeleted,
			At:    time.Now(),
			Entry: model.TimeEntry{ID: 7},
		})
		assert.NoError(t, err)
	})
}

func TestGetStats_RefreshBypassesCache(t *testing.T) {
	s, mockStats := newEventService(t)

	gomock.InOrder(
		mockStats.EXPECT().Invalidate(gomock.Any()).Times(1),
		mockStats.EXPECT().Snapshot(gomock.Any(), gomock.Any()).Return(&model.Stats{}, nil),
	)

	_, err := s.GetStats(context.Background(), &StatsRequest{Refresh: true})
	assert.NoError(t, err)
}
