package tracking

import (
	"context"
	"time"

	"encore.dev/pubsub"
	"encore.dev/rlog"

	"encore.app/tracking/mirror"
	"encore.app/tracking/model"
)

// EntryChangeEvent is published after any time-entry mutation. It carries
// the full record so consumers can merge without a read-back, plus the
// mutation timestamp for last-writer-wins ordering. Delivery is
// at-least-once and unordered; the mirror is built to absorb both.
type EntryChangeEvent struct {
	Type  model.ChangeType `json:"type"`
	At    time.Time        `json:"at"`
	Entry model.TimeEntry  `json:"entry"`
}

// PaymentChangeEvent is the payment counterpart of EntryChangeEvent.
type PaymentChangeEvent struct {
	Type    model.ChangeType    `json:"type"`
	At      time.Time           `json:"at"`
	Payment model.PaymentRecord `json:"payment"`
}

var EntryEvents = pubsub.NewTopic[*EntryChangeEvent]("entry-changes", pubsub.TopicConfig{
	DeliveryGuarantee: pubsub.AtLeastOnce,
})

var PaymentEvents = pubsub.NewTopic[*PaymentChangeEvent]("payment-changes", pubsub.TopicConfig{
	DeliveryGuarantee: pubsub.AtLeastOnce,
})

var _ = pubsub.NewSubscription(EntryEvents, "mirror-entry-changes", pubsub.SubscriptionConfig[*EntryChangeEvent]{
	Handler: pubsub.MethodHandler((*Service).applyEntryEvent),
})

var _ = pubsub.NewSubscription(PaymentEvents, "mirror-payment-changes", pubsub.SubscriptionConfig[*PaymentChangeEvent]{
	Handler: pubsub.MethodHandler((*Service).applyPaymentEvent),
})

// applyEntryEvent routes an entry change into the owning actor's mirror.
// Actors without a live mirror have nothing to reconcile; their next read
// seeds from the database, which already includes this change.
func (s *Service) applyEntryEvent(ctx context.Context, ev *EntryChangeEvent) error {
	event := mirror.EntryEvent{Type: ev.Type, At: ev.At, Entry: ev.Entry}

	if ev.Entry.ActorID != "" {
		// Completed and deleted entries move the actor's lifetime figures.
		s.stats.Invalidate(ev.Entry.ActorID)
		if m := s.existingMirror(ev.Entry.ActorID); m != nil {
			return m.ApplyEntry(ctx, event)
		}
		return nil
	}

	// A delete notification may arrive with only the record id. Fan it out;
	// mirrors that never held the entry treat it as a no-op tombstone.
	for _, m := range s.allMirrors() {
		s.stats.Invalidate(m.ActorID())
		if err := m.ApplyEntry(ctx, event); err != nil {
			rlog.Error("failed to apply entry delete", "actor_id", m.ActorID(), "entry_id", ev.Entry.ID, "error", err)
		}
	}
	return nil
}

func (s *Service) applyPaymentEvent(ctx context.Context, ev *PaymentChangeEvent) error {
	event := mirror.PaymentEvent{Type: ev.Type, At: ev.At, Payment: ev.Payment}

	if ev.Payment.PayeeID != "" {
		s.stats.Invalidate(ev.Payment.PayeeID)
		if m := s.existingMirror(ev.Payment.PayeeID); m != nil {
			return m.ApplyPayment(ctx, event)
		}
		return nil
	}

	for _, m := range s.allMirrors() {
		s.stats.Invalidate(m.ActorID())
		if err := m.ApplyPayment(ctx, event); err != nil {
			rlog.Error("failed to apply payment delete", "actor_id", m.ActorID(), "payment_id", ev.Payment.ID, "error", err)
		}
	}
	return nil
}

// publishEntryChange emits a change event in the background; publishing must
// never fail the originating request.
func (s *Service) publishEntryChange(changeType model.ChangeType, entry model.TimeEntry) {
	at := time.Now()
	runAsync("publish entry change", func(ctx context.Context) error {
		_, err := EntryEvents.Publish(ctx, &EntryChangeEvent{Type: changeType, At: at, Entry: entry})
		return err
	})
}

func (s *Service) publishPaymentChange(changeType model.ChangeType, payment model.PaymentRecord) {
	at := time.Now()
	runAsync("publish payment change", func(ctx context.Context) error {
		_, err := PaymentEvents.Publish(ctx, &PaymentChangeEvent{Type: changeType, At: at, Payment: payment})
		return err
	})
}
