// Package mirror keeps an in-memory read model of one actor's recent time
// entries and payment records, converged from at-least-once, possibly
// out-of-order change events. Merges are idempotent and commutative:
// last-writer-wins keyed by the event's own timestamp.
package mirror

import (
	"context"
	"sync"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/tracking/model"
)

type EntryEvent struct {
	Type  model.ChangeType
	At    time.Time
	Entry model.TimeEntry
}

type PaymentEvent struct {
	Type    model.ChangeType
	At      time.Time
	Payment model.PaymentRecord
}

// Fetcher resolves records the mirror has never seen. An update for an
// unknown id must not be dropped; the mirror pulls the full record instead.
type Fetcher interface {
	FetchEntry(ctx context.Context, id int64) (*model.TimeEntry, error)
	FetchPayment(ctx context.Context, id int64) (*model.PaymentRecord, error)
}

type Option func(*Mirror)

// WithClock overrides the wall clock used for the today/week windows.
func WithClock(now func() time.Time) Option {
	return func(m *Mirror) { m.now = now }
}

// WithPaymentChangeHook registers a callback fired after any payment merge,
// so derived statistics can be invalidated.
func WithPaymentChangeHook(hook func(actorID string)) Option {
	return func(m *Mirror) { m.onPaymentChange = hook }
}

// Mirror is an explicitly owned handle: the owner seeds it, feeds it events,
// and drops it on scope change or teardown. There is no package-level state.
type Mirror struct {
	actorID string
	fetch   Fetcher
	now     func() time.Time

	onPaymentChange func(actorID string)

	mu            sync.RWMutex
	entries       []model.TimeEntry
	payments      []model.PaymentRecord
	entryApplied  map[int64]time.Time
	payApplied    map[int64]time.Time
	entryDeleted  map[int64]time.Time
	payDeleted    map[int64]time.Time
}

func New(actorID string, fetch Fetcher, opts ...Option) *Mirror {
	m := &Mirror{
		actorID:      actorID,
		fetch:        fetch,
		now:          time.Now,
		entryApplied: make(map[int64]time.Time),
		payApplied:   make(map[int64]time.Time),
		entryDeleted: make(map[int64]time.Time),
		payDeleted:   make(map[int64]time.Time),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Mirror) ActorID() string { return m.actorID }

// Seed loads the initial collections from the authoritative store. Events
// applied before the seed win over seeded rows only if they are newer, which
// the per-id applied timestamps already guarantee.
func (m *Mirror) Seed(entries []model.TimeEntry, payments []model.PaymentRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range entries {
		if _, seen := m.entryApplied[e.ID]; seen {
			continue
		}
		if _, gone := m.entryDeleted[e.ID]; gone {
			continue
		}
		m.entries = append(m.entries, e)
	}
	for _, p := range payments {
		if _, seen := m.payApplied[p.ID]; seen {
			continue
		}
		if _, gone := m.payDeleted[p.ID]; gone {
			continue
		}
		m.payments = append(m.payments, p)
	}
}

// ApplyEntry merges one entry change event. Applying the same event twice,
// or a created/updated pair in either order, converges to the same state.
func (m *Mirror) ApplyEntry(ctx context.Context, ev EntryEvent) error {
	if ev.Type != model.ChangeDeleted && ev.Entry.ActorID != m.actorID {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id := ev.Entry.ID
	switch ev.Type {
	case model.ChangeDeleted:
		if last, ok := m.entryDeleted[id]; !ok || ev.At.After(last) {
			m.entryDeleted[id] = ev.At
		}
		m.entries = removeEntry(m.entries, id)
		return nil

	case model.ChangeCreated, model.ChangeUpdated:
		if gone, ok := m.entryDeleted[id]; ok && !ev.At.After(gone) {
			return nil
		}
		if last, ok := m.entryApplied[id]; ok && !ev.At.After(last) {
			return nil
		}

		record := ev.Entry
		if ev.Type == model.ChangeUpdated && !containsEntry(m.entries, id) {
			if _, seen := m.entryApplied[id]; !seen {
				// Update for a record we never held: converge by fetching the
				// full row rather than guessing at a partial payload.
				full, err := m.fetchEntryLocked(ctx, id)
				if err != nil {
					return err
				}
				if full == nil || full.ActorID != m.actorID {
					return nil
				}
				record = *full
			}
		}

		m.entryApplied[id] = ev.At
		m.entries = upsertEntry(m.entries, record)
		return nil

	default:
		rlog.Warn("dropping malformed entry event", "type", ev.Type, "id", id)
		return nil
	}
}

// ApplyPayment merges one payment change event with the same discipline as
// ApplyEntry and fires the payment-change hook on success.
func (m *Mirror) ApplyPayment(ctx context.Context, ev PaymentEvent) error {
	if ev.Type != model.ChangeDeleted && ev.Payment.PayeeID != m.actorID {
		return nil
	}

	m.mu.Lock()
	id := ev.Payment.ID
	changed := false

	switch ev.Type {
	case model.ChangeDeleted:
		if last, ok := m.payDeleted[id]; !ok || ev.At.After(last) {
			m.payDeleted[id] = ev.At
		}
		before := len(m.payments)
		m.payments = removePayment(m.payments, id)
		changed = len(m.payments) != before

	case model.ChangeCreated, model.ChangeUpdated:
		stale := false
		if gone, ok := m.payDeleted[id]; ok && !ev.At.After(gone) {
			stale = true
		}
		if last, ok := m.payApplied[id]; ok && !ev.At.After(last) {
			stale = true
		}
		if !stale {
			record := ev.Payment
			if ev.Type == model.ChangeUpdated && !containsPayment(m.payments, id) {
				if _, seen := m.payApplied[id]; !seen {
					full, err := m.fetchPaymentLocked(ctx, id)
					if err != nil {
						m.mu.Unlock()
						return err
					}
					if full == nil || full.PayeeID != m.actorID {
						m.mu.Unlock()
						return nil
					}
					record = *full
				}
			}
			m.payApplied[id] = ev.At
			m.payments = upsertPayment(m.payments, record)
			changed = true
		}

	default:
		rlog.Warn("dropping malformed payment event", "type", ev.Type, "id", id)
	}
	m.mu.Unlock()

	if changed && m.onPaymentChange != nil {
		m.onPaymentChange(m.actorID)
	}
	return nil
}

func (m *Mirror) fetchEntryLocked(ctx context.Context, id int64) (*model.TimeEntry, error) {
	full, err := m.fetch.FetchEntry(ctx, id)
	if err != nil {
		if errs.Code(err) == errs.NotFound {
			// Deleted remotely before we caught up.
			return nil, nil
		}
		return nil, err
	}
	return full, nil
}

func (m *Mirror) fetchPaymentLocked(ctx context.Context, id int64) (*model.PaymentRecord, error) {
	full, err := m.fetch.FetchPayment(ctx, id)
	if err != nil {
		if errs.Code(err) == errs.NotFound {
			return nil, nil
		}
		return nil, err
	}
	return full, nil
}

// Today returns the entries whose work started today, newest first.
func (m *Mirror) Today() []model.TimeEntry {
	now := m.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return m.entriesSince(start)
}

// Week returns the entries whose work started in the current ISO week
// (Monday 00:00), newest first.
func (m *Mirror) Week() []model.TimeEntry {
	now := m.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	start = start.AddDate(0, 0, -(weekday - 1))
	return m.entriesSince(start)
}

func (m *Mirror) entriesSince(cutoff time.Time) []model.TimeEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.TimeEntry, 0, len(m.entries))
	for _, e := range m.entries {
		if !e.StartedAt.Before(cutoff) {
			out = append(out, e)
		}
	}
	return out
}

// Payments returns a copy of the mirrored payment records.
func (m *Mirror) Payments() []model.PaymentRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.PaymentRecord, len(m.payments))
	copy(out, m.payments)
	return out
}

func containsEntry(list []model.TimeEntry, id int64) bool {
	for i := range list {
		if list[i].ID == id {
			return true
		}
	}
	return false
}

func upsertEntry(list []model.TimeEntry, e model.TimeEntry) []model.TimeEntry {
	for i := range list {
		if list[i].ID == e.ID {
			list[i] = e
			return list
		}
	}
	return append([]model.TimeEntry{e}, list...)
}

func removeEntry(list []model.TimeEntry, id int64) []model.TimeEntry {
	for i := range list {
		if list[i].ID == id {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

func containsPayment(list []model.PaymentRecord, id int64) bool {
	for i := range list {
		if list[i].ID == id {
			return true
		}
	}
	return false
}

func upsertPayment(list []model.PaymentRecord, p model.PaymentRecord) []model.PaymentRecord {
	for i := range list {
		if list[i].ID == p.ID {
			list[i] = p
			return list
		}
	}
	return append([]model.PaymentRecord{p}, list...)
}

func removePayment(list []model.PaymentRecord, id int64) []model.PaymentRecord {
	for i := range list {
		if list[i].ID == id {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
