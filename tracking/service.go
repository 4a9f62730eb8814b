package tracking

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"encore.dev/beta/auth"
	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"encore.app/tracking/business/payment"
	"encore.app/tracking/business/session"
	"encore.app/tracking/business/stats"
	"encore.app/tracking/domain"
	"encore.app/tracking/mirror"
	"encore.app/tracking/model"
	"encore.app/tracking/repository"
	"encore.app/tracking/repository/entries"
	"encore.app/tracking/repository/payments"
	"encore.app/tracking/workflow"
)

var trackingDB = sqldb.NewDatabase("tracking", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

var validate = validator.New()

const taskQueue = "tracking-session-queue"

//encore:service
type Service struct {
	repo     *repository.Repository
	session  session.Business
	payments payment.Business
	stats    stats.Business

	temporal client.Client
	worker   worker.Worker

	mirrors *mirrorRegistry
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver(trackingDB)

	repo := repository.NewRepository(pgxdb)
	stateMachine := domain.NewPaymentStateMachine(pgxdb)

	sessionBusiness := session.NewSessionBusiness(repo.Entries, repo.Profiles)
	paymentBusiness := payment.NewPaymentBusiness(repo.Payments, repo.Entries, repo.Profiles, stateMachine)
	statsBusiness := stats.NewStatsBusiness(repo.Entries, repo.Payments)

	workflow.SetActivityDependencies(sessionBusiness)

	c, err := client.Dial(client.Options{})
	if err != nil {
		return nil, err
	}

	w := worker.New(c, taskQueue, worker.Options{})
	w.RegisterWorkflow(workflow.TrackingSession)
	w.RegisterActivity(workflow.PersistSessionProgressActivity)
	w.RegisterActivity(workflow.AutoStopSessionActivity)
	if err := w.Start(); err != nil {
		c.Close()
		return nil, err
	}

	s := &Service{
		repo:     repo,
		session:  sessionBusiness,
		payments: paymentBusiness,
		stats:    statsBusiness,
		temporal: c,
		worker:   w,
	}
	s.mirrors = newMirrorRegistry(s)
	return s, nil
}

func (s *Service) Shutdown(force context.Context) {
	s.worker.Stop()
	s.temporal.Close()
}

// currentActor returns the authenticated caller. All endpoints reading it are
// declared auth-required, so a UID is always present.
func currentActor() string {
	uid, _ := auth.UserID()
	return string(uid)
}

// mirrorIdleTTL bounds how long a mirror outlives the actor's last read.
// Idle mirrors are dropped and re-seeded from the database on the next read.
const mirrorIdleTTL = time.Hour

// mirrorRegistry owns the per-actor read mirrors. A mirror is created lazily
// on the actor's first read, seeded from the database, and fed change events
// afterwards until it idles out.
type mirrorRegistry struct {
	svc *Service

	mu       sync.Mutex
	m        map[string]*mirror.Mirror
	lastRead map[string]time.Time
}

func newMirrorRegistry(svc *Service) *mirrorRegistry {
	return &mirrorRegistry{
		svc:      svc,
		m:        make(map[string]*mirror.Mirror),
		lastRead: make(map[string]time.Time),
	}
}

// dropIdle removes mirrors whose actor has not read for mirrorIdleTTL.
// Callers must hold mu.
func (r *mirrorRegistry) dropIdle(now time.Time) {
	for actorID, last := range r.lastRead {
		if now.Sub(last) > mirrorIdleTTL {
			delete(r.m, actorID)
			delete(r.lastRead, actorID)
		}
	}
}

func (s *Service) existingMirror(actorID string) *mirror.Mirror {
	s.mirrors.mu.Lock()
	defer s.mirrors.mu.Unlock()
	return s.mirrors.m[actorID]
}

func (s *Service) allMirrors() []*mirror.Mirror {
	s.mirrors.mu.Lock()
	defer s.mirrors.mu.Unlock()
	out := make([]*mirror.Mirror, 0, len(s.mirrors.m))
	for _, m := range s.mirrors.m {
		out = append(out, m)
	}
	return out
}

// mirrorFor returns the actor's mirror, creating and seeding it on first use.
// Each read refreshes the actor's idle clock and sweeps out stale mirrors.
func (s *Service) mirrorFor(ctx context.Context, actorID string) (*mirror.Mirror, error) {
	now := time.Now()

	s.mirrors.mu.Lock()
	s.mirrors.dropIdle(now)
	if m, ok := s.mirrors.m[actorID]; ok {
		s.mirrors.lastRead[actorID] = now
		s.mirrors.mu.Unlock()
		return m, nil
	}
	s.mirrors.mu.Unlock()

	m := mirror.New(actorID, &repoFetcher{repo: s.repo},
		mirror.WithPaymentChangeHook(s.stats.Invalidate),
	)
	if err := s.seedMirror(ctx, m, actorID); err != nil {
		return nil, err
	}

	s.mirrors.mu.Lock()
	defer s.mirrors.mu.Unlock()
	s.mirrors.lastRead[actorID] = now
	if existing, ok := s.mirrors.m[actorID]; ok {
		// Another request seeded concurrently; keep the one already
		// receiving events.
		return existing, nil
	}
	s.mirrors.m[actorID] = m
	return m, nil
}

// seedMirror loads the actor's current week of entries and recent payments.
func (s *Service) seedMirror(ctx context.Context, m *mirror.Mirror, actorID string) error {
	now := time.Now()
	weekStart := startOfWeek(now)

	dbEntries, err := s.repo.Entries.ListEntriesBetween(ctx, entries.ListEntriesBetweenParams{
		ActorID: actorID,
		From:    pgtype.Timestamptz{Time: weekStart, Valid: true},
		To:      pgtype.Timestamptz{Time: now.Add(24 * time.Hour), Valid: true},
	})
	if err != nil {
		rlog.Error("failed to seed mirror entries", "actor_id", actorID, "error", err)
		return err
	}

	dbPayments, err := s.repo.Payments.ListPayments(ctx, payments.ListPaymentsParams{
		PayeeID: actorID,
		Limit:   200,
	})
	if err != nil {
		rlog.Error("failed to seed mirror payments", "actor_id", actorID, "error", err)
		return err
	}

	seedEntries := make([]model.TimeEntry, 0, len(dbEntries))
	for _, e := range dbEntries {
		seedEntries = append(seedEntries, *convertDBEntryToModel(e))
	}
	seedPayments := make([]model.PaymentRecord, 0, len(dbPayments))
	for _, p := range dbPayments {
		seedPayments = append(seedPayments, *convertDBPaymentToModel(p))
	}

	m.Seed(seedEntries, seedPayments)
	return nil
}

// startOfWeek returns midnight of the Monday of t's week.
func startOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return day.AddDate(0, 0, -(weekday - 1))
}

// repoFetcher resolves records the mirror has never seen directly from the
// authoritative store.
type repoFetcher struct {
	repo *repository.Repository
}

func (f *repoFetcher) FetchEntry(ctx context.Context, id int64) (*model.TimeEntry, error) {
	dbEntry, err := f.repo.Entries.GetEntry(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "time entry not found"}
		}
		return nil, err
	}
	return convertDBEntryToModel(dbEntry), nil
}

func (f *repoFetcher) FetchPayment(ctx context.Context, id int64) (*model.PaymentRecord, error) {
	dbPayment, err := f.repo.Payments.GetPayment(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "payment not found"}
		}
		return nil, err
	}
	return convertDBPaymentToModel(dbPayment), nil
}
