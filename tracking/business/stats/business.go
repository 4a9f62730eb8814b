package stats

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/tracking/model"
	"encore.app/tracking/repository/entries"
	"encore.app/tracking/repository/payments"
)

type Business interface {
	Snapshot(ctx context.Context, actorID string) (*model.Stats, error)
	Forecast(ctx context.Context, actorID string, monthsAhead int) (*model.Forecast, error)
	MovingAverage(ctx context.Context, actorID string, periods int) ([]model.MonthlyEarnings, error)

	// Invalidate drops the cached snapshot after a payment change event.
	Invalidate(actorID string)
}

type business struct {
	entryRepo   entries.Querier
	paymentRepo payments.Querier
	now         func() time.Time

	mu    sync.Mutex
	cache map[string]*model.Stats
}

func NewStatsBusiness(entryRepo entries.Querier, paymentRepo payments.Querier) Business {
	return &business{
		entryRepo:   entryRepo,
		paymentRepo: paymentRepo,
		now:         time.Now,
		cache:       make(map[string]*model.Stats),
	}
}

func (b *business) Invalidate(actorID string) {
	b.mu.Lock()
	delete(b.cache, actorID)
	b.mu.Unlock()
}

func (b *business) Snapshot(ctx context.Context, actorID string) (*model.Stats, error) {
	b.mu.Lock()
	if cached, ok := b.cache[actorID]; ok {
		b.mu.Unlock()
		return cached, nil
	}
	b.mu.Unlock()

	snapshot, err := b.compute(ctx, actorID)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	b.cache[actorID] = snapshot
	b.mu.Unlock()
	return snapshot, nil
}

func (b *business) compute(ctx context.Context, actorID string) (*model.Stats, error) {
	now := b.now()

	totals, err := b.entryRepo.StatsTotals(ctx, actorID)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to aggregate entries"}
	}

	earnings, err := b.paymentRepo.EarningsTotals(ctx, actorID)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to aggregate earnings"}
	}

	counts, err := b.paymentRepo.StatusCounts(ctx, actorID)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to count payment statuses"}
	}
	statusCounts := make(map[model.PaymentStatus]int64, len(counts))
	for _, c := range counts {
		statusCounts[model.PaymentStatus(c.Status)] = c.Count
	}

	series, err := b.monthlySeries(ctx, actorID, 2)
	if err != nil {
		return nil, err
	}
	previous := series[0].AmountCents
	current := series[1].AmountCents
	growth, trend := Growth(current, previous)

	return &model.Stats{
		TotalEarnedCents:   earnings.PaidCents,
		PendingCents:       earnings.PendingCents,
		TotalMinutes:       totals.TotalMinutes,
		TotalHours:         float64(totals.TotalMinutes) / 60,
		DistinctScopes:     totals.DistinctScopes,
		AverageHourlyCents: AverageHourlyCents(earnings.PaidCents, totals.TotalMinutes),
		StatusCounts:       statusCounts,
		CurrentMonthCents:  current,
		PreviousMonthCents: previous,
		GrowthPercent:      growth,
		Trend:              trend,
		GeneratedAt:        now,
	}, nil
}

func (b *business) Forecast(ctx context.Context, actorID string, monthsAhead int) (*model.Forecast, error) {
	if monthsAhead <= 0 || monthsAhead > 12 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "months ahead must be between 1 and 12"}
	}

	series, err := b.monthlySeries(ctx, actorID, forecastWindow)
	if err != nil {
		return nil, err
	}
	forecast := Forecast(series, monthsAhead)
	return &forecast, nil
}

func (b *business) MovingAverage(ctx context.Context, actorID string, periods int) ([]model.MonthlyEarnings, error) {
	if periods <= 0 || periods > 12 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "periods must be between 1 and 12"}
	}

	series, err := b.monthlySeries(ctx, actorID, periods*2)
	if err != nil {
		return nil, err
	}
	return MovingAverage(series, periods), nil
}

// monthlySeries returns a dense n-month paid-earnings series ending at the
// current month.
func (b *business) monthlySeries(ctx context.Context, actorID string, n int) ([]model.MonthlyEarnings, error) {
	now := b.now()
	since := MonthStart(now).AddDate(0, -(n - 1), 0)

	rows, err := b.paymentRepo.MonthlyEarnings(ctx, payments.MonthlyEarningsParams{
		PayeeID: actorID,
		Since:   pgtype.Timestamptz{Time: since, Valid: true},
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load monthly earnings"}
	}

	sparse := make([]model.MonthlyEarnings, 0, len(rows))
	for _, r := range rows {
		sparse = append(sparse, model.MonthlyEarnings{Month: r.Month.Time, AmountCents: r.AmountCents})
	}
	return FillMonths(sparse, now, n), nil
}
