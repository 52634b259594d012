package billing

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ArthurMoreiraS/OperlyService/internal/clock"
	"github.com/ArthurMoreiraS/OperlyService/internal/httperr"
	"github.com/ArthurMoreiraS/OperlyService/internal/timeutil"

	domain "github.com/ArthurMoreiraS/OperlyService/internal/domain/invoice"
)

// ======================================================
// TYPES
// ======================================================

type Period string

const (
	PeriodWeek  Period = "week"  // trailing 7 days
	PeriodMonth Period = "month" // calendar month to date
	PeriodYear  Period = "year"  // calendar year to date
)

type StatsInput struct {
	Period Period
	From   *time.Time
	To     *time.Time
}

type DayRevenue struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

type Stats struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`

	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalPending decimal.Decimal `json:"total_pending"`
	TotalOverdue decimal.Decimal `json:"total_overdue"`

	InvoiceCounts   map[string]int64           `json:"invoice_counts"`
	RevenueByMethod map[string]decimal.Decimal `json:"revenue_by_method"`
	RevenueByDay    []DayRevenue               `json:"revenue_by_day"`
}

// ======================================================
// USE CASE
// ======================================================

// GetStats is the read-only billing aggregator. Revenue figures are
// range-filtered by payment date; pending/overdue balances and the
// per-status counts are business-wide snapshots.
type GetStats struct {
	repo  domain.Repository
	clock clock.Clock
}

func NewGetStats(repo domain.Repository, clk clock.Clock) *GetStats {
	return &GetStats{repo: repo, clock: clk}
}

func (uc *GetStats) Execute(
	ctx context.Context,
	businessID string,
	in StatsInput,
) (*Stats, error) {

	from, to, err := uc.resolveRange(in)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		From:            from,
		To:              to,
		TotalRevenue:    decimal.Zero,
		TotalPending:    decimal.Zero,
		TotalOverdue:    decimal.Zero,
		RevenueByMethod: map[string]decimal.Decimal{},
	}

	// Revenue: PAID invoices whose paid_at falls inside the range.
	paid, err := uc.repo.ListPaidInvoicesInRange(ctx, businessID, from, to)
	if err != nil {
		return nil, err
	}
	for _, inv := range paid {
		stats.TotalRevenue = stats.TotalRevenue.Add(inv.Total)
	}

	// Outstanding balances are not range-filtered; they have no paid date yet.
	open, err := uc.repo.ListInvoicesByStatus(ctx, businessID, []string{
		string(domain.StatusPending),
		string(domain.StatusPartial),
		string(domain.StatusOverdue),
	})
	if err != nil {
		return nil, err
	}
	for _, inv := range open {
		balance := inv.Total.Sub(inv.PaidAmount)
		if domain.Status(inv.Status) == domain.StatusOverdue {
			stats.TotalOverdue = stats.TotalOverdue.Add(balance)
		} else {
			stats.TotalPending = stats.TotalPending.Add(balance)
		}
	}

	counts, err := uc.repo.CountInvoicesByStatus(ctx, businessID)
	if err != nil {
		return nil, err
	}
	stats.InvoiceCounts = counts

	payments, err := uc.repo.ListPaymentsInRange(ctx, businessID, from, to)
	if err != nil {
		return nil, err
	}

	byDay := map[string]decimal.Decimal{}
	for _, p := range payments {
		method := stats.RevenueByMethod[p.Method]
		stats.RevenueByMethod[p.Method] = method.Add(p.Amount)

		day := p.PaidAt.UTC().Format(timeutil.DateLayout)
		byDay[day] = byDay[day].Add(p.Amount)
	}

	stats.RevenueByDay = make([]DayRevenue, 0, len(byDay))
	for day, amount := range byDay {
		stats.RevenueByDay = append(stats.RevenueByDay, DayRevenue{Date: day, Amount: amount})
	}
	sort.Slice(stats.RevenueByDay, func(i, j int) bool {
		return stats.RevenueByDay[i].Date < stats.RevenueByDay[j].Date
	})

	return stats, nil
}

func (uc *GetStats) resolveRange(in StatsInput) (time.Time, time.Time, error) {
	if in.From != nil && in.To != nil {
		if in.To.Before(*in.From) {
			return time.Time{}, time.Time{}, httperr.BadRequest("invalid_range")
		}
		return in.From.UTC(), in.To.UTC(), nil
	}

	now := uc.clock.Now().UTC()
	switch in.Period {
	case PeriodWeek:
		return now.AddDate(0, 0, -7), now, nil
	case PeriodMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), now, nil
	case PeriodYear:
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC), now, nil
	default:
		return time.Time{}, time.Time{}, httperr.BadRequest("invalid_period")
	}
}
