package billing

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ArthurMoreiraS/OperlyService/internal/clock"
	"github.com/ArthurMoreiraS/OperlyService/internal/httperr"
	"github.com/ArthurMoreiraS/OperlyService/internal/models"

	domain "github.com/ArthurMoreiraS/OperlyService/internal/domain/invoice"
)

const testBusinessID = "biz-1"

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func ts(value string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", value)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func tsPtr(value string) *time.Time {
	t := ts(value)
	return &t
}

// seededRepo builds a month of billing activity for biz-1 plus one foreign
// invoice that must never leak into the aggregates.
func seededRepo() *fakeRepo {
	repo := newFakeRepo()

	repo.addInvoice(models.Invoice{
		ID: "inv-paid-1", BusinessID: testBusinessID, Number: "NF-0001",
		Status: string(domain.StatusPaid),
		Total:  dec("120.00"), PaidAmount: dec("120.00"),
		PaidAt: tsPtr("2026-03-10 14:00"),
	})
	repo.addPayment(models.Payment{
		ID: "pay-1", InvoiceID: "inv-paid-1",
		Amount: dec("50.00"), Method: string(domain.MethodPix),
		PaidAt: ts("2026-03-09 09:00"),
	})
	repo.addPayment(models.Payment{
		ID: "pay-2", InvoiceID: "inv-paid-1",
		Amount: dec("70.00"), Method: string(domain.MethodCash),
		PaidAt: ts("2026-03-10 14:00"),
	})

	repo.addInvoice(models.Invoice{
		ID: "inv-paid-2", BusinessID: testBusinessID, Number: "NF-0002",
		Status: string(domain.StatusPaid),
		Total:  dec("80.00"), PaidAmount: dec("80.00"),
		PaidAt: tsPtr("2026-03-10 16:30"),
	})
	repo.addPayment(models.Payment{
		ID: "pay-3", InvoiceID: "inv-paid-2",
		Amount: dec("80.00"), Method: string(domain.MethodPix),
		PaidAt: ts("2026-03-10 16:30"),
	})

	repo.addInvoice(models.Invoice{
		ID: "inv-partial", BusinessID: testBusinessID, Number: "NF-0003",
		Status: string(domain.StatusPartial),
		Total:  dec("200.00"), PaidAmount: dec("60.00"),
	})
	repo.addPayment(models.Payment{
		ID: "pay-4", InvoiceID: "inv-partial",
		Amount: dec("60.00"), Method: string(domain.MethodCreditCard),
		PaidAt: ts("2026-03-12 11:00"),
	})

	repo.addInvoice(models.Invoice{
		ID: "inv-overdue", BusinessID: testBusinessID, Number: "NF-0004",
		Status: string(domain.StatusOverdue),
		Total:  dec("90.00"), PaidAmount: decimal.Zero,
		DueDate: tsPtr("2026-03-01 00:00"),
	})

	repo.addInvoice(models.Invoice{
		ID: "inv-draft", BusinessID: testBusinessID, Number: "NF-0005",
		Status: string(domain.StatusDraft),
		Total:  dec("40.00"), PaidAmount: decimal.Zero,
	})

	// paid before the queried range
	repo.addInvoice(models.Invoice{
		ID: "inv-old", BusinessID: testBusinessID, Number: "NF-0006",
		Status: string(domain.StatusPaid),
		Total:  dec("500.00"), PaidAmount: dec("500.00"),
		PaidAt: tsPtr("2026-01-05 10:00"),
	})
	repo.addPayment(models.Payment{
		ID: "pay-old", InvoiceID: "inv-old",
		Amount: dec("500.00"), Method: string(domain.MethodCash),
		PaidAt: ts("2026-01-05 10:00"),
	})

	// another tenant entirely
	repo.addInvoice(models.Invoice{
		ID: "inv-foreign", BusinessID: "biz-other", Number: "NF-0001",
		Status: string(domain.StatusPaid),
		Total:  dec("999.00"), PaidAmount: dec("999.00"),
		PaidAt: tsPtr("2026-03-10 12:00"),
	})
	repo.addPayment(models.Payment{
		ID: "pay-foreign", InvoiceID: "inv-foreign",
		Amount: dec("999.00"), Method: string(domain.MethodPix),
		PaidAt: ts("2026-03-10 12:00"),
	})

	return repo
}

func TestStatsMonthToDate(t *testing.T) {
	repo := seededRepo()
	uc := NewGetStats(repo, clock.Fixed(ts("2026-03-15 18:00")))

	stats, err := uc.Execute(context.Background(), testBusinessID, StatsInput{Period: PeriodMonth})
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	// inv-paid-1 + inv-paid-2; inv-old fell outside the month
	if !stats.TotalRevenue.Equal(dec("200.00")) {
		t.Errorf("total revenue = %s, want 200.00", stats.TotalRevenue)
	}
	// outstanding balance of the partial invoice
	if !stats.TotalPending.Equal(dec("140.00")) {
		t.Errorf("total pending = %s, want 140.00", stats.TotalPending)
	}
	if !stats.TotalOverdue.Equal(dec("90.00")) {
		t.Errorf("total overdue = %s, want 90.00", stats.TotalOverdue)
	}

	if stats.InvoiceCounts[string(domain.StatusPaid)] != 3 {
		t.Errorf("paid count = %d, want 3 (counts are business-wide)", stats.InvoiceCounts[string(domain.StatusPaid)])
	}
	if stats.InvoiceCounts[string(domain.StatusDraft)] != 1 {
		t.Errorf("draft count = %d, want 1", stats.InvoiceCounts[string(domain.StatusDraft)])
	}
}

func TestStatsRevenueByMethodAndDay(t *testing.T) {
	repo := seededRepo()
	uc := NewGetStats(repo, clock.Fixed(ts("2026-03-15 18:00")))

	stats, err := uc.Execute(context.Background(), testBusinessID, StatsInput{Period: PeriodMonth})
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	if !stats.RevenueByMethod[string(domain.MethodPix)].Equal(dec("130.00")) {
		t.Errorf("pix = %s, want 130.00", stats.RevenueByMethod[string(domain.MethodPix)])
	}
	if !stats.RevenueByMethod[string(domain.MethodCash)].Equal(dec("70.00")) {
		t.Errorf("cash = %s, want 70.00", stats.RevenueByMethod[string(domain.MethodCash)])
	}
	if !stats.RevenueByMethod[string(domain.MethodCreditCard)].Equal(dec("60.00")) {
		t.Errorf("credit card = %s, want 60.00", stats.RevenueByMethod[string(domain.MethodCreditCard)])
	}

	want := []DayRevenue{
		{Date: "2026-03-09", Amount: dec("50.00")},
		{Date: "2026-03-10", Amount: dec("150.00")},
		{Date: "2026-03-12", Amount: dec("60.00")},
	}
	if len(stats.RevenueByDay) != len(want) {
		t.Fatalf("revenue by day has %d entries, want %d", len(stats.RevenueByDay), len(want))
	}
	for i, w := range want {
		got := stats.RevenueByDay[i]
		if got.Date != w.Date || !got.Amount.Equal(w.Amount) {
			t.Errorf("day[%d] = %s %s, want %s %s", i, got.Date, got.Amount, w.Date, w.Amount)
		}
	}
}

func TestStatsExplicitRangeExcludesBoundary(t *testing.T) {
	repo := seededRepo()
	uc := NewGetStats(repo, clock.Fixed(ts("2026-03-15 18:00")))

	from := ts("2026-01-01 00:00")
	to := ts("2026-03-10 14:00") // pay-2 lands exactly here
	stats, err := uc.Execute(context.Background(), testBusinessID, StatsInput{From: &from, To: &to})
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	// only inv-old settled strictly before the upper bound
	if !stats.TotalRevenue.Equal(dec("500.00")) {
		t.Errorf("total revenue = %s, want 500.00", stats.TotalRevenue)
	}
	// the half-open range drops the payment at the upper bound
	if !stats.RevenueByMethod[string(domain.MethodCash)].Equal(dec("500.00")) {
		t.Errorf("cash = %s, want 500.00", stats.RevenueByMethod[string(domain.MethodCash)])
	}
}

func TestStatsRangeValidation(t *testing.T) {
	repo := seededRepo()
	uc := NewGetStats(repo, clock.Fixed(ts("2026-03-15 18:00")))
	ctx := context.Background()

	from := ts("2026-03-10 00:00")
	to := ts("2026-03-01 00:00")
	_, err := uc.Execute(ctx, testBusinessID, StatsInput{From: &from, To: &to})
	if !httperr.IsCode(err, "invalid_range") {
		t.Errorf("expected invalid_range, got %v", err)
	}

	_, err = uc.Execute(ctx, testBusinessID, StatsInput{Period: Period("quarter")})
	if !httperr.IsCode(err, "invalid_period") {
		t.Errorf("expected invalid_period, got %v", err)
	}
}

func TestStatsTenantIsolation(t *testing.T) {
	repo := seededRepo()
	uc := NewGetStats(repo, clock.Fixed(ts("2026-03-15 18:00")))

	stats, err := uc.Execute(context.Background(), "biz-other", StatsInput{Period: PeriodMonth})
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if !stats.TotalRevenue.Equal(dec("999.00")) {
		t.Errorf("foreign revenue = %s, want 999.00", stats.TotalRevenue)
	}
	if len(stats.RevenueByDay) != 1 {
		t.Errorf("foreign revenue by day = %d entries, want 1", len(stats.RevenueByDay))
	}
}
