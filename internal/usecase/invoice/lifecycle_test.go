package invoice

import (
	"context"
	"testing"
	"time"

	"github.com/ArthurMoreiraS/OperlyService/internal/httperr"

	domain "github.com/ArthurMoreiraS/OperlyService/internal/domain/invoice"
)

func TestIssueInvoice(t *testing.T) {
	repo := seededRepo()
	clk := fixedClock("2026-03-16 10:00")
	create := NewCreateInvoice(repo, clk, nil)
	issue := NewIssueInvoice(repo, clk, nil)
	ctx := context.Background()

	draft, err := create.Execute(ctx, testBusinessID, domain.CreateInput{
		CustomerID: "cust-1",
		Items:      []domain.ItemInput{{Description: "Item", Quantity: 1, UnitPrice: dec("50.00")}},
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	due := time.Date(2026, 3, 30, 0, 0, 0, 0, time.UTC)
	inv, err := issue.Execute(ctx, testBusinessID, draft.ID, &due)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if inv.Status != string(domain.StatusPending) {
		t.Errorf("status = %s, want PENDING", inv.Status)
	}
	if inv.IssuedAt == nil {
		t.Errorf("issued_at not stamped")
	}
	if inv.DueDate == nil || !inv.DueDate.Equal(due) {
		t.Errorf("due date not applied")
	}

	// issuing twice is a conflict
	_, err = issue.Execute(ctx, testBusinessID, draft.ID, nil)
	assertCode(t, err, "invoice_not_draft")
	if !httperr.IsKind(err, httperr.KindConflict) {
		t.Errorf("expected conflict kind, got %v", err)
	}
}

func TestCancelInvoiceGuards(t *testing.T) {
	repo := seededRepo()
	clk := fixedClock("2026-03-16 11:00")
	cancel := NewCancelInvoice(repo, nil)
	add := NewAddPayment(repo, clk, nil)
	ctx := context.Background()

	inv := issuedInvoice(t, repo)

	// partially paid invoices can still be cancelled
	if _, err := add.Execute(ctx, testBusinessID, inv.ID, AddPaymentInput{
		Amount: dec("30.00"), Method: domain.MethodCash,
	}); err != nil {
		t.Fatalf("payment: %v", err)
	}
	out, err := cancel.Execute(ctx, testBusinessID, inv.ID)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if out.Status != string(domain.StatusCancelled) {
		t.Errorf("status = %s, want CANCELLED", out.Status)
	}

	_, err = cancel.Execute(ctx, testBusinessID, inv.ID)
	assertCode(t, err, "invoice_already_cancelled")

	paid := issuedInvoice(t, repo)
	if _, err := add.Execute(ctx, testBusinessID, paid.ID, AddPaymentInput{
		Amount: dec("120.00"), Method: domain.MethodPix,
	}); err != nil {
		t.Fatalf("payment: %v", err)
	}
	_, err = cancel.Execute(ctx, testBusinessID, paid.ID)
	assertCode(t, err, "invoice_already_paid")
}

func TestUpdateInvoiceDraftOnly(t *testing.T) {
	repo := seededRepo()
	clk := fixedClock("2026-03-16 10:00")
	create := NewCreateInvoice(repo, clk, nil)
	update := NewUpdateInvoice(repo, nil)
	ctx := context.Background()

	draft, err := create.Execute(ctx, testBusinessID, domain.CreateInput{
		CustomerID: "cust-1",
		Items:      []domain.ItemInput{{Description: "Item", Quantity: 2, UnitPrice: dec("50.00")}},
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	discount := dec("25.00")
	notes := "fidelidade"
	inv, err := update.Execute(ctx, testBusinessID, draft.ID, domain.UpdateInput{
		Discount: &discount,
		Notes:    &notes,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !inv.Total.Equal(dec("75.00")) {
		t.Errorf("total = %s, want 75.00 after discount", inv.Total)
	}
	if inv.Notes != "fidelidade" {
		t.Errorf("notes = %q", inv.Notes)
	}

	bad := dec("200.00")
	_, err = update.Execute(ctx, testBusinessID, draft.ID, domain.UpdateInput{Discount: &bad})
	assertCode(t, err, "invalid_discount")

	issued := issuedInvoice(t, repo)
	_, err = update.Execute(ctx, testBusinessID, issued.ID, domain.UpdateInput{Notes: &notes})
	assertCode(t, err, "invoice_not_draft")
}

func TestGetInvoiceTenantScope(t *testing.T) {
	repo := seededRepo()
	get := NewGetInvoice(repo)
	ctx := context.Background()

	inv := issuedInvoice(t, repo)

	if _, err := get.Execute(ctx, testBusinessID, inv.ID); err != nil {
		t.Fatalf("get: %v", err)
	}
	_, err := get.Execute(ctx, "biz-other", inv.ID)
	assertCode(t, err, "invoice_not_found")
}

func TestListInvoicesFilterAndPaging(t *testing.T) {
	repo := seededRepo()
	list := NewListInvoices(repo)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		issuedInvoice(t, repo)
	}
	create := NewCreateInvoice(repo, fixedClock("2026-03-16 10:00"), nil)
	if _, err := create.Execute(ctx, testBusinessID, domain.CreateInput{
		CustomerID: "cust-1",
		Items:      []domain.ItemInput{{Description: "Item", Quantity: 1, UnitPrice: dec("10.00")}},
	}); err != nil {
		t.Fatalf("seed draft: %v", err)
	}

	pending, total, err := list.Execute(ctx, testBusinessID, domain.ListFilter{
		Status: string(domain.StatusPending),
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 3 || len(pending) != 3 {
		t.Errorf("pending = %d/%d, want 3/3", len(pending), total)
	}

	page, total, err := list.Execute(ctx, testBusinessID, domain.ListFilter{Page: 2, Limit: 3})
	if err != nil {
		t.Fatalf("list page: %v", err)
	}
	if total != 4 || len(page) != 1 {
		t.Errorf("page 2 = %d of %d, want 1 of 4", len(page), total)
	}
}
