package invoice

import (
	"context"
	"time"

	"github.com/ArthurMoreiraS/OperlyService/internal/audit"
	"github.com/ArthurMoreiraS/OperlyService/internal/clock"
	"github.com/ArthurMoreiraS/OperlyService/internal/httperr"
	"github.com/ArthurMoreiraS/OperlyService/internal/models"

	domain "github.com/ArthurMoreiraS/OperlyService/internal/domain/invoice"
)

// IssueInvoice moves DRAFT to PENDING and stamps issued_at.
type IssueInvoice struct {
	repo  domain.Repository
	clock clock.Clock
	audit *audit.Dispatcher
}

func NewIssueInvoice(
	repo domain.Repository,
	clk clock.Clock,
	audit *audit.Dispatcher,
) *IssueInvoice {
	return &IssueInvoice{
		repo:  repo,
		clock: clk,
		audit: audit,
	}
}

func (uc *IssueInvoice) Execute(
	ctx context.Context,
	businessID string,
	invoiceID string,
	dueDate *time.Time,
) (*models.Invoice, error) {

	inv, err := uc.repo.GetInvoice(ctx, businessID, invoiceID)
	if err != nil {
		return nil, httperr.NotFound("invoice_not_found")
	}

	if domain.Status(inv.Status) != domain.StatusDraft {
		return nil, httperr.Conflict("invoice_not_draft")
	}

	now := uc.clock.Now()
	inv.Status = string(domain.StatusPending)
	inv.IssuedAt = &now
	if dueDate != nil {
		inv.DueDate = dueDate
	}

	if err := uc.repo.UpdateInvoice(ctx, inv); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: businessID,
		Action:     "invoice_issued",
		Entity:     "invoice",
		EntityID:   inv.ID,
	})

	return inv, nil
}
