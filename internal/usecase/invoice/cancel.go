package invoice

import (
	"context"

	"github.com/ArthurMoreiraS/OperlyService/internal/audit"
	"github.com/ArthurMoreiraS/OperlyService/internal/httperr"
	"github.com/ArthurMoreiraS/OperlyService/internal/models"

	domain "github.com/ArthurMoreiraS/OperlyService/internal/domain/invoice"
)

// CancelInvoice is irreversible and allowed from any status except PAID
// and CANCELLED.
type CancelInvoice struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelInvoice(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelInvoice {
	return &CancelInvoice{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelInvoice) Execute(
	ctx context.Context,
	businessID string,
	invoiceID string,
) (*models.Invoice, error) {

	inv, err := uc.repo.GetInvoice(ctx, businessID, invoiceID)
	if err != nil {
		return nil, httperr.NotFound("invoice_not_found")
	}

	switch domain.Status(inv.Status) {
	case domain.StatusPaid:
		return nil, httperr.Conflict("invoice_already_paid")
	case domain.StatusCancelled:
		return nil, httperr.Conflict("invoice_already_cancelled")
	}

	inv.Status = string(domain.StatusCancelled)

	if err := uc.repo.UpdateInvoice(ctx, inv); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: businessID,
		Action:     "invoice_cancelled",
		Entity:     "invoice",
		EntityID:   inv.ID,
	})

	return inv, nil
}
