package invoice

import (
	"context"

	"github.com/ArthurMoreiraS/OperlyService/internal/audit"
	"github.com/ArthurMoreiraS/OperlyService/internal/httperr"
	"github.com/ArthurMoreiraS/OperlyService/internal/models"

	domain "github.com/ArthurMoreiraS/OperlyService/internal/domain/invoice"
)

// UpdateInvoice edits discount, due date and notes while the invoice is
// still a draft. The total is recomputed from the stored subtotal.
type UpdateInvoice struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateInvoice(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateInvoice {
	return &UpdateInvoice{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateInvoice) Execute(
	ctx context.Context,
	businessID string,
	invoiceID string,
	in domain.UpdateInput,
) (*models.Invoice, error) {

	inv, err := uc.repo.GetInvoice(ctx, businessID, invoiceID)
	if err != nil {
		return nil, httperr.NotFound("invoice_not_found")
	}

	if domain.Status(inv.Status) != domain.StatusDraft {
		return nil, httperr.Conflict("invoice_not_draft")
	}

	if in.Discount != nil {
		if in.Discount.IsNegative() || in.Discount.GreaterThan(inv.Subtotal) {
			return nil, httperr.BadRequest("invalid_discount")
		}
		inv.Discount = *in.Discount
		inv.Total = inv.Subtotal.Sub(inv.Discount)
	}
	if in.DueDate != nil {
		inv.DueDate = in.DueDate
	}
	if in.Notes != nil {
		inv.Notes = *in.Notes
	}

	if err := uc.repo.UpdateInvoice(ctx, inv); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: businessID,
		Action:     "invoice_updated",
		Entity:     "invoice",
		EntityID:   inv.ID,
	})

	return inv, nil
}
