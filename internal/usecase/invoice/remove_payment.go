package invoice

import (
	"context"

	"github.com/ArthurMoreiraS/OperlyService/internal/audit"
	"github.com/ArthurMoreiraS/OperlyService/internal/clock"
	"github.com/ArthurMoreiraS/OperlyService/internal/httperr"
	"github.com/ArthurMoreiraS/OperlyService/internal/models"

	domain "github.com/ArthurMoreiraS/OperlyService/internal/domain/invoice"
)

// RemovePayment deletes a recorded payment and re-derives the invoice
// status; this may walk PAID back to PARTIAL, or PARTIAL back to
// PENDING/OVERDUE.
type RemovePayment struct {
	repo  domain.Repository
	clock clock.Clock
	audit *audit.Dispatcher
}

func NewRemovePayment(
	repo domain.Repository,
	clk clock.Clock,
	audit *audit.Dispatcher,
) *RemovePayment {
	return &RemovePayment{
		repo:  repo,
		clock: clk,
		audit: audit,
	}
}

func (uc *RemovePayment) Execute(
	ctx context.Context,
	businessID string,
	invoiceID string,
	paymentID string,
) (*models.Invoice, error) {

	inv, err := uc.repo.GetInvoice(ctx, businessID, invoiceID)
	if err != nil {
		return nil, httperr.NotFound("invoice_not_found")
	}

	if domain.Status(inv.Status) == domain.StatusCancelled {
		return nil, httperr.BadRequest("invoice_cancelled")
	}

	payment, err := uc.repo.GetPayment(ctx, inv.ID, paymentID)
	if err != nil {
		return nil, httperr.NotFound("payment_not_found")
	}

	if err := uc.repo.DeletePayment(ctx, payment); err != nil {
		return nil, err
	}

	if err := recompute(ctx, uc.repo, inv, uc.clock.Now()); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: businessID,
		Action:     "payment_removed",
		Entity:     "invoice",
		EntityID:   inv.ID,
		Metadata:   map[string]string{"payment_id": payment.ID},
	})

	return inv, nil
}
