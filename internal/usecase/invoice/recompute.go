package invoice

import (
	"context"
	"time"

	"github.com/ArthurMoreiraS/OperlyService/internal/models"

	domain "github.com/ArthurMoreiraS/OperlyService/internal/domain/invoice"
)

// recompute rewrites paid_amount from the surviving payment rows and derives
// the status from it. Runs after every payment add or removal so the stored
// status can never drift from the payment state.
func recompute(
	ctx context.Context,
	repo domain.Repository,
	inv *models.Invoice,
	now time.Time,
) error {

	paid, err := repo.SumPayments(ctx, inv.ID)
	if err != nil {
		return err
	}
	inv.PaidAmount = paid

	status := domain.Derive(
		domain.Status(inv.Status) == domain.StatusCancelled,
		inv.IssuedAt != nil,
		paid,
		inv.Total,
		inv.DueDate,
		now,
	)

	switch status {
	case domain.StatusPaid:
		if inv.PaidAt == nil {
			inv.PaidAt = &now
		}
	default:
		inv.PaidAt = nil
	}

	inv.Status = string(status)
	return repo.UpdateInvoice(ctx, inv)
}
