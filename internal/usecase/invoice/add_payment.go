package invoice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ArthurMoreiraS/OperlyService/internal/audit"
	"github.com/ArthurMoreiraS/OperlyService/internal/clock"
	"github.com/ArthurMoreiraS/OperlyService/internal/httperr"
	"github.com/ArthurMoreiraS/OperlyService/internal/models"

	domain "github.com/ArthurMoreiraS/OperlyService/internal/domain/invoice"
)

// ======================================================
// INPUT
// ======================================================

type AddPaymentInput struct {
	Amount decimal.Decimal
	Method domain.PaymentMethod
	PaidAt *time.Time
	Notes  string
}

// ======================================================
// USE CASE
// ======================================================

type AddPayment struct {
	repo  domain.Repository
	clock clock.Clock
	audit *audit.Dispatcher
}

func NewAddPayment(
	repo domain.Repository,
	clk clock.Clock,
	audit *audit.Dispatcher,
) *AddPayment {
	return &AddPayment{
		repo:  repo,
		clock: clk,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *AddPayment) Execute(
	ctx context.Context,
	businessID string,
	invoiceID string,
	in AddPaymentInput,
) (*models.Invoice, error) {

	inv, err := uc.repo.GetInvoice(ctx, businessID, invoiceID)
	if err != nil {
		return nil, httperr.NotFound("invoice_not_found")
	}

	switch domain.Status(inv.Status) {
	case domain.StatusCancelled:
		return nil, httperr.BadRequest("invoice_cancelled")
	case domain.StatusDraft:
		return nil, httperr.BadRequest("invoice_not_issued")
	case domain.StatusPaid:
		return nil, httperr.BadRequest("invoice_already_paid")
	}

	if !in.Amount.IsPositive() {
		return nil, httperr.BadRequest("invalid_amount")
	}
	if !domain.IsValidMethod(in.Method) {
		return nil, httperr.BadRequest("invalid_payment_method")
	}

	// No overpayment: the amount may not exceed the outstanding balance.
	outstanding := inv.Total.Sub(inv.PaidAmount)
	if in.Amount.GreaterThan(outstanding) {
		return nil, httperr.BadRequest("overpayment")
	}

	now := uc.clock.Now()
	paidAt := now
	if in.PaidAt != nil {
		paidAt = *in.PaidAt
	}

	payment := &models.Payment{
		ID:        uuid.NewString(),
		InvoiceID: inv.ID,
		Amount:    in.Amount,
		Method:    string(in.Method),
		PaidAt:    paidAt,
		Notes:     in.Notes,
	}

	if err := uc.repo.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}

	if err := recompute(ctx, uc.repo, inv, now); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: businessID,
		Action:     "payment_added",
		Entity:     "invoice",
		EntityID:   inv.ID,
		Metadata: map[string]string{
			"payment_id": payment.ID,
			"amount":     in.Amount.StringFixed(2),
			"method":     string(in.Method),
		},
	})

	return inv, nil
}
