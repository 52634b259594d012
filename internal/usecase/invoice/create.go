package invoice

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ArthurMoreiraS/OperlyService/internal/audit"
	"github.com/ArthurMoreiraS/OperlyService/internal/clock"
	"github.com/ArthurMoreiraS/OperlyService/internal/httperr"
	"github.com/ArthurMoreiraS/OperlyService/internal/models"

	domain "github.com/ArthurMoreiraS/OperlyService/internal/domain/invoice"
)

// ======================================================
// USE CASE
// ======================================================

type CreateInvoice struct {
	repo  domain.Repository
	clock clock.Clock
	audit *audit.Dispatcher
}

func NewCreateInvoice(
	repo domain.Repository,
	clk clock.Clock,
	audit *audit.Dispatcher,
) *CreateInvoice {
	return &CreateInvoice{
		repo:  repo,
		clock: clk,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateInvoice) Execute(
	ctx context.Context,
	businessID string,
	in domain.CreateInput,
) (*models.Invoice, error) {

	customer, err := uc.repo.GetCustomer(ctx, businessID, in.CustomerID)
	if err != nil {
		return nil, httperr.NotFound("customer_not_found")
	}

	if len(in.Items) == 0 {
		return nil, httperr.BadRequest("empty_items")
	}

	if in.AppointmentID != nil && *in.AppointmentID != "" {
		if _, err := uc.repo.GetAppointment(ctx, businessID, *in.AppointmentID); err != nil {
			return nil, httperr.NotFound("appointment_not_found")
		}
		existing, err := uc.repo.GetInvoiceByAppointment(ctx, businessID, *in.AppointmentID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, httperr.Conflict("appointment_already_invoiced")
		}
	} else {
		in.AppointmentID = nil
	}

	invoiceID := uuid.NewString()
	subtotal := decimal.Zero
	items := make([]models.InvoiceItem, 0, len(in.Items))

	for _, item := range in.Items {
		if item.Quantity < 1 {
			return nil, httperr.BadRequest("invalid_item_quantity")
		}
		if item.UnitPrice.IsNegative() {
			return nil, httperr.BadRequest("invalid_item_price")
		}

		description := item.Description
		if item.ServiceID != nil && *item.ServiceID != "" {
			svc, err := uc.repo.GetService(ctx, businessID, *item.ServiceID)
			if err != nil {
				return nil, httperr.NotFound("service_not_found")
			}
			if description == "" {
				description = svc.Name
			}
		}
		if description == "" {
			return nil, httperr.BadRequest("missing_item_description")
		}

		lineTotal := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(lineTotal)

		items = append(items, models.InvoiceItem{
			ID:          uuid.NewString(),
			InvoiceID:   invoiceID,
			ServiceID:   item.ServiceID,
			Description: description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   lineTotal,
		})
	}

	if in.Discount.IsNegative() || in.Discount.GreaterThan(subtotal) {
		return nil, httperr.BadRequest("invalid_discount")
	}

	last, err := uc.repo.LastInvoiceNumber(ctx, businessID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	inv := &models.Invoice{
		ID:            invoiceID,
		BusinessID:    businessID,
		Number:        domain.NextNumber(last),
		CustomerID:    customer.ID,
		AppointmentID: in.AppointmentID,
		Status:        string(domain.StatusDraft),
		Subtotal:      subtotal,
		Discount:      in.Discount,
		Total:         subtotal.Sub(in.Discount),
		PaidAmount:    decimal.Zero,
		DueDate:       in.DueDate,
		Notes:         in.Notes,
		Items:         items,
	}

	if in.AutoIssue {
		inv.Status = string(domain.StatusPending)
		inv.IssuedAt = &now
	}

	if err := uc.repo.CreateInvoice(ctx, inv); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: businessID,
		Action:     "invoice_created",
		Entity:     "invoice",
		EntityID:   inv.ID,
		Metadata:   map[string]string{"number": inv.Number},
	})

	return inv, nil
}
