package invoice

import (
	"context"

	"github.com/ArthurMoreiraS/OperlyService/internal/audit"
	"github.com/ArthurMoreiraS/OperlyService/internal/clock"
	"github.com/ArthurMoreiraS/OperlyService/internal/httperr"
	"github.com/ArthurMoreiraS/OperlyService/internal/models"

	domain "github.com/ArthurMoreiraS/OperlyService/internal/domain/invoice"
)

type CreateInvoiceFromAppointment struct {
	repo   domain.Repository
	create *CreateInvoice
}

func NewCreateInvoiceFromAppointment(
	repo domain.Repository,
	clk clock.Clock,
	audit *audit.Dispatcher,
) *CreateInvoiceFromAppointment {
	return &CreateInvoiceFromAppointment{
		repo:   repo,
		create: NewCreateInvoice(repo, clk, audit),
	}
}

// Execute derives an invoice from one appointment: a single item mirroring
// the booked service at its current price. The storage-level unique index on
// appointment_id backs the 1:1 link.
func (uc *CreateInvoiceFromAppointment) Execute(
	ctx context.Context,
	businessID string,
	in domain.CreateFromAppointmentInput,
) (*models.Invoice, error) {

	ap, err := uc.repo.GetAppointment(ctx, businessID, in.AppointmentID)
	if err != nil {
		return nil, httperr.NotFound("appointment_not_found")
	}

	svc, err := uc.repo.GetService(ctx, businessID, ap.ServiceID)
	if err != nil {
		return nil, httperr.NotFound("service_not_found")
	}

	serviceID := svc.ID
	return uc.create.Execute(ctx, businessID, domain.CreateInput{
		CustomerID: ap.CustomerID,
		Items: []domain.ItemInput{{
			ServiceID:   &serviceID,
			Description: svc.Name,
			Quantity:    1,
			UnitPrice:   svc.Price,
		}},
		Discount:      in.Discount,
		DueDate:       in.DueDate,
		Notes:         in.Notes,
		AutoIssue:     in.AutoIssue,
		AppointmentID: &ap.ID,
	})
}
