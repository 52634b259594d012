package invoice

import (
	"context"
	"time"

	"github.com/ArthurMoreiraS/OperlyService/internal/models"
	"github.com/shopspring/decimal"
)

// Repository is the persistence surface for the invoice lifecycle and the
// billing read side. All lookups are business-scoped.
type Repository interface {
	// -------- Cross-entity lookups --------
	GetCustomer(
		ctx context.Context,
		businessID string,
		customerID string,
	) (*models.Customer, error)

	GetService(
		ctx context.Context,
		businessID string,
		serviceID string,
	) (*models.Service, error)

	GetAppointment(
		ctx context.Context,
		businessID string,
		appointmentID string,
	) (*models.Appointment, error)

	// -------- Invoice --------
	GetInvoice(
		ctx context.Context,
		businessID string,
		invoiceID string,
	) (*models.Invoice, error)

	// GetInvoiceByAppointment returns nil, nil when no invoice links the
	// appointment yet.
	GetInvoiceByAppointment(
		ctx context.Context,
		businessID string,
		appointmentID string,
	) (*models.Invoice, error)

	// LastInvoiceNumber returns the number of the most recently created
	// invoice for the business, or "" when none exists.
	LastInvoiceNumber(
		ctx context.Context,
		businessID string,
	) (string, error)

	CreateInvoice(
		ctx context.Context,
		inv *models.Invoice,
	) error

	UpdateInvoice(
		ctx context.Context,
		inv *models.Invoice,
	) error

	ListInvoices(
		ctx context.Context,
		businessID string,
		filter ListFilter,
	) ([]models.Invoice, int64, error)

	// -------- Payments --------
	GetPayment(
		ctx context.Context,
		invoiceID string,
		paymentID string,
	) (*models.Payment, error)

	CreatePayment(
		ctx context.Context,
		p *models.Payment,
	) error

	DeletePayment(
		ctx context.Context,
		p *models.Payment,
	) error

	// SumPayments returns the decimal sum of remaining payments on the
	// invoice; paid_amount is always rewritten from this.
	SumPayments(
		ctx context.Context,
		invoiceID string,
	) (decimal.Decimal, error)

	// -------- Billing read side --------
	ListPaidInvoicesInRange(
		ctx context.Context,
		businessID string,
		from time.Time,
		to time.Time,
	) ([]models.Invoice, error)

	ListInvoicesByStatus(
		ctx context.Context,
		businessID string,
		statuses []string,
	) ([]models.Invoice, error)

	CountInvoicesByStatus(
		ctx context.Context,
		businessID string,
	) (map[string]int64, error)

	ListPaymentsInRange(
		ctx context.Context,
		businessID string,
		from time.Time,
		to time.Time,
	) ([]models.Payment, error)
}
