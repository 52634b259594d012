package invoice

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ArthurMoreiraS/OperlyService/internal/models"

	domain "github.com/ArthurMoreiraS/OperlyService/internal/domain/invoice"
)

// fakeRepo is an in-memory stand-in for the gorm repository, used to drive
// the invoice use cases without a database.
type fakeRepo struct {
	customers    map[string]*models.Customer
	services     map[string]*models.Service
	appointments map[string]*models.Appointment
	invoices     map[string]*models.Invoice
	payments     map[string]*models.Payment

	// creation order, to resolve the latest invoice number
	invoiceOrder []string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		customers:    map[string]*models.Customer{},
		services:     map[string]*models.Service{},
		appointments: map[string]*models.Appointment{},
		invoices:     map[string]*models.Invoice{},
		payments:     map[string]*models.Payment{},
	}
}

func (f *fakeRepo) GetCustomer(_ context.Context, businessID, customerID string) (*models.Customer, error) {
	c, ok := f.customers[customerID]
	if !ok || c.BusinessID != businessID {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeRepo) GetService(_ context.Context, businessID, serviceID string) (*models.Service, error) {
	svc, ok := f.services[serviceID]
	if !ok || svc.BusinessID != businessID {
		return nil, gorm.ErrRecordNotFound
	}
	return svc, nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, businessID, appointmentID string) (*models.Appointment, error) {
	ap, ok := f.appointments[appointmentID]
	if !ok || ap.BusinessID != businessID {
		return nil, gorm.ErrRecordNotFound
	}
	return ap, nil
}

func (f *fakeRepo) GetInvoice(_ context.Context, businessID, invoiceID string) (*models.Invoice, error) {
	inv, ok := f.invoices[invoiceID]
	if !ok || inv.BusinessID != businessID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *inv
	return &cp, nil
}

func (f *fakeRepo) GetInvoiceByAppointment(_ context.Context, businessID, appointmentID string) (*models.Invoice, error) {
	for _, inv := range f.invoices {
		if inv.BusinessID != businessID || inv.AppointmentID == nil {
			continue
		}
		if *inv.AppointmentID == appointmentID {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) LastInvoiceNumber(_ context.Context, businessID string) (string, error) {
	for i := len(f.invoiceOrder) - 1; i >= 0; i-- {
		inv := f.invoices[f.invoiceOrder[i]]
		if inv != nil && inv.BusinessID == businessID {
			return inv.Number, nil
		}
	}
	return "", nil
}

func (f *fakeRepo) CreateInvoice(_ context.Context, inv *models.Invoice) error {
	cp := *inv
	f.invoices[inv.ID] = &cp
	f.invoiceOrder = append(f.invoiceOrder, inv.ID)
	return nil
}

func (f *fakeRepo) UpdateInvoice(_ context.Context, inv *models.Invoice) error {
	if _, ok := f.invoices[inv.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *inv
	f.invoices[inv.ID] = &cp
	return nil
}

func (f *fakeRepo) ListInvoices(_ context.Context, businessID string, filter domain.ListFilter) ([]models.Invoice, int64, error) {
	var matched []models.Invoice
	for _, id := range f.invoiceOrder {
		inv := f.invoices[id]
		if inv == nil || inv.BusinessID != businessID {
			continue
		}
		if filter.Status != "" && inv.Status != filter.Status {
			continue
		}
		if filter.CustomerID != "" && inv.CustomerID != filter.CustomerID {
			continue
		}
		matched = append(matched, *inv)
	}
	total := int64(len(matched))
	offset := (filter.Page - 1) * filter.Limit
	if offset >= len(matched) {
		return []models.Invoice{}, total, nil
	}
	end := offset + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (f *fakeRepo) GetPayment(_ context.Context, invoiceID, paymentID string) (*models.Payment, error) {
	p, ok := f.payments[paymentID]
	if !ok || p.InvoiceID != invoiceID {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (f *fakeRepo) CreatePayment(_ context.Context, p *models.Payment) error {
	cp := *p
	f.payments[p.ID] = &cp
	return nil
}

func (f *fakeRepo) DeletePayment(_ context.Context, p *models.Payment) error {
	if _, ok := f.payments[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.payments, p.ID)
	return nil
}

func (f *fakeRepo) SumPayments(_ context.Context, invoiceID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, p := range f.payments {
		if p.InvoiceID == invoiceID {
			sum = sum.Add(p.Amount)
		}
	}
	return sum, nil
}

func (f *fakeRepo) ListPaidInvoicesInRange(_ context.Context, businessID string, from, to time.Time) ([]models.Invoice, error) {
	var out []models.Invoice
	for _, id := range f.invoiceOrder {
		inv := f.invoices[id]
		if inv == nil || inv.BusinessID != businessID {
			continue
		}
		if inv.Status != string(domain.StatusPaid) || inv.PaidAt == nil {
			continue
		}
		if inv.PaidAt.Before(from) || !inv.PaidAt.Before(to) {
			continue
		}
		out = append(out, *inv)
	}
	return out, nil
}

func (f *fakeRepo) ListInvoicesByStatus(_ context.Context, businessID string, statuses []string) ([]models.Invoice, error) {
	want := map[string]bool{}
	for _, s := range statuses {
		want[s] = true
	}
	var out []models.Invoice
	for _, id := range f.invoiceOrder {
		inv := f.invoices[id]
		if inv != nil && inv.BusinessID == businessID && want[inv.Status] {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (f *fakeRepo) CountInvoicesByStatus(_ context.Context, businessID string) (map[string]int64, error) {
	counts := map[string]int64{}
	for _, inv := range f.invoices {
		if inv.BusinessID == businessID {
			counts[inv.Status]++
		}
	}
	return counts, nil
}

func (f *fakeRepo) ListPaymentsInRange(_ context.Context, businessID string, from, to time.Time) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range f.payments {
		inv := f.invoices[p.InvoiceID]
		if inv == nil || inv.BusinessID != businessID {
			continue
		}
		if p.PaidAt.Before(from) || !p.PaidAt.Before(to) {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PaidAt.Before(out[j].PaidAt) })
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
