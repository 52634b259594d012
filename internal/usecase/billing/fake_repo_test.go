package billing

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ArthurMoreiraS/OperlyService/internal/models"

	domain "github.com/ArthurMoreiraS/OperlyService/internal/domain/invoice"
)

// fakeRepo seeds invoices and payments directly; the aggregator only
// exercises the read side of the repository.
type fakeRepo struct {
	invoices map[string]*models.Invoice
	payments map[string]*models.Payment
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		invoices: map[string]*models.Invoice{},
		payments: map[string]*models.Payment{},
	}
}

func (f *fakeRepo) addInvoice(inv models.Invoice) {
	f.invoices[inv.ID] = &inv
}

func (f *fakeRepo) addPayment(p models.Payment) {
	f.payments[p.ID] = &p
}

func (f *fakeRepo) GetCustomer(context.Context, string, string) (*models.Customer, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetService(context.Context, string, string) (*models.Service, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetAppointment(context.Context, string, string) (*models.Appointment, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetInvoice(_ context.Context, businessID, invoiceID string) (*models.Invoice, error) {
	inv, ok := f.invoices[invoiceID]
	if !ok || inv.BusinessID != businessID {
		return nil, gorm.ErrRecordNotFound
	}
	return inv, nil
}

func (f *fakeRepo) GetInvoiceByAppointment(context.Context, string, string) (*models.Invoice, error) {
	return nil, nil
}

func (f *fakeRepo) LastInvoiceNumber(context.Context, string) (string, error) {
	return "", nil
}

func (f *fakeRepo) CreateInvoice(_ context.Context, inv *models.Invoice) error {
	f.addInvoice(*inv)
	return nil
}

func (f *fakeRepo) UpdateInvoice(_ context.Context, inv *models.Invoice) error {
	f.addInvoice(*inv)
	return nil
}

func (f *fakeRepo) ListInvoices(context.Context, string, domain.ListFilter) ([]models.Invoice, int64, error) {
	return nil, 0, nil
}

func (f *fakeRepo) GetPayment(context.Context, string, string) (*models.Payment, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) CreatePayment(_ context.Context, p *models.Payment) error {
	f.addPayment(*p)
	return nil
}

func (f *fakeRepo) DeletePayment(_ context.Context, p *models.Payment) error {
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
	for _, inv := range f.invoices {
		if inv.BusinessID != businessID || inv.Status != string(domain.StatusPaid) || inv.PaidAt == nil {
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
	for _, inv := range f.invoices {
		if inv.BusinessID == businessID && want[inv.Status] {
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
