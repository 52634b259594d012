package repository

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ArthurMoreiraS/OperlyService/internal/metrics"
	"github.com/ArthurMoreiraS/OperlyService/internal/models"

	domain "github.com/ArthurMoreiraS/OperlyService/internal/domain/invoice"
)

type InvoiceGormRepository struct {
	db *gorm.DB
}

func NewInvoiceGormRepository(db *gorm.DB) *InvoiceGormRepository {
	return &InvoiceGormRepository{db: db}
}

// --------------------------------------------------
// Cross-entity lookups
// --------------------------------------------------

func (r *InvoiceGormRepository) GetCustomer(
	ctx context.Context,
	businessID string,
	customerID string,
) (*models.Customer, error) {

	var customer models.Customer
	if err := r.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", customerID, businessID).
		First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *InvoiceGormRepository) GetService(
	ctx context.Context,
	businessID string,
	serviceID string,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", serviceID, businessID).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *InvoiceGormRepository) GetAppointment(
	ctx context.Context,
	businessID string,
	appointmentID string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", appointmentID, businessID).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

// --------------------------------------------------
// Invoice
// --------------------------------------------------

func (r *InvoiceGormRepository) GetInvoice(
	ctx context.Context,
	businessID string,
	invoiceID string,
) (*models.Invoice, error) {

	var inv models.Invoice
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items").
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("paid_at ASC")
		}).
		Where("id = ? AND business_id = ?", invoiceID, businessID).
		First(&inv).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *InvoiceGormRepository) GetInvoiceByAppointment(
	ctx context.Context,
	businessID string,
	appointmentID string,
) (*models.Invoice, error) {

	var inv models.Invoice
	err := r.db.WithContext(ctx).
		Where("business_id = ? AND appointment_id = ?", businessID, appointmentID).
		First(&inv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *InvoiceGormRepository) LastInvoiceNumber(
	ctx context.Context,
	businessID string,
) (string, error) {

	var number string
	err := r.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Where("business_id = ?", businessID).
		Order("created_at DESC").
		Limit(1).
		Pluck("number", &number).Error
	if err != nil {
		return "", err
	}
	return number, nil
}

func (r *InvoiceGormRepository) CreateInvoice(
	ctx context.Context,
	inv *models.Invoice,
) error {
	defer metrics.TrackDBOperation("invoice_create")(time.Now())

	err := r.db.WithContext(ctx).Create(inv).Error
	return translateUnique(err, "appointment_already_invoiced")
}

func (r *InvoiceGormRepository) UpdateInvoice(
	ctx context.Context,
	inv *models.Invoice,
) error {
	// Save without re-writing associations; items and payments have their
	// own write paths.
	return r.db.WithContext(ctx).
		Omit("Items", "Payments", "Customer", "Appointment").
		Save(inv).Error
}

func (r *InvoiceGormRepository) ListInvoices(
	ctx context.Context,
	businessID string,
	filter domain.ListFilter,
) ([]models.Invoice, int64, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Where("business_id = ?", businessID)

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.CustomerID != "" {
		q = q.Where("customer_id = ?", filter.CustomerID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var invoices []models.Invoice
	err := q.
		Preload("Customer").
		Preload("Items").
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&invoices).Error
	if err != nil {
		return nil, 0, err
	}

	return invoices, total, nil
}

// --------------------------------------------------
// Payments
// --------------------------------------------------

func (r *InvoiceGormRepository) GetPayment(
	ctx context.Context,
	invoiceID string,
	paymentID string,
) (*models.Payment, error) {

	var p models.Payment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND invoice_id = ?", paymentID, invoiceID).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *InvoiceGormRepository) CreatePayment(
	ctx context.Context,
	p *models.Payment,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *InvoiceGormRepository) DeletePayment(
	ctx context.Context,
	p *models.Payment,
) error {
	return r.db.WithContext(ctx).Delete(p).Error
}

func (r *InvoiceGormRepository) SumPayments(
	ctx context.Context,
	invoiceID string,
) (decimal.Decimal, error) {

	var sum decimal.NullDecimal
	err := r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Where("invoice_id = ?", invoiceID).
		Select("SUM(amount)").
		Scan(&sum).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}

// --------------------------------------------------
// Billing read side
// --------------------------------------------------

func (r *InvoiceGormRepository) ListPaidInvoicesInRange(
	ctx context.Context,
	businessID string,
	from time.Time,
	to time.Time,
) ([]models.Invoice, error) {

	var invoices []models.Invoice
	err := r.db.WithContext(ctx).
		Where(
			"business_id = ? AND status = ? AND paid_at >= ? AND paid_at < ?",
			businessID, string(domain.StatusPaid), from, to,
		).
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *InvoiceGormRepository) ListInvoicesByStatus(
	ctx context.Context,
	businessID string,
	statuses []string,
) ([]models.Invoice, error) {

	var invoices []models.Invoice
	err := r.db.WithContext(ctx).
		Where("business_id = ? AND status IN ?", businessID, statuses).
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *InvoiceGormRepository) CountInvoicesByStatus(
	ctx context.Context,
	businessID string,
) (map[string]int64, error) {

	type row struct {
		Status string
		Count  int64
	}

	var rows []row
	err := r.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Select("status, COUNT(*) AS count").
		Where("business_id = ?", businessID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}

func (r *InvoiceGormRepository) ListPaymentsInRange(
	ctx context.Context,
	businessID string,
	from time.Time,
	to time.Time,
) ([]models.Payment, error) {
	defer metrics.TrackDBOperation("payments_range")(time.Now())

	var payments []models.Payment
	err := r.db.WithContext(ctx).
		Joins("JOIN invoices ON invoices.id = payments.invoice_id").
		Where(
			"invoices.business_id = ? AND payments.paid_at >= ? AND payments.paid_at < ?",
			businessID, from, to,
		).
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

// Compile-time check
var _ domain.Repository = (*InvoiceGormRepository)(nil)
