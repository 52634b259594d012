package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/ArthurMoreiraS/OperlyService/internal/metrics"
	"github.com/ArthurMoreiraS/OperlyService/internal/models"

	domain "github.com/ArthurMoreiraS/OperlyService/internal/domain/appointment"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Business
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBusinessByID(
	ctx context.Context,
	id string,
) (*models.Business, error) {

	var biz models.Business
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&biz).Error; err != nil {
		return nil, err
	}
	return &biz, nil
}

// --------------------------------------------------
// Service / Customer / Vehicle
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
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

func (r *AppointmentGormRepository) GetCustomer(
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

func (r *AppointmentGormRepository) GetVehicle(
	ctx context.Context,
	customerID string,
	vehicleID string,
) (*models.Vehicle, error) {

	var v models.Vehicle
	if err := r.db.WithContext(ctx).
		Where("id = ? AND customer_id = ?", vehicleID, customerID).
		First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	defer metrics.TrackDBOperation("appointment_create")(time.Now())

	err := r.db.WithContext(ctx).Create(ap).Error
	return translateUnique(err, "time_conflict")
}

func (r *AppointmentGormRepository) HasTimeConflict(
	ctx context.Context,
	businessID string,
	date string,
	start string,
	end string,
	excludeID string,
) (bool, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"business_id = ? AND date = ? AND status <> ? AND start_time < ? AND end_time > ?",
			businessID,
			date,
			string(domain.StatusCancelled),
			end,
			start,
		)

	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	businessID string,
	appointmentID string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Preload("Vehicle").
		Where("id = ? AND business_id = ?", appointmentID, businessID).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	err := r.db.WithContext(ctx).Save(ap).Error
	return translateUnique(err, "time_conflict")
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	businessID string,
	appointmentID string,
) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", appointmentID, businessID).
		Delete(&models.Appointment{}).Error
}

// --------------------------------------------------
// Availability / listing
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	businessID string,
	date string,
) ([]models.Appointment, error) {
	defer metrics.TrackDBOperation("appointment_list_day")(time.Now())

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "start_time", "end_time", "status").
		Where(
			"business_id = ? AND date = ? AND status <> ?",
			businessID, date, string(domain.StatusCancelled),
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	businessID string,
	filter domain.ListFilter,
) ([]models.Appointment, int64, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("business_id = ?", businessID)

	if filter.Date != "" {
		q = q.Where("date = ?", filter.Date)
	}
	if filter.DateFrom != "" {
		q = q.Where("date >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		q = q.Where("date <= ?", filter.DateTo)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var apps []models.Appointment
	err := q.
		Preload("Customer").
		Preload("Service").
		Preload("Vehicle").
		Order("date ASC, start_time ASC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&apps).Error
	if err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
