package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ArthurMoreiraS/OperlyService/internal/models"

	domain "github.com/ArthurMoreiraS/OperlyService/internal/domain/vehicle"
)

type VehicleGormRepository struct {
	db *gorm.DB
}

func NewVehicleGormRepository(db *gorm.DB) *VehicleGormRepository {
	return &VehicleGormRepository{db: db}
}

func (r *VehicleGormRepository) GetCustomer(
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

func (r *VehicleGormRepository) GetVehicle(
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

func (r *VehicleGormRepository) ListVehicles(
	ctx context.Context,
	customerID string,
) ([]models.Vehicle, error) {

	var vehicles []models.Vehicle
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at ASC").
		Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *VehicleGormRepository) CreateVehicle(
	ctx context.Context,
	v *models.Vehicle,
) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *VehicleGormRepository) UpdateVehicle(
	ctx context.Context,
	v *models.Vehicle,
) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *VehicleGormRepository) DeleteVehicle(
	ctx context.Context,
	v *models.Vehicle,
) error {
	return r.db.WithContext(ctx).Delete(v).Error
}

func (r *VehicleGormRepository) ClearDefault(
	ctx context.Context,
	customerID string,
	exceptID string,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Vehicle{}).
		Where("customer_id = ? AND id <> ?", customerID, exceptID).
		Update("is_default", false).Error
}

// Compile-time check
var _ domain.Repository = (*VehicleGormRepository)(nil)
