package vehicle

import (
	"context"

	"github.com/ArthurMoreiraS/OperlyService/internal/models"
)

// ===============================
// Vehicle Type
// ===============================

type Type string

const (
	TypeCar        Type = "CAR"
	TypeSUV        Type = "SUV"
	TypePickup     Type = "PICKUP"
	TypeTruck      Type = "TRUCK"
	TypeVan        Type = "VAN"
	TypeMotorcycle Type = "MOTORCYCLE"
	TypeOther      Type = "OTHER"
)

var types = map[Type]struct{}{
	TypeCar: {}, TypeSUV: {}, TypePickup: {}, TypeTruck: {},
	TypeVan: {}, TypeMotorcycle: {}, TypeOther: {},
}

func IsValidType(t Type) bool {
	_, ok := types[t]
	return ok
}

// Repository is the persistence surface for the default-vehicle invariant.
// The invariant lives here, not in the storage layer: at most one vehicle
// per customer carries is_default at any time.
type Repository interface {
	GetCustomer(
		ctx context.Context,
		businessID string,
		customerID string,
	) (*models.Customer, error)

	GetVehicle(
		ctx context.Context,
		customerID string,
		vehicleID string,
	) (*models.Vehicle, error)

	ListVehicles(
		ctx context.Context,
		customerID string,
	) ([]models.Vehicle, error)

	CreateVehicle(ctx context.Context, v *models.Vehicle) error
	UpdateVehicle(ctx context.Context, v *models.Vehicle) error
	DeleteVehicle(ctx context.Context, v *models.Vehicle) error

	// ClearDefault unsets is_default on every vehicle of the customer
	// except the given one.
	ClearDefault(
		ctx context.Context,
		customerID string,
		exceptID string,
	) error
}
