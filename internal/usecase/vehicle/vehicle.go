package vehicle

import (
	"context"

	"github.com/google/uuid"

	"github.com/ArthurMoreiraS/OperlyService/internal/httperr"
	"github.com/ArthurMoreiraS/OperlyService/internal/models"

	domain "github.com/ArthurMoreiraS/OperlyService/internal/domain/vehicle"
)

// ======================================================
// INPUTS
// ======================================================

type CreateInput struct {
	Type      string `json:"type"`
	Brand     string `json:"brand"`
	Model     string `json:"model"`
	Plate     string `json:"plate"`
	Color     string `json:"color"`
	Year      int    `json:"year"`
	IsDefault bool   `json:"is_default"`
}

type UpdateInput struct {
	Type      *string `json:"type"`
	Brand     *string `json:"brand"`
	Model     *string `json:"model"`
	Plate     *string `json:"plate"`
	Color     *string `json:"color"`
	Year      *int    `json:"year"`
	IsDefault *bool   `json:"is_default"`
}

// ======================================================
// USE CASE
// ======================================================

// Vehicles owns the default-flag invariant: at most one default per
// customer, the first vehicle starts as the default, promoting a new
// default demotes the siblings, and deleting the default promotes another
// when one exists.
type Vehicles struct {
	repo domain.Repository
}

func New(repo domain.Repository) *Vehicles {
	return &Vehicles{repo: repo}
}

func (uc *Vehicles) Create(
	ctx context.Context,
	businessID string,
	customerID string,
	in CreateInput,
) (*models.Vehicle, error) {

	customer, err := uc.repo.GetCustomer(ctx, businessID, customerID)
	if err != nil {
		return nil, httperr.NotFound("customer_not_found")
	}

	vType := in.Type
	if vType == "" {
		vType = string(domain.TypeCar)
	}
	if !domain.IsValidType(domain.Type(vType)) {
		return nil, httperr.BadRequest("invalid_vehicle_type")
	}

	existing, err := uc.repo.ListVehicles(ctx, customer.ID)
	if err != nil {
		return nil, err
	}

	v := &models.Vehicle{
		ID:         uuid.NewString(),
		CustomerID: customer.ID,
		Type:       vType,
		Brand:      in.Brand,
		Model:      in.Model,
		Plate:      in.Plate,
		Color:      in.Color,
		Year:       in.Year,
		IsDefault:  in.IsDefault || len(existing) == 0,
	}

	if err := uc.repo.CreateVehicle(ctx, v); err != nil {
		return nil, err
	}

	if v.IsDefault {
		if err := uc.repo.ClearDefault(ctx, customer.ID, v.ID); err != nil {
			return nil, err
		}
	}

	return v, nil
}

func (uc *Vehicles) Update(
	ctx context.Context,
	businessID string,
	customerID string,
	vehicleID string,
	in UpdateInput,
) (*models.Vehicle, error) {

	customer, err := uc.repo.GetCustomer(ctx, businessID, customerID)
	if err != nil {
		return nil, httperr.NotFound("customer_not_found")
	}

	v, err := uc.repo.GetVehicle(ctx, customer.ID, vehicleID)
	if err != nil {
		return nil, httperr.NotFound("vehicle_not_found")
	}

	if in.Type != nil {
		if !domain.IsValidType(domain.Type(*in.Type)) {
			return nil, httperr.BadRequest("invalid_vehicle_type")
		}
		v.Type = *in.Type
	}
	if in.Brand != nil {
		v.Brand = *in.Brand
	}
	if in.Model != nil {
		v.Model = *in.Model
	}
	if in.Plate != nil {
		v.Plate = *in.Plate
	}
	if in.Color != nil {
		v.Color = *in.Color
	}
	if in.Year != nil {
		v.Year = *in.Year
	}

	promote := in.IsDefault != nil && *in.IsDefault && !v.IsDefault
	if in.IsDefault != nil {
		v.IsDefault = *in.IsDefault
	}

	if err := uc.repo.UpdateVehicle(ctx, v); err != nil {
		return nil, err
	}

	if promote {
		if err := uc.repo.ClearDefault(ctx, customer.ID, v.ID); err != nil {
			return nil, err
		}
	}

	return v, nil
}

func (uc *Vehicles) Delete(
	ctx context.Context,
	businessID string,
	customerID string,
	vehicleID string,
) error {

	customer, err := uc.repo.GetCustomer(ctx, businessID, customerID)
	if err != nil {
		return httperr.NotFound("customer_not_found")
	}

	v, err := uc.repo.GetVehicle(ctx, customer.ID, vehicleID)
	if err != nil {
		return httperr.NotFound("vehicle_not_found")
	}

	if err := uc.repo.DeleteVehicle(ctx, v); err != nil {
		return err
	}

	if !v.IsDefault {
		return nil
	}

	// Deleting the default promotes another vehicle when one exists.
	rest, err := uc.repo.ListVehicles(ctx, customer.ID)
	if err != nil {
		return err
	}
	if len(rest) == 0 {
		return nil
	}

	next := rest[0]
	next.IsDefault = true
	return uc.repo.UpdateVehicle(ctx, &next)
}
