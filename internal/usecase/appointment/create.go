package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/ArthurMoreiraS/OperlyService/internal/audit"
	"github.com/ArthurMoreiraS/OperlyService/internal/httperr"
	"github.com/ArthurMoreiraS/OperlyService/internal/models"

	domain "github.com/ArthurMoreiraS/OperlyService/internal/domain/appointment"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	BusinessID string

	CustomerID string
	ServiceID  string
	VehicleID  *string

	Date      string
	StartTime string
	Notes     string

	// True when the booking came through the public page.
	PublicOrigin bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.Appointment, error) {

	biz, err := uc.repo.GetBusinessByID(ctx, in.BusinessID)
	if err != nil {
		return nil, httperr.NotFound("business_not_found")
	}

	svc, err := uc.repo.GetService(ctx, in.BusinessID, in.ServiceID)
	if err != nil {
		return nil, httperr.NotFound("service_not_found")
	}
	if !svc.Active {
		return nil, httperr.BadRequest("service_inactive")
	}

	customer, err := uc.repo.GetCustomer(ctx, in.BusinessID, in.CustomerID)
	if err != nil {
		return nil, httperr.NotFound("customer_not_found")
	}

	if in.VehicleID != nil && *in.VehicleID != "" {
		if _, err := uc.repo.GetVehicle(ctx, customer.ID, *in.VehicleID); err != nil {
			return nil, httperr.NotFound("vehicle_not_found")
		}
	}

	endTime, err := validateWindow(biz, in.Date, in.StartTime, svc.DurationMin)
	if err != nil {
		return nil, err
	}

	// Fast-path conflict check; the partial unique index on
	// (business, date, start_time) is the authoritative guard underneath.
	conflict, err := uc.repo.HasTimeConflict(
		ctx,
		in.BusinessID,
		in.Date,
		in.StartTime,
		endTime,
		"",
	)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, httperr.Conflict("time_conflict")
	}

	ap := &models.Appointment{
		ID:           uuid.NewString(),
		BusinessID:   in.BusinessID,
		CustomerID:   customer.ID,
		ServiceID:    svc.ID,
		VehicleID:    in.VehicleID,
		Date:         in.Date,
		StartTime:    in.StartTime,
		EndTime:      endTime,
		Status:       string(domain.InitialStatus()),
		PublicOrigin: in.PublicOrigin,
		Notes:        in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: in.BusinessID,
		Action:     "appointment_created",
		Entity:     "appointment",
		EntityID:   ap.ID,
	})

	return ap, nil
}
