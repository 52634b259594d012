package appointment

import (
	"context"

	"github.com/ArthurMoreiraS/OperlyService/internal/audit"
	"github.com/ArthurMoreiraS/OperlyService/internal/httperr"
	"github.com/ArthurMoreiraS/OperlyService/internal/models"

	domain "github.com/ArthurMoreiraS/OperlyService/internal/domain/appointment"
)

// ======================================================
// INPUT
// ======================================================

type UpdateInput struct {
	CustomerID *string `json:"customer_id"`
	ServiceID  *string `json:"service_id"`
	VehicleID  *string `json:"vehicle_id"`
	Date       *string `json:"date"`
	StartTime  *string `json:"start_time"`
	Notes      *string `json:"notes"`
}

func (in UpdateInput) touchesSchedule() bool {
	return in.ServiceID != nil || in.Date != nil || in.StartTime != nil
}

// ======================================================
// USE CASE
// ======================================================

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	businessID string,
	appointmentID string,
	in UpdateInput,
) (*models.Appointment, error) {

	biz, err := uc.repo.GetBusinessByID(ctx, businessID)
	if err != nil {
		return nil, httperr.NotFound("business_not_found")
	}

	ap, err := uc.repo.GetAppointment(ctx, businessID, appointmentID)
	if err != nil {
		return nil, httperr.NotFound("appointment_not_found")
	}

	if domain.Terminal(domain.Status(ap.Status)) {
		return nil, httperr.Conflict("appointment_locked")
	}

	if in.CustomerID != nil && *in.CustomerID != ap.CustomerID {
		if _, err := uc.repo.GetCustomer(ctx, businessID, *in.CustomerID); err != nil {
			return nil, httperr.NotFound("customer_not_found")
		}
		ap.CustomerID = *in.CustomerID
	}

	svc, err := uc.repo.GetService(ctx, businessID, ap.ServiceID)
	if err != nil {
		return nil, httperr.NotFound("service_not_found")
	}
	if in.ServiceID != nil && *in.ServiceID != ap.ServiceID {
		svc, err = uc.repo.GetService(ctx, businessID, *in.ServiceID)
		if err != nil {
			return nil, httperr.NotFound("service_not_found")
		}
		if !svc.Active {
			return nil, httperr.BadRequest("service_inactive")
		}
		ap.ServiceID = svc.ID
	}

	if in.VehicleID != nil {
		if *in.VehicleID == "" {
			ap.VehicleID = nil
		} else {
			if _, err := uc.repo.GetVehicle(ctx, ap.CustomerID, *in.VehicleID); err != nil {
				return nil, httperr.NotFound("vehicle_not_found")
			}
			ap.VehicleID = in.VehicleID
		}
	}

	if in.Date != nil {
		ap.Date = *in.Date
	}
	if in.StartTime != nil {
		ap.StartTime = *in.StartTime
	}
	if in.Notes != nil {
		ap.Notes = *in.Notes
	}

	// Any change to date, time or service re-runs the full window
	// validation against current business settings, never stale values.
	if in.touchesSchedule() {
		endTime, err := validateWindow(biz, ap.Date, ap.StartTime, svc.DurationMin)
		if err != nil {
			return nil, err
		}
		ap.EndTime = endTime

		conflict, err := uc.repo.HasTimeConflict(
			ctx,
			businessID,
			ap.Date,
			ap.StartTime,
			ap.EndTime,
			ap.ID,
		)
		if err != nil {
			return nil, err
		}
		if conflict {
			return nil, httperr.Conflict("time_conflict")
		}
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: businessID,
		Action:     "appointment_updated",
		Entity:     "appointment",
		EntityID:   ap.ID,
	})

	return ap, nil
}
