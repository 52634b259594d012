package appointment

import (
	"context"

	"github.com/ArthurMoreiraS/OperlyService/internal/audit"
	"github.com/ArthurMoreiraS/OperlyService/internal/httperr"
	"github.com/ArthurMoreiraS/OperlyService/internal/models"

	domain "github.com/ArthurMoreiraS/OperlyService/internal/domain/appointment"
)

// DeleteAppointment hard-deletes; no history is retained.
type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes the appointment and returns it, so callers can release
// resources tied to its date.
func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	businessID string,
	appointmentID string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, businessID, appointmentID)
	if err != nil {
		return nil, httperr.NotFound("appointment_not_found")
	}

	if err := uc.repo.DeleteAppointment(ctx, businessID, ap.ID); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: businessID,
		Action:     "appointment_deleted",
		Entity:     "appointment",
		EntityID:   ap.ID,
	})

	return ap, nil
}
