package appointment

import (
	"context"

	"github.com/ArthurMoreiraS/OperlyService/internal/audit"
	"github.com/ArthurMoreiraS/OperlyService/internal/clock"
	"github.com/ArthurMoreiraS/OperlyService/internal/httperr"
	"github.com/ArthurMoreiraS/OperlyService/internal/models"

	domain "github.com/ArthurMoreiraS/OperlyService/internal/domain/appointment"
)

type UpdateAppointmentStatus struct {
	repo  domain.Repository
	clock clock.Clock
	audit *audit.Dispatcher
}

func NewUpdateAppointmentStatus(
	repo domain.Repository,
	clk clock.Clock,
	audit *audit.Dispatcher,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		repo:  repo,
		clock: clk,
		audit: audit,
	}
}

func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	businessID string,
	appointmentID string,
	newStatus domain.Status,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, businessID, appointmentID)
	if err != nil {
		return nil, httperr.NotFound("appointment_not_found")
	}

	if err := domain.Transition(ap, newStatus, uc.clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: businessID,
		Action:     "appointment_status_changed",
		Entity:     "appointment",
		EntityID:   ap.ID,
		Metadata:   map[string]string{"status": string(newStatus)},
	})

	return ap, nil
}
