package appointment

import (
	"time"

	"github.com/ArthurMoreiraS/OperlyService/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition applies a status change to the model after checking the state
// machine, stamping the terminal timestamps.
func Transition(ap *models.Appointment, to Status, now time.Time) error {
	if err := CanTransition(Status(ap.Status), to); err != nil {
		return err
	}

	ap.Status = string(to)
	switch to {
	case StatusCancelled:
		ap.CancelledAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	}
	return nil
}
