package appointment

import "github.com/ArthurMoreiraS/OperlyService/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
	StatusNoShow    Status = "NO_SHOW"
)

// transitions is the full state machine. COMPLETED, CANCELLED and NO_SHOW
// have no outgoing edges; the first two additionally freeze every field.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled, StatusNoShow},
	StatusConfirmed: {StatusCompleted, StatusCancelled, StatusNoShow},
	StatusCompleted: {},
	StatusCancelled: {},
	StatusNoShow:    {},
}

func IsValid(s Status) bool {
	_, ok := transitions[s]
	return ok
}

// Terminal reports whether the appointment is frozen: no transition out and
// no field edit once COMPLETED or CANCELLED.
func Terminal(s Status) bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransition validates a status change against the state machine.
func CanTransition(from, to Status) error {
	if !IsValid(to) {
		return httperr.BadRequest("invalid_status")
	}
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.Conflict("invalid_status_transition")
}

func InitialStatus() Status {
	return StatusPending
}
