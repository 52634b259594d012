package appointment

import (
	"context"

	"github.com/ArthurMoreiraS/OperlyService/internal/models"
)

// Repository is the persistence surface the scheduling core depends on.
// Every lookup is scoped by business id; an entity owned by another tenant
// behaves exactly like an absent one.
type Repository interface {
	// -------- Business --------
	GetBusinessByID(
		ctx context.Context,
		id string,
	) (*models.Business, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		businessID string,
		serviceID string,
	) (*models.Service, error)

	// -------- Customer / Vehicle --------
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

	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// HasTimeConflict reports a non-cancelled appointment of the business on
	// date overlapping [start, end). excludeID skips one appointment's own
	// occupancy during updates; pass "" on creation.
	HasTimeConflict(
		ctx context.Context,
		businessID string,
		date string,
		start string,
		end string,
		excludeID string,
	) (bool, error)

	// -------- Appointment (read / state change) --------
	GetAppointment(
		ctx context.Context,
		businessID string,
		appointmentID string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		businessID string,
		appointmentID string,
	) error

	// -------- Availability / listing --------
	ListAppointmentsForDay(
		ctx context.Context,
		businessID string,
		date string,
	) ([]models.Appointment, error)

	ListAppointments(
		ctx context.Context,
		businessID string,
		filter ListFilter,
	) ([]models.Appointment, int64, error)
}
