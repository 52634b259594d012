package appointment

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/ArthurMoreiraS/OperlyService/internal/models"
	"github.com/ArthurMoreiraS/OperlyService/internal/timeutil"

	domain "github.com/ArthurMoreiraS/OperlyService/internal/domain/appointment"
)

// fakeRepo is an in-memory stand-in for the gorm repository, used to drive
// the scheduling use cases without a database.
type fakeRepo struct {
	business     *models.Business
	services     map[string]*models.Service
	customers    map[string]*models.Customer
	vehicles     map[string]*models.Vehicle
	appointments map[string]*models.Appointment
}

func newFakeRepo(biz *models.Business) *fakeRepo {
	return &fakeRepo{
		business:     biz,
		services:     map[string]*models.Service{},
		customers:    map[string]*models.Customer{},
		vehicles:     map[string]*models.Vehicle{},
		appointments: map[string]*models.Appointment{},
	}
}

func (f *fakeRepo) GetBusinessByID(_ context.Context, id string) (*models.Business, error) {
	if f.business == nil || f.business.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return f.business, nil
}

func (f *fakeRepo) GetService(_ context.Context, businessID, serviceID string) (*models.Service, error) {
	svc, ok := f.services[serviceID]
	if !ok || svc.BusinessID != businessID {
		return nil, gorm.ErrRecordNotFound
	}
	return svc, nil
}

func (f *fakeRepo) GetCustomer(_ context.Context, businessID, customerID string) (*models.Customer, error) {
	c, ok := f.customers[customerID]
	if !ok || c.BusinessID != businessID {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeRepo) GetVehicle(_ context.Context, customerID, vehicleID string) (*models.Vehicle, error) {
	v, ok := f.vehicles[vehicleID]
	if !ok || v.CustomerID != customerID {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	cp := *ap
	f.appointments[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) HasTimeConflict(_ context.Context, businessID, date, start, end, excludeID string) (bool, error) {
	for _, ap := range f.appointments {
		if ap.BusinessID != businessID || ap.Date != date || ap.ID == excludeID {
			continue
		}
		if domain.Status(ap.Status) == domain.StatusCancelled {
			continue
		}
		if timeutil.Overlaps(start, end, ap.StartTime, ap.EndTime) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, businessID, appointmentID string) (*models.Appointment, error) {
	ap, ok := f.appointments[appointmentID]
	if !ok || ap.BusinessID != businessID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *ap
	return &cp, nil
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	cp := *ap
	f.appointments[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) DeleteAppointment(_ context.Context, businessID, appointmentID string) error {
	delete(f.appointments, appointmentID)
	return nil
}

func (f *fakeRepo) ListAppointmentsForDay(_ context.Context, businessID, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.BusinessID == businessID && ap.Date == date &&
			domain.Status(ap.Status) != domain.StatusCancelled {
			out = append(out, *ap)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out, nil
}

func (f *fakeRepo) ListAppointments(_ context.Context, businessID string, filter domain.ListFilter) ([]models.Appointment, int64, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.BusinessID != businessID {
			continue
		}
		if filter.Date != "" && ap.Date != filter.Date {
			continue
		}
		if filter.Status != "" && ap.Status != filter.Status {
			continue
		}
		out = append(out, *ap)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out, int64(len(out)), nil
}

var _ domain.Repository = (*fakeRepo)(nil)
