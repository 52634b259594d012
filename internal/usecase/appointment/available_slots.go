package appointment

import (
	"context"

	"github.com/ArthurMoreiraS/OperlyService/internal/clock"
	"github.com/ArthurMoreiraS/OperlyService/internal/httperr"
	"github.com/ArthurMoreiraS/OperlyService/internal/timeutil"

	domain "github.com/ArthurMoreiraS/OperlyService/internal/domain/appointment"
)

type GetAvailableSlots struct {
	repo  domain.Repository
	clock clock.Clock
}

func NewGetAvailableSlots(repo domain.Repository, clk clock.Clock) *GetAvailableSlots {
	return &GetAvailableSlots{repo: repo, clock: clk}
}

// Execute returns the day's slot grid with availability flags. A slot is
// unavailable when it overlaps a non-cancelled appointment, or when the
// queried date is today and the slot's start is already behind the clock.
// Whether a slot's end would run past closing is deliberately not checked
// here; that rule only applies at booking time.
func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	biz, err := uc.repo.GetBusinessByID(ctx, in.BusinessID)
	if err != nil {
		return nil, httperr.NotFound("business_not_found")
	}

	day, err := timeutil.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.BadRequest("invalid_date")
	}

	// Duration: service, then explicit override, then business default. An
	// inactive service contributes nothing, so the override still applies.
	duration := 0
	if in.ServiceID != "" {
		svc, err := uc.repo.GetService(ctx, in.BusinessID, in.ServiceID)
		if err != nil {
			return nil, httperr.NotFound("service_not_found")
		}
		if svc.Active {
			duration = svc.DurationMin
		}
	}
	if duration == 0 && in.DurationMin > 0 {
		duration = in.DurationMin
	}
	if duration == 0 {
		duration = biz.SlotDurationMin
	}

	if !domain.IsOperatingDay(day, biz.OperatingDays) {
		return []domain.TimeSlot{}, nil
	}

	grid, err := timeutil.GenerateSlots(biz.OpenTime, biz.CloseTime, duration)
	if err != nil {
		return nil, httperr.BadRequest("business_hours_not_configured")
	}

	booked, err := uc.repo.ListAppointmentsForDay(ctx, in.BusinessID, in.Date)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	isToday := now.Format(timeutil.DateLayout) == in.Date
	nowClock := now.Format(timeutil.ClockLayout)

	slots := make([]domain.TimeSlot, 0, len(grid))
	for _, start := range grid {
		end, err := timeutil.AddMinutes(start, duration)
		if err != nil {
			return nil, err
		}

		available := true
		if isToday && start < nowClock {
			available = false
		}
		if available {
			for _, ap := range booked {
				if domain.Status(ap.Status) == domain.StatusCancelled {
					continue
				}
				if timeutil.Overlaps(start, end, ap.StartTime, ap.EndTime) {
					available = false
					break
				}
			}
		}

		slots = append(slots, domain.TimeSlot{Time: start, Available: available})
	}

	return slots, nil
}
