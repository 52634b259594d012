package appointment

import (
	"github.com/ArthurMoreiraS/OperlyService/internal/httperr"
	"github.com/ArthurMoreiraS/OperlyService/internal/models"
	"github.com/ArthurMoreiraS/OperlyService/internal/timeutil"

	domain "github.com/ArthurMoreiraS/OperlyService/internal/domain/appointment"
)

// validateWindow checks that [start, start+duration) falls on an operating
// day and inside business hours, returning the computed end time. Shared by
// creation and any update that touches date, time or service.
func validateWindow(
	biz *models.Business,
	date string,
	start string,
	durationMin int,
) (string, error) {

	day, err := timeutil.ParseDate(date)
	if err != nil {
		return "", httperr.BadRequest("invalid_date")
	}

	if !timeutil.IsValidClock(start) {
		return "", httperr.BadRequest("invalid_time")
	}

	if !domain.IsOperatingDay(day, biz.OperatingDays) {
		return "", httperr.BadRequest("outside_operating_days")
	}

	startMin, err := timeutil.TimeToMinutes(start)
	if err != nil {
		return "", httperr.BadRequest("invalid_time")
	}
	openMin, err := timeutil.TimeToMinutes(biz.OpenTime)
	if err != nil {
		return "", httperr.BadRequest("business_hours_not_configured")
	}
	closeMin, err := timeutil.TimeToMinutes(biz.CloseTime)
	if err != nil {
		return "", httperr.BadRequest("business_hours_not_configured")
	}

	// The window is compared in minutes: a long service can push the end
	// past midnight, where the "HH:mm" form stops being meaningful.
	endMin := startMin + durationMin
	if startMin < openMin || endMin > closeMin {
		return "", httperr.BadRequest("outside_business_hours")
	}

	return timeutil.MinutesToTime(endMin), nil
}
