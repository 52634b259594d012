package appointment

import "time"

// ===============================
// Operating days
// ===============================

type Weekday string

const (
	Sunday    Weekday = "SUNDAY"
	Monday    Weekday = "MONDAY"
	Tuesday   Weekday = "TUESDAY"
	Wednesday Weekday = "WEDNESDAY"
	Thursday  Weekday = "THURSDAY"
	Friday    Weekday = "FRIDAY"
	Saturday  Weekday = "SATURDAY"
)

var weekdayNames = map[time.Weekday]Weekday{
	time.Sunday:    Sunday,
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
}

func WeekdayOf(t time.Time) Weekday {
	return weekdayNames[t.Weekday()]
}

func IsValidWeekday(w string) bool {
	for _, name := range weekdayNames {
		if string(name) == w {
			return true
		}
	}
	return false
}

// IsOperatingDay checks a date's weekday against the business's operating
// day set (stored as weekday names).
func IsOperatingDay(date time.Time, operatingDays []string) bool {
	day := string(WeekdayOf(date))
	for _, d := range operatingDays {
		if d == day {
			return true
		}
	}
	return false
}
