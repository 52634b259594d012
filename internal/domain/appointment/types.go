package appointment

// AvailabilityInput selects a day's slot grid for one business. Duration
// resolution order: service duration (when ServiceID set and the service is
// active), then DurationMin, then the business default.
type AvailabilityInput struct {
	BusinessID  string
	Date        string
	ServiceID   string
	DurationMin int
}

type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// ListFilter narrows an appointment listing; zero values mean "no filter".
type ListFilter struct {
	Date     string
	DateFrom string
	DateTo   string
	Status   string
	Page     int
	Limit    int
}
