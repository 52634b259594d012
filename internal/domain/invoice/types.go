package invoice

import (
	"time"

	"github.com/shopspring/decimal"
)

type ItemInput struct {
	ServiceID   *string         `json:"service_id"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

type CreateInput struct {
	CustomerID    string
	Items         []ItemInput
	Discount      decimal.Decimal
	DueDate       *time.Time
	Notes         string
	AutoIssue     bool
	AppointmentID *string
}

type CreateFromAppointmentInput struct {
	AppointmentID string
	Discount      decimal.Decimal
	DueDate       *time.Time
	Notes         string
	AutoIssue     bool
}

type UpdateInput struct {
	Discount *decimal.Decimal
	DueDate  *time.Time
	Notes    *string
}

type ListFilter struct {
	Status     string
	CustomerID string
	Page       int
	Limit      int
}
