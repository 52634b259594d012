package models

import "time"

// Appointment occupies the half-open range [StartTime, EndTime) on Date.
//
// The partial unique index on (business_id, date, start_time) is the
// authoritative double-booking guard: two concurrent creations for the same
// slot can both pass the application-level overlap check, but only one insert
// survives. Cancelled rows are excluded so a freed slot can be rebooked.
type Appointment struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	BusinessID string   `gorm:"type:uuid;not null;uniqueIndex:udx_business_slot,priority:1,where:status <> 'CANCELLED'" json:"business_id"`
	Business   Business `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	CustomerID string   `gorm:"type:uuid;index;not null" json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer,omitempty"`

	ServiceID string  `gorm:"type:uuid;index;not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service,omitempty"`

	VehicleID *string  `gorm:"type:uuid" json:"vehicle_id"`
	Vehicle   *Vehicle `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"vehicle,omitempty"`

	Date      string `gorm:"size:10;index;not null;uniqueIndex:udx_business_slot,priority:2" json:"date"`
	StartTime string `gorm:"size:5;not null;uniqueIndex:udx_business_slot,priority:3" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	Status string `gorm:"size:20;default:'PENDING'" json:"status"`

	// True when booked through the public page, false for staff bookings.
	PublicOrigin bool   `gorm:"default:false" json:"public_origin"`
	Notes        string `gorm:"size:255" json:"notes"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
