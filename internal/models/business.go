package models

import "time"

type Business struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name string `gorm:"size:100;not null" json:"name"`
	Slug string `gorm:"size:100;uniqueIndex;not null" json:"slug"`

	Phone   string `gorm:"size:20" json:"phone"`
	Address string `gorm:"size:255" json:"address"`

	// Weekdays the business takes bookings on, e.g. ["MONDAY","TUESDAY"].
	OperatingDays []string `gorm:"serializer:json" json:"operating_days"`

	OpenTime        string `gorm:"size:5;default:'08:00'" json:"open_time"`
	CloseTime       string `gorm:"size:5;default:'18:00'" json:"close_time"`
	SlotDurationMin int    `gorm:"default:30" json:"slot_duration_min"`

	Onboarded bool   `gorm:"default:false" json:"onboarded"`
	LogoURL   string `gorm:"size:255" json:"logo_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
