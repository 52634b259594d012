package models

import "time"

type Vehicle struct {
	ID         string `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID string `gorm:"type:uuid;index;not null" json:"customer_id"`

	Type  string `gorm:"size:20;default:'CAR'" json:"type"`
	Brand string `gorm:"size:50" json:"brand"`
	Model string `gorm:"size:50" json:"model"`
	Plate string `gorm:"size:10" json:"plate"`
	Color string `gorm:"size:30" json:"color"`
	Year  int    `json:"year"`

	IsDefault bool   `gorm:"default:false" json:"is_default"`
	PhotoURL  string `gorm:"size:255" json:"photo_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
