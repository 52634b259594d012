package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Service struct {
	ID         string `gorm:"type:uuid;primaryKey" json:"id"`
	BusinessID string `gorm:"type:uuid;index;not null" json:"business_id"`

	Name        string          `gorm:"size:100;not null" json:"name"`
	Description string          `gorm:"size:255" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	DurationMin int             `json:"duration_min"`
	Active      bool            `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
