package models

import "time"

// Walk-in or registered customer, no login, scoped to one business.
// Phone is the natural identity inside a business.
type Customer struct {
	ID         string `gorm:"type:uuid;primaryKey" json:"id"`
	BusinessID string `gorm:"type:uuid;not null;uniqueIndex:udx_customer_phone,priority:1" json:"business_id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20;not null;uniqueIndex:udx_customer_phone,priority:2" json:"phone"`
	Email string `gorm:"size:100" json:"email"`
	Notes string `gorm:"size:255" json:"notes"`

	Vehicles []Vehicle `gorm:"foreignKey:CustomerID" json:"vehicles,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
