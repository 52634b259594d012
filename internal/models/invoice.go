package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Invoice struct {
	ID         string `gorm:"type:uuid;primaryKey" json:"id"`
	BusinessID string `gorm:"type:uuid;not null;uniqueIndex:udx_invoice_number,priority:1" json:"business_id"`

	// Sequential per business, formatted NF-0001, NF-0002, ...
	Number string `gorm:"size:20;not null;uniqueIndex:udx_invoice_number,priority:2" json:"number"`

	CustomerID string   `gorm:"type:uuid;index;not null" json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer,omitempty"`

	// Optional 1:1 link; uniqueness enforced by the storage layer.
	AppointmentID *string      `gorm:"type:uuid;uniqueIndex:udx_invoice_appointment" json:"appointment_id"`
	Appointment   *Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Status string `gorm:"size:20;default:'DRAFT'" json:"status"`

	Subtotal   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	Discount   decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"discount"`
	Total      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	PaidAmount decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"paid_amount"`

	IssuedAt *time.Time `json:"issued_at"`
	DueDate  *time.Time `json:"due_date"`
	PaidAt   *time.Time `json:"paid_at"`

	Notes string `gorm:"size:255" json:"notes"`

	Items    []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items,omitempty"`
	Payments []Payment     `gorm:"foreignKey:InvoiceID" json:"payments,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type InvoiceItem struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	InvoiceID string `gorm:"type:uuid;index;not null" json:"invoice_id"`

	ServiceID   *string         `gorm:"type:uuid" json:"service_id"`
	Description string          `gorm:"size:255;not null" json:"description"`
	Quantity    int             `gorm:"default:1" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	LineTotal   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"line_total"`

	CreatedAt time.Time `json:"created_at"`
}
