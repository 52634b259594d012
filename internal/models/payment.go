package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment rows are immutable once created; the only mutation is deletion,
// which triggers an invoice status recomputation.
type Payment struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	InvoiceID string `gorm:"type:uuid;index;not null" json:"invoice_id"`

	Amount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Method string          `gorm:"size:20;not null" json:"method"`
	PaidAt time.Time       `json:"paid_at"`
	Notes  string          `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
}
