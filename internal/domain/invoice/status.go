package invoice

import (
	"time"

	"github.com/shopspring/decimal"
)

// ===============================
// Invoice Status
// ===============================

type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusPending   Status = "PENDING"
	StatusPartial   Status = "PARTIAL"
	StatusPaid      Status = "PAID"
	StatusCancelled Status = "CANCELLED"
	StatusOverdue   Status = "OVERDUE"
)

// Derive is the single source of truth for invoice status. It is a pure
// function of the payment state, so it can be re-run after any mutation
// without drift:
//
//	CANCELLED            stays CANCELLED
//	paid >= total, paid>0  -> PAID
//	paid > 0             -> PARTIAL
//	never issued         -> DRAFT
//	due date passed      -> OVERDUE
//	otherwise            -> PENDING
//
// Deriving from the issued flag rather than the previously stored status
// lets a payment removal walk PAID back through PARTIAL all the way to
// PENDING or OVERDUE.
func Derive(
	cancelled bool,
	issued bool,
	paid decimal.Decimal,
	total decimal.Decimal,
	dueDate *time.Time,
	now time.Time,
) Status {
	if cancelled {
		return StatusCancelled
	}
	if paid.IsPositive() && paid.GreaterThanOrEqual(total) {
		return StatusPaid
	}
	if paid.IsPositive() {
		return StatusPartial
	}
	if !issued {
		return StatusDraft
	}
	if dueDate != nil && dueDate.Before(now) {
		return StatusOverdue
	}
	return StatusPending
}

// ===============================
// Payment Method
// ===============================

type PaymentMethod string

const (
	MethodCash         PaymentMethod = "CASH"
	MethodCreditCard   PaymentMethod = "CREDIT_CARD"
	MethodDebitCard    PaymentMethod = "DEBIT_CARD"
	MethodPix          PaymentMethod = "PIX"
	MethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	MethodMercadoPago  PaymentMethod = "MERCADO_PAGO"
	MethodOther        PaymentMethod = "OTHER"
)

var methods = map[PaymentMethod]struct{}{
	MethodCash:         {},
	MethodCreditCard:   {},
	MethodDebitCard:    {},
	MethodPix:          {},
	MethodBankTransfer: {},
	MethodMercadoPago:  {},
	MethodOther:        {},
}

func IsValidMethod(m PaymentMethod) bool {
	_, ok := methods[m]
	return ok
}
