package invoice

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestDerive(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	cases := []struct {
		name      string
		cancelled bool
		issued    bool
		paid      string
		total     string
		dueDate   *time.Time
		want      Status
	}{
		{"cancelled wins", true, true, "120", "120", &past, StatusCancelled},
		{"fully paid", false, true, "120", "120", nil, StatusPaid},
		{"overpaid rounding", false, true, "120.00", "119.99", nil, StatusPaid},
		{"partial", false, true, "50", "120", nil, StatusPartial},
		{"partial beats overdue", false, true, "50", "120", &past, StatusPartial},
		{"unissued draft", false, false, "0", "120", nil, StatusDraft},
		{"issued pending", false, true, "0", "120", nil, StatusPending},
		{"issued pending future due", false, true, "0", "120", &future, StatusPending},
		{"issued overdue", false, true, "0", "120", &past, StatusOverdue},
		{"zero total unissued", false, false, "0", "0", nil, StatusDraft},
	}

	for _, tc := range cases {
		got := Derive(tc.cancelled, tc.issued, d(tc.paid), d(tc.total), tc.dueDate, now)
		if got != tc.want {
			t.Errorf("%s: Derive = %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestDeriveAfterPaymentRemoval(t *testing.T) {
	// PAID walks back through PARTIAL to OVERDUE as payments are removed.
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)

	if got := Derive(false, true, d("120"), d("120"), &past, now); got != StatusPaid {
		t.Fatalf("paid: %s", got)
	}
	if got := Derive(false, true, d("50"), d("120"), &past, now); got != StatusPartial {
		t.Fatalf("after removing 70: %s", got)
	}
	if got := Derive(false, true, d("0"), d("120"), &past, now); got != StatusOverdue {
		t.Fatalf("after removing all: %s", got)
	}
}

func TestNextNumber(t *testing.T) {
	cases := []struct{ last, want string }{
		{"", "NF-0001"},
		{"NF-0001", "NF-0002"},
		{"NF-0042", "NF-0043"},
		{"NF-9999", "NF-10000"},
		{"garbage", "NF-0001"},
		{"NF-", "NF-0001"},
	}
	for _, tc := range cases {
		if got := NextNumber(tc.last); got != tc.want {
			t.Errorf("NextNumber(%q) = %q, want %q", tc.last, got, tc.want)
		}
	}
}

func TestIsValidMethod(t *testing.T) {
	if !IsValidMethod(MethodPix) || !IsValidMethod(MethodCash) {
		t.Error("known methods rejected")
	}
	if IsValidMethod(PaymentMethod("CHEQUE")) {
		t.Error("unknown method accepted")
	}
}
