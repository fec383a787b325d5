package models_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/smoothestguy/commandx_backend/models"
)

func TestPaymentStatusFor(t *testing.T) {
	cases := []struct {
		billed   string
		paid     string
		expected models.PaymentStatus
	}{
		{"0", "0", models.PaymentStatusNotBilled},
		{"100", "0", models.PaymentStatusUnpaid},
		{"100", "50", models.PaymentStatusPartiallyPaid},
		{"100", "100", models.PaymentStatusPaid},
		{"100", "150", models.PaymentStatusPaid},
		{"100", "99.99", models.PaymentStatusPartiallyPaid},
		{"0.01", "0", models.PaymentStatusUnpaid},
	}
	for _, tc := range cases {
		got := models.PaymentStatusFor(
			decimal.RequireFromString(tc.billed),
			decimal.RequireFromString(tc.paid),
		)
		if got != tc.expected {
			t.Fatalf("PaymentStatusFor(%s, %s): expected %q, got %q", tc.billed, tc.paid, tc.expected, got)
		}
	}
}

func TestWorkOrderRetainage(t *testing.T) {
	w := models.WorkOrder{
		AmountBilled:        decimal.NewFromInt(1000),
		RetainagePercentage: decimal.NewFromInt(10),
	}
	if got := w.Retainage(); !got.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected retainage 100, got %s", got)
	}

	w.RetainagePercentage = decimal.Zero
	if got := w.Retainage(); !got.IsZero() {
		t.Fatalf("expected zero retainage, got %s", got)
	}

	w.AmountBilled = decimal.RequireFromString("2500.50")
	w.RetainagePercentage = decimal.RequireFromString("5.5")
	if got := w.Retainage(); !got.Equal(decimal.RequireFromString("137.5275")) {
		t.Fatalf("expected retainage 137.5275, got %s", got)
	}
}
