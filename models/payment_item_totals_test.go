package models_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/smoothestguy/commandx_backend/models"
)

func TestComputeItemTotals(t *testing.T) {
	cases := []struct {
		name          string
		unitPrice     string
		originalQty   string
		actualQty     string
		expectedTotal string
		expectedActua string
	}{
		{"whole units", "25.00", "4", "4", "100", "100"},
		{"actual differs", "25.00", "4", "6", "100", "150"},
		{"fractional quantity", "10.50", "2.5", "2.5", "26.25", "26.25"},
		{"fractional price", "0.3333", "3", "3", "0.9999", "0.9999"},
		{"zero quantity", "25.00", "0", "0", "0", "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			total, actualTotal := models.ComputeItemTotals(
				decimal.RequireFromString(tc.unitPrice),
				decimal.RequireFromString(tc.originalQty),
				decimal.RequireFromString(tc.actualQty),
			)
			if !total.Equal(decimal.RequireFromString(tc.expectedTotal)) {
				t.Fatalf("total: expected %s, got %s", tc.expectedTotal, total)
			}
			if !actualTotal.Equal(decimal.RequireFromString(tc.expectedActua)) {
				t.Fatalf("actual total: expected %s, got %s", tc.expectedActua, actualTotal)
			}
		})
	}
}

func TestComputeItemTotalsIgnoresClientTotal(t *testing.T) {
	// The server recomputes from factors; a mismatched client total must
	// never survive. 25.00 * 4 is 100 regardless of what the payload said.
	total, _ := models.ComputeItemTotals(
		decimal.RequireFromString("25.00"),
		decimal.NewFromInt(4),
		decimal.NewFromInt(4),
	)
	if !total.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected 100, got %s", total)
	}
}
