package utils

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSafePercentage(t *testing.T) {
	cases := []struct {
		part     string
		total    string
		expected string
	}{
		{"350.50", "2000", "17.525"},
		{"0", "2000", "0"},
		{"500", "0", "0"},
		{"2000", "2000", "100"},
	}
	for _, tc := range cases {
		got := SafePercentage(decimal.RequireFromString(tc.part), decimal.RequireFromString(tc.total))
		if !got.Equal(decimal.RequireFromString(tc.expected)) {
			t.Fatalf("SafePercentage(%s, %s): expected %s, got %s", tc.part, tc.total, tc.expected, got)
		}
	}
}

func TestUniqueSlice(t *testing.T) {
	got := UniqueSlice([]int{3, 1, 3, 2, 1})
	if len(got) != 3 || got[0] != 3 || got[1] != 1 || got[2] != 2 {
		t.Fatalf("expected [3 1 2], got %v", got)
	}
	if got := UniqueSlice([]int{}); len(got) != 0 {
		t.Fatalf("expected empty, got %v", got)
	}
}

func TestIsValidEmail(t *testing.T) {
	if !IsValidEmail("ops@commandx.build") {
		t.Fatalf("expected valid email")
	}
	if IsValidEmail("not-an-email") {
		t.Fatalf("expected invalid email")
	}
}
