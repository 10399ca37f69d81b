package format

import (
	"testing"
	"time"
)

func TestCurrency(t *testing.T) {
	cases := []struct {
		minor    int64
		currency string
		want     string
	}{
		{120000, "INR", "₹1,200"},
		{150050, "inr", "₹1,500.50"},
		{1234567800, "INR", "₹1,23,45,678"},
		{99, "INR", "₹0.99"},
		{123456, "USD", "$1,234.56"},
		{-500, "USD", "-$5"},
		{12345, "JPY", "¥12,345"},
		{100000, "EUR", "EUR 1,000"},
	}
	for _, tc := range cases {
		if got := Currency(tc.minor, tc.currency); got != tc.want {
			t.Errorf("Currency(%d, %q) = %q, want %q", tc.minor, tc.currency, got, tc.want)
		}
	}
}

func TestYear(t *testing.T) {
	if got := Year(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)); got != 2025 {
		t.Fatalf("Year = %d", got)
	}
	if Year(time.Time{}) < 2025 {
		t.Fatalf("zero time should fall back to now")
	}
}
