//go:build unit

package output

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	v := decimal.NewFromFloat(1234.567)
	got := FormatCurrency(v)
	want := "$1,234.57"
	if got != want {
		t.Errorf("FormatCurrency(%v) = %q, want %q", v, got, want)
	}
}

func TestFormatCurrencyNegative(t *testing.T) {
	v := decimal.NewFromInt(-1500000)
	if got, want := FormatCurrency(v), "-$1,500,000.00"; got != want {
		t.Errorf("FormatCurrency(%v) = %q, want %q", v, got, want)
	}
}

func TestFormatPercentage(t *testing.T) {
	v := decimal.NewFromFloat(12.3456)
	got := FormatPercentage(v)
	want := "12.35%"
	if got != want {
		t.Errorf("FormatPercentage(%v) = %q, want %q", v, got, want)
	}
}

func TestFormatShare(t *testing.T) {
	if got, want := FormatShare(decimal.RequireFromString("0.4")), "40.00%"; got != want {
		t.Errorf("FormatShare(0.4) = %q, want %q", got, want)
	}
}
