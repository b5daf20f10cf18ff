package decimal

import (
	"testing"

	stddec "github.com/shopspring/decimal"
)

func TestNewMoneyFromDecimal(t *testing.T) {
	d := stddec.NewFromFloat(10.125)
	m := NewMoneyFromDecimal(d)
	if !m.Decimal.Equal(d) {
		t.Fatalf("NewMoneyFromDecimal mismatch: got %s want %s", m.Decimal, d)
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"0", "$0.00"},
		{"999.5", "$999.50"},
		{"1234.5", "$1,234.50"},
		{"1234567.891", "$1,234,567.89"},
		{"-98765.4", "-$98,765.40"},
		{"-0.001", "$0.00"},
		{"100000", "$100,000.00"},
	}
	for _, c := range cases {
		if got := NewMoneyFromDecimal(stddec.RequireFromString(c.in)).Format(); got != c.out {
			t.Fatalf("Format(%s) got %s want %s", c.in, got, c.out)
		}
	}
}

func TestPercentConversions(t *testing.T) {
	if got := FromPercent(stddec.NewFromInt(7)); !got.Equal(stddec.NewFromFloat(0.07)) {
		t.Fatalf("FromPercent got %s", got)
	}
	if got := ToPercent(stddec.NewFromFloat(0.035)); !got.Equal(stddec.NewFromFloat(3.5)) {
		t.Fatalf("ToPercent got %s", got)
	}
}

func TestGrowthFactor(t *testing.T) {
	rate := stddec.NewFromFloat(0.10)
	if got := GrowthFactor(rate, 0); !got.Equal(stddec.NewFromInt(1)) {
		t.Fatalf("GrowthFactor(0) got %s", got)
	}
	if got := GrowthFactor(rate, 2); !got.Equal(stddec.NewFromFloat(1.21)) {
		t.Fatalf("GrowthFactor(2) got %s", got)
	}
	if got := GrowthFactor(rate, 3); !got.Equal(stddec.NewFromFloat(1.331)) {
		t.Fatalf("GrowthFactor(3) got %s", got)
	}
	if got := GrowthFactor(stddec.Zero, 40); !got.Equal(stddec.NewFromInt(1)) {
		t.Fatalf("GrowthFactor zero rate got %s", got)
	}
}
