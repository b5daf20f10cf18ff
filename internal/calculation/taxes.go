package calculation

import (
	"github.com/rpgo/rothtrad/internal/domain"
	dec "github.com/rpgo/rothtrad/pkg/decimal"
	"github.com/shopspring/decimal"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Federal income tax only, single filer, progressive brackets.
// 2. Bracket bounds (not rates) are indexed by the inflation rate each year:
//    bound' = bound * (1 + inflation)^yearsElapsed. The top bracket stays unbounded.
// 3. No state or local tax, no credits, no payroll taxes.

// bracket is the evaluated form of a domain.TaxBracket: rate as a fraction.
type bracket struct {
	lower     decimal.Decimal
	upper     decimal.Decimal
	unbounded bool
	rate      decimal.Decimal
}

// BracketTable is a validated progressive tax schedule. It is immutable;
// Inflated derives a new table instead of modifying the receiver.
type BracketTable struct {
	brackets []bracket
}

// NewBracketTable validates records and builds a table from them.
func NewBracketTable(records []domain.TaxBracket) (*BracketTable, error) {
	if err := ValidateBrackets(records); err != nil {
		return nil, err
	}
	t := &BracketTable{brackets: make([]bracket, len(records))}
	for i, r := range records {
		b := bracket{lower: r.Min, unbounded: r.Max == nil, rate: dec.FromPercent(r.Rate)}
		if r.Max != nil {
			b.upper = *r.Max
		}
		t.brackets[i] = b
	}
	return t, nil
}

// DefaultTaxBrackets returns the 2024 single-filer federal schedule.
func DefaultTaxBrackets() []domain.TaxBracket {
	bound := func(v int64) *decimal.Decimal {
		d := decimal.NewFromInt(v)
		return &d
	}
	return []domain.TaxBracket{
		{Min: decimal.Zero, Max: bound(11600), Rate: decimal.NewFromInt(10)},
		{Min: decimal.NewFromInt(11600), Max: bound(47150), Rate: decimal.NewFromInt(12)},
		{Min: decimal.NewFromInt(47150), Max: bound(100525), Rate: decimal.NewFromInt(22)},
		{Min: decimal.NewFromInt(100525), Max: bound(191950), Rate: decimal.NewFromInt(24)},
		{Min: decimal.NewFromInt(191950), Max: bound(243725), Rate: decimal.NewFromInt(32)},
		{Min: decimal.NewFromInt(243725), Max: bound(609350), Rate: decimal.NewFromInt(35)},
		{Min: decimal.NewFromInt(609350), Rate: decimal.NewFromInt(37)},
	}
}

// DefaultBracketTable builds a table from DefaultTaxBrackets.
func DefaultBracketTable() *BracketTable {
	t, err := NewBracketTable(DefaultTaxBrackets())
	if err != nil {
		panic("default tax brackets are invalid: " + err.Error())
	}
	return t
}

// BracketsFromUpperBounds assembles bracket records from the tabular form used by
// the interactive calculator: each row gives an upper bound and a rate, the lower
// bound is the previous row's upper bound (0 for the first), and a final
// "anything above topLower" row carries topRate.
func BracketsFromUpperBounds(uppers, rates []decimal.Decimal, topLower, topRate decimal.Decimal) ([]domain.TaxBracket, error) {
	if len(uppers) != len(rates) {
		var probs problems
		probs.addBracket("tax_brackets", "got %d upper bounds but %d rates", len(uppers), len(rates))
		return nil, probs.err()
	}
	out := make([]domain.TaxBracket, 0, len(uppers)+1)
	lower := decimal.Zero
	for i := range uppers {
		upper := uppers[i]
		out = append(out, domain.TaxBracket{Min: lower, Max: &upper, Rate: rates[i]})
		lower = upper
	}
	out = append(out, domain.TaxBracket{Min: topLower, Rate: topRate})
	if err := ValidateBrackets(out); err != nil {
		return nil, err
	}
	return out, nil
}

// Inflated returns the table with every finite bound scaled by
// (1 + inflationRate)^yearsElapsed. inflationRate is a fraction.
func (t *BracketTable) Inflated(inflationRate decimal.Decimal, yearsElapsed int) *BracketTable {
	factor := dec.GrowthFactor(inflationRate, yearsElapsed)
	out := &BracketTable{brackets: make([]bracket, len(t.brackets))}
	for i, b := range t.brackets {
		out.brackets[i] = scale(b, factor)
	}
	return out
}

func scale(b bracket, factor decimal.Decimal) bracket {
	b.lower = b.lower.Mul(factor)
	if !b.unbounded {
		b.upper = b.upper.Mul(factor)
	}
	return b
}

// Tax computes progressive tax on income after indexing the bounds for
// yearsElapsed years of inflation. Income at or below the first lower bound owes nothing.
func (t *BracketTable) Tax(income, inflationRate decimal.Decimal, yearsElapsed int) decimal.Decimal {
	factor := dec.GrowthFactor(inflationRate, yearsElapsed)
	total := decimal.Zero
	for _, raw := range t.brackets {
		b := scale(raw, factor)
		if income.LessThanOrEqual(b.lower) {
			break
		}
		if !b.unbounded && income.GreaterThan(b.upper) {
			total = total.Add(b.upper.Sub(b.lower).Mul(b.rate))
			continue
		}
		total = total.Add(income.Sub(b.lower).Mul(b.rate))
		break
	}
	return total
}

// Records converts the table back to bracket records with percentage rates.
func (t *BracketTable) Records() []domain.TaxBracket {
	out := make([]domain.TaxBracket, len(t.brackets))
	for i, b := range t.brackets {
		r := domain.TaxBracket{Min: b.lower, Rate: dec.ToPercent(b.rate)}
		if !b.unbounded {
			upper := b.upper
			r.Max = &upper
		}
		out[i] = r
	}
	return out
}

// Len returns the number of brackets.
func (t *BracketTable) Len() int { return len(t.brackets) }

// CalculateTax validates records and evaluates them in one call. Rates are percentages.
func CalculateTax(income decimal.Decimal, records []domain.TaxBracket, inflationPercent decimal.Decimal, yearsElapsed int) (decimal.Decimal, error) {
	t, err := NewBracketTable(records)
	if err != nil {
		return decimal.Zero, err
	}
	return t.Tax(income, dec.FromPercent(inflationPercent), yearsElapsed), nil
}
