package statement

import "github.com/shopspring/decimal"

// tolerance absorbs decimal drift when comparing the two sides of the
// accounting identity: 1/100 of the smallest currency unit in use.
var tolerance = decimal.NewFromFloat(0.01)

// Verification is the result of an accounting-identity check.
type Verification struct {
	Balanced   bool
	Difference decimal.Decimal
}

// Check computes TotalAssets - (TotalLiabilities + TotalEquity) and
// reports whether the books balance within tolerance. An imbalance is
// a reported condition, never an error.
func Check(g *Generator) Verification {
	diff := g.TotalAssets().Sub(g.TotalLiabilities().Add(g.TotalEquity()))
	return Verification{
		Balanced:   diff.Abs().LessThan(tolerance),
		Difference: diff,
	}
}
