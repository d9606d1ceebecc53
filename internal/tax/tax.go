// Package tax derives VAT amounts and document totals from a taxable base
// and a VAT rate expressed as a percentage. All math is exact decimal; any
// rounding for display belongs to the rendering layer.
package tax

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// VATAmount returns base * rate / 100.
func VATAmount(base, rate decimal.Decimal) decimal.Decimal {
	return base.Mul(rate).Div(hundred)
}

// Total returns base plus its VAT amount.
func Total(base, rate decimal.Decimal) decimal.Decimal {
	return base.Add(VATAmount(base, rate))
}
