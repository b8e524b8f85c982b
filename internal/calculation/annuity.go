package calculation

import (
	"github.com/shopspring/decimal"
)

// workingPlaces bounds the fractional digits carried by intermediate values.
// Repeated compounding would otherwise grow the decimal representation by a
// few digits every year.
const workingPlaces = 16

var (
	one    = decimal.NewFromInt(1)
	twelve = decimal.NewFromInt(12)
)

// CompoundFactor returns (1+rate)^n for a non-negative integer n.
func CompoundFactor(rate decimal.Decimal, n int) decimal.Decimal {
	if n <= 0 {
		return one
	}
	return one.Add(rate).Pow(decimal.NewFromInt(int64(n))).Round(workingPlaces)
}

// FutureValue mirrors the spreadsheet FV function with payments at the end of
// each period. Cash paid out is negative, so FutureValue(r, n, -pmt, -pv) is
// the positive balance of an account seeded with pv and fed pmt per period.
func FutureValue(rate decimal.Decimal, nper int, pmt, pv decimal.Decimal) decimal.Decimal {
	n := decimal.NewFromInt(int64(nper))
	if rate.IsZero() {
		return pv.Add(pmt.Mul(n)).Neg()
	}
	factor := CompoundFactor(rate, nper)
	annuity := factor.Sub(one).Div(rate)
	return pv.Mul(factor).Add(pmt.Mul(annuity)).Neg().Round(workingPlaces)
}

// Payment mirrors the spreadsheet PMT function with payments at the end of
// each period. It returns the per-period payment that takes pv to fv in nper
// periods; a payment made is negative.
func Payment(rate decimal.Decimal, nper int, pv, fv decimal.Decimal) decimal.Decimal {
	if nper <= 0 {
		return decimal.Zero
	}
	n := decimal.NewFromInt(int64(nper))
	if rate.IsZero() {
		return fv.Add(pv).Div(n).Neg()
	}
	factor := CompoundFactor(rate, nper)
	numerator := fv.Add(pv.Mul(factor)).Mul(rate)
	return numerator.Div(factor.Sub(one)).Neg().Round(workingPlaces)
}
