package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Symbol is prefixed to every formatted amount.
const Symbol = "₹"

var (
	crore = decimal.NewFromInt(10000000)

	// en-IN groups digits in lakhs and crores (12,34,56,789).
	printer = message.NewPrinter(language.MustParse("en-IN"))
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Format renders the amount with the currency symbol, Indian digit grouping
// and no fractional part.
func (m Money) Format() string {
	return m.format(0)
}

// FormatFixed renders the amount like Format with the given fractional digits.
func (m Money) FormatFixed(places int) string {
	return m.format(places)
}

func (m Money) format(places int) string {
	v := m.Decimal.Round(int32(places))
	sign := ""
	if v.IsNegative() {
		sign = "-"
		v = v.Neg()
	}
	s := printer.Sprint(number.Decimal(v.InexactFloat64(),
		number.MinFractionDigits(places),
		number.MaxFractionDigits(places),
	))
	return sign + Symbol + s
}

// Compact renders amounts of a crore or more as "₹x.xx Cr." and everything
// else with two decimal places.
func (m Money) Compact() string {
	if m.Decimal.Abs().GreaterThan(crore) {
		return Money{m.Decimal.Div(crore)}.FormatFixed(2) + " Cr."
	}
	return m.FormatFixed(2)
}
