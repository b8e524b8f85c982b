package output

import (
	"strconv"

	"github.com/rpgo/fire-planner/pkg/money"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as whole rupees with Indian digit grouping.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatCompact renders large amounts in crores ("₹12.08 Cr.").
func FormatCompact(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Compact()
}

// FormatPercentage formats a decimal that is already a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatRate formats a fractional rate (0.12) as a percentage with one decimal.
func FormatRate(rate decimal.Decimal) string {
	return rate.Mul(decimalHundred).StringFixed(1) + "%"
}

var decimalHundred = decimal.NewFromInt(100)

func intToString(i int) string { return strconv.Itoa(i) }
