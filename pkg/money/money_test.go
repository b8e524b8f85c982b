package money

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// digits strips the symbol, grouping separators and unit suffix.
func digits(formatted string) string {
	return strings.NewReplacer(Symbol, "", ",", "", " Cr.", "").Replace(formatted)
}

func amount(v int64) Money {
	return NewMoneyFromDecimal(decimal.NewFromInt(v))
}

func TestFormat(t *testing.T) {
	got := amount(120800000).Format()
	assert.Contains(t, got, Symbol)
	assert.Equal(t, "120800000", digits(got))

	neg := amount(-223910).Format()
	assert.Equal(t, "-", neg[:1])
	assert.Equal(t, "-223910", digits(neg))
}

func TestFormatFixed(t *testing.T) {
	m := NewMoneyFromDecimal(decimal.RequireFromString("121631672.905"))
	assert.Equal(t, "121631672.91", digits(m.FormatFixed(2)))
	assert.Equal(t, "121631673", digits(m.Format()))
}

func TestCompact(t *testing.T) {
	assert.Equal(t, "12.08", digits(amount(120800000).Compact()))
	assert.Contains(t, amount(120800000).Compact(), "Cr.")
	assert.Equal(t, "950000.00", digits(amount(950000).Compact()))
	assert.NotContains(t, amount(950000).Compact(), "Cr.")
}
