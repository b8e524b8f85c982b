package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PlanAssumptions holds the user-supplied inputs for a single plan evaluation.
// Rates are fractions (0.12 = 12%).
type PlanAssumptions struct {
	CurrentAge         int             `yaml:"current_age" json:"current_age"`
	RetirementAge      int             `yaml:"retirement_age" json:"retirement_age"`
	MortalityAge       int             `yaml:"mortality_age" json:"mortality_age"`
	CurrentInvestments decimal.Decimal `yaml:"current_investments" json:"current_investments"`
	MonthlyExpenses    decimal.Decimal `yaml:"monthly_expenses" json:"monthly_expenses"`
	ExpectedReturn     decimal.Decimal `yaml:"expected_return" json:"expected_return"`
	PortfolioReturn    decimal.Decimal `yaml:"portfolio_return" json:"portfolio_return"`
	InflationRate      decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
	Bequest            decimal.Decimal `yaml:"bequest,omitempty" json:"bequest,omitempty"`

	// BirthDate is optional; when set and CurrentAge is zero the age is derived from it.
	BirthDate *time.Time `yaml:"birth_date,omitempty" json:"birth_date,omitempty"`
}

// YearsToRetirement returns the length of the accumulation phase in years.
func (pa PlanAssumptions) YearsToRetirement() int {
	return pa.RetirementAge - pa.CurrentAge
}

// RetirementYears returns the length of the withdrawal phase in years.
func (pa PlanAssumptions) RetirementYears() int {
	return pa.MortalityAge - pa.RetirementAge
}

// HasBequest reports whether a positive inheritance target was requested.
func (pa PlanAssumptions) HasBequest() bool {
	return pa.Bequest.IsPositive()
}

// Validate checks the assumption invariants. It returns a *ValidationError
// wrapping ErrInvalidAssumptions for the first violation found.
func (pa PlanAssumptions) Validate() error {
	if pa.CurrentAge < 0 {
		return newValidationError("current_age", "cannot be negative")
	}
	if pa.RetirementAge <= pa.CurrentAge {
		return newValidationError("retirement_age", fmt.Sprintf("must be greater than current age (%d), got %d", pa.CurrentAge, pa.RetirementAge))
	}
	if pa.MortalityAge < pa.RetirementAge {
		return newValidationError("mortality_age", fmt.Sprintf("cannot be less than retirement age (%d), got %d", pa.RetirementAge, pa.MortalityAge))
	}

	nonNegative := []struct {
		field string
		value decimal.Decimal
	}{
		{"current_investments", pa.CurrentInvestments},
		{"monthly_expenses", pa.MonthlyExpenses},
		{"expected_return", pa.ExpectedReturn},
		{"portfolio_return", pa.PortfolioReturn},
		{"inflation_rate", pa.InflationRate},
		{"bequest", pa.Bequest},
	}
	for _, nn := range nonNegative {
		if nn.value.IsNegative() {
			return newValidationError(nn.field, "cannot be negative")
		}
	}
	return nil
}

// GenerateAssumptions renders the assumptions as human-readable report lines.
func (pa PlanAssumptions) GenerateAssumptions() []string {
	hundred := decimal.NewFromInt(100)
	lines := []string{
		fmt.Sprintf("Current age %d, retirement age %d, planning horizon to age %d", pa.CurrentAge, pa.RetirementAge, pa.MortalityAge),
		fmt.Sprintf("Expected return while investing: %.1f%% annually", pa.ExpectedReturn.Mul(hundred).InexactFloat64()),
		fmt.Sprintf("Retirement portfolio return: %.1f%% annually", pa.PortfolioReturn.Mul(hundred).InexactFloat64()),
		fmt.Sprintf("Inflation: %.1f%% annually, applied to expenses until and during retirement", pa.InflationRate.Mul(hundred).InexactFloat64()),
		"Withdrawals are taken at the start of each retirement year, before growth",
		"Returns are fixed and compounded annually; taxes are not modelled",
	}
	if pa.HasBequest() {
		lines = append(lines, fmt.Sprintf("Inheritance target at age %d: %s", pa.MortalityAge, pa.Bequest.StringFixed(0)))
	}
	return lines
}

// ScenarioOverride is a named, partial override of the base assumptions.
// Nil fields inherit the base value.
type ScenarioOverride struct {
	Name               string           `yaml:"name" json:"name"`
	CurrentAge         *int             `yaml:"current_age,omitempty" json:"current_age,omitempty"`
	RetirementAge      *int             `yaml:"retirement_age,omitempty" json:"retirement_age,omitempty"`
	MortalityAge       *int             `yaml:"mortality_age,omitempty" json:"mortality_age,omitempty"`
	CurrentInvestments *decimal.Decimal `yaml:"current_investments,omitempty" json:"current_investments,omitempty"`
	MonthlyExpenses    *decimal.Decimal `yaml:"monthly_expenses,omitempty" json:"monthly_expenses,omitempty"`
	ExpectedReturn     *decimal.Decimal `yaml:"expected_return,omitempty" json:"expected_return,omitempty"`
	PortfolioReturn    *decimal.Decimal `yaml:"portfolio_return,omitempty" json:"portfolio_return,omitempty"`
	InflationRate      *decimal.Decimal `yaml:"inflation_rate,omitempty" json:"inflation_rate,omitempty"`
	Bequest            *decimal.Decimal `yaml:"bequest,omitempty" json:"bequest,omitempty"`
}

// Apply returns a copy of base with the override's non-nil fields applied.
func (so ScenarioOverride) Apply(base PlanAssumptions) PlanAssumptions {
	out := base
	if so.CurrentAge != nil {
		out.CurrentAge = *so.CurrentAge
	}
	if so.RetirementAge != nil {
		out.RetirementAge = *so.RetirementAge
	}
	if so.MortalityAge != nil {
		out.MortalityAge = *so.MortalityAge
	}
	if so.CurrentInvestments != nil {
		out.CurrentInvestments = *so.CurrentInvestments
	}
	if so.MonthlyExpenses != nil {
		out.MonthlyExpenses = *so.MonthlyExpenses
	}
	if so.ExpectedReturn != nil {
		out.ExpectedReturn = *so.ExpectedReturn
	}
	if so.PortfolioReturn != nil {
		out.PortfolioReturn = *so.PortfolioReturn
	}
	if so.InflationRate != nil {
		out.InflationRate = *so.InflationRate
	}
	if so.Bequest != nil {
		out.Bequest = *so.Bequest
	}
	return out
}

// Configuration is the plan input file: base assumptions plus named scenarios.
type Configuration struct {
	Base      PlanAssumptions    `yaml:"base" json:"base"`
	Scenarios []ScenarioOverride `yaml:"scenarios" json:"scenarios"`
}

// NamedScenario pairs a scenario name with its fully-resolved assumptions.
type NamedScenario struct {
	Name        string
	Assumptions PlanAssumptions
}

// ResolveScenarios applies each override to the base. A configuration with no
// scenarios yields a single scenario named "Base Plan".
func (c *Configuration) ResolveScenarios() []NamedScenario {
	if len(c.Scenarios) == 0 {
		return []NamedScenario{{Name: "Base Plan", Assumptions: c.Base}}
	}
	out := make([]NamedScenario, len(c.Scenarios))
	for i, so := range c.Scenarios {
		out[i] = NamedScenario{Name: so.Name, Assumptions: so.Apply(c.Base)}
	}
	return out
}
