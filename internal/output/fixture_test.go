package output

import (
	"context"
	"testing"
	"time"

	"github.com/rpgo/fire-planner/internal/calculation"
	"github.com/rpgo/fire-planner/internal/domain"
	"github.com/shopspring/decimal"
)

func baseAssumptions() domain.PlanAssumptions {
	return domain.PlanAssumptions{
		CurrentAge:         30,
		RetirementAge:      60,
		MortalityAge:       80,
		CurrentInvestments: decimal.Zero,
		MonthlyExpenses:    decimal.NewFromInt(50000),
		ExpectedReturn:     decimal.RequireFromString("0.12"),
		PortfolioReturn:    decimal.RequireFromString("0.08"),
		InflationRate:      decimal.RequireFromString("0.08"),
	}
}

// sampleComparison runs the engine over a base plan and an inheritance variant.
func sampleComparison(t *testing.T) *domain.PlanComparison {
	t.Helper()
	withBequest := decimal.NewFromInt(10000000)
	cfg := &domain.Configuration{
		Base: baseAssumptions(),
		Scenarios: []domain.ScenarioOverride{
			{Name: "Without Inheritance"},
			{Name: "With Inheritance", Bequest: &withBequest},
		},
	}
	calculation.SetNowFunc(func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) })
	t.Cleanup(func() { calculation.SetNowFunc(time.Now) })
	results, err := calculation.NewPlanEngine().RunScenarios(context.Background(), cfg)
	if err != nil {
		t.Fatalf("RunScenarios: %v", err)
	}
	return results
}
