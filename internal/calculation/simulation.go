package calculation

import (
	"github.com/rpgo/fire-planner/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// BuildBreakdown splits the projected corpus into initial capital, money paid
// in and investment returns.
func BuildBreakdown(initial, monthlyContribution, projected decimal.Decimal, years int) domain.CorpusBreakdown {
	contributions := monthlyContribution.Mul(twelve).Mul(decimal.NewFromInt(int64(years)))
	return domain.CorpusBreakdown{
		InitialCapital:     initial,
		TotalContributions: contributions,
		InvestmentReturns:  projected.Sub(contributions).Sub(initial),
	}
}

// BuildCorpusGrowth returns the gross balance and year-on-year growth of the
// accumulation phase.
func BuildCorpusGrowth(accumulation domain.CorpusTrajectory) []domain.GrowthPoint {
	points := make([]domain.GrowthPoint, accumulation.Len())
	for i, yb := range accumulation {
		growth := decimal.Zero
		if i > 0 {
			growth = yb.Balance.Sub(accumulation[i-1].Balance)
		}
		points[i] = domain.GrowthPoint{Age: yb.Age, Gross: yb.Balance, NetGrowth: growth}
	}
	return points
}

// BuildSimulation assembles the combined year-by-year table. Accumulation rows
// cover the years before retirement. Withdrawal rows add the excess corpus,
// compounded at the expected return, to the withdrawal trajectory.
func BuildSimulation(pa domain.PlanAssumptions, monthlyContribution, fireNumber, excess decimal.Decimal,
	accumulation, withdrawal domain.CorpusTrajectory, schedule domain.WithdrawalSchedule) []domain.SimulationRow {
	n := pa.YearsToRetirement()
	rows := make([]domain.SimulationRow, 0, n+withdrawal.Len())

	yearly := monthlyContribution.Mul(twelve)
	for i := 0; i < n && i < accumulation.Len(); i++ {
		rows = append(rows, domain.SimulationRow{
			Age:                accumulation[i].Age,
			Phase:              domain.PhaseAccumulation,
			Corpus:             accumulation[i].Balance.RoundBank(0),
			YearlyContribution: yearly,
			MonthlyWithdrawal:  decimal.Zero,
			WithdrawalRate:     decimal.Zero,
		})
	}

	opening := fireNumber
	for i, yb := range withdrawal {
		corpus := excess.Mul(CompoundFactor(pa.ExpectedReturn, i)).Add(yb.Balance).RoundBank(0)
		rate := decimal.Zero
		if opening.IsPositive() {
			rate = schedule[i].Div(opening).Mul(hundred).Round(2)
		}
		rows = append(rows, domain.SimulationRow{
			Age:                yb.Age,
			Phase:              domain.PhaseWithdrawal,
			Corpus:             corpus,
			YearlyContribution: decimal.Zero,
			MonthlyWithdrawal:  schedule.Monthly(i).RoundBank(0),
			WithdrawalRate:     rate,
		})
		opening = corpus
	}
	return rows
}
