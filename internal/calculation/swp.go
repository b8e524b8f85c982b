package calculation

import (
	"github.com/rpgo/fire-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// RetirementWithdrawal returns the first annual withdrawal: today's monthly
// expenses inflated to the retirement year and annualised.
func RetirementWithdrawal(monthlyExpenses, inflationRate decimal.Decimal, yearsToRetirement int) decimal.Decimal {
	return monthlyExpenses.Mul(twelve).Mul(CompoundFactor(inflationRate, yearsToRetirement)).Round(workingPlaces)
}

// WithdrawalPlan returns the annual withdrawals for each retirement year,
// starting at annualWithdrawal and growing with inflation.
func WithdrawalPlan(annualWithdrawal, inflationRate decimal.Decimal, years int) domain.WithdrawalSchedule {
	if years <= 0 {
		return domain.WithdrawalSchedule{}
	}
	growth := one.Add(inflationRate)
	schedule := make(domain.WithdrawalSchedule, years)
	w := annualWithdrawal
	for i := 0; i < years; i++ {
		schedule[i] = w
		w = w.Mul(growth).Round(workingPlaces)
	}
	return schedule
}

// SimulateWithdrawals runs the systematic withdrawal plan. Each year the
// withdrawal is taken first, the balance is recorded, then the remainder grows
// at portfolioReturn. Recorded balances are rounded to whole units and may be
// negative; the running balance is carried unrounded.
func SimulateWithdrawals(corpus, annualWithdrawal, portfolioReturn, inflationRate decimal.Decimal, years int, startAge int) (domain.CorpusTrajectory, domain.WithdrawalSchedule) {
	schedule := WithdrawalPlan(annualWithdrawal, inflationRate, years)
	trajectory, _ := runSchedule(corpus, schedule, portfolioReturn, startAge)
	return trajectory, schedule
}

// runSchedule also returns the unrounded balance behind the last recorded
// entry, or the corpus itself when the schedule is empty.
func runSchedule(corpus decimal.Decimal, schedule domain.WithdrawalSchedule, portfolioReturn decimal.Decimal, startAge int) (domain.CorpusTrajectory, decimal.Decimal) {
	growth := one.Add(portfolioReturn)
	trajectory := make(domain.CorpusTrajectory, len(schedule))
	balance := corpus
	final := corpus
	for i, w := range schedule {
		balance = balance.Sub(w)
		final = balance
		trajectory[i] = domain.YearBalance{
			YearIndex: i,
			Age:       startAge + i,
			Balance:   balance.RoundBank(0),
		}
		balance = balance.Mul(growth).Round(workingPlaces)
	}
	return trajectory, final
}

// leftOver is the balance that remains at the end of the horizon. With no
// retirement years the whole corpus is left over.
func leftOver(corpus decimal.Decimal, trajectory domain.CorpusTrajectory) decimal.Decimal {
	if trajectory.Len() == 0 {
		return corpus
	}
	return trajectory.Final()
}
