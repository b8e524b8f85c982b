package calculation

import (
	"github.com/rpgo/fire-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// ProjectFutureValue returns the year-by-year balance of a corpus seeded with
// initial and fed annualContribution at the end of every year. The trajectory
// has years+1 entries; entry 0 is the initial balance.
func ProjectFutureValue(initial, annualContribution, rate decimal.Decimal, years int, startAge int) domain.CorpusTrajectory {
	if years < 0 {
		years = 0
	}
	trajectory := make(domain.CorpusTrajectory, years+1)
	for i := 0; i <= years; i++ {
		trajectory[i] = domain.YearBalance{
			YearIndex: i,
			Age:       startAge + i,
			Balance:   FutureValue(rate, i, annualContribution.Neg(), initial.Neg()),
		}
	}
	return trajectory
}

// finalFutureValue is the last entry of ProjectFutureValue without building
// the intermediate years.
func finalFutureValue(initial, annualContribution, rate decimal.Decimal, years int) decimal.Decimal {
	return FutureValue(rate, years, annualContribution.Neg(), initial.Neg())
}
