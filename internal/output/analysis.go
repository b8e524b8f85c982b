package output

import (
	"sort"

	"github.com/rpgo/fire-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the selection result of the best plan.
type Recommendation struct {
	PlanName            string
	MonthlyContribution decimal.Decimal
	FireNumber          decimal.Decimal
	// SavingsVsHighest is how much less per month the plan needs than the
	// most demanding plan in the comparison.
	SavingsVsHighest decimal.Decimal
	OnTrack          bool
}

// AnalyzePlans picks the plan that needs the lowest monthly contribution.
// Ties go to the smaller FIRE number, then to the name.
func AnalyzePlans(results *domain.PlanComparison) Recommendation {
	if results == nil || len(results.Plans) == 0 {
		return Recommendation{}
	}
	plans := append([]domain.PlanResult(nil), results.Plans...)
	sort.SliceStable(plans, func(i, j int) bool {
		a, b := plans[i], plans[j]
		if !a.MonthlyContribution.Equal(b.MonthlyContribution) {
			return a.MonthlyContribution.LessThan(b.MonthlyContribution)
		}
		if !a.FireNumber.Equal(b.FireNumber) {
			return a.FireNumber.LessThan(b.FireNumber)
		}
		return a.Name < b.Name
	})
	best := plans[0]
	highest := plans[len(plans)-1].MonthlyContribution
	return Recommendation{
		PlanName:            best.Name,
		MonthlyContribution: best.MonthlyContribution,
		FireNumber:          best.FireNumber,
		SavingsVsHighest:    highest.Sub(best.MonthlyContribution),
		OnTrack:             best.Status == domain.StatusOnTrack,
	}
}
