package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// YearBalance is a single point on a corpus trajectory.
type YearBalance struct {
	YearIndex int             `json:"year_index"`
	Age       int             `json:"age"`
	Balance   decimal.Decimal `json:"balance"`
}

// CorpusTrajectory is the ordered year-by-year balance of one phase.
type CorpusTrajectory []YearBalance

// Len returns the number of years in the trajectory.
func (ct CorpusTrajectory) Len() int { return len(ct) }

// Final returns the last recorded balance, or zero for an empty trajectory.
func (ct CorpusTrajectory) Final() decimal.Decimal {
	if len(ct) == 0 {
		return decimal.Zero
	}
	return ct[len(ct)-1].Balance
}

// Balances returns the balances in order.
func (ct CorpusTrajectory) Balances() []decimal.Decimal {
	out := make([]decimal.Decimal, len(ct))
	for i, yb := range ct {
		out[i] = yb.Balance
	}
	return out
}

// IsDepleted reports whether any recorded balance is negative.
func (ct CorpusTrajectory) IsDepleted() bool {
	for _, yb := range ct {
		if yb.Balance.IsNegative() {
			return true
		}
	}
	return false
}

// WithdrawalSchedule holds the annual withdrawal for each retirement year,
// aligned index-for-index with the withdrawal-phase trajectory.
type WithdrawalSchedule []decimal.Decimal

// Monthly returns the monthly equivalent of the withdrawal in year i.
func (ws WithdrawalSchedule) Monthly(i int) decimal.Decimal {
	return ws[i].Div(decimal.NewFromInt(12))
}

// Total returns the sum of all scheduled withdrawals.
func (ws WithdrawalSchedule) Total() decimal.Decimal {
	total := decimal.Zero
	for _, w := range ws {
		total = total.Add(w)
	}
	return total
}

// CorpusBreakdown splits the projected retirement corpus by source.
type CorpusBreakdown struct {
	InitialCapital     decimal.Decimal `json:"initial_capital"`
	TotalContributions decimal.Decimal `json:"total_contributions"`
	InvestmentReturns  decimal.Decimal `json:"investment_returns"`
}

// Total returns the sum of all three sources.
func (cb CorpusBreakdown) Total() decimal.Decimal {
	return cb.InitialCapital.Add(cb.TotalContributions).Add(cb.InvestmentReturns)
}

// Phase names a section of the simulation table.
type Phase string

const (
	PhaseAccumulation Phase = "Accumulation"
	PhaseWithdrawal   Phase = "Withdrawal"
)

// SimulationRow is one year of the combined accumulation/withdrawal table.
type SimulationRow struct {
	Age                int             `json:"age"`
	Phase              Phase           `json:"phase"`
	Corpus             decimal.Decimal `json:"corpus"`
	YearlyContribution decimal.Decimal `json:"yearly_contribution"`
	MonthlyWithdrawal  decimal.Decimal `json:"monthly_withdrawal"`
	WithdrawalRate     decimal.Decimal `json:"withdrawal_rate"` // percent
}

// GrowthPoint is one year of accumulation growth.
type GrowthPoint struct {
	Age       int             `json:"age"`
	Gross     decimal.Decimal `json:"gross"`
	NetGrowth decimal.Decimal `json:"net_growth"`
}

// ContributionMethod selects how the required monthly contribution is found.
type ContributionMethod string

const (
	ContributionStepSearch ContributionMethod = "step"
	ContributionClosedForm ContributionMethod = "closed_form"
)

// SolverDiagnostics records how the target solver reached its answer.
type SolverDiagnostics struct {
	CorpusStep             decimal.Decimal    `json:"corpus_step"`
	CorpusIterations       int                `json:"corpus_iterations"`
	ContributionMethod     ContributionMethod `json:"contribution_method"`
	ContributionStep       decimal.Decimal    `json:"contribution_step"`
	ContributionIterations int                `json:"contribution_iterations"`
	LeftOver               decimal.Decimal    `json:"left_over"`
}

// PlanStatus summarises whether the current savings already fund the plan.
type PlanStatus string

const (
	StatusOnTrack              PlanStatus = "on_track"
	StatusContributionRequired PlanStatus = "contribution_required"
)

// PlanResult contains the solved outputs for one set of assumptions.
type PlanResult struct {
	Name        string          `json:"name"`
	Assumptions PlanAssumptions `json:"assumptions"`
	Status      PlanStatus      `json:"status"`

	MonthlyContribution       decimal.Decimal `json:"monthly_contribution"`
	FireNumber                decimal.Decimal `json:"fire_number"`
	RetirementMonthlyExpenses decimal.Decimal `json:"retirement_monthly_expenses"`
	Shortfall                 decimal.Decimal `json:"shortfall"`
	ProjectedCorpus           decimal.Decimal `json:"projected_corpus"`
	ExcessCorpus              decimal.Decimal `json:"excess_corpus"`

	Accumulation       CorpusTrajectory   `json:"accumulation"`
	Withdrawal         CorpusTrajectory   `json:"withdrawal"`
	WithdrawalSchedule WithdrawalSchedule `json:"withdrawal_schedule"`
	Breakdown          CorpusBreakdown    `json:"breakdown"`
	CorpusGrowth       []GrowthPoint      `json:"corpus_growth"`
	Simulation         []SimulationRow    `json:"simulation"`
	Diagnostics        SolverDiagnostics  `json:"diagnostics"`
}

// YearsToRetirement returns the accumulation horizon of the plan.
func (pr *PlanResult) YearsToRetirement() int {
	return pr.Assumptions.YearsToRetirement()
}

// PlanComparison groups the results of several scenarios for reporting.
type PlanComparison struct {
	GeneratedAt time.Time    `json:"generated_at"`
	Plans       []PlanResult `json:"plans"`
	Assumptions []string     `json:"assumptions"`
}
