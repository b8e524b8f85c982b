package calculation

import (
	"context"
	"math"

	"github.com/rpgo/fire-planner/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	corpusSearchName       = "corpus"
	contributionSearchName = "contribution"
)

// CorpusSearch describes a FIRE-number search.
type CorpusSearch struct {
	AnnualWithdrawal decimal.Decimal // first-year withdrawal, already inflated to retirement
	PortfolioReturn  decimal.Decimal
	InflationRate    decimal.Decimal
	Years            int // retirement years
	StartAge         int
	Bequest          decimal.Decimal
	Step             decimal.Decimal
	MaxIterations    int
}

// CorpusSolution is the smallest step-aligned corpus that sustains the
// withdrawal plan and still leaves at least the bequest.
type CorpusSolution struct {
	Corpus     decimal.Decimal
	Trajectory domain.CorpusTrajectory
	Schedule   domain.WithdrawalSchedule
	LeftOver   decimal.Decimal
	Iterations int // Corpus = Iterations * Step
}

// maxCandidates keeps candidate indexes inside a 32-bit int.
const maxCandidates = math.MaxInt32

var half = decimal.New(5, -1)

// SolveCorpus finds the first of the candidates step, 2*step, ... whose final
// recorded balance reaches the bequest. Candidates that provably fall short
// are skipped without being simulated; the result and its iteration count are
// those of a scan from the first candidate. A positive MaxIterations caps the
// candidate index, otherwise the cap is derived from the withdrawal plan.
func SolveCorpus(ctx context.Context, s CorpusSearch) (*CorpusSolution, error) {
	if !s.Step.IsPositive() {
		return nil, &domain.ValidationError{Field: "corpus_step", Reason: "must be positive"}
	}
	if s.PortfolioReturn.LessThanOrEqual(one.Neg()) {
		return nil, &domain.PlanUnreachableError{
			Search: corpusSearchName,
			Reason: "cannot converge with a portfolio return of -100% or less",
		}
	}

	schedule := WithdrawalPlan(s.AnnualWithdrawal, s.InflationRate, s.Years)
	first, limit, err := corpusBounds(schedule, s.PortfolioReturn, s.Bequest, s.Step)
	if err != nil {
		return nil, err
	}
	if s.MaxIterations > 0 {
		limit = s.MaxIterations
	}
	if first > limit {
		first = limit
	}

	var corpus, left, previous decimal.Decimal
	for iter := first; iter <= limit; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		corpus = s.Step.Mul(decimal.NewFromInt(int64(iter)))
		trajectory, final := runSchedule(corpus, schedule, s.PortfolioReturn, s.StartAge)
		left = leftOver(corpus, trajectory)
		if left.GreaterThanOrEqual(s.Bequest) {
			return &CorpusSolution{
				Corpus:     corpus,
				Trajectory: trajectory,
				Schedule:   schedule,
				LeftOver:   left,
				Iterations: iter,
			}, nil
		}
		// The unrounded final balance grows with the corpus while the
		// portfolio return is above -100%. A flat one means another step is
		// lost in the working precision.
		if iter > first && final.LessThanOrEqual(previous) {
			return nil, &domain.PlanUnreachableError{
				Search:       corpusSearchName,
				Reason:       "stopped converging",
				Iterations:   iter,
				BestEstimate: corpus,
				LeftOver:     left,
			}
		}
		previous = final
	}
	return nil, &domain.PlanUnreachableError{
		Search:       corpusSearchName,
		Reason:       "exceeded the iteration limit",
		Iterations:   limit,
		BestEstimate: corpus,
		LeftOver:     left,
	}
}

// corpusBounds brackets the answer of the corpus scan as candidate indexes:
// every index below lo leaves less than the bequest and index hi leaves at
// least the bequest.
//
// With n withdrawals the final running balance for a corpus c is c*G - S,
// where G = (1+r)^(n-1) and S is the withdrawals grown to the last year, give
// or take the rounding of intermediate balances. A recorded balance reaches a
// whole-unit bequest B once that exceeds B - 1/2.
func corpusBounds(schedule domain.WithdrawalSchedule, portfolioReturn, bequest, step decimal.Decimal) (lo, hi int, err error) {
	low, high := bequest, bequest
	if n := len(schedule); n > 0 {
		g := one.Add(portfolioReturn)
		growth := g.Pow(decimal.NewFromInt(int64(n - 1)))
		grown := decimal.Zero
		for _, w := range schedule {
			grown = grown.Mul(g).Add(w)
		}
		slack := decimal.New(int64(n+1), -workingPlaces).
			Mul(decimal.Max(one, g.Pow(decimal.NewFromInt(int64(n)))))
		threshold := bequest.Ceil().Sub(half).Add(grown)
		if !step.Mul(growth).GreaterThan(slack) {
			return 0, 0, &domain.PlanUnreachableError{
				Search:       corpusSearchName,
				Reason:       "corpus step is below the working precision at this portfolio return",
				BestEstimate: threshold.Div(growth).Div(step).Ceil().Mul(step),
			}
		}
		low = threshold.Sub(slack).Div(growth)
		high = threshold.Add(slack).Div(growth)
	}

	upper := high.Div(step).Ceil().Add(one)
	if upper.GreaterThan(decimal.NewFromInt(maxCandidates)) {
		return 0, 0, &domain.PlanUnreachableError{
			Search:       corpusSearchName,
			Reason:       "corpus exceeds the searchable range",
			BestEstimate: high.Div(step).Ceil().Mul(step),
		}
	}
	hi = int(upper.IntPart())
	lo = int(low.Div(step).Floor().IntPart()) - 1
	if lo < 1 {
		lo = 1
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi, nil
}

// ContributionSearch describes a required-contribution search.
type ContributionSearch struct {
	Target             decimal.Decimal // FIRE number
	CurrentInvestments decimal.Decimal
	ExpectedReturn     decimal.Decimal
	Years              int // years to retirement
	Method             domain.ContributionMethod
	Step               decimal.Decimal
	MaxIterations      int
}

// ContributionSolution is the monthly contribution that grows the current
// investments to at least the target by retirement.
type ContributionSolution struct {
	Monthly    decimal.Decimal
	Shortfall  decimal.Decimal
	Method     domain.ContributionMethod
	Iterations int
}

// Shortfall returns the gap between target and what the current investments
// grow to on their own, rounded to whole units and never negative.
func Shortfall(target, currentInvestments, expectedReturn decimal.Decimal, years int) decimal.Decimal {
	grown := currentInvestments.Mul(CompoundFactor(expectedReturn, years))
	return decimal.Max(target.Sub(grown).RoundBank(0), decimal.Zero)
}

// SolveContribution finds the monthly contribution with the configured method.
func SolveContribution(ctx context.Context, s ContributionSearch) (*ContributionSolution, error) {
	shortfall := Shortfall(s.Target, s.CurrentInvestments, s.ExpectedReturn, s.Years)
	switch s.Method {
	case domain.ContributionClosedForm:
		annual := Payment(s.ExpectedReturn, s.Years, decimal.Zero, shortfall)
		monthly := decimal.Max(annual.Neg().Div(twelve).RoundBank(0), decimal.Zero)
		return &ContributionSolution{Monthly: monthly, Shortfall: shortfall, Method: s.Method}, nil
	case domain.ContributionStepSearch, "":
		sol, err := stepContribution(ctx, s)
		if err != nil {
			return nil, err
		}
		sol.Shortfall = shortfall
		return sol, nil
	default:
		return nil, &domain.ValidationError{Field: "contribution_method", Reason: "must be step or closed_form, got " + string(s.Method)}
	}
}

func stepContribution(ctx context.Context, s ContributionSearch) (*ContributionSolution, error) {
	if !s.Step.IsPositive() {
		return nil, &domain.ValidationError{Field: "contribution_step", Reason: "must be positive"}
	}
	limit, err := contributionLimit(s)
	if err != nil {
		return nil, err
	}
	monthly := decimal.Zero
	for iter := 0; iter <= limit; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		final := finalFutureValue(s.CurrentInvestments, monthly.Mul(twelve), s.ExpectedReturn, s.Years)
		if final.GreaterThanOrEqual(s.Target) {
			return &ContributionSolution{Monthly: monthly, Method: domain.ContributionStepSearch, Iterations: iter}, nil
		}
		if iter < limit {
			monthly = monthly.Add(s.Step)
		}
	}
	return nil, &domain.PlanUnreachableError{
		Search:       contributionSearchName,
		Reason:       "exceeded the iteration limit",
		Iterations:   limit,
		BestEstimate: monthly,
	}
}

// contributionLimit is MaxIterations when set. Otherwise it is the number of
// steps past the monthly amount that closes the gap exactly, plus one unit of
// slack for rounding.
func contributionLimit(s ContributionSearch) (int, error) {
	if s.MaxIterations > 0 {
		return s.MaxIterations, nil
	}
	gap := s.Target.Sub(finalFutureValue(s.CurrentInvestments, decimal.Zero, s.ExpectedReturn, s.Years))
	perMonthlyUnit := finalFutureValue(decimal.Zero, twelve, s.ExpectedReturn, s.Years)
	if !gap.IsPositive() || !perMonthlyUnit.IsPositive() {
		return 0, nil
	}
	bound := gap.Div(perMonthlyUnit).Add(one).Div(s.Step).Ceil().Add(one)
	if bound.GreaterThan(decimal.NewFromInt(maxCandidates)) {
		return 0, &domain.PlanUnreachableError{
			Search:       contributionSearchName,
			Reason:       "contribution exceeds the searchable range",
			BestEstimate: gap.Div(perMonthlyUnit).Ceil(),
		}
	}
	return int(bound.IntPart()), nil
}
