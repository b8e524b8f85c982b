package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/fire-planner/internal/domain"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "github.com/rpgo/fire-planner/internal/calculation"

// Settings tunes the target solver.
type Settings struct {
	CorpusStep         decimal.Decimal
	ContributionStep   decimal.Decimal
	MaxIterations      int // caps each search when positive, zero derives the cap from the plan
	ContributionMethod domain.ContributionMethod
}

// DefaultSettings returns the solver settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		CorpusStep:         decimal.NewFromInt(100000),
		ContributionStep:   decimal.NewFromInt(1000),
		MaxIterations:      0,
		ContributionMethod: domain.ContributionStepSearch,
	}
}

// Validate checks that the settings can drive a bounded search.
func (s Settings) Validate() error {
	if !s.CorpusStep.IsPositive() {
		return fmt.Errorf("corpus step must be positive, got %s", s.CorpusStep)
	}
	if !s.ContributionStep.IsPositive() {
		return fmt.Errorf("contribution step must be positive, got %s", s.ContributionStep)
	}
	if s.MaxIterations < 0 {
		return fmt.Errorf("max iterations must not be negative, got %d", s.MaxIterations)
	}
	switch s.ContributionMethod {
	case domain.ContributionStepSearch, domain.ContributionClosedForm:
	default:
		return fmt.Errorf("unknown contribution method %q", s.ContributionMethod)
	}
	return nil
}

// PlanEngine orchestrates the projector, simulator and solver for a plan.
// It holds no mutable state and is safe for concurrent use.
type PlanEngine struct {
	Settings Settings
	Logger   Logger
}

// NewPlanEngine creates an engine with default settings.
func NewPlanEngine() *PlanEngine {
	return &PlanEngine{Settings: DefaultSettings(), Logger: NopLogger{}}
}

// NewPlanEngineWithSettings creates an engine with the given solver settings.
func NewPlanEngineWithSettings(s Settings) (*PlanEngine, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine settings: %w", err)
	}
	return &PlanEngine{Settings: s, Logger: NopLogger{}}, nil
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (pe *PlanEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// RunPlan validates the assumptions and solves the plan end to end.
func (pe *PlanEngine) RunPlan(ctx context.Context, name string, pa domain.PlanAssumptions) (*domain.PlanResult, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "PlanEngine.RunPlan")
	defer span.End()
	span.SetAttributes(
		attribute.String("plan.name", name),
		attribute.Int("plan.years_to_retirement", pa.YearsToRetirement()),
		attribute.Int("plan.retirement_years", pa.RetirementYears()),
		attribute.String("plan.contribution_method", string(pe.Settings.ContributionMethod)),
	)

	result, err := pe.runPlan(ctx, name, pa)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("solver.corpus_iterations", result.Diagnostics.CorpusIterations),
		attribute.Int("solver.contribution_iterations", result.Diagnostics.ContributionIterations),
	)
	return result, nil
}

func (pe *PlanEngine) runPlan(ctx context.Context, name string, pa domain.PlanAssumptions) (*domain.PlanResult, error) {
	if err := pa.Validate(); err != nil {
		return nil, err
	}
	n := pa.YearsToRetirement()

	firstWithdrawal := RetirementWithdrawal(pa.MonthlyExpenses, pa.InflationRate, n)
	corpus, err := SolveCorpus(ctx, CorpusSearch{
		AnnualWithdrawal: firstWithdrawal,
		PortfolioReturn:  pa.PortfolioReturn,
		InflationRate:    pa.InflationRate,
		Years:            pa.RetirementYears(),
		StartAge:         pa.RetirementAge,
		Bequest:          pa.Bequest,
		Step:             pe.Settings.CorpusStep,
		MaxIterations:    pe.Settings.MaxIterations,
	})
	if err != nil {
		pe.Logger.Warnf("plan %q: corpus search failed: %v", name, err)
		return nil, fmt.Errorf("failed to solve FIRE number for %q: %w", name, err)
	}
	pe.Logger.Debugf("plan %q: FIRE number %s after %d iterations (left over %s)",
		name, corpus.Corpus.StringFixed(0), corpus.Iterations, corpus.LeftOver.StringFixed(0))

	contribution, err := SolveContribution(ctx, ContributionSearch{
		Target:             corpus.Corpus,
		CurrentInvestments: pa.CurrentInvestments,
		ExpectedReturn:     pa.ExpectedReturn,
		Years:              n,
		Method:             pe.Settings.ContributionMethod,
		Step:               pe.Settings.ContributionStep,
		MaxIterations:      pe.Settings.MaxIterations,
	})
	if err != nil {
		pe.Logger.Warnf("plan %q: contribution search failed: %v", name, err)
		return nil, fmt.Errorf("failed to solve monthly contribution for %q: %w", name, err)
	}

	accumulation := ProjectFutureValue(pa.CurrentInvestments, contribution.Monthly.Mul(twelve), pa.ExpectedReturn, n, pa.CurrentAge)
	projected := accumulation.Final()
	excess := projected.RoundBank(0).Sub(corpus.Corpus)

	status := domain.StatusContributionRequired
	if contribution.Monthly.IsZero() {
		status = domain.StatusOnTrack
	}

	result := &domain.PlanResult{
		Name:                      name,
		Assumptions:               pa,
		Status:                    status,
		MonthlyContribution:       contribution.Monthly,
		FireNumber:                corpus.Corpus,
		RetirementMonthlyExpenses: pa.MonthlyExpenses.Mul(CompoundFactor(pa.InflationRate, n)).RoundBank(0),
		Shortfall:                 contribution.Shortfall,
		ProjectedCorpus:           projected,
		ExcessCorpus:              excess,
		Accumulation:              accumulation,
		Withdrawal:                corpus.Trajectory,
		WithdrawalSchedule:        corpus.Schedule,
		Breakdown:                 BuildBreakdown(pa.CurrentInvestments, contribution.Monthly, projected, n),
		CorpusGrowth:              BuildCorpusGrowth(accumulation),
		Simulation:                BuildSimulation(pa, contribution.Monthly, corpus.Corpus, excess, accumulation, corpus.Trajectory, corpus.Schedule),
		Diagnostics: domain.SolverDiagnostics{
			CorpusStep:             pe.Settings.CorpusStep,
			CorpusIterations:       corpus.Iterations,
			ContributionMethod:     contribution.Method,
			ContributionStep:       pe.Settings.ContributionStep,
			ContributionIterations: contribution.Iterations,
			LeftOver:               corpus.LeftOver,
		},
	}
	pe.Logger.Infof("plan %q: FIRE number %s, monthly contribution %s (%s)",
		name, result.FireNumber.StringFixed(0), result.MonthlyContribution.StringFixed(0), result.Status)
	return result, nil
}

// RunScenarios evaluates every scenario of the configuration in order.
func (pe *PlanEngine) RunScenarios(ctx context.Context, cfg *domain.Configuration) (*domain.PlanComparison, error) {
	scenarios := cfg.ResolveScenarios()
	comparison := &domain.PlanComparison{
		GeneratedAt: nowFunc(),
		Plans:       make([]domain.PlanResult, 0, len(scenarios)),
		Assumptions: cfg.Base.GenerateAssumptions(),
	}
	for _, sc := range scenarios {
		result, err := pe.RunPlan(ctx, sc.Name, sc.Assumptions)
		if err != nil {
			return nil, fmt.Errorf("failed to run scenario %s: %w", sc.Name, err)
		}
		comparison.Plans = append(comparison.Plans, *result)
	}
	return comparison, nil
}
