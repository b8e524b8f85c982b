package cli

import (
	"fmt"
	"strings"

	"github.com/rpgo/fire-planner/internal/domain"
	"github.com/rpgo/fire-planner/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var hundred = decimal.NewFromInt(100)

// planFlags are the assumption flags shared by plan, fire and simulate.
// Rates are entered in percent.
type planFlags struct {
	input           string
	currentAge      int
	retirementAge   int
	mortalityAge    int
	investments     float64
	monthlyExpenses float64
	expectedReturn  float64
	portfolioReturn float64
	inflation       float64
	bequest         float64
}

func (pf *planFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&pf.input, "input", "i", "", "plan file (YAML) with base assumptions and scenarios")
	f.IntVar(&pf.currentAge, "current-age", 30, "current age")
	f.IntVar(&pf.retirementAge, "retirement-age", 60, "age at retirement")
	f.IntVar(&pf.mortalityAge, "mortality-age", 80, "planning horizon age")
	f.Float64Var(&pf.investments, "investments", 0, "current investments")
	f.Float64Var(&pf.monthlyExpenses, "monthly-expenses", 50000, "monthly expenses in today's money")
	f.Float64Var(&pf.expectedReturn, "expected-return", 12, "annual return while investing (%)")
	f.Float64Var(&pf.portfolioReturn, "portfolio-return", 8, "annual return in retirement (%)")
	f.Float64Var(&pf.inflation, "inflation", 8, "annual inflation (%)")
	f.Float64Var(&pf.bequest, "bequest", 0, "amount to leave at the planning horizon")
}

func percent(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Div(hundred)
}

// apply copies flag values into pa. With onlyChanged set, flags left at their
// defaults do not override values read from a plan file.
func (pf *planFlags) apply(cmd *cobra.Command, pa *domain.PlanAssumptions, onlyChanged bool) {
	use := func(name string) bool { return !onlyChanged || cmd.Flags().Changed(name) }
	if use("current-age") {
		pa.CurrentAge = pf.currentAge
	}
	if use("retirement-age") {
		pa.RetirementAge = pf.retirementAge
	}
	if use("mortality-age") {
		pa.MortalityAge = pf.mortalityAge
	}
	if use("investments") {
		pa.CurrentInvestments = decimal.NewFromFloat(pf.investments)
	}
	if use("monthly-expenses") {
		pa.MonthlyExpenses = decimal.NewFromFloat(pf.monthlyExpenses)
	}
	if use("expected-return") {
		pa.ExpectedReturn = percent(pf.expectedReturn)
	}
	if use("portfolio-return") {
		pa.PortfolioReturn = percent(pf.portfolioReturn)
	}
	if use("inflation") {
		pa.InflationRate = percent(pf.inflation)
	}
	if use("bequest") {
		pa.Bequest = decimal.NewFromFloat(pf.bequest)
	}
}

// configuration builds the plan configuration from --input and the assumption flags.
func (a *app) configuration(cmd *cobra.Command, pf *planFlags) (*domain.Configuration, error) {
	if pf.input == "" {
		cfg := &domain.Configuration{}
		pf.apply(cmd, &cfg.Base, false)
		if err := a.parser.ValidateConfiguration(cfg); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
		return cfg, nil
	}
	cfg, err := a.parser.LoadFromFile(pf.input)
	if err != nil {
		return nil, err
	}
	pf.apply(cmd, &cfg.Base, true)
	if err := a.parser.ValidateConfiguration(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func (a *app) runScenarios(cmd *cobra.Command, pf *planFlags) (*domain.PlanComparison, error) {
	cfg, err := a.configuration(cmd, pf)
	if err != nil {
		return nil, err
	}
	return a.engine.RunScenarios(cmd.Context(), cfg)
}

func newPlanCmd(a *app) *cobra.Command {
	pf := &planFlags{}
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Solve every scenario and render a report",
		Long: `Solve the FIRE number and required monthly investment for every scenario in
the plan file (or the flag-built base plan) and render the comparison.`,
		Example: `  fireplan plan --current-age 35 --retirement-age 50 --monthly-expenses 80000
  fireplan plan -i plan.yaml --format html -o report.html
  fireplan plan -i plan.yaml --format all -o reports/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.runScenarios(cmd, pf)
			if err != nil {
				return err
			}
			format := a.settings.Output.Format
			if output.NormalizeFormatName(format) == "all" {
				dir := a.opts.Out
				if dir == "" {
					dir = "."
				}
				files, err := output.GenerateReport(results, format, dir)
				if err != nil {
					return err
				}
				printf(cmd.OutOrStdout(), "Reports written:\n  %s\n", strings.Join(files, "\n  "))
				return nil
			}
			f := output.GetFormatterByName(format)
			if f == nil {
				return output.UnsupportedFormatError(format)
			}
			data, err := f.Format(results)
			if err != nil {
				return fmt.Errorf("failed to render %s report: %w", f.Name(), err)
			}
			return a.write(cmd, data)
		},
	}
	pf.register(cmd)
	return cmd
}

func newFireCmd(a *app) *cobra.Command {
	pf := &planFlags{}
	cmd := &cobra.Command{
		Use:   "fire",
		Short: "Print the FIRE number of every scenario",
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.runScenarios(cmd, pf)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, p := range results.Plans {
				printf(w, "%s\n", p.Name)
				printf(w, "  FIRE number:                   %s (%s)\n", output.FormatCurrency(p.FireNumber), output.FormatCompact(p.FireNumber))
				printf(w, "  Monthly expenses at retirement: %s\n", output.FormatCurrency(p.RetirementMonthlyExpenses))
				printf(w, "  Left at age %d:                 %s\n", p.Assumptions.MortalityAge, output.FormatCurrency(p.Diagnostics.LeftOver))
				printf(w, "  Search:                        %d iterations of %s\n", p.Diagnostics.CorpusIterations, output.FormatCurrency(p.Diagnostics.CorpusStep))
			}
			return nil
		},
	}
	pf.register(cmd)
	return cmd
}

func newSimulateCmd(a *app) *cobra.Command {
	pf := &planFlags{}
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Print the year-by-year simulation of every scenario",
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.runScenarios(cmd, pf)
			if err != nil {
				return err
			}
			if strings.Contains(output.NormalizeFormatName(a.settings.Output.Format), "csv") {
				data, err := output.CSVDetailedExporter{}.Format(results)
				if err != nil {
					return err
				}
				return a.write(cmd, data)
			}
			var sb strings.Builder
			for _, p := range results.Plans {
				printf(&sb, "%s (monthly investment %s)\n", p.Name, output.FormatCurrency(p.MonthlyContribution))
				printf(&sb, "%-4s %-13s %18s %16s %16s %8s\n", "Age", "Phase", "Corpus", "Yearly SIP", "Monthly SWP", "Rate")
				for _, row := range p.Simulation {
					printf(&sb, "%-4d %-13s %18s %16s %16s %8s\n",
						row.Age, row.Phase,
						output.FormatCurrency(row.Corpus),
						output.FormatCurrency(row.YearlyContribution),
						output.FormatCurrency(row.MonthlyWithdrawal),
						output.FormatPercentage(row.WithdrawalRate))
				}
				sb.WriteString("\n")
			}
			return a.write(cmd, []byte(sb.String()))
		},
	}
	pf.register(cmd)
	return cmd
}
