package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/fire-planner/internal/domain"
	"github.com/rpgo/fire-planner/pkg/dateutil"
)

// ConsoleVerboseFormatter renders the detailed console report via the pluggable interface.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(results *domain.PlanComparison) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "FIRE RETIREMENT PLAN ANALYSIS")
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf)
	if len(results.Assumptions) > 0 {
		fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
		for _, a := range results.Assumptions {
			fmt.Fprintf(&buf, "• %s\n", a)
		}
		fmt.Fprintln(&buf)
	}

	for i := range results.Plans {
		writePlan(&buf, i+1, &results.Plans[i])
	}

	rec := AnalyzePlans(results)
	if rec.PlanName != "" {
		fmt.Fprintln(&buf, "RECOMMENDATION")
		fmt.Fprintln(&buf, strings.Repeat("=", 50))
		if rec.OnTrack {
			fmt.Fprintf(&buf, "%s is already funded by current investments.\n", rec.PlanName)
		} else {
			fmt.Fprintf(&buf, "%s needs the lowest monthly investment: %s\n", rec.PlanName, FormatCurrency(rec.MonthlyContribution))
		}
		if rec.SavingsVsHighest.IsPositive() {
			fmt.Fprintf(&buf, "That is %s per month less than the most demanding plan.\n", FormatCurrency(rec.SavingsVsHighest))
		}
	}
	return buf.Bytes(), nil
}

func writePlan(w io.Writer, index int, p *domain.PlanResult) {
	pa := p.Assumptions
	fmt.Fprintf(w, "PLAN %d: %s\n", index, p.Name)
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintf(w, "Ages: now %d, retire at %d, plan to %d", pa.CurrentAge, pa.RetirementAge, pa.MortalityAge)
	if pa.BirthDate != nil {
		fmt.Fprintf(w, " (retirement in %d)", dateutil.CalendarYearAtAge(*pa.BirthDate, pa.RetirementAge))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Returns: %s while investing, %s in retirement; inflation %s\n",
		FormatRate(pa.ExpectedReturn), FormatRate(pa.PortfolioReturn), FormatRate(pa.InflationRate))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "TARGETS:")
	fmt.Fprintf(w, "  FIRE Number:                 %s (%s)\n", FormatCurrency(p.FireNumber), FormatCompact(p.FireNumber))
	fmt.Fprintf(w, "  Monthly Investment Required: %s\n", FormatCurrency(p.MonthlyContribution))
	fmt.Fprintf(w, "  Monthly Expenses at %d:      %s\n", pa.RetirementAge, FormatCurrency(p.RetirementMonthlyExpenses))
	fmt.Fprintf(w, "  Shortfall:                   %s\n", FormatCurrency(p.Shortfall))
	fmt.Fprintf(w, "  Projected Corpus:            %s\n", FormatCurrency(p.ProjectedCorpus))
	fmt.Fprintf(w, "  Excess Over Target:          %s\n", FormatCurrency(p.ExcessCorpus))
	if pa.HasBequest() {
		fmt.Fprintf(w, "  Inheritance Target:          %s\n", FormatCurrency(pa.Bequest))
	}
	fmt.Fprintf(w, "  Left at Age %d:              %s\n", pa.MortalityAge, FormatCurrency(p.Diagnostics.LeftOver))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "CORPUS BREAKDOWN:")
	fmt.Fprintf(w, "  Initial Capital:     %s\n", FormatCurrency(p.Breakdown.InitialCapital))
	fmt.Fprintf(w, "  Total Contributions: %s\n", FormatCurrency(p.Breakdown.TotalContributions))
	fmt.Fprintf(w, "  Investment Returns:  %s\n", FormatCurrency(p.Breakdown.InvestmentReturns))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "YEAR-BY-YEAR SIMULATION:")
	fmt.Fprintf(w, "  %-4s %-13s %18s %16s %16s %8s\n", "Age", "Phase", "Corpus", "Yearly SIP", "Monthly SWP", "Rate")
	for _, row := range p.Simulation {
		fmt.Fprintf(w, "  %-4d %-13s %18s %16s %16s %8s\n",
			row.Age, row.Phase,
			FormatCurrency(row.Corpus),
			FormatCurrency(row.YearlyContribution),
			FormatCurrency(row.MonthlyWithdrawal),
			FormatPercentage(row.WithdrawalRate),
		)
	}
	fmt.Fprintln(w)

	d := p.Diagnostics
	fmt.Fprintf(w, "Solver: corpus search %d steps of %s; contribution via %s", d.CorpusIterations, FormatCurrency(d.CorpusStep), d.ContributionMethod)
	if d.ContributionMethod == domain.ContributionStepSearch {
		fmt.Fprintf(w, " (%d steps of %s)", d.ContributionIterations, FormatCurrency(d.ContributionStep))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w)
}
