package output

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/rpgo/fire-planner/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.PlanComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "FIRE PLAN SUMMARY")
	fmt.Fprintln(&buf, "================================")
	plans := append([]domain.PlanResult(nil), results.Plans...)
	sort.Slice(plans, func(i, j int) bool { return plans[i].Name < plans[j].Name })
	for _, p := range plans {
		fmt.Fprintf(&buf, "%s: FIRE=%s Monthly=%s Status=%s\n",
			p.Name,
			FormatCompact(p.FireNumber),
			FormatCurrency(p.MonthlyContribution),
			p.Status,
		)
		fmt.Fprintf(&buf, "  RetirementExpenses=%s/mo Excess=%s LeftOver=%s\n",
			FormatCurrency(p.RetirementMonthlyExpenses),
			FormatCurrency(p.ExcessCorpus),
			FormatCurrency(p.Diagnostics.LeftOver),
		)
	}
	rec := AnalyzePlans(results)
	if rec.PlanName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (monthly %s, %s/mo less than the most demanding plan)\n",
			rec.PlanName, FormatCurrency(rec.MonthlyContribution), FormatCurrency(rec.SavingsVsHighest))
	}
	return buf.Bytes(), nil
}
