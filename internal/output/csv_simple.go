package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/rpgo/fire-planner/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per plan).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.PlanComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Status", "MonthlyContribution", "FireNumber", "RetirementMonthlyExpenses", "Shortfall", "ProjectedCorpus", "ExcessCorpus", "LeftOver", "YearsToRetirement", "RetirementYears", "CorpusIterations", "ContributionIterations"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	plans := append([]domain.PlanResult(nil), results.Plans...)
	sort.Slice(plans, func(i, j int) bool { return plans[i].Name < plans[j].Name })
	for _, p := range plans {
		row := []string{
			p.Name,
			string(p.Status),
			p.MonthlyContribution.StringFixed(0),
			p.FireNumber.StringFixed(0),
			p.RetirementMonthlyExpenses.StringFixed(0),
			p.Shortfall.StringFixed(0),
			p.ProjectedCorpus.StringFixed(2),
			p.ExcessCorpus.StringFixed(0),
			p.Diagnostics.LeftOver.StringFixed(0),
			intToString(p.YearsToRetirement()),
			intToString(p.Assumptions.RetirementYears()),
			intToString(p.Diagnostics.CorpusIterations),
			intToString(p.Diagnostics.ContributionIterations),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
