package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/rpgo/fire-planner/internal/domain"
)

// CSVDetailedExporter writes the year-by-year simulation table of every plan.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.PlanComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Age", "Phase", "Corpus", "YearlyContribution", "MonthlyWithdrawal", "WithdrawalRatePct"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	plans := append([]domain.PlanResult(nil), results.Plans...)
	sort.Slice(plans, func(i, j int) bool { return plans[i].Name < plans[j].Name })
	for _, p := range plans {
		for _, row := range p.Simulation {
			record := []string{
				p.Name,
				intToString(row.Age),
				string(row.Phase),
				row.Corpus.StringFixed(0),
				row.YearlyContribution.StringFixed(0),
				row.MonthlyWithdrawal.StringFixed(0),
				row.WithdrawalRate.StringFixed(2),
			}
			if err := w.Write(record); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
