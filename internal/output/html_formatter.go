package output

import (
	"bytes"
	_ "embed"
	"html/template"

	json "github.com/goccy/go-json"
	"github.com/rpgo/fire-planner/internal/domain"
)

// HTMLFormatter produces a self-contained HTML report with charts.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":    FormatCurrency,
	"compact": FormatCompact,
	"pct":     FormatPercentage,
	"rate":    FormatRate,
	"add":     func(i, j int) int { return i + j },
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

// chartSeries is the per-plan data consumed by the report's inline script.
type chartSeries struct {
	Name       string    `json:"name"`
	Ages       []int     `json:"ages"`
	Corpus     []float64 `json:"corpus"`
	NetGrowth  []float64 `json:"net_growth"`
	Withdrawal []float64 `json:"withdrawal"`
}

func buildChartSeries(results *domain.PlanComparison) []chartSeries {
	out := make([]chartSeries, 0, len(results.Plans))
	for _, p := range results.Plans {
		s := chartSeries{Name: p.Name}
		for _, row := range p.Simulation {
			s.Ages = append(s.Ages, row.Age)
			s.Corpus = append(s.Corpus, row.Corpus.InexactFloat64())
			s.Withdrawal = append(s.Withdrawal, row.MonthlyWithdrawal.InexactFloat64())
		}
		for _, g := range p.CorpusGrowth {
			s.NetGrowth = append(s.NetGrowth, g.NetGrowth.InexactFloat64())
		}
		out = append(out, s)
	}
	return out
}

func (h HTMLFormatter) Format(results *domain.PlanComparison) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.PlanComparison
		Recommendation Recommendation
		Charts         []chartSeries
	}{results, AnalyzePlans(results), buildChartSeries(results)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
