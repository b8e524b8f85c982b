package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/rpgo/fire-planner/internal/domain"
	"github.com/rpgo/fire-planner/pkg/money"
	"github.com/shopspring/decimal"
)

const (
	pdfMarginLeft   = 15.0
	pdfMarginTop    = 15.0
	pdfMarginRight  = 15.0
	pdfMarginBottom = 15.0
	pdfContentWidth = 210.0 - pdfMarginLeft - pdfMarginRight
)

// PDFFormatter renders a printable plan report.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

// pdfMoney swaps the rupee sign for "Rs." since the core PDF fonts are Latin-1 only.
func pdfMoney(amount decimal.Decimal) string {
	return strings.Replace(FormatCurrency(amount), money.Symbol, "Rs. ", 1)
}

func pdfCompact(amount decimal.Decimal) string {
	return strings.Replace(FormatCompact(amount), money.Symbol, "Rs. ", 1)
}

func (p PDFFormatter) Format(results *domain.PlanComparison) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	pdf.SetAutoPageBreak(true, pdfMarginBottom)
	if !results.GeneratedAt.IsZero() {
		pdf.SetCreationDate(results.GeneratedAt)
	}

	pdfCover(pdf, results)
	for i := range results.Plans {
		pdfPlan(pdf, i+1, &results.Plans[i])
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func pdfHeading(pdf *fpdf.Fpdf, text string) {
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(pdfContentWidth, 8, text, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(50, 50, 50)
}

func pdfCover(pdf *fpdf.Fpdf, results *domain.PlanComparison) {
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 24)
	pdf.SetTextColor(0, 51, 102)
	pdf.Ln(20)
	pdf.CellFormat(pdfContentWidth, 12, "FIRE Plan Report", "", 1, "C", false, 0, "")
	if !results.GeneratedAt.IsZero() {
		pdf.SetFont("Arial", "I", 11)
		pdf.SetTextColor(80, 80, 80)
		pdf.CellFormat(pdfContentWidth, 8, fmt.Sprintf("Generated: %s", results.GeneratedAt.Format("2 January 2006")), "", 1, "C", false, 0, "")
	}
	pdf.Ln(10)

	if len(results.Assumptions) > 0 {
		pdfHeading(pdf, "Key Assumptions")
		for _, a := range results.Assumptions {
			pdf.MultiCell(pdfContentWidth, 5, "- "+strings.ReplaceAll(a, money.Symbol, "Rs. "), "", "L", false)
		}
		pdf.Ln(5)
	}

	pdfHeading(pdf, "Scenario Summary")
	widths := []float64{50, 35, 35, 30, 30}
	headers := []string{"Scenario", "FIRE Number", "Monthly SIP", "Expenses/Month", "Status"}
	pdf.SetFillColor(245, 247, 250)
	pdf.SetFont("Arial", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 9)
	for _, plan := range results.Plans {
		pdf.CellFormat(widths[0], 6, plan.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, pdfCompact(plan.FireNumber), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 6, pdfMoney(plan.MonthlyContribution), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 6, pdfMoney(plan.RetirementMonthlyExpenses), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 6, string(plan.Status), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	if rec := AnalyzePlans(results); rec.PlanName != "" {
		pdf.Ln(5)
		pdfHeading(pdf, "Recommendation")
		pdf.MultiCell(pdfContentWidth, 5,
			fmt.Sprintf("%s needs the lowest monthly investment: %s.", rec.PlanName, pdfMoney(rec.MonthlyContribution)),
			"", "L", false)
	}
}

func pdfPlan(pdf *fpdf.Fpdf, index int, p *domain.PlanResult) {
	pa := p.Assumptions
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(pdfContentWidth, 10, fmt.Sprintf("%d. %s", index, p.Name), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(50, 50, 50)
	pdf.CellFormat(pdfContentWidth, 6,
		fmt.Sprintf("Age %d, retiring at %d, planning to %d. Returns %s / %s, inflation %s.",
			pa.CurrentAge, pa.RetirementAge, pa.MortalityAge,
			FormatRate(pa.ExpectedReturn), FormatRate(pa.PortfolioReturn), FormatRate(pa.InflationRate)),
		"", 1, "L", false, 0, "")
	pdf.Ln(3)

	pdfHeading(pdf, "Targets")
	rows := [][2]string{
		{"FIRE Number", pdfMoney(p.FireNumber)},
		{"Monthly Investment Required", pdfMoney(p.MonthlyContribution)},
		{"Monthly Expenses at Retirement", pdfMoney(p.RetirementMonthlyExpenses)},
		{"Shortfall", pdfMoney(p.Shortfall)},
		{"Projected Corpus", pdfMoney(p.ProjectedCorpus)},
		{"Excess Over Target", pdfMoney(p.ExcessCorpus)},
		{fmt.Sprintf("Left at Age %d", pa.MortalityAge), pdfMoney(p.Diagnostics.LeftOver)},
		{"Initial Capital", pdfMoney(p.Breakdown.InitialCapital)},
		{"Total Contributions", pdfMoney(p.Breakdown.TotalContributions)},
		{"Investment Returns", pdfMoney(p.Breakdown.InvestmentReturns)},
	}
	for _, r := range rows {
		pdf.CellFormat(90, 6, r[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(60, 6, r[1], "", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	pdfHeading(pdf, "Year-by-Year Simulation")
	widths := []float64{15, 30, 40, 35, 35, 25}
	headers := []string{"Age", "Phase", "Corpus", "Yearly SIP", "Monthly SWP", "Rate"}
	pdf.SetFillColor(245, 247, 250)
	pdf.SetFont("Arial", "B", 8)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 6, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 8)
	for _, row := range p.Simulation {
		pdf.CellFormat(widths[0], 5, intToString(row.Age), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 5, string(row.Phase), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 5, pdfMoney(row.Corpus), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 5, pdfMoney(row.YearlyContribution), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 5, pdfMoney(row.MonthlyWithdrawal), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[5], 5, FormatPercentage(row.WithdrawalRate), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
}
