package output

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/rpgo/fire-planner/internal/domain"
	"github.com/shopspring/decimal"
)

func TestFormatterRegistry(t *testing.T) {
	want := []string{"console", "console-lite", "csv", "detailed-csv", "html", "json", "pdf"}
	got := AvailableFormatterNames()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("formatter names = %v, want %v", got, want)
	}
	aliases := map[string]string{
		"console-verbose": "console",
		"verbose":         "console",
		"summary":         "console-lite",
		"csv-detailed":    "detailed-csv",
		"csv-summary":     "csv",
		"html-report":     "html",
		"json-pretty":     "json",
		"pdf-report":      "pdf",
	}
	for alias, canonical := range aliases {
		f := GetFormatterByName(alias)
		if f == nil || f.Name() != canonical {
			t.Fatalf("alias %q did not resolve to %q", alias, canonical)
		}
		if got := NormalizeFormatName(strings.ToUpper(alias)); got != canonical {
			t.Fatalf("NormalizeFormatName(%q) = %q, want %q", alias, got, canonical)
		}
	}
	if got := len(AvailableFormatAliases()); got != len(aliases) {
		t.Fatalf("got %d aliases, want %d", got, len(aliases))
	}
	if f := GetFormatterByName("  JSON "); f == nil || f.Name() != "json" {
		t.Fatalf("expected case-insensitive lookup to find json")
	}
	if GetFormatterByName("xml") != nil {
		t.Fatalf("expected nil for unknown formatter")
	}
}

func TestConsoleVerboseFormatter(t *testing.T) {
	out, err := ConsoleVerboseFormatter{}.Format(sampleComparison(t))
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	s := string(out)
	for _, want := range []string{
		"FIRE RETIREMENT PLAN ANALYSIS",
		"KEY ASSUMPTIONS:",
		"PLAN 1: Without Inheritance",
		"PLAN 2: With Inheritance",
		"Inheritance Target:",
		"YEAR-BY-YEAR SIMULATION:",
		"RECOMMENDATION",
		"Without Inheritance needs the lowest monthly investment",
	} {
		if !strings.Contains(s, want) {
			t.Fatalf("console report missing %q", want)
		}
	}
	if !strings.Contains(s, FormatCurrency(decimal.NewFromInt(120800000))) {
		t.Fatalf("console report missing FIRE number")
	}
	if !strings.Contains(s, FormatCurrency(decimal.NewFromInt(42000))) {
		t.Fatalf("console report missing monthly investment")
	}
}

func TestConsoleLiteFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(sampleComparison(t))
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	s := string(out)
	if !strings.HasPrefix(s, "FIRE PLAN SUMMARY") {
		t.Fatalf("unexpected header: %q", strings.SplitN(s, "\n", 2)[0])
	}
	if !strings.Contains(s, "Recommended: Without Inheritance") {
		t.Fatalf("missing recommendation line")
	}
	// With Inheritance sorts first.
	if strings.Index(s, "With Inheritance:") > strings.Index(s, "Without Inheritance:") {
		t.Fatalf("plans not sorted by name")
	}
}

func TestCSVSummarizer(t *testing.T) {
	out, err := CSVSummarizer{}.Format(sampleComparison(t))
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(records))
	}
	if len(records[0]) != 13 {
		t.Fatalf("expected 13 columns, got %d", len(records[0]))
	}
	with := records[1]
	if with[0] != "With Inheritance" || with[3] != "123100000" || with[2] != "43000" {
		t.Fatalf("unexpected inheritance row: %v", with)
	}
	without := records[2]
	if without[0] != "Without Inheritance" || without[3] != "120800000" || without[8] != "207660" {
		t.Fatalf("unexpected base row: %v", without)
	}
	if without[11] != "1208" || without[12] != "42" {
		t.Fatalf("unexpected iteration counts: %v", without[11:])
	}
}

func TestCSVDetailedExporter(t *testing.T) {
	out, err := CSVDetailedExporter{}.Format(sampleComparison(t))
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	// 50 simulated years per plan.
	if len(records) != 1+2*50 {
		t.Fatalf("expected 101 records, got %d", len(records))
	}
	var found bool
	for _, r := range records[1:] {
		if r[0] == "Without Inheritance" && r[1] == "60" {
			found = true
			if r[2] != string(domain.PhaseWithdrawal) || r[3] != "115594079" || r[5] != "503133" || r[6] != "5.00" {
				t.Fatalf("unexpected first withdrawal row: %v", r)
			}
		}
	}
	if !found {
		t.Fatalf("age 60 row not found")
	}
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(sampleComparison(t))
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	var decoded domain.PlanComparison
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded.Plans) != 2 {
		t.Fatalf("expected 2 plans, got %d", len(decoded.Plans))
	}
	if decoded.Plans[0].FireNumber.String() != "120800000" {
		t.Fatalf("fire number lost in round trip: %s", decoded.Plans[0].FireNumber)
	}
}

func TestHTMLFormatter(t *testing.T) {
	out, err := HTMLFormatter{}.Format(sampleComparison(t))
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	s := string(out)
	for _, want := range []string{"<!DOCTYPE html>", "Scenario Summary", "Key Assumptions", "1. Without Inheritance", "2. With Inheritance", "const charts = ["} {
		if !strings.Contains(s, want) {
			t.Fatalf("html report missing %q", want)
		}
	}
}

func TestPDFFormatter(t *testing.T) {
	out, err := PDFFormatter{}.Format(sampleComparison(t))
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output is not a PDF document")
	}
}
