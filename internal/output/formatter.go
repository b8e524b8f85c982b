package output

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rpgo/fire-planner/internal/domain"
)

// Formatter renders a plan comparison. Implementations are pure.
type Formatter interface {
	Format(results *domain.PlanComparison) ([]byte, error)
	Name() string
}

// reportFormat registers a formatter with its file extension and the
// synonyms accepted on the command line.
type reportFormat struct {
	formatter Formatter
	ext       string
	aliases   []string
}

var reportFormats = []reportFormat{
	{ConsoleVerboseFormatter{}, "txt", []string{"console-verbose", "verbose"}},
	{ConsoleFormatter{}, "txt", []string{"summary"}},
	{CSVSummarizer{}, "csv", []string{"csv-summary"}},
	{CSVDetailedExporter{}, "csv", []string{"csv-detailed"}},
	{HTMLFormatter{}, "html", []string{"html-report"}},
	{JSONFormatter{}, "json", []string{"json-pretty"}},
	{PDFFormatter{}, "pdf", []string{"pdf-report"}},
}

// formatsByName indexes reportFormats by canonical name and by alias.
var formatsByName = func() map[string]reportFormat {
	m := make(map[string]reportFormat, 2*len(reportFormats))
	for _, rf := range reportFormats {
		m[rf.formatter.Name()] = rf
		for _, a := range rf.aliases {
			m[a] = rf
		}
	}
	return m
}()

// NormalizeFormatName lowers the name and resolves aliases to the canonical
// formatter name. Unknown names come back lowered.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if rf, ok := formatsByName[n]; ok {
		return rf.formatter.Name()
	}
	return n
}

// GetFormatterByName returns the formatter for a name or alias, or nil.
func GetFormatterByName(name string) Formatter {
	rf, ok := formatsByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil
	}
	return rf.formatter
}

// WriteFormatted renders results with f into dir as
// fire_plan_report_<timestamp>.<ext>.
func WriteFormatted(f Formatter, results *domain.PlanComparison, dir string) (string, error) {
	data, err := f.Format(results)
	if err != nil {
		return "", err
	}
	stamp := results.GeneratedAt
	if stamp.IsZero() {
		stamp = time.Now()
	}
	ext := f.Name()
	if rf, ok := formatsByName[f.Name()]; ok {
		ext = rf.ext
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(dir, "fire_plan_report_"+stamp.Format("20060102_150405")+"."+ext)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// AvailableFormatterNames returns the canonical formatter names, sorted.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(reportFormats))
	for _, rf := range reportFormats {
		names = append(names, rf.formatter.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns every accepted alias, sorted.
func AvailableFormatAliases() []string {
	var aliases []string
	for _, rf := range reportFormats {
		aliases = append(aliases, rf.aliases...)
	}
	sort.Strings(aliases)
	return aliases
}
