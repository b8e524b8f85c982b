package output

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerateReportWritesFile(t *testing.T) {
	dir := t.TempDir()
	files, err := GenerateReport(sampleComparison(t), "csv-summary", dir)
	if err != nil {
		t.Fatalf("GenerateReport: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected one file, got %v", files)
	}
	if filepath.Base(files[0]) != "fire_plan_report_20260102_030405.csv" {
		t.Fatalf("unexpected filename %s", files[0])
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.HasPrefix(string(data), "Scenario,Status,") {
		t.Fatalf("unexpected report content")
	}
}

func TestGenerateReportAll(t *testing.T) {
	dir := t.TempDir()
	files, err := GenerateReport(sampleComparison(t), "all", dir)
	if err != nil {
		t.Fatalf("GenerateReport: %v", err)
	}
	exts := make([]string, 0, len(files))
	for _, f := range files {
		exts = append(exts, filepath.Ext(f))
	}
	if strings.Join(exts, ",") != ".txt,.csv,.html" {
		t.Fatalf("unexpected files %v", files)
	}
}

func TestGenerateReportUnknownFormat(t *testing.T) {
	_, err := GenerateReport(sampleComparison(t), "xml", t.TempDir())
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if !strings.Contains(err.Error(), "pdf") || !strings.Contains(err.Error(), "html-report") {
		t.Fatalf("error should list formats and aliases: %v", err)
	}
}
