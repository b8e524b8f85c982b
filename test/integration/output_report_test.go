package integration

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpgo/fire-planner/internal/calculation"
	"github.com/rpgo/fire-planner/internal/output"
)

func TestOutputGeneration(t *testing.T) {
	results, err := calculation.NewPlanEngine().RunScenarios(context.Background(), loadExample(t))
	if err != nil {
		t.Fatalf("RunScenarios: %v", err)
	}

	dir := t.TempDir()
	for _, format := range output.AvailableFormatterNames() {
		files, err := output.GenerateReport(results, format, filepath.Join(dir, format))
		if err != nil {
			t.Fatalf("GenerateReport(%s): %v", format, err)
		}
		info, err := os.Stat(files[0])
		if err != nil || info.Size() == 0 {
			t.Fatalf("%s report missing or empty: %v", format, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "console", "fire_plan_report_"+results.GeneratedAt.Format("20060102_150405")+".txt"))
	if err != nil {
		t.Fatalf("read console report: %v", err)
	}
	if !strings.Contains(string(data), "Mid Career needs the lowest monthly investment") {
		t.Fatalf("unexpected recommendation in console report")
	}
}
