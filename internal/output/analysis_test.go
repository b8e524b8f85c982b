package output

import (
	"testing"

	"github.com/rpgo/fire-planner/internal/domain"
	"github.com/shopspring/decimal"
)

func TestAnalyzePlansPicksLowestContribution(t *testing.T) {
	rec := AnalyzePlans(sampleComparison(t))
	if rec.PlanName != "Without Inheritance" {
		t.Fatalf("expected Without Inheritance, got %s", rec.PlanName)
	}
	if rec.MonthlyContribution.String() != "42000" {
		t.Fatalf("unexpected monthly %s", rec.MonthlyContribution)
	}
	if rec.SavingsVsHighest.String() != "1000" {
		t.Fatalf("expected 1000 saved vs inheritance plan, got %s", rec.SavingsVsHighest)
	}
	if rec.OnTrack {
		t.Fatalf("plan should need contributions")
	}
}

func TestAnalyzePlansTieBreak(t *testing.T) {
	results := &domain.PlanComparison{Plans: []domain.PlanResult{
		{Name: "b", MonthlyContribution: decimal.Zero, FireNumber: decimal.NewFromInt(100), Status: domain.StatusOnTrack},
		{Name: "a", MonthlyContribution: decimal.Zero, FireNumber: decimal.NewFromInt(100), Status: domain.StatusOnTrack},
		{Name: "c", MonthlyContribution: decimal.Zero, FireNumber: decimal.NewFromInt(50), Status: domain.StatusOnTrack},
	}}
	rec := AnalyzePlans(results)
	if rec.PlanName != "c" || !rec.OnTrack || !rec.SavingsVsHighest.IsZero() {
		t.Fatalf("unexpected recommendation %+v", rec)
	}
	results.Plans = results.Plans[:2]
	if got := AnalyzePlans(results).PlanName; got != "a" {
		t.Fatalf("expected name tie-break to pick a, got %s", got)
	}
}

func TestAnalyzePlansEmpty(t *testing.T) {
	if rec := AnalyzePlans(nil); rec.PlanName != "" {
		t.Fatalf("expected empty recommendation")
	}
	if rec := AnalyzePlans(&domain.PlanComparison{}); rec.PlanName != "" {
		t.Fatalf("expected empty recommendation")
	}
}
