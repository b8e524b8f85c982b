package main

import (
	"context"
	"fmt"
	"os"

	calc "github.com/rpgo/fire-planner/internal/calculation"
	"github.com/rpgo/fire-planner/internal/config"
	"github.com/shopspring/decimal"
)

// Prints the corpus candidates around each scenario's FIRE number and what
// each one leaves at the planning horizon.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_corpus_search <config-file> [steps]")
		return
	}
	steps := 5
	if len(os.Args) > 2 {
		if _, err := fmt.Sscanf(os.Args[2], "%d", &steps); err != nil {
			panic(err)
		}
	}
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}
	engine := calc.NewPlanEngine()
	res, err := engine.RunScenarios(context.Background(), cfg)
	if err != nil {
		panic(err)
	}

	fmt.Println("Scenario,Candidate,LeftOver,Bequest,Accepted")
	step := engine.Settings.CorpusStep
	for _, plan := range res.Plans {
		pa := plan.Assumptions
		first := calc.RetirementWithdrawal(pa.MonthlyExpenses, pa.InflationRate, pa.YearsToRetirement())
		for i := -steps; i <= 1; i++ {
			candidate := plan.FireNumber.Add(step.Mul(decimal.NewFromInt(int64(i))))
			if !candidate.IsPositive() {
				continue
			}
			traj, _ := calc.SimulateWithdrawals(candidate, first, pa.PortfolioReturn, pa.InflationRate, pa.RetirementYears(), pa.RetirementAge)
			left := candidate
			if traj.Len() > 0 {
				left = traj.Final()
			}
			fmt.Printf("%s,%s,%s,%s,%t\n", plan.Name, candidate.StringFixed(0), left.StringFixed(0), pa.Bequest.StringFixed(0), left.GreaterThanOrEqual(pa.Bequest))
		}
	}
}
