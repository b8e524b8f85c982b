package main

import (
	"flag"
	"fmt"

	"github.com/rpgo/fire-planner/internal/calculation"
	"github.com/rpgo/fire-planner/pkg/money"
	"github.com/shopspring/decimal"
)

// Prints the inflation-adjusted withdrawal schedule for a corpus and the
// balance it leaves each year.
func main() {
	corpus := flag.String("corpus", "120800000", "corpus at retirement")
	annual := flag.String("withdrawal", "6037594.13", "first-year annual withdrawal")
	ret := flag.String("return", "0.08", "portfolio return")
	inflation := flag.String("inflation", "0.08", "inflation rate")
	years := flag.Int("years", 20, "retirement years")
	startAge := flag.Int("start-age", 60, "age at retirement")
	flag.Parse()

	traj, schedule := calculation.SimulateWithdrawals(
		decimal.RequireFromString(*corpus),
		decimal.RequireFromString(*annual),
		decimal.RequireFromString(*ret),
		decimal.RequireFromString(*inflation),
		*years, *startAge,
	)
	fmt.Printf("%-4s %18s %16s %18s\n", "Age", "Withdrawal", "Monthly", "Balance")
	for i, yb := range traj {
		fmt.Printf("%-4d %18s %16s %18s\n", yb.Age,
			money.NewMoneyFromDecimal(schedule[i]).Format(),
			money.NewMoneyFromDecimal(schedule.Monthly(i)).Format(),
			money.NewMoneyFromDecimal(yb.Balance).Format())
	}
	fmt.Printf("Total withdrawn: %s\n", money.NewMoneyFromDecimal(schedule.Total()).Format())
}
