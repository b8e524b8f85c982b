package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCorpusTrajectory(t *testing.T) {
	var empty CorpusTrajectory
	assert.Equal(t, 0, empty.Len())
	assert.True(t, empty.Final().IsZero())
	assert.False(t, empty.IsDepleted())

	traj := CorpusTrajectory{
		{YearIndex: 0, Age: 60, Balance: decimal.NewFromInt(300)},
		{YearIndex: 1, Age: 61, Balance: decimal.NewFromInt(100)},
		{YearIndex: 2, Age: 62, Balance: decimal.NewFromInt(-50)},
	}
	assert.Equal(t, 3, traj.Len())
	assert.True(t, decimal.NewFromInt(-50).Equal(traj.Final()))
	assert.Len(t, traj.Balances(), 3)
	assert.True(t, traj.IsDepleted())
}

func TestWithdrawalSchedule(t *testing.T) {
	ws := WithdrawalSchedule{decimal.NewFromInt(120000), decimal.NewFromInt(132000)}
	assert.True(t, decimal.NewFromInt(10000).Equal(ws.Monthly(0)))
	assert.True(t, decimal.NewFromInt(11000).Equal(ws.Monthly(1)))
	assert.True(t, decimal.NewFromInt(252000).Equal(ws.Total()))
}

func TestCorpusBreakdownTotal(t *testing.T) {
	cb := CorpusBreakdown{
		InitialCapital:     decimal.NewFromInt(100),
		TotalContributions: decimal.NewFromInt(200),
		InvestmentReturns:  decimal.NewFromInt(300),
	}
	assert.True(t, decimal.NewFromInt(600).Equal(cb.Total()))
}
