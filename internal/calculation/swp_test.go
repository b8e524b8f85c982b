package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetirementWithdrawal(t *testing.T) {
	w := RetirementWithdrawal(d("50000"), d("0.08"), 30)
	assert.Equal(t, "6037594.13", w.StringFixed(2))

	// No inflation, no years: simply annualised.
	assert.True(t, d("600000").Equal(RetirementWithdrawal(d("50000"), decimal.Zero, 0)))
}

func TestSimulateWithdrawals(t *testing.T) {
	t.Run("withdraw then grow", func(t *testing.T) {
		w := RetirementWithdrawal(d("50000"), d("0.08"), 30)
		traj, schedule := SimulateWithdrawals(d("120800000"), w, d("0.08"), d("0.08"), 20, 60)
		require.Equal(t, 20, traj.Len())
		require.Len(t, schedule, 20)

		assert.Equal(t, "114762406", traj[0].Balance.String())
		assert.Equal(t, "117422797", traj[1].Balance.String())
		assert.Equal(t, "119774371", traj[2].Balance.String())
		assert.Equal(t, "207660", traj.Final().String())
		assert.Equal(t, 60, traj[0].Age)
		assert.Equal(t, 79, traj[19].Age)
		assert.False(t, traj.IsDepleted())
	})

	t.Run("schedule grows with inflation", func(t *testing.T) {
		_, schedule := SimulateWithdrawals(d("1000000"), d("100000"), d("0.05"), d("0.10"), 3, 60)
		assert.Equal(t, "100000.00", schedule[0].StringFixed(2))
		assert.Equal(t, "110000.00", schedule[1].StringFixed(2))
		assert.Equal(t, "121000.00", schedule[2].StringFixed(2))
		assert.Equal(t, "331000.00", schedule.Total().StringFixed(2))
	})

	t.Run("balances may go negative", func(t *testing.T) {
		w := RetirementWithdrawal(d("50000"), d("0.08"), 30)
		traj, _ := SimulateWithdrawals(d("120700000"), w, d("0.08"), d("0.08"), 20, 60)
		assert.Equal(t, "-223910", traj.Final().String())
		assert.True(t, traj.IsDepleted())
	})

	t.Run("zero rates are linear", func(t *testing.T) {
		traj, _ := SimulateWithdrawals(d("1000000"), d("100000"), decimal.Zero, decimal.Zero, 5, 60)
		for i, yb := range traj {
			expected := d("1000000").Sub(d("100000").Mul(decimal.NewFromInt(int64(i + 1))))
			assert.True(t, expected.Equal(yb.Balance), "year %d: got %s", i, yb.Balance)
		}
	})

	t.Run("empty horizon", func(t *testing.T) {
		traj, schedule := SimulateWithdrawals(d("1000000"), d("100000"), d("0.08"), d("0.08"), 0, 60)
		assert.Equal(t, 0, traj.Len())
		assert.Empty(t, schedule)
		assert.True(t, traj.Final().IsZero())
		assert.True(t, d("1000000").Equal(leftOver(d("1000000"), traj)))
	})
}
