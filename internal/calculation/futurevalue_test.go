package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectFutureValue(t *testing.T) {
	t.Run("trajectory covers year zero through retirement", func(t *testing.T) {
		traj := ProjectFutureValue(decimal.Zero, d("504000"), d("0.12"), 30, 30)
		require.Equal(t, 31, traj.Len())
		assert.True(t, traj[0].Balance.IsZero())
		assert.Equal(t, 30, traj[0].Age)
		assert.Equal(t, 60, traj[30].Age)
		assert.True(t, d("504000").Equal(traj[1].Balance), "got %s", traj[1].Balance)
		assert.Equal(t, "121631672.91", traj.Final().StringFixed(2))
	})

	t.Run("zero years yields the initial balance", func(t *testing.T) {
		traj := ProjectFutureValue(d("250000"), d("12000"), d("0.12"), 0, 45)
		require.Equal(t, 1, traj.Len())
		assert.True(t, d("250000").Equal(traj.Final()))
	})

	t.Run("single year horizon has two entries", func(t *testing.T) {
		traj := ProjectFutureValue(decimal.Zero, d("108000"), d("0.12"), 1, 30)
		require.Equal(t, 2, traj.Len())
		assert.True(t, d("108000").Equal(traj.Final()))
	})

	t.Run("zero rate is exactly linear", func(t *testing.T) {
		traj := ProjectFutureValue(d("1000000"), d("120000"), decimal.Zero, 10, 30)
		for i, yb := range traj {
			expected := d("1000000").Add(d("120000").Mul(decimal.NewFromInt(int64(i))))
			assert.True(t, expected.Equal(yb.Balance), "year %d: got %s", i, yb.Balance)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		a := ProjectFutureValue(d("2000000"), d("192000"), d("0.12"), 20, 40)
		b := ProjectFutureValue(d("2000000"), d("192000"), d("0.12"), 20, 40)
		assert.Equal(t, a.Balances(), b.Balances())
	})

	t.Run("monotonic in contribution", func(t *testing.T) {
		low := ProjectFutureValue(d("100000"), d("492000"), d("0.12"), 30, 30)
		high := ProjectFutureValue(d("100000"), d("504000"), d("0.12"), 30, 30)
		assert.True(t, high[0].Balance.Equal(low[0].Balance))
		for i := 1; i < len(low); i++ {
			assert.True(t, high[i].Balance.GreaterThan(low[i].Balance), "year %d", i)
		}
	})
}
