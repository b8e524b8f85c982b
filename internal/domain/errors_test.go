package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidationErrorWraps(t *testing.T) {
	err := fmt.Errorf("scenario X: %w", newValidationError("bequest", "cannot be negative"))
	assert.True(t, errors.Is(err, ErrInvalidAssumptions))
	assert.False(t, errors.Is(err, ErrPlanUnreachable))
	assert.Contains(t, err.Error(), "bequest cannot be negative")
}

func TestPlanUnreachableError(t *testing.T) {
	pe := &PlanUnreachableError{
		Search:       "corpus",
		Reason:       "exceeded the iteration limit",
		Iterations:   10,
		BestEstimate: decimal.NewFromInt(1000000),
		LeftOver:     decimal.RequireFromString("-1234.6"),
	}
	err := fmt.Errorf("wrapped: %w", pe)
	assert.True(t, errors.Is(err, ErrPlanUnreachable))

	var target *PlanUnreachableError
	assert.True(t, errors.As(err, &target))
	assert.Equal(t, "plan unreachable: corpus search exceeded the iteration limit after 10 iterations (last candidate 1000000, left over -1235)", pe.Error())
}
