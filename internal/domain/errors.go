package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAssumptions is wrapped by every assumption validation failure.
	ErrInvalidAssumptions = errors.New("invalid assumptions")

	// ErrPlanUnreachable is wrapped when a bounded search fails to meet its threshold.
	ErrPlanUnreachable = errors.New("plan unreachable")
)

// ValidationError describes a single violated assumption.
type ValidationError struct {
	Field  string
	Reason string
}

func newValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidAssumptions, ve.Field, ve.Reason)
}

func (ve *ValidationError) Unwrap() error { return ErrInvalidAssumptions }

// PlanUnreachableError reports a search that gave up. BestEstimate and LeftOver
// describe the last candidate evaluated.
type PlanUnreachableError struct {
	Search       string          `json:"search"`
	Reason       string          `json:"reason"`
	Iterations   int             `json:"iterations"`
	BestEstimate decimal.Decimal `json:"best_estimate"`
	LeftOver     decimal.Decimal `json:"left_over"`
}

func (pe *PlanUnreachableError) Error() string {
	return fmt.Sprintf("%s: %s search %s after %d iterations (last candidate %s, left over %s)",
		ErrPlanUnreachable, pe.Search, pe.Reason, pe.Iterations, pe.BestEstimate.StringFixed(0), pe.LeftOver.StringFixed(0))
}

func (pe *PlanUnreachableError) Unwrap() error { return ErrPlanUnreachable }
