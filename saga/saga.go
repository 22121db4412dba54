// Package saga runs a sequence of side-effecting steps where each step is
// paired with a compensating action. When a step fails, the compensations of
// all previously completed steps run in reverse order before the error is
// surfaced, so a partial failure does not leave orphaned resources behind.
package saga

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Step is a unit of work inside a saga. Compensate may be nil when the step
// has nothing to undo. Compensate runs only if Run returned nil.
type Step struct {
	Name       string
	Run        func(ctx context.Context) error
	Compensate func(ctx context.Context) error
}

// Error is returned when a step failed. Cause holds the step failure;
// CompensationErr aggregates any compensations that failed while rolling back.
type Error struct {
	StepName        string
	Cause           error
	CompensationErr error
}

func (e *Error) Error() string {
	if e.CompensationErr != nil {
		return fmt.Sprintf("saga: step %s: %v (compensation: %v)", e.StepName, e.Cause, e.CompensationErr)
	}

	return fmt.Sprintf("saga: step %s: %v", e.StepName, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Run executes the steps in order. On the first failure it compensates the
// completed steps in reverse order and returns an *Error.
func Run(ctx context.Context, steps []Step) error {
	var completed []Step

	for _, step := range steps {
		if err := step.Run(ctx); err != nil {
			return &Error{
				StepName:        step.Name,
				Cause:           err,
				CompensationErr: compensate(ctx, completed),
			}
		}

		completed = append(completed, step)
	}

	return nil
}

func compensate(ctx context.Context, completed []Step) error {
	var result *multierror.Error

	for i := len(completed) - 1; i >= 0; i-- {
		step := completed[i]
		if step.Compensate == nil {
			continue
		}

		if err := step.Compensate(ctx); err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", step.Name, err))
		}
	}

	return result.ErrorOrNil()
}
