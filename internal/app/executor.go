package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen/quotes-api/internal/platform/logging"
)

// Write use cases run as Load → Perform → Cleanup:
//   1. LOAD    - read and check every precondition; nothing is mutated
//   2. PERFORM - apply the state change
//   3. CLEANUP - follow-up work that depends on the change having happened
//
// A failure in Load leaves the store untouched.

// ExecutionStep represents a step of an operation.
type ExecutionStep string

const (
	StepLoad    ExecutionStep = "load"
	StepPerform ExecutionStep = "perform"
	StepCleanup ExecutionStep = "cleanup"
)

// ExecutionError wraps errors with the step where they occurred.
type ExecutionError struct {
	Operation string
	Step      ExecutionStep
	Cause     error
}

// Error implements the error interface.
func (e *ExecutionError) Error() string {
	return fmt.Sprintf("%s: %s failed: %v", e.Operation, e.Step, e.Cause)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *ExecutionError) Unwrap() error {
	return e.Cause
}

// Executor runs operations step by step with logging.
type Executor struct {
	logger *slog.Logger
}

// NewExecutor creates a new executor with the given logger.
func NewExecutor(logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}

	return &Executor{logger: logger}
}

// Operation defines the steps of a write use case. I is the input, L what
// Load produced and O the result.
type Operation[I, L, O any] struct {
	// Name identifies this operation for logging.
	Name string

	// Load reads state and checks preconditions.
	Load func(ctx context.Context, input I) (L, error)

	// Perform applies the state change.
	Perform func(ctx context.Context, input I, loaded L) (O, error)

	// Cleanup is optional.
	Cleanup func(ctx context.Context, input I, loaded L, result O) error
}

// Execute runs op against input.
func Execute[I, L, O any](ctx context.Context, exec *Executor, op Operation[I, L, O], input I) (O, error) {
	var zero O

	logger := logging.FromContext(ctx)
	if logger == nil {
		logger = exec.logger
	}

	logger = logger.With(slog.String("operation", op.Name))
	start := time.Now()

	loaded, err := op.Load(ctx, input)
	if err != nil {
		logger.DebugContext(ctx, "load failed", slog.Any("error", err))

		return zero, &ExecutionError{Operation: op.Name, Step: StepLoad, Cause: err}
	}

	result, err := op.Perform(ctx, input, loaded)
	if err != nil {
		logger.WarnContext(ctx, "perform failed", slog.Any("error", err))

		return zero, &ExecutionError{Operation: op.Name, Step: StepPerform, Cause: err}
	}

	if op.Cleanup != nil {
		if err := op.Cleanup(ctx, input, loaded, result); err != nil {
			logger.ErrorContext(ctx, "cleanup failed after state change", slog.Any("error", err))

			return zero, &ExecutionError{Operation: op.Name, Step: StepCleanup, Cause: err}
		}
	}

	logger.InfoContext(ctx, "operation completed",
		slog.Duration("duration", time.Since(start)),
	)

	return result, nil
}

// GetExecutionStep extracts the step from an execution error.
func GetExecutionStep(err error) (ExecutionStep, bool) {
	var execErr *ExecutionError
	if errors.As(err, &execErr) {
		return execErr.Step, true
	}

	return "", false
}
