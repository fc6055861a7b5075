package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotes-api/internal/domain"
)

func TestExecute_RunsStepsInOrder(t *testing.T) {
	var order []ExecutionStep

	op := Operation[int, string, string]{
		Name: "test",
		Load: func(_ context.Context, in int) (string, error) {
			order = append(order, StepLoad)
			return "loaded", nil
		},
		Perform: func(_ context.Context, _ int, loaded string) (string, error) {
			order = append(order, StepPerform)
			return loaded + "+performed", nil
		},
		Cleanup: func(_ context.Context, _ int, _ string, result string) error {
			order = append(order, StepCleanup)
			assert.Equal(t, "loaded+performed", result)
			return nil
		},
	}

	got, err := Execute(context.Background(), NewExecutor(discardLogger()), op, 1)

	require.NoError(t, err)
	assert.Equal(t, "loaded+performed", got)
	assert.Equal(t, []ExecutionStep{StepLoad, StepPerform, StepCleanup}, order)
}

func TestExecute_StopsAtFailingStep(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name         string
		loadErr      error
		performErr   error
		cleanupErr   error
		expectedStep ExecutionStep
		performed    bool
	}{
		{name: "load", loadErr: boom, expectedStep: StepLoad},
		{name: "perform", performErr: boom, expectedStep: StepPerform, performed: true},
		{name: "cleanup", cleanupErr: boom, expectedStep: StepCleanup, performed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			performed := false

			op := Operation[int, int, int]{
				Name: "test",
				Load: func(context.Context, int) (int, error) { return 1, tt.loadErr },
				Perform: func(context.Context, int, int) (int, error) {
					performed = true
					return 2, tt.performErr
				},
				Cleanup: func(context.Context, int, int, int) error { return tt.cleanupErr },
			}

			_, err := Execute(context.Background(), NewExecutor(nil), op, 0)

			require.ErrorIs(t, err, boom)
			step, ok := GetExecutionStep(err)
			require.True(t, ok)
			assert.Equal(t, tt.expectedStep, step)
			assert.Equal(t, tt.performed, performed)
		})
	}
}

func TestExecute_PreservesDomainErrors(t *testing.T) {
	op := Operation[int, int, int]{
		Name: "test",
		Load: func(context.Context, int) (int, error) {
			return 0, domain.NewUnauthorizedError("op", "nope")
		},
		Perform: func(context.Context, int, int) (int, error) { return 0, nil },
	}

	_, err := Execute(context.Background(), NewExecutor(nil), op, 0)

	assert.Equal(t, domain.KindUnauthorized, domain.KindOf(err))
	msg, ok := domain.PublicMessage(err)
	require.True(t, ok)
	assert.Equal(t, "nope", msg)
}

func TestGetExecutionStep_NotExecutionError(t *testing.T) {
	_, ok := GetExecutionStep(errors.New("plain"))
	assert.False(t, ok)
}
