package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRun(t *testing.T) {
	definition := PlaceOrderDefinition()
	input := map[string]any{"id": "ORDER-001", "item": "book", "quantity": float64(2)}

	run := NewRun(definition, input)

	assert.True(t, strings.HasPrefix(run.ID, "exec_"))
	assert.Equal(t, PlaceOrderWorkflowName, run.WorkflowName)
	assert.Equal(t, RunStatusRunning, run.Status)
	assert.Equal(t, input, run.Input)

	// Variable scope starts from the declared variables.
	for name := range definition.Variables {
		_, declared := run.Variables[name]
		assert.True(t, declared, "variable %s not seeded", name)
	}

	// Each run gets its own scope; mutating it must not touch the definition.
	run.Variables["orderData"] = input
	assert.Nil(t, definition.Variables["orderData"])
}

func TestRun_Lifecycle(t *testing.T) {
	t.Run("complete", func(t *testing.T) {
		run := NewRun(PlaceOrderDefinition(), map[string]any{"id": "ORDER-001"})

		run.Complete(map[string]any{"orderId": "ORDER-001", "status": "completed"})

		assert.Equal(t, RunStatusCompleted, run.Status)
		assert.False(t, run.EndTime.IsZero())
		assert.Empty(t, run.Error)

		result := run.Result()
		require.NotNil(t, result)
		assert.Equal(t, run.ID, result.RunID)
		assert.Equal(t, RunStatusCompleted, result.Status)
		assert.Equal(t, "ORDER-001", result.Output["orderId"])
	})

	t.Run("fail", func(t *testing.T) {
		run := NewRun(PlaceOrderDefinition(), map[string]any{"id": "ORDER-002"})

		run.Fail(PaymentFailedFault)

		assert.Equal(t, RunStatusFailed, run.Status)
		assert.Equal(t, PaymentFailedFault, run.Error)
		assert.Nil(t, run.Output)
	})
}
