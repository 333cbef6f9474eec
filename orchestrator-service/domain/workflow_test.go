package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkflowDefinition_Validate(t *testing.T) {
	tests := []struct {
		name          string
		definition    *WorkflowDefinition
		expectedError string
	}{
		{
			name:       "built-in place order workflow is valid",
			definition: PlaceOrderDefinition(),
		},
		{
			name: "missing name",
			definition: &WorkflowDefinition{
				Activities: []Activity{{Type: ActivityReceive, Name: "start"}},
			},
			expectedError: "name is required",
		},
		{
			name: "no activities",
			definition: &WorkflowDefinition{
				Name: "Empty",
			},
			expectedError: "has no activities",
		},
		{
			name: "invoke without service",
			definition: &WorkflowDefinition{
				Name: "Broken",
				Activities: []Activity{
					{Type: ActivityInvoke, Name: "call", Operation: "doThing", InputVariable: "in"},
				},
			},
			expectedError: "needs service and operation",
		},
		{
			name: "invoke without input variable",
			definition: &WorkflowDefinition{
				Name: "Broken",
				Activities: []Activity{
					{Type: ActivityInvoke, Name: "call", Service: "svc", Operation: "doThing"},
				},
			},
			expectedError: "needs an input variable",
		},
		{
			name: "conditional without condition",
			definition: &WorkflowDefinition{
				Name: "Broken",
				Activities: []Activity{
					{Type: ActivityConditional, Name: "check"},
				},
			},
			expectedError: "needs a condition",
		},
		{
			name: "conditional with unparsable condition",
			definition: &WorkflowDefinition{
				Name: "Broken",
				Activities: []Activity{
					{Type: ActivityConditional, Name: "check", Condition: "process.exit()"},
				},
			},
			expectedError: "check",
		},
		{
			name: "invalid condition in nested branch",
			definition: &WorkflowDefinition{
				Name: "Broken",
				Activities: []Activity{
					{
						Type:      ActivityConditional,
						Name:      "outer",
						Condition: `a.b == "c"`,
						Then: []Activity{
							{Type: ActivityConditional, Name: "inner", Condition: "nonsense"},
						},
					},
				},
			},
			expectedError: "inner",
		},
		{
			name: "fault without name",
			definition: &WorkflowDefinition{
				Name: "Broken",
				Activities: []Activity{
					{Type: ActivityFault, Name: "boom"},
				},
			},
			expectedError: "needs a fault name",
		},
		{
			name: "unknown activity type",
			definition: &WorkflowDefinition{
				Name: "Broken",
				Activities: []Activity{
					{Type: "loop", Name: "spin"},
				},
			},
			expectedError: "unknown activity type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.definition.Validate()

			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDefinitionRegistry(t *testing.T) {
	t.Run("register and get", func(t *testing.T) {
		registry := NewDefinitionRegistry()

		require.NoError(t, registry.Register(PlaceOrderDefinition()))

		definition, err := registry.Get(PlaceOrderWorkflowName)
		require.NoError(t, err)
		assert.Equal(t, PlaceOrderWorkflowName, definition.Name)
	})

	t.Run("duplicate registration is rejected", func(t *testing.T) {
		registry := NewDefinitionRegistry()

		require.NoError(t, registry.Register(PlaceOrderDefinition()))
		err := registry.Register(PlaceOrderDefinition())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "already registered")
	})

	t.Run("invalid definition is rejected", func(t *testing.T) {
		registry := NewDefinitionRegistry()

		err := registry.Register(&WorkflowDefinition{Name: "Empty"})

		require.Error(t, err)
		assert.Empty(t, registry.List())
	})

	t.Run("unknown workflow", func(t *testing.T) {
		registry := NewDefinitionRegistry()

		_, err := registry.Get("Missing")

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrWorkflowNotFound)
	})

	t.Run("list is sorted", func(t *testing.T) {
		registry := NewDefinitionRegistry()

		require.NoError(t, registry.Register(&WorkflowDefinition{
			Name:       "Zeta",
			Activities: []Activity{{Type: ActivityReceive, Name: "start"}},
		}))
		require.NoError(t, registry.Register(&WorkflowDefinition{
			Name:       "Alpha",
			Activities: []Activity{{Type: ActivityReceive, Name: "start"}},
		}))

		assert.Equal(t, []string{"Alpha", "Zeta"}, registry.List())
	})
}
