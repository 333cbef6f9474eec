package application

import (
	"context"

	"github.com/SewwRathnayaka/SOA/orchestrator-service/domain"
)

// GetWorkflow use case for reading one registered definition.
type GetWorkflow struct {
	registry *domain.DefinitionRegistry
}

// NewGetWorkflow creates a new GetWorkflow use case.
func NewGetWorkflow(registry *domain.DefinitionRegistry) *GetWorkflow {
	return &GetWorkflow{registry: registry}
}

// Execute returns the definition registered under name.
func (uc *GetWorkflow) Execute(_ context.Context, name string) (*domain.WorkflowDefinition, error) {
	return uc.registry.Get(name)
}

// ListWorkflows use case for enumerating registered definitions.
type ListWorkflows struct {
	registry *domain.DefinitionRegistry
}

// NewListWorkflows creates a new ListWorkflows use case.
func NewListWorkflows(registry *domain.DefinitionRegistry) *ListWorkflows {
	return &ListWorkflows{registry: registry}
}

// Execute returns the registered workflow names.
func (uc *ListWorkflows) Execute(_ context.Context) []string {
	return uc.registry.List()
}
