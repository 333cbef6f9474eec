package application

import (
	"context"
	"log/slog"

	"github.com/SewwRathnayaka/SOA/orchestrator-service/domain"
)

// RegisterWorkflow use case for adding a workflow definition at runtime.
type RegisterWorkflow struct {
	registry *domain.DefinitionRegistry
	logger   *slog.Logger
}

// NewRegisterWorkflow creates a new RegisterWorkflow use case.
func NewRegisterWorkflow(registry *domain.DefinitionRegistry, logger *slog.Logger) *RegisterWorkflow {
	return &RegisterWorkflow{
		registry: registry,
		logger:   logger,
	}
}

// Execute validates and registers the definition. Registrations are
// load-once: a duplicate name is rejected.
func (uc *RegisterWorkflow) Execute(_ context.Context, definition *domain.WorkflowDefinition) error {
	if err := uc.registry.Register(definition); err != nil {
		return err
	}
	uc.logger.Info("workflow registered", "workflow", definition.Name, "version", definition.Version)
	return nil
}
