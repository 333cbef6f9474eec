package application

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/SewwRathnayaka/SOA/orchestrator-service/domain"
)

// ExecuteWorkflowCommand names the workflow to run and carries its input.
type ExecuteWorkflowCommand struct {
	WorkflowName string         `json:"workflowName"`
	Input        map[string]any `json:"input"`
}

// ExecuteWorkflow interprets a registered workflow definition against one
// input. Runs are single-threaded and synchronous: the caller blocks until
// the run reaches a terminal status.
type ExecuteWorkflow struct {
	registry *domain.DefinitionRegistry
	caller   domain.ServiceCaller
	history  domain.RunHistory
	logger   *slog.Logger
}

// NewExecuteWorkflow creates the workflow execution use case.
func NewExecuteWorkflow(
	registry *domain.DefinitionRegistry,
	caller domain.ServiceCaller,
	history domain.RunHistory,
	logger *slog.Logger,
) *ExecuteWorkflow {
	return &ExecuteWorkflow{
		registry: registry,
		caller:   caller,
		history:  history,
		logger:   logger.With("component", "workflow-engine"),
	}
}

// Execute runs the named workflow to completion. An error is returned only
// when the workflow itself is unknown; runs that fail mid-flight are
// recorded and reported through the result status.
func (uc *ExecuteWorkflow) Execute(ctx context.Context, cmd *ExecuteWorkflowCommand) (*domain.RunResult, error) {
	definition, err := uc.registry.Get(cmd.WorkflowName)
	if err != nil {
		return nil, err
	}

	run := domain.NewRun(definition, cmd.Input)
	uc.logger.Info("workflow started", "workflow", definition.Name, "execution_id", run.ID)

	err = uc.runSequence(ctx, run, definition.Activities)
	switch {
	case err == nil:
		if run.Output == nil {
			run.Output = defaultReplyOutput(run)
		}
		run.Complete(run.Output)
		uc.logger.Info("workflow completed", "workflow", definition.Name, "execution_id", run.ID, "duration_ms", run.DurationMillis)
	default:
		var fault *domain.FaultError
		if errors.As(err, &fault) {
			run.Fail(fault.Name)
			uc.logger.Warn("workflow faulted", "workflow", definition.Name, "execution_id", run.ID, "fault", fault.Name)
		} else {
			run.Fail(err.Error())
			uc.logger.Error("workflow failed", "workflow", definition.Name, "execution_id", run.ID, "error", err)
		}
	}

	uc.history.Add(run)
	return run.Result(), nil
}

func (uc *ExecuteWorkflow) runSequence(ctx context.Context, run *domain.Run, activities []domain.Activity) error {
	for i := range activities {
		if err := uc.runActivity(ctx, run, &activities[i]); err != nil {
			return err
		}
	}
	return nil
}

func (uc *ExecuteWorkflow) runActivity(ctx context.Context, run *domain.Run, activity *domain.Activity) error {
	run.CurrentActivity = activity.Name

	switch activity.Type {
	case domain.ActivityReceive:
		if activity.InputVariable != "" {
			run.Variables[activity.InputVariable] = run.Input
		}
		return nil

	case domain.ActivityInvoke:
		payload, _ := run.Variables[activity.InputVariable].(map[string]any)
		result, err := uc.caller.Call(ctx, activity.Service, activity.Operation, payload)
		if err != nil {
			if !activity.BestEffort {
				return errors.Wrapf(err, "activity %s", activity.Name)
			}
			uc.logger.Warn("best-effort invoke failed, continuing",
				"execution_id", run.ID, "activity", activity.Name,
				"service", activity.Service, "error", err)
			result = map[string]any{"status": "failed", "error": err.Error()}
		}
		if activity.OutputVariable != "" {
			run.Variables[activity.OutputVariable] = result
		}
		return nil

	case domain.ActivityConditional:
		predicate, err := domain.ParsePredicate(activity.Condition)
		if err != nil {
			// Definitions are validated at registration so this does not
			// happen for registered workflows.
			return errors.Wrapf(err, "activity %s", activity.Name)
		}
		// An evaluation error selects the else branch, same as false.
		matched, evalErr := predicate.Evaluate(run.Variables)
		if evalErr != nil {
			uc.logger.Warn("condition evaluation failed, taking else branch",
				"execution_id", run.ID, "activity", activity.Name, "error", evalErr)
			matched = false
		}
		branch := activity.Else
		if matched {
			branch = activity.Then
		}
		return uc.runSequence(ctx, run, branch)

	case domain.ActivityFault:
		return domain.NewFault(activity.FaultName)

	case domain.ActivityReply:
		if activity.InputVariable != "" {
			if output, ok := run.Variables[activity.InputVariable].(map[string]any); ok {
				run.Output = output
				return nil
			}
		}
		run.Output = defaultReplyOutput(run)
		return nil

	default:
		return errors.Errorf("activity %s: unknown type %q", activity.Name, activity.Type)
	}
}

func defaultReplyOutput(run *domain.Run) map[string]any {
	output := map[string]any{
		"status":  "completed",
		"message": "Order processed successfully",
	}
	if id, ok := run.Input["id"].(string); ok && id != "" {
		output["orderId"] = id
	}
	return output
}
