package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RunStatus is the lifecycle state of one workflow run.
type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

// Run is the execution context of one workflow invocation. It is owned
// exclusively by the interpreter driving it and becomes immutable once the
// status leaves running.
type Run struct {
	ID              string         `json:"id"`
	WorkflowName    string         `json:"workflowName"`
	StartTime       time.Time      `json:"startTime"`
	EndTime         time.Time      `json:"endTime,omitempty"`
	Status          RunStatus      `json:"status"`
	Variables       map[string]any `json:"variables"`
	CurrentActivity string         `json:"currentActivity,omitempty"`
	Input           map[string]any `json:"input"`
	Output          map[string]any `json:"output,omitempty"`
	Error           string         `json:"error,omitempty"`
	DurationMillis  int64          `json:"durationMs"`
}

// NewRunID generates a process-unique run identifier.
func NewRunID() string {
	return fmt.Sprintf("exec_%d_%s", time.Now().UnixMilli(), strings.Split(uuid.NewString(), "-")[0])
}

// NewRun allocates a run for a definition, seeding the variable scope from
// the declared variables.
func NewRun(definition *WorkflowDefinition, input map[string]any) *Run {
	variables := make(map[string]any, len(definition.Variables))
	for name, initial := range definition.Variables {
		variables[name] = initial
	}

	return &Run{
		ID:           NewRunID(),
		WorkflowName: definition.Name,
		StartTime:    time.Now(),
		Status:       RunStatusRunning,
		Variables:    variables,
		Input:        input,
	}
}

// Complete marks the run successful.
func (r *Run) Complete(output map[string]any) {
	r.Output = output
	r.Status = RunStatusCompleted
	r.finish()
}

// Fail marks the run failed with the given error text.
func (r *Run) Fail(message string) {
	r.Error = message
	r.Status = RunStatusFailed
	r.finish()
}

func (r *Run) finish() {
	r.EndTime = time.Now()
	r.DurationMillis = r.EndTime.Sub(r.StartTime).Milliseconds()
}

// Result projects the terminal view of a run returned to callers.
type RunResult struct {
	RunID          string         `json:"executionId"`
	Status         RunStatus      `json:"status"`
	Output         map[string]any `json:"result,omitempty"`
	Error          string         `json:"error,omitempty"`
	DurationMillis int64          `json:"duration"`
}

// Result builds the caller-facing result for a terminal run.
func (r *Run) Result() *RunResult {
	return &RunResult{
		RunID:          r.ID,
		Status:         r.Status,
		Output:         r.Output,
		Error:          r.Error,
		DurationMillis: r.DurationMillis,
	}
}

// RunHistory retains terminated runs for later status queries.
type RunHistory interface {
	Add(run *Run)
	Get(id string) (*Run, bool)
	List() []*Run
}

// ServiceCaller makes one authenticated outbound call to a named
// collaborator. Implementations resolve the endpoint through the service
// registry and never retry; retry policy belongs to the caller.
type ServiceCaller interface {
	Call(ctx context.Context, service, operation string, payload map[string]any) (map[string]any, error)
}
