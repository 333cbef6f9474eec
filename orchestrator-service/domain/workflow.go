package domain

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// ActivityType tags the variants of a workflow activity.
type ActivityType string

const (
	ActivityReceive     ActivityType = "receive"
	ActivityInvoke      ActivityType = "invoke"
	ActivityConditional ActivityType = "conditional"
	ActivityFault       ActivityType = "fault"
	ActivityReply       ActivityType = "reply"
)

// Activity is one node of the activity graph. Which fields are meaningful
// depends on Type; branches nest fully, there are no jumps.
type Activity struct {
	Type      ActivityType `json:"type" yaml:"type"`
	Name      string       `json:"name" yaml:"name"`
	Operation string       `json:"operation,omitempty" yaml:"operation,omitempty"`

	// invoke
	Service        string `json:"service,omitempty" yaml:"service,omitempty"`
	InputVariable  string `json:"inputVariable,omitempty" yaml:"inputVariable,omitempty"`
	OutputVariable string `json:"outputVariable,omitempty" yaml:"outputVariable,omitempty"`

	// A best-effort invoke never fails the run: a call failure binds a
	// failed result to the output variable and execution continues.
	BestEffort bool `json:"bestEffort,omitempty" yaml:"bestEffort,omitempty"`

	// conditional
	Condition string     `json:"condition,omitempty" yaml:"condition,omitempty"`
	Then      []Activity `json:"then,omitempty" yaml:"then,omitempty"`
	Else      []Activity `json:"else,omitempty" yaml:"else,omitempty"`

	// fault
	FaultName string `json:"faultName,omitempty" yaml:"faultName,omitempty"`
}

// WorkflowDefinition is an immutable declarative activity graph. Definitions
// are registered once at startup and never mutated afterwards.
type WorkflowDefinition struct {
	Name        string         `json:"name" yaml:"name"`
	Version     string         `json:"version" yaml:"version"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Variables   map[string]any `json:"variables" yaml:"variables"`
	Activities  []Activity     `json:"activities" yaml:"activities"`
}

// Validate checks the structural invariants of a definition.
func (d *WorkflowDefinition) Validate() error {
	if d.Name == "" {
		return errors.New("workflow name is required")
	}
	if len(d.Activities) == 0 {
		return errors.Errorf("workflow %s has no activities", d.Name)
	}
	return validateSequence(d.Name, d.Activities)
}

func validateSequence(workflow string, activities []Activity) error {
	for _, activity := range activities {
		switch activity.Type {
		case ActivityReceive, ActivityReply:
		case ActivityInvoke:
			if activity.Service == "" || activity.Operation == "" {
				return errors.Errorf("workflow %s: invoke %q needs service and operation", workflow, activity.Name)
			}
			if activity.InputVariable == "" {
				return errors.Errorf("workflow %s: invoke %q needs an input variable", workflow, activity.Name)
			}
		case ActivityConditional:
			if activity.Condition == "" {
				return errors.Errorf("workflow %s: conditional %q needs a condition", workflow, activity.Name)
			}
			if _, err := ParsePredicate(activity.Condition); err != nil {
				return errors.Wrapf(err, "workflow %s: conditional %q", workflow, activity.Name)
			}
			if err := validateSequence(workflow, activity.Then); err != nil {
				return err
			}
			if err := validateSequence(workflow, activity.Else); err != nil {
				return err
			}
		case ActivityFault:
			if activity.FaultName == "" {
				return errors.Errorf("workflow %s: fault %q needs a fault name", workflow, activity.Name)
			}
		default:
			return errors.Errorf("workflow %s: unknown activity type %q", workflow, activity.Type)
		}
	}
	return nil
}

// DefinitionRegistry holds the workflow definitions a process can execute.
type DefinitionRegistry struct {
	mu          sync.RWMutex
	definitions map[string]*WorkflowDefinition
}

// NewDefinitionRegistry creates an empty registry.
func NewDefinitionRegistry() *DefinitionRegistry {
	return &DefinitionRegistry{
		definitions: make(map[string]*WorkflowDefinition),
	}
}

// Register validates and adds a definition. Re-registering a name is an
// error: definitions are load-once.
func (r *DefinitionRegistry) Register(definition *WorkflowDefinition) error {
	if err := definition.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.definitions[definition.Name]; exists {
		return errors.Errorf("workflow %s already registered", definition.Name)
	}
	r.definitions[definition.Name] = definition
	return nil
}

// Get returns a definition by name.
func (r *DefinitionRegistry) Get(name string) (*WorkflowDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	definition, ok := r.definitions[name]
	if !ok {
		return nil, errors.Wrap(ErrWorkflowNotFound, name)
	}
	return definition, nil
}

// List returns the registered workflow names, sorted.
func (r *DefinitionRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.definitions))
	for name := range r.definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
