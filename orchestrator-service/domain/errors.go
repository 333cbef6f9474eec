package domain

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrWorkflowNotFound means no definition is registered under the name.
	ErrWorkflowNotFound = errors.New("workflow not found")

	// ErrRunNotFound means no run exists with the requested ID.
	ErrRunNotFound = errors.New("workflow run not found")
)

// FaultError is raised by a fault activity. The fault name is what callers
// see as the run's error.
type FaultError struct {
	Name string
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("workflow fault: %s", e.Name)
}

// NewFault creates a FaultError with the given name.
func NewFault(name string) *FaultError {
	return &FaultError{Name: name}
}

// InvocationError wraps a failed outbound service call. One is produced per
// failed invoke attempt; the invoker never retries.
type InvocationError struct {
	Service   string
	Operation string
	Cause     error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("invoke %s.%s failed: %v", e.Service, e.Operation, e.Cause)
}

func (e *InvocationError) Unwrap() error {
	return e.Cause
}

// NewInvocationError wraps cause as an invocation failure.
func NewInvocationError(service, operation string, cause error) *InvocationError {
	return &InvocationError{Service: service, Operation: operation, Cause: cause}
}
