package application

import (
	"context"

	"github.com/pkg/errors"

	"github.com/SewwRathnayaka/SOA/orchestrator-service/domain"
)

// GetRun use case for reading one retained run.
type GetRun struct {
	history domain.RunHistory
}

// NewGetRun creates a new GetRun use case.
func NewGetRun(history domain.RunHistory) *GetRun {
	return &GetRun{history: history}
}

// Execute returns the run with the given ID.
func (uc *GetRun) Execute(_ context.Context, id string) (*domain.Run, error) {
	run, ok := uc.history.Get(id)
	if !ok {
		return nil, errors.Wrap(domain.ErrRunNotFound, id)
	}
	return run, nil
}

// ListRuns use case for enumerating retained runs.
type ListRuns struct {
	history domain.RunHistory
}

// NewListRuns creates a new ListRuns use case.
func NewListRuns(history domain.RunHistory) *ListRuns {
	return &ListRuns{history: history}
}

// Execute returns the retained runs, oldest first.
func (uc *ListRuns) Execute(_ context.Context) []*domain.Run {
	return uc.history.List()
}
