package application

import (
	"context"

	"github.com/pkg/errors"

	"github.com/SewwRathnayaka/SOA/shared/events"
)

// GetSagaEvents use case for reading the durable event log of one saga
// transaction.
type GetSagaEvents struct {
	eventLog events.EventLog
}

// NewGetSagaEvents creates a new GetSagaEvents use case.
func NewGetSagaEvents(eventLog events.EventLog) *GetSagaEvents {
	return &GetSagaEvents{eventLog: eventLog}
}

// Execute returns the logged messages for a transaction, oldest first.
func (uc *GetSagaEvents) Execute(ctx context.Context, transactionID string) ([]*events.EventLogEntry, error) {
	entries, err := uc.eventLog.ByTransaction(ctx, transactionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load saga events")
	}
	return entries, nil
}
