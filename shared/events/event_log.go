package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/SewwRathnayaka/SOA/shared/models"
)

// EventLogEntry records one message the coordinator consumed or published,
// keyed by the transaction it belongs to. The log is an audit trail; saga
// control flow never depends on it.
type EventLogEntry struct {
	ID            models.ID       `json:"id" db:"id"`
	TransactionID string          `json:"transaction_id" db:"transaction_id"`
	Queue         string          `json:"queue" db:"queue"`
	Direction     string          `json:"direction" db:"direction"` // "received" or "published"
	Payload       json.RawMessage `json:"payload" db:"payload"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}

const (
	DirectionReceived  = "received"
	DirectionPublished = "published"
)

// NewEventLogEntry builds a log entry for a payload that marshals to JSON.
func NewEventLogEntry(transactionID, queue, direction string, payload any) (*EventLogEntry, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &EventLogEntry{
		ID:            models.GenerateUUID(),
		TransactionID: transactionID,
		Queue:         queue,
		Direction:     direction,
		Payload:       raw,
		CreatedAt:     time.Now(),
	}, nil
}

// EventLog stores and retrieves saga event log entries.
type EventLog interface {
	Append(ctx context.Context, entry *EventLogEntry) error
	ByTransaction(ctx context.Context, transactionID string) ([]*EventLogEntry, error)
}
