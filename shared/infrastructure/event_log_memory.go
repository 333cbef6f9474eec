package infrastructure

import (
	"context"
	"sync"

	"github.com/SewwRathnayaka/SOA/shared/events"
)

var _ events.EventLog = (*InMemoryEventLog)(nil)

// InMemoryEventLog keeps the saga event log in process memory, bounded by a
// maximum entry count. It backs the event log API when no database is
// configured.
type InMemoryEventLog struct {
	mu       sync.RWMutex
	entries  []*events.EventLogEntry
	capacity int
}

// NewInMemoryEventLog creates a log retaining at most capacity entries.
func NewInMemoryEventLog(capacity int) *InMemoryEventLog {
	if capacity <= 0 {
		capacity = 1000
	}
	return &InMemoryEventLog{capacity: capacity}
}

// Append records an entry, evicting the oldest entries past capacity.
func (l *InMemoryEventLog) Append(_ context.Context, entry *events.EventLogEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, entry)
	if len(l.entries) > l.capacity {
		l.entries = l.entries[len(l.entries)-l.capacity:]
	}
	return nil
}

// ByTransaction returns entries for one transaction in append order.
func (l *InMemoryEventLog) ByTransaction(_ context.Context, transactionID string) ([]*events.EventLogEntry, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []*events.EventLogEntry
	for _, entry := range l.entries {
		if entry.TransactionID == transactionID {
			out = append(out, entry)
		}
	}
	return out, nil
}
