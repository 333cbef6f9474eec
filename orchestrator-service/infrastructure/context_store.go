package infrastructure

import (
	"context"
	"sync"
	"time"

	"github.com/SewwRathnayaka/SOA/shared/events"
)

const (
	defaultContextTTL      = time.Hour
	defaultContextCapacity = 10000
	janitorInterval        = time.Minute
)

type contextEntry struct {
	payload  events.OrderPayload
	storedAt time.Time
}

// TransactionContextStore maps a transaction ID to the original order
// payload so later saga steps can recover fields their triggering events do
// not carry. Entries are written once by the initiating handler and only
// read afterwards; they expire after a TTL so the map cannot grow without
// bound across the process lifetime.
type TransactionContextStore struct {
	mu       sync.RWMutex
	entries  map[string]contextEntry
	ttl      time.Duration
	capacity int
}

// NewTransactionContextStore creates a store with the given TTL and entry cap.
func NewTransactionContextStore(ttl time.Duration, capacity int) *TransactionContextStore {
	if ttl <= 0 {
		ttl = defaultContextTTL
	}
	if capacity <= 0 {
		capacity = defaultContextCapacity
	}
	return &TransactionContextStore{
		entries:  make(map[string]contextEntry),
		ttl:      ttl,
		capacity: capacity,
	}
}

// Put stores the original payload for a transaction. The first write wins;
// a redelivered initiating event cannot clobber the cached context.
func (s *TransactionContextStore) Put(transactionID string, payload events.OrderPayload) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[transactionID]; exists {
		return
	}

	if len(s.entries) >= s.capacity {
		s.evictOldestLocked()
	}

	s.entries[transactionID] = contextEntry{
		payload:  payload,
		storedAt: time.Now(),
	}
}

// Get returns the cached payload for a transaction, if present and fresh.
func (s *TransactionContextStore) Get(transactionID string) (events.OrderPayload, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[transactionID]
	if !ok || time.Since(entry.storedAt) > s.ttl {
		return events.OrderPayload{}, false
	}
	return entry.payload, true
}

// Len returns the number of live entries, counting expired ones not yet swept.
func (s *TransactionContextStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Sweep removes expired entries and returns how many were dropped.
func (s *TransactionContextStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	now := time.Now()
	for id, entry := range s.entries {
		if now.Sub(entry.storedAt) > s.ttl {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

func (s *TransactionContextStore) evictOldestLocked() {
	var oldestID string
	var oldestAt time.Time
	for id, entry := range s.entries {
		if oldestID == "" || entry.storedAt.Before(oldestAt) {
			oldestID = id
			oldestAt = entry.storedAt
		}
	}
	if oldestID != "" {
		delete(s.entries, oldestID)
	}
}

// StartJanitor sweeps expired entries periodically until ctx is cancelled.
func (s *TransactionContextStore) StartJanitor(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(janitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Sweep()
			}
		}
	}()
}
