package infrastructure

import (
	"sync"

	"github.com/SewwRathnayaka/SOA/orchestrator-service/domain"
)

var _ domain.RunHistory = (*RunStore)(nil)

const defaultRunCapacity = 1000

// RunStore retains workflow runs for status queries, bounded by capacity.
// When full, the oldest runs are evicted first; history is a diagnostic
// convenience, not durable state.
type RunStore struct {
	mu       sync.RWMutex
	runs     map[string]*domain.Run
	order    []string
	capacity int
}

// NewRunStore creates a store retaining at most capacity runs.
func NewRunStore(capacity int) *RunStore {
	if capacity <= 0 {
		capacity = defaultRunCapacity
	}
	return &RunStore{
		runs:     make(map[string]*domain.Run),
		capacity: capacity,
	}
}

// Add records a run, evicting the oldest entries past capacity.
func (s *RunStore) Add(run *domain.Run) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.runs[run.ID]; !exists {
		s.order = append(s.order, run.ID)
	}
	s.runs[run.ID] = run

	for len(s.order) > s.capacity {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.runs, oldest)
	}
}

// Get returns a run by ID.
func (s *RunStore) Get(id string) (*domain.Run, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.runs[id]
	return run, ok
}

// List returns retained runs, oldest first.
func (s *RunStore) List() []*domain.Run {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Run, 0, len(s.order))
	for _, id := range s.order {
		if run, ok := s.runs[id]; ok {
			out = append(out, run)
		}
	}
	return out
}

// Len returns the number of retained runs.
func (s *RunStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.runs)
}
