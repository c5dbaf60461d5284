package runs

import (
	"context"
	"sync"
)

// DefaultCapacity is the number of runs a MemoryStore keeps by default.
const DefaultCapacity = 1024

// MemoryStore keeps the most recent runs in memory, evicting the oldest
// once full. It is safe for concurrent use.
type MemoryStore struct {
	mu       sync.Mutex
	capacity int
	runs     map[string]Run
	order    []string
}

// NewMemoryStore creates a store holding up to capacity runs. A
// non-positive capacity uses DefaultCapacity.
func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &MemoryStore{capacity: capacity, runs: make(map[string]Run)}
}

func (s *MemoryStore) Save(_ context.Context, r Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.runs[r.ID]; !ok {
		s.order = append(s.order, r.ID)
	}
	s.runs[r.ID] = r
	for len(s.order) > s.capacity {
		delete(s.runs, s.order[0])
		s.order = s.order[1:]
	}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.runs[id]
	if !ok {
		return Run{}, notFound(id)
	}
	return r, nil
}

// Len returns the number of stored runs.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.runs)
}

func (s *MemoryStore) Close(context.Context) error { return nil }

var _ Store = (*MemoryStore)(nil)
