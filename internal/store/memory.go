// internal/store/memory.go
package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/seasaltgame/seasalt/internal/engine"
)

// EngineStore is the in-memory registry of live engines, keyed by the id the
// server handed out when the table was opened.
type EngineStore struct {
	mu      sync.Mutex
	engines map[uuid.UUID]*engine.Engine
}

func NewEngineStore() *EngineStore {
	return &EngineStore{
		engines: make(map[uuid.UUID]*engine.Engine),
	}
}

func (s *EngineStore) Add(id uuid.UUID, e *engine.Engine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engines[id] = e
}

func (s *EngineStore) Get(id uuid.UUID) (*engine.Engine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, exists := s.engines[id]
	return e, exists
}

func (s *EngineStore) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.engines, id)
}

// IDs lists the registered table ids.
func (s *EngineStore) IDs() []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]uuid.UUID, 0, len(s.engines))
	for id := range s.engines {
		ids = append(ids, id)
	}
	return ids
}
