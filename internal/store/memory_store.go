package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/ecofinds/marketplace/internal/domain"
)

// MemoryStore implements Store with one mutex-guarded state value
type MemoryStore struct {
	mu        sync.RWMutex
	state     domain.State
	listeners map[int]Listener
	nextID    int
}

// NewMemoryStore creates a store holding initial
func NewMemoryStore(initial domain.State) *MemoryStore {
	return &MemoryStore{
		state:     initial,
		listeners: make(map[int]Listener),
	}
}

// Dispatch applies the action under the write lock
func (s *MemoryStore) Dispatch(action domain.Action) domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.apply(action)
}

// DispatchContext applies the action unless ctx is done
func (s *MemoryStore) DispatchContext(ctx context.Context, action domain.Action) (domain.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return s.state.Clone(), fmt.Errorf("%w: %T: %w", ErrTaskCancelled, action, err)
	}
	return s.apply(action), nil
}

// DispatchIf applies the action when ctx is live and cond holds for the
// current state
func (s *MemoryStore) DispatchIf(ctx context.Context, action domain.Action, cond func(domain.State) bool) (domain.State, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return s.state.Clone(), false, fmt.Errorf("%w: %T: %w", ErrTaskCancelled, action, err)
	}
	if !cond(s.state.Clone()) {
		return s.state.Clone(), false, nil
	}
	return s.apply(action), true, nil
}

func (s *MemoryStore) apply(action domain.Action) domain.State {
	prev := s.state
	s.state = Reduce(prev, action)

	for _, l := range s.listeners {
		l(action, prev, s.state)
	}
	return s.state.Clone()
}

// State returns a snapshot of the current state
func (s *MemoryStore) State() domain.State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.Clone()
}

// Subscribe registers l for every subsequent transition
func (s *MemoryStore) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = l

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}
