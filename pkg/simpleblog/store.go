package simpleblog

import (
	"sync"
	"sync/atomic"
)

// Store holds the current blog state. Reads load the current snapshot without
// locking; writes run one at a time and publish the next snapshot with a
// single pointer swap.
type Store struct {
	mu      sync.Mutex
	current atomic.Pointer[Snapshot]
}

// NewStore returns a store initialized from a deep copy of initial.
func NewStore(initial Snapshot) *Store {
	s := &Store{}
	next := initial.Clone()
	s.current.Store(&next)
	return s
}

// Load returns the current snapshot. The returned value shares memory with
// the store and must be treated as read-only; use Snapshot.Clone to modify it.
func (s *Store) Load() Snapshot {
	return *s.current.Load()
}

// Update computes the next state from the current one and commits it. When fn
// returns an error nothing is committed.
func (s *Store) Update(fn func(Snapshot) (Snapshot, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(*s.current.Load())
	if err != nil {
		return err
	}
	s.current.Store(&next)
	return nil
}
