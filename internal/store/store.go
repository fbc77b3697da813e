// Package store keeps the current board state for a running session.
package store

import (
	"sync/atomic"

	"github.com/jask/listboard/internal/board"
)

// Store holds one board.State. Replace swaps the whole value, so a reader
// never observes a half-applied transition.
type Store struct {
	current  atomic.Pointer[board.State]
	revision atomic.Uint64
}

// New returns a Store holding initial at revision 0.
func New(initial board.State) *Store {
	s := &Store{}
	s.current.Store(&initial)
	return s
}

// Read returns the current snapshot. The snapshot stays valid after later
// replacements.
func (s *Store) Read() board.State {
	return *s.current.Load()
}

// Replace installs next as the current state and returns the new revision.
func (s *Store) Replace(next board.State) uint64 {
	s.current.Store(&next)
	return s.revision.Add(1)
}

// Revision counts replacements since the store was created.
func (s *Store) Revision() uint64 {
	return s.revision.Load()
}
