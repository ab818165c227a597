package poller

import (
	"sync"

	"github.com/alvea-app/ax-agent/internal/ax"
)

// SelectionStore holds the most recent non-self application root observed
// by the polling loop. It is the only state shared between the loop and its
// readers; one mutex guards the cell, loads copy out, stores replace
// wholesale. There is no deletion path; the context lives until process
// exit.
type SelectionStore struct {
	mu   sync.Mutex
	root *ax.Element
}

// NewSelectionStore creates an empty store.
func NewSelectionStore() *SelectionStore {
	return &SelectionStore{}
}

// Load returns a deep copy of the stored application root, if any. Copying
// guarantees no caller can observe a torn element while the loop replaces
// the cell.
func (s *SelectionStore) Load() (ax.Element, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.root == nil {
		return ax.Element{}, false
	}
	return s.root.Clone(), true
}

// Store replaces the selection context. Last writer wins; there are no
// merge semantics.
func (s *SelectionStore) Store(root ax.Element) {
	clone := root.Clone()
	s.mu.Lock()
	s.root = &clone
	s.mu.Unlock()
}

// App returns the owning application name of the stored context, or "" when
// the store is empty.
func (s *SelectionStore) App() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.root == nil {
		return ""
	}
	return s.root.App
}
