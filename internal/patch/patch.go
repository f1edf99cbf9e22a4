// Package patch records field overrides on a live object so they can be
// reverted as a unit. Each Assign snapshots the current value before writing;
// Restore replays the snapshots newest first, exactly once.
package patch

import "sync"

// Set is a scoped collection of applied overrides
type Set struct {
	mu   sync.Mutex
	undo []func()
	once sync.Once
}

// NewSet creates an empty patch set
func NewSet() *Set {
	return &Set{}
}

// Assign overwrites *dst with *value after recording the prior value.
// A nil value is skipped: nothing is read, nothing is written.
func Assign[T any](s *Set, dst *T, value *T) {
	if s == nil || dst == nil || value == nil {
		return
	}

	prev := *dst
	s.mu.Lock()
	s.undo = append(s.undo, func() { *dst = prev })
	s.mu.Unlock()

	*dst = *value
}

// Len returns the number of recorded overrides
func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.undo)
}

// Restore reverts every recorded override in reverse order. Calling it again is a no-op.
func (s *Set) Restore() {
	if s == nil {
		return
	}

	s.once.Do(func() {
		s.mu.Lock()
		undo := s.undo
		s.undo = nil
		s.mu.Unlock()

		for i := len(undo) - 1; i >= 0; i-- {
			undo[i]()
		}
	})
}

// Scoped runs fn with a fresh set and restores it on every exit path, panics included.
func Scoped(fn func(s *Set) error) error {
	s := NewSet()
	defer s.Restore()
	return fn(s)
}
