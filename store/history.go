package store

import "fmt"

// Undo restores the previous snapshot, moving the current one onto the
// redo stack. Index 0 of the history is the baseline state from load
// time, so at least two entries are required. Undo/redo deliberately
// bypass the permission model — they are a global rewind, not an
// audited per-entity action — and produce no audit entry themselves.
func (s *Store) Undo() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.history) < 2 {
		return false, nil
	}
	current := s.history[len(s.history)-1]
	previous := s.history[len(s.history)-2]
	if err := s.db.SaveSnapshot(previous); err != nil {
		return false, fmt.Errorf("persist snapshot: %w", err)
	}
	s.history = s.history[:len(s.history)-1]
	s.redo = append(s.redo, current)
	s.restore(previous)
	return true, nil
}

// Redo re-applies the most recently undone snapshot, if any.
func (s *Store) Redo() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.redo) == 0 {
		return false, nil
	}
	next := s.redo[len(s.redo)-1]
	if err := s.db.SaveSnapshot(next); err != nil {
		return false, fmt.Errorf("persist snapshot: %w", err)
	}
	s.redo = s.redo[:len(s.redo)-1]
	s.history = append(s.history, next)
	s.restore(next)
	return true, nil
}

// HistoryDepth reports the number of retained snapshots, baseline
// included. The caller's UI uses it to enable the undo control.
func (s *Store) HistoryDepth() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.history)
}

// RedoDepth reports the number of undone snapshots available for redo.
func (s *Store) RedoDepth() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.redo)
}
