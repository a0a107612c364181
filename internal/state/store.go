package state

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// Suggestions is the target filter produced by the latest search. The zero
// value is the "no filter" state, in which every favorite is shown. An active
// filter may be empty, in which case no favorite matches.
type Suggestions struct {
	active  bool
	targets map[string]struct{}
}

// NoFilter returns the inactive state.
func NoFilter() Suggestions {
	return Suggestions{}
}

// NewSuggestions returns an active filter over targets. The set is copied.
func NewSuggestions(targets map[string]struct{}) Suggestions {
	return Suggestions{active: true, targets: cloneSet(targets)}
}

// Active reports whether a filter is in effect.
func (s Suggestions) Active() bool {
	return s.active
}

// Contains reports whether target is in the active set. It is false for the
// inactive state.
func (s Suggestions) Contains(target string) bool {
	_, ok := s.targets[target]
	return ok
}

// Len returns the number of targets in the filter.
func (s Suggestions) Len() int {
	return len(s.targets)
}

// Targets returns the targets in sorted order.
func (s Suggestions) Targets() []string {
	out := make([]string, 0, len(s.targets))
	for t := range s.targets {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Health is the last known backend liveness.
type Health struct {
	Up                  bool
	Checked             time.Time
	LastError           error
	ConsecutiveFailures int
}

// Probed reports whether at least one probe has completed.
func (h Health) Probed() bool {
	return !h.Checked.IsZero()
}

// Snapshot is a copy of the shared session state for rendering.
type Snapshot struct {
	Suggestions Suggestions
	Generation  uint64
	Health      Health
}

// Store coordinates access to the suggestion filter and backend health. The
// health monitor writes from its own goroutine while the UI reads, so every
// access goes through the mutex and readers receive copies.
type Store struct {
	mu          sync.RWMutex
	suggestions Suggestions
	generation  uint64
	health      Health
}

// Suggestions returns a copy of the current filter.
func (s *Store) Suggestions() Suggestions {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Suggestions{active: s.suggestions.active, targets: cloneSet(s.suggestions.targets)}
}

// NextGeneration allocates the generation number for a new submission.
func (s *Store) NextGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	return s.generation
}

// ReplaceSuggestionsIfCurrent applies next only when gen is still the latest
// allocated generation. It reports whether the filter was replaced.
func (s *Store) ReplaceSuggestionsIfCurrent(gen uint64, next Suggestions) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return false
	}
	s.suggestions = Suggestions{active: next.active, targets: cloneSet(next.targets)}
	return true
}

// IsCurrent reports whether gen is the latest allocated generation.
func (s *Store) IsCurrent(gen uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return gen == s.generation
}

// UpdateHealth records a probe result. A nil err marks the backend up; any
// error marks it down and is kept for display.
func (s *Store) UpdateHealth(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.health.Checked = time.Now()
	if err != nil {
		s.health.Up = false
		s.health.LastError = err
		s.health.ConsecutiveFailures++
		return
	}
	s.health.Up = true
	s.health.LastError = nil
	s.health.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Suggestions: Suggestions{active: s.suggestions.active, targets: cloneSet(s.suggestions.targets)},
		Generation:  s.generation,
		Health:      s.health,
	}
	if s.health.LastError != nil {
		snap.Health.LastError = fmt.Errorf("%w", s.health.LastError)
	}
	return snap
}

func cloneSet(set map[string]struct{}) map[string]struct{} {
	if set == nil {
		return nil
	}
	dup := make(map[string]struct{}, len(set))
	for k := range set {
		dup[k] = struct{}{}
	}
	return dup
}
