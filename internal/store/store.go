// Package store holds the bounded in-memory scenario collection shared by
// the API handlers and the live feed.
package store

import (
	"errors"
	"sync"

	"github.com/AlexGerus/dolf-charts/internal/model"
)

// MaxScenarios is the collection capacity.
const MaxScenarios = 6

// ErrCapacity is returned by Add when the store already holds MaxScenarios.
var ErrCapacity = errors.New("Maximum of 6 scenarios allowed. Please remove one first.")

// Store is an ordered, bounded collection of scenarios with snapshot
// subscriptions. Every mutation replaces the backing slice rather than
// editing it in place, so a slice handed out earlier stays a stable snapshot.
//
// Scenarios have no persistent IDs; the index is the only address, and a
// removal shifts later scenarios down by one.
type Store struct {
	mu        sync.RWMutex
	scenarios []model.ScenarioData
	subs      map[chan []model.ScenarioData]struct{}
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		subs: make(map[chan []model.ScenarioData]struct{}),
	}
}

// Add appends a scenario and publishes the new snapshot. Fails with
// ErrCapacity when the store is full, leaving the collection untouched.
func (s *Store) Add(sc model.ScenarioData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.scenarios) >= MaxScenarios {
		return ErrCapacity
	}

	next := make([]model.ScenarioData, 0, len(s.scenarios)+1)
	next = append(next, s.scenarios...)
	next = append(next, sc)
	s.scenarios = next
	s.publish()
	return nil
}

// Remove drops the scenario at index. An out-of-range index is a silent
// no-op; the snapshot is published either way.
func (s *Store) Remove(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]model.ScenarioData, 0, len(s.scenarios))
	for i, sc := range s.scenarios {
		if i != index {
			next = append(next, sc)
		}
	}
	s.scenarios = next
	s.publish()
}

// Clear empties the store. Idempotent; an empty snapshot is published even
// when the store was already empty.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scenarios = []model.ScenarioData{}
	s.publish()
}

// Count returns the number of stored scenarios.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.scenarios)
}

// Scenarios returns the current snapshot. Callers may hold on to it; later
// mutations never touch a published slice.
func (s *Store) Scenarios() []model.ScenarioData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scenarios
}

// Get returns the scenario at index.
func (s *Store) Get(index int) (model.ScenarioData, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if index < 0 || index >= len(s.scenarios) {
		return model.ScenarioData{}, false
	}
	return s.scenarios[index], true
}

// Subscribe registers a snapshot listener. The channel has capacity 1 and an
// undelivered snapshot is replaced on the next publish, so a slow consumer
// always sees the latest state rather than a backlog. cancel unregisters the
// subscription and closes the channel.
func (s *Store) Subscribe() (<-chan []model.ScenarioData, func()) {
	ch := make(chan []model.ScenarioData, 1)

	s.mu.Lock()
	s.subs[ch] = struct{}{}
	ch <- s.scenarios
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.subs[ch]; ok {
			delete(s.subs, ch)
			close(ch)
		}
	}
	return ch, cancel
}

// publish pushes the current snapshot to every subscriber. Caller holds mu.
func (s *Store) publish() {
	for ch := range s.subs {
		select {
		case ch <- s.scenarios:
		default:
			// Stale snapshot still queued: drop it in favour of the new one.
			select {
			case <-ch:
			default:
			}
			ch <- s.scenarios
		}
	}
}
