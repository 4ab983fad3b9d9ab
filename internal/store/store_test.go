package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/AlexGerus/dolf-charts/internal/model"
)

func makeScenario(name string) model.ScenarioData {
	return model.ScenarioData{
		Scenario: name,
		Symbol:   "BTC/USDT",
		Candles:  []model.Candle{{Timestamp: 1700000000000, Volume: 1}},
	}
}

func fill(t *testing.T, s *Store, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := s.Add(makeScenario(fmt.Sprintf("s%d", i))); err != nil {
			t.Fatalf("unexpected Add error at %d: %v", i, err)
		}
	}
}

func TestStore_AddAndCount(t *testing.T) {
	s := New()
	if s.Count() != 0 {
		t.Errorf("expected empty store, got count %d", s.Count())
	}

	fill(t, s, 3)
	if s.Count() != 3 {
		t.Errorf("expected count 3, got %d", s.Count())
	}

	got := s.Scenarios()
	for i, want := range []string{"s0", "s1", "s2"} {
		if got[i].Scenario != want {
			t.Errorf("index %d: expected %q, got %q", i, want, got[i].Scenario)
		}
	}
}

func TestStore_CapacityLimit(t *testing.T) {
	s := New()
	fill(t, s, MaxScenarios)

	err := s.Add(makeScenario("overflow"))
	if !errors.Is(err, ErrCapacity) {
		t.Fatalf("expected ErrCapacity, got %v", err)
	}
	if s.Count() != MaxScenarios {
		t.Errorf("expected store unchanged at %d, got %d", MaxScenarios, s.Count())
	}
	for i, sc := range s.Scenarios() {
		if want := fmt.Sprintf("s%d", i); sc.Scenario != want {
			t.Errorf("index %d: expected %q untouched, got %q", i, want, sc.Scenario)
		}
	}
}

func TestStore_RemoveShiftsDown(t *testing.T) {
	s := New()
	fill(t, s, 4)

	s.Remove(1)

	got := s.Scenarios()
	if len(got) != 3 {
		t.Fatalf("expected 3 scenarios, got %d", len(got))
	}
	for i, want := range []string{"s0", "s2", "s3"} {
		if got[i].Scenario != want {
			t.Errorf("index %d: expected %q, got %q", i, want, got[i].Scenario)
		}
	}
}

func TestStore_RemoveOutOfRangeIsNoOp(t *testing.T) {
	s := New()
	fill(t, s, 2)

	for _, index := range []int{-1, 2, 99} {
		s.Remove(index)
		if s.Count() != 2 {
			t.Errorf("Remove(%d): expected count 2, got %d", index, s.Count())
		}
	}
}

func TestStore_ClearIdempotent(t *testing.T) {
	s := New()
	fill(t, s, 3)

	s.Clear()
	if s.Count() != 0 {
		t.Errorf("expected count 0 after clear, got %d", s.Count())
	}

	s.Clear()
	if s.Count() != 0 {
		t.Errorf("expected clear on empty store to stay 0, got %d", s.Count())
	}
}

func TestStore_SnapshotStability(t *testing.T) {
	s := New()
	fill(t, s, 2)

	snapshot := s.Scenarios()
	s.Remove(0)
	s.Clear()

	if len(snapshot) != 2 || snapshot[0].Scenario != "s0" || snapshot[1].Scenario != "s1" {
		t.Error("expected earlier snapshot to be unaffected by later mutations")
	}
}

func TestStore_Get(t *testing.T) {
	s := New()
	fill(t, s, 2)

	sc, ok := s.Get(1)
	if !ok || sc.Scenario != "s1" {
		t.Errorf("Get(1) = (%q, %v), want (s1, true)", sc.Scenario, ok)
	}
	if _, ok := s.Get(2); ok {
		t.Error("expected Get(2) to report missing")
	}
	if _, ok := s.Get(-1); ok {
		t.Error("expected Get(-1) to report missing")
	}
}

func TestStore_SubscribeDeliversSnapshots(t *testing.T) {
	s := New()
	ch, cancel := s.Subscribe()
	defer cancel()

	// Initial snapshot arrives on subscribe.
	if got := <-ch; len(got) != 0 {
		t.Errorf("expected empty initial snapshot, got %d scenarios", len(got))
	}

	s.Add(makeScenario("s0"))
	if got := <-ch; len(got) != 1 || got[0].Scenario != "s0" {
		t.Errorf("expected snapshot with s0, got %v", got)
	}
}

func TestStore_SlowSubscriberSeesLatest(t *testing.T) {
	s := New()
	ch, cancel := s.Subscribe()
	defer cancel()
	<-ch // drain initial snapshot

	// Two mutations without a read in between: only the latest snapshot
	// must be pending.
	s.Add(makeScenario("s0"))
	s.Add(makeScenario("s1"))

	got := <-ch
	if len(got) != 2 {
		t.Fatalf("expected latest snapshot with 2 scenarios, got %d", len(got))
	}

	select {
	case stale := <-ch:
		t.Errorf("expected no queued stale snapshot, got %d scenarios", len(stale))
	default:
	}
}

func TestStore_CancelStopsDelivery(t *testing.T) {
	s := New()
	ch, cancel := s.Subscribe()
	<-ch
	cancel()

	// Mutating after cancel must not panic on a closed channel.
	s.Add(makeScenario("s0"))

	if _, open := <-ch; open {
		t.Error("expected channel to be closed after cancel")
	}
}
