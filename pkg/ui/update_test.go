package ui

import (
	"testing"

	"github.com/go-edwin/edwin/pkg/errors"
	"github.com/go-edwin/edwin/pkg/surface"
)

func registerCounters(s *State, n int) []int {
	counts := make([]int, n)
	for i := range n {
		s.RegisterUpdate(Null, func() { counts[i]++ })
	}
	return counts
}

func TestTick_Fairness(t *testing.T) {
	tests := []struct {
		name   string
		count  int
		groups int
	}{
		{"even", 8, 4},
		{"remainder", 10, 4},
		{"fewer than groups", 3, 4},
		{"single group", 5, 1},
		{"zero groups", 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestState(t, Options{})
			counts := registerCounters(s, tt.count)
			rounds := max(tt.groups, 1)

			for round := 1; round <= 2; round++ {
				for range rounds {
					s.Tick(tt.groups)
				}
				for i, c := range counts {
					if c != round {
						t.Errorf("round %d: registration %d ran %d times", round, i, c)
					}
				}
			}
		})
	}
}

func TestTick_SpreadsWork(t *testing.T) {
	s, _ := newTestState(t, Options{})
	counts := registerCounters(s, 8)

	s.Tick(4)
	ran := 0
	for _, c := range counts {
		ran += c
	}
	if ran != 2 {
		t.Errorf("first tick ran %d registrations, want 2", ran)
	}
	if s.Stats().UpdateCalls != 1 {
		t.Errorf("UpdateCalls = %d, want 1", s.Stats().UpdateCalls)
	}
}

func TestTick_SkipsHiddenNodes(t *testing.T) {
	s, _ := newTestState(t, Options{})
	id := s.Attach(TypeBlock, Rect{})
	s.AttachSurface(id, surface.ClassBlock, "", surface.StyleVisible)
	runs := 0
	s.RegisterUpdate(id, func() { runs++ })

	s.Tick(1)
	s.Hide(id)
	s.Tick(1)

	if runs != 1 {
		t.Errorf("runs = %d, want 1", runs)
	}
}

func TestTick_RecoversPanics(t *testing.T) {
	quietReports(t)
	s, _ := newTestState(t, Options{})
	s.RegisterUpdate(Null, func() { panic("boom") })
	runs := 0
	s.RegisterUpdate(Null, func() { runs++ })

	s.Tick(1)
	if runs != 1 {
		t.Errorf("registration after a panicking one ran %d times", runs)
	}
}

func TestTick_UnregisterDuringTick(t *testing.T) {
	s, _ := newTestState(t, Options{})
	id := s.Attach(TypeBlock, Rect{})
	s.RegisterUpdate(Null, func() { s.UnregisterUpdate(id) })
	s.RegisterUpdate(id, func() {})

	s.Tick(1)
	if s.Updates() != 1 {
		t.Errorf("Updates = %d, want 1", s.Updates())
	}
}

func TestRegisterUpdate_Capacity(t *testing.T) {
	s, _ := newTestState(t, Options{UpdateCapacity: 1})
	s.RegisterUpdate(Null, func() {})
	expectViolation(t, errors.KindCapacity, func() { s.RegisterUpdate(Null, func() {}) })
}

func TestUnregisterUpdate(t *testing.T) {
	s, _ := newTestState(t, Options{})
	a := s.Attach(TypeBlock, Rect{})
	c := s.Attach(TypeBlock, Rect{})
	s.RegisterUpdate(a, func() {})
	s.RegisterUpdate(c, func() {})
	s.RegisterUpdate(a, func() {})

	s.UnregisterUpdate(a)
	if s.Updates() != 1 || s.Node(a).Has(FlagOwnUpdate) {
		t.Errorf("Updates = %d after unregistering a", s.Updates())
	}
	s.UnregisterUpdate(Null)
	if s.Updates() != 0 {
		t.Errorf("Updates = %d after clearing", s.Updates())
	}
}
