package ui

import (
	stderrors "errors"
	"testing"

	"github.com/go-edwin/edwin/pkg/errors"
)

func TestArena_ReuseIsLIFO(t *testing.T) {
	s, _ := newTestState(t, Options{})
	s.Attach(TypeBlock, Rect{})
	b := s.Attach(TypeBlock, Rect{})
	c := s.Attach(TypeBlock, Rect{})
	used := s.Used()

	s.Remove(b)
	s.Remove(c)

	if got := s.Attach(TypeLabel, Rect{}); got != c {
		t.Errorf("first reuse = %d, want %d", got, c)
	}
	if got := s.Attach(TypeLabel, Rect{}); got != b {
		t.Errorf("second reuse = %d, want %d", got, b)
	}
	if s.Used() != used {
		t.Errorf("used grew to %d, want %d", s.Used(), used)
	}
}

func TestArena_ReuseResetsNode(t *testing.T) {
	s, _ := newTestState(t, Options{})
	id := s.Attach(TypeInput, Rect{W: 10})
	n := s.Node(id)
	n.Spacing = 5
	n.Flags |= FlagTabstop | FlagReadOnly
	n.Kind = KindFloat
	n.Format = "%.1f"
	n.Items = []string{"a"}
	v := float32(1)
	s.Bind(id, &v)

	s.Remove(id)
	got := s.Attach(TypeLabel, Rect{})
	if got != id {
		t.Fatalf("expected id %d to be reused, got %d", id, got)
	}

	n = s.Node(got)
	if n.Spacing != 0 || n.Flags != 0 || n.Kind != KindString || n.Format != "" || n.Items != nil {
		t.Errorf("recycled node not reset: %+v", n)
	}
	if n.Source() != nil || n.Next != Null || n.ID() != id || n.Type != TypeLabel {
		t.Errorf("recycled node has stale links: src=%v next=%d id=%d", n.Source(), n.Next, n.ID())
	}
}

func TestArena_Capacity(t *testing.T) {
	quietReports(t)
	s, _ := newTestState(t, Options{NodeCapacity: 3, Policy: PolicyReport})

	if s.Attach(TypeBlock, Rect{}) == Null || s.Attach(TypeBlock, Rect{}) == Null {
		t.Fatal("expected two nodes to fit next to the root")
	}
	if id := s.Attach(TypeBlock, Rect{}); id != Null {
		t.Errorf("expected Null from a full arena, got %d", id)
	}

	var v *errors.ViolationError
	if !stderrors.As(s.Err(), &v) || v.Kind != errors.KindCapacity {
		t.Errorf("expected capacity violation, got %v", s.Err())
	}
}

func TestArena_CapacityPanics(t *testing.T) {
	s, _ := newTestState(t, Options{NodeCapacity: 2})
	s.Attach(TypeBlock, Rect{})
	expectViolation(t, errors.KindCapacity, func() { s.Attach(TypeBlock, Rect{}) })
}

func TestClose(t *testing.T) {
	s, b := newTestState(t, Options{})
	img := s.Attach(TypeImage, Rect{})
	s.AllocImage(img, 2, 2, 0, nil)
	s.Close()

	if b.Resources() != 0 {
		t.Errorf("expected resources released, got %d", b.Resources())
	}
	if s.Active() != 0 {
		t.Errorf("expected no active nodes, got %d", s.Active())
	}
	s.Close()
}
