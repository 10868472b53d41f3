package ui

import (
	"io"
	"testing"

	"github.com/go-edwin/edwin/pkg/errors"
	"github.com/go-edwin/edwin/pkg/headless"
	"github.com/go-edwin/edwin/pkg/surface"
)

func newTestState(t *testing.T, opts Options) (*State, *headless.Backend) {
	t.Helper()
	b := headless.New()
	win := b.NewWindow("test", 400, 300)
	s := New(b, win, opts)
	t.Cleanup(s.Close)
	return s, b
}

// quietReports routes violations to a discarding handler for the test.
func quietReports(t *testing.T) {
	t.Helper()
	errors.SetHandler(&errors.LogHandler{Out: io.Discard})
	t.Cleanup(func() { errors.SetHandler(nil) })
}

func expectViolation(t *testing.T, kind errors.ViolationKind, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		v, ok := r.(*errors.ViolationError)
		if !ok {
			t.Fatalf("expected *ViolationError panic, got %v", r)
		}
		if v.Kind != kind {
			t.Errorf("expected %s violation, got %s: %v", kind, v.Kind, v)
		}
	}()
	fn()
}

// checkLinks verifies parent and sibling links of every child of parent.
func checkLinks(t *testing.T, s *State, parent ID) []ID {
	t.Helper()
	var ids []ID
	prev := Null
	for c := s.Node(parent).Child(); c != Null; c = s.Node(c).After() {
		n := s.Node(c)
		if n.Parent() != parent {
			t.Errorf("node %d: parent %d, want %d", c, n.Parent(), parent)
		}
		if n.Before() != prev {
			t.Errorf("node %d: before %d, want %d", c, n.Before(), prev)
		}
		ids = append(ids, c)
		prev = c
	}
	return ids
}

// attachInput creates a visible input node of kind k with an edit surface.
func attachInput(s *State, k Kind) ID {
	id := s.Attach(TypeInput, Rect{W: 100, H: 20})
	s.Node(id).Kind = k
	s.AttachSurface(id, surface.ClassEdit, "", surface.StyleVisible)
	return id
}
