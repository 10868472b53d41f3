package ui

import (
	"testing"

	"github.com/go-edwin/edwin/pkg/surface"
)

func attachTabstop(s *State) ID {
	id := s.Attach(TypeInput, Rect{W: 50, H: 20})
	s.Node(id).Flags |= FlagTabstop
	return id
}

func TestNextTabstop(t *testing.T) {
	s, _ := newTestState(t, Options{})
	a := attachTabstop(s)
	group := s.Push(TypeBlock, Rect{})
	b := attachTabstop(s)
	s.Pop()
	s.Attach(TypeLabel, Rect{})
	c := attachTabstop(s)
	_ = group

	tests := []struct {
		name string
		from ID
		want ID
	}{
		{"into group", a, b},
		{"out of group", b, c},
		{"wrap", c, a},
		{"from root", RootID, a},
	}
	for _, tt := range tests {
		if got := s.NextTabstop(tt.from); got != tt.want {
			t.Errorf("%s: NextTabstop(%d) = %d, want %d", tt.name, tt.from, got, tt.want)
		}
	}
}

func TestPreviousTabstop(t *testing.T) {
	s, _ := newTestState(t, Options{})
	a := attachTabstop(s)
	b := attachTabstop(s)
	c := attachTabstop(s)

	if got := s.PreviousTabstop(c); got != b {
		t.Errorf("PreviousTabstop(c) = %d, want %d", got, b)
	}
	if got := s.PreviousTabstop(b); got != a {
		t.Errorf("PreviousTabstop(b) = %d, want %d", got, a)
	}
	if got := s.PreviousTabstop(a); got != c {
		t.Errorf("PreviousTabstop(a) = %d, want %d", got, c)
	}
}

// Wrapping follows id order, which diverges from tree order once ids are
// recycled.
func TestTabstop_WrapUsesIDOrder(t *testing.T) {
	s, _ := newTestState(t, Options{})
	a := attachTabstop(s)
	b := attachTabstop(s)
	c := attachTabstop(s)
	s.Remove(a)
	s.InsertAfter(c)
	d := attachTabstop(s)
	if d != a {
		t.Fatalf("expected recycled id %d, got %d", a, d)
	}

	// Tree order is b, c, d.
	if got := s.NextTabstop(d); got != d {
		t.Errorf("NextTabstop(d) = %d, want the lowest id %d", got, d)
	}
	if got := s.PreviousTabstop(b); got != c {
		t.Errorf("PreviousTabstop(b) = %d, want the highest id %d", got, c)
	}
	for _, from := range []ID{b, c, d} {
		if s.NextTabstop(from) == Null {
			t.Errorf("NextTabstop(%d) returned Null", from)
		}
	}
}

func TestNextTabstop_SkipsHiddenAndDisabled(t *testing.T) {
	s, _ := newTestState(t, Options{})
	a := attachTabstop(s)
	hidden := attachTabstop(s)
	s.AttachSurface(hidden, surface.ClassEdit, "", surface.StyleVisible)
	s.Hide(hidden)
	disabled := attachTabstop(s)
	s.AttachSurface(disabled, surface.ClassEdit, "", surface.StyleVisible)
	s.Disable(disabled)
	d := attachTabstop(s)

	if got := s.NextTabstop(a); got != d {
		t.Errorf("NextTabstop = %d, want %d", got, d)
	}
	if got := s.PreviousTabstop(d); got != a {
		t.Errorf("PreviousTabstop = %d, want %d", got, a)
	}
}

func TestNextTabstop_None(t *testing.T) {
	s, _ := newTestState(t, Options{})
	s.Attach(TypeLabel, Rect{})
	if got := s.NextTabstop(RootID); got != Null {
		t.Errorf("expected Null without tabstops, got %d", got)
	}
}

func TestFocusCycle(t *testing.T) {
	s, b := newTestState(t, Options{})
	a := attachInput(s, KindString)
	c := attachInput(s, KindString)
	s.Node(a).Flags |= FlagTabstop
	s.Node(c).Flags |= FlagTabstop

	if got := s.FocusNext(); got != a || s.Focus() != a {
		t.Errorf("FocusNext from nothing = %d, want %d", got, a)
	}
	if got := s.FocusNext(); got != c {
		t.Errorf("FocusNext = %d, want %d", got, c)
	}
	if got := s.FocusPrevious(); got != a {
		t.Errorf("FocusPrevious = %d, want %d", got, a)
	}

	s.ResetFocus(a)
	if b.Focus() != s.Root().Surface() {
		t.Error("ResetFocus should focus the root window")
	}
}

func TestIsPointOver(t *testing.T) {
	s, _ := newTestState(t, Options{})
	id := s.Attach(TypeButton, Rect{X: 10, Y: 10, W: 50, H: 20})
	s.AttachSurface(id, surface.ClassButton, "ok", surface.StyleVisible)
	s.Invalidate(RootID)

	if !s.IsPointOver(id, 20, 15) {
		t.Error("expected point over button")
	}
	if s.IsPointOver(id, 5, 5) {
		t.Error("point outside reported as over")
	}
	if !s.IsOverAny(20, 15) || s.IsOverAny(300, 200) {
		t.Error("IsOverAny mismatch")
	}
	s.Hide(id)
	if s.IsPointOver(id, 20, 15) {
		t.Error("hidden node reported as over")
	}
}
