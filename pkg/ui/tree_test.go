package ui

import (
	stderrors "errors"
	"slices"
	"testing"

	"github.com/go-edwin/edwin/pkg/errors"
)

func TestAttach_AppendsAfterCursor(t *testing.T) {
	s, _ := newTestState(t, Options{})
	a := s.Attach(TypeBlock, Rect{})
	b := s.Attach(TypeBlock, Rect{})
	c := s.Attach(TypeBlock, Rect{})

	got := checkLinks(t, s, RootID)
	if !slices.Equal(got, []ID{a, b, c}) {
		t.Errorf("children = %v, want %v", got, []ID{a, b, c})
	}
	if p, child := s.Cursor(); p != RootID || child != c {
		t.Errorf("cursor = (%d, %d), want (%d, %d)", p, child, RootID, c)
	}
}

func TestInsertAfter_Middle(t *testing.T) {
	s, _ := newTestState(t, Options{})
	a := s.Attach(TypeBlock, Rect{})
	b := s.Attach(TypeBlock, Rect{})

	s.InsertAfter(a)
	x := s.Attach(TypeLabel, Rect{})

	got := checkLinks(t, s, RootID)
	if !slices.Equal(got, []ID{a, x, b}) {
		t.Errorf("children = %v, want %v", got, []ID{a, x, b})
	}
	if s.Node(b).Before() != x || s.Node(a).After() != x {
		t.Error("neighbours not relinked")
	}
}

func TestPushPop(t *testing.T) {
	s, _ := newTestState(t, Options{})
	outer := s.Push(TypeBlock, Rect{})
	inner := s.Push(TypeBlock, Rect{})
	leaf := s.Attach(TypeLabel, Rect{})

	if s.Node(leaf).Parent() != inner || s.Node(inner).Parent() != outer {
		t.Fatal("unexpected parents")
	}

	s.Pop()
	if p, c := s.Cursor(); p != outer || c != inner {
		t.Errorf("cursor = (%d, %d), want (%d, %d)", p, c, outer, inner)
	}
	s.Pop()
	if p, c := s.Cursor(); p != RootID || c != outer {
		t.Errorf("cursor = (%d, %d), want (%d, %d)", p, c, RootID, outer)
	}
}

func TestPop_PopParent(t *testing.T) {
	s, _ := newTestState(t, Options{})
	outer := s.Push(TypeGroup, Rect{})
	inner := s.Push(TypeBlock, Rect{})
	s.Node(inner).Flags |= FlagPopParent

	s.Pop()

	if p, c := s.Cursor(); p != RootID || c != outer {
		t.Errorf("cursor = (%d, %d), want (%d, %d)", p, c, RootID, outer)
	}
}

func TestPop_RootViolation(t *testing.T) {
	s, _ := newTestState(t, Options{})
	expectViolation(t, errors.KindContract, s.Pop)
}

func TestContext(t *testing.T) {
	s, _ := newTestState(t, Options{})
	group := s.Push(TypeBlock, Rect{})
	first := s.Attach(TypeLabel, Rect{})
	s.End()
	after := s.Attach(TypeLabel, Rect{})

	s.BeginContext(group)
	added := s.Attach(TypeLabel, Rect{})
	s.EndContext()

	if got := checkLinks(t, s, group); !slices.Equal(got, []ID{first, added}) {
		t.Errorf("group children = %v", got)
	}
	if p, c := s.Cursor(); p != RootID || c != after {
		t.Errorf("cursor not restored: (%d, %d)", p, c)
	}

	s.BeginContext(group)
	expectViolation(t, errors.KindContract, func() { s.BeginContext(group) })
}

func TestEndContext_WithoutBegin(t *testing.T) {
	s, _ := newTestState(t, Options{})
	expectViolation(t, errors.KindContract, s.EndContext)
}

func TestRemove_RelinksAndRecycles(t *testing.T) {
	s, _ := newTestState(t, Options{})
	a := s.Attach(TypeBlock, Rect{})
	b := s.Push(TypeBlock, Rect{})
	s.Attach(TypeLabel, Rect{})
	s.Attach(TypeLabel, Rect{})
	s.Pop()
	c := s.Attach(TypeBlock, Rect{})
	active := s.Active()

	s.Remove(b)

	if got := checkLinks(t, s, RootID); !slices.Equal(got, []ID{a, c}) {
		t.Errorf("children = %v, want %v", got, []ID{a, c})
	}
	if s.Active() != active-3 {
		t.Errorf("active = %d, want %d", s.Active(), active-3)
	}
	if s.Node(b).Live() {
		t.Error("removed node still live")
	}
}

func TestRemove_FirstChild(t *testing.T) {
	s, _ := newTestState(t, Options{})
	a := s.Attach(TypeBlock, Rect{})
	b := s.Attach(TypeBlock, Rect{})

	s.Remove(a)

	if s.Root().Child() != b || s.Node(b).Before() != Null {
		t.Error("expected b to become the first child")
	}
}

func TestRemove_RepairsCursor(t *testing.T) {
	s, _ := newTestState(t, Options{})
	a := s.Attach(TypeBlock, Rect{})
	s.Push(TypeBlock, Rect{})
	s.Attach(TypeLabel, Rect{})

	s.Remove(s.Node(a).After())

	if p, c := s.Cursor(); p != RootID || c != a {
		t.Errorf("cursor = (%d, %d), want (%d, %d)", p, c, RootID, a)
	}
	next := s.Attach(TypeLabel, Rect{})
	if s.Node(a).After() != next {
		t.Error("insertion after repair did not follow a")
	}
}

func TestRemove_Root(t *testing.T) {
	s, _ := newTestState(t, Options{})
	expectViolation(t, errors.KindContract, func() { s.Remove(RootID) })
}

func TestRemove_ReleasesOwnedData(t *testing.T) {
	s, b := newTestState(t, Options{})
	group := s.Push(TypeBlock, Rect{})
	img := s.Attach(TypeImage, Rect{W: 4, H: 4})
	s.AllocImage(img, 4, 4, 0, nil)
	s.RegisterUpdate(img, func() {})
	s.UnregisterUpdate(img)
	s.RegisterUpdate(group, func() {})
	s.Pop()

	s.Remove(group)

	if b.Counters.Releases != 1 {
		t.Errorf("expected 1 release, got %d", b.Counters.Releases)
	}
	if b.Resources() != 0 {
		t.Errorf("expected no live resources, got %d", b.Resources())
	}
	if s.Updates() != 0 {
		t.Errorf("expected no registrations, got %d", s.Updates())
	}
}

func TestRectStack(t *testing.T) {
	s, _ := newTestState(t, Options{RectStackSize: 2})
	def := Rect{W: 1}

	if got := s.PopRect(def); got != def {
		t.Errorf("empty PopRect = %+v, want default", got)
	}
	s.PushRect(1, 2, 3, 4)
	s.PushRect(5, 6, 7, 8)
	expectViolation(t, errors.KindCapacity, func() { s.PushRect(0, 0, 0, 0) })

	if got := s.PopRect(def); got != (Rect{X: 5, Y: 6, W: 7, H: 8}) {
		t.Errorf("PopRect = %+v", got)
	}
	if got := s.PopRect(def); got != (Rect{X: 1, Y: 2, W: 3, H: 4}) {
		t.Errorf("PopRect = %+v", got)
	}
}

func TestPolicyReport(t *testing.T) {
	quietReports(t)
	s, _ := newTestState(t, Options{Policy: PolicyReport})

	s.Pop()
	if id := s.Node(ID(s.Capacity() + 1)); id != nil {
		t.Error("expected nil node for an out of range id")
	}

	var v *errors.ViolationError
	if !stderrors.As(s.Err(), &v) {
		t.Fatalf("expected a recorded violation, got %v", s.Err())
	}
	if v.Op != "ui.Pop" {
		t.Errorf("sticky error should be the first violation, got %s", v.Op)
	}
}
