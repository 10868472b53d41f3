package ui

import (
	"testing"

	"github.com/go-edwin/edwin/pkg/errors"
	"github.com/go-edwin/edwin/pkg/surface"
)

func TestToggle_HidesAllButFirstChild(t *testing.T) {
	s, b := newTestState(t, Options{})
	group := s.Push(TypeGroup, Rect{W: 100})
	s.Node(group).Flags |= FlagExpand
	caption := s.Attach(TypeCaption, Rect{W: 1, H: 26})
	s.AttachSurface(caption, surface.ClassCaption, "title", surface.StyleVisible)
	body := s.Attach(TypeBlock, Rect{W: 1, H: 40})
	s.AttachSurface(body, surface.ClassBlock, "", surface.StyleVisible)
	s.End()

	s.Toggle(group)
	if !s.Node(group).Has(FlagCollapsed) {
		t.Fatal("expected collapsed")
	}
	if !b.IsVisible(s.Node(caption).Surface()) || b.IsVisible(s.Node(body).Surface()) {
		t.Error("collapse must keep the caption and hide the body")
	}
	if h := s.Node(group).Dst.H; h != 26 {
		t.Errorf("collapsed height = %d, want 26", h)
	}

	s.Toggle(group)
	if s.Node(group).Has(FlagCollapsed) || !b.IsVisible(s.Node(body).Surface()) {
		t.Error("expand must show the body again")
	}
	if h := s.Node(group).Dst.H; h != 66 {
		t.Errorf("expanded height = %d, want 66", h)
	}
}

func TestCollapse_AbsoluteLayout(t *testing.T) {
	s, _ := newTestState(t, Options{})
	id := s.Attach(TypeBlock, Rect{})
	s.Node(id).Layout = Absolute
	expectViolation(t, errors.KindContract, func() { s.Collapse(id) })
}

func TestDisable_Recursive(t *testing.T) {
	s, b := newTestState(t, Options{})
	group := s.Push(TypeBlock, Rect{})
	s.AttachSurface(group, surface.ClassBlock, "", surface.StyleVisible)
	child := s.Attach(TypeButton, Rect{})
	s.AttachSurface(child, surface.ClassButton, "", surface.StyleVisible)
	s.End()

	s.Disable(group)
	if b.IsEnabled(s.Node(child).Surface()) || s.IsEnabled(child) {
		t.Error("expected child disabled")
	}
	s.Enable(group)
	if !s.IsEnabled(child) {
		t.Error("expected child enabled")
	}
}

func TestReadOnly_FollowsChain(t *testing.T) {
	s, b := newTestState(t, Options{})
	a := attachInput(s, KindInt)
	c := attachInput(s, KindInt)
	s.Node(a).Next = c

	s.ReadOnly(a)
	if !s.Node(c).Has(FlagReadOnly) || !b.Surface(s.Node(c).Surface()).ReadOnly {
		t.Error("expected chained node read-only")
	}
	s.ReadWrite(a)
	if s.Node(c).Has(FlagReadOnly) {
		t.Error("expected chained node writable")
	}
}
