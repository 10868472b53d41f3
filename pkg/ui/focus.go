package ui

import "github.com/go-edwin/edwin/pkg/surface"

// Focus returns the node whose surface has input focus, or Null.
func (s *State) Focus() ID {
	return s.nodeOf(s.backend.Focus())
}

// nodeOf maps a surface back to the live node that owns it.
func (s *State) nodeOf(h surface.Handle) ID {
	if h == 0 {
		return Null
	}
	id, ok := s.handles[h]
	if !ok || !s.inRange(id) {
		return Null
	}
	if n := s.at(id); !n.Live() || n.surface != h {
		return Null
	}
	return id
}

func (s *State) focused(id ID) bool {
	n := s.at(id)
	return n.surface != 0 && s.backend.Focus() == n.surface
}

// SetFocus focuses id. When id lives inside a scroll client the client is
// scrolled so that the node is in view, with a spacing margin.
func (s *State) SetFocus(id ID) {
	n, ok := s.live("ui.SetFocus", id)
	if !ok {
		return
	}

	client := Null
	for p := n.parent; p != Null; p = s.at(p).parent {
		if s.at(p).ScrollBar != Null {
			client = p
			break
		}
	}

	if client != Null {
		c := s.at(client)
		nr := s.backend.ScreenRect(n.surface)
		cr := s.backend.ScreenRect(c.surface)
		top := nr.Y - cr.Y
		bottom := top + nr.H
		switch {
		case top < 0:
			s.SetScrollPosition(client, c.ScrollPos+top-s.style.Spacing)
		case bottom > c.Dst.H:
			s.SetScrollPosition(client, c.ScrollPos+bottom+s.style.Spacing-c.Dst.H)
		}
	}

	s.backend.SetFocus(n.surface)
}

// ResetFocus moves focus to the nearest enclosing window of id, or the root.
func (s *State) ResetFocus(id ID) {
	n, ok := s.live("ui.ResetFocus", id)
	if !ok {
		return
	}
	window := RootID
	for p := n.parent; p != Null; p = s.at(p).parent {
		if t := s.at(p).Type; t == TypeWindow || t == TypeUserWindow {
			window = p
			break
		}
	}
	s.backend.SetFocus(s.at(window).surface)
}

// FocusNext focuses the tabstop after the focused node and returns it.
func (s *State) FocusNext() ID {
	from := s.Focus()
	if from == Null {
		from = RootID
	}
	next := s.NextTabstop(from)
	if next != Null {
		s.SetFocus(next)
	}
	return next
}

// FocusPrevious focuses the tabstop before the focused node and returns it.
func (s *State) FocusPrevious() ID {
	from := s.Focus()
	if from == Null {
		from = RootID
	}
	prev := s.PreviousTabstop(from)
	if prev != Null {
		s.SetFocus(prev)
	}
	return prev
}

// IsPointOver reports whether the screen point lies over a visible node.
func (s *State) IsPointOver(id ID, x, y int) bool {
	n, ok := s.live("ui.IsPointOver", id)
	if !ok || !s.visible(id) {
		return false
	}
	return s.backend.ScreenRect(n.surface).Contains(x, y)
}

// IsOverAny reports whether the point lies over any top level node.
func (s *State) IsOverAny(x, y int) bool {
	for c := s.at(RootID).child; c != Null; c = s.at(c).after {
		if s.IsPointOver(c, x, y) {
			return true
		}
	}
	return false
}
