package ui

import "github.com/go-edwin/edwin/pkg/errors"

// Show makes the node surface visible. Layout is not recomputed.
func (s *State) Show(id ID) {
	if n, ok := s.live("ui.Show", id); ok {
		s.backend.SetVisible(n.surface, true)
	}
}

// Hide hides the node surface. Layout is not recomputed.
func (s *State) Hide(id ID) {
	if n, ok := s.live("ui.Hide", id); ok {
		s.backend.SetVisible(n.surface, false)
	}
}

// Enable enables the node and all of its descendants.
func (s *State) Enable(id ID) {
	if _, ok := s.live("ui.Enable", id); ok {
		s.setEnabled(id, true)
	}
}

// Disable disables the node and all of its descendants.
func (s *State) Disable(id ID) {
	if _, ok := s.live("ui.Disable", id); ok {
		s.setEnabled(id, false)
	}
}

func (s *State) setEnabled(id ID, enabled bool) {
	n := s.at(id)
	s.backend.SetEnabled(n.surface, enabled)
	for c := n.child; c != Null; c = s.at(c).after {
		s.setEnabled(c, enabled)
	}
}

// Expand shows every child of a collapsed node and lays out its parent.
func (s *State) Expand(id ID) {
	s.setCollapsed("ui.Expand", id, false)
}

// Collapse hides every child except the first, which usually is a caption.
func (s *State) Collapse(id ID) {
	s.setCollapsed("ui.Collapse", id, true)
}

// Toggle expands a collapsed node and collapses an expanded one.
func (s *State) Toggle(id ID) {
	n, ok := s.live("ui.Toggle", id)
	if !ok {
		return
	}
	s.setCollapsed("ui.Toggle", id, !n.Has(FlagCollapsed))
}

func (s *State) setCollapsed(op string, id ID, collapsed bool) {
	n, ok := s.live(op, id)
	if !ok {
		return
	}
	if n.Layout == Absolute {
		s.violate(op, errors.KindContract, id, "node must have a vertical or horizontal layout")
		return
	}
	if collapsed {
		n.Flags |= FlagCollapsed
	} else {
		n.Flags &^= FlagCollapsed
	}
	if n.child == Null {
		return
	}
	for c := s.at(n.child).after; c != Null; c = s.at(c).after {
		s.backend.SetVisible(s.at(c).surface, !collapsed)
	}
	if n.parent != Null {
		s.Invalidate(n.parent)
	}
}

// ReadOnly prevents user input from reaching the bound source of id and of
// every node chained after it.
func (s *State) ReadOnly(id ID) {
	s.setReadOnly("ui.ReadOnly", id, true)
}

// ReadWrite reverts ReadOnly along the chain.
func (s *State) ReadWrite(id ID) {
	s.setReadOnly("ui.ReadWrite", id, false)
}

func (s *State) setReadOnly(op string, id ID, readOnly bool) {
	for id != Null {
		n, ok := s.live(op, id)
		if !ok {
			return
		}
		if readOnly {
			n.Flags |= FlagReadOnly
		} else {
			n.Flags &^= FlagReadOnly
		}
		s.backend.SetReadOnly(n.surface, readOnly)
		id = n.Next
	}
}

// SetEditing marks a node as being edited by the user. Binding does not
// push values into an editing node.
func (s *State) SetEditing(id ID, editing bool) {
	n, ok := s.live("ui.SetEditing", id)
	if !ok {
		return
	}
	if editing {
		n.Flags |= FlagEditing
	} else {
		n.Flags &^= FlagEditing
	}
	s.backend.Repaint(n.surface)
}
