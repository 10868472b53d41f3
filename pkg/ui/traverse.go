package ui

// findOrdered returns the first node at or after id in tree order that has
// all of mask set. The walk is pre-order and continues past the subtree of id
// into later siblings and ancestor siblings.
func (s *State) findOrdered(id ID, mask Flags, skipFirst bool) ID {
	skip := skipFirst
	for id != Null {
		n := s.at(id)
		if !skip && n.Flags&mask == mask {
			return id
		}
		skip = false

		switch {
		case n.child != Null:
			id = n.child
		case n.after != Null:
			id = n.after
		default:
			id = s.nextAncestorSibling(id)
		}
	}
	return Null
}

func (s *State) nextAncestorSibling(id ID) ID {
	for p := s.at(id).parent; p != Null; p = s.at(p).parent {
		if a := s.at(p).after; a != Null {
			return a
		}
	}
	return Null
}

// findOrderedReverse mirrors findOrdered: the node itself, then its children
// from last to first, then earlier siblings and ancestor earlier siblings.
func (s *State) findOrderedReverse(id ID, mask Flags, skipFirst bool) ID {
	skip := skipFirst
	for id != Null {
		n := s.at(id)
		if !skip && n.Flags&mask == mask {
			return id
		}
		skip = false

		switch {
		case n.child != Null:
			id = s.lastChild(id)
		case n.before != Null:
			id = n.before
		default:
			id = s.prevAncestorSibling(id)
		}
	}
	return Null
}

func (s *State) prevAncestorSibling(id ID) ID {
	for p := s.at(id).parent; p != Null; p = s.at(p).parent {
		if b := s.at(p).before; b != Null {
			return b
		}
	}
	return Null
}

// findLinear scans ids upward from start for an allocated node with mask.
func (s *State) findLinear(start ID, mask Flags) ID {
	for i := int(start); i <= s.used; i++ {
		n := &s.nodes[i]
		if n.Type != TypeNone && n.Flags&mask == mask {
			return ID(i)
		}
	}
	return Null
}

// findLinearReverse scans ids downward from start.
func (s *State) findLinearReverse(start ID, mask Flags) ID {
	for i := int(start); i > int(Null); i-- {
		n := &s.nodes[i]
		if n.Type != TypeNone && n.Flags&mask == mask {
			return ID(i)
		}
	}
	return Null
}

func (s *State) focusable(id ID) bool {
	return s.visible(id) && s.IsEnabled(id)
}

// NextTabstop returns the tabstop following id in tree order, skipping
// hidden and disabled nodes. When the end of the tree is reached the search
// wraps to the lowest tabstop id, which need not be the first in tree order.
func (s *State) NextTabstop(id ID) ID {
	if _, ok := s.live("ui.NextTabstop", id); !ok {
		return Null
	}
	wrapped := false
	for {
		id = s.findOrdered(id, FlagTabstop, true)
		if id == Null && !wrapped {
			id = s.findLinear(RootID, FlagTabstop)
			wrapped = true
		}
		if id == Null || s.focusable(id) {
			return id
		}
	}
}

// PreviousTabstop mirrors NextTabstop, wrapping to the highest tabstop id.
func (s *State) PreviousTabstop(id ID) ID {
	if _, ok := s.live("ui.PreviousTabstop", id); !ok {
		return Null
	}
	wrapped := false
	for {
		id = s.findOrderedReverse(id, FlagTabstop, true)
		if id == Null && !wrapped {
			id = s.findLinearReverse(ID(s.used), FlagTabstop)
			wrapped = true
		}
		if id == Null || s.focusable(id) {
			return id
		}
	}
}
