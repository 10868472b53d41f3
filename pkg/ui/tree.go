package ui

import "github.com/go-edwin/edwin/pkg/errors"

// Attach creates a node of type t under the active parent, immediately after
// the cursor child, and makes it the cursor child.
func (s *State) Attach(t Type, r Rect) ID {
	return s.attach("ui.Attach", t, r)
}

func (s *State) attach(op string, t Type, r Rect) ID {
	if s.ctx.parent == Null {
		s.violate(op, errors.KindContract, Null, "cannot add child node without a parent")
		return Null
	}
	id := s.alloc(op)
	if id == Null {
		return Null
	}
	n := s.at(id)
	n.Type = t
	n.Rect = r
	n.parent = s.ctx.parent

	p := s.at(s.ctx.parent)
	switch {
	case p.child == Null:
		p.child = id
	case s.ctx.child != Null:
		c := s.at(s.ctx.child)
		if c.after != Null {
			s.at(c.after).before = id
			n.after = c.after
		}
		c.after = id
		n.before = s.ctx.child
	default:
		// Cursor at the head of a non-empty list: insert as first child.
		s.at(p.child).before = id
		n.after = p.child
		p.child = id
	}
	s.ctx.child = id
	return id
}

// Push attaches a node and descends into it. It must be paired with Pop.
func (s *State) Push(t Type, r Rect) ID {
	id := s.attach("ui.Push", t, r)
	if id == Null {
		return Null
	}
	s.ctx.parent = id
	s.ctx.child = Null
	return id
}

// Pop ascends from the active parent. The cursor child becomes the last
// child of the new parent. Exiting a FlagPopParent node pops once more.
func (s *State) Pop() {
	for {
		if s.ctx.parent == Null {
			s.violate("ui.Pop", errors.KindContract, Null, "no active parent")
			return
		}
		exited := s.at(s.ctx.parent)
		if exited.parent == Null {
			s.violate("ui.Pop", errors.KindContract, exited.id, "cannot pop the root node")
			return
		}
		popParent := exited.Has(FlagPopParent)
		s.ctx.parent = exited.parent
		s.ctx.child = s.lastChild(s.ctx.parent)
		if !popParent {
			return
		}
	}
}

// Enter makes id, a child of the active parent, the active parent without
// creating a node. Compound nodes use it to continue construction inside one
// of their parts.
func (s *State) Enter(id ID) {
	n, ok := s.live("ui.Enter", id)
	if !ok {
		return
	}
	if n.parent != s.ctx.parent {
		s.violate("ui.Enter", errors.KindContract, id, "node is not a child of the active parent %d", s.ctx.parent)
		return
	}
	s.ctx = cursor{parent: id, child: s.lastChild(id)}
}

// End pops the active parent and lays out the tree when construction is
// back at the root.
func (s *State) End() {
	s.Pop()
	if s.ctx.parent == RootID {
		s.Invalidate(RootID)
	}
}

func (s *State) lastChild(id ID) ID {
	c := s.at(id).child
	if c == Null {
		return Null
	}
	for s.at(c).after != Null {
		c = s.at(c).after
	}
	return c
}

// BeginContext saves the cursor and continues insertion after the last child
// of id. Contexts do not nest.
func (s *State) BeginContext(id ID) {
	if _, ok := s.live("ui.BeginContext", id); !ok {
		return
	}
	if s.hasSaved {
		s.violate("ui.BeginContext", errors.KindContract, id, "expected EndContext before the next BeginContext")
		return
	}
	s.saved = s.ctx
	s.hasSaved = true
	s.ctx = cursor{parent: id, child: s.lastChild(id)}
}

// EndContext lays out the context parent and restores the saved cursor.
func (s *State) EndContext() {
	if !s.hasSaved {
		s.violate("ui.EndContext", errors.KindContract, Null, "expected BeginContext before EndContext")
		return
	}
	if s.ctx.parent != Null {
		s.Invalidate(s.ctx.parent)
	}
	s.ctx = s.saved
	s.saved = cursor{}
	s.hasSaved = false
}

// InsertAfter moves the cursor so the next node is created right after id.
func (s *State) InsertAfter(id ID) {
	n, ok := s.live("ui.InsertAfter", id)
	if !ok {
		return
	}
	if n.parent == Null {
		s.violate("ui.InsertAfter", errors.KindContract, id, "cannot insert a new root node")
		return
	}
	s.ctx = cursor{parent: n.parent, child: id}
}

// Remove destroys id and its subtree and recycles their ids.
func (s *State) Remove(id ID) {
	n, ok := s.live("ui.Remove", id)
	if !ok {
		return
	}
	if n.parent == Null {
		s.violate("ui.Remove", errors.KindContract, id, "cannot remove the root node")
		return
	}
	s.remove(id)
	s.repairCursor(&s.ctx)
	if s.hasSaved {
		s.repairCursor(&s.saved)
	}
}

func (s *State) remove(id ID) {
	s.freeResources(id)

	n := s.at(id)
	s.release(id)

	// Descendants of a removed node stay linked; their surfaces go away with
	// the ancestor's surface.
	if p := s.at(n.parent); p.Type != TypeNone {
		if n.before != Null {
			s.at(n.before).after = n.after
			if n.after != Null {
				s.at(n.after).before = n.before
			}
		} else {
			p.child = n.after
			if n.after != Null {
				s.at(n.after).before = Null
			}
		}
		s.destroySurface(id)
		s.Invalidate(n.parent)
	}

	for c := n.child; c != Null; c = s.at(c).after {
		s.remove(c)
	}
}

// repairCursor moves a cursor that points into a removed subtree back to the
// position the subtree occupied. Removed nodes keep their links until they are
// recycled, so the walk can follow them.
func (s *State) repairCursor(c *cursor) {
	dead := Null
	for c.parent != Null && !s.at(c.parent).Live() {
		dead = c.parent
		c.parent = s.at(dead).parent
	}
	if c.parent == Null {
		return
	}
	if dead != Null {
		c.child = s.at(dead).before
	}
	for c.child != Null && !s.at(c.child).Live() {
		c.child = s.at(c.child).before
	}
	if c.child != Null && s.at(c.child).parent != c.parent {
		c.child = s.lastChild(c.parent)
	}
}

// PushRect queues a request consumed by the next PopRect.
func (s *State) PushRect(x, y, w, h float32) {
	if len(s.rects) >= s.rectCap {
		s.violate("ui.PushRect", errors.KindCapacity, Null, "rect stack full (%d entries)", s.rectCap)
		return
	}
	s.rects = append(s.rects, Rect{X: x, Y: y, W: w, H: h})
}

// PopRect returns the last pushed request, or def when the stack is empty.
func (s *State) PopRect(def Rect) Rect {
	if len(s.rects) == 0 {
		return def
	}
	r := s.rects[len(s.rects)-1]
	s.rects = s.rects[:len(s.rects)-1]
	return r
}
