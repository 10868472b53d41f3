package ui

import "github.com/go-edwin/edwin/pkg/errors"

// alloc returns a recycled id from the free list, or the next unused slot.
// Recycled nodes are zeroed except for their id.
func (s *State) alloc(op string) ID {
	if s.removed != Null {
		n := s.at(s.removed)
		s.removed = n.Next
		n.reset()
		s.active++
		return n.id
	}
	if s.used+1 >= len(s.nodes) {
		s.violate(op, errors.KindCapacity, Null, "node arena full (%d nodes)", len(s.nodes)-1)
		return Null
	}
	s.used++
	n := s.at(ID(s.used))
	n.reset()
	n.id = ID(s.used)
	s.active++
	return n.id
}

// release pushes a removed node onto the free list. The slot keeps its
// contents until it is handed out again.
func (s *State) release(id ID) {
	n := s.at(id)
	if n.surface != 0 && s.handles[n.surface] == id {
		delete(s.handles, n.surface)
	}
	n.Type = TypeNone
	n.Next = s.removed
	s.removed = id
	s.active--
}

// freeResources releases what a node owns: its backend resource and its
// update registrations.
func (s *State) freeResources(id ID) {
	n := s.at(id)
	if n.Has(FlagOwnData) && n.resource != 0 {
		s.backend.ReleaseResource(n.resource)
		n.resource = 0
	}
	if n.Has(FlagOwnUpdate) {
		s.UnregisterUpdate(id)
	}
}

func (s *State) destroySurface(id ID) {
	n := s.at(id)
	if n.surface != 0 && id != RootID {
		s.backend.DestroySurface(n.surface)
	}
	n.surface = 0
}
