package ui

import "github.com/go-edwin/edwin/pkg/errors"

// SetScrollPosition scrolls a scroll client to y. The scrollbar clamps the
// position to its range; nothing happens while the scrollbar is hidden.
func (s *State) SetScrollPosition(client ID, y int) {
	c, ok := s.live("ui.SetScrollPosition", client)
	if !ok {
		return
	}
	if c.ScrollBar == Null || !s.inRange(c.ScrollBar) {
		s.violate("ui.SetScrollPosition", errors.KindContract, client, "node is not a scroll client")
		return
	}
	sb := s.at(c.ScrollBar)
	if !s.visible(sb.id) {
		return
	}
	y = s.backend.SetScrollPos(sb.surface, y)
	s.backend.ScrollContent(c.surface, c.ScrollPos-y)
	c.ScrollPos = y
}

// scrollClient returns the client of a scroll block.
func (s *State) scrollClient(op string, block ID) (*Node, bool) {
	b, ok := s.live(op, block)
	if !ok {
		return nil, false
	}
	if b.Type != TypeScrollBlock || b.child == Null {
		s.violate(op, errors.KindContract, block, "node is not a scroll block")
		return nil, false
	}
	return s.at(b.child), true
}

// ScrollWheel scrolls a scroll block by wheel notches. Positive notches scroll
// towards the top, matching wheel delta sign conventions.
func (s *State) ScrollWheel(block ID, notches int) {
	c, ok := s.scrollClient("ui.ScrollWheel", block)
	if !ok {
		return
	}
	s.SetScrollPosition(c.id, c.ScrollPos-notches*s.style.ScrollWheel)
}

// ScrollLines scrolls a scroll block by scroll units. Positive lines scroll
// down.
func (s *State) ScrollLines(block ID, lines int) {
	c, ok := s.scrollClient("ui.ScrollLines", block)
	if !ok {
		return
	}
	s.SetScrollPosition(c.id, c.ScrollPos+lines*s.style.ScrollUnit)
}
