package widgets

import (
	"github.com/go-edwin/edwin/pkg/surface"
	"github.com/go-edwin/edwin/pkg/ui"
)

// activeLayout returns the layout of the node new children go into.
func activeLayout(s *ui.State) ui.Layout {
	p, _ := s.Cursor()
	return s.Node(p).Layout
}

// Space adds empty room of size pixels along the layout axis of the parent.
// Absolute parents have no axis and reject it.
func Space(s *ui.State, size float32) ui.ID {
	var r ui.Rect
	switch activeLayout(s) {
	case ui.Vertical:
		r = ui.Rect{W: 1, H: size}
	case ui.Horizontal:
		r = ui.Rect{W: size, H: 1}
	default:
		p, _ := s.Cursor()
		s.Violate("widgets.Space", p, "space needs a vertical or horizontal parent")
		return ui.Null
	}
	id := s.Attach(ui.TypeSpace, r)
	if id == ui.Null {
		return ui.Null
	}
	s.AttachSurface(id, surface.ClassBlock, "", surface.StyleVisible)
	return id
}

// Separator adds a thin line across the layout axis of the parent.
func Separator(s *ui.State) ui.ID {
	r, style := ui.Rect{W: 1, H: 1.1}, surface.StyleVisible
	if activeLayout(s) == ui.Horizontal {
		r, style = ui.Rect{W: 1.1, H: 1}, style|surface.StyleVertical
	}
	id := s.Attach(ui.TypeSeparator, r)
	if id == ui.Null {
		return ui.Null
	}
	s.Node(id).Spacing = s.Style().Spacing
	s.AttachSurface(id, surface.ClassSeparator, "", style)
	return id
}
