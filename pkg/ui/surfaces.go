package ui

import (
	"github.com/go-edwin/edwin/pkg/errors"
	"github.com/go-edwin/edwin/pkg/surface"
)

// parentSurface returns the surface of the nearest ancestor that has one.
func (s *State) parentSurface(id ID) surface.Handle {
	for p := s.at(id).parent; p != Null; p = s.at(p).parent {
		if h := s.at(p).surface; h != 0 {
			return h
		}
	}
	return 0
}

// AttachSurface creates the platform surface of id under its parent's
// surface. Text nodes get their text extent measured.
func (s *State) AttachSurface(id ID, class surface.Class, text string, style surface.Style) surface.Handle {
	n, ok := s.live("ui.AttachSurface", id)
	if !ok {
		return 0
	}
	if n.parent == Null {
		s.violate("ui.AttachSurface", errors.KindContract, id, "node has no parent")
		return 0
	}
	if n.surface != 0 {
		s.violate("ui.AttachSurface", errors.KindContract, id, "node already has a surface")
		return n.surface
	}
	h := s.backend.CreateSurface(s.parentSurface(id), class, text, style)
	n.surface = h
	if h != 0 {
		s.handles[h] = id
	}
	return h
}

// AdoptSurface pushes a user window node wrapping an externally created
// surface. Layout never moves or resizes it.
func (s *State) AdoptSurface(h surface.Handle, layout Layout) ID {
	if h == 0 {
		s.violate("ui.AdoptSurface", errors.KindContract, Null, "cannot adopt the zero surface")
		return Null
	}
	id := s.Push(TypeUserWindow, Rect{})
	if id == Null {
		return Null
	}
	n := s.at(id)
	n.Layout = layout
	n.surface = h
	s.handles[h] = id
	s.backend.Reparent(h, s.parentSurface(id))
	return id
}

// MeasureText stores the extent of the node text in its bounds.
func (s *State) MeasureText(id ID) {
	n, ok := s.live("ui.MeasureText", id)
	if !ok {
		return
	}
	w, h := s.backend.MeasureText(n.surface)
	n.Bounds = Bounds{W: w, H: h}
}

// SetItems replaces the entries of an enum or flags node.
func (s *State) SetItems(id ID, items []string) {
	n, ok := s.live("ui.SetItems", id)
	if !ok {
		return
	}
	n.Items = append(n.Items[:0], items...)
	s.backend.SetItems(n.surface, n.Items)
}

// AllocImage allocates an owned w*h pixel buffer for id and, when src is not
// nil, copies the first frame into it. Negative sizes are mirrored by the
// backend and use their absolute value here.
func (s *State) AllocImage(id ID, w, h int, f surface.PixelFormat, src []byte) {
	n, ok := s.live("ui.AllocImage", id)
	if !ok {
		return
	}
	if n.resource != 0 && n.Has(FlagOwnData) {
		s.backend.ReleaseResource(n.resource)
		n.resource = 0
	}
	w, h = abs(w), abs(h)
	n.Kind = KindPixels
	n.Flags |= FlagOwnData
	n.pixels = PixelBuffer{Format: f, W: w, H: h}
	n.resource = s.backend.AllocPixels(w, h)
	if n.resource == 0 {
		s.violate("ui.AllocImage", errors.KindCapacity, id, "backend could not allocate a %dx%d buffer", w, h)
		return
	}
	if src != nil {
		if len(src) < w*h*f.BytesPerPixel() {
			s.violate("ui.AllocImage", errors.KindContract, id, "pixel source has %d bytes, want %d", len(src), w*h*f.BytesPerPixel())
			return
		}
		s.backend.CopyPixels(n.resource, src, f)
	}
}

// ClearImage fills the image buffer of id with one color.
func (s *State) ClearImage(id ID, r, g, b, a uint8) {
	n, ok := s.live("ui.ClearImage", id)
	if !ok {
		return
	}
	if n.Kind != KindPixels || n.resource == 0 {
		s.violate("ui.ClearImage", errors.KindContract, id, "node has no image buffer")
		return
	}
	s.backend.ClearPixels(n.resource, r, g, b, a)
	s.backend.Repaint(n.surface)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
