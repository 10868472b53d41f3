package widgets

import (
	"github.com/go-edwin/edwin/pkg/surface"
	"github.com/go-edwin/edwin/pkg/ui"
)

// ImageBuffer adds an image node backed by an owned w by h pixel buffer in
// format f, initialized from pixels when it is not nil. Negative sizes
// mirror the image on that axis. Without a pushed request the node takes
// the buffer size.
//
// Later frames are copied with State.Bind(id, frame); the buffer is released
// when the node is removed.
func ImageBuffer(s *ui.State, pixels []byte, w, h int, f surface.PixelFormat) ui.ID {
	r := s.PopRect(ui.Rect{})
	if r.W == 0 {
		r.W = float32(abs(w))
	}
	if r.H == 0 {
		r.H = float32(abs(h))
	}
	id := s.Attach(ui.TypeImage, r)
	if id == ui.Null {
		return ui.Null
	}
	s.Node(id).Spacing = s.Style().Spacing
	s.AttachSurface(id, surface.ClassImage, "", surface.StyleVisible)
	s.AllocImage(id, w, h, f, pixels)
	return id
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
