package widgets

import (
	"github.com/go-edwin/edwin/pkg/surface"
	"github.com/go-edwin/edwin/pkg/ui"
)

// Bool adds a labeled checkbox for a bound bool. Clicking it flips the value.
func Bool(s *ui.State, label string) ui.ID {
	st := s.Style()
	if Begin(s, ui.Horizontal, s.PopRect(ui.Rect{W: 1})) == ui.Null {
		return ui.Null
	}
	s.PushRect(0, 0, st.LabelWidth, st.LabelHeight)
	Label(s, label)

	id := s.Attach(ui.TypeCheckbox, ui.Rect{W: 1 - st.LabelWidth, H: st.InputHeight})
	if id != ui.Null {
		n := s.Node(id)
		n.Kind = ui.KindBool
		n.Flags |= ui.FlagTabstop
		s.AttachSurface(id, surface.ClassCheckbox, "", surface.StyleVisible)
	}
	End(s)
	return id
}
