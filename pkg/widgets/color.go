package widgets

import (
	"github.com/go-edwin/edwin/pkg/surface"
	"github.com/go-edwin/edwin/pkg/ui"
)

// Color adds a labeled color swatch for a bound [4]float32 RGBA value in
// [0, 1]. The swatch shows black until bound.
func Color(s *ui.State, label string) ui.ID {
	st := s.Style()
	if Begin(s, ui.Horizontal, s.PopRect(ui.Rect{W: 1})) == ui.Null {
		return ui.Null
	}
	if label != "" {
		s.PushRect(0, 0, st.LabelWidth, st.LabelHeight)
		Label(s, label)
	}

	id := s.Attach(ui.TypeColorPicker, ui.Rect{W: 1, H: st.InputHeight})
	if id != ui.Null {
		n := s.Node(id)
		n.Kind = ui.KindColor
		n.Spacing = st.Spacing
		n.Flags |= ui.FlagTabstop
		s.AttachSurface(id, surface.ClassColor, "", surface.StyleVisible)
		s.Bind(id, new([4]float32))
	}
	End(s)
	return id
}
