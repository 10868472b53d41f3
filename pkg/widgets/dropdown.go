package widgets

import (
	"github.com/go-edwin/edwin/pkg/surface"
	"github.com/go-edwin/edwin/pkg/ui"
)

// Enum adds a drop-down list selecting one of items. The bound int32 holds
// the selected index; nothing is selected until the node is bound.
func Enum(s *ui.State, label string, items []string) ui.ID {
	return combo(s, label, items, ui.KindEnum, surface.StyleVisible)
}

// Flags adds a drop-down list toggling one bit of the bound uint32 per item.
// Item i controls bit i.
func Flags(s *ui.State, label string, items []string) ui.ID {
	return combo(s, label, items, ui.KindFlags, surface.StyleVisible|surface.StyleOwnerDraw)
}

func combo(s *ui.State, label string, items []string, k ui.Kind, style surface.Style) ui.ID {
	st := s.Style()
	if Begin(s, ui.Horizontal, s.PopRect(ui.Rect{W: 1})) == ui.Null {
		return ui.Null
	}
	s.PushRect(0, 0, st.LabelWidth, st.LabelHeight)
	Label(s, label)

	id := s.Attach(ui.TypeCombo, ui.Rect{W: 1 - st.LabelWidth})
	if id != ui.Null {
		n := s.Node(id)
		n.Kind = k
		n.Flags |= ui.FlagTabstop
		// The drop-down height is kept in the bounds and added at placement.
		n.Bounds.H = int(st.LabelHeight) * len(items)
		s.AttachSurface(id, surface.ClassCombo, "", style)
		s.SetItems(id, items)
	}
	End(s)
	return id
}
