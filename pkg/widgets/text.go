package widgets

import (
	"github.com/go-edwin/edwin/pkg/surface"
	"github.com/go-edwin/edwin/pkg/ui"
)

// Label adds a static text node sized from its text unless a request was
// pushed.
func Label(s *ui.State, text string) ui.ID {
	id := s.Attach(ui.TypeLabel, s.PopRect(ui.Rect{}))
	if id == ui.Null {
		return ui.Null
	}
	n := s.Node(id)
	n.Spacing = s.Style().Spacing
	n.Flags |= ui.FlagTextNode
	s.AttachSurface(id, surface.ClassLabel, text, surface.StyleVisible)
	s.MeasureText(id)
	return id
}

// Text adds a multi-line string editor, optionally preceded by a label, and
// returns the editor node. An empty label omits it.
func Text(s *ui.State, label string) ui.ID {
	row := Begin(s, ui.Horizontal, s.PopRect(ui.Rect{W: 1, H: 150}))
	if row == ui.Null {
		return ui.Null
	}
	s.Node(row).Spacing = s.Style().Spacing
	if label != "" {
		s.PushRect(0, 0, s.Style().LabelWidth, s.Style().LabelHeight)
		Label(s, label)
	}

	id := s.Attach(ui.TypeInput, ui.Rect{W: 1, H: 1})
	if id != ui.Null {
		n := s.Node(id)
		n.Flags |= ui.FlagTabstop | ui.FlagTextNode
		n.Kind = ui.KindString
		n.Spacing = s.Style().Spacing
		s.AttachSurface(id, surface.ClassMultilineEdit, "", surface.StyleVisible|surface.StyleBorder)
	}
	End(s)

	if id != ui.Null {
		s.Bind(id, new(string))
	}
	return id
}
