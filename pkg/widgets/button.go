package widgets

import (
	"github.com/go-edwin/edwin/pkg/surface"
	"github.com/go-edwin/edwin/pkg/ui"
)

// ClickFunc is called when a button is activated.
type ClickFunc = func(s *ui.State, id ui.ID)

// Button adds a push button sized from its text. A pushed request
// overrides the size.
//
//	widgets.Button(s, "Reset", func(s *ui.State, id ui.ID) {
//		s.Commit(count, "0")
//	})
func Button(s *ui.State, text string, onClick ClickFunc) ui.ID {
	id := s.Attach(ui.TypeButton, s.PopRect(ui.Rect{}))
	if id == ui.Null {
		return ui.Null
	}
	n := s.Node(id)
	n.Flags |= ui.FlagBorder | ui.FlagTabstop | ui.FlagTextNode
	n.Spacing = s.Style().Spacing
	n.OnClick = onClick
	s.AttachSurface(id, surface.ClassButton, text, surface.StyleVisible)
	s.MeasureText(id)
	return id
}

// BeginButton opens a button that contains other nodes instead of text.
func BeginButton(s *ui.State, r ui.Rect, onClick ClickFunc) ui.ID {
	id := s.Push(ui.TypeButton, r)
	if id == ui.Null {
		return ui.Null
	}
	n := s.Node(id)
	n.Flags |= ui.FlagTabstop
	n.Spacing = s.Style().Spacing
	n.OnClick = onClick
	s.AttachSurface(id, surface.ClassButton, "", surface.StyleVisible)
	return id
}
