package widgets

import (
	"github.com/go-edwin/edwin/pkg/surface"
	"github.com/go-edwin/edwin/pkg/ui"
)

// Begin opens a plain block that lays its children out with layout.
func Begin(s *ui.State, layout ui.Layout, r ui.Rect) ui.ID {
	id := s.Push(ui.TypeBlock, r)
	if id == ui.Null {
		return ui.Null
	}
	s.Node(id).Layout = layout
	s.AttachSurface(id, surface.ClassBlock, "", surface.StyleVisible)
	return id
}

// BeginBorder opens a framed block with the style padding between the frame
// and the children.
func BeginBorder(s *ui.State, layout ui.Layout, r ui.Rect) ui.ID {
	id := s.Push(ui.TypeBlock, r)
	if id == ui.Null {
		return ui.Null
	}
	st := s.Style()
	n := s.Node(id)
	n.Layout = layout
	n.Padding = st.Padding
	n.Spacing = st.Spacing
	n.Flags |= ui.FlagBorder
	s.AttachSurface(id, surface.ClassBlock, "", surface.StyleVisible|surface.StyleBorder)
	return id
}

// BeginWindow opens a framed window with a caption. Children go into a
// scrolling client area; End closes the client, the scroll block and the
// window at once.
func BeginWindow(s *ui.State, name string, layout ui.Layout, r ui.Rect) ui.ID {
	win := s.Push(ui.TypeWindow, r)
	if win == ui.Null {
		return ui.Null
	}
	n := s.Node(win)
	n.Layout = ui.Vertical
	n.Flags |= ui.FlagBorder
	n.Padding = 1
	s.AttachSurface(win, surface.ClassBlock, name, surface.StyleVisible|surface.StyleBorder)

	caption := s.Attach(ui.TypeCaption, ui.Rect{W: 1, H: float32(s.Style().CaptionHeight)})
	s.AttachSurface(caption, surface.ClassCaption, name, surface.StyleVisible)

	if sb := BeginScroll(s, layout); sb != ui.Null {
		s.Node(sb).Flags |= ui.FlagPopParent
	}
	return win
}

// BeginGroup opens a collapsible group. Clicking its caption toggles the
// group between expanded and collapsed.
func BeginGroup(s *ui.State, name string, layout ui.Layout, r ui.Rect) ui.ID {
	group := s.Push(ui.TypeGroup, r)
	if group == ui.Null {
		return ui.Null
	}
	n := s.Node(group)
	n.Layout = layout
	n.Flags |= ui.FlagExpand
	s.AttachSurface(group, surface.ClassBlock, "", surface.StyleVisible)

	caption := s.Attach(ui.TypeCaption, ui.Rect{W: 1, H: float32(s.Style().CaptionHeight)})
	if caption == ui.Null {
		return group
	}
	c := s.Node(caption)
	c.Spacing = s.Style().Spacing
	c.Flags |= ui.FlagTabstop
	c.OnClick = toggleParent
	s.AttachSurface(caption, surface.ClassCaption, name, surface.StyleVisible)
	return group
}

func toggleParent(s *ui.State, caption ui.ID) {
	p := s.Node(s.Node(caption).Parent())
	if p.Has(ui.FlagExpand) {
		s.Toggle(p.ID())
	}
}

// BeginUserWindow opens a node around a surface the caller created. Its
// children are laid out inside it, but the surface itself is never moved.
func BeginUserWindow(s *ui.State, h surface.Handle, layout ui.Layout) ui.ID {
	return s.AdoptSurface(h, layout)
}

// End closes the innermost open container.
func End(s *ui.State) {
	s.End()
}
