package widgets

import (
	"github.com/go-edwin/edwin/pkg/surface"
	"github.com/go-edwin/edwin/pkg/ui"
)

// BeginScroll opens a vertically scrolling area filling its parent and
// returns the scroll block. Construction continues inside the client; End
// closes both the client and the block.
//
// The scrollbar starts hidden and is shown by layout once the client content
// is taller than the client.
func BeginScroll(s *ui.State, layout ui.Layout) ui.ID {
	block := s.Push(ui.TypeScrollBlock, ui.Rect{W: 1, H: 1})
	if block == ui.Null {
		return ui.Null
	}
	s.Node(block).Layout = ui.Horizontal
	s.AttachSurface(block, surface.ClassBlock, "", surface.StyleVisible)

	client := s.Attach(ui.TypeBlock, ui.Rect{W: 1, H: 1})
	bar := s.Attach(ui.TypeScrollBar, ui.Rect{X: 1, W: float32(s.Style().ScrollbarSize), H: 1})
	if client == ui.Null || bar == ui.Null {
		return block
	}

	c := s.Node(client)
	c.Layout = layout
	c.Padding = s.Style().Padding
	c.Flags |= ui.FlagPopParent
	c.ScrollBar = bar
	s.Node(bar).ScrollClient = client

	s.AttachSurface(client, surface.ClassBlock, "", surface.StyleVisible)
	s.AttachSurface(bar, surface.ClassScrollBar, "", surface.StyleVertical)

	s.Enter(client)
	return block
}

// ScrollClient returns the client node of a scroll block, or ui.Null when
// block is not one.
func ScrollClient(s *ui.State, block ui.ID) ui.ID {
	n := s.Node(block)
	if n == nil || n.Type != ui.TypeScrollBlock {
		return ui.Null
	}
	return n.Child()
}
