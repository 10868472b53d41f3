// Package headless provides an in-memory surface.Backend.
//
// It keeps a tree of plain surface records, clamps scroll positions, converts
// pixel buffers and counts the calls made by the tree engine, which makes it
// usable from tests, from the command line tools and by embedders that render
// the recorded geometry themselves.
package headless

import (
	"maps"
	"slices"

	"github.com/go-edwin/edwin/pkg/surface"
)

// Surface is the recorded state of one surface.
type Surface struct {
	Handle   surface.Handle
	Parent   surface.Handle
	Class    surface.Class
	Style    surface.Style
	Text     string
	Rect     surface.Rect
	Visible  bool
	Enabled  bool
	ReadOnly bool
	Items    []string
	Selected int
	Checked  bool
	Bits     uint32
	Scroll   surface.ScrollInfo
	Repaints int

	children []surface.Handle
}

// Children returns the handles of the direct children of the surface in
// creation order.
func (s *Surface) Children() []surface.Handle { return slices.Clone(s.children) }

// Counters tally backend calls.
type Counters struct {
	Creates  int
	Destroys int
	Geometry int
	Pushes   int
	Repaints int
	Copies   int
	Clears   int
	Releases int
}

// Backend is an in-memory surface.Backend. It is not safe for concurrent use.
type Backend struct {
	// Measurer computes text extents. It defaults to a FaceMeasurer.
	Measurer Measurer
	Counters Counters

	surfaces map[surface.Handle]*Surface
	next     surface.Handle
	focus    surface.Handle
	pixels   map[surface.Resource]*Pixels
	nextRes  surface.Resource
}

var _ surface.Backend = (*Backend)(nil)

// New returns an empty backend measuring text with the basic 7x13 face.
func New() *Backend {
	return &Backend{
		Measurer: NewFaceMeasurer(nil),
		surfaces: make(map[surface.Handle]*Surface),
		pixels:   make(map[surface.Resource]*Pixels),
	}
}

// NewWindow creates a visible top level surface of the given client size.
func (b *Backend) NewWindow(title string, w, h int) surface.Handle {
	hdl := b.CreateSurface(0, surface.ClassBlock, title, surface.StyleVisible)
	b.surfaces[hdl].Rect = surface.Rect{W: w, H: h}
	return hdl
}

// ResizeWindow changes the size of a top level surface.
func (b *Backend) ResizeWindow(h surface.Handle, w, ht int) {
	if s := b.surfaces[h]; s != nil {
		s.Rect.W, s.Rect.H = w, ht
	}
}

// Surface returns the record of h, or nil.
func (b *Backend) Surface(h surface.Handle) *Surface { return b.surfaces[h] }

// Surfaces returns all live surfaces ordered by handle.
func (b *Backend) Surfaces() []*Surface {
	out := make([]*Surface, 0, len(b.surfaces))
	for _, h := range slices.Sorted(maps.Keys(b.surfaces)) {
		out = append(out, b.surfaces[h])
	}
	return out
}

// Len returns the number of live surfaces.
func (b *Backend) Len() int { return len(b.surfaces) }

func (b *Backend) CreateSurface(parent surface.Handle, class surface.Class, text string, style surface.Style) surface.Handle {
	b.next++
	s := &Surface{
		Handle:  b.next,
		Class:   class,
		Style:   style,
		Text:    text,
		Visible: style&surface.StyleVisible != 0,
		Enabled: true,
	}
	b.surfaces[s.Handle] = s
	b.attach(s, parent)
	b.Counters.Creates++
	return s.Handle
}

func (b *Backend) attach(s *Surface, parent surface.Handle) {
	p := b.surfaces[parent]
	if p == nil {
		s.Parent = 0
		return
	}
	s.Parent = parent
	p.children = append(p.children, s.Handle)
}

func (b *Backend) detach(s *Surface) {
	if p := b.surfaces[s.Parent]; p != nil {
		if i := slices.Index(p.children, s.Handle); i >= 0 {
			p.children = slices.Delete(p.children, i, i+1)
		}
	}
	s.Parent = 0
}

func (b *Backend) DestroySurface(h surface.Handle) {
	s := b.surfaces[h]
	if s == nil {
		return
	}
	b.detach(s)
	b.destroy(s)
	b.Counters.Destroys++
}

func (b *Backend) destroy(s *Surface) {
	for _, c := range s.children {
		if cs := b.surfaces[c]; cs != nil {
			b.destroy(cs)
		}
	}
	if b.focus == s.Handle {
		b.focus = 0
	}
	delete(b.surfaces, s.Handle)
}

func (b *Backend) Reparent(h, parent surface.Handle) {
	s := b.surfaces[h]
	if s == nil || h == parent {
		return
	}
	b.detach(s)
	b.attach(s, parent)
}

func (b *Backend) SetGeometry(h surface.Handle, r surface.Rect) {
	if s := b.surfaces[h]; s != nil {
		s.Rect = r
		b.Counters.Geometry++
	}
}

func (b *Backend) ClientRect(h surface.Handle) surface.Rect {
	s := b.surfaces[h]
	if s == nil {
		return surface.Rect{}
	}
	return surface.Rect{W: s.Rect.W, H: s.Rect.H}
}

// ScreenRect sums the offsets of h and its ancestors.
func (b *Backend) ScreenRect(h surface.Handle) surface.Rect {
	s := b.surfaces[h]
	if s == nil {
		return surface.Rect{}
	}
	r := s.Rect
	for p := b.surfaces[s.Parent]; p != nil; p = b.surfaces[p.Parent] {
		r.X += p.Rect.X
		r.Y += p.Rect.Y
	}
	return r
}

func (b *Backend) SetVisible(h surface.Handle, visible bool) {
	if s := b.surfaces[h]; s != nil {
		s.Visible = visible
	}
}

// IsVisible reports whether h and all of its ancestors are visible.
func (b *Backend) IsVisible(h surface.Handle) bool {
	s := b.surfaces[h]
	if s == nil {
		return false
	}
	for ; s != nil; s = b.surfaces[s.Parent] {
		if !s.Visible {
			return false
		}
	}
	return true
}

func (b *Backend) SetEnabled(h surface.Handle, enabled bool) {
	if s := b.surfaces[h]; s != nil {
		s.Enabled = enabled
	}
}

func (b *Backend) IsEnabled(h surface.Handle) bool {
	s := b.surfaces[h]
	return s != nil && s.Enabled
}

func (b *Backend) SetReadOnly(h surface.Handle, readOnly bool) {
	if s := b.surfaces[h]; s != nil {
		s.ReadOnly = readOnly
	}
}

func (b *Backend) MeasureText(h surface.Handle) (w, ht int) {
	s := b.surfaces[h]
	if s == nil || b.Measurer == nil {
		return 0, 0
	}
	return b.Measurer.Measure(s.Text)
}

func (b *Backend) Text(h surface.Handle) string {
	if s := b.surfaces[h]; s != nil {
		return s.Text
	}
	return ""
}

// SetText replaces the text of h as if the user had typed it.
func (b *Backend) SetText(h surface.Handle, text string) {
	if s := b.surfaces[h]; s != nil {
		s.Text = text
	}
}

func (b *Backend) SetItems(h surface.Handle, items []string) {
	if s := b.surfaces[h]; s != nil {
		s.Items = slices.Clone(items)
	}
}

func (b *Backend) PushValue(h surface.Handle, d surface.Display) {
	s := b.surfaces[h]
	if s == nil {
		return
	}
	b.Counters.Pushes++
	switch d.Mode {
	case surface.DisplayText:
		s.Text = d.Text
	case surface.DisplaySelect:
		s.Selected = d.Index
		if d.Index >= 0 && d.Index < len(s.Items) {
			s.Text = s.Items[d.Index]
		}
	case surface.DisplayCheck:
		s.Checked = d.Checked
	case surface.DisplayRepaint:
		s.Bits = d.Bits
		s.Text = d.Text
		s.Repaints++
	}
}

func (b *Backend) Repaint(h surface.Handle) {
	if s := b.surfaces[h]; s != nil {
		s.Repaints++
		b.Counters.Repaints++
	}
}

func (b *Backend) SetScrollInfo(h surface.Handle, si surface.ScrollInfo) {
	if s := b.surfaces[h]; s != nil {
		si.Pos = clampScroll(si, si.Pos)
		s.Scroll = si
	}
}

func (b *Backend) SetScrollPos(h surface.Handle, pos int) int {
	s := b.surfaces[h]
	if s == nil {
		return 0
	}
	s.Scroll.Pos = clampScroll(s.Scroll, pos)
	return s.Scroll.Pos
}

func clampScroll(si surface.ScrollInfo, pos int) int {
	return min(max(pos, 0), max(si.Max-si.Page, 0))
}

// ScrollContent moves the children of h by dy.
func (b *Backend) ScrollContent(h surface.Handle, dy int) {
	s := b.surfaces[h]
	if s == nil {
		return
	}
	for _, c := range s.children {
		if cs := b.surfaces[c]; cs != nil {
			cs.Rect.Y += dy
		}
	}
}

func (b *Backend) Focus() surface.Handle { return b.focus }

func (b *Backend) SetFocus(h surface.Handle) {
	if _, ok := b.surfaces[h]; ok || h == 0 {
		b.focus = h
	}
}
