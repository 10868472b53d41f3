package ui

import (
	"log"
	"time"

	"github.com/go-edwin/edwin/pkg/errors"
	"github.com/go-edwin/edwin/pkg/surface"
)

// Scroll feedback re-trigger bits, one per direction.
const (
	retriggerShow uint8 = 1 << iota
	retriggerHide
)

// minSurfaceSize replaces a zero computed width or height during placement.
const minSurfaceSize = 20

// PlacementAdjuster rewrites the rectangle handed to the backend for a node
// type. It runs after the minimum size is applied.
type PlacementAdjuster func(n *Node, r surface.Rect) surface.Rect

// ComboDropdown extends a combo box height by its dropdown list extent,
// which native list controls expect as part of their geometry.
func ComboDropdown(n *Node, r surface.Rect) surface.Rect {
	r.H += n.Bounds.H
	return r
}

// SetPlacementAdjuster installs fn for nodes of type t. A nil fn removes it.
func (s *State) SetPlacementAdjuster(t Type, fn PlacementAdjuster) {
	if fn == nil {
		delete(s.adjusters, t)
		return
	}
	s.adjusters[t] = fn
}

// Invalidate measures and places the subtree at id, then repaints it.
func (s *State) Invalidate(id ID) {
	n, ok := s.live("ui.Invalidate", id)
	if !ok {
		return
	}

	start := time.Now()
	s.measureTree(id)
	s.stats.MeasureTime = time.Since(start)

	start = time.Now()
	s.place(id)
	s.stats.PlaceTime = time.Since(start)

	s.backend.Repaint(n.surface)
	s.stats.InvalidateCalls++
}

// IsVisible reports whether the node is shown. A node without a surface
// inherits the visibility of its nearest ancestor that has one.
func (s *State) IsVisible(id ID) bool {
	if !s.inRange(id) {
		return false
	}
	return s.visible(id)
}

func (s *State) visible(id ID) bool {
	for id != Null {
		n := s.at(id)
		if n.surface != 0 {
			return s.backend.IsVisible(n.surface)
		}
		id = n.parent
	}
	return true
}

// IsEnabled reports whether the node accepts input.
func (s *State) IsEnabled(id ID) bool {
	if !s.inRange(id) {
		return false
	}
	n := s.at(id)
	if n.surface == 0 {
		return true
	}
	return s.backend.IsEnabled(n.surface)
}

func (s *State) measureTree(id ID) {
	if s.measuring == 0 {
		clear(s.retriggers)
	}
	s.measuring++
	s.measure(id)
	s.measuring--
}

// spacing returns the spacing a child must leave along axis. total sums the
// parent padding and the spacing between all siblings; remaining sums the
// padding and spacing after n. Off-axis parents reserve padding only.
func (s *State) spacing(n *Node, axis Layout) (total, remaining int) {
	p := s.at(n.parent)
	if p.Layout != axis {
		return 2 * p.Padding, p.Padding + n.Spacing
	}

	count, index := 0, 0
	for c := p.child; c != Null; c = s.at(c).after {
		if c == n.id {
			index = count
		}
		count++
	}
	total = 2*p.Padding + (count-1)*n.Spacing
	remaining = p.Padding + (count-index-1)*n.Spacing
	return total, remaining
}

func isFraction(v float32) bool { return v > 0 && v <= 1 }

func (s *State) measure(id ID) {
	n := s.at(id)
	if !s.visible(id) {
		n.Dst = Dst{}
		return
	}

	var p *Node
	if n.parent != Null {
		p = s.at(n.parent)
	}

	n.Dst = Dst{X: int(n.Rect.X), Y: int(n.Rect.Y), W: int(n.Rect.W), H: int(n.Rect.H)}

	if p != nil {
		n.Dst.X += p.Padding
		n.Dst.Y += p.Padding

		if n.before != Null {
			b := s.at(n.before)
			switch p.Layout {
			case Horizontal:
				n.Dst.X = b.Dst.X + b.Dst.W + b.Spacing
			case Vertical:
				n.Dst.Y = b.Dst.Y + b.Dst.H + b.Spacing
			}
		}

		if isFraction(n.Rect.W) {
			total, rem := s.spacing(n, Horizontal)
			if n.Rect.X > 1 {
				total += n.Dst.X
			}
			n.Dst.W = int(float32(p.Dst.W-total) * n.Rect.W)

			// Shrink to what later siblings leave over.
			rest := p.Dst.W - n.Dst.X - rem
			if rest <= n.Dst.W && p.Layout == Horizontal {
				for a := n.after; a != Null; a = s.at(a).after {
					s.measure(a)
					rest -= s.at(a).Dst.W
				}
				n.Dst.W = rest
			}
		}

		if isFraction(n.Rect.H) {
			total, rem := s.spacing(n, Vertical)
			if n.Rect.Y > 1 {
				total += n.Dst.Y
			}
			n.Dst.H = int(float32(p.Dst.H-total) * n.Rect.H)

			rest := p.Dst.H - n.Dst.Y - rem
			if rest <= n.Dst.H && p.Layout == Vertical {
				for a := n.after; a != Null; a = s.at(a).after {
					s.measure(a)
					rest -= s.at(a).Dst.H
				}
				n.Dst.H = rest
			}
		}
	}

	if n.Has(FlagTextNode) {
		border := 0
		if n.Has(FlagBorder) {
			border = 1
		}
		if n.Rect.W == 0 {
			n.Dst.W = n.Bounds.W + s.style.TextWSpacing*border
		}
		if n.Rect.H == 0 {
			n.Dst.H = n.Bounds.H + s.style.TextHSpacing*border
		}
	}

	if n.child != Null {
		n.Bounds = Bounds{}
		for c := n.child; c != Null; c = s.at(c).after {
			s.measure(c)
			cn := s.at(c)
			n.Bounds.W = max(n.Bounds.W, cn.Dst.X+cn.Dst.W+cn.Spacing)
			n.Bounds.H = max(n.Bounds.H, cn.Dst.Y+cn.Dst.H+cn.Spacing)
			if n.Has(FlagCollapsed) {
				break
			}
		}

		if n.Rect.W == 0 {
			n.Dst.W = n.Bounds.W
		}
		// Collapsing is only supported along the vertical axis.
		if n.Rect.H == 0 || n.Has(FlagCollapsed) {
			n.Dst.H = n.Bounds.H
		}

		if n.ScrollBar != Null && s.scrollFeedback(n) {
			return
		}
	}

	if p != nil && isFraction(n.Rect.X) {
		f := n.Rect.X
		n.Dst.X = int(float32(p.Dst.W)*f - float32(n.Dst.W)*f - float32(p.Padding)*f)
	}
	if p != nil && isFraction(n.Rect.Y) {
		f := n.Rect.Y
		n.Dst.Y = int(float32(p.Dst.H)*f - float32(n.Dst.H)*f - float32(p.Padding)*f)
	}
}

// scrollFeedback shows or hides the scrollbar of a scroll client when its
// content overflow changed, then re-measures the client's parent. It returns
// true when the parent was re-measured. Each direction triggers at most once
// per node for one top-level measure.
func (s *State) scrollFeedback(n *Node) bool {
	if !s.inRange(n.ScrollBar) || n.parent == Null {
		s.violate("ui.measure", errors.KindContract, n.id, "scroll client links invalid scrollbar %d", n.ScrollBar)
		return false
	}
	sb := s.at(n.ScrollBar)
	shown := s.visible(sb.id)

	var bit uint8
	switch {
	case n.Bounds.H > n.Dst.H && !shown:
		bit = retriggerShow
	case n.Bounds.H <= n.Dst.H && shown:
		bit = retriggerHide
	default:
		return false
	}

	if s.retriggers[n.id]&bit != 0 {
		log.Printf("edwin: scrollbar feedback limit reached for node %d", n.id)
		return false
	}
	s.retriggers[n.id] |= bit

	if bit == retriggerShow {
		s.backend.SetVisible(sb.surface, true)
	} else {
		s.backend.SetVisible(sb.surface, false)
		if n.ScrollPos != 0 {
			s.backend.ScrollContent(n.surface, n.ScrollPos)
			n.ScrollPos = 0
		}
	}
	s.measure(n.parent)
	return true
}

func (s *State) place(id ID) {
	n := s.at(id)

	// The root and user windows belong to the embedder.
	if id != RootID && n.Type != TypeUserWindow {
		if !s.visible(id) {
			return
		}
		if n.parent != Null {
			if pos := s.at(n.parent).ScrollPos; pos != 0 {
				n.Dst.Y -= pos
			}
		}

		r := surface.Rect{X: n.Dst.X, Y: n.Dst.Y, W: n.Dst.W, H: n.Dst.H}
		if r.W == 0 {
			r.W = minSurfaceSize
		}
		if r.H == 0 {
			r.H = minSurfaceSize
		}
		if adjust := s.adjusters[n.Type]; adjust != nil {
			r = adjust(n, r)
		}
		s.backend.SetGeometry(n.surface, r)

		if n.Type == TypeScrollBar {
			s.syncScrollBar(n)
		}
	}

	for c := n.child; c != Null; c = s.at(c).after {
		s.place(c)
	}
}

// syncScrollBar pins the client scroll position to the content and pushes
// the scroll range to the scrollbar.
func (s *State) syncScrollBar(sb *Node) {
	if sb.ScrollClient == Null || !s.inRange(sb.ScrollClient) {
		s.violate("ui.place", errors.KindContract, sb.id, "scrollbar is missing a client")
		return
	}
	client := s.at(sb.ScrollClient)
	if client.ScrollPos+client.Dst.H > client.Bounds.H {
		client.ScrollPos = max(client.Bounds.H-client.Dst.H, 0)
	}
	s.backend.SetScrollInfo(sb.surface, surface.ScrollInfo{
		Max:  client.Bounds.H,
		Page: client.Dst.H,
		Pos:  client.ScrollPos,
	})
}
