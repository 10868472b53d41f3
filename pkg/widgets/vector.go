package widgets

import (
	"math"
	"strconv"

	"github.com/go-edwin/edwin/pkg/ui"
)

var axisLabels = [...]string{"X", "Y", "Z", "W"}

// itemLabel names element i of an n element vector.
func itemLabel(i, n int) string {
	if n <= len(axisLabels) {
		return axisLabels[i]
	}
	return strconv.Itoa(i)
}

// chain links id after prev and returns the new chain tail.
func chain(s *ui.State, first *ui.ID, prev, id ui.ID) ui.ID {
	if id == ui.Null {
		return prev
	}
	if *first == ui.Null {
		*first = id
	} else {
		s.Node(prev).Next = id
	}
	return id
}

// Vector adds n stacked inputs of kind k, each with a short item label, and
// returns the first one. The inputs are chained so a single Bind with a
// slice of n elements covers the whole vector.
//
//	pos := widgets.Vector(s, "position", ui.KindFloat, 3)
//	s.Bind(pos, xyz[:])
func Vector(s *ui.State, label string, k ui.Kind, n int) ui.ID {
	if n <= 0 {
		s.Violate("widgets.Vector", ui.Null, "vector needs at least one element, got %d", n)
		return ui.Null
	}
	st := s.Style()
	itemW := float32((int(math.Log10(float64(n))) + 1) * 10)

	if Begin(s, ui.Horizontal, s.PopRect(ui.Rect{W: 1})) == ui.Null {
		return ui.Null
	}
	if label != "" {
		s.PushRect(0, 0, st.LabelWidth, st.LabelHeight)
		Label(s, label)
	}
	Begin(s, ui.Vertical, ui.Rect{W: 1})

	first, prev := ui.Null, ui.Null
	for i := range n {
		Begin(s, ui.Horizontal, ui.Rect{W: 1})
		s.PushRect(0, 0, itemW, st.LabelHeight)
		Label(s, itemLabel(i, n))
		s.PushRect(0, 0, 1, st.InputHeight)
		prev = chain(s, &first, prev, inputBasic(s, k))
		End(s)
	}

	End(s)
	End(s)
	return first
}

// Matrix adds an m by n grid of inputs stored column-major: the chain runs
// down each column before moving to the next one.
func Matrix(s *ui.State, label string, k ui.Kind, m, n int) ui.ID {
	return grid(s, "widgets.Matrix", label, k, n, m, true)
}

// MatrixRow adds an m by n grid of inputs stored row-major: the chain runs
// along each row before moving to the next one.
func MatrixRow(s *ui.State, label string, k ui.Kind, m, n int) ui.ID {
	return grid(s, "widgets.MatrixRow", label, k, m, n, false)
}

// grid lays out outer lines of inner inputs each. Column-major grids use
// vertical lines side by side, row-major ones horizontal lines stacked.
func grid(s *ui.State, op, label string, k ui.Kind, outer, inner int, columnMajor bool) ui.ID {
	if outer <= 0 || inner <= 0 {
		s.Violate(op, ui.Null, "matrix needs positive dimensions, got %dx%d", outer, inner)
		return ui.Null
	}
	st := s.Style()

	if Begin(s, ui.Horizontal, s.PopRect(ui.Rect{W: 1})) == ui.Null {
		return ui.Null
	}
	if label != "" {
		s.PushRect(0, 0, st.LabelWidth, st.LabelHeight)
		Label(s, label)
	}

	body, line, cell := ui.Horizontal, ui.Vertical, ui.Rect{W: 1, H: st.InputHeight}
	lineRect := ui.Rect{W: 1 / float32(outer)}
	if !columnMajor {
		body, line = ui.Vertical, ui.Horizontal
		lineRect = ui.Rect{W: 1}
		cell = ui.Rect{W: 1 / float32(inner), H: st.InputHeight}
	}
	Begin(s, body, ui.Rect{W: 1})

	first, prev := ui.Null, ui.Null
	for range outer {
		if l := Begin(s, line, lineRect); l != ui.Null {
			s.Node(l).Spacing = st.Spacing
		}
		for range inner {
			s.PushRect(cell.X, cell.Y, cell.W, cell.H)
			prev = chain(s, &first, prev, inputBasic(s, k))
		}
		End(s)
	}

	End(s)
	End(s)
	return first
}
