package widgets

import (
	"github.com/go-edwin/edwin/pkg/surface"
	"github.com/go-edwin/edwin/pkg/ui"
)

// zeroSource returns fresh storage for a node of kind k, so that a new input
// displays a zero value before the caller binds its own.
func zeroSource(k ui.Kind) any {
	switch k {
	case ui.KindString:
		return new(string)
	case ui.KindInt, ui.KindEnum:
		return new(int32)
	case ui.KindFlags:
		return new(uint32)
	case ui.KindFloat:
		return new(float32)
	case ui.KindInt64:
		return new(int64)
	case ui.KindFloat64:
		return new(float64)
	case ui.KindBool:
		return new(bool)
	case ui.KindColor:
		return new([4]float32)
	}
	return nil
}

// inputBasic adds a single-line edit of kind k without a label.
func inputBasic(s *ui.State, k ui.Kind) ui.ID {
	id := s.Attach(ui.TypeInput, s.PopRect(ui.Rect{W: 1}))
	if id == ui.Null {
		return ui.Null
	}
	n := s.Node(id)
	n.Kind = k
	n.Spacing = s.Style().Spacing
	n.Flags |= ui.FlagTabstop | ui.FlagTextNode
	s.AttachSurface(id, surface.ClassEdit, "", surface.StyleVisible|surface.StyleBorder)
	s.MeasureText(id)
	if src := zeroSource(k); src != nil {
		s.Bind(id, src)
	}
	return id
}

// Input adds a single-line edit of kind k preceded by a label taking the
// style label width. An empty label adds the edit alone, consuming any
// pushed request.
func Input(s *ui.State, label string, k ui.Kind) ui.ID {
	if label == "" {
		return inputBasic(s, k)
	}
	st := s.Style()
	if Begin(s, ui.Horizontal, s.PopRect(ui.Rect{W: 1})) == ui.Null {
		return ui.Null
	}
	s.PushRect(0, 0, st.LabelWidth, st.LabelHeight)
	Label(s, label)
	s.PushRect(0, 0, 1, st.InputHeight)
	id := inputBasic(s, k)
	End(s)
	return id
}

// Int adds a 32-bit integer input clamped to [min, max]. Equal bounds leave
// it unconstrained.
func Int(s *ui.State, label string, min, max int32) ui.ID {
	id := Input(s, label, ui.KindInt)
	if id != ui.Null {
		n := s.Node(id)
		n.MinInt, n.MaxInt = int64(min), int64(max)
	}
	return id
}

// IntFmt is Int with a display format and a parse base for Commit. A zero
// base detects 0x, 0o and 0b prefixes.
func IntFmt(s *ui.State, label string, min, max int32, format string, base int) ui.ID {
	id := Int(s, label, min, max)
	if id != ui.Null {
		setFormat(s, id, format, base)
	}
	return id
}

// Int64 adds a 64-bit integer input clamped to [min, max].
func Int64(s *ui.State, label string, min, max int64) ui.ID {
	id := Input(s, label, ui.KindInt64)
	if id != ui.Null {
		n := s.Node(id)
		n.MinInt, n.MaxInt = min, max
	}
	return id
}

// Int64Fmt is Int64 with a display format and a parse base.
func Int64Fmt(s *ui.State, label string, min, max int64, format string, base int) ui.ID {
	id := Int64(s, label, min, max)
	if id != ui.Null {
		setFormat(s, id, format, base)
	}
	return id
}

// Float adds a 32-bit float input clamped to [min, max].
func Float(s *ui.State, label string, min, max float32) ui.ID {
	id := Input(s, label, ui.KindFloat)
	if id != ui.Null {
		n := s.Node(id)
		n.MinFloat, n.MaxFloat = float64(min), float64(max)
	}
	return id
}

// Float64 adds a 64-bit float input clamped to [min, max].
func Float64(s *ui.State, label string, min, max float64) ui.ID {
	id := Input(s, label, ui.KindFloat64)
	if id != ui.Null {
		n := s.Node(id)
		n.MinFloat, n.MaxFloat = min, max
	}
	return id
}

// setFormat changes the display format and re-renders the current value.
func setFormat(s *ui.State, id ui.ID, format string, base int) {
	n := s.Node(id)
	n.Format = format
	n.Base = base
	s.InvalidateData(id)
}
