package ui

import (
	"encoding/binary"
	"math"
)

// Slide applies a horizontal pointer drag to a number input. x is the pointer
// position relative to the node, dx the movement since the previous call and
// travelled the distance accumulated since the press. Drags that stay within
// the style deadzone change nothing.
//
// Bounded nodes map x onto their range; unbounded ones step by dx, scaled by
// the float increments for float kinds.
func (s *State) Slide(id ID, x, dx, travelled int) {
	n, ok := s.live("ui.Slide", id)
	if !ok || n.src == nil || !n.Kind.IsNumber() {
		return
	}
	if n.Has(FlagReadOnly) || n.Has(FlagEditing) || !s.IsEnabled(id) {
		return
	}
	if travelled <= s.style.NumberDeadzone {
		return
	}

	t := 0.0
	if w := s.backend.ScreenRect(n.surface).W; w > 0 {
		t = float64(x) / float64(w)
	}

	le := binary.LittleEndian
	switch n.Kind {
	case KindInt, KindInt64:
		var v int64
		if n.Kind == KindInt {
			v = int64(int32(le.Uint32(n.value[:4])))
		} else {
			v = int64(le.Uint64(n.value[:8]))
		}
		if n.MinInt != n.MaxInt {
			v = n.MinInt + int64(float64(n.MaxInt-n.MinInt)*t)
			v = min(max(v, n.MinInt), n.MaxInt)
		} else {
			v += int64(dx)
		}
		if n.Kind == KindInt {
			le.PutUint32(n.value[:4], uint32(int32(v)))
		} else {
			le.PutUint64(n.value[:8], uint64(v))
		}
	case KindFloat:
		v := float64(math.Float32frombits(le.Uint32(n.value[:4])))
		v = slideFloat(n, v, t, float64(dx)*float64(s.style.FloatIncrement))
		le.PutUint32(n.value[:4], math.Float32bits(float32(v)))
	case KindFloat64:
		v := math.Float64frombits(le.Uint64(n.value[:8]))
		v = slideFloat(n, v, t, float64(dx)*s.style.Float64Increment)
		le.PutUint64(n.value[:8], math.Float64bits(v))
	}

	s.changed(n)
	s.writeSource(n)
	s.InvalidateData(id)
}

func slideFloat(n *Node, v, t, step float64) float64 {
	if n.MinFloat == n.MaxFloat {
		return v + step
	}
	v = n.MinFloat + (n.MaxFloat-n.MinFloat)*t
	return min(max(v, n.MinFloat), n.MaxFloat)
}

// SliderFraction returns where the current value of a bounded number node
// lies in its range, in [0, 1]. Unbounded nodes report 0.
func (n *Node) SliderFraction() float64 {
	var v, lo, hi float64
	switch n.Kind {
	case KindInt, KindInt64:
		lo, hi = float64(n.MinInt), float64(n.MaxInt)
	case KindFloat, KindFloat64:
		lo, hi = n.MinFloat, n.MaxFloat
	default:
		return 0
	}
	if lo == hi {
		return 0
	}
	switch c := n.Current().(type) {
	case int32:
		v = float64(c)
	case int64:
		v = float64(c)
	case float32:
		v = float64(c)
	case float64:
		v = c
	}
	return min(max((v-lo)/(hi-lo), 0), 1)
}
