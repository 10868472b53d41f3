package ui

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/go-edwin/edwin/pkg/errors"
	"github.com/go-edwin/edwin/pkg/surface"
	"github.com/lucasb-eyer/go-colorful"
)

// Bind associates caller-owned storage with a node and pushes the value to
// the display when it changed since the previous call.
//
// Accepted sources by kind:
//
//	KindInt, KindEnum    *int32, []int32
//	KindFlags            *uint32, []uint32
//	KindFloat            *float32, []float32
//	KindInt64            *int64, []int64
//	KindFloat64          *float64, []float64
//	KindBool             *bool, []bool
//	KindString           *string, []string
//	KindColor            *[4]float32, []float32
//	KindPixels           []byte
//
// When the node heads a composite chain, src must be a slice; each chained
// node binds the elements following those consumed by its predecessor.
func (s *State) Bind(id ID, src any) {
	s.BindSized(id, src, 0)
}

// BindSized is Bind with an explicit size in bytes. Zero selects the default
// element size of the node kind. For strings size is the maximum byte length
// written by Commit, zero meaning unbounded.
func (s *State) BindSized(id ID, src any, size int) {
	n, ok := s.live("ui.Bind", id)
	if !ok {
		return
	}
	for {
		tail, ok := s.bindOne(n, src, size)
		if !ok {
			return
		}
		s.stats.DataCalls++

		if n.Next == Null {
			return
		}
		if n.srcSize == 0 && n.Kind != KindString {
			s.violate("ui.Bind", errors.KindContract, n.id, "chained node bound without a size")
			return
		}
		if tail == nil {
			s.violate("ui.Bind", errors.KindContract, n.id, "source too short for chained node %d", n.Next)
			return
		}
		if n, ok = s.live("ui.Bind", n.Next); !ok {
			return
		}
		src, size = tail, 0
	}
}

func (s *State) bindOne(n *Node, src any, size int) (tail any, ok bool) {
	switch n.Kind {
	case KindInt, KindEnum:
		return bindScalar[int32](s, n, src, size)
	case KindFlags:
		return bindScalar[uint32](s, n, src, size)
	case KindFloat:
		return bindScalar[float32](s, n, src, size)
	case KindInt64:
		return bindScalar[int64](s, n, src, size)
	case KindFloat64:
		return bindScalar[float64](s, n, src, size)
	case KindBool:
		return bindScalar[bool](s, n, src, size)
	case KindString:
		return s.bindString(n, src, size)
	case KindColor:
		return s.bindColor(n, src, size)
	case KindPixels:
		return nil, s.bindPixels(n, src)
	default:
		// Bitmaps and icons are set once at creation.
		s.violate("ui.Bind", errors.KindContract, n.id, "value kind %s not supported by Bind", n.Kind)
		return nil, false
	}
}

// elemSize returns the default source size of one element of k.
func (k Kind) elemSize() int {
	switch k {
	case KindInt, KindFloat, KindEnum, KindFlags:
		return 4
	case KindInt64, KindFloat64:
		return 8
	case KindBool:
		return 1
	case KindColor:
		return 16
	default:
		return 0
	}
}

// view is a typed window over caller-owned storage.
type view[T any] struct {
	ptr  *T
	rest []T
}

func (v view[T]) tail() any {
	if len(v.rest) == 0 {
		return nil
	}
	return v.rest
}

func viewOf[T any](src any, count int) (view[T], bool) {
	switch v := src.(type) {
	case *T:
		return view[T]{ptr: v}, v != nil && count == 1
	case []T:
		if len(v) == 0 || len(v) < count {
			return view[T]{}, false
		}
		return view[T]{ptr: &v[0], rest: v[count:]}, true
	}
	return view[T]{}, false
}

func (s *State) stride(n *Node, size, es int) (int, bool) {
	if size == 0 {
		size = es
	}
	if size%es != 0 {
		s.violate("ui.Bind", errors.KindContract, n.id, "size %d is not a multiple of the %s element size %d", size, n.Kind, es)
		return 0, false
	}
	return size, true
}

// holdsDisplay reports whether pushes to n must be deferred: the user is
// editing it, or it is not shown.
func (s *State) holdsDisplay(n *Node) bool {
	return s.focused(n.id) || n.Has(FlagEditing) || !s.visible(n.id)
}

func bindScalar[T int32 | uint32 | float32 | int64 | float64 | bool](s *State, n *Node, src any, size int) (any, bool) {
	es := n.Kind.elemSize()
	size, ok := s.stride(n, size, es)
	if !ok {
		return nil, false
	}
	v, ok := viewOf[T](src, size/es)
	if !ok {
		s.violate("ui.Bind", errors.KindContract, n.id, "%s node cannot bind %T of %d bytes", n.Kind, src, size)
		return nil, false
	}

	var cur [16]byte
	_, _ = binary.Encode(cur[:es], binary.LittleEndian, *v.ptr)

	if n.src == any(v.ptr) && n.srcSize == size && !n.pending && bytes.Equal(n.value[:es], cur[:es]) {
		return v.tail(), true
	}
	n.src, n.srcSize = v.ptr, size

	if s.holdsDisplay(n) {
		n.pending = true
		return v.tail(), true
	}
	n.value, n.pending = cur, false
	s.push(n)
	return v.tail(), true
}

func (s *State) bindString(n *Node, src any, size int) (any, bool) {
	v, ok := viewOf[string](src, 1)
	if !ok {
		s.violate("ui.Bind", errors.KindContract, n.id, "string node cannot bind %T", src)
		return nil, false
	}
	if s.focused(n.id) || !s.visible(n.id) {
		n.src, n.srcSize = v.ptr, size
		return v.tail(), true
	}

	if n.src == any(v.ptr) && n.srcSize == size {
		shown := s.backend.Text(n.surface)
		if truncate(shown, size) == truncate(*v.ptr, size) {
			return v.tail(), true
		}
	}
	n.src, n.srcSize = v.ptr, size
	s.push(n)
	return v.tail(), true
}

func (s *State) bindColor(n *Node, src any, size int) (any, bool) {
	if size == 0 {
		size = KindColor.elemSize()
	}
	if size != KindColor.elemSize() {
		s.violate("ui.Bind", errors.KindContract, n.id, "color node expects 16 bytes, got %d", size)
		return nil, false
	}

	var ptr *[4]float32
	var rest []float32
	switch v := src.(type) {
	case *[4]float32:
		ptr = v
	case []float32:
		if len(v) >= 4 {
			ptr, rest = (*[4]float32)(v), v[4:]
		}
	}
	if ptr == nil {
		s.violate("ui.Bind", errors.KindContract, n.id, "color node cannot bind %T", src)
		return nil, false
	}
	var tail any
	if len(rest) > 0 {
		tail = rest
	}

	var cur [16]byte
	_, _ = binary.Encode(cur[:], binary.LittleEndian, *ptr)
	if n.src == any(ptr) && n.srcSize == size && !n.pending && cur == n.value {
		return tail, true
	}
	n.src, n.srcSize = ptr, size

	if s.focused(n.id) || !s.visible(n.id) {
		n.pending = true
		return tail, true
	}
	n.value, n.pending = cur, false
	s.push(n)
	return tail, true
}

// bindPixels copies a whole frame into the node image buffer. Frames are
// assumed to change on every call.
func (s *State) bindPixels(n *Node, src any) bool {
	px, ok := src.([]byte)
	if !ok {
		s.violate("ui.Bind", errors.KindContract, n.id, "pixels node cannot bind %T", src)
		return false
	}
	if n.resource == 0 {
		s.violate("ui.Bind", errors.KindContract, n.id, "pixels node has no allocated buffer")
		return false
	}
	want := n.pixels.W * n.pixels.H * n.pixels.Format.BytesPerPixel()
	if len(px) < want {
		s.violate("ui.Bind", errors.KindContract, n.id, "pixel source has %d bytes, want %d", len(px), want)
		return false
	}
	if s.visible(n.id) {
		s.backend.CopyPixels(n.resource, px, n.pixels.Format)
		s.backend.Repaint(n.surface)
	}
	return true
}

// InvalidateData pushes the bound value of id to the display without change
// detection.
func (s *State) InvalidateData(id ID) {
	n, ok := s.live("ui.InvalidateData", id)
	if !ok {
		return
	}
	switch {
	case n.Kind == KindPixels:
		s.backend.Repaint(n.surface)
	case n.src != nil:
		s.push(n)
	}
}

// push builds the display value from the bound source and hands it to the
// backend.
func (s *State) push(n *Node) {
	d, ok := s.display(n)
	if !ok {
		return
	}
	s.backend.PushValue(n.surface, d)
}

func (s *State) display(n *Node) (surface.Display, bool) {
	format := s.style.format(n)
	switch p := n.src.(type) {
	case *int32:
		if n.Kind == KindEnum {
			return surface.Display{Mode: surface.DisplaySelect, Index: int(*p)}, true
		}
		return surface.Display{Mode: surface.DisplayText, Text: fmt.Sprintf(format, *p)}, true
	case *uint32:
		return surface.Display{Mode: surface.DisplayRepaint, Bits: *p, Text: fmt.Sprintf("0x%X", *p)}, true
	case *float32:
		return surface.Display{Mode: surface.DisplayText, Text: fmt.Sprintf(format, *p)}, true
	case *int64:
		return surface.Display{Mode: surface.DisplayText, Text: fmt.Sprintf(format, *p)}, true
	case *float64:
		return surface.Display{Mode: surface.DisplayText, Text: fmt.Sprintf(format, *p)}, true
	case *bool:
		return surface.Display{Mode: surface.DisplayCheck, Checked: *p}, true
	case *string:
		return surface.Display{Mode: surface.DisplayText, Text: truncate(*p, n.srcSize)}, true
	case *[4]float32:
		return surface.Display{Mode: surface.DisplayRepaint, Text: ColorHex(*p), Bits: packRGBA(*p)}, true
	}
	return surface.Display{}, false
}

// ColorHex formats an sRGB color as #rrggbb, clamping out of range channels.
func ColorHex(c [4]float32) string {
	col := colorful.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2])}
	return col.Clamped().Hex()
}

func packRGBA(c [4]float32) uint32 {
	r, g, b := colorful.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2])}.Clamped().RGB255()
	a := uint32(min(max(c[3], 0), 1)*255 + 0.5)
	return uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | a
}

// Current decodes the value last copied into the node display buffer.
func (n *Node) Current() any {
	b := n.value[:]
	le := binary.LittleEndian
	switch n.Kind {
	case KindInt, KindEnum:
		return int32(le.Uint32(b))
	case KindFlags:
		return le.Uint32(b)
	case KindFloat:
		var f float32
		_, _ = binary.Decode(b[:4], le, &f)
		return f
	case KindInt64:
		return int64(le.Uint64(b))
	case KindFloat64:
		var f float64
		_, _ = binary.Decode(b[:8], le, &f)
		return f
	case KindBool:
		return b[0] != 0
	case KindColor:
		var c [4]float32
		_, _ = binary.Decode(b, le, &c)
		return c
	case KindString:
		if p, ok := n.src.(*string); ok {
			return *p
		}
		return ""
	}
	return nil
}

// Source returns the storage bound to the node, as the element pointer that
// was last passed to Bind.
func (n *Node) Source() any { return n.src }

// SourceSize returns the size in bytes recorded by the last Bind.
func (n *Node) SourceSize() int { return n.srcSize }
