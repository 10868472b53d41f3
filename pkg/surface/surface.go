// Package surface defines the windowing collaborator the tree engine drives.
//
// The engine never creates or paints native controls itself. It computes
// rectangles and tree state and hands them to a [Backend], which owns the
// platform objects behind opaque [Handle] values. A backend must provide
// hierarchical visibility: a surface is visible only when it and all of its
// ancestors are shown. DestroySurface must also destroy descendant surfaces.
package surface

// Handle identifies a platform surface. The zero Handle means no surface.
type Handle uint32

// Resource identifies a backend-owned resource such as a pixel buffer.
// The zero Resource means none.
type Resource uint32

// Class selects the kind of platform control backing a surface.
type Class int

const (
	// ClassBlock is a plain container window.
	ClassBlock Class = iota
	// ClassCaption is a title bar for windows and groups.
	ClassCaption
	// ClassLabel is static text.
	ClassLabel
	// ClassButton is a push button.
	ClassButton
	// ClassEdit is a single line text input.
	ClassEdit
	// ClassMultilineEdit is a multi line text input.
	ClassMultilineEdit
	// ClassCombo is a dropdown list.
	ClassCombo
	// ClassCheckbox is a tri-state checkbox.
	ClassCheckbox
	// ClassScrollBar is a vertical scrollbar control.
	ClassScrollBar
	// ClassSeparator is an etched line.
	ClassSeparator
	// ClassImage displays a pixel buffer.
	ClassImage
	// ClassColor displays a color swatch.
	ClassColor
)

var classNames = [...]string{
	ClassBlock:         "block",
	ClassCaption:       "caption",
	ClassLabel:         "label",
	ClassButton:        "button",
	ClassEdit:          "edit",
	ClassMultilineEdit: "multiline-edit",
	ClassCombo:         "combo",
	ClassCheckbox:      "checkbox",
	ClassScrollBar:     "scrollbar",
	ClassSeparator:     "separator",
	ClassImage:         "image",
	ClassColor:         "color",
}

func (c Class) String() string {
	if c >= 0 && int(c) < len(classNames) {
		return classNames[c]
	}
	return "unknown"
}

// Style carries creation-time surface options.
type Style uint32

const (
	// StyleVisible creates the surface shown.
	StyleVisible Style = 1 << iota
	// StyleBorder draws an outline.
	StyleBorder
	// StyleVertical orients separators and scrollbars vertically.
	StyleVertical
	// StyleOwnerDraw asks the backend to defer item drawing to the engine.
	StyleOwnerDraw
)

// Rect is an integer pixel rectangle.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point lies inside r, edges included.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// ScrollInfo describes a scrollbar range.
type ScrollInfo struct {
	Max  int
	Page int
	Pos  int
}

// DisplayMode selects how a pushed value is presented by the control.
type DisplayMode int

const (
	// DisplayText replaces the control text.
	DisplayText DisplayMode = iota
	// DisplaySelect selects an item index in a list control.
	DisplaySelect
	// DisplayCheck sets the checked state of a checkbox.
	DisplayCheck
	// DisplayRepaint asks for a custom repaint using Bits.
	DisplayRepaint
)

// Display is a value pushed into a native control.
type Display struct {
	Mode    DisplayMode
	Text    string
	Index   int
	Checked bool
	Bits    uint32
}

// PixelFormat describes the channel order of a source pixel buffer.
type PixelFormat int

const (
	RGB PixelFormat = iota
	BGR
	ARGB
	RGBA
	ABGR
	BGRA
)

// BytesPerPixel returns the source stride of one pixel in f.
func (f PixelFormat) BytesPerPixel() int {
	if f == RGB || f == BGR {
		return 3
	}
	return 4
}

func (f PixelFormat) String() string {
	switch f {
	case RGB:
		return "rgb"
	case BGR:
		return "bgr"
	case ARGB:
		return "argb"
	case RGBA:
		return "rgba"
	case ABGR:
		return "abgr"
	case BGRA:
		return "bgra"
	default:
		return "unknown"
	}
}

// Backend is the windowing collaborator consumed by the tree engine.
//
// All methods are called from the UI thread. Methods receiving the zero
// Handle must be no-ops (or return zero values).
type Backend interface {
	// CreateSurface creates a surface as a child of parent.
	CreateSurface(parent Handle, class Class, text string, style Style) Handle
	// DestroySurface destroys h and all of its descendants.
	DestroySurface(h Handle)
	// Reparent moves an externally created surface under parent.
	Reparent(h, parent Handle)

	// SetGeometry moves and resizes h relative to its parent.
	SetGeometry(h Handle, r Rect)
	// ClientRect returns the client area of h.
	ClientRect(h Handle) Rect
	// ScreenRect returns the screen area of h.
	ScreenRect(h Handle) Rect

	SetVisible(h Handle, visible bool)
	// IsVisible reports hierarchical visibility.
	IsVisible(h Handle) bool
	SetEnabled(h Handle, enabled bool)
	IsEnabled(h Handle) bool
	SetReadOnly(h Handle, readOnly bool)

	// MeasureText returns the extent of the text currently shown by h.
	MeasureText(h Handle) (w, ht int)
	// Text returns the text currently shown by h.
	Text(h Handle) string
	// SetItems replaces the item list of a list control.
	SetItems(h Handle, items []string)
	// PushValue presents a bound value in the control.
	PushValue(h Handle, d Display)
	// Repaint schedules a repaint of h.
	Repaint(h Handle)

	SetScrollInfo(h Handle, si ScrollInfo)
	// SetScrollPos sets the scrollbar position and returns the position
	// actually applied after clamping to the range.
	SetScrollPos(h Handle, pos int) int
	// ScrollContent scrolls the content of h vertically by dy pixels.
	ScrollContent(h Handle, dy int)

	// Focus returns the focused surface, or 0.
	Focus() Handle
	SetFocus(h Handle)

	// AllocPixels allocates a premultiplied BGRA buffer of w*h pixels.
	AllocPixels(w, h int) Resource
	// CopyPixels converts src from format f into the buffer r.
	CopyPixels(r Resource, src []byte, f PixelFormat)
	// ClearPixels fills r with a single color.
	ClearPixels(r Resource, red, green, blue, alpha uint8)
	// ReleaseResource frees r.
	ReleaseResource(r Resource)
}
