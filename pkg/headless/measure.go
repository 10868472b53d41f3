package headless

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Measurer computes the extent of a possibly multi-line text.
type Measurer interface {
	Measure(text string) (w, h int)
}

// FaceMeasurer measures text in pixels with a font face.
type FaceMeasurer struct {
	face font.Face
}

// NewFaceMeasurer returns a measurer for face, or for the basic 7x13 face
// when face is nil.
func NewFaceMeasurer(face font.Face) *FaceMeasurer {
	if face == nil {
		face = basicfont.Face7x13
	}
	return &FaceMeasurer{face: face}
}

// Measure returns the widest line advance and the line height times the
// number of lines. Empty text is one line high.
func (m *FaceMeasurer) Measure(text string) (w, h int) {
	var widest fixed.Int26_6
	lines := strings.Split(text, "\n")
	for _, line := range lines {
		widest = max(widest, font.MeasureString(m.face, line))
	}
	return widest.Ceil(), m.face.Metrics().Height.Ceil() * len(lines)
}

// CellMeasurer measures text in terminal cells, one row per line.
type CellMeasurer struct {
	// CellW and CellH scale cells to pixels. Zero means 1.
	CellW, CellH int
}

func (m CellMeasurer) Measure(text string) (w, h int) {
	lines := strings.Split(text, "\n")
	for _, line := range lines {
		w = max(w, runewidth.StringWidth(line))
	}
	return w * max(m.CellW, 1), len(lines) * max(m.CellH, 1)
}
