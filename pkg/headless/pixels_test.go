package headless

import (
	"testing"

	"github.com/go-edwin/edwin/pkg/surface"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name   string
		format surface.PixelFormat
		src    []byte
		want   [4]byte
	}{
		{"rgb", surface.RGB, []byte{10, 20, 30}, [4]byte{30, 20, 10, 255}},
		{"bgr", surface.BGR, []byte{30, 20, 10}, [4]byte{30, 20, 10, 255}},
		{"rgba opaque", surface.RGBA, []byte{10, 20, 30, 255}, [4]byte{30, 20, 10, 255}},
		{"bgra opaque", surface.BGRA, []byte{30, 20, 10, 255}, [4]byte{30, 20, 10, 255}},
		{"argb transparent", surface.ARGB, []byte{0, 200, 100, 50}, [4]byte{0, 0, 0, 0}},
		{"abgr half", surface.ABGR, []byte{128, 0, 0, 255}, [4]byte{0, 0, 128, 128}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]byte, 4)
			Convert(dst, tt.src, tt.format, 1)
			if [4]byte(dst) != tt.want {
				t.Errorf("got %v, want %v", dst, tt.want)
			}
		})
	}
}

func TestBackend_PixelLifecycle(t *testing.T) {
	b := New()
	r := b.AllocPixels(2, 1)
	if r == 0 {
		t.Fatal("expected resource")
	}
	if b.AllocPixels(0, 4) != 0 {
		t.Error("empty buffers must not be allocated")
	}

	b.ClearPixels(r, 255, 0, 0, 255)
	if bl, g, red, a := b.Pixels(r).At(1, 0); bl != 0 || g != 0 || red != 255 || a != 255 {
		t.Errorf("unexpected cleared pixel %d %d %d %d", bl, g, red, a)
	}

	b.CopyPixels(r, []byte{1, 2, 3, 4, 5, 6}, surface.RGB)
	if bl, _, red, _ := b.Pixels(r).At(1, 0); bl != 6 || red != 4 {
		t.Errorf("unexpected copied pixel b=%d r=%d", bl, red)
	}

	b.ReleaseResource(r)
	b.ReleaseResource(r)
	if b.Counters.Releases != 1 {
		t.Errorf("expected 1 release, got %d", b.Counters.Releases)
	}
	if b.Resources() != 0 {
		t.Error("expected no live resources")
	}
}

func TestMeasurers(t *testing.T) {
	face := NewFaceMeasurer(nil)
	if w, h := face.Measure("abc"); w != 21 || h != 13 {
		t.Errorf("face measure = %dx%d, want 21x13", w, h)
	}
	if w, h := face.Measure("ab\nabcd"); w != 28 || h != 26 {
		t.Errorf("face multiline measure = %dx%d, want 28x26", w, h)
	}

	cell := CellMeasurer{}
	if w, h := cell.Measure("日本"); w != 4 || h != 1 {
		t.Errorf("cell measure = %dx%d, want 4x1", w, h)
	}
	scaled := CellMeasurer{CellW: 8, CellH: 16}
	if w, h := scaled.Measure("ab\nc"); w != 16 || h != 32 {
		t.Errorf("scaled cell measure = %dx%d, want 16x32", w, h)
	}
	if w, h := face.Measure(""); w != 0 || h != 13 {
		t.Errorf("empty text = %dx%d, want one empty line", w, h)
	}
}
