package headless

import "github.com/go-edwin/edwin/pkg/surface"

// Pixels is a premultiplied BGRA buffer.
type Pixels struct {
	W, H int
	Data []byte
}

// At returns the premultiplied blue, green, red and alpha bytes at x, y.
func (p *Pixels) At(x, y int) (b, g, r, a uint8) {
	i := (y*p.W + x) * 4
	return p.Data[i], p.Data[i+1], p.Data[i+2], p.Data[i+3]
}

// Pixels returns the buffer of r, or nil.
func (b *Backend) Pixels(r surface.Resource) *Pixels { return b.pixels[r] }

// Resources returns the number of live pixel buffers.
func (b *Backend) Resources() int { return len(b.pixels) }

func (b *Backend) AllocPixels(w, h int) surface.Resource {
	if w <= 0 || h <= 0 {
		return 0
	}
	b.nextRes++
	b.pixels[b.nextRes] = &Pixels{W: w, H: h, Data: make([]byte, w*h*4)}
	return b.nextRes
}

func (b *Backend) CopyPixels(r surface.Resource, src []byte, f surface.PixelFormat) {
	p := b.pixels[r]
	if p == nil {
		return
	}
	b.Counters.Copies++
	Convert(p.Data, src, f, p.W*p.H)
}

func (b *Backend) ClearPixels(r surface.Resource, red, green, blue, alpha uint8) {
	p := b.pixels[r]
	if p == nil {
		return
	}
	b.Counters.Clears++
	px := [4]byte{premul(blue, alpha), premul(green, alpha), premul(red, alpha), alpha}
	for i := 0; i+4 <= len(p.Data); i += 4 {
		copy(p.Data[i:i+4], px[:])
	}
}

func (b *Backend) ReleaseResource(r surface.Resource) {
	if _, ok := b.pixels[r]; !ok {
		return
	}
	delete(b.pixels, r)
	b.Counters.Releases++
}

// Convert writes count pixels of src in format f into dst as premultiplied
// BGRA. Formats without alpha are opaque.
func Convert(dst, src []byte, f surface.PixelFormat, count int) {
	bpp := f.BytesPerPixel()
	count = min(count, len(src)/bpp, len(dst)/4)
	for i := range count {
		s := src[i*bpp : i*bpp+bpp]
		var r, g, bl, a uint8
		switch f {
		case surface.RGB:
			r, g, bl, a = s[0], s[1], s[2], 0xff
		case surface.BGR:
			bl, g, r, a = s[0], s[1], s[2], 0xff
		case surface.ARGB:
			a, r, g, bl = s[0], s[1], s[2], s[3]
		case surface.RGBA:
			r, g, bl, a = s[0], s[1], s[2], s[3]
		case surface.ABGR:
			a, bl, g, r = s[0], s[1], s[2], s[3]
		case surface.BGRA:
			bl, g, r, a = s[0], s[1], s[2], s[3]
		}
		d := dst[i*4 : i*4+4]
		d[0], d[1], d[2], d[3] = premul(bl, a), premul(g, a), premul(r, a), a
	}
}

func premul(c, a uint8) uint8 {
	return uint8((uint16(c)*uint16(a) + 127) / 255)
}
