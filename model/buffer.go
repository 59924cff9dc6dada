package model

// MaxPixels is the capacity of every PixelBuffer.
const MaxPixels = 300

// PixelBuffer is a fixed-capacity run of colors, one per LED. It is a value
// type: assigning or passing it copies the pixels, so transformations never
// alias their input.
//
// Only indices [0, Len()) are meaningful; the rest are kept black.
type PixelBuffer struct {
	px [MaxPixels]Color
	n  uint16
}

// NewPixelBuffer returns n black pixels. n is clamped to MaxPixels.
func NewPixelBuffer(n uint16) PixelBuffer {
	if n > MaxPixels {
		n = MaxPixels
	}
	return PixelBuffer{n: n}
}

// Pixels builds a buffer holding cs (truncated to MaxPixels).
func Pixels(cs ...Color) PixelBuffer {
	b := NewPixelBuffer(uint16(min(len(cs), MaxPixels)))
	copy(b.px[:b.n], cs)
	return b
}

func (b *PixelBuffer) Len() uint16 { return b.n }

// At returns pixel i, or black when i is out of range.
func (b *PixelBuffer) At(i uint16) Color {
	if i >= b.n {
		return Black
	}
	return b.px[i]
}

// Put sets pixel i. Out of range writes are dropped.
func (b *PixelBuffer) Put(i uint16, c Color) {
	if i >= b.n {
		return
	}
	b.px[i] = c
}

// Fill sets every active pixel to c.
func (b *PixelBuffer) Fill(c Color) {
	for i := uint16(0); i < b.n; i++ {
		b.px[i] = c
	}
}

// Equal compares active lengths and pixels.
func (b *PixelBuffer) Equal(o *PixelBuffer) bool {
	return b.n == o.n && b.px == o.px
}

// Colors copies the active pixels into dst and returns the filled prefix.
func (b *PixelBuffer) Colors(dst []Color) []Color {
	n := copy(dst, b.px[:b.n])
	return dst[:n]
}
