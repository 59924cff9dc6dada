package model

import "fmt"

// Function is a pure transformation of a pixel buffer. The set of
// functions is closed: Rotate, Set and Alternate.
type Function interface {
	Apply(b PixelBuffer) PixelBuffer
	isFunction()
}

// Rotate shifts the buffer cyclically: pixel i takes the value of pixel
// i+Step. Positive steps move the pattern toward index 0, negative steps
// move it away (to the right).
type Rotate struct {
	Step int16
}

// Set paints every pixel with one color.
type Set struct {
	Color Color
}

// Alternate paints even pixels C1 and odd pixels C2.
type Alternate struct {
	C1, C2 Color
}

func (Rotate) isFunction()    {}
func (Set) isFunction()       {}
func (Alternate) isFunction() {}

func (r Rotate) Apply(b PixelBuffer) PixelBuffer {
	n := int(b.n)
	if n == 0 {
		return b
	}
	off := ((int(r.Step) % n) + n) % n
	if off == 0 {
		return b
	}
	out := PixelBuffer{n: b.n}
	for i := 0; i < n; i++ {
		out.px[i] = b.px[(i+off)%n]
	}
	return out
}

func (s Set) Apply(b PixelBuffer) PixelBuffer {
	out := PixelBuffer{n: b.n}
	out.Fill(s.Color)
	return out
}

func (a Alternate) Apply(b PixelBuffer) PixelBuffer {
	pattern := [2]Color{a.C1, a.C2}
	out := PixelBuffer{n: b.n}
	for i := uint16(0); i < b.n; i++ {
		out.px[i] = pattern[i%2]
	}
	return out
}

// Apply runs f over b. A nil function leaves the buffer unchanged.
func Apply(f Function, b PixelBuffer) PixelBuffer {
	switch f := f.(type) {
	case Rotate:
		return f.Apply(b)
	case Set:
		return f.Apply(b)
	case Alternate:
		return f.Apply(b)
	default:
		return b
	}
}

func (r Rotate) String() string    { return fmt.Sprintf("rotate(%d)", r.Step) }
func (s Set) String() string       { return fmt.Sprintf("set(%s)", s.Color) }
func (a Alternate) String() string { return fmt.Sprintf("alternate(%s,%s)", a.C1, a.C2) }
