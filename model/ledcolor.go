package model

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Encoding tags the channel layout of a Color. Only RGB exists today.
type Encoding uint8

const (
	EncodingRGB Encoding = iota
)

// Color is one LED value, 8 bits per channel.
type Color struct {
	R, G, B uint8
}

// RGB builds an RGB-encoded color.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }

var (
	Black   = RGB(0x00, 0x00, 0x00)
	White   = RGB(0xFF, 0xFF, 0xFF)
	Red     = RGB(0xFF, 0x00, 0x00)
	Green   = RGB(0x00, 0xFF, 0x00)
	Blue    = RGB(0x00, 0x00, 0xFF)
	Yellow  = RGB(0xFF, 0xFF, 0x00)
	Magenta = RGB(0xFF, 0x00, 0xFF)
	Cyan    = RGB(0x00, 0xFF, 0xFF)
)

var named = map[string]Color{
	"black":   Black,
	"white":   White,
	"red":     Red,
	"green":   Green,
	"blue":    Blue,
	"yellow":  Yellow,
	"magenta": Magenta,
	"cyan":    Cyan,
}

// Encoding always reports RGB for now.
func (c Color) Encoding() Encoding { return EncodingRGB }

// NRGBA converts to an opaque image color for display.Drawer backends.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

// Scale dims every channel by level/255.
func (c Color) Scale(level uint8) Color {
	if level == 0xFF {
		return c
	}
	l := uint16(level)
	return Color{
		R: uint8(uint16(c.R) * l / 0xFF),
		G: uint8(uint16(c.G) * l / 0xFF),
		B: uint8(uint16(c.B) * l / 0xFF),
	}
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// HSVToRGB converts hue in degrees [0,360) and saturation/value in [0,1]
// with the usual sextant formula; channels are rounded to 8 bits. Out of
// range hues wrap and s/v are clamped.
func HSVToRGB(h, s, v float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	r, g, b := colorful.Hsv(h, clamp01(s), clamp01(v)).RGB255()
	return RGB(r, g, b)
}

// RGB565 packs c for 16bpp displays.
func RGB565(c Color) uint16 {
	return (uint16(c.R&0xF8) << 8) | (uint16(c.G&0xFC) << 3) | uint16(c.B>>3)
}

// ParseColor accepts a named color ("red") or a hex triplet ("#ff8800").
func ParseColor(s string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if c, ok := named[key]; ok {
		return c, nil
	}
	if !strings.HasPrefix(key, "#") {
		key = "#" + key
	}
	cc, err := colorful.Hex(key)
	if err != nil {
		return Black, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := cc.RGB255()
	return RGB(r, g, b), nil
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
