package led

import (
	"time"

	"github.com/coreman2200/funtimes-arcastrip/model"
)

// DefaultLatch is the WS2812 reset time between frames.
const DefaultLatch = 300 * time.Microsecond

// Pixels is the host-side pixel store shared by the device backends.
// Indices past the end of the chain are ignored.
type Pixels struct {
	colors     []model.Color
	brightness uint8
	latch      time.Duration
	lastShow   time.Time
}

func NewPixels(n uint16) Pixels {
	return Pixels{
		colors:     make([]model.Color, n),
		brightness: 0xFF,
		latch:      DefaultLatch,
	}
}

func (p *Pixels) Begin() {
	p.Clear()
	p.lastShow = time.Time{}
}

func (p *Pixels) Len() uint16 { return uint16(len(p.colors)) }

func (p *Pixels) SetPixelColor(i uint16, c model.Color) {
	if int(i) >= len(p.colors) {
		return
	}
	p.colors[i] = c
}

func (p *Pixels) PixelColor(i uint16) model.Color {
	if int(i) >= len(p.colors) {
		return model.Black
	}
	return p.colors[i]
}

func (p *Pixels) Clear() {
	for i := range p.colors {
		p.colors[i] = model.Black
	}
}

func (p *Pixels) CanShow() bool {
	return p.lastShow.IsZero() || time.Since(p.lastShow) >= p.latch
}

// SetBrightness scales output linearly at Show time; stored pixels keep
// their full values.
func (p *Pixels) SetBrightness(level uint8) { p.brightness = level }

func (p *Pixels) Brightness() uint8 { return p.brightness }

// Output returns pixel i as it should be clocked out.
func (p *Pixels) Output(i uint16) model.Color {
	return p.PixelColor(i).Scale(p.brightness)
}

// SetLatch overrides the minimum gap between shows.
func (p *Pixels) SetLatch(d time.Duration) { p.latch = d }

// MarkShown starts the latch window.
func (p *Pixels) MarkShown() { p.lastShow = time.Now() }
