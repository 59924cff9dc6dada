package fake

import (
	"fmt"
	"io"

	"github.com/coreman2200/funtimes-arcastrip/internal/led"
	"github.com/coreman2200/funtimes-arcastrip/model"
)

// Write is one SetPixelColor call.
type Write struct {
	Index uint16
	Color model.Color
}

// Driver hands out recording devices, useful for headless runs and tests.
type Driver struct {
	Out     io.Writer
	Devices []*Device
}

func (d *Driver) Open(pin uint16, n uint16) (led.Device, error) {
	dev := NewDevice(pin, n)
	dev.Out = d.Out
	d.Devices = append(d.Devices, dev)
	return dev, nil
}

// Device records every pixel write and show.
type Device struct {
	led.Pixels
	Pin     uint16
	Out     io.Writer
	Writes  []Write
	Shows   int
	Blocked bool
	Closed  bool
	Err     error
}

func NewDevice(pin uint16, n uint16) *Device {
	return &Device{Pin: pin, Pixels: led.NewPixels(n)}
}

func (d *Device) SetPixelColor(i uint16, c model.Color) {
	d.Writes = append(d.Writes, Write{Index: i, Color: c})
	d.Pixels.SetPixelColor(i, c)
}

// CanShow is false while Blocked is set.
func (d *Device) CanShow() bool { return !d.Blocked }

func (d *Device) Show() error {
	if d.Closed {
		return led.ErrClosed
	}
	if d.Err != nil {
		return d.Err
	}
	d.Shows++
	if d.Out != nil {
		d.summary()
	}
	return nil
}

func (d *Device) Close() error {
	d.Closed = true
	return nil
}

// Reset forgets recorded writes and shows.
func (d *Device) Reset() {
	d.Writes = d.Writes[:0]
	d.Shows = 0
}

// Frame returns the pixels as last written.
func (d *Device) Frame() []model.Color {
	out := make([]model.Color, d.Len())
	for i := range out {
		out[i] = d.PixelColor(uint16(i))
	}
	return out
}

func (d *Device) summary() {
	var r, g, b float64
	n := float64(d.Len())
	for i := uint16(0); i < d.Len(); i++ {
		c := d.Output(i)
		r += float64(c.R)
		g += float64(c.G)
		b += float64(c.B)
	}
	if n == 0 {
		n = 1
	}
	fmt.Fprintf(d.Out, "[pin %02d show %04d] writes=%d avg=(%.0f,%.0f,%.0f) first=%s\n",
		d.Pin, d.Shows, len(d.Writes), r/n, g/n, b/n, d.Output(0))
}
