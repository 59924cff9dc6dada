//go:build tinygo

package led

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ws2812"
)

// WS2812Driver bit-bangs each strip from a microcontroller GPIO.
type WS2812Driver struct{}

func (WS2812Driver) Open(pin uint16, n uint16) (Device, error) {
	p := machine.Pin(pin)
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &WS2812Device{
		Pixels: NewPixels(n),
		dev:    ws2812.New(p),
		buf:    make([]color.RGBA, n),
	}, nil
}

type WS2812Device struct {
	Pixels
	dev ws2812.Device
	buf []color.RGBA
}

func (d *WS2812Device) Show() error {
	for i := range d.buf {
		c := d.Output(uint16(i))
		d.buf[i] = color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
	}
	if err := d.dev.WriteColors(d.buf); err != nil {
		return err
	}
	d.MarkShown()
	return nil
}

func (d *WS2812Device) Close() error {
	d.Clear()
	return d.Show()
}
