//go:build !tinygo

package led

import (
	"fmt"
	"image"
	"io"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/extra/devices/screen"
)

// DefaultFreq is the SPI clock used to bit-bang an 800kHz NRZ chain.
const DefaultFreq = 2500 * physic.KiloHertz

// DrawerDevice pushes frames through a periph display.Drawer: an nrzled
// chain on real hardware, or an ANSI console preview.
type DrawerDevice struct {
	Pixels
	drawer display.Drawer
	img    *image.NRGBA
	port   io.Closer
	after  func()
	closed bool
}

func NewDrawerDevice(d display.Drawer, n uint16) *DrawerDevice {
	return &DrawerDevice{
		Pixels: NewPixels(n),
		drawer: d,
		img:    image.NewNRGBA(image.Rect(0, 0, int(n), 1)),
	}
}

func (d *DrawerDevice) Show() error {
	if d.closed {
		return ErrClosed
	}
	for i := uint16(0); i < d.Len(); i++ {
		d.img.SetNRGBA(int(i), 0, d.Output(i).NRGBA())
	}
	if err := d.drawer.Draw(d.drawer.Bounds(), d.img, image.Point{}); err != nil {
		return fmt.Errorf("draw %s: %w", d.drawer, err)
	}
	d.MarkShown()
	if d.after != nil {
		d.after()
	}
	return nil
}

// Close blanks the chain and releases the port.
func (d *DrawerDevice) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	err := d.drawer.Halt()
	if d.port != nil {
		if cerr := d.port.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// NewSPIDevice drives n WS2812 pixels over an SPI port.
func NewSPIDevice(p spi.Port, n uint16, freq physic.Frequency) (*DrawerDevice, error) {
	if freq == 0 {
		freq = DefaultFreq
	}
	d, err := nrzled.NewSPI(p, &nrzled.Opts{
		NumPixels: int(n),
		Channels:  3,
		Freq:      freq,
	})
	if err != nil {
		return nil, fmt.Errorf("nrzled: %w", err)
	}
	return NewDrawerDevice(d, n), nil
}

// SPIDriver maps each strip's data pin to an SPI port from the periph
// registry. Pins without an entry use the first registered port.
type SPIDriver struct {
	Buses map[uint16]string
	Freq  physic.Frequency
}

func (s *SPIDriver) Open(pin uint16, n uint16) (Device, error) {
	bus := s.Buses[pin]
	p, err := spireg.Open(bus)
	if err != nil {
		return nil, fmt.Errorf("open spi %q for pin %d: %w", bus, pin, err)
	}
	dev, err := NewSPIDevice(p, n, s.Freq)
	if err != nil {
		_ = p.Close()
		return nil, err
	}
	dev.port = p
	return dev, nil
}

// ConsoleDriver previews each strip as a row of ANSI colored cells.
type ConsoleDriver struct{}

func (ConsoleDriver) Open(pin uint16, n uint16) (Device, error) {
	dev := NewDrawerDevice(screen.New(int(n)), n)
	dev.after = func() { fmt.Printf("\n") }
	return dev, nil
}
