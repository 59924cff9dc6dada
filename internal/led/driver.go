package led

import (
	"errors"

	"github.com/coreman2200/funtimes-arcastrip/model"
)

var ErrClosed = errors.New("led: device closed")

// Driver opens the device behind one strip's data pin.
type Driver interface {
	Open(pin uint16, n uint16) (Device, error)
}

// Device is an LED chain. Pixel writes land in a local buffer; Show clocks
// the buffer out to the LEDs.
type Device interface {
	Begin()
	Len() uint16
	SetPixelColor(i uint16, c model.Color)
	PixelColor(i uint16) model.Color
	Clear()
	// CanShow reports whether the chain has latched the previous frame.
	CanShow() bool
	Show() error
	SetBrightness(level uint8)
	Brightness() uint8
	Close() error
}
