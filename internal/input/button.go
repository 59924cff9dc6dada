// Package input reads physical controls and exposes them as per-tick signals.
package input

import (
	"fmt"

	"github.com/stianeikeland/go-rpio/v4"

	"github.com/coreman2200/funtimes-arcastrip/internal/signal"
)

// Button is a momentary switch.
type Button interface {
	Pressed() bool
}

// Func adapts a plain function to a Button.
type Func func() bool

func (f Func) Pressed() bool { return f() }

// GPIOButton is a switch between a BCM pin and ground, read with the
// internal pull-up enabled.
type GPIOButton struct {
	pin rpio.Pin
}

// OpenGPIO maps the GPIO registers and configures pin as a pulled-up input.
func OpenGPIO(pin uint8) (*GPIOButton, error) {
	if err := rpio.Open(); err != nil {
		return nil, fmt.Errorf("open gpio: %w", err)
	}
	p := rpio.Pin(pin)
	p.Input()
	p.PullUp()
	return &GPIOButton{pin: p}, nil
}

// Pressed is true while the pin is pulled low.
func (b *GPIOButton) Pressed() bool { return b.pin.Read() == rpio.Low }

func (b *GPIOButton) Close() error { return rpio.Close() }

// Level samples b once. A nil button never fires.
func Level(b Button) signal.Signal[bool] {
	if b == nil {
		return signal.Nothing[bool]()
	}
	return signal.Just(b.Pressed())
}

// Presses turns a level signal into one event per press. prev holds the
// last level seen.
func Presses(prev *signal.Option[bool], level signal.Signal[bool]) signal.Signal[bool] {
	// Filter drops matching values, so this keeps only rising edges.
	return signal.Filter(released, signal.DropRepeats(prev, level))
}

func released(pressed bool) bool { return !pressed }
