package strip

import (
	"fmt"

	"github.com/coreman2200/funtimes-arcastrip/internal/clock"
	"github.com/coreman2200/funtimes-arcastrip/internal/led"
	"github.com/coreman2200/funtimes-arcastrip/model"
)

// State is one strip: its device, the active operation and the last two
// frames. The device is owned by the State and released by Close.
type State struct {
	dev      led.Device
	pin      uint16
	op       Operation
	active   bool
	pixels   model.PixelBuffer
	previous model.PixelBuffer
	dirty    bool
}

// Open asks drv for the device on pin and wraps it in an idle State.
func Open(drv led.Driver, pin, n uint16) (*State, error) {
	if n > model.MaxPixels {
		return nil, fmt.Errorf("strip on pin %d: %d pixels exceeds %d", pin, n, model.MaxPixels)
	}
	dev, err := drv.Open(pin, n)
	if err != nil {
		return nil, fmt.Errorf("strip on pin %d: %w", pin, err)
	}
	return NewState(dev, pin), nil
}

// NewState starts dev and returns an idle, all-black State for it.
func NewState(dev led.Device, pin uint16) *State {
	dev.Begin()
	n := dev.Len()
	return &State{
		dev:      dev,
		pin:      pin,
		pixels:   model.NewPixelBuffer(n),
		previous: model.NewPixelBuffer(n),
	}
}

func (s *State) Pin() uint16        { return s.pin }
func (s *State) Len() uint16        { return s.pixels.Len() }
func (s *State) Device() led.Device { return s.dev }

// Pixels returns a copy of the current frame.
func (s *State) Pixels() model.PixelBuffer { return s.pixels }

// Previous returns a copy of the last rendered frame.
func (s *State) Previous() model.PixelBuffer { return s.previous }

// Operation returns the active operation, if any.
func (s *State) Operation() (Operation, bool) { return s.op, s.active }

func (s *State) Phase() Phase {
	if s.active {
		return Animating
	}
	return Idle
}

// Dirty reports whether pixels were written since the last Show.
func (s *State) Dirty() bool { return s.dirty }

// ApplyAction installs, replaces or clears the strip's operation. A Run
// fires on the next evaluation; a Repeat waits for the window after now.
func (s *State) ApplyAction(a Action, now uint32) {
	switch a := a.(type) {
	case Run:
		s.op = Operation{Function: a.F}
		s.active = true
	case Repeat:
		if a.Bounded && a.Remaining == 0 {
			s.clear()
			return
		}
		s.op = Operation{
			Function:   a.F,
			IntervalMS: a.IntervalMS,
			Remaining:  a.Remaining,
			Bounded:    a.Bounded,
		}
		s.op.Timer.Reseed(now)
		s.active = true
	case EndRepeat:
		s.clear()
	}
}

func (s *State) clear() {
	s.op = Operation{}
	s.active = false
}

// Advance fires the active operation if its timer allows and returns the
// number of pixel writes issued.
func (s *State) Advance(c clock.Clock) int {
	if !s.active {
		return 0
	}
	if clock.Every(c, s.op.IntervalMS, &s.op.Timer).IsNothing() {
		return 0
	}
	next := model.Apply(s.op.Function, s.previous)
	s.pixels = next
	writes := s.render()
	if s.op.Bounded {
		s.op.Remaining--
		if s.op.Remaining == 0 {
			s.clear()
		}
	}
	return writes
}

// render pushes the difference between previous and pixels to the device.
func (s *State) render() int {
	writes := UpdatePixels(s.dev, &s.previous, &s.pixels)
	s.previous = s.pixels
	if writes > 0 {
		s.dirty = true
	}
	return writes
}

// Preload replaces the current frame with b, truncated or padded with black
// to the strip length, and renders it.
func (s *State) Preload(b model.PixelBuffer) int {
	next := model.NewPixelBuffer(s.Len())
	for i := uint16(0); i < next.Len(); i++ {
		next.Put(i, b.At(i))
	}
	s.pixels = next
	return s.render()
}

// Show latches the frame if pixels changed and the device is ready. It
// reports whether Show was called; a not-ready device is retried later.
func (s *State) Show() (bool, error) {
	if !s.dirty || !s.dev.CanShow() {
		return false, nil
	}
	if err := s.dev.Show(); err != nil {
		return false, fmt.Errorf("show pin %d: %w", s.pin, err)
	}
	s.dirty = false
	return true, nil
}

// Close releases the device.
func (s *State) Close() error {
	return s.dev.Close()
}
