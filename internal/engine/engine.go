// Package engine ties the clock, the action source and the strips together
// and runs one tick per Loop call.
package engine

import (
	"errors"
	"fmt"

	"github.com/coreman2200/funtimes-arcastrip/internal/clock"
	"github.com/coreman2200/funtimes-arcastrip/internal/led"
	"github.com/coreman2200/funtimes-arcastrip/internal/signal"
	"github.com/coreman2200/funtimes-arcastrip/internal/strip"
	"github.com/coreman2200/funtimes-arcastrip/model"
)

var ErrNoStrips = errors.New("engine: no strips configured")

// HistorySize is how many recent actions the engine remembers.
const HistorySize = 16

// StripSpec describes one strip to open at Setup.
type StripSpec struct {
	Pin    uint16
	Pixels uint16
	// Initial is pushed to the strip before the first tick, if set.
	Initial *model.PixelBuffer
}

type Options struct {
	Clock  clock.Clock
	Driver led.Driver
	Strips []StripSpec
	Source Source
	// Brightness is applied to every device; 0 keeps the device default.
	Brightness uint8
}

// Stats are running totals since Setup.
type Stats struct {
	Ticks   uint64
	Actions uint64
	Writes  uint64
	Shows   uint64
}

// Engine owns everything that persists across ticks.
type Engine struct {
	clock   clock.Clock
	model   *Model
	source  Source
	history *signal.Recorder[strip.Action]
	stats   Stats
}

// Setup opens every strip and returns an engine ready to Loop. On failure
// the strips opened so far are closed again.
func Setup(opts Options) (*Engine, error) {
	if len(opts.Strips) == 0 {
		return nil, ErrNoStrips
	}
	if opts.Driver == nil {
		return nil, errors.New("engine: no driver")
	}
	c := opts.Clock
	if c == nil {
		c = clock.NewSystem()
	}

	states := make([]*strip.State, 0, len(opts.Strips))
	for _, spec := range opts.Strips {
		s, err := strip.Open(opts.Driver, spec.Pin, spec.Pixels)
		if err != nil {
			_ = NewModel(states...).Close()
			return nil, fmt.Errorf("setup: %w", err)
		}
		if opts.Brightness != 0 {
			s.Device().SetBrightness(opts.Brightness)
		}
		if spec.Initial != nil {
			s.Preload(*spec.Initial)
		}
		states = append(states, s)
	}

	return &Engine{
		clock:   c,
		model:   NewModel(states...),
		source:  opts.Source,
		history: signal.NewRecorder[strip.Action](HistorySize),
	}, nil
}

// Loop runs one tick: the pending action (if any) is applied to every strip,
// operations fire, changed pixels are written and dirty strips are shown.
func (e *Engine) Loop() (signal.Signal[*Model], error) {
	now := e.clock.Now()
	e.stats.Ticks++

	actions := signal.Nothing[strip.Action]()
	if e.source != nil {
		actions = e.source(now)
	}
	signal.Record(e.history, actions)
	signal.Sink(func(a strip.Action) {
		e.model.Update(a, now)
		e.stats.Actions++
	}, actions)

	signal.Sink(func(uint32) {
		e.stats.Writes += uint64(e.model.Advance(e.clock))
	}, signal.Constant(now))

	shown, err := e.model.Flush()
	e.stats.Shows += uint64(shown)
	if err != nil {
		return signal.Nothing[*Model](), err
	}
	return signal.Just(e.model), nil
}

func (e *Engine) Model() *Model { return e.model }

func (e *Engine) Clock() clock.Clock { return e.clock }

func (e *Engine) Stats() Stats { return e.stats }

// History returns the most recent actions, newest first.
func (e *Engine) History() []strip.Action {
	return append([]strip.Action(nil), e.history.Items()...)
}

// Close releases the devices.
func (e *Engine) Close() error { return e.model.Close() }
