// Package strip holds the per-strip animation state: the action algebra,
// the operation scheduled by those actions, and the differential renderer
// that pushes frames to a led.Device.
package strip

import (
	"fmt"

	"github.com/coreman2200/funtimes-arcastrip/internal/clock"
	"github.com/coreman2200/funtimes-arcastrip/model"
)

// Action is a command applied to a strip. The set is closed: Run, Repeat and
// EndRepeat. Every variant is comparable.
type Action interface {
	isAction()
}

// Run applies F on every tick until replaced or ended.
type Run struct {
	F model.Function
}

// Repeat applies F once per IntervalMS window. When Bounded, it stops after
// Remaining firings.
type Repeat struct {
	F          model.Function
	IntervalMS uint32
	Remaining  uint8
	Bounded    bool
}

// EndRepeat clears whatever operation is active.
type EndRepeat struct{}

func (Run) isAction()       {}
func (Repeat) isAction()    {}
func (EndRepeat) isAction() {}

// RepeatN fires f n times, one per interval.
func RepeatN(f model.Function, intervalMS uint32, n uint8) Repeat {
	return Repeat{F: f, IntervalMS: intervalMS, Remaining: n, Bounded: true}
}

// RepeatForever fires f once per interval until an EndRepeat.
func RepeatForever(f model.Function, intervalMS uint32) Repeat {
	return Repeat{F: f, IntervalMS: intervalMS}
}

// Operation is the function currently scheduled on a strip.
type Operation struct {
	Function   model.Function
	IntervalMS uint32
	Timer      clock.Timer
	Remaining  uint8
	Bounded    bool
}

// Phase is the coarse state of a strip.
type Phase string

const (
	Idle      Phase = "idle"
	Animating Phase = "animating"
)

func (r Run) String() string { return fmt.Sprintf("run %v", r.F) }

func (r Repeat) String() string {
	if r.Bounded {
		return fmt.Sprintf("repeat %v every %dms x%d", r.F, r.IntervalMS, r.Remaining)
	}
	return fmt.Sprintf("repeat %v every %dms", r.F, r.IntervalMS)
}

func (EndRepeat) String() string { return "end_repeat" }
