package engine

import (
	"github.com/coreman2200/funtimes-arcastrip/internal/input"
	"github.com/coreman2200/funtimes-arcastrip/internal/signal"
	"github.com/coreman2200/funtimes-arcastrip/internal/strip"
)

// Source yields at most one action per tick.
type Source func(now uint32) signal.Signal[strip.Action]

// Once emits a on the first tick and never again.
func Once(a strip.Action) Source {
	prev := signal.None[strip.Action]()
	return func(uint32) signal.Signal[strip.Action] {
		return signal.Unmeta(signal.Meta(signal.DropRepeats(&prev, signal.Constant(a))))
	}
}

// Cycle steps through actions on each press of b. actions[0] is taken as
// already applied, so the first press emits actions[1].
func Cycle(b input.Button, actions ...strip.Action) Source {
	if len(actions) == 0 {
		return func(uint32) signal.Signal[strip.Action] { return signal.Nothing[strip.Action]() }
	}
	last := signal.None[bool]()
	idx := 0
	step := func(_ bool, i int) int { return (i + 1) % len(actions) }
	pick := func(i int) strip.Action { return actions[i] }
	return func(uint32) signal.Signal[strip.Action] {
		presses := input.Presses(&last, input.Level(b))
		return signal.Map(pick, signal.FoldP(step, &idx, presses))
	}
}

// Merged polls every source each tick and keeps the first action. Later
// sources still advance their state when an earlier one fires.
func Merged(sources ...Source) Source {
	out := make([]signal.Signal[strip.Action], len(sources))
	return func(now uint32) signal.Signal[strip.Action] {
		for i, src := range sources {
			out[i] = src(now)
		}
		return signal.MergeMany(out...)
	}
}
