package engine

import (
	"errors"

	"github.com/coreman2200/funtimes-arcastrip/internal/clock"
	"github.com/coreman2200/funtimes-arcastrip/internal/strip"
)

// Model is the set of strips driven together. Its length is fixed at
// construction.
type Model struct {
	states []*strip.State
}

func NewModel(states ...*strip.State) *Model {
	return &Model{states: states}
}

func (m *Model) Len() int { return len(m.states) }

// State returns strip i, or nil when out of range.
func (m *Model) State(i int) *strip.State {
	if i < 0 || i >= len(m.states) {
		return nil
	}
	return m.states[i]
}

// Update applies a to every strip.
func (m *Model) Update(a strip.Action, now uint32) {
	for _, s := range m.states {
		s.ApplyAction(a, now)
	}
}

// Advance fires each strip's operation in order and returns the total pixel
// writes.
func (m *Model) Advance(c clock.Clock) int {
	writes := 0
	for _, s := range m.states {
		writes += s.Advance(c)
	}
	return writes
}

// Flush shows every dirty strip whose device is ready. All strips are
// attempted; the first error is returned.
func (m *Model) Flush() (int, error) {
	shown := 0
	var first error
	for _, s := range m.states {
		ok, err := s.Show()
		if err != nil {
			if first == nil {
				first = err
			}
			continue
		}
		if ok {
			shown++
		}
	}
	return shown, first
}

// Close releases every device.
func (m *Model) Close() error {
	var errs []error
	for _, s := range m.states {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
