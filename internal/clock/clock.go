// Package clock provides the monotonic millisecond clock the engine runs on
// and the windowed periodic pulse built on top of it.
package clock

import (
	"sync/atomic"
	"time"
)

// Clock is a monotonic millisecond source. Values wrap at 2^32.
type Clock interface {
	Now() uint32
	Wait(ms uint32)
}

// System counts milliseconds since it was created.
type System struct {
	start time.Time
}

func NewSystem() *System { return &System{start: time.Now()} }

func (s *System) Now() uint32 { return uint32(time.Since(s.start).Milliseconds()) }

// Wait blocks for ms milliseconds. Not for use on the tick path.
func (s *System) Wait(ms uint32) { time.Sleep(time.Duration(ms) * time.Millisecond) }

// Manual is a clock that only moves when told to. Safe for use from a test
// goroutine while a loop reads it.
type Manual struct {
	now atomic.Uint32
}

func NewManual(start uint32) *Manual {
	m := &Manual{}
	m.now.Store(start)
	return m
}

func (m *Manual) Now() uint32 { return m.now.Load() }

// Wait advances the clock instead of sleeping.
func (m *Manual) Wait(ms uint32) { m.now.Add(ms) }

func (m *Manual) Set(ms uint32) { m.now.Store(ms) }

func (m *Manual) Advance(ms uint32) { m.now.Add(ms) }
