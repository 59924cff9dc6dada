// Package loop drives an engine from a wall-clock ticker until it is
// cancelled or the process is signalled.
package loop

import (
	"context"
	"errors"
	"os"
	ossignal "os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/coreman2200/funtimes-arcastrip/internal/engine"
	"github.com/coreman2200/funtimes-arcastrip/internal/led"
	"github.com/coreman2200/funtimes-arcastrip/internal/signal"
)

const DefaultTick = 10 * time.Millisecond

// StatsEvery is how many ticks pass between debug stat lines.
const StatsEvery = 1000

// Stepper runs one tick.
type Stepper interface {
	Loop() (signal.Signal[*engine.Model], error)
}

type Looper struct {
	step Stepper
	tick time.Duration
	log  zerolog.Logger
	sigs chan os.Signal

	// Stats, when set, is logged every StatsEvery ticks.
	Stats func() engine.Stats
}

func New(step Stepper, tick time.Duration, log zerolog.Logger) *Looper {
	if tick <= 0 {
		tick = DefaultTick
	}
	return &Looper{
		step: step,
		tick: tick,
		log:  log,
		sigs: make(chan os.Signal, 1),
	}
}

// Run ticks until ctx is done, SIGINT/SIGTERM arrives, or a device is
// closed underneath the engine. Other tick errors are logged and the loop
// keeps going.
func (l *Looper) Run(ctx context.Context) error {
	ossignal.Notify(l.sigs, syscall.SIGINT, syscall.SIGTERM)
	defer ossignal.Stop(l.sigs)

	ticker := time.NewTicker(l.tick)
	defer ticker.Stop()

	var n uint64
	for {
		select {
		case <-ticker.C:
			n++
			if _, err := l.step.Loop(); err != nil {
				if errors.Is(err, led.ErrClosed) {
					return err
				}
				l.log.Warn().Err(err).Uint64("tick", n).Msg("tick failed")
			}
			if l.Stats != nil && n%StatsEvery == 0 {
				s := l.Stats()
				l.log.Debug().
					Uint64("ticks", s.Ticks).
					Uint64("actions", s.Actions).
					Uint64("writes", s.Writes).
					Uint64("shows", s.Shows).
					Msg("engine stats")
			}

		case s := <-l.sigs:
			l.log.Info().Str("signal", s.String()).Msg("shutting down")
			return nil

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
