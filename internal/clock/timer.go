package clock

import "github.com/coreman2200/funtimes-arcastrip/internal/signal"

// Timer remembers when a periodic pulse last fired. The zero Timer has
// never fired.
type Timer struct {
	LastPulseMS uint32
	Pulsed      bool
}

// Reseed marks the timer as having fired at now, so the next pulse lands on
// the following window boundary.
func (t *Timer) Reseed(now uint32) {
	t.LastPulseMS = now
	t.Pulsed = true
}

// Window returns the start of the interval window containing now. An
// interval of zero makes every millisecond its own window.
func Window(now, intervalMS uint32) uint32 {
	if intervalMS == 0 {
		return now
	}
	return (now / intervalMS) * intervalMS
}

// Every fires at most once per interval window. Windows are aligned to
// multiples of intervalMS, so pulses don't drift with loop jitter.
func Every(c Clock, intervalMS uint32, t *Timer) signal.Signal[uint32] {
	now := c.Now()
	if t.Pulsed && now < t.LastPulseMS {
		// clock wrapped
		t.Pulsed = false
	}
	if t.Pulsed && t.LastPulseMS >= Window(now, intervalMS) {
		return signal.Nothing[uint32]()
	}
	t.LastPulseMS = now
	t.Pulsed = true
	return signal.Just(now)
}
