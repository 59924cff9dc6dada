package strip

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/funtimes-arcastrip/internal/clock"
	"github.com/coreman2200/funtimes-arcastrip/internal/led/fake"
	"github.com/coreman2200/funtimes-arcastrip/model"
)

var rgbw = model.Pixels(model.Red, model.Green, model.Blue, model.White)

func newStrip(t *testing.T, n uint16) (*State, *fake.Device) {
	t.Helper()
	drv := &fake.Driver{}
	s, err := Open(drv, 18, n)
	require.NoError(t, err)
	require.Len(t, drv.Devices, 1)
	return s, drv.Devices[0]
}

func colors(b model.PixelBuffer) []model.Color {
	return b.Colors(make([]model.Color, model.MaxPixels))
}

func TestOneShotSet(t *testing.T) {
	s, dev := newStrip(t, 4)
	c := clock.NewManual(0)
	assert.Equal(t, Idle, s.Phase())

	s.ApplyAction(Run{F: model.Set{Color: model.Red}}, c.Now())
	assert.Equal(t, 4, s.Advance(c))

	want := []model.Color{model.Red, model.Red, model.Red, model.Red}
	assert.Equal(t, want, colors(s.Pixels()))
	assert.Equal(t, want, colors(s.Previous()))
	assert.Equal(t, []fake.Write{
		{Index: 0, Color: model.Red},
		{Index: 1, Color: model.Red},
		{Index: 2, Color: model.Red},
		{Index: 3, Color: model.Red},
	}, dev.Writes)

	// next tick refires the same function, with nothing to write
	dev.Reset()
	c.Set(1)
	assert.Equal(t, 0, s.Advance(c))
	assert.Empty(t, dev.Writes)
	assert.Equal(t, Animating, s.Phase())
}

func TestRepeatRotatesOnWindows(t *testing.T) {
	s, dev := newStrip(t, 4)
	c := clock.NewManual(0)
	s.Preload(rgbw)
	dev.Reset()

	s.ApplyAction(RepeatForever(model.Rotate{Step: -1}, 500), c.Now())
	assert.Equal(t, 0, s.Advance(c), "no firing on the install tick")

	c.Set(500)
	assert.Equal(t, 4, s.Advance(c))
	assert.Equal(t, []model.Color{model.White, model.Red, model.Green, model.Blue}, colors(s.Pixels()))

	c.Set(999)
	assert.Equal(t, 0, s.Advance(c))

	c.Set(1000)
	assert.Equal(t, 4, s.Advance(c))
	assert.Equal(t, []model.Color{model.Blue, model.White, model.Red, model.Green}, colors(s.Pixels()))
	assert.Len(t, dev.Writes, 8)
}

func TestRotateStepMovesTowardZero(t *testing.T) {
	s, _ := newStrip(t, 4)
	c := clock.NewManual(0)
	s.Preload(rgbw)

	s.ApplyAction(RepeatForever(model.Rotate{Step: 1}, 500), 0)
	c.Set(500)
	s.Advance(c)
	assert.Equal(t, []model.Color{model.Green, model.Blue, model.White, model.Red}, colors(s.Pixels()))
}

func TestBoundedRepeat(t *testing.T) {
	s, dev := newStrip(t, 4)
	c := clock.NewManual(0)
	s.Preload(rgbw)
	dev.Reset()

	s.ApplyAction(RepeatN(model.Rotate{Step: 1}, 100, 3), 0)
	var fired []uint32
	for now := uint32(0); now <= 600; now++ {
		c.Set(now)
		if s.Advance(c) > 0 {
			fired = append(fired, now)
		}
		if now == 400 {
			assert.Equal(t, Idle, s.Phase())
			_, active := s.Operation()
			assert.False(t, active)
		}
	}
	assert.Equal(t, []uint32{100, 200, 300}, fired)
	assert.Len(t, dev.Writes, 12)
}

func TestBoundedRepeatCountsDown(t *testing.T) {
	s, _ := newStrip(t, 4)
	c := clock.NewManual(0)
	s.ApplyAction(RepeatN(model.Set{Color: model.Blue}, 10, 2), 0)

	c.Set(10)
	s.Advance(c)
	op, active := s.Operation()
	require.True(t, active)
	assert.Equal(t, uint8(1), op.Remaining)
}

func TestRepeatZeroIsEndRepeat(t *testing.T) {
	s, _ := newStrip(t, 4)
	s.ApplyAction(Run{F: model.Set{Color: model.Red}}, 0)
	require.Equal(t, Animating, s.Phase())
	s.ApplyAction(RepeatN(model.Rotate{Step: 1}, 100, 0), 0)
	assert.Equal(t, Idle, s.Phase())
}

func TestAlternateThenEnd(t *testing.T) {
	s, dev := newStrip(t, 4)
	c := clock.NewManual(0)

	s.ApplyAction(Run{F: model.Alternate{C1: model.Red, C2: model.Blue}}, 0)
	assert.Equal(t, 4, s.Advance(c))
	assert.Equal(t, []model.Color{model.Red, model.Blue, model.Red, model.Blue}, colors(s.Pixels()))

	dev.Reset()
	c.Set(1)
	s.ApplyAction(EndRepeat{}, c.Now())
	assert.Equal(t, 0, s.Advance(c))
	assert.Equal(t, Idle, s.Phase())
	assert.Empty(t, dev.Writes)
	assert.Equal(t, []model.Color{model.Red, model.Blue, model.Red, model.Blue}, colors(s.Pixels()))
}

func TestEndRepeatStopsWrites(t *testing.T) {
	s, dev := newStrip(t, 8)
	c := clock.NewManual(0)
	s.Preload(model.Pixels(model.Red, model.Green))
	s.ApplyAction(RepeatForever(model.Rotate{Step: 1}, 1), 0)
	c.Set(1)
	require.Positive(t, s.Advance(c))

	s.ApplyAction(EndRepeat{}, c.Now())
	dev.Reset()
	for i := 0; i < 100; i++ {
		c.Advance(1)
		s.Advance(c)
	}
	assert.Empty(t, dev.Writes)
}

func TestReplaceOperation(t *testing.T) {
	s, _ := newStrip(t, 2)
	c := clock.NewManual(0)
	s.ApplyAction(RepeatForever(model.Rotate{Step: 1}, 100), 0)
	s.ApplyAction(Run{F: model.Set{Color: model.Cyan}}, 0)

	op, active := s.Operation()
	require.True(t, active)
	assert.Equal(t, model.Set{Color: model.Cyan}, op.Function)
	assert.Equal(t, uint32(0), op.IntervalMS)
	assert.Equal(t, 2, s.Advance(c))
}

func TestShowOnlyWhenDirty(t *testing.T) {
	s, dev := newStrip(t, 4)
	shown, err := s.Show()
	require.NoError(t, err)
	assert.False(t, shown, "nothing written yet")

	s.Preload(rgbw)
	assert.True(t, s.Dirty())

	dev.Blocked = true
	shown, err = s.Show()
	require.NoError(t, err)
	assert.False(t, shown)
	assert.True(t, s.Dirty(), "retried once the latch clears")

	dev.Blocked = false
	shown, err = s.Show()
	require.NoError(t, err)
	assert.True(t, shown)
	assert.False(t, s.Dirty())
	assert.Equal(t, 1, dev.Shows)
}

func TestShowError(t *testing.T) {
	s, dev := newStrip(t, 1)
	s.Preload(model.Pixels(model.Red))
	dev.Err = errors.New("bus fault")
	_, err := s.Show()
	assert.ErrorIs(t, err, dev.Err)
	assert.True(t, s.Dirty())
}

func TestOpenRejectsLongStrips(t *testing.T) {
	_, err := Open(&fake.Driver{}, 18, model.MaxPixels+1)
	assert.Error(t, err)
}

func TestPreloadFitsStrip(t *testing.T) {
	s, dev := newStrip(t, 3)
	assert.Equal(t, 3, s.Preload(rgbw))
	assert.Equal(t, []model.Color{model.Red, model.Green, model.Blue}, colors(s.Pixels()))
	assert.Equal(t, model.Blue, dev.PixelColor(2))

	dev.Reset()
	assert.Equal(t, 1, s.Preload(model.Pixels(model.Red, model.Green)), "tail padded with black")
	assert.Equal(t, []fake.Write{{Index: 2, Color: model.Black}}, dev.Writes)
}

func TestCloseReleasesDevice(t *testing.T) {
	s, dev := newStrip(t, 1)
	require.NoError(t, s.Close())
	assert.True(t, dev.Closed)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "run set(#00ff00)", Run{F: model.Set{Color: model.Green}}.String())
	assert.Equal(t, "repeat rotate(1) every 500ms", RepeatForever(model.Rotate{Step: 1}, 500).String())
	assert.Equal(t, "repeat rotate(1) every 100ms x3", RepeatN(model.Rotate{Step: 1}, 100, 3).String())
	assert.Equal(t, "end_repeat", EndRepeat{}.String())
}
