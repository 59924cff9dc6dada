package strip

import (
	"github.com/coreman2200/funtimes-arcastrip/internal/led"
	"github.com/coreman2200/funtimes-arcastrip/internal/signal"
	"github.com/coreman2200/funtimes-arcastrip/model"
)

// Changes is the per-pixel difference between two frames: entry i holds the
// new color iff it differs from the current one.
type Changes struct {
	entries [model.MaxPixels]signal.Option[model.Color]
	n       uint16
}

// Diff compares cur against next over next's length.
func Diff(cur, next *model.PixelBuffer) Changes {
	var ch Changes
	ch.n = next.Len()
	for i := uint16(0); i < ch.n; i++ {
		if c := next.At(i); c != cur.At(i) {
			ch.entries[i] = signal.Some(c)
		}
	}
	return ch
}

func (ch *Changes) Len() uint16 { return ch.n }

// At reports the new color for pixel i, if it changed.
func (ch *Changes) At(i uint16) (model.Color, bool) {
	if i >= ch.n {
		return model.Black, false
	}
	return ch.entries[i].Get()
}

// Count is the number of changed pixels.
func (ch *Changes) Count() int {
	n := 0
	for i := uint16(0); i < ch.n; i++ {
		if ch.entries[i].IsSome() {
			n++
		}
	}
	return n
}

// Each calls fn for every changed pixel in index order.
func (ch *Changes) Each(fn func(i uint16, c model.Color)) {
	for i := uint16(0); i < ch.n; i++ {
		if c, ok := ch.entries[i].Get(); ok {
			fn(i, c)
		}
	}
}

// UpdatePixels writes the pixels that differ between cur and next to dev and
// returns the number of writes. It never calls Show.
func UpdatePixels(dev led.Device, cur, next *model.PixelBuffer) int {
	ch := Diff(cur, next)
	writes := 0
	ch.Each(func(i uint16, c model.Color) {
		dev.SetPixelColor(i, c)
		writes++
	})
	return writes
}
