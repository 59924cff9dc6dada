//go:build tinygo

// Command arcastrip-mcu runs a fixed program on a microcontroller, one strip
// per data pin.
package main

import (
	"time"

	"github.com/coreman2200/funtimes-arcastrip/internal/clock"
	"github.com/coreman2200/funtimes-arcastrip/internal/engine"
	"github.com/coreman2200/funtimes-arcastrip/internal/led"
	"github.com/coreman2200/funtimes-arcastrip/internal/strip"
	"github.com/coreman2200/funtimes-arcastrip/model"
)

const (
	dataPin = 15
	pixels  = 30
	tick    = 5 * time.Millisecond
)

func main() {
	initial := model.Pixels(model.Red, model.Green, model.Blue, model.White)
	e, err := engine.Setup(engine.Options{
		Clock:  clock.NewSystem(),
		Driver: led.WS2812Driver{},
		Strips: []engine.StripSpec{{Pin: dataPin, Pixels: pixels, Initial: &initial}},
		Source: engine.Once(strip.RepeatForever(model.Rotate{Step: 1}, 100)),
	})
	if err != nil {
		println("setup:", err.Error())
		return
	}
	for {
		if _, err := e.Loop(); err != nil {
			println("tick:", err.Error())
		}
		time.Sleep(tick)
	}
}
