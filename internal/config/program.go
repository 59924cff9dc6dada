package config

import (
	"fmt"

	"github.com/coreman2200/funtimes-arcastrip/internal/strip"
	"github.com/coreman2200/funtimes-arcastrip/model"
)

// Function is one of rotate, set or alternate.
type Function struct {
	Rotate    *int16   `yaml:"rotate,omitempty"`
	Set       string   `yaml:"set,omitempty"`
	Alternate []string `yaml:"alternate,omitempty"`
}

type RunStep struct {
	Function Function `yaml:"function"`
}

type RepeatStep struct {
	Function   Function `yaml:"function"`
	IntervalMS uint32   `yaml:"interval_ms"`
	Times      *uint8   `yaml:"times,omitempty"` // nil repeats forever
}

// Step is one entry of the action program. Exactly one field is set.
type Step struct {
	Run       *RunStep    `yaml:"run,omitempty"`
	Repeat    *RepeatStep `yaml:"repeat,omitempty"`
	EndRepeat bool        `yaml:"end_repeat,omitempty"`
}

// Program decodes the action list in order.
func (c *Config) Program() ([]strip.Action, error) {
	out := make([]strip.Action, 0, len(c.Actions))
	for i, st := range c.Actions {
		a, err := st.Action()
		if err != nil {
			return nil, fmt.Errorf("config: action %d: %w", i, err)
		}
		out = append(out, a)
	}
	return out, nil
}

func (st Step) Action() (strip.Action, error) {
	set := 0
	if st.Run != nil {
		set++
	}
	if st.Repeat != nil {
		set++
	}
	if st.EndRepeat {
		set++
	}
	if set != 1 {
		return nil, fmt.Errorf("want exactly one of run, repeat, end_repeat")
	}

	switch {
	case st.Run != nil:
		f, err := st.Run.Function.Decode()
		if err != nil {
			return nil, err
		}
		return strip.Run{F: f}, nil
	case st.Repeat != nil:
		f, err := st.Repeat.Function.Decode()
		if err != nil {
			return nil, err
		}
		if st.Repeat.Times != nil {
			return strip.RepeatN(f, st.Repeat.IntervalMS, *st.Repeat.Times), nil
		}
		return strip.RepeatForever(f, st.Repeat.IntervalMS), nil
	default:
		return strip.EndRepeat{}, nil
	}
}

func (fn Function) Decode() (model.Function, error) {
	set := 0
	if fn.Rotate != nil {
		set++
	}
	if fn.Set != "" {
		set++
	}
	if fn.Alternate != nil {
		set++
	}
	if set != 1 {
		return nil, fmt.Errorf("function: want exactly one of rotate, set, alternate")
	}

	switch {
	case fn.Rotate != nil:
		return model.Rotate{Step: *fn.Rotate}, nil
	case fn.Set != "":
		c, err := model.ParseColor(fn.Set)
		if err != nil {
			return nil, err
		}
		return model.Set{Color: c}, nil
	default:
		if len(fn.Alternate) != 2 {
			return nil, fmt.Errorf("alternate: want 2 colors, got %d", len(fn.Alternate))
		}
		c1, err := model.ParseColor(fn.Alternate[0])
		if err != nil {
			return nil, err
		}
		c2, err := model.ParseColor(fn.Alternate[1])
		if err != nil {
			return nil, err
		}
		return model.Alternate{C1: c1, C2: c2}, nil
	}
}
