// Package config loads the strip layout and action program from YAML, with
// environment and flag overrides on top.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"

	"github.com/coreman2200/funtimes-arcastrip/model"
)

var ErrNoStrips = errors.New("config: no strips")

const (
	DriverSim     = "sim"
	DriverSPI     = "spi"
	DriverConsole = "console"
)

type Strip struct {
	Pin    uint16 `yaml:"pin"`
	Pixels uint16 `yaml:"pixels"`
	SPI    string `yaml:"spi,omitempty"` // periph spireg name, "" = first port
	// Initial colors pushed before the first tick.
	Initial []string `yaml:"initial,omitempty"`
}

type Config struct {
	Driver     string `yaml:"driver"` // "sim" | "spi" | "console"
	TickMS     int    `yaml:"tick_ms"`
	Brightness uint8  `yaml:"brightness"`
	ButtonPin  uint8  `yaml:"button_pin"` // BCM, 0 = none
	SPIFreqKHz int    `yaml:"spi_freq_khz,omitempty"`

	Strips  []Strip `yaml:"strips"`
	Actions []Step  `yaml:"actions"`
}

// Env holds the ARCASTRIP_* overrides. Zero values mean unset.
type Env struct {
	Config     string `env:"ARCASTRIP_CONFIG,default=arcastrip.yaml"`
	Driver     string `env:"ARCASTRIP_DRIVER"`
	TickMS     int    `env:"ARCASTRIP_TICK_MS"`
	Brightness uint8  `env:"ARCASTRIP_BRIGHTNESS"`
	ButtonPin  uint8  `env:"ARCASTRIP_BUTTON_PIN"`
}

// Flags are command line overrides. Zero values mean unset.
type Flags struct {
	Driver string
	TickMS int
}

// Default is a single 60 pixel strip on BCM 18, rotating twice a second.
func Default() *Config {
	one := int16(1)
	return &Config{
		Driver:     DriverSim,
		TickMS:     10,
		Brightness: 0xFF,
		Strips:     []Strip{{Pin: 18, Pixels: 60, Initial: []string{"red", "green", "blue", "white"}}},
		Actions: []Step{
			{Repeat: &RepeatStep{Function: Function{Rotate: &one}, IntervalMS: 500}},
		},
	}
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	c.Strips, c.Actions = nil, nil
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// LoadEnv reads the ARCASTRIP_* variables through l; nil means the process
// environment.
func LoadEnv(ctx context.Context, l envconfig.Lookuper) (Env, error) {
	var e Env
	if l == nil {
		l = envconfig.OsLookuper()
	}
	if err := envconfig.ProcessWith(ctx, &e, l); err != nil {
		return Env{}, fmt.Errorf("env: %w", err)
	}
	return e, nil
}

// Resolve layers env and then flags over c and returns the result. c is not
// modified.
func Resolve(c *Config, env Env, flags Flags) *Config {
	out := *c
	if env.Driver != "" {
		out.Driver = env.Driver
	}
	if env.TickMS > 0 {
		out.TickMS = env.TickMS
	}
	if env.Brightness > 0 {
		out.Brightness = env.Brightness
	}
	if env.ButtonPin > 0 {
		out.ButtonPin = env.ButtonPin
	}
	if flags.Driver != "" {
		out.Driver = flags.Driver
	}
	if flags.TickMS > 0 {
		out.TickMS = flags.TickMS
	}
	return &out
}

// Validate checks the layout and decodes the program once so errors show up
// before any hardware is touched.
func (c *Config) Validate() error {
	if len(c.Strips) == 0 {
		return ErrNoStrips
	}
	switch c.Driver {
	case DriverSim, DriverSPI, DriverConsole:
	default:
		return fmt.Errorf("config: unknown driver %q", c.Driver)
	}
	if c.TickMS <= 0 {
		return fmt.Errorf("config: tick_ms must be positive, got %d", c.TickMS)
	}
	seen := map[uint16]bool{}
	for i, s := range c.Strips {
		if s.Pixels == 0 || s.Pixels > model.MaxPixels {
			return fmt.Errorf("config: strip %d: pixels must be 1..%d, got %d", i, model.MaxPixels, s.Pixels)
		}
		if seen[s.Pin] {
			return fmt.Errorf("config: strip %d: pin %d used twice", i, s.Pin)
		}
		seen[s.Pin] = true
		if _, err := s.InitialBuffer(); err != nil {
			return fmt.Errorf("config: strip %d: %w", i, err)
		}
	}
	if _, err := c.Program(); err != nil {
		return err
	}
	return nil
}

// InitialBuffer decodes the strip's initial colors, or nil when none are set.
func (s Strip) InitialBuffer() (*model.PixelBuffer, error) {
	if len(s.Initial) == 0 {
		return nil, nil
	}
	cs := make([]model.Color, 0, len(s.Initial))
	for _, name := range s.Initial {
		col, err := model.ParseColor(name)
		if err != nil {
			return nil, err
		}
		cs = append(cs, col)
	}
	b := model.Pixels(cs...)
	return &b, nil
}

// Buses maps each strip pin to its SPI port name.
func (c *Config) Buses() map[uint16]string {
	m := make(map[uint16]string, len(c.Strips))
	for _, s := range c.Strips {
		m[s.Pin] = s.SPI
	}
	return m
}
