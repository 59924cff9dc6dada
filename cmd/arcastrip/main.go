//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"

	"github.com/coreman2200/funtimes-arcastrip/internal/config"
	"github.com/coreman2200/funtimes-arcastrip/internal/engine"
	"github.com/coreman2200/funtimes-arcastrip/internal/input"
	"github.com/coreman2200/funtimes-arcastrip/internal/led"
	"github.com/coreman2200/funtimes-arcastrip/internal/led/fake"
	"github.com/coreman2200/funtimes-arcastrip/internal/loop"
	"github.com/coreman2200/funtimes-arcastrip/internal/strip"
)

func main() {
	// ---- Flags (override env, which overrides the file) ----
	var (
		configPath = flag.String("config", "", "path to arcastrip.yaml (default $ARCASTRIP_CONFIG)")
		driver     = flag.String("driver", "", "driver: sim | spi | console")
		tickMS     = flag.Int("tick", 0, "tick period in ms")
		verbose    = flag.Bool("v", false, "debug logging")
		writeCfg   = flag.Bool("write-config", false, "write the default config to -config and exit")
	)
	flag.Parse()

	// ---- Logging ----
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	env, err := config.LoadEnv(context.Background(), nil)
	if err != nil {
		log.Fatal().Err(err).Msg("bad environment")
	}
	path := env.Config
	if *configPath != "" {
		path = *configPath
	}

	if *writeCfg {
		if err := config.Save(path, config.Default()); err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("write config")
		}
		log.Info().Str("path", path).Msg("default config written")
		return
	}

	// ---- Load config (optional) ----
	file, err := config.Load(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("config load failed; using defaults")
		file = config.Default()
	}
	cfg := config.Resolve(file, env, config.Flags{Driver: *driver, TickMS: *tickMS})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	program, err := cfg.Program()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid program")
	}

	// ---- Driver selection, falling back to SIM ----
	drv := selectDriver(cfg, *verbose)

	specs := make([]engine.StripSpec, 0, len(cfg.Strips))
	for _, s := range cfg.Strips {
		initial, _ := s.InitialBuffer()
		specs = append(specs, engine.StripSpec{Pin: s.Pin, Pixels: s.Pixels, Initial: initial})
	}

	// ---- Action sources ----
	var sources []engine.Source
	if len(program) > 0 {
		sources = append(sources, engine.Once(program[0]))
	}
	if cfg.ButtonPin != 0 {
		btn, err := input.OpenGPIO(cfg.ButtonPin)
		if err != nil {
			log.Warn().Err(err).Uint8("pin", cfg.ButtonPin).Msg("button unavailable")
		} else {
			defer btn.Close()
			sources = append(sources, engine.Cycle(btn, program...))
		}
	}

	opts := engine.Options{
		Driver:     drv,
		Strips:     specs,
		Source:     engine.Merged(sources...),
		Brightness: cfg.Brightness,
	}
	e, err := engine.Setup(opts)
	if err != nil && cfg.Driver != config.DriverSim {
		log.Warn().Err(err).Str("driver", cfg.Driver).Msg("device init failed; falling back to SIM")
		opts.Driver = simDriver(*verbose)
		e, err = engine.Setup(opts)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("setup failed")
	}
	defer func() {
		if err := e.Close(); err != nil {
			log.Warn().Err(err).Msg("close")
		}
	}()

	log.Info().
		Str("driver", cfg.Driver).
		Int("strips", len(specs)).
		Int("actions", len(program)).
		Int("tick_ms", cfg.TickMS).
		Msg("running")

	l := loop.New(e, time.Duration(cfg.TickMS)*time.Millisecond, log.Logger)
	l.Stats = e.Stats
	if err := l.Run(context.Background()); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("loop stopped")
	}
	logHistory(e.History())
}

func selectDriver(cfg *config.Config, verbose bool) led.Driver {
	switch cfg.Driver {
	case config.DriverSPI:
		if _, err := host.Init(); err != nil {
			log.Warn().Err(err).Str("driver", "spi").Msg("periph init failed; falling back to SIM")
			break
		}
		freq := led.DefaultFreq
		if cfg.SPIFreqKHz > 0 {
			freq = physic.Frequency(cfg.SPIFreqKHz) * physic.KiloHertz
		}
		return &led.SPIDriver{Buses: cfg.Buses(), Freq: freq}
	case config.DriverConsole:
		return led.ConsoleDriver{}
	}
	return simDriver(verbose)
}

func simDriver(verbose bool) *fake.Driver {
	if verbose {
		return &fake.Driver{Out: os.Stdout}
	}
	return &fake.Driver{}
}

func logHistory(actions []strip.Action) {
	for i, a := range actions {
		log.Debug().Int("age", i).Str("action", fmt.Sprint(a)).Msg("recent action")
	}
}
