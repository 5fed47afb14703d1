package main

import (
	"flag"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/wavesurface/internal/config"
	"github.com/Faultbox/wavesurface/internal/engine/water"
	"github.com/Faultbox/wavesurface/internal/logger"
)

// commonFlags are shared by every subcommand.
type commonFlags struct {
	config   string
	seed     int64
	segments int
	workers  int
	debug    bool
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.config, "config", "", "Path to config file")
	fs.Int64Var(&c.seed, "seed", 0, "Ripple noise seed (0 keeps the config value)")
	fs.IntVar(&c.segments, "segments", 0, "Plane subdivisions per side (0 keeps the config value)")
	fs.IntVar(&c.workers, "workers", 0, "Evaluation goroutines (0 = GOMAXPROCS)")
	fs.BoolVar(&c.debug, "debug", false, "Enable debug logging")
}

// env is the evaluator state built from config and flags.
type env struct {
	cfg    *config.Config
	params water.Params
	field  *water.Field
	log    *zap.Logger
}

func (c *commonFlags) load() (*env, error) {
	cfg, err := config.LoadFrom(c.config)
	if err != nil {
		return nil, err
	}
	if c.seed != 0 {
		cfg.Water.NoiseSeed = c.seed
	}
	if c.segments > 0 {
		cfg.Water.Segments = c.segments
	}
	if c.debug {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := logger.Init(cfg.Logging); err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	log := logger.Named("wavetool")
	for _, field := range cfg.ClampWater() {
		log.Warn("config value out of range, clamped", zap.String("field", field))
	}

	params, err := cfg.WaterParams()
	if err != nil {
		return nil, err
	}
	return &env{
		cfg:    cfg,
		params: params,
		field:  water.NewField(cfg.Water.NoiseSeed),
		log:    log,
	}, nil
}

func (e *env) surface(workers int) *water.Surface {
	s := water.NewSurface(e.field, e.cfg.Plane())
	if workers > 0 {
		s.SetWorkers(workers)
	}
	return s
}
