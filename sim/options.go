package sim

import (
	"fmt"

	"github.com/mahendrafhrz/eldig-sps/dsp/core"
	"github.com/mahendrafhrz/eldig-sps/dsp/signal"
	"github.com/mahendrafhrz/eldig-sps/dsp/spectrum"
	"github.com/mahendrafhrz/eldig-sps/measure/pole"
	"github.com/mahendrafhrz/eldig-sps/sim/model"
)

const (
	defaultTimestep       = 0.1
	defaultCapacity       = 128
	defaultNoiseAmplitude = 0.4
	defaultFilterAlpha    = 0.02
	defaultControl        = 0.5
)

type config struct {
	timestep float64
	capacity int
	noise    float64
	alpha    float64
	seed     int64
	source   signal.Source
	limits   pole.Limits
	backend  spectrum.Backend
	models   map[int]model.Generator
}

func defaultConfig() config {
	return config{
		timestep: defaultTimestep,
		capacity: defaultCapacity,
		noise:    defaultNoiseAmplitude,
		alpha:    defaultFilterAlpha,
		seed:     1,
		limits:   pole.DefaultLimits(),
		backend:  spectrum.BackendDirect,
	}
}

func (c config) validate() error {
	if !(c.timestep > 0) || !core.IsFinite(c.timestep) {
		return fmt.Errorf("sim timestep must be > 0: %v", c.timestep)
	}
	if c.capacity < 2 || c.capacity%2 != 0 {
		return fmt.Errorf("sim capacity must be even and >= 2: %d", c.capacity)
	}
	if !(c.noise >= 0) || !core.IsFinite(c.noise) {
		return fmt.Errorf("sim noise amplitude must be >= 0: %v", c.noise)
	}
	if !(c.alpha > 0 && c.alpha <= 1) {
		return fmt.Errorf("sim filter alpha must be in (0,1]: %v", c.alpha)
	}
	for idx, g := range c.models {
		if idx < 0 || idx >= model.Count {
			return fmt.Errorf("sim model override: %w: %d", ErrOutOfRange, idx)
		}
		if g == nil {
			return fmt.Errorf("sim model override %d: %w", idx, ErrNilModel)
		}
	}
	return nil
}

// Option configures an [Engine].
type Option func(*config)

// WithTimestep sets the simulated time per tick in seconds. The spectrum
// sample rate is 1/dt.
func WithTimestep(dt float64) Option {
	return func(c *config) { c.timestep = dt }
}

// WithCapacity sets the ring length N. It must be even.
func WithCapacity(n int) Option {
	return func(c *config) { c.capacity = n }
}

// WithNoiseAmplitude sets the bound of the uniform noise added to every
// raw sample.
func WithNoiseAmplitude(amp float64) Option {
	return func(c *config) { c.noise = amp }
}

// WithFilterAlpha sets the one-pole smoothing coefficient.
func WithFilterAlpha(alpha float64) Option {
	return func(c *config) { c.alpha = alpha }
}

// WithSeed seeds the engine-owned random source. Reset reseeds it, so a
// reset engine replays the same run. Ignored when WithSource is given.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithSource replaces the engine random source. The engine draws from it
// only inside Tick, under its lock.
func WithSource(src signal.Source) Option {
	return func(c *config) { c.source = src }
}

// WithPoleLimits sets the estimator clamps. The Timestep field is ignored;
// the engine timestep is always used.
func WithPoleLimits(l pole.Limits) Option {
	return func(c *config) { c.limits = l }
}

// WithSpectrumBackend selects the spectrum transform.
func WithSpectrumBackend(b spectrum.Backend) Option {
	return func(c *config) { c.backend = b }
}

// WithModel replaces the generator of channel index. Channel metadata is
// unchanged.
func WithModel(index int, g model.Generator) Option {
	return func(c *config) {
		if c.models == nil {
			c.models = make(map[int]model.Generator)
		}
		c.models[index] = g
	}
}
