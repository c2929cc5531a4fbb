package core

// ProcessorConfig defines the sampling grid shared by the engine stages.
// SampleRate is 1/dt; BlockSize is the history length N.
type ProcessorConfig struct {
	SampleRate float64
	BlockSize  int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns a 10 Hz grid (dt = 0.1 s) with 128 samples
// of history.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 10,
		BlockSize:  128,
	}
}

// Timestep returns 1/SampleRate, or 0 for a non-positive rate.
func (c ProcessorConfig) Timestep() float64 {
	if c.SampleRate <= 0 {
		return 0
	}
	return 1 / c.SampleRate
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithTimestep sets the sample rate from a step length in seconds.
func WithTimestep(dt float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if dt > 0 {
			cfg.SampleRate = 1 / dt
		}
	}
}

// WithBlockSize sets the processing block size.
func WithBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
