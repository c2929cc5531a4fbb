package sim

import (
	"fmt"
	"sync"

	"github.com/mahendrafhrz/eldig-sps/dsp/buffer"
	"github.com/mahendrafhrz/eldig-sps/dsp/core"
	"github.com/mahendrafhrz/eldig-sps/dsp/filter/onepole"
	"github.com/mahendrafhrz/eldig-sps/dsp/signal"
	"github.com/mahendrafhrz/eldig-sps/dsp/spectrum"
	"github.com/mahendrafhrz/eldig-sps/measure/pole"
	"github.com/mahendrafhrz/eldig-sps/sim/model"
)

// Snapshot is the state of every channel after one tick.
type Snapshot struct {
	Time     float64
	Tick     uint64
	Raw      []float64
	Noisy    []float64
	Filtered []float64
}

// Engine is the simulation core. All methods are safe for concurrent use.
type Engine struct {
	mu sync.Mutex

	cfg       config
	gens      []model.Generator
	order     [][]int
	control   []float64
	filters   []onepole.Smoother
	ring      *buffer.Ring
	analyzer  *spectrum.Analyzer
	estimator *pole.Estimator

	src        signal.Source
	ownsSource bool

	time  float64
	ticks uint64

	row    [buffer.StageCount][]float64
	deps   []float64
	window []float64
}

// New creates an engine with default parameters and zeroed state.
func New(opts ...Option) (*Engine, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	gens := model.Defaults()
	for idx, g := range cfg.models {
		gens[idx] = g
	}
	order, err := phases(gens)
	if err != nil {
		return nil, fmt.Errorf("sim evaluation order: %w", err)
	}

	ring, err := buffer.NewRing(model.Count, cfg.capacity)
	if err != nil {
		return nil, fmt.Errorf("sim ring: %w", err)
	}

	procCfg := core.ApplyProcessorOptions(
		core.WithTimestep(cfg.timestep),
		core.WithBlockSize(cfg.capacity),
	)
	analyzer, err := spectrum.NewAnalyzer(procCfg.BlockSize, procCfg.SampleRate,
		spectrum.WithBackend(cfg.backend))
	if err != nil {
		return nil, fmt.Errorf("sim spectrum: %w", err)
	}

	limits := cfg.limits
	limits.Timestep = procCfg.Timestep()
	estimator, err := pole.NewEstimator(limits)
	if err != nil {
		return nil, fmt.Errorf("sim pole estimator: %w", err)
	}

	e := &Engine{
		cfg:       cfg,
		gens:      gens,
		order:     order,
		control:   make([]float64, model.Count),
		filters:   make([]onepole.Smoother, model.Count),
		ring:      ring,
		analyzer:  analyzer,
		estimator: estimator,
		src:       cfg.source,
		window:    make([]float64, cfg.capacity),
	}
	if e.src == nil {
		e.src = signal.NewSource(cfg.seed)
		e.ownsSource = true
	}
	for i := range e.control {
		e.control[i] = defaultControl
	}
	for i := range e.filters {
		f, err := onepole.New(cfg.alpha)
		if err != nil {
			return nil, fmt.Errorf("sim filter: %w", err)
		}
		e.filters[i] = f
	}
	for s := range e.row {
		e.row[s] = make([]float64, model.Count)
	}
	return e, nil
}

func checkIndex(index int) error {
	if index < 0 || index >= model.Count {
		return fmt.Errorf("%w: channel %d not in [0,%d)", ErrOutOfRange, index, model.Count)
	}
	return nil
}

func checkStage(st buffer.Stage) error {
	if !st.Valid() {
		return fmt.Errorf("%w: stage %d", ErrOutOfRange, int(st))
	}
	return nil
}

// Tick advances the simulation by one timestep: the clock moves, every
// generator runs in dependency order, and raw, noisy and filtered samples
// are written at the shared cursor before it advances once.
func (e *Engine) Tick() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tick()
}

// Step runs n ticks under a single lock acquisition.
func (e *Engine) Step(n int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for range n {
		e.tick()
	}
}

func (e *Engine) tick() {
	e.ticks++
	e.time = float64(e.ticks) * e.cfg.timestep

	raw := e.row[buffer.Raw]
	noisy := e.row[buffer.Noisy]
	filtered := e.row[buffer.Filtered]

	for _, phase := range e.order {
		for _, idx := range phase {
			g := e.gens[idx]
			inputs := g.Inputs()
			e.deps = e.deps[:0]
			for _, in := range inputs {
				e.deps = append(e.deps, raw[in])
			}

			x := g.Generate(model.Input{
				Time:      e.time,
				Timestep:  e.cfg.timestep,
				Frequency: model.Frequency(idx),
				Control:   e.control[idx],
				Deps:      e.deps,
				Rand:      e.src,
			})
			raw[idx] = x
			noisy[idx] = x + signal.Uniform(e.src, e.cfg.noise)
			filtered[idx] = e.filters[idx].Process(noisy[idx])
		}
	}

	e.ring.Push(e.row)
}

// Reset returns the clock, all carry state, filter memory and buffers to
// their initial values. Control parameters are kept. An engine-owned
// random source is reseeded.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.time = 0
	e.ticks = 0
	for _, g := range e.gens {
		g.Reset()
	}
	for i := range e.filters {
		e.filters[i].Reset()
	}
	for s := range e.row {
		clear(e.row[s])
	}
	e.ring.Reset()
	if e.ownsSource {
		e.src = signal.NewSource(e.cfg.seed)
	}
}

// SetControlParameter clamps value to [0,1] and stores it for channel
// index. It takes effect on the next tick. NaN is stored as 0.
func (e *Engine) SetControlParameter(index int, value float64) error {
	if err := checkIndex(index); err != nil {
		return err
	}
	e.mu.Lock()
	e.control[index] = core.Clamp(value, 0, 1)
	e.mu.Unlock()
	return nil
}

// ControlParameter returns the control value of channel index.
func (e *Engine) ControlParameter(index int) (float64, error) {
	if err := checkIndex(index); err != nil {
		return 0, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.control[index], nil
}

// Time returns the simulated time in seconds.
func (e *Engine) Time() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.time
}

// TickCount returns the number of ticks since construction or reset.
func (e *Engine) TickCount() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ticks
}

// Timestep returns dt in seconds.
func (e *Engine) Timestep() float64 { return e.cfg.timestep }

// Capacity returns the window length N.
func (e *Engine) Capacity() int { return e.cfg.capacity }

// Snapshot returns the samples written by the most recent tick. Before the
// first tick all values are zero.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot()
}

func (e *Engine) snapshot() Snapshot {
	return Snapshot{
		Time:     e.time,
		Tick:     e.ticks,
		Raw:      append([]float64(nil), e.row[buffer.Raw]...),
		Noisy:    append([]float64(nil), e.row[buffer.Noisy]...),
		Filtered: append([]float64(nil), e.row[buffer.Filtered]...),
	}
}

// Window returns the N samples of one channel and stage, oldest first.
func (e *Engine) Window(index int, st buffer.Stage) ([]float64, error) {
	if err := checkIndex(index); err != nil {
		return nil, err
	}
	if err := checkStage(st); err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ring.Window(nil, index, st)
}

// WindowTimes returns the display timestamp of every window slot,
// time - N·dt + k·dt for k in [0, N).
func (e *Engine) WindowTimes() []float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	n := e.cfg.capacity
	dt := e.cfg.timestep
	start := e.time - float64(n)*dt
	out := make([]float64, n)
	for k := range out {
		out[k] = start + float64(k)*dt
	}
	return out
}

// Spectrum returns the N/2 bin magnitude spectrum of one channel and stage.
func (e *Engine) Spectrum(index int, st buffer.Stage) ([]float64, error) {
	if err := checkIndex(index); err != nil {
		return nil, err
	}
	if err := checkStage(st); err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	w, err := e.ring.Window(e.window, index, st)
	if err != nil {
		return nil, err
	}
	return e.analyzer.Magnitude(nil, w)
}

// Frequencies returns the centre frequency of each spectrum bin.
func (e *Engine) Frequencies() []float64 {
	return e.analyzer.Frequencies()
}

// PoleEstimate estimates the pole of channel index from its two most
// recent raw samples.
func (e *Engine) PoleEstimate(index int) (pole.Estimate, error) {
	if err := checkIndex(index); err != nil {
		return pole.Estimate{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.poleEstimate(index, buffer.Raw)
}

// PoleEstimates estimates the pole of every channel from the two most
// recent samples of stage st.
func (e *Engine) PoleEstimates(st buffer.Stage) ([]pole.Estimate, error) {
	if err := checkStage(st); err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]pole.Estimate, model.Count)
	for i := range out {
		est, err := e.poleEstimate(i, st)
		if err != nil {
			return nil, err
		}
		out[i] = est
	}
	return out, nil
}

func (e *Engine) poleEstimate(index int, st buffer.Stage) (pole.Estimate, error) {
	x1, err := e.ring.Latest(index, st, 0)
	if err != nil {
		return pole.Estimate{}, err
	}
	x0, err := e.ring.Latest(index, st, 1)
	if err != nil {
		return pole.Estimate{}, err
	}
	return e.estimator.Estimate(x0, x1), nil
}

// ChannelMetadata returns the static description of channel index.
func (e *Engine) ChannelMetadata(index int) (model.Descriptor, error) {
	if err := checkIndex(index); err != nil {
		return model.Descriptor{}, err
	}
	d, _ := model.Describe(index)
	return d, nil
}

// ParameterValue returns the physical parameter of channel index for its
// current control value, with its formatted readout.
func (e *Engine) ParameterValue(index int) (float64, string, error) {
	c, err := e.ControlParameter(index)
	if err != nil {
		return 0, "", err
	}
	d, _ := model.Describe(index)
	return d.Parameter.Value(c), d.Parameter.Text(c), nil
}

// ReferencePole returns the static model pole of channel index for its
// current control value.
func (e *Engine) ReferencePole(index int) (model.Reference, error) {
	c, err := e.ControlParameter(index)
	if err != nil {
		return model.Reference{}, err
	}
	d, _ := model.Describe(index)
	return d.Reference(c), nil
}
