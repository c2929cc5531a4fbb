package sim

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const debugEvery = 100

// TickFunc is called after every tick with the state that tick produced.
// A returned error is logged and does not stop the runner.
type TickFunc func(Snapshot) error

// RunnerOption configures a [Runner].
type RunnerOption func(*Runner)

// WithInterval sets the wall-clock time between ticks. It paces the runner
// only; simulated time per tick stays the engine timestep.
func WithInterval(d time.Duration) RunnerOption {
	return func(r *Runner) {
		if d > 0 {
			r.interval = d
		}
	}
}

// WithLogger sets the runner logger.
func WithLogger(l *zap.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithTickFunc installs the per-tick callback.
func WithTickFunc(fn TickFunc) RunnerOption {
	return func(r *Runner) { r.onTick = fn }
}

// Runner ticks an engine at a fixed interval until stopped. Stopping never
// interrupts a tick in flight.
type Runner struct {
	engine   *Engine
	interval time.Duration
	log      *zap.Logger
	onTick   TickFunc

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewRunner creates a stopped runner. The default interval is one engine
// timestep of wall time.
func NewRunner(e *Engine, opts ...RunnerOption) *Runner {
	r := &Runner{
		engine:   e,
		interval: time.Duration(e.Timestep() * float64(time.Second)),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	if r.interval <= 0 {
		r.interval = time.Millisecond
	}
	return r
}

// Start launches the tick loop. It returns [ErrRunning] if the runner is
// already active. The loop ends when ctx is done or Stop is called.
func (r *Runner) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.done != nil {
		return ErrRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	r.cancel = cancel
	r.done = done

	r.log.Info("runner started",
		zap.Duration("interval", r.interval),
		zap.Float64("timestep", r.engine.Timestep()))
	go r.loop(ctx, done)
	return nil
}

// Stop cancels the loop and waits for the current tick to finish. Stop on
// a stopped runner is a no-op.
func (r *Runner) Stop() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether the tick loop is active.
func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.done != nil
}

func (r *Runner) loop(ctx context.Context, done chan struct{}) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	defer func() {
		r.mu.Lock()
		if r.done == done {
			r.cancel = nil
			r.done = nil
		}
		r.mu.Unlock()
		close(done)
	}()

	var ran uint64
	for {
		select {
		case <-ctx.Done():
			r.log.Info("runner stopped",
				zap.Uint64("ticks", ran),
				zap.NamedError("cause", context.Cause(ctx)))
			return
		case <-ticker.C:
			snap := r.step()
			ran++
			if ran%debugEvery == 0 {
				r.log.Debug("tick batch",
					zap.Uint64("tick", snap.Tick),
					zap.Float64("time", snap.Time))
			}
			if r.onTick != nil {
				if err := r.onTick(snap); err != nil {
					r.log.Warn("tick callback failed",
						zap.Uint64("tick", snap.Tick), zap.Error(err))
				}
			}
		}
	}
}

func (r *Runner) step() Snapshot {
	e := r.engine
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tick()
	return e.snapshot()
}
