// Command inhalersim runs the inhaler channel simulation headless and prints
// windows, spectra and pole estimates.
//
// Usage:
//
//	inhalersim [flags]
//
// Examples:
//
//	inhalersim -ticks 256
//	inhalersim -channel nozzle -stage filtered -window
//	inhalersim -channel 7 -spectrum -backend fft
//	inhalersim -preset calm.json -run 3s -interval 50ms -v
//	inhalersim -list
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/mahendrafhrz/eldig-sps/dsp/buffer"
	"github.com/mahendrafhrz/eldig-sps/dsp/spectrum"
	"github.com/mahendrafhrz/eldig-sps/preset"
	"github.com/mahendrafhrz/eldig-sps/sim"
	"github.com/mahendrafhrz/eldig-sps/sim/model"
)

type options struct {
	ticks      int
	seed       int64
	presetPath string
	savePath   string
	channel    string
	stage      buffer.Stage
	backend    spectrum.Backend
	window     bool
	spectrum   bool
	list       bool
	run        time.Duration
	interval   time.Duration
	verbose    bool
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	log, err := newLogger(opts.verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := execute(ctx, opts, os.Stdout, log); err != nil {
		log.Error("inhalersim failed", zap.Error(err))
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("inhalersim", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var o options
	var stage, backend string
	fs.IntVar(&o.ticks, "ticks", 128, "number of ticks to simulate")
	fs.Int64Var(&o.seed, "seed", 1, "noise source seed")
	fs.StringVar(&o.presetPath, "preset", "", "JSON preset with options and control values")
	fs.StringVar(&o.savePath, "save-preset", "", "write the final control values to this JSON file")
	fs.StringVar(&o.channel, "channel", "", "channel name or index (default: all channels)")
	fs.StringVar(&stage, "stage", "raw", "buffer stage: raw, noisy or filtered")
	fs.StringVar(&backend, "backend", "direct", "spectrum backend: direct or fft")
	fs.BoolVar(&o.window, "window", false, "print the sample window of the selected channel")
	fs.BoolVar(&o.spectrum, "spectrum", false, "print the magnitude spectrum of the selected channel")
	fs.BoolVar(&o.list, "list", false, "list channels and exit")
	fs.DurationVar(&o.run, "run", 0, "run in real time for this long instead of -ticks")
	fs.DurationVar(&o.interval, "interval", 0, "wall time between ticks with -run (default: one timestep)")
	fs.BoolVar(&o.verbose, "v", false, "development logging at debug level")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: inhalersim [flags]\n\n")
		fmt.Fprintf(stderr, "Runs the inhaler channel simulation and prints channel analysis.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if o.ticks < 0 {
		return options{}, fmt.Errorf("ticks must be >= 0: %d", o.ticks)
	}

	var err error
	if o.stage, err = buffer.ParseStage(stage); err != nil {
		return options{}, err
	}
	if o.backend, err = spectrum.ParseBackend(backend); err != nil {
		return options{}, err
	}
	if (o.window || o.spectrum) && o.channel == "" {
		return options{}, errors.New("-window and -spectrum need -channel")
	}
	return o, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func execute(ctx context.Context, o options, stdout io.Writer, log *zap.Logger) error {
	if o.list {
		return printChannels(stdout)
	}

	engineOpts := []sim.Option{
		sim.WithSeed(o.seed),
		sim.WithSpectrumBackend(o.backend),
	}
	var p *preset.File
	if o.presetPath != "" {
		var err error
		if p, err = preset.LoadJSON(o.presetPath); err != nil {
			return err
		}
		engineOpts = append(engineOpts, p.Options()...)
		log.Info("preset loaded",
			zap.String("path", o.presetPath),
			zap.Int("controls", len(p.Controls)))
	}

	e, err := sim.New(engineOpts...)
	if err != nil {
		return err
	}
	if err := preset.Apply(e, p); err != nil {
		return err
	}

	if o.run > 0 {
		if err := runRealtime(ctx, e, o, log); err != nil {
			return err
		}
	} else {
		e.Step(o.ticks)
		log.Debug("simulated", zap.Int("ticks", o.ticks), zap.Float64("time", e.Time()))
	}

	if err := report(stdout, e, o); err != nil {
		return err
	}

	if o.savePath != "" {
		f, err := preset.FromEngine(e)
		if err != nil {
			return err
		}
		b, err := preset.Marshal(f)
		if err != nil {
			return err
		}
		if err := os.WriteFile(o.savePath, append(b, '\n'), 0o644); err != nil {
			return fmt.Errorf("save preset: %w", err)
		}
		log.Info("preset saved", zap.String("path", o.savePath))
	}
	return nil
}

func runRealtime(ctx context.Context, e *sim.Engine, o options, log *zap.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, o.run)
	defer cancel()

	r := sim.NewRunner(e, sim.WithInterval(o.interval), sim.WithLogger(log))
	if err := r.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	r.Stop()
	log.Info("realtime run finished",
		zap.Uint64("ticks", e.TickCount()),
		zap.Float64("time", e.Time()))
	return nil
}

func report(w io.Writer, e *sim.Engine, o options) error {
	if o.channel == "" {
		return printSummary(w, e, o.stage)
	}

	idx, err := preset.ChannelIndex(o.channel)
	if err != nil {
		return err
	}
	switch {
	case o.window:
		return printWindow(w, e, idx, o.stage)
	case o.spectrum:
		return printSpectrum(w, e, idx, o.stage)
	default:
		return printChannelDetail(w, e, idx, o.stage)
	}
}

func channelName(idx int) string {
	d, ok := model.Describe(idx)
	if !ok {
		return fmt.Sprintf("channel %d", idx)
	}
	return d.Name
}
