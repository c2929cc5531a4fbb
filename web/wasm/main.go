//go:build js && wasm

package main

import (
	"context"
	"syscall/js"
	"time"

	"github.com/mahendrafhrz/eldig-sps/dsp/buffer"
	"github.com/mahendrafhrz/eldig-sps/dsp/spectrum"
	"github.com/mahendrafhrz/eldig-sps/sim"
)

var (
	engine *sim.Engine
	runner *sim.Runner
	funcs  []js.Func
)

func main() {
	api := js.Global().Get("Object").New()
	api.Set("init", export(func(args []js.Value) any {
		var opts []sim.Option
		if len(args) > 0 && args[0].Type() == js.TypeObject {
			cfg := args[0]
			if v := cfg.Get("seed"); v.Type() == js.TypeNumber {
				opts = append(opts, sim.WithSeed(int64(v.Int())))
			}
			if v := cfg.Get("timestep"); v.Type() == js.TypeNumber {
				opts = append(opts, sim.WithTimestep(v.Float()))
			}
			if v := cfg.Get("backend"); v.Type() == js.TypeString {
				b, err := spectrum.ParseBackend(v.String())
				if err != nil {
					return err.Error()
				}
				opts = append(opts, sim.WithSpectrumBackend(b))
			}
		}
		stopRunner()
		e, err := sim.New(opts...)
		if err != nil {
			return err.Error()
		}
		engine = e
		return js.Null()
	}))

	api.Set("tick", export(func(args []js.Value) any {
		if engine == nil {
			return js.Null()
		}
		n := 1
		if len(args) > 0 {
			n = args[0].Int()
		}
		engine.Step(n)
		return js.Null()
	}))

	api.Set("reset", export(func(args []js.Value) any {
		if engine != nil {
			engine.Reset()
		}
		return js.Null()
	}))

	api.Set("setControl", export(func(args []js.Value) any {
		if engine == nil || len(args) < 2 {
			return js.Null()
		}
		if err := engine.SetControlParameter(args[0].Int(), args[1].Float()); err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("parameter", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		v, text, err := engine.ParameterValue(args[0].Int())
		if err != nil {
			return err.Error()
		}
		out := js.Global().Get("Object").New()
		out.Set("value", v)
		out.Set("text", text)
		return out
	}))

	api.Set("metadata", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		idx := args[0].Int()
		d, err := engine.ChannelMetadata(idx)
		if err != nil {
			return err.Error()
		}
		ref, _ := engine.ReferencePole(idx)
		out := js.Global().Get("Object").New()
		out.Set("index", d.Index)
		out.Set("name", d.Name)
		out.Set("role", d.Role.String())
		out.Set("frequency", d.Frequency)
		out.Set("parameterLabel", d.Parameter.Label)
		out.Set("axisLabel", d.AxisLabel)
		out.Set("rawMin", d.RawMin)
		out.Set("rawMax", d.RawMax)
		out.Set("refPole", ref.Pole)
		if ref.HasZero {
			out.Set("refZero", ref.Zero)
		}
		return out
	}))

	api.Set("window", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return float64Array(nil)
		}
		w, err := engine.Window(args[0].Int(), stageArg(args, 1))
		if err != nil {
			return err.Error()
		}
		return float64Array(w)
	}))

	api.Set("windowTimes", export(func(args []js.Value) any {
		if engine == nil {
			return float64Array(nil)
		}
		return float64Array(engine.WindowTimes())
	}))

	api.Set("spectrum", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return float64Array(nil)
		}
		mag, err := engine.Spectrum(args[0].Int(), stageArg(args, 1))
		if err != nil {
			return err.Error()
		}
		if len(args) > 2 && args[2].Truthy() {
			mag = spectrum.NormalizeToPeak(mag)
		}
		return float64Array(mag)
	}))

	api.Set("frequencies", export(func(args []js.Value) any {
		if engine == nil {
			return float64Array(nil)
		}
		return float64Array(engine.Frequencies())
	}))

	api.Set("poles", export(func(args []js.Value) any {
		if engine == nil {
			return js.Null()
		}
		est, err := engine.PoleEstimates(stageArg(args, 0))
		if err != nil {
			return err.Error()
		}
		s := make([]float64, len(est))
		z := make([]float64, len(est))
		for i, p := range est {
			s[i] = p.S
			z[i] = p.Z
		}
		out := js.Global().Get("Object").New()
		out.Set("s", float64Array(s))
		out.Set("z", float64Array(z))
		return out
	}))

	api.Set("start", export(func(args []js.Value) any {
		if engine == nil {
			return js.Null()
		}
		stopRunner()
		opts := []sim.RunnerOption{}
		if len(args) > 0 && args[0].Type() == js.TypeNumber {
			opts = append(opts, sim.WithInterval(time.Duration(args[0].Float()*float64(time.Millisecond))))
		}
		if len(args) > 1 && args[1].Type() == js.TypeFunction {
			cb := args[1]
			opts = append(opts, sim.WithTickFunc(func(s sim.Snapshot) error {
				cb.Invoke(s.Tick, s.Time)
				return nil
			}))
		}
		runner = sim.NewRunner(engine, opts...)
		if err := runner.Start(context.Background()); err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("stop", export(func(args []js.Value) any {
		stopRunner()
		return js.Null()
	}))

	api.Set("time", export(func(args []js.Value) any {
		if engine == nil {
			return 0
		}
		return engine.Time()
	}))

	js.Global().Set("InhalerSim", api)
	select {}
}

func stopRunner() {
	if runner != nil {
		runner.Stop()
		runner = nil
	}
}

func stageArg(args []js.Value, i int) buffer.Stage {
	if len(args) <= i || args[i].Type() != js.TypeString {
		return buffer.Raw
	}
	st, err := buffer.ParseStage(args[i].String())
	if err != nil {
		return buffer.Raw
	}
	return st
}

func float64Array(v []float64) js.Value {
	arr := js.Global().Get("Float64Array").New(len(v))
	for i, x := range v {
		arr.SetIndex(i, x)
	}
	return arr
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
