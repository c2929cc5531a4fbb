package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/mahendrafhrz/eldig-sps/dsp/buffer"
	"github.com/mahendrafhrz/eldig-sps/dsp/spectrum"
	"github.com/mahendrafhrz/eldig-sps/sim"
	"github.com/mahendrafhrz/eldig-sps/sim/model"
	timestats "github.com/mahendrafhrz/eldig-sps/stats/time"
)

func printChannels(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "#\tName\tRole\tFreq [Hz]\tParameter\tAxis\tRef pole\tRef zero\n")
	fmt.Fprintf(tw, "-\t----\t----\t---------\t---------\t----\t--------\t--------\n")
	for i := range model.Count {
		d, _ := model.Describe(i)
		ref := d.Reference(0.5)
		zero := "-"
		if ref.HasZero {
			zero = fmt.Sprintf("%.2f", ref.Zero)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.1f\t%s\t%s\t%.2f\t%s\n",
			i, d.Name, d.Role, d.Frequency, d.Parameter.Label, d.AxisLabel, ref.Pole, zero)
	}
	return tw.Flush()
}

func printSummary(w io.Writer, e *sim.Engine, st buffer.Stage) error {
	poles, err := e.PoleEstimates(st)
	if err != nil {
		return err
	}
	freqs := e.Frequencies()

	fmt.Fprintf(w, "t = %.1f s, %d ticks, stage %s\n\n", e.Time(), e.TickCount(), st)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Channel\tParameter\tLast\tMin\tMax\tMean\tRMS\tPeak [Hz]\ts-pole\tz-pole\n")
	fmt.Fprintf(tw, "-------\t---------\t----\t---\t---\t----\t---\t---------\t------\t------\n")
	for i := range model.Count {
		win, err := e.Window(i, st)
		if err != nil {
			return err
		}
		mag, err := e.Spectrum(i, st)
		if err != nil {
			return err
		}
		_, text, err := e.ParameterValue(i)
		if err != nil {
			return err
		}

		s := timestats.Summarize(win)
		peak, _ := spectrum.PeakBin(mag[1:])
		fmt.Fprintf(tw, "%s\t%s\t%.4g\t%.4g\t%.4g\t%.4g\t%.4g\t%.3f\t%.3f\t%.3f\n",
			channelName(i), text, win[len(win)-1], s.Min, s.Max, s.Mean, s.RMS,
			freqs[peak+1], poles[i].S, poles[i].Z)
	}
	return tw.Flush()
}

func printChannelDetail(w io.Writer, e *sim.Engine, idx int, st buffer.Stage) error {
	d, err := e.ChannelMetadata(idx)
	if err != nil {
		return err
	}
	win, err := e.Window(idx, st)
	if err != nil {
		return err
	}
	_, text, err := e.ParameterValue(idx)
	if err != nil {
		return err
	}
	ref, err := e.ReferencePole(idx)
	if err != nil {
		return err
	}
	est, err := e.PoleEstimate(idx)
	if err != nil {
		return err
	}

	s := timestats.Summarize(win)
	lo, hi := timestats.AxisRange(win, timestats.DefaultMargin)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Channel\t%s (%s)\n", d.Name, d.Role)
	fmt.Fprintf(tw, "Frequency\t%.1f Hz\n", d.Frequency)
	fmt.Fprintf(tw, "Parameter\t%s = %s\n", d.Parameter.Label, text)
	fmt.Fprintf(tw, "Stage\t%s\n", st)
	fmt.Fprintf(tw, "Min / Max\t%.4g / %.4g\n", s.Min, s.Max)
	fmt.Fprintf(tw, "Mean / Std\t%.4g / %.4g\n", s.Mean, s.StdDev)
	fmt.Fprintf(tw, "RMS\t%.4g\n", s.RMS)
	fmt.Fprintf(tw, "Axis\t%s [%.4g, %.4g]\n", d.AxisLabel, lo, hi)
	fmt.Fprintf(tw, "Pole (raw)\ts = %.4f, z = %.4f, stable = %v\n", est.S, est.Z, est.Stable())
	fmt.Fprintf(tw, "Reference pole\ts = %.2f\n", ref.Pole)
	if ref.HasZero {
		fmt.Fprintf(tw, "Reference zero\ts = %.2f\n", ref.Zero)
	}
	return tw.Flush()
}

func printWindow(w io.Writer, e *sim.Engine, idx int, st buffer.Stage) error {
	win, err := e.Window(idx, st)
	if err != nil {
		return err
	}
	times := e.WindowTimes()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Time [s]\t%s %s\n", channelName(idx), st)
	for k, v := range win {
		fmt.Fprintf(tw, "%.1f\t%.6g\n", times[k], v)
	}
	return tw.Flush()
}

func printSpectrum(w io.Writer, e *sim.Engine, idx int, st buffer.Stage) error {
	mag, err := e.Spectrum(idx, st)
	if err != nil {
		return err
	}
	norm := spectrum.NormalizeToPeak(mag)
	freqs := e.Frequencies()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Bin\tFreq [Hz]\tMagnitude\tNormalized\n")
	for k := range mag {
		fmt.Fprintf(tw, "%d\t%.4f\t%.6g\t%.4f\n", k, freqs[k], mag[k], norm[k])
	}
	return tw.Flush()
}
