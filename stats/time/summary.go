//nolint:revive
package time

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultMargin is the fractional padding AxisRange adds above and below
// the data.
const DefaultMargin = 0.1

// Summary holds window statistics.
type Summary struct {
	Length        int
	Min           float64
	Max           float64
	Mean          float64
	StdDev        float64 // sample standard deviation, 0 for fewer than 2 samples
	RMS           float64
	Peak          float64 // max(|min|, |max|)
	Range         float64 // max - min
	CrestFactor   float64 // peak / RMS, 0 when RMS is 0
	ZeroCrossings int
}

// Summarize computes the summary of window. An empty window yields the
// zero Summary.
func Summarize(window []float64) Summary {
	n := len(window)
	if n == 0 {
		return Summary{}
	}

	minVal := floats.Min(window)
	maxVal := floats.Max(window)

	var mean, std float64
	if n < 2 {
		mean = window[0]
	} else {
		mean, std = stat.MeanStdDev(window, nil)
	}

	rms := RMS(window)
	peak := math.Max(math.Abs(minVal), math.Abs(maxVal))

	var crest float64
	if rms > 0 {
		crest = peak / rms
	}

	return Summary{
		Length:        n,
		Min:           minVal,
		Max:           maxVal,
		Mean:          mean,
		StdDev:        std,
		RMS:           rms,
		Peak:          peak,
		Range:         maxVal - minVal,
		CrestFactor:   crest,
		ZeroCrossings: ZeroCrossings(window),
	}
}

// RMS returns the root-mean-square of the window.
func RMS(window []float64) float64 {
	if len(window) == 0 {
		return 0
	}
	return floats.Norm(window, 2) / math.Sqrt(float64(len(window)))
}

// ZeroCrossings counts sign changes between adjacent samples. Exact zeros
// do not count as a crossing on either side.
func ZeroCrossings(window []float64) int {
	count := 0
	for i := 1; i < len(window); i++ {
		if window[i-1]*window[i] < 0 {
			count++
		}
	}
	return count
}

// AxisRange returns display bounds for window padded by margin·(max-min)
// on each side. A flat or empty window yields [min, min+1] so the range is
// never empty. Negative margins are treated as zero.
func AxisRange(window []float64, margin float64) (lo, hi float64) {
	if len(window) == 0 {
		return 0, 1
	}
	if !(margin > 0) {
		margin = 0
	}

	lo = floats.Min(window)
	hi = floats.Max(window)
	pad := margin * (hi - lo)
	lo -= pad
	hi += pad

	if !(hi > lo) {
		hi = lo + 1
	}
	return lo, hi
}
