package time_test

import (
	"fmt"

	timestats "github.com/mahendrafhrz/eldig-sps/stats/time"
)

func ExampleSummarize() {
	s := timestats.Summarize([]float64{1, -1, 1, -1})
	fmt.Printf("rms=%.1f zc=%d\n", s.RMS, s.ZeroCrossings)

	// Output:
	// rms=1.0 zc=3
}

func ExampleAxisRange() {
	lo, hi := timestats.AxisRange([]float64{0, 10}, timestats.DefaultMargin)
	fmt.Printf("[%.1f, %.1f]\n", lo, hi)

	// Output:
	// [-1.0, 11.0]
}
