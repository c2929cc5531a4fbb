package signal_test

import (
	"fmt"

	"github.com/mahendrafhrz/eldig-sps/dsp/signal"
)

func ExampleUniform() {
	src := signal.NewSequence(0, 0.5, 0.999)
	for range 3 {
		fmt.Printf("%.2f\n", signal.Uniform(src, 0.4))
	}

	// Output:
	// -0.40
	// 0.00
	// 0.40
}
