package buffer_test

import (
	"fmt"

	"github.com/mahendrafhrz/eldig-sps/dsp/buffer"
)

func ExampleRing_Window() {
	r, err := buffer.NewRing(1, 4)
	if err != nil {
		panic(err)
	}
	for _, v := range []float64{1, 2, 3, 4, 5} {
		r.Push([buffer.StageCount][]float64{{v}})
	}

	w, _ := r.Window(nil, 0, buffer.Raw)
	fmt.Println(w)

	// Output:
	// [2 3 4 5]
}
