package sim

import (
	"fmt"

	"github.com/mahendrafhrz/eldig-sps/sim/model"
)

// phases levels generators by declared inputs: phase 0 holds channels with
// no inputs, phase k those whose inputs all sit in earlier phases. Within
// a phase channels are ascending by index.
func phases(gens []model.Generator) ([][]int, error) {
	n := len(gens)
	level := make([]int, n)
	pending := make([]int, n)
	dependents := make([][]int, n)

	for i, g := range gens {
		for _, in := range g.Inputs() {
			if in < 0 || in >= n {
				return nil, fmt.Errorf("channel %d input: %w: %d", i, ErrOutOfRange, in)
			}
			if in == i {
				return nil, fmt.Errorf("channel %d reads itself", i)
			}
			pending[i]++
			dependents[in] = append(dependents[in], i)
		}
	}

	var ready []int
	for i := range gens {
		if pending[i] == 0 {
			ready = append(ready, i)
		}
	}

	done := 0
	maxLevel := 0
	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]
		done++
		for _, d := range dependents[i] {
			if level[i]+1 > level[d] {
				level[d] = level[i] + 1
			}
			pending[d]--
			if pending[d] == 0 {
				ready = append(ready, d)
				if level[d] > maxLevel {
					maxLevel = level[d]
				}
			}
		}
	}
	if done != n {
		return nil, fmt.Errorf("channel inputs form a cycle")
	}

	out := make([][]int, maxLevel+1)
	for i := range gens {
		out[level[i]] = append(out[level[i]], i)
	}
	return out, nil
}
