// Package grouping implements run-length detection over ordered integer
// values: a flat value list collapses into maximal constant-step runs for
// printable frame-range rendering ("10-20", "2-10x2", lone "35").
package grouping

import (
	"fmt"
	"strconv"
)

// Run is one maximal constant-step run of values, inclusive on both ends.
// A single value is a run with Start == End.
type Run struct {
	Start int
	End   int
	Step  int
}

// Single reports whether the run holds exactly one value.
func (r Run) Single() bool {
	return r.Start == r.End
}

// String renders the run in frame-range form: "7", "10-20", "2-10x2".
func (r Run) String() string {
	if r.Single() {
		return strconv.Itoa(r.Start)
	}
	if r.Step == 1 {
		return fmt.Sprintf("%d-%d", r.Start, r.End)
	}
	return fmt.Sprintf("%d-%dx%d", r.Start, r.End, r.Step)
}

// Ranges collapses values (in the order given) into maximal constant-step
// runs. A run with step 1 needs at least two members; any other step needs
// at least three, since "a-bxN" over two values would be ambiguous. Values
// that extend no run come back as singles. Non-increasing neighbors always
// break a run.
func Ranges(values []int) []Run {
	var runs []Run
	for i := 0; i < len(values); {
		if i+1 >= len(values) {
			runs = append(runs, Run{Start: values[i], End: values[i], Step: 1})
			i++
			continue
		}

		step := values[i+1] - values[i]
		j := i + 1
		if step > 0 {
			for j+1 < len(values) && values[j+1]-values[j] == step {
				j++
			}
		}
		length := j - i + 1

		switch {
		case step == 1 && length >= 2:
			runs = append(runs, Run{Start: values[i], End: values[j], Step: 1})
			i = j + 1
		case step > 1 && length >= 3:
			runs = append(runs, Run{Start: values[i], End: values[j], Step: step})
			i = j + 1
		default:
			runs = append(runs, Run{Start: values[i], End: values[i], Step: 1})
			i++
		}
	}
	return runs
}
