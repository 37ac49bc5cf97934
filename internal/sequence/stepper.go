package sequence

import (
	"iter"

	"github.com/backmassage/frameseq/internal/udim"
)

// stepper is a sequence's dense-materialization strategy: it enumerates
// every value vector in [start, end] inclusive. One-dimensional templates
// count linearly; two-dimensional (UDIM) templates count with carry, and
// reject bounds the numbering scheme cannot express.
type stepper interface {
	steps(start, end []int) (iter.Seq[[]int], error)
}

type linearStepper struct{}

func (linearStepper) steps(start, end []int) (iter.Seq[[]int], error) {
	return func(yield func([]int) bool) {
		if len(start) == 0 || len(end) == 0 {
			return
		}
		lo, hi := start[0], end[0]
		if lo > hi {
			lo, hi = hi, lo
		}
		for v := lo; v <= hi; v++ {
			if !yield([]int{v}) {
				return
			}
		}
	}, nil
}

type udimStepper struct {
	width int
}

func (u udimStepper) steps(start, end []int) (iter.Seq[[]int], error) {
	if len(start) == 0 || len(end) == 0 {
		return func(yield func([]int) bool) {}, nil
	}
	it, err := udim.New2D(u.pair(start), u.pair(end), u.width)
	if err != nil {
		return nil, err
	}
	return func(yield func([]int) bool) {
		for xy := range it.Values() {
			if !yield([]int{xy[0], xy[1]}) {
				return
			}
		}
	}, nil
}

// pair conforms a value vector to a 2D coordinate; a scalar is read as a
// linear tile index.
func (u udimStepper) pair(v []int) [2]int {
	if len(v) >= 2 {
		return [2]int{v[0], v[1]}
	}
	return udim.Coords(v[0], u.width)
}
