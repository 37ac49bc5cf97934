// Package udim implements the UDIM-style index iterators: counters that jump
// by 90 instead of 1 every time they cross a fixed width boundary, so index
// 9 is followed by 100 at the default width of 10. The 2D variant treats the
// pair (x, y) as the high and low digit of a base-width counter.
package udim

import (
	"fmt"
	"iter"
)

// DefaultWidth is the historical UDIM tile width.
const DefaultWidth = 10

// NegativeStartError reports a negative starting shell index, which the
// numbering scheme cannot express.
type NegativeStartError struct {
	Start int
}

func (e NegativeStartError) Error() string {
	return fmt.Sprintf("udim start %d is negative", e.Start)
}

// BaseIterator yields carry-adjusted values for every v in [Start, End]
// inclusive: (v/Width)*100 + v%Width. It operates on zero-based indexes; use
// [New] with [Mari] for 1001-based input.
type BaseIterator struct {
	Start int
	End   int
	Width int
}

// NewBase builds a BaseIterator over [start, end] inclusive. Reversed bounds
// are swapped; width <= 0 falls back to DefaultWidth.
func NewBase(start, end, width int) (BaseIterator, error) {
	if start > end {
		start, end = end, start
	}
	if start < 0 {
		return BaseIterator{}, NegativeStartError{Start: start}
	}
	if width <= 0 {
		width = DefaultWidth
	}
	return BaseIterator{Start: start, End: end, Width: width}, nil
}

// Values iterates the carry-adjusted sequence. The returned iterator is
// restartable and side-effect free.
func (it BaseIterator) Values() iter.Seq[int] {
	return func(yield func(int) bool) {
		for v := it.Start; v <= it.End; v++ {
			if !yield((v/it.Width)*100 + v%it.Width) {
				return
			}
		}
	}
}

// Style selects how input bounds are normalized before iteration.
type Style string

const (
	// Raw passes bounds through unchanged (zero-based shell indexes).
	Raw Style = "raw"
	// Mari rescales 1001-based Mari tile numbers into the raw domain.
	Mari Style = "mari"
)

// UnknownStyleError reports an unrecognized normalization style.
type UnknownStyleError struct {
	Style Style
}

func (e UnknownStyleError) Error() string {
	return fmt.Sprintf("unknown udim style %q (want %q or %q)", e.Style, Raw, Mari)
}

// New builds a BaseIterator after normalizing start and end according to
// style. Reversed bounds are swapped before normalization.
func New(start, end, width int, style Style) (BaseIterator, error) {
	if start > end {
		start, end = end, start
	}
	switch style {
	case Raw, "":
	case Mari:
		start = mariToRaw(start)
		end = mariToRaw(end)
	default:
		return BaseIterator{}, UnknownStyleError{Style: style}
	}
	return NewBase(start, end, width)
}

// mariToRaw converts a Mari tile number back to a zero-based shell index:
// tile 1001 is shell 0, tile 1010 is shell 9, tile 1101 is shell 10.
func mariToRaw(v int) int {
	v -= 1001
	return (v/100)*10 + v%10
}

// Iterator2D drives the base iterator from (x, y) pairs: the pair maps to
// x*width + y on input and each output splits back into (v/100, v%100).
type Iterator2D struct {
	base BaseIterator
}

// New2D builds a 2D iterator over the inclusive pair range [start, end].
func New2D(start, end [2]int, width int) (Iterator2D, error) {
	if width <= 0 {
		width = DefaultWidth
	}
	base, err := NewBase(Index(start, width), Index(end, width), width)
	if err != nil {
		return Iterator2D{}, err
	}
	return Iterator2D{base: base}, nil
}

// Values iterates the carry-adjusted sequence as (x, y) pairs.
func (it Iterator2D) Values() iter.Seq[[2]int] {
	return func(yield func([2]int) bool) {
		for v := range it.base.Values() {
			if !yield([2]int{v / 100, v % 100}) {
				return
			}
		}
	}
}

// Index collapses a 2D shell coordinate into its 1D index.
func Index(xy [2]int, width int) int {
	return xy[0]*width + xy[1]
}

// Coords expands a 1D index into its 2D shell coordinate.
func Coords(v, width int) [2]int {
	return [2]int{v / width, v % width}
}
