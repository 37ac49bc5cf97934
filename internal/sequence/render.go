package sequence

import (
	"fmt"
	"strings"

	"github.com/backmassage/frameseq/internal/grouping"
	"github.com/backmassage/frameseq/internal/udim"
)

// String flattens the sequence to its leaf values, collapses them into
// printable runs, and renders "template [run, run, ...]". Multi-dimensional
// sequences collapse over the linearized tile index and print coordinates as
// "x,y".
func (s *Sequence) String() string {
	multi := s.Dimensions() > 1
	width := s.width()

	var values []int
	s.eachLeaf(func(it *Item) bool {
		vals := it.Values()
		if multi {
			values = append(values, udim.Index([2]int{vals[0], vals[1]}, width))
		} else if len(vals) > 0 {
			values = append(values, vals[0])
		}
		return true
	})

	runs := grouping.Ranges(values)
	parts := make([]string, 0, len(runs))
	for _, r := range runs {
		if multi {
			parts = append(parts, renderRun2D(r, width))
		} else {
			parts = append(parts, r.String())
		}
	}
	return fmt.Sprintf("%s [%s]", s.template, strings.Join(parts, ", "))
}

// renderRun2D prints a run of linearized tile indexes as coordinate pairs.
func renderRun2D(r grouping.Run, width int) string {
	pair := func(v int) string {
		xy := udim.Coords(v, width)
		return fmt.Sprintf("%d,%d", xy[0], xy[1])
	}
	if r.Single() {
		return pair(r.Start)
	}
	out := pair(r.Start) + "-" + pair(r.End)
	if r.Step != 1 {
		out += fmt.Sprintf("x%d", r.Step)
	}
	return out
}

// GoString renders a recursive constructor-style debug form. Nesting depth
// is threaded explicitly; the representation mirrors the element structure.
func (s *Sequence) GoString() string {
	return s.goString(0)
}

func (s *Sequence) goString(depth int) string {
	indent := strings.Repeat("    ", depth)
	inner := indent + "    "

	if len(s.elements) == 0 {
		return fmt.Sprintf("Sequence(template=%q, items=[])", s.template)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Sequence(template=%q,\n%sitems=[\n", s.template, inner)
	for _, el := range s.elements {
		switch v := el.(type) {
		case *Item:
			fmt.Fprintf(&b, "%s    %s,\n", inner, v.GoString())
		case *Sequence:
			fmt.Fprintf(&b, "%s    %s,\n", inner, v.goString(depth+2))
		}
	}
	fmt.Fprintf(&b, "%s],\n%s)", inner, indent)
	return b.String()
}
