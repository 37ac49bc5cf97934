package sequence

import (
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/backmassage/frameseq/internal/notation"
	"github.com/backmassage/frameseq/internal/udim"
)

// parseTemplate builds the skeleton of a sequence (no elements) from a
// template in any notation. For a concrete path (no notation matched) it
// also returns the literal item, which becomes the only member; the
// sequence then uses glob semantics with zero assumed padding.
func parseTemplate(template string) (*Sequence, *Item, error) {
	codec, matched := notation.Resolve(template)

	if !matched {
		item, err := NewItem(template)
		if err != nil {
			return nil, nil, UnsupportedTemplateError{Template: template}
		}
		format := item.Format()
		s := &Sequence{
			template: template,
			codec:    codec,
			format:   format,
			paddings: make([]int, format.Dimensions()),
			concrete: true,
		}
		s.step = stepperFor(format.Dimensions())
		return s, item, nil
	}

	format, paddings := codec.Format(template)
	dims := format.Dimensions()
	if dims == 0 || dims > 2 {
		return nil, nil, UnsupportedTemplateError{Template: template, Dimensions: dims}
	}
	s := &Sequence{
		template: template,
		codec:    codec,
		format:   format,
		paddings: paddings,
		step:     stepperFor(dims),
	}
	return s, nil, nil
}

func stepperFor(dims int) stepper {
	if dims > 1 {
		return udimStepper{width: udim.DefaultWidth}
	}
	return linearStepper{}
}

// Make builds a sequence from a template, densely materializing every value
// in [start, end] inclusive (start > end is swapped). Multi-dimensional
// templates read start and end as linearized tile indexes and count with
// UDIM carry. start == end == 0 yields an empty sequence with a known
// template. A template with no numeric placeholder fails with
// [UnsupportedTemplateError].
func Make(template string, start, end int) (*Sequence, error) {
	if start > end {
		start, end = end, start
	}
	s, literal, err := parseTemplate(template)
	if err != nil {
		return nil, err
	}
	if literal != nil {
		s.elements = append(s.elements, literal)
		s.recalc()
		return s, nil
	}
	if start == 0 && end == 0 {
		return s, nil
	}

	startVec, endVec := []int{start}, []int{end}
	if s.Dimensions() > 1 {
		a, b := udim.Coords(start, udim.DefaultWidth), udim.Coords(end, udim.DefaultWidth)
		startVec, endVec = []int{a[0], a[1]}, []int{b[0], b[1]}
	}
	return s, s.populate(startVec, endVec)
}

// Make2D builds a two-dimensional sequence between explicit (x, y) bounds.
func Make2D(template string, start, end [2]int) (*Sequence, error) {
	s, literal, err := parseTemplate(template)
	if err != nil {
		return nil, err
	}
	if literal != nil {
		s.elements = append(s.elements, literal)
		s.recalc()
		return s, nil
	}
	if dims := s.Dimensions(); dims != 2 {
		return nil, UnsupportedTemplateError{Template: template, Dimensions: dims}
	}
	if start == end && start == [2]int{} {
		return s, nil
	}
	return s, s.populate([]int{start[0], start[1]}, []int{end[0], end[1]})
}

// makeDense materializes a template between explicit value vectors, used by
// item promotion.
func makeDense(template string, start, end []int) (*Sequence, error) {
	s, literal, err := parseTemplate(template)
	if err != nil {
		return nil, err
	}
	if literal != nil {
		s.elements = append(s.elements, literal)
		s.recalc()
		return s, nil
	}
	return s, s.populate(start, end)
}

// populate densely fills the sequence between two value vectors using its
// materialization strategy.
func (s *Sequence) populate(start, end []int) error {
	if compareValues(start, end) > 0 {
		start, end = end, start
	}
	steps, err := s.step.steps(start, end)
	if err != nil {
		return err
	}
	for vals := range steps {
		path, err := s.format.Fill(s.paddings, vals)
		if err != nil {
			return err
		}
		item, err := NewItem(path)
		if err != nil {
			return err
		}
		s.elements = append(s.elements, item)
	}
	s.recalc()
	return nil
}

// FromPaths builds a sparse sequence holding exactly the given paths. The
// template is inferred from the first path: consistent paddings across all
// paths give a pound template, inconsistent paddings fall back to the
// padding-insensitive glob notation.
func FromPaths(paths []string) (*Sequence, error) {
	if len(paths) == 0 {
		return nil, errors.New("no paths given")
	}

	items := make([]*Item, 0, len(paths))
	for _, p := range paths {
		item, err := NewItem(p)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	first := items[0]
	pads := first.Paddings()
	consistent := true
	for _, item := range items[1:] {
		if !slices.Equal(item.Paddings(), pads) {
			consistent = false
			break
		}
	}

	var template string
	if consistent {
		template = notation.Rebuild(first.Format(), notation.Pound, pads)
	} else {
		template = notation.Rebuild(first.Format(), notation.Glob, make([]int, len(pads)))
	}

	s, _, err := parseTemplate(template)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if err := s.Add(item); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// GroupPaths sorts paths lexicographically and groups them into sequences by
// padded-format signature. Groups of one path stay single items. Paths with
// no extractable digits cannot join a sequence and come back in skipped.
func GroupPaths(paths []string) (groups []Element, skipped []string) {
	sorted := slices.Clone(paths)
	sort.Strings(sorted)

	type group struct {
		template string
		items    []*Item
	}
	index := map[string]int{}
	var ordered []*group

	for _, p := range sorted {
		item, err := NewItem(p)
		if err != nil {
			skipped = append(skipped, p)
			continue
		}
		format, pads := item.Format(), item.Paddings()
		key := string(format) + "\x00" + joinInts(pads)
		i, ok := index[key]
		if !ok {
			i = len(ordered)
			index[key] = i
			ordered = append(ordered, &group{
				template: notation.Rebuild(format, notation.Pound, pads),
			})
		}
		ordered[i].items = append(ordered[i].items, item)
	}

	for _, g := range ordered {
		if len(g.items) == 1 {
			groups = append(groups, g.items[0])
			continue
		}
		seq, _, err := parseTemplate(g.template)
		if err != nil {
			for _, item := range g.items {
				skipped = append(skipped, item.Path())
			}
			continue
		}
		for _, item := range g.items {
			if err := seq.Add(item); err != nil {
				skipped = append(skipped, item.Path())
			}
		}
		groups = append(groups, seq)
	}
	return groups, skipped
}

// SplitGroups partitions grouped elements into true sequences and loose
// single items.
func SplitGroups(elements []Element) (sequences []*Sequence, items []*Item) {
	for _, el := range elements {
		switch v := el.(type) {
		case *Sequence:
			sequences = append(sequences, v)
		case *Item:
			items = append(items, v)
		}
	}
	return sequences, items
}

func joinInts(vals []int) string {
	var b strings.Builder
	for i, v := range vals {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}
