package sequence

import (
	"iter"
	"slices"
	"strconv"

	"github.com/pkg/errors"

	"github.com/backmassage/frameseq/internal/notation"
	"github.com/backmassage/frameseq/internal/udim"
)

// Sequence is an ordered, non-overlapping range of items and nested
// sequences sharing one notation template. Elements stay sorted by numeric
// value, and the start/end bounds are recomputed after every structural
// mutation.
type Sequence struct {
	template string
	codec    *notation.Codec
	format   notation.FormatString
	paddings []int
	step     stepper

	// concrete marks a sequence built from a literal path rather than a
	// recognized notation template (glob semantics, zero assumed padding).
	concrete bool

	elements []Element
	startEl  Element
	endEl    Element
}

// Template returns the current notation pattern.
func (s *Sequence) Template() string { return s.template }

// Notation returns the name of the active notation.
func (s *Sequence) Notation() string { return s.codec.Name }

// Format returns the canonical format string of the template.
func (s *Sequence) Format() notation.FormatString { return s.format }

// Dimensions returns the number of placeholders in the template.
func (s *Sequence) Dimensions() int { return s.format.Dimensions() }

// Len returns the number of direct elements (items or nested sequences).
func (s *Sequence) Len() int { return len(s.elements) }

// Count returns the number of leaf items, descending into nested sequences.
func (s *Sequence) Count() int {
	n := 0
	s.eachLeaf(func(*Item) bool { n++; return true })
	return n
}

// Elements returns the direct elements in order. The slice is a copy; the
// elements themselves are the stored ones.
func (s *Sequence) Elements() []Element {
	return slices.Clone(s.elements)
}

// Start returns the lowest value vector in the sequence, or nil when empty.
func (s *Sequence) Start() []int {
	if s.startEl == nil {
		return nil
	}
	return s.startEl.spanStart()
}

// End returns the highest value vector in the sequence, or nil when empty.
func (s *Sequence) End() []int {
	if s.endEl == nil {
		return nil
	}
	return s.endEl.spanEnd()
}

// StartElement returns the element currently bounding the low end.
func (s *Sequence) StartElement() Element { return s.startEl }

// EndElement returns the element currently bounding the high end.
func (s *Sequence) EndElement() Element { return s.endEl }

// StartItem returns the leaf item at the very start, descending through
// nested sequences. It is nil when the sequence is empty.
func (s *Sequence) StartItem() *Item {
	el := s.startEl
	for {
		switch v := el.(type) {
		case *Item:
			return v
		case *Sequence:
			el = v.startEl
		default:
			return nil
		}
	}
}

// EndItem returns the leaf item at the very end, descending through nested
// sequences. It is nil when the sequence is empty.
func (s *Sequence) EndItem() *Item {
	el := s.endEl
	for {
		switch v := el.(type) {
		case *Item:
			return v
		case *Sequence:
			el = v.endEl
		default:
			return nil
		}
	}
}

// recalc rescans the elements for the true minimum and maximum. It runs
// after every structural mutation.
func (s *Sequence) recalc() {
	s.startEl, s.endEl = nil, nil
	for _, el := range s.elements {
		if s.startEl == nil || compareValues(el.spanStart(), s.startEl.spanStart()) < 0 {
			s.startEl = el
		}
		if s.endEl == nil || compareValues(el.spanEnd(), s.endEl.spanEnd()) > 0 {
			s.endEl = el
		}
	}
}

// Insert stores a copy of el at index without any ordering or overlap
// checks. Prefer [Sequence.Add], which finds the sorted spot; Insert can
// break the sorted-elements invariant if used carelessly.
func (s *Sequence) Insert(index int, el Element) {
	s.elements = slices.Insert(s.elements, index, el.cloneElement())
	s.recalc()
}

// Remove deletes the element at index and recomputes the bounds. Deleting
// the last element leaves the sequence populated-but-empty: the template
// survives, Start and End become nil.
func (s *Sequence) Remove(index int) {
	s.elements = slices.Delete(s.elements, index, index+1)
	s.recalc()
}

// Add stores a copy of el at the first position whose value exceeds el's.
// Inserting a sequence that overlaps this one without fitting fails with
// [OverlapError]; an item never fails.
func (s *Sequence) Add(el Element) error {
	if nested, ok := el.(*Sequence); ok {
		if s.Overlaps(nested) && !s.Fits(nested) {
			return OverlapError{Template: nested.template}
		}
	}
	start := el.spanStart()
	idx := len(s.elements)
	for i, stored := range s.elements {
		if compareValues(stored.spanStart(), start) > 0 {
			idx = i
			break
		}
	}
	s.Insert(idx, el)
	return nil
}

// AddValue renders value through the template and adds the resulting item.
// The sequence must be one-dimensional.
func (s *Sequence) AddValue(value int) error {
	return s.AddValues([]int{value})
}

// AddValues renders a value vector through the template and adds the
// resulting item; len(values) must match the template's dimensionality.
func (s *Sequence) AddValues(values []int) error {
	if dims := s.Dimensions(); len(values) != dims {
		return DimensionMismatchError{Expected: dims, Actual: len(values)}
	}
	path, err := s.format.Fill(s.paddings, values)
	if err != nil {
		return err
	}
	item, err := NewItem(path)
	if err != nil {
		return err
	}
	return s.Add(item)
}

// AddPath wraps a concrete path into an item and adds it.
func (s *Sequence) AddPath(path string) error {
	item, err := NewItem(path)
	if err != nil {
		return err
	}
	return s.Add(item)
}

// leftOf reports whether a sits entirely before b: a's range ends before b's
// begins, with both ranges well-formed.
func leftOf(a, b *Sequence) bool {
	return compareValues(a.Start(), b.End()) < 0 && compareValues(a.End(), b.Start()) < 0
}

// Before reports whether this sequence's range ends strictly before other's
// begins.
func (s *Sequence) Before(other *Sequence) bool { return leftOf(s, other) }

// After reports whether this sequence's range begins strictly after other's
// ends.
func (s *Sequence) After(other *Sequence) bool { return leftOf(other, s) }

// ValuesOverlap reports whether the numeric ranges intersect, regardless of
// template.
func (s *Sequence) ValuesOverlap(other *Sequence) bool {
	return !(s.Before(other) || s.After(other))
}

// SameTemplate reports whether both sequences render under the same format
// string. Sequences with different names never overlap, whatever their
// numbers.
func (s *Sequence) SameTemplate(other *Sequence) bool {
	return s.format == other.format
}

// Overlaps reports whether the ranges intersect and the templates match.
func (s *Sequence) Overlaps(other *Sequence) bool {
	return s.ValuesOverlap(other) && s.SameTemplate(other)
}

// Fits reports whether other can be merged into this sequence: the ranges
// interleave (neither strictly before nor after) and no concrete item of
// other is already present here.
func (s *Sequence) Fits(other *Sequence) bool {
	if s.Before(other) || s.After(other) || !s.Overlaps(other) {
		return false
	}
	ok := true
	other.eachLeaf(func(it *Item) bool {
		if s.ContainsPath(it.Path()) {
			ok = false
			return false
		}
		return true
	})
	return ok
}

// ContainsPath reports whether any leaf item renders exactly path.
func (s *Sequence) ContainsPath(path string) bool {
	found := false
	s.eachLeaf(func(it *Item) bool {
		if it.Path() == path {
			found = true
			return false
		}
		return true
	})
	return found
}

// Contains reports whether every leaf of el is already present, compared by
// rendered path.
func (s *Sequence) Contains(el Element) bool {
	all := true
	el.eachLeaf(func(it *Item) bool {
		if !s.ContainsPath(it.Path()) {
			all = false
			return false
		}
		return true
	})
	return all
}

// HasValue reports whether any leaf item carries exactly the given value
// vector.
func (s *Sequence) HasValue(values ...int) bool {
	found := false
	s.eachLeaf(func(it *Item) bool {
		if compareValues(it.Values(), values) == 0 {
			found = true
			return false
		}
		return true
	})
	return found
}

// RangeMode selects what [Sequence.Range] yields.
type RangeMode int

const (
	// Real yields the direct elements, nested sequences unexpanded.
	Real RangeMode = iota
	// Flat descends depth-first and yields only leaf items, in child order.
	Flat
	// Bounds ignores the stored elements and regenerates the dense range
	// between Start and End; the yield may include values absent from the
	// sparse contents, which is the point (gap detection and filling).
	Bounds
)

// Range returns a lazy, restartable iterator over the sequence in the given
// mode. Bounds mode recomputes from the current Start/End on every call.
func (s *Sequence) Range(mode RangeMode) iter.Seq[Element] {
	switch mode {
	case Flat:
		return func(yield func(Element) bool) {
			s.eachLeaf(func(it *Item) bool { return yield(it) })
		}
	case Bounds:
		return func(yield func(Element) bool) {
			if s.startEl == nil {
				return
			}
			// Stored items carry unsigned digit runs, so bounds derived
			// from them never fail stepper construction.
			steps, err := s.step.steps(s.Start(), s.End())
			if err != nil {
				return
			}
			for vals := range steps {
				path, err := s.format.Fill(s.paddings, vals)
				if err != nil {
					return
				}
				item, err := NewItem(path)
				if err != nil {
					return
				}
				if !yield(item) {
					return
				}
			}
		}
	default:
		return func(yield func(Element) bool) {
			for _, el := range s.elements {
				if !yield(el) {
					return
				}
			}
		}
	}
}

// Items iterates the leaf items depth-first.
func (s *Sequence) Items() iter.Seq[*Item] {
	return func(yield func(*Item) bool) {
		s.eachLeaf(yield)
	}
}

// SetStart rewrites the recursive start item to carry value.
func (s *Sequence) SetStart(value ...int) error {
	return s.setBound(s.StartItem(), value)
}

// SetEnd rewrites the recursive end item to carry value.
func (s *Sequence) SetEnd(value ...int) error {
	return s.setBound(s.EndItem(), value)
}

func (s *Sequence) setBound(item *Item, value []int) error {
	if item == nil {
		return errors.Errorf("sequence %q is empty", s.template)
	}
	if compareValues(item.Values(), value) == 0 {
		return nil
	}
	if err := item.SetValues(value); err != nil {
		return err
	}
	s.recalc()
	return nil
}

// minPaddingAt returns the digit width needed for the largest stored value
// at the given placeholder position.
func (s *Sequence) minPaddingAt(position int) int {
	min := 0
	s.eachLeaf(func(it *Item) bool {
		vals := it.Values()
		if position < len(vals) {
			if w := len(strconv.Itoa(vals[position])); w > min {
				min = w
			}
		}
		return true
	})
	return min
}

// SetPadding changes every placeholder's padding. A width narrower than the
// largest stored value needs fails with [PaddingTooLowError] unless force is
// set.
func (s *Sequence) SetPadding(width int, force bool) error {
	if !force {
		for pos := range s.paddings {
			if min := s.minPaddingAt(pos); width < min {
				return PaddingTooLowError{Padding: width, Minimum: min}
			}
		}
	}
	for _, el := range s.elements {
		switch v := el.(type) {
		case *Item:
			v.SetPadding(width)
		case *Sequence:
			_ = v.SetPadding(width, true)
		}
	}
	for pos := range s.paddings {
		s.paddings[pos] = width
	}
	s.rebuildTemplate()
	return nil
}

// SetPaddingAt changes the padding of one placeholder position.
func (s *Sequence) SetPaddingAt(width, position int, force bool) error {
	if position < 0 || position >= len(s.paddings) {
		return errors.Errorf("position %d out of range for %d-dimensional sequence %q", position, len(s.paddings), s.template)
	}
	if !force {
		if min := s.minPaddingAt(position); width < min {
			return PaddingTooLowError{Padding: width, Minimum: min}
		}
	}
	for _, el := range s.elements {
		switch v := el.(type) {
		case *Item:
			if err := v.SetPaddingAt(width, position); err != nil {
				return err
			}
		case *Sequence:
			if err := v.SetPaddingAt(width, position, true); err != nil {
				return err
			}
		}
	}
	s.paddings[position] = width
	s.rebuildTemplate()
	return nil
}

// rebuildTemplate re-renders the template from the format string and the
// current paddings. Concrete sequences keep their literal path as template.
func (s *Sequence) rebuildTemplate() {
	if s.concrete {
		if item := s.StartItem(); item != nil {
			s.template = item.Path()
		}
		return
	}
	s.template = notation.Rebuild(s.format, s.codec, s.paddings)
}

// SetType re-renders the template under a different notation. padding <= 0
// means unspecified; it is required when crossing from a padding-insensitive
// notation into a sensitive one with no stored widths, and otherwise behaves
// like [Sequence.SetPadding]. Converting to the current notation is a no-op.
func (s *Sequence) SetType(name string, padding int) error {
	dst, ok := notation.ByName(name)
	if !ok {
		return errors.Errorf("unknown notation %q", name)
	}
	if dst == s.codec && !s.concrete {
		return nil
	}

	pads := slices.Clone(s.paddings)
	for i, pad := range pads {
		if pad == 0 && padding > 0 {
			pads[i] = padding
		}
		if pads[i] == 0 && dst.PaddingSensitive {
			return notation.MissingPaddingError{From: s.codec.Name, To: dst.Name}
		}
	}

	s.template = notation.Rebuild(s.format, dst, pads)
	s.codec = dst
	s.concrete = false
	if dst.PaddingSensitive {
		s.paddings = pads
	} else {
		s.paddings = make([]int, len(pads))
	}
	if padding > 0 {
		return s.SetPadding(padding, false)
	}
	return nil
}

// Equal reports whether both sequences flatten to the same leaf paths in the
// same order.
func (s *Sequence) Equal(other *Sequence) bool {
	if other == nil {
		return false
	}
	var a, b []string
	s.eachLeaf(func(it *Item) bool { a = append(a, it.Path()); return true })
	other.eachLeaf(func(it *Item) bool { b = append(b, it.Path()); return true })
	return slices.Equal(a, b)
}

// Clone returns a deep copy: template, notation state, and copies of every
// element.
func (s *Sequence) Clone() *Sequence {
	c := &Sequence{
		template: s.template,
		codec:    s.codec,
		format:   s.format,
		paddings: slices.Clone(s.paddings),
		step:     s.step,
		concrete: s.concrete,
	}
	for _, el := range s.elements {
		c.elements = append(c.elements, el.cloneElement())
	}
	c.recalc()
	return c
}

// width returns the carry width of a multi-dimensional sequence, or the
// default for linear ones (used only for rendering).
func (s *Sequence) width() int {
	if u, ok := s.step.(udimStepper); ok {
		return u.width
	}
	return udim.DefaultWidth
}
