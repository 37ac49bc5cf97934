package sequence

import "slices"

// Element is a direct member of a Sequence: either a single *Item or a
// nested *Sequence. The interface is sealed by its unexported methods; no
// other implementation exists, so callers dispatch with a type switch.
type Element interface {
	// Label returns the path of an item or the template of a sequence.
	Label() string

	spanStart() []int
	spanEnd() []int
	cloneElement() Element
	eachLeaf(yield func(*Item) bool) bool
}

// Label returns the item's path.
func (it *Item) Label() string { return it.path }

func (it *Item) spanStart() []int { return it.Values() }

func (it *Item) spanEnd() []int { return it.Values() }

func (it *Item) cloneElement() Element { return it.Clone() }

func (it *Item) eachLeaf(yield func(*Item) bool) bool { return yield(it) }

// Label returns the sequence's template.
func (s *Sequence) Label() string { return s.template }

func (s *Sequence) spanStart() []int { return s.Start() }

func (s *Sequence) spanEnd() []int { return s.End() }

func (s *Sequence) cloneElement() Element { return s.Clone() }

func (s *Sequence) eachLeaf(yield func(*Item) bool) bool {
	for _, el := range s.elements {
		if !el.eachLeaf(yield) {
			return false
		}
	}
	return true
}

// compareValues orders value vectors lexicographically; a nil vector (empty
// sequence bound) sorts first.
func compareValues(a, b []int) int {
	return slices.Compare(a, b)
}
