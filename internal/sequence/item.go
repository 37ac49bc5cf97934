package sequence

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/backmassage/frameseq/internal/notation"
	"github.com/backmassage/frameseq/internal/token"
)

// Item is a single member of a sequence: a concrete path plus the digit
// values derived from it. The path is the only stored state; values,
// paddings and dimensionality are recomputed from it on demand, and the
// value/padding setters rewrite the path in place.
type Item struct {
	path  string
	split *token.Splitter
}

// NewItem builds an Item from a concrete path. The delimiter choice is made
// once here and cached; a path with no digit run in its basename fails with
// [token.NoDigitsError].
func NewItem(path string) (*Item, error) {
	split, err := token.Choose(path)
	if err != nil {
		return nil, err
	}
	return &Item{path: path, split: split}, nil
}

// Path returns the current path.
func (it *Item) Path() string { return it.path }

func (it *Item) String() string { return it.path }

// GoString renders a constructor-style debug form.
func (it *Item) GoString() string {
	return fmt.Sprintf("Item(%q)", it.path)
}

func (it *Item) parts() []string {
	return it.split.Split(it.path)
}

// Values returns every digit value in the path, in order.
func (it *Item) Values() []int {
	var vals []int
	for _, d := range token.Digits(it.parts()) {
		n, _ := strconv.Atoi(d)
		vals = append(vals, n)
	}
	return vals
}

// Value returns the single digit value of a one-dimensional item. It fails
// with [DimensionMismatchError] on multi-dimensional items.
func (it *Item) Value() (int, error) {
	vals := it.Values()
	if len(vals) != 1 {
		return 0, DimensionMismatchError{Expected: 1, Actual: len(vals)}
	}
	return vals[0], nil
}

// Dimensions returns the number of digit runs in the path.
func (it *Item) Dimensions() int {
	return len(token.Digits(it.parts()))
}

// Paddings returns the width of every digit run, in order.
func (it *Item) Paddings() []int {
	var pads []int
	for _, d := range token.Digits(it.parts()) {
		pads = append(pads, len(d))
	}
	return pads
}

// Padding returns the width of the digit run at position.
func (it *Item) Padding(position int) (int, error) {
	pads := it.Paddings()
	if position < 0 || position >= len(pads) {
		return 0, errors.Errorf("position %d out of range for %d-dimensional item %q", position, len(pads), it.path)
	}
	return pads[position], nil
}

// Format returns the canonical format string of the path: every digit run
// replaced by a positional placeholder.
func (it *Item) Format() notation.FormatString {
	parts := it.parts()
	segs := make([]string, len(parts))
	for i, p := range parts {
		if token.IsDigits(p) {
			segs[i] = "{}"
		} else {
			segs[i] = p
		}
	}
	return notation.FormatString(strings.Join(segs, ""))
}

// rewrite applies fn to every digit run (indexed by digit position) and
// stores the resulting path.
func (it *Item) rewrite(fn func(position int, digits string) string) {
	parts := it.parts()
	pos := 0
	for i, p := range parts {
		if token.IsDigits(p) {
			parts[i] = fn(pos, p)
			pos++
		}
	}
	it.path = strings.Join(parts, "")
}

// SetValue changes the value of a one-dimensional item, preserving the
// previous padding. Multi-dimensional items need [Item.SetValueAt] or
// [Item.SetValues].
func (it *Item) SetValue(value int) error {
	if dims := it.Dimensions(); dims != 1 {
		return DimensionMismatchError{Expected: dims, Actual: 1}
	}
	return it.SetValueAt(value, 0)
}

// SetValueAt changes the digit run at position, zero-padded to its previous
// width.
func (it *Item) SetValueAt(value, position int) error {
	if dims := it.Dimensions(); position < 0 || position >= dims {
		return errors.Errorf("position %d out of range for %d-dimensional item %q", position, dims, it.path)
	}
	it.rewrite(func(pos int, digits string) string {
		if pos != position {
			return digits
		}
		return fmt.Sprintf("%0*d", len(digits), value)
	})
	return nil
}

// SetValues changes every digit run at once; len(values) must equal the
// item's dimensionality.
func (it *Item) SetValues(values []int) error {
	if dims := it.Dimensions(); len(values) != dims {
		return DimensionMismatchError{Expected: dims, Actual: len(values)}
	}
	it.rewrite(func(pos int, digits string) string {
		return fmt.Sprintf("%0*d", len(digits), values[pos])
	})
	return nil
}

// SetPadding re-renders every digit run zero-padded to width. A width
// narrower than a run's value keeps the full value.
func (it *Item) SetPadding(width int) {
	it.rewrite(func(_ int, digits string) string {
		n, _ := strconv.Atoi(digits)
		return fmt.Sprintf("%0*d", width, n)
	})
}

// SetPaddingAt re-renders the digit run at position zero-padded to width.
func (it *Item) SetPaddingAt(width, position int) error {
	if dims := it.Dimensions(); position < 0 || position >= dims {
		return errors.Errorf("position %d out of range for %d-dimensional item %q", position, dims, it.path)
	}
	it.rewrite(func(pos int, digits string) string {
		if pos != position {
			return digits
		}
		n, _ := strconv.Atoi(digits)
		return fmt.Sprintf("%0*d", width, n)
	})
	return nil
}

// Clone returns an independent copy.
func (it *Item) Clone() *Item {
	return &Item{path: it.path, split: it.split}
}

// Equal reports whether both items render the same path.
func (it *Item) Equal(other *Item) bool {
	return other != nil && it.path == other.path
}

// MatchesTemplate reports whether path names a sibling of this item: same
// directory and the same format string.
func (it *Item) MatchesTemplate(path string) bool {
	other, err := NewItem(path)
	if err != nil {
		return false
	}
	return filepath.Dir(it.path) == filepath.Dir(path) && it.Format() == other.Format()
}

// Promote builds the minimal dense sequence spanning this item and a sibling
// path, under a pound template at this item's paddings. It fails with
// [TemplateMismatchError] when the paths differ outside their digit runs and
// with [IdenticalValueError] when both carry the same value.
func (it *Item) Promote(otherPath string) (*Sequence, error) {
	if !it.MatchesTemplate(otherPath) {
		return nil, TemplateMismatchError{Path: it.path, Other: otherPath}
	}
	other, err := NewItem(otherPath)
	if err != nil {
		return nil, err
	}

	start, end := it.Values(), other.Values()
	switch cmp := compareValues(start, end); {
	case cmp == 0:
		return nil, IdenticalValueError{Path: otherPath}
	case cmp > 0:
		start, end = end, start
	}

	var template strings.Builder
	for _, p := range it.parts() {
		if token.IsDigits(p) {
			template.WriteString(strings.Repeat("#", len(p)))
		} else {
			template.WriteString(p)
		}
	}
	return makeDense(template.String(), start, end)
}
