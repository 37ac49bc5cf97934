package sequence

import "fmt"

// DimensionMismatchError reports a value count that does not match an item's
// or sequence's dimensionality when no position was given.
type DimensionMismatchError struct {
	Expected int
	Actual   int
}

func (e DimensionMismatchError) Error() string {
	return fmt.Sprintf("expected %d value(s), got %d; supply one per dimension or give a position", e.Expected, e.Actual)
}

// TemplateMismatchError reports two paths that differ somewhere outside
// their digit runs and therefore cannot form one sequence.
type TemplateMismatchError struct {
	Path  string
	Other string
}

func (e TemplateMismatchError) Error() string {
	return fmt.Sprintf("path %q does not match %q outside its digit runs", e.Other, e.Path)
}

// IdenticalValueError reports a promotion between two paths that carry the
// same numeric value.
type IdenticalValueError struct {
	Path string
}

func (e IdenticalValueError) Error() string {
	return fmt.Sprintf("path %q carries the same value as the item it would extend", e.Path)
}

// OverlapError reports an insertion of a sequence that overlaps the receiver
// but does not fit (at least one concrete item collides or the ranges do not
// interleave cleanly).
type OverlapError struct {
	Template string
}

func (e OverlapError) Error() string {
	return fmt.Sprintf("sequence %q overlaps and does not fit", e.Template)
}

// PaddingTooLowError reports a padding narrower than the digit width needed
// for the largest value already in the sequence.
type PaddingTooLowError struct {
	Padding int
	Minimum int
}

func (e PaddingTooLowError) Error() string {
	return fmt.Sprintf("padding %d is too low: the largest stored value needs width %d", e.Padding, e.Minimum)
}

// UnsupportedTemplateError reports a template whose placeholder count the
// factory cannot drive (zero, or more than two).
type UnsupportedTemplateError struct {
	Template   string
	Dimensions int
}

func (e UnsupportedTemplateError) Error() string {
	if e.Dimensions == 0 {
		return fmt.Sprintf("template %q has no numeric placeholder", e.Template)
	}
	return fmt.Sprintf("template %q has %d placeholders; only 1 or 2 are supported", e.Template, e.Dimensions)
}
