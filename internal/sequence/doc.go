// Package sequence models file sequences: groups of paths that differ only
// in an embedded numeric index, such as rendered frames
// "shot.0001.exr" … "shot.0100.exr".
//
// An [Item] is a single path with derived digit values and paddings. A
// [Sequence] is an ordered, non-overlapping collection of items and nested
// sequences addressed by a notation template; it can be densely materialized
// from a (template, start, end) triple or built sparsely by insertion.
// Multi-dimensional templates (UDIM tiles) materialize through the
// carry-propagating iterators in the udim package.
//
// Sequences exclusively own their elements: every insertion stores a deep
// copy, so mutating the caller's original never corrupts a sequence.
package sequence
