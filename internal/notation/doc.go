// Package notation is the registry of textual conventions for encoding a
// numeric placeholder in a path: pound ("####"), percent ("%04d"), glob
// ("*"), angular ("<fnum>") and the dollar-F vendor token ("$F4").
//
// Every conversion between notations routes through the canonical
// intermediate [FormatString]: the path with each token replaced by a
// positional "{}" placeholder, plus a side-channel padding width per
// placeholder (0 when the source notation does not carry one).
//
// Codec resolution order is fixed (angular, dollarF, glob, percent, pound)
// because a template can satisfy more than one predicate; the first match
// wins, and a template matching none is treated as a concrete path with glob
// semantics and zero assumed padding.
package notation
