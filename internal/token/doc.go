// Package token splits sequence paths into alternating non-digit and digit
// parts. A path like "/shots/beach/plate.1001.exr" splits into
// ["/shots/beach/plate.", "1001", ".exr"]; joining the parts reproduces the
// input exactly.
//
// Delimiter candidates (".": frame numbers, "_u"/"_v": tile coordinates) are
// tried in a fixed priority order; the first candidate that exposes at least
// one digit run in the basename is kept for the lifetime of the item. Paths
// with no extractable digits cannot be sequence members and fail with
// [NoDigitsError].
package token
