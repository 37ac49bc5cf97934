package notation

import (
	"fmt"
	"strings"

	"github.com/backmassage/frameseq/internal/token"
)

// MissingPaddingError reports a conversion from a padding-insensitive
// notation into a padding-sensitive one without an explicit padding.
type MissingPaddingError struct {
	From string
	To   string
}

func (e MissingPaddingError) Error() string {
	return fmt.Sprintf("converting %q to %q requires an explicit padding", e.From, e.To)
}

// Convert re-renders template under dst. padding fills in token widths the
// source notation does not carry (pass 0 to supply none); it is required when
// crossing from an insensitive notation (glob, angular) into a sensitive one.
//
// A template that matches no notation is treated as a concrete path: its
// digit runs become dst tokens at their literal widths, so
// "/a/im.1001.tif" converts to "/a/im.####.tif" under pound.
func Convert(template string, dst *Codec, padding int) (string, error) {
	src, matched := Resolve(template)
	if !matched {
		return convertConcrete(template, dst, padding)
	}

	format, pads := src.Format(template)
	tokens := make([]string, 0, len(pads))
	for _, pad := range pads {
		if pad == 0 {
			pad = padding
		}
		if pad == 0 && dst.PaddingSensitive {
			return "", MissingPaddingError{From: src.Name, To: dst.Name}
		}
		tokens = append(tokens, dst.Token(pad))
	}
	return joinAlternating(format.Segments(), tokens), nil
}

// convertConcrete rewrites the digit runs of a literal path as dst tokens,
// keeping each run's width as the padding.
func convertConcrete(path string, dst *Codec, padding int) (string, error) {
	parts, err := token.Split(path)
	if err != nil {
		return "", err
	}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if !token.IsDigits(p) {
			out = append(out, p)
			continue
		}
		pad := len(p)
		if padding > 0 {
			pad = padding
		}
		out = append(out, dst.Token(pad))
	}
	return strings.Join(out, ""), nil
}

// Rebuild renders a template from a format string and one resolved padding
// per placeholder, minting fresh tokens of c's notation.
func Rebuild(f FormatString, c *Codec, paddings []int) string {
	tokens := make([]string, 0, len(paddings))
	for _, pad := range paddings {
		tokens = append(tokens, c.Token(pad))
	}
	return joinAlternating(f.Segments(), tokens)
}

// Dimensions returns the placeholder count of template under its resolved
// notation, or the digit-run count when the template is a concrete path.
func Dimensions(template string) (int, error) {
	c, matched := Resolve(template)
	if matched {
		format, _ := c.Format(template)
		return format.Dimensions(), nil
	}
	parts, err := token.Split(template)
	if err != nil {
		return 0, err
	}
	return len(token.Digits(parts)), nil
}
