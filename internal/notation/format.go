package notation

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// placeholder marks one digit position in a FormatString.
const placeholder = "{}"

// FormatString is a path with every digit token replaced by a positional
// "{}" placeholder. It carries no widths; paddings travel beside it as a
// []int (one entry per placeholder, 0 = unknown/unpadded).
type FormatString string

// Dimensions returns the number of placeholders.
func (f FormatString) Dimensions() int {
	return strings.Count(string(f), placeholder)
}

// Segments returns the literal text around the placeholders. A format with
// n placeholders has n+1 segments (possibly empty at either end).
func (f FormatString) Segments() []string {
	return strings.Split(string(f), placeholder)
}

// Fill renders the format with concrete values. Each value is zero-padded to
// the matching width in paddings; a width of 0 renders unpadded. paddings may
// be nil (all unpadded) or have one entry per placeholder.
func (f FormatString) Fill(paddings, values []int) (string, error) {
	dims := f.Dimensions()
	if len(values) != dims {
		return "", errors.Errorf("format %q expects %d value(s), got %d", string(f), dims, len(values))
	}
	if paddings != nil && len(paddings) != dims {
		return "", errors.Errorf("format %q expects %d padding(s), got %d", string(f), dims, len(paddings))
	}

	segs := f.Segments()
	var b strings.Builder
	for i, v := range values {
		b.WriteString(segs[i])
		pad := 0
		if paddings != nil {
			pad = paddings[i]
		}
		if pad > 0 {
			fmt.Fprintf(&b, "%0*d", pad, v)
		} else {
			fmt.Fprintf(&b, "%d", v)
		}
	}
	b.WriteString(segs[len(segs)-1])
	return b.String(), nil
}

// joinAlternating rebuilds a template from n+1 literal segments and n tokens.
func joinAlternating(segments, tokens []string) string {
	var b strings.Builder
	for i, seg := range segments {
		b.WriteString(seg)
		if i < len(tokens) {
			b.WriteString(tokens[i])
		}
	}
	return b.String()
}
