package notation

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Codec describes one notation: how to recognize it in a template, how to
// reduce its tokens to the canonical FormatString, how to read a padding out
// of a token, and how to mint a fresh token for a given padding.
type Codec struct {
	Name string

	// PaddingSensitive is false when the notation cannot express a width
	// (glob, angular, bare $F). Converting from an insensitive notation to a
	// sensitive one needs an explicit padding.
	PaddingSensitive bool

	tokenRe *regexp.Regexp
	match   func(base string) bool
	pad     func(tok string) int
	token   func(padding int) string
}

// Match reports whether the basename of path is written in this notation.
func (c *Codec) Match(path string) bool {
	return c.match(filepath.Base(path))
}

// Format reduces template to the canonical FormatString plus the padding
// carried by each token (0 when the notation does not encode one).
func (c *Codec) Format(template string) (FormatString, []int) {
	var pads []int
	out := c.tokenRe.ReplaceAllStringFunc(template, func(tok string) string {
		pads = append(pads, c.pad(tok))
		return placeholder
	})
	return FormatString(out), pads
}

// TokenPadding extracts the padding encoded in a single token of this
// notation. ok is false when the token carries no width ("*", "<fnum>",
// bare "$F").
func (c *Codec) TokenPadding(tok string) (pad int, ok bool) {
	pad = c.pad(tok)
	return pad, pad > 0
}

// Token renders a fresh token of this notation at the given padding.
// Padding-insensitive notations ignore the argument.
func (c *Codec) Token(padding int) string {
	return c.token(padding)
}

var (
	rePoundToken   = regexp.MustCompile(`#+`)
	rePercentToken = regexp.MustCompile(`%(\d*)d`)
	reGlobToken    = regexp.MustCompile(`\*+`)
	reAngularToken = regexp.MustCompile(`<[^<>]+>`)
	reDollarFToken = regexp.MustCompile(`\$F(\d*)`)
)

// The five known notations. Angular and DollarF never encode a width in the
// template itself; Glob is fully padding-insensitive.
var (
	Angular = &Codec{
		Name:    "angular",
		tokenRe: reAngularToken,
		match: func(base string) bool {
			open := strings.Index(base, "<")
			shut := strings.Index(base, ">")
			return open >= 0 && shut >= 0 && open < shut
		},
		pad:   func(string) int { return 0 },
		token: func(int) string { return "<fnum>" },
	}

	DollarF = &Codec{
		Name:             "dollar_f",
		PaddingSensitive: true,
		tokenRe:          reDollarFToken,
		match:            func(base string) bool { return reDollarFToken.MatchString(base) },
		pad: func(tok string) int {
			n, _ := strconv.Atoi(strings.TrimPrefix(tok, "$F"))
			return n
		},
		token: func(padding int) string {
			if padding <= 0 {
				return "$F"
			}
			return fmt.Sprintf("$F%d", padding)
		},
	}

	Glob = &Codec{
		Name:    "glob",
		tokenRe: reGlobToken,
		match:   func(base string) bool { return strings.Contains(base, "*") },
		pad:     func(string) int { return 0 },
		token:   func(int) string { return "*" },
	}

	Percent = &Codec{
		Name:             "percent",
		PaddingSensitive: true,
		tokenRe:          rePercentToken,
		match:            func(base string) bool { return rePercentToken.MatchString(base) },
		pad: func(tok string) int {
			m := rePercentToken.FindStringSubmatch(tok)
			if m == nil {
				return 0
			}
			n, _ := strconv.Atoi(m[1])
			return n
		},
		token: func(padding int) string {
			if padding <= 0 {
				return "%d"
			}
			return fmt.Sprintf("%%0%dd", padding)
		},
	}

	Pound = &Codec{
		Name:             "pound",
		PaddingSensitive: true,
		tokenRe:          rePoundToken,
		match:            func(base string) bool { return strings.Contains(base, "#") },
		pad:              func(tok string) int { return len(tok) },
		token: func(padding int) string {
			if padding <= 0 {
				padding = 1
			}
			return strings.Repeat("#", padding)
		},
	}
)

// Codecs lists every notation in resolution order. The order matters: a bare
// literal path with digits is also glob-valid, and angular/dollarF templates
// can contain characters that would satisfy later predicates.
var Codecs = []*Codec{Angular, DollarF, Glob, Percent, Pound}

// Resolve returns the first codec whose predicate accepts template. matched
// is false when no notation applies; callers then treat the template as a
// concrete path with glob semantics and zero assumed padding.
func Resolve(template string) (c *Codec, matched bool) {
	for _, c := range Codecs {
		if c.Match(template) {
			return c, true
		}
	}
	return Glob, false
}

// ByName looks a codec up by name. "hash" is accepted as an alias of pound.
func ByName(name string) (*Codec, bool) {
	if name == "hash" {
		return Pound, true
	}
	for _, c := range Codecs {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}
