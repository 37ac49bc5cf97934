package token

import (
	"fmt"
	"path/filepath"
	"regexp"
)

// Delimiter candidates in priority order; first match wins. Each pattern has
// exactly two capture groups: the delimiter run and the digit run.
var delimiters = []*regexp.Regexp{
	regexp.MustCompile(`(\.)(\d+)`),
	regexp.MustCompile(`(_[uv])(\d+)`),
}

// NoDigitsError reports a path with no extractable digit run under any
// delimiter candidate.
type NoDigitsError struct {
	Path string
}

func (e NoDigitsError) Error() string {
	return fmt.Sprintf("path %q has no extractable digit run", e.Path)
}

// Splitter is a tokenizer bound to the delimiter choice that worked for one
// path. Reusing a Splitter keeps all rewrites of an item on the same rule.
type Splitter struct {
	re *regexp.Regexp
}

// Choose picks the first delimiter candidate that yields at least one digit
// run in the basename of path. It fails with [NoDigitsError] when none do.
func Choose(path string) (*Splitter, error) {
	base := filepath.Base(path)
	for _, re := range delimiters {
		s := &Splitter{re: re}
		if hasDigits(s.Split(base)) {
			return s, nil
		}
	}
	return nil, NoDigitsError{Path: path}
}

// Split partitions path into alternating non-digit and digit parts. Only
// the basename is partitioned; digit runs in directory components (a
// "/v2.0/" segment, say) stay inside the leading literal. The delimiter of
// the first digit run is fused into the preceding non-digit segment, so
// "file.1001.tif" becomes ["file.", "1001", ".tif"]. The concatenation of
// the returned parts is always the input.
func (s *Splitter) Split(path string) []string {
	dir, base := filepath.Split(path)
	locs := s.re.FindAllStringSubmatchIndex(base, -1)
	if len(locs) == 0 {
		return []string{path}
	}

	var parts []string
	last := 0
	for i, m := range locs {
		// m[2:4] is the delimiter group, m[4:6] the digit group.
		prefix := base[last:m[2]]
		delim := base[m[2]:m[3]]
		if i == 0 {
			if fused := dir + prefix + delim; fused != "" {
				parts = append(parts, fused)
			}
		} else {
			if prefix != "" {
				parts = append(parts, prefix)
			}
			parts = append(parts, delim)
		}
		parts = append(parts, base[m[4]:m[5]])
		last = m[5]
	}
	if rest := base[last:]; rest != "" {
		parts = append(parts, rest)
	}
	return parts
}

// Split tokenizes path with an automatically chosen delimiter.
func Split(path string) ([]string, error) {
	s, err := Choose(path)
	if err != nil {
		return nil, err
	}
	return s.Split(path), nil
}

// IsDigits reports whether s is a non-empty run of ASCII digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Digits filters parts down to its digit runs.
func Digits(parts []string) []string {
	var out []string
	for _, p := range parts {
		if IsDigits(p) {
			out = append(out, p)
		}
	}
	return out
}

// NonDigits filters parts down to its non-digit segments.
func NonDigits(parts []string) []string {
	var out []string
	for _, p := range parts {
		if !IsDigits(p) {
			out = append(out, p)
		}
	}
	return out
}

func hasDigits(parts []string) bool {
	for _, p := range parts {
		if IsDigits(p) {
			return true
		}
	}
	return false
}
