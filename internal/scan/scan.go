// Package scan resolves sequence templates against the filesystem: expanding
// a template in any notation to the concrete files present on disk, and
// walking directories to collect candidate paths for grouping.
package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/backmassage/frameseq/internal/notation"
)

// Expand lists the files in the template's directory whose names satisfy the
// template's digit positions. Padding-sensitive notations require the exact
// digit width; insensitive ones accept any run length.
func Expand(template string) ([]string, error) {
	dir, base := filepath.Split(template)
	if dir == "" {
		dir = "."
	}

	re, err := basePattern(base)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "expanding template %q", template)
	}

	var paths []string
	for _, entry := range entries {
		if re.MatchString(entry.Name()) {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// basePattern compiles the basename of a template into an anchored regexp:
// literal segments quoted, each token replaced by a digit-run matcher.
func basePattern(base string) (*regexp.Regexp, error) {
	codec, matched := notation.Resolve(base)
	if !matched {
		return nil, errors.Errorf("path %q is not a sequence template", base)
	}
	format, pads := codec.Format(base)

	segs := format.Segments()
	var b strings.Builder
	b.WriteByte('^')
	for i, seg := range segs {
		b.WriteString(regexp.QuoteMeta(seg))
		if i < len(pads) {
			if pads[i] > 0 {
				b.WriteString(`\d{` + strconv.Itoa(pads[i]) + `}`)
			} else {
				b.WriteString(`\d+`)
			}
		}
	}
	b.WriteByte('$')
	return regexp.Compile(b.String())
}

// Discover walks dir and returns every regular file path, sorted
// lexicographically for deterministic grouping order. Hidden directories
// (dot-prefixed) are pruned.
func Discover(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if name := d.Name(); strings.HasPrefix(name, ".") && path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "scanning %q", dir)
	}
	sort.Strings(files)
	return files, nil
}
