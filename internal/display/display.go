// Package display renders grouped sequences and summaries for the CLI.
package display

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/backmassage/frameseq/internal/sequence"
)

var (
	templatePaint = color.New(color.FgHiCyan)
	countPaint    = color.New(color.FgHiBlack)
)

// ElementLine renders one grouped element for listing output: sequences as
// "template [runs]  (n frames)", single items as their bare path.
func ElementLine(el sequence.Element, useColor bool) string {
	switch v := el.(type) {
	case *sequence.Sequence:
		tmpl := v.Template()
		if useColor {
			tmpl = templatePaint.Sprint(tmpl)
		}
		body := v.String()
		if i := strings.Index(body, " ["); i >= 0 {
			body = tmpl + body[i:]
		}
		count := fmt.Sprintf("(%s frames)", humanize.Comma(int64(v.Count())))
		if useColor {
			count = countPaint.Sprint(count)
		}
		return body + "  " + count
	case *sequence.Item:
		return v.Path()
	}
	return el.Label()
}

// Summary renders the closing line of a listing.
func Summary(sequences, items, skipped int) string {
	parts := []string{
		fmt.Sprintf("%s sequence(s)", humanize.Comma(int64(sequences))),
		fmt.Sprintf("%s single item(s)", humanize.Comma(int64(items))),
	}
	if skipped > 0 {
		parts = append(parts, fmt.Sprintf("%s skipped", humanize.Comma(int64(skipped))))
	}
	return strings.Join(parts, ", ")
}
