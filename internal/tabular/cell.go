// Package tabular turns uploaded CSV and spreadsheet files into ordered raw
// rows keyed by canonical field names.
package tabular

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// CellKind tags the shape of a RawCell.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellScalar
	CellDate
	CellHyperlink
	CellFormula
)

// RawCell is a single spreadsheet or CSV cell before interpretation.
type RawCell struct {
	Kind CellKind

	// Scalar holds a string, number or boolean for CellScalar.
	Scalar any
	// Time holds the value of a CellDate.
	Time time.Time
	// Text and URL describe a CellHyperlink.
	Text string
	URL  string
	// Formula and Result describe a CellFormula; Result is the cached value.
	Formula string
	Result  string
}

// EmptyCell returns an absent cell.
func EmptyCell() RawCell { return RawCell{Kind: CellEmpty} }

// ScalarCell wraps a plain string, number or boolean.
func ScalarCell(v any) RawCell {
	if v == nil {
		return EmptyCell()
	}
	return RawCell{Kind: CellScalar, Scalar: v}
}

// DateCell wraps a date-time value.
func DateCell(t time.Time) RawCell { return RawCell{Kind: CellDate, Time: t} }

// HyperlinkCell wraps a hyperlink with display text and target.
func HyperlinkCell(text, url string) RawCell {
	return RawCell{Kind: CellHyperlink, Text: text, URL: url}
}

// FormulaCell wraps a formula and its cached result.
func FormulaCell(formula, result string) RawCell {
	return RawCell{Kind: CellFormula, Formula: formula, Result: result}
}

// isoMillis matches the ISO-8601 form spreadsheets and browsers agree on.
const isoMillis = "2006-01-02T15:04:05.000Z"

// zeroWidth removes zero-width space, joiners and the byte order mark.
var zeroWidth = runes.Remove(runes.Predicate(func(r rune) bool {
	switch r {
	case '\u200b', '\u200c', '\u200d', '\ufeff':
		return true
	}
	return false
}))

// Normalize resolves a cell to its canonical trimmed string. It never fails.
func Normalize(c RawCell) string {
	switch c.Kind {
	case CellEmpty:
		return ""
	case CellHyperlink:
		if url := clean(c.URL); url != "" {
			return url
		}
		return clean(c.Text)
	case CellFormula:
		return clean(c.Result)
	case CellDate:
		return c.Time.UTC().Format(isoMillis)
	case CellScalar:
		s := clean(scalarString(c.Scalar))
		if s == "[object Object]" {
			return ""
		}
		return s
	}
	return ""
}

func scalarString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.UTC().Format(isoMillis)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

func clean(s string) string {
	out, _, err := transform.String(zeroWidth, s)
	if err != nil {
		out = s
	}
	return strings.TrimFunc(out, unicode.IsSpace)
}
