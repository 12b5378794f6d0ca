package tabular

import (
	"strconv"
	"strings"
)

// ValueKind tags the primitive carried by a Value.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindString
	KindNumber
	KindBool
	// KindLink is an object carrying a URL, produced from hyperlink cells.
	KindLink
)

// Value is one field of a RawRow.
type Value struct {
	Kind ValueKind
	Str  string
	Num  float64
	Bool bool
}

func NullValue() Value { return Value{Kind: KindNull} }
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }
func NumberValue(n float64) Value { return Value{Kind: KindNumber, Num: n} }
func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }
func LinkValue(url string) Value { return Value{Kind: KindLink, Str: url} }

// Text returns the value rendered as a string.
func (v Value) Text() string {
	switch v.Kind {
	case KindString, KindLink:
		return v.Str
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	}
	return ""
}

// IsBlank reports whether the value is null or whitespace-only text.
func (v Value) IsBlank() bool {
	switch v.Kind {
	case KindNull:
		return true
	case KindString, KindLink:
		return strings.TrimSpace(v.Str) == ""
	}
	return false
}

// RawRow is one data line keyed by canonical field name.
type RawRow struct {
	// Line is the 1-based position in the file; the header is line 1.
	Line   int
	Fields map[string]Value
}

// Get returns the named field.
func (r RawRow) Get(field string) (Value, bool) {
	v, ok := r.Fields[field]
	return v, ok
}

// IsBlank reports whether every field is blank.
func (r RawRow) IsBlank() bool {
	for _, v := range r.Fields {
		if !v.IsBlank() {
			return false
		}
	}
	return true
}

// Strings renders the row for diagnostics.
func (r RawRow) Strings() map[string]string {
	out := make(map[string]string, len(r.Fields))
	for k, v := range r.Fields {
		out[k] = v.Text()
	}
	return out
}
