package query

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies the type of a record value.
type Kind uint8

const (
	Null      Kind = iota // absent field or JSON null
	String                // text
	Number                // finite float64
	Bool                  // true or false
	Composite             // nested array or object, kept as raw JSON
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Number:
		return "number"
	case Bool:
		return "bool"
	case Composite:
		return "composite"
	default:
		return "null"
	}
}

// Value is an immutable scalar held by a Record.
// The zero Value is Null.
type Value struct {
	kind Kind
	str  string // String text or Composite raw JSON
	num  float64
	b    bool
}

// StringValue returns a String value.
func StringValue(s string) Value { return Value{kind: String, str: s} }

// NumberValue returns a Number value.
func NumberValue(f float64) Value { return Value{kind: Number, num: f} }

// BoolValue returns a Bool value.
func BoolValue(b bool) Value { return Value{kind: Bool, b: b} }

// NullValue returns the Null value.
func NullValue() Value { return Value{} }

// CompositeValue wraps raw JSON for a nested array or object.
func CompositeValue(raw string) Value { return Value{kind: Composite, str: raw} }

// Kind returns the value's kind.
func (v Value) Kind() Kind { return v.kind }

// Num returns the number for Number values and false otherwise.
func (v Value) Num() (float64, bool) {
	return v.num, v.kind == Number
}

// Bool returns the boolean for Bool values and false otherwise.
func (v Value) Bool() (b, ok bool) {
	return v.b, v.kind == Bool
}

// Raw returns the raw JSON of a Composite value, or the text of a String.
func (v Value) Raw() string { return v.str }

// Text renders the value the way it is compared as a string.
// Null renders as the empty string.
func (v Value) Text() string {
	switch v.kind {
	case String, Composite:
		return v.str
	case Number:
		return FormatNumber(v.num)
	case Bool:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}

// numeric coerces a value for filtering. Numbers pass through, strings are
// parsed, booleans count as 1 or 0. Null and composites are non-numeric.
func (v Value) numeric() (float64, bool) {
	switch v.kind {
	case Number:
		return v.num, true
	case String:
		return ParseNumber(v.str)
	case Bool:
		if v.b {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// ParseNumber parses s as a finite decimal number, ignoring surrounding
// whitespace. Blank strings, NaN, infinities, hex forms and trailing
// garbage ("25abc") are not numbers.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, "xX") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// FormatNumber renders f in shortest form, switching to exponent notation
// below 1e-6 and from 1e21 up.
func FormatNumber(f float64) string {
	if f == 0 {
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + sign + digits
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
