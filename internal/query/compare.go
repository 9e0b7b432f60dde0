package query

import (
	"cmp"
	"strings"
)

// mode selects how a comparison orders its operands.
type mode uint8

const (
	textual mode = iota
	numeric
)

// comparison holds both operands already coerced under one mode.
// It is computed once per record and then evaluated.
type comparison struct {
	mode        mode
	left, right float64
	lText       string
	rText       string
}

// filterComparison coerces a record value against a filter literal.
// Both sides must parse as finite numbers for a numeric comparison.
func filterComparison(v Value, literal string) comparison {
	if l, ok := v.numeric(); ok {
		if r, ok := ParseNumber(literal); ok {
			return comparison{mode: numeric, left: l, right: r}
		}
	}
	return comparison{mode: textual, lText: v.Text(), rText: literal}
}

// sortComparison coerces two record values for ordering. Only two Number
// values compare numerically; everything else compares lowercased text.
func sortComparison(a, b Value) comparison {
	if a.kind == Number && b.kind == Number {
		return comparison{mode: numeric, left: a.num, right: b.num}
	}
	return comparison{
		mode:  textual,
		lText: strings.ToLower(a.Text()),
		rText: strings.ToLower(b.Text()),
	}
}

// order returns -1, 0 or +1.
func (c comparison) order() int {
	if c.mode == numeric {
		return cmp.Compare(c.left, c.right)
	}
	return strings.Compare(c.lText, c.rText)
}

// equal reports equality. Text equality ignores case.
func (c comparison) equal() bool {
	if c.mode == numeric {
		return c.left == c.right
	}
	return strings.ToLower(c.lText) == strings.ToLower(c.rText)
}

// holds evaluates op over the comparison.
func (c comparison) holds(op Operator) bool {
	switch op {
	case Eq:
		return c.equal()
	case Ne:
		return !c.equal()
	case Gt:
		return c.order() > 0
	case Lt:
		return c.order() < 0
	case Ge:
		return c.order() >= 0
	case Le:
		return c.order() <= 0
	default:
		return false
	}
}
