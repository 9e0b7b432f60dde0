package query

import (
	"regexp"
)

// Operator is a filter comparison operator.
type Operator string

// Filter operators.
const (
	Eq Operator = "="
	Ne Operator = "!="
	Gt Operator = ">"
	Lt Operator = "<"
	Ge Operator = ">="
	Le Operator = "<="
)

// Two-character operators are listed first so ">=" never parses as ">".
var filterPattern = regexp.MustCompile(`^\s*(\w+)\s*(>=|<=|!=|>|<|=)\s*(.+)$`)

// Expression is a parsed filter: Field Op Literal.
type Expression struct {
	Field   string
	Op      Operator
	Literal string
}

// ParseFilter parses "field op literal". The field is one or more word
// characters; the literal is everything after the operator and leading
// whitespace, and may itself contain operator characters.
func ParseFilter(expr string) (Expression, error) {
	m := filterPattern.FindStringSubmatch(expr)
	if m == nil {
		return Expression{}, &ParseError{Expr: expr}
	}
	return Expression{Field: m[1], Op: Operator(m[2]), Literal: m[3]}, nil
}

// Match reports whether r satisfies the expression.
func (e Expression) Match(r Record) bool {
	return Compare(r, e.Field, e.Op, e.Literal)
}

// Compare evaluates "field op literal" against one record.
// An absent field compares as the empty string.
func Compare(r Record, field string, op Operator, literal string) bool {
	return filterComparison(r.Lookup(field), literal).holds(op)
}

func (e Expression) String() string {
	return e.Field + string(e.Op) + e.Literal
}

// filterRecords returns the records matching e, in input order.
func filterRecords(records []Record, e Expression) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if e.Match(r) {
			out = append(out, r)
		}
	}
	return out
}
