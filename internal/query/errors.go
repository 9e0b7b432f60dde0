package query

import (
	"errors"
	"fmt"
)

// Sentinel errors for query operations.
var (
	ErrInvalidFilter    = errors.New("invalid filter expression")
	ErrEmptySortKey     = errors.New("sort key cannot be empty")
	ErrInvalidDirection = errors.New("invalid sort direction")
	ErrTooManyRecords   = errors.New("record set exceeds maximum size")
)

// FilterSyntax describes the accepted filter grammar for error messages.
const FilterSyntax = "field=value, field!=value, field>value, field<value, field>=value, field<=value"

// ParseError reports a filter expression that does not match the grammar.
// It unwraps to ErrInvalidFilter.
type ParseError struct {
	Expr string // the offending expression, verbatim
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v %q (use %s)", ErrInvalidFilter, e.Expr, FilterSyntax)
}

func (e *ParseError) Unwrap() error {
	return ErrInvalidFilter
}
