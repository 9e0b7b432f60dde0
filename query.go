package devloft

import (
	"github.com/alnah/go-devloft/internal/query"
)

// Record types. A Record is an ordered set of named values; field names are
// case-sensitive and a missing field reads as an empty value.
type (
	Record     = query.Record
	Field      = query.Field
	Value      = query.Value
	Kind       = query.Kind
	Expression = query.Expression
	Operator   = query.Operator
	Direction  = query.Direction
	Query      = query.Query
)

// Sort directions.
const (
	Asc  = query.Asc
	Desc = query.Desc
)

// NewRecord builds a Record. A repeated name keeps its first position and
// takes the last value.
func NewRecord(fields ...Field) Record {
	return query.NewRecord(fields...)
}

// Value constructors.
var (
	StringValue    = query.StringValue
	NumberValue    = query.NumberValue
	BoolValue      = query.BoolValue
	NullValue      = query.NullValue
	CompositeValue = query.CompositeValue
)

// ParseFilter parses "field OP literal".
// Returns a *ParseError (ErrInvalidFilter) when expr does not match.
func ParseFilter(expr string) (Expression, error) {
	return query.ParseFilter(expr)
}

// ParseDirection accepts "asc" or "desc" case-insensitively; "" is Asc.
func ParseDirection(s string) (Direction, error) {
	return query.ParseDirection(s)
}

// Filter returns the records matching expr, in input order.
func Filter(records []Record, expr string) ([]Record, error) {
	return query.Filter(records, expr)
}

// Sort returns a stably sorted copy of records ordered by key.
func Sort(records []Record, key string, dir Direction) ([]Record, error) {
	return query.Sort(records, key, dir)
}

// Apply filters then sorts records. The input slice is never modified.
func Apply(records []Record, q Query) ([]Record, error) {
	return query.Apply(records, q)
}

// QueryEngine applies queries with an input size limit.
type QueryEngine struct {
	engine *query.Engine
}

// NewQueryEngine creates a QueryEngine that rejects more than maxRecords
// records with ErrInputTooLarge. Zero means no limit.
func NewQueryEngine(maxRecords int) *QueryEngine {
	return &QueryEngine{engine: query.NewEngine(query.WithMaxRecords(maxRecords))}
}

// Apply filters then sorts records.
func (q *QueryEngine) Apply(records []Record, qry Query) ([]Record, error) {
	out, err := q.engine.Apply(records, qry)
	if err != nil {
		return nil, convertInputError(err)
	}
	return out, nil
}
