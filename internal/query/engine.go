package query

import (
	"fmt"
	"slices"
	"strings"
)

// Query combines an optional filter with an optional sort.
// Blank fields are skipped.
type Query struct {
	Filter  string
	SortKey string
	Order   Direction
}

// Engine applies queries with optional input limits.
type Engine struct {
	maxRecords int
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxRecords rejects inputs longer than n records. Zero means no limit.
func WithMaxRecords(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxRecords = n
		}
	}
}

// NewEngine creates an Engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEngine = NewEngine()

func (e *Engine) checkSize(records []Record) error {
	if e.maxRecords > 0 && len(records) > e.maxRecords {
		return fmt.Errorf("%w: %d records (max %d)", ErrTooManyRecords, len(records), e.maxRecords)
	}
	return nil
}

// Filter returns the records matching expr, in input order.
// Surrounding whitespace in expr is ignored.
func (e *Engine) Filter(records []Record, expr string) ([]Record, error) {
	if err := e.checkSize(records); err != nil {
		return nil, err
	}
	parsed, err := ParseFilter(strings.TrimSpace(expr))
	if err != nil {
		return nil, err
	}
	return filterRecords(records, parsed), nil
}

// Sort returns a stably sorted copy of records ordered by key.
func (e *Engine) Sort(records []Record, key string, dir Direction) ([]Record, error) {
	if err := e.checkSize(records); err != nil {
		return nil, err
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, ErrEmptySortKey
	}
	if dir != Asc && dir != Desc {
		return nil, fmt.Errorf("%w: %q (use asc or desc)", ErrInvalidDirection, dir)
	}
	return sortRecords(records, key, dir), nil
}

// Apply filters then sorts. With neither a filter nor a sort key it returns
// a copy of records unchanged.
func (e *Engine) Apply(records []Record, q Query) ([]Record, error) {
	if err := e.checkSize(records); err != nil {
		return nil, err
	}
	out := records
	if expr := strings.TrimSpace(q.Filter); expr != "" {
		parsed, err := ParseFilter(expr)
		if err != nil {
			return nil, err
		}
		out = filterRecords(out, parsed)
	} else {
		out = slices.Clone(records)
	}
	if key := strings.TrimSpace(q.SortKey); key != "" {
		dir := q.Order
		if dir == "" {
			dir = Asc
		}
		return e.Sort(out, key, dir)
	}
	return out, nil
}

// Filter uses an unlimited Engine.
func Filter(records []Record, expr string) ([]Record, error) {
	return defaultEngine.Filter(records, expr)
}

// Sort uses an unlimited Engine.
func Sort(records []Record, key string, dir Direction) ([]Record, error) {
	return defaultEngine.Sort(records, key, dir)
}

// Apply uses an unlimited Engine.
func Apply(records []Record, q Query) ([]Record, error) {
	return defaultEngine.Apply(records, q)
}
