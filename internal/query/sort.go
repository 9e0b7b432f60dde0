package query

import (
	"fmt"
	"slices"
	"strings"
)

// Direction is a sort order.
type Direction string

// Sort directions.
const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection parses "asc" or "desc", ignoring case and surrounding
// whitespace. An empty string means Asc.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc":
		return Asc, nil
	case "desc":
		return Desc, nil
	default:
		return "", fmt.Errorf("%w: %q (use asc or desc)", ErrInvalidDirection, s)
	}
}

// sortRecords returns a stably sorted copy of records.
func sortRecords(records []Record, key string, dir Direction) []Record {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b Record) int {
		c := sortComparison(a.Lookup(key), b.Lookup(key)).order()
		if dir == Desc {
			return -c
		}
		return c
	})
	return out
}
