// Package query filters and sorts ordered sequences of flat records.
//
// A filter is a single comparison, "field op literal", with op one of
// =, !=, >, <, >=, <=. A sort is a field name and a direction. Apply runs the
// filter first and sorts what is left.
//
// # Comparison Policy
//
// Filtering and sorting share one value policy, with different coercion:
//
//   - A field missing from a record compares as the empty string.
//   - Filter: when both the record value and the literal parse as finite
//     numbers, every operator compares numerically ("5" = "5.0").
//     Otherwise = and != compare case-insensitively, while >, <, >= and <=
//     compare the raw strings.
//   - Sort: two values that are both numbers (not numeric strings) compare
//     numerically; anything else compares as lowercased strings.
//
// Sorting is stable and never mutates its input.
package query
