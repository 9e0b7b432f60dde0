package query_test

import (
	"slices"
	"testing"

	"github.com/alnah/go-devloft/internal/query"
)

// ---------------------------------------------------------------------------
// TestParseNumber - Finite decimal parsing
// ---------------------------------------------------------------------------

func TestParseNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		want   float64
		wantOK bool
	}{
		{"5", 5, true},
		{"5.0", 5, true},
		{"-3.25", -3.25, true},
		{"  42\t", 42, true},
		{"1e3", 1000, true},
		{".5", 0.5, true},
		{"", 0, false},
		{"   ", 0, false},
		{"25abc", 0, false},
		{"NaN", 0, false},
		{"Infinity", 0, false},
		{"-inf", 0, false},
		{"1e400", 0, false},
		{"0x10", 0, false},
		{"0x1p4", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, ok := query.ParseNumber(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseNumber(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseNumber(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestFormatNumber - Shortest text form
// ---------------------------------------------------------------------------

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input float64
		want  string
	}{
		{0, "0"},
		{42, "42"},
		{-7, "-7"},
		{3.14, "3.14"},
		{0.000001, "0.000001"},
		{1.5e-7, "1.5e-7"},
		{1e21, "1e+21"},
		{123456789012, "123456789012"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			if got := query.FormatNumber(tt.input); got != tt.want {
				t.Errorf("FormatNumber(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestValue_Text - Text rendering per kind
// ---------------------------------------------------------------------------

func TestValue_Text(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value query.Value
		kind  query.Kind
		want  string
	}{
		{"zero value", query.Value{}, query.Null, ""},
		{"null", query.NullValue(), query.Null, ""},
		{"string", query.StringValue("Alice"), query.String, "Alice"},
		{"number", query.NumberValue(88), query.Number, "88"},
		{"bool", query.BoolValue(false), query.Bool, "false"},
		{"composite", query.CompositeValue(`[1,2]`), query.Composite, "[1,2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.value.Kind(); got != tt.kind {
				t.Errorf("Kind() = %v, want %v", got, tt.kind)
			}
			if got := tt.value.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestNewRecord - Field order and duplicates
// ---------------------------------------------------------------------------

func TestNewRecord(t *testing.T) {
	t.Parallel()

	t.Run("keeps first position and last value", func(t *testing.T) {
		t.Parallel()

		r := query.NewRecord(
			query.Field{Name: "b", Value: query.NumberValue(1)},
			query.Field{Name: "a", Value: query.NumberValue(2)},
			query.Field{Name: "b", Value: query.NumberValue(3)},
		)
		var names []string
		for _, f := range r.Fields() {
			names = append(names, f.Name)
		}
		if want := []string{"b", "a"}; !slices.Equal(names, want) {
			t.Errorf("names = %v, want %v", names, want)
		}
		if got := r.Lookup("b").Text(); got != "3" {
			t.Errorf("b = %q, want %q", got, "3")
		}
		if r.Len() != 2 {
			t.Errorf("Len() = %d, want 2", r.Len())
		}
	})

	t.Run("Fields returns a copy", func(t *testing.T) {
		t.Parallel()

		r := query.NewRecord(query.Field{Name: "a", Value: query.StringValue("x")})
		fields := r.Fields()
		fields[0].Value = query.StringValue("changed")
		if got := r.Lookup("a").Text(); got != "x" {
			t.Errorf("record changed through Fields(): a = %q", got)
		}
	})

	t.Run("absent field", func(t *testing.T) {
		t.Parallel()

		var r query.Record
		if _, ok := r.Get("missing"); ok {
			t.Error("Get on zero Record reported present")
		}
		if got := r.Lookup("missing").Kind(); got != query.Null {
			t.Errorf("Lookup kind = %v, want null", got)
		}
	})
}
