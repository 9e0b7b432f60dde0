package devloft

import (
	"errors"
	"slices"
	"testing"
)

func people() []Record {
	return []Record{
		NewRecord(Field{Name: "name", Value: StringValue("Alice")}, Field{Name: "score", Value: NumberValue(90)}),
		NewRecord(Field{Name: "name", Value: StringValue("bob")}, Field{Name: "score", Value: NumberValue(75)}),
		NewRecord(Field{Name: "name", Value: StringValue("Charlie")}, Field{Name: "score", Value: NumberValue(88)}),
	}
}

func names(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Lookup("name").Text()
	}
	return out
}

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		q       Query
		want    []string
		wantErr error
	}{
		{
			name: "filter and sort descending",
			q:    Query{Filter: "score>80", SortKey: "score", Order: Desc},
			want: []string{"Alice", "Charlie"},
		},
		{
			name: "case-insensitive text sort",
			q:    Query{SortKey: "name"},
			want: []string{"Alice", "bob", "Charlie"},
		},
		{
			name: "case-insensitive equality",
			q:    Query{Filter: "name=BOB"},
			want: []string{"bob"},
		},
		{
			name: "empty query keeps order",
			q:    Query{},
			want: []string{"Alice", "bob", "Charlie"},
		},
		{
			name:    "malformed filter",
			q:       Query{Filter: "score"},
			wantErr: ErrInvalidFilter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			input := people()
			got, err := Apply(input, tt.q)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			if got := names(got); !slices.Equal(got, tt.want) {
				t.Errorf("names = %v, want %v", got, tt.want)
			}
			if got := names(input); !slices.Equal(got, []string{"Alice", "bob", "Charlie"}) {
				t.Errorf("input reordered: %v", got)
			}
		})
	}
}

func TestParseFilter_ParseError(t *testing.T) {
	t.Parallel()

	_, err := ParseFilter("no operator here")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
	if perr.Expr != "no operator here" {
		t.Errorf("Expr = %q, want the original expression", perr.Expr)
	}
}

func TestFilterAndSort(t *testing.T) {
	t.Parallel()

	filtered, err := Filter(people(), "score<=88")
	if err != nil {
		t.Fatalf("Filter() error = %v", err)
	}
	if got := names(filtered); !slices.Equal(got, []string{"bob", "Charlie"}) {
		t.Errorf("Filter names = %v", got)
	}

	sorted, err := Sort(people(), "score", Asc)
	if err != nil {
		t.Fatalf("Sort() error = %v", err)
	}
	if got := names(sorted); !slices.Equal(got, []string{"bob", "Charlie", "Alice"}) {
		t.Errorf("Sort names = %v", got)
	}

	if _, err := Sort(people(), " ", Asc); !errors.Is(err, ErrEmptySortKey) {
		t.Errorf("Sort blank key error = %v, want ErrEmptySortKey", err)
	}
	if _, err := ParseDirection("up"); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("ParseDirection error = %v, want ErrInvalidDirection", err)
	}
}

func TestQueryEngine_MaxRecords(t *testing.T) {
	t.Parallel()

	engine := NewQueryEngine(2)
	_, err := engine.Apply(people(), Query{SortKey: "name"})
	if !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("error = %v, want ErrInputTooLarge", err)
	}

	unlimited := NewQueryEngine(0)
	out, err := unlimited.Apply(people(), Query{SortKey: "name"})
	if err != nil || len(out) != 3 {
		t.Errorf("unlimited Apply() = %d records, %v", len(out), err)
	}
}
