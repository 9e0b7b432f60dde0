package recordio_test

// Notes:
// - Encoded output is checked by re-reading it with gjson and by field
//   positions, not by exact bytes: line breaking is owned by the pretty
//   printer.

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/alnah/go-devloft/internal/query"
	"github.com/alnah/go-devloft/internal/recordio"
)

// ---------------------------------------------------------------------------
// TestDecode - Payload shape and value kinds
// ---------------------------------------------------------------------------

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		format  recordio.Format
		wantLen int
		wantErr error
		check   func(t *testing.T, records []query.Record)
	}{
		{
			name:    "json array of objects",
			data:    `[{"name":"Alice","age":30},{"name":"Bob","age":25}]`,
			format:  recordio.JSON,
			wantLen: 2,
			check: func(t *testing.T, records []query.Record) {
				age, ok := records[0].Lookup("age").Num()
				if !ok || age != 30 {
					t.Errorf("age = %v (ok=%v), want 30", age, ok)
				}
				if got := records[1].Lookup("name").Text(); got != "Bob" {
					t.Errorf("name = %q, want %q", got, "Bob")
				}
			},
		},
		{
			name:    "field order follows source",
			data:    `[{"z":1,"a":2,"m":3}]`,
			format:  recordio.JSON,
			wantLen: 1,
			check: func(t *testing.T, records []query.Record) {
				var names []string
				for _, f := range records[0].Fields() {
					names = append(names, f.Name)
				}
				if got := strings.Join(names, ","); got != "z,a,m" {
					t.Errorf("field order = %s, want z,a,m", got)
				}
			},
		},
		{
			name:    "value kinds",
			data:    `[{"s":"x","n":1.5,"t":true,"f":false,"z":null,"arr":[1,2],"obj":{"k":"v"}}]`,
			format:  recordio.JSON,
			wantLen: 1,
			check: func(t *testing.T, records []query.Record) {
				want := map[string]query.Kind{
					"s": query.String, "n": query.Number, "t": query.Bool, "f": query.Bool,
					"z": query.Null, "arr": query.Composite, "obj": query.Composite,
				}
				for name, kind := range want {
					if got := records[0].Lookup(name).Kind(); got != kind {
						t.Errorf("%s kind = %v, want %v", name, got, kind)
					}
				}
				if got := records[0].Lookup("arr").Raw(); got != "[1,2]" {
					t.Errorf("arr raw = %q, want %q", got, "[1,2]")
				}
			},
		},
		{
			name:    "empty array",
			data:    `[]`,
			format:  recordio.JSON,
			wantLen: 0,
		},
		{
			name:    "yaml sequence",
			data:    "- name: Charlie\n  score: 88\n- name: Eve\n  score: 72\n",
			format:  recordio.YAML,
			wantLen: 2,
			check: func(t *testing.T, records []query.Record) {
				score, ok := records[0].Lookup("score").Num()
				if !ok || score != 88 {
					t.Errorf("score = %v (ok=%v), want 88", score, ok)
				}
			},
		},
		{
			name:    "top-level object",
			data:    `{"name":"Alice"}`,
			format:  recordio.JSON,
			wantErr: recordio.ErrShape,
		},
		{
			name:    "array with scalar element",
			data:    `[{"a":1},2]`,
			format:  recordio.JSON,
			wantErr: recordio.ErrShape,
		},
		{
			name:    "yaml mapping",
			data:    "name: Alice\n",
			format:  recordio.YAML,
			wantErr: recordio.ErrShape,
		},
		{
			name:    "malformed json",
			data:    `[{"a":1}`,
			format:  recordio.JSON,
			wantErr: recordio.ErrSyntax,
		},
		{
			name:    "malformed yaml",
			data:    "- [unclosed",
			format:  recordio.YAML,
			wantErr: recordio.ErrSyntax,
		},
		{
			name:    "blank input",
			data:    "  \n",
			format:  recordio.JSON,
			wantErr: recordio.ErrEmptyInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			records, err := recordio.Decode([]byte(tt.data), tt.format)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("errors.Is(err, %v) = false, got: %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(records) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(records), tt.wantLen)
			}
			if tt.check != nil {
				tt.check(t, records)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestDetect - Format selection
// ---------------------------------------------------------------------------

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		data string
		want recordio.Format
	}{
		{"json extension", "people.json", "- a: 1", recordio.JSON},
		{"yaml extension", "people.YAML", "[]", recordio.YAML},
		{"yml extension", "people.yml", "[]", recordio.YAML},
		{"sniff array", "", "  \n[{}]", recordio.JSON},
		{"sniff object", "-", "{}", recordio.JSON},
		{"sniff yaml", "data.txt", "- a: 1", recordio.YAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := recordio.Detect(tt.path, []byte(tt.data)); got != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for input, want := range map[string]recordio.Format{"json": recordio.JSON, "YAML": recordio.YAML, "yml": recordio.YAML} {
		got, err := recordio.ParseFormat(input)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", input, got, err, want)
		}
	}
	if _, err := recordio.ParseFormat("csv"); err == nil {
		t.Error("ParseFormat(csv) = nil error, want error")
	}
}

// ---------------------------------------------------------------------------
// TestEncode - Indented JSON output
// ---------------------------------------------------------------------------

func TestEncode(t *testing.T) {
	t.Parallel()

	t.Run("round trip keeps values and order", func(t *testing.T) {
		t.Parallel()

		input := `[{"name":"Alice <admin>","age":30,"tags":["a","b"],"ok":true,"none":null}]`
		records, err := recordio.Decode([]byte(input), recordio.JSON)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}

		var buf bytes.Buffer
		if err := recordio.Encode(&buf, records); err != nil {
			t.Fatalf("Encode: %v", err)
		}
		out := buf.String()

		if !gjson.Valid(out) {
			t.Fatalf("output is not valid JSON:\n%s", out)
		}
		first := gjson.Get(out, "0")
		if got := first.Get("name").String(); got != "Alice <admin>" {
			t.Errorf("name = %q, want %q", got, "Alice <admin>")
		}
		if got := first.Get("age").Int(); got != 30 {
			t.Errorf("age = %d, want 30", got)
		}
		if got := first.Get("tags.1").String(); got != "b" {
			t.Errorf("tags.1 = %q, want %q", got, "b")
		}
		if !first.Get("ok").Bool() {
			t.Error("ok = false, want true")
		}
		if got := first.Get("none").Type; got != gjson.Null {
			t.Errorf("none type = %v, want null", got)
		}
		if !strings.Contains(out, "<admin>") {
			t.Errorf("angle brackets should not be escaped:\n%s", out)
		}
		if strings.Index(out, `"name"`) > strings.Index(out, `"age"`) {
			t.Errorf("field order not preserved:\n%s", out)
		}
		if !strings.Contains(out, "\n  ") {
			t.Errorf("output not indented:\n%s", out)
		}
	})

	t.Run("empty result", func(t *testing.T) {
		t.Parallel()

		out := recordio.Marshal(nil)
		if got := strings.TrimSpace(string(out)); got != "[]" {
			t.Errorf("Marshal(nil) = %q, want %q", got, "[]")
		}
	})
}
