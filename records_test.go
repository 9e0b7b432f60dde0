package devloft

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-devloft/internal/recordio"
)

func TestDecodeRecords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		format  Format
		wantLen int
		wantErr error
	}{
		{"json array", `[{"a":1},{"a":2}]`, FormatJSON, 2, nil},
		{"yaml sequence", "- a: 1\n", FormatYAML, 1, nil},
		{"object instead of array", `{"a":1}`, FormatJSON, 0, ErrShape},
		{"malformed json", `[`, FormatJSON, 0, ErrSyntax},
		{"blank", "", FormatJSON, 0, ErrEmptyInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			records, err := DecodeRecords([]byte(tt.data), tt.format)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeRecords() error = %v", err)
			}
			if len(records) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(records), tt.wantLen)
			}
		})
	}
}

// Not parallel: lowers the package-wide payload limit.
func TestDecodeRecords_TooLarge(t *testing.T) {
	saved := recordio.MaxInputSize
	recordio.MaxInputSize = 16
	t.Cleanup(func() { recordio.MaxInputSize = saved })

	_, err := DecodeRecords([]byte(`[{"name":"a long enough payload"}]`), FormatJSON)
	if !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("error = %v, want ErrInputTooLarge", err)
	}
}

func TestEncodeRecords(t *testing.T) {
	t.Parallel()

	records := []Record{NewRecord(
		Field{Name: "z", Value: StringValue("last")},
		Field{Name: "a", Value: NumberValue(1)},
	)}

	var buf bytes.Buffer
	if err := EncodeRecords(&buf, records); err != nil {
		t.Fatalf("EncodeRecords() error = %v", err)
	}
	out := buf.String()
	if strings.Index(out, `"z"`) > strings.Index(out, `"a"`) {
		t.Errorf("field order not preserved:\n%s", out)
	}
}

func TestDetectFormat(t *testing.T) {
	t.Parallel()

	if got := DetectFormat("data.yml", nil); got != FormatYAML {
		t.Errorf("DetectFormat(data.yml) = %q, want yaml", got)
	}
	if got := DetectFormat("-", []byte(" [1]")); got != FormatJSON {
		t.Errorf("DetectFormat(stdin json) = %q, want json", got)
	}
}
