package main

import (
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tidwall/gjson"

	devloft "github.com/alnah/go-devloft"
	"github.com/alnah/go-devloft/internal/config"
)

func TestResolveOrder(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Query.Order = "desc"

	tests := []struct {
		name    string
		flag    string
		want    devloft.Direction
		wantErr bool
	}{
		{name: "config default", flag: "", want: devloft.Desc},
		{name: "flag wins", flag: "ASC", want: devloft.Asc},
		{name: "invalid flag", flag: "up", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolveOrder(tt.flag, cfg)
			if tt.wantErr {
				if !errors.Is(err, devloft.ErrInvalidDirection) {
					t.Errorf("expected ErrInvalidDirection, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("resolveOrder() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		flag    string
		path    string
		data    string
		want    devloft.Format
		wantErr bool
	}{
		{name: "flag", flag: "yaml", path: "-", data: "[]", want: devloft.FormatYAML},
		{name: "yaml extension", path: "people.yml", data: "- a: 1", want: devloft.FormatYAML},
		{name: "json content on stdin", path: "-", data: `[{"a":1}]`, want: devloft.FormatJSON},
		{name: "unknown flag", flag: "csv", path: "-", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolveFormat(tt.flag, tt.path, []byte(tt.data))
			if tt.wantErr {
				if !errors.Is(err, ErrUsage) {
					t.Errorf("expected ErrUsage, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("resolveFormat() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadRecordsInput(t *testing.T) {
	t.Parallel()

	t.Run("stdin", func(t *testing.T) {
		t.Parallel()

		data, err := readRecordsInput(stdinArg, strings.NewReader("[]"), 16)
		if err != nil || string(data) != "[]" {
			t.Errorf("readRecordsInput() = %q, %v", data, err)
		}
	})

	t.Run("payload at the limit", func(t *testing.T) {
		t.Parallel()

		data, err := readRecordsInput(stdinArg, strings.NewReader(`[{"a":1}]`), 9)
		if err != nil || string(data) != `[{"a":1}]` {
			t.Errorf("readRecordsInput() = %q, %v", data, err)
		}
	})

	t.Run("oversized stdin stops at the limit", func(t *testing.T) {
		t.Parallel()

		src := &countingReader{r: strings.NewReader(strings.Repeat("x", 1<<16))}
		_, err := readRecordsInput(stdinArg, src, 8)
		if !errors.Is(err, devloft.ErrInputTooLarge) {
			t.Fatalf("expected ErrInputTooLarge, got %v", err)
		}
		if src.n > 1024 {
			t.Errorf("read %d bytes, want the read to stop near the limit", src.n)
		}
		if exitCodeFor(err) != ExitUsage {
			t.Errorf("exit code = %d, want %d", exitCodeFor(err), ExitUsage)
		}
	})

	t.Run("oversized file", func(t *testing.T) {
		t.Parallel()

		dir := setupTestDir(t, map[string]string{"big.json": "[" + strings.Repeat(" ", 64) + "]"})
		_, err := readRecordsInput(filepath.Join(dir, "big.json"), nil, 16)
		if !errors.Is(err, devloft.ErrInputTooLarge) {
			t.Errorf("expected ErrInputTooLarge, got %v", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := readRecordsInput(filepath.Join(t.TempDir(), "none.json"), nil, 16)
		if !errors.Is(err, ErrReadInput) {
			t.Errorf("expected ErrReadInput, got %v", err)
		}
		if exitCodeFor(err) != ExitIO {
			t.Errorf("exit code = %d, want %d", exitCodeFor(err), ExitIO)
		}
	})
}

func TestWriteRecords(t *testing.T) {
	t.Parallel()

	records := []devloft.Record{
		devloft.NewRecord(devloft.Field{Name: "name", Value: devloft.StringValue("Ada")}),
	}

	t.Run("stdout", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv("")
		if err := writeRecords("", records, env.Stdout); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := gjson.Get(stdout.String(), "0.name").String(); got != "Ada" {
			t.Errorf("name = %q, want Ada", got)
		}
	})

	t.Run("file in new directory", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "out.json")
		if err := writeRecords(path, records, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := gjson.Get(readFile(t, path), "#").Int(); got != 1 {
			t.Errorf("record count = %d, want 1", got)
		}
	})
}

func TestRunQuery_Verbose(t *testing.T) {
	t.Parallel()

	env, _, stderr := testEnv(`[{"n":1},{"n":2},{"n":3}]`)
	flags := &queryFlags{filter: "n>1", common: commonFlags{verbose: true}}

	if err := runQuery(nil, flags, env); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stderr.String(), "2 of 3 records matched") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

// countingReader records how many bytes were pulled from r.
type countingReader struct {
	r io.Reader
	n int
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += n
	return n, err
}
