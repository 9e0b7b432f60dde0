package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"

	devloft "github.com/alnah/go-devloft"
	"github.com/alnah/go-devloft/internal/config"
	"github.com/alnah/go-devloft/internal/fileutil"
	"github.com/alnah/go-devloft/internal/hints"
)

// ErrNoQuery is returned when neither a filter nor a sort key is given.
var ErrNoQuery = errors.New("nothing to do: pass --filter and/or --sort")

// stdinArg selects standard input.
const stdinArg = "-"

// runQueryCmd parses query flags and runs the command.
func runQueryCmd(args []string, env *Environment) error {
	flags, positional, err := parseQueryFlags(args, env.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return runQuery(positional, flags, env)
}

// runQuery reads records, applies the query and writes indented JSON.
func runQuery(positionalArgs []string, flags *queryFlags, env *Environment) error {
	if strings.TrimSpace(flags.filter) == "" && strings.TrimSpace(flags.sortKey) == "" {
		return ErrNoQuery
	}

	warnUnknownEnvVars(env.Stderr)
	cfg, err := loadConfig(flags.common.config, loadEnvConfig())
	if err != nil {
		return err
	}

	order, err := resolveOrder(flags.order, cfg)
	if err != nil {
		return err
	}

	path := stdinArg
	if len(positionalArgs) > 0 {
		path = positionalArgs[0]
	}

	data, err := readRecordsInput(path, env.Stdin, devloft.MaxRecordsSize())
	if err != nil {
		return err
	}

	format, err := resolveFormat(flags.format, path, data)
	if err != nil {
		return err
	}

	records, err := devloft.DecodeRecords(data, format)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", displayName(path), err)
	}

	engine := devloft.NewQueryEngine(cfg.Query.MaxRecords)
	out, err := engine.Apply(records, devloft.Query{
		Filter:  flags.filter,
		SortKey: flags.sortKey,
		Order:   order,
	})
	if errors.Is(err, devloft.ErrInputTooLarge) {
		return fmt.Errorf("%w%s", err, hints.ForInputTooLarge("query.maxRecords"))
	}
	if err != nil {
		return err
	}

	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "%d of %d records matched\n", len(out), len(records))
	}

	return writeRecords(flags.output, out, env.Stdout)
}

// resolveOrder picks the sort direction: flag, then config default.
func resolveOrder(flagOrder string, cfg *config.Config) (devloft.Direction, error) {
	if flagOrder != "" {
		return devloft.ParseDirection(flagOrder)
	}
	return devloft.ParseDirection(cfg.Query.Order)
}

// resolveFormat uses the --format flag when set, else detects it.
func resolveFormat(flagFormat, path string, data []byte) (devloft.Format, error) {
	if flagFormat != "" {
		format, err := devloft.ParseFormat(flagFormat)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrUsage, err)
		}
		return format, nil
	}
	return devloft.DetectFormat(path, data), nil
}

// readRecordsInput reads the payload from path, or stdin for "-". It stops
// after limit bytes so an oversized payload is rejected without being held
// in memory.
func readRecordsInput(path string, stdin io.Reader, limit int) ([]byte, error) {
	r := stdin
	if path != stdinArg {
		f, err := os.Open(path) // #nosec G304 -- user-provided path
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	data, err := io.ReadAll(io.LimitReader(r, int64(limit)+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadInput, displayName(path), err)
	}
	if len(data) > limit {
		return nil, fmt.Errorf("%w: %s: more than %d bytes", devloft.ErrInputTooLarge, displayName(path), limit)
	}
	return data, nil
}

// writeRecords writes records to path, or to stdout when path is empty.
func writeRecords(path string, records []devloft.Record, stdout io.Writer) error {
	if path == "" || path == stdinArg {
		if err := devloft.EncodeRecords(stdout, records); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return nil
	}

	var buf bytes.Buffer
	if err := devloft.EncodeRecords(&buf, records); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrCreateOutputDir, err)
	}
	if err := fileutil.WriteFileAtomic(path, buf.Bytes(), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

func displayName(path string) string {
	if path == stdinArg {
		return "stdin"
	}
	return path
}
