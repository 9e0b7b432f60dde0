// Package yamlutil is the single import site of the YAML library.
// Config files decode strictly into structs; record payloads are converted
// to JSON so the query side reads one format.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize bounds DecodeStrict input in bytes (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrEmpty     = errors.New("yamlutil: empty input")
	ErrTooLarge  = errors.New("yamlutil: input exceeds maximum size")
	ErrNilTarget = errors.New("yamlutil: nil decode target")
	ErrSyntax    = errors.New("yamlutil: invalid YAML")
)

func checkSize(data []byte) error {
	if len(data) == 0 {
		return ErrEmpty
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrTooLarge, len(data), MaxInputSize)
	}
	return nil
}

// syntaxError keeps the library's [line:column] prefix and drops the
// source excerpt it would otherwise print.
func syntaxError(err error) error {
	return fmt.Errorf("%w: %s", ErrSyntax, yaml.FormatError(err, false, false))
}

// DecodeStrict decodes a YAML document into v and rejects keys that v
// does not declare.
func DecodeStrict(data []byte, v any) error {
	if err := checkSize(data); err != nil {
		return err
	}
	if v == nil {
		return ErrNilTarget
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return syntaxError(err)
	}
	return nil
}

// ToJSON converts a YAML document to JSON, keeping mapping key order.
// The caller bounds the input size.
func ToJSON(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}
	out, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, syntaxError(err)
	}
	return out, nil
}
