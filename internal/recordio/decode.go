package recordio

import (
	"bytes"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/alnah/go-devloft/internal/query"
	"github.com/alnah/go-devloft/internal/yamlutil"
)

// MaxInputSize limits payloads to prevent memory exhaustion (default 10MB).
var MaxInputSize = 10 << 20

// Decode parses data in the given format into records.
func Decode(data []byte, format Format) ([]query.Record, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyInput
	}
	if len(data) > MaxInputSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}

	switch format {
	case JSON:
		return DecodeJSON(data)
	case YAML:
		return DecodeYAML(data)
	default:
		return nil, fmt.Errorf("unknown record format %q", format)
	}
}

// DecodeYAML converts YAML to JSON and decodes the result.
func DecodeYAML(data []byte) ([]query.Record, error) {
	js, err := yamlutil.ToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	return DecodeJSON(js)
}

// DecodeJSON decodes a JSON array of objects.
func DecodeJSON(data []byte) ([]query.Record, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrSyntax)
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("%w: got %s", ErrShape, describe(root))
	}

	var (
		records  []query.Record
		shapeErr error
		index    int
	)
	root.ForEach(func(_, item gjson.Result) bool {
		if !item.IsObject() {
			shapeErr = fmt.Errorf("%w: element %d is %s", ErrShape, index, describe(item))
			return false
		}
		records = append(records, decodeObject(item))
		index++
		return true
	})
	if shapeErr != nil {
		return nil, shapeErr
	}
	if records == nil {
		records = []query.Record{}
	}
	return records, nil
}

func decodeObject(obj gjson.Result) query.Record {
	var fields []query.Field
	obj.ForEach(func(key, value gjson.Result) bool {
		fields = append(fields, query.Field{Name: key.String(), Value: decodeValue(value)})
		return true
	})
	return query.NewRecord(fields...)
}

func decodeValue(v gjson.Result) query.Value {
	switch v.Type {
	case gjson.String:
		return query.StringValue(v.Str)
	case gjson.Number:
		return query.NumberValue(v.Num)
	case gjson.True:
		return query.BoolValue(true)
	case gjson.False:
		return query.BoolValue(false)
	case gjson.JSON:
		return query.CompositeValue(v.Raw)
	default:
		return query.NullValue()
	}
}

func describe(v gjson.Result) string {
	switch {
	case v.IsArray():
		return "an array"
	case v.IsObject():
		return "an object"
	case v.Type == gjson.String:
		return "a string"
	case v.Type == gjson.Number:
		return "a number"
	case v.Type == gjson.True, v.Type == gjson.False:
		return "a boolean"
	default:
		return "null"
	}
}
