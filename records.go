package devloft

import (
	"io"

	"github.com/alnah/go-devloft/internal/recordio"
)

// Format is a record payload encoding.
type Format = recordio.Format

// Record payload formats.
const (
	FormatJSON = recordio.JSON
	FormatYAML = recordio.YAML
)

// ParseFormat parses "json", "yaml" or "yml".
func ParseFormat(name string) (Format, error) {
	return recordio.ParseFormat(name)
}

// DetectFormat picks a format from the path extension, then the content.
func DetectFormat(path string, data []byte) Format {
	return recordio.Detect(path, data)
}

// MaxRecordsSize returns the payload size limit, in bytes, that
// DecodeRecords enforces.
func MaxRecordsSize() int {
	return recordio.MaxInputSize
}

// DecodeRecords decodes an array of objects. Field order follows the payload.
// Returns ErrShape for anything but an array of objects, ErrSyntax for
// malformed input and ErrInputTooLarge above the payload size limit.
func DecodeRecords(data []byte, format Format) ([]Record, error) {
	records, err := recordio.Decode(data, format)
	if err != nil {
		return nil, convertInputError(err)
	}
	return records, nil
}

// EncodeRecords writes records as an indented JSON array, keeping field order.
func EncodeRecords(w io.Writer, records []Record) error {
	return recordio.Encode(w, records)
}
