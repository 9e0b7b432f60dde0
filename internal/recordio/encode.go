package recordio

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/tidwall/pretty"

	"github.com/alnah/go-devloft/internal/query"
)

var prettyOptions = &pretty.Options{Width: 80, Prefix: "", Indent: "  ", SortKeys: false}

// Encode writes records as an indented JSON array, keeping field order.
func Encode(w io.Writer, records []query.Record) error {
	_, err := w.Write(Marshal(records))
	return err
}

// Marshal returns records as an indented JSON array ending in a newline.
func Marshal(records []query.Record) []byte {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, r := range records {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeRecord(&buf, r)
	}
	buf.WriteByte(']')
	return pretty.PrettyOptions(buf.Bytes(), prettyOptions)
}

func writeRecord(buf *bytes.Buffer, r query.Record) {
	buf.WriteByte('{')
	for i, f := range r.Fields() {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeString(buf, f.Name)
		buf.WriteByte(':')
		writeValue(buf, f.Value)
	}
	buf.WriteByte('}')
}

func writeValue(buf *bytes.Buffer, v query.Value) {
	switch v.Kind() {
	case query.String:
		writeString(buf, v.Text())
	case query.Number, query.Bool:
		buf.WriteString(v.Text())
	case query.Composite:
		buf.WriteString(v.Raw())
	default:
		buf.WriteString("null")
	}
}

// writeString quotes s as a JSON string without HTML escaping.
func writeString(buf *bytes.Buffer, s string) {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s) // strings always encode
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
}
