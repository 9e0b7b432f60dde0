package query

// Field is one named value of a Record.
type Field struct {
	Name  string
	Value Value
}

// Record is an immutable, ordered mapping from field name to value.
// Field order is the order fields were first seen.
type Record struct {
	fields []Field
	index  map[string]int
}

// NewRecord builds a record. A repeated name keeps its first position and
// takes the last value.
func NewRecord(fields ...Field) Record {
	r := Record{
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for _, f := range fields {
		if i, ok := r.index[f.Name]; ok {
			r.fields[i].Value = f.Value
			continue
		}
		r.index[f.Name] = len(r.fields)
		r.fields = append(r.fields, f)
	}
	return r
}

// Get returns the named value and whether the field is present.
func (r Record) Get(name string) (Value, bool) {
	i, ok := r.index[name]
	if !ok {
		return Value{}, false
	}
	return r.fields[i].Value, true
}

// Lookup returns the named value, or Null when the field is absent.
func (r Record) Lookup(name string) Value {
	v, _ := r.Get(name)
	return v
}

// Fields returns a copy of the record's fields in order.
func (r Record) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// Len returns the number of fields.
func (r Record) Len() int { return len(r.fields) }
