package query

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// FieldAccessor binds a client-visible field name to a typed extraction
// function. Accessor tables replace reflection: field selection stays
// dynamic while every access is an ordinary function call.
type FieldAccessor[T any] struct {
	Name string
	Get  func(T) any
}

// Shaper projects values of T into partial records. It is built once per
// entity type at startup and reused across requests; after construction
// it is immutable and safe for unbounded concurrent use.
type Shaper[T any] struct {
	accessors []FieldAccessor[T]
	index     map[string]int
}

// NewShaper builds a Shaper from an ordered accessor table. A duplicate
// field name is a configuration defect and panics at startup.
func NewShaper[T any](accessors ...FieldAccessor[T]) *Shaper[T] {
	index := make(map[string]int, len(accessors))
	for i, a := range accessors {
		if _, ok := index[a.Name]; ok {
			panic(fmt.Sprintf("query: duplicate shape field %q", a.Name))
		}
		index[a.Name] = i
	}
	return &Shaper[T]{accessors: accessors, index: index}
}

// Fields returns every field name in declared order.
func (s *Shaper[T]) Fields() []string {
	names := make([]string, len(s.accessors))
	for i, a := range s.accessors {
		names[i] = a.Name
	}
	return names
}

// Shape builds one record per item containing exactly the requested
// fields, in request order. An empty fields expression selects every
// field in declared order. An unknown field aborts the whole call with
// ErrUnknownShapeField; no partial results are returned.
func (s *Shaper[T]) Shape(items []T, fields string) ([]ShapedRecord, error) {
	selected, err := s.resolve(fields)
	if err != nil {
		return nil, err
	}

	records := make([]ShapedRecord, 0, len(items))
	for _, item := range items {
		rec := ShapedRecord{
			fields: make([]string, 0, len(selected)),
			values: make(map[string]any, len(selected)),
		}
		for _, idx := range selected {
			a := s.accessors[idx]
			rec.fields = append(rec.fields, a.Name)
			rec.values[a.Name] = a.Get(item)
		}
		records = append(records, rec)
	}
	return records, nil
}

func (s *Shaper[T]) resolve(fields string) ([]int, error) {
	if strings.TrimSpace(fields) == "" {
		all := make([]int, len(s.accessors))
		for i := range all {
			all[i] = i
		}
		return all, nil
	}

	var selected []int
	for _, name := range strings.Split(fields, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		idx, ok := s.index[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownShapeField, name)
		}
		selected = append(selected, idx)
	}
	return selected, nil
}

// ShapedRecord is an ordered field-name-to-value mapping. All records
// produced by one Shape call carry the identical field set.
type ShapedRecord struct {
	fields []string
	values map[string]any
}

// Fields returns the record's field names in request order.
func (r ShapedRecord) Fields() []string {
	return append([]string(nil), r.fields...)
}

// Get returns the value for a field and whether the field is present.
func (r ShapedRecord) Get(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// MarshalJSON emits the record as a JSON object preserving field order.
func (r ShapedRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.values[name])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
