package conf

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Field is a single named configuration value.
type Field struct {
	Key   string
	Value any
}

// Record is an immutable set of configuration values with fields kept in
// lexicographic key order. Nested map values are stored as nested Records,
// so two records built from the same values compare equal regardless of
// insertion order.
type Record struct {
	fields []Field
}

// New builds a Record from values. Values of type map[string]any become
// nested Records. The input map is not retained.
func New(values map[string]any) Record {
	fields := make([]Field, 0, len(values))
	for k, v := range values {
		if m, ok := v.(map[string]any); ok {
			v = New(m)
		}
		fields = append(fields, Field{Key: k, Value: v})
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Key < fields[j].Key })
	return Record{fields: fields}
}

// Len reports the number of fields.
func (r Record) Len() int { return len(r.fields) }

// Fields returns the fields in key order. The returned slice is a copy.
func (r Record) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// Get returns the raw value for key.
func (r Record) Get(key string) (any, bool) {
	i := sort.Search(len(r.fields), func(i int) bool { return r.fields[i].Key >= key })
	if i < len(r.fields) && r.fields[i].Key == key {
		return r.fields[i].Value, true
	}
	return nil, false
}

// Int returns the value for key as an int. YAML decodes whole numbers to
// several integer widths depending on magnitude, so all of them convert.
func (r Record) Int(key string) (int, bool) {
	v, ok := r.Get(key)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}

// Float returns the value for key as a float64, converting integer values.
func (r Record) Float(key string) (float64, bool) {
	v, ok := r.Get(key)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// Str returns the value for key as a string.
func (r Record) Str(key string) (string, bool) {
	v, ok := r.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Bool returns the value for key as a bool.
func (r Record) Bool(key string) (bool, bool) {
	v, ok := r.Get(key)
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// Sub returns the nested Record stored under key.
func (r Record) Sub(key string) (Record, bool) {
	v, ok := r.Get(key)
	if !ok {
		return Record{}, false
	}
	sub, ok := v.(Record)
	return sub, ok
}

// Map converts the record back to nested maps. The result shares no
// structure with the record and is safe to mutate.
func (r Record) Map() map[string]any {
	out := make(map[string]any, len(r.fields))
	for _, f := range r.fields {
		if sub, ok := f.Value.(Record); ok {
			out[f.Key] = sub.Map()
			continue
		}
		out[f.Key] = f.Value
	}
	return out
}

// Equal reports whether two records hold the same keys and values. Numeric
// values compare by value across int, int64, uint64 and float64, so a
// record that round-tripped through YAML still compares equal to the one
// that produced it.
func (r Record) Equal(o Record) bool {
	if len(r.fields) != len(o.fields) {
		return false
	}
	for i, f := range r.fields {
		g := o.fields[i]
		if f.Key != g.Key || !valueEqual(f.Value, g.Value) {
			return false
		}
	}
	return true
}

func valueEqual(a, b any) bool {
	if ra, ok := a.(Record); ok {
		rb, ok := b.(Record)
		return ok && ra.Equal(rb)
	}
	if fa, ok := asFloat(a); ok {
		fb, ok := asFloat(b)
		return ok && fa == fb
	}
	return reflect.DeepEqual(a, b)
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// String renders the record as Config(k=v, ...) with fields in key order.
func (r Record) String() string {
	var b strings.Builder
	b.WriteString("Config(")
	for i, f := range r.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Key)
		b.WriteByte('=')
		fmt.Fprintf(&b, "%v", f.Value)
	}
	b.WriteByte(')')
	return b.String()
}
