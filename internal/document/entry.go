package document

import (
	"bytes"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/directory"
)

// Entry is one decoded instance of a compound field: subfield name to a
// single-valued subfield Field, in the order subfields were set.
type Entry struct {
	subfields *orderedmap.OrderedMap[string, Field]
}

// NewEntry creates an empty entry.
func NewEntry() Entry {
	return Entry{subfields: orderedmap.New[string, Field]()}
}

// Set stores a primitive subfield value.
func (e Entry) Set(name, value string) {
	e.SetField(Field{
		TypeName:  name,
		Multiple:  false,
		TypeClass: directory.TypeClassPrimitive,
		Value:     value,
	})
}

// SetField stores a subfield under its TypeName.
func (e Entry) SetField(f Field) {
	e.subfields.Set(f.TypeName, f)
}

// Get returns the subfield with the given name.
func (e Entry) Get(name string) (Field, bool) {
	if e.subfields == nil {
		return Field{}, false
	}

	return e.subfields.Get(name)
}

// Value returns the scalar value of a subfield, or "" when absent.
func (e Entry) Value(name string) string {
	f, ok := e.Get(name)
	if !ok {
		return ""
	}

	s, _ := f.Value.(string)

	return s
}

// Len returns the number of subfields.
func (e Entry) Len() int {
	if e.subfields == nil {
		return 0
	}

	return e.subfields.Len()
}

// Names returns the subfield names in order.
func (e Entry) Names() []string {
	if e.subfields == nil {
		return nil
	}

	names := make([]string, 0, e.subfields.Len())
	for pair := e.subfields.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}

	return names
}

// Values returns the subfield name to value mapping, dropping order.
func (e Entry) Values() map[string]string {
	out := make(map[string]string, e.Len())
	for _, name := range e.Names() {
		out[name] = e.Value(name)
	}

	return out
}

// MarshalJSON writes the entry as an object whose keys follow insertion order.
func (e Entry) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	if e.subfields != nil {
		for pair, first := e.subfields.Oldest(), true; pair != nil; pair, first = pair.Next(), false {
			if !first {
				buf.WriteByte(',')
			}

			key, err := marshal(pair.Key)
			if err != nil {
				return nil, err
			}

			val, err := marshal(pair.Value)
			if err != nil {
				return nil, err
			}

			buf.Write(key)
			buf.WriteByte(':')
			buf.Write(val)
		}
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}
