package document

import (
	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/directory"
)

// Field is one typed field of a metadata block, or one subfield of an Entry.
// Value is a string, a []string or an []Entry.
type Field struct {
	TypeName  string              `json:"typeName"`
	Multiple  bool                `json:"multiple"`
	TypeClass directory.TypeClass `json:"typeClass"`
	Value     any                 `json:"value"`
}

// NewField creates a field shaped by its descriptor.
func NewField(d directory.Descriptor, value any) Field {
	return Field{
		TypeName:  d.Name,
		Multiple:  d.Multiple(),
		TypeClass: d.TypeClass,
		Value:     value,
	}
}

// Scalar returns the value when it is a string.
func (f Field) Scalar() (string, bool) {
	s, ok := f.Value.(string)
	return s, ok
}

// Strings returns the value when it is a list of strings.
func (f Field) Strings() ([]string, bool) {
	s, ok := f.Value.([]string)
	return s, ok
}

// Entries returns the value when it is a list of compound entries.
func (f Field) Entries() ([]Entry, bool) {
	e, ok := f.Value.([]Entry)
	return e, ok
}

// IsEmpty reports whether the value carries nothing worth emitting.
func (f Field) IsEmpty() bool {
	switch v := f.Value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []string:
		return len(v) == 0
	case []Entry:
		return len(v) == 0
	default:
		return false
	}
}

// HasSubfield reports whether any entry of a compound field has a non-empty
// value for the named subfield.
func (f Field) HasSubfield(name string) bool {
	entries, ok := f.Entries()
	if !ok {
		return false
	}

	for _, e := range entries {
		if e.Value(name) != "" {
			return true
		}
	}

	return false
}
