package decode

import (
	"strings"
	"time"

	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/directory"
	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/document"
)

// Decoder decodes cell text according to field descriptors.
type Decoder struct {
	// CurrentYear replaces dates that carry no recognisable year.
	CurrentYear string
}

// NewDecoder creates a decoder whose year fallback is taken from now.
func NewDecoder(now time.Time) *Decoder {
	return &Decoder{CurrentYear: YearOf(now)}
}

// Decode converts raw cell text into a field value: a string for single
// primitives, a []string for multiple primitives and vocabularies, and a
// []document.Entry for compound fields decoded against subfields. The second
// return value is false when the decoded value is empty and the field must be
// omitted.
func (d *Decoder) Decode(raw string, desc directory.Descriptor, subfields []string) (any, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, false
	}

	switch {
	case desc.IsCompound():
		entries := ParseCompound(raw, subfields)
		return entries, len(entries) > 0
	case desc.IsList():
		values := SplitList(raw)
		return values, len(values) > 0
	default:
		if directory.IsYearField(desc.Name) {
			return NormalizeYear(raw, d.CurrentYear), true
		}

		return raw, true
	}
}

// Field decodes raw text into a complete document field.
func (d *Decoder) Field(raw string, desc directory.Descriptor, subfields []string) (document.Field, bool) {
	value, ok := d.Decode(raw, desc, subfields)
	if !ok {
		return document.Field{}, false
	}

	return document.NewField(desc, value), true
}
