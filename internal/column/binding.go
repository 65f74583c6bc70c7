package column

import (
	"strings"
)

// OverrideSeparator splits a header into a field name and a subfield list,
// as in "author: authorName; authorAffiliation".
const OverrideSeparator = ": "

// subfieldSeparator separates names inside a header's subfield list.
const subfieldSeparator = ";"

// Binding is the resolved meaning of one input column, computed once per run.
type Binding struct {
	// Index is the zero-based position of the column in the table.
	Index int
	// Header is the raw header text, trimmed.
	Header string
	// Name is the base field name the column maps to.
	Name string
	// Subfields overrides the default compound schema for this column; nil
	// when the header carries no override.
	Subfields []string
}

// HasOverride reports whether the header carried its own subfield list.
func (b Binding) HasOverride() bool {
	return b.Subfields != nil
}

// Resolve interprets a header. Without an override the whole trimmed header is
// the field name and subfields is nil. Subfield names keep their positions,
// so an empty name (as in "a; ; c") leaves a gap in the positional schema.
func Resolve(header string) (name string, subfields []string) {
	header = strings.TrimSpace(header)

	base, list, found := strings.Cut(header, OverrideSeparator)
	if !found {
		return header, nil
	}

	name = strings.TrimSpace(base)
	if strings.TrimSpace(list) == "" {
		return name, nil
	}

	for part := range strings.SplitSeq(list, subfieldSeparator) {
		subfields = append(subfields, strings.TrimSpace(part))
	}

	return name, subfields
}

// Bind resolves every header of a table.
func Bind(headers []string) []Binding {
	bindings := make([]Binding, len(headers))

	for i, h := range headers {
		name, subfields := Resolve(h)
		bindings[i] = Binding{
			Index:     i,
			Header:    strings.TrimSpace(h),
			Name:      name,
			Subfields: subfields,
		}
	}

	return bindings
}
