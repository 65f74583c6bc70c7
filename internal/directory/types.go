package directory

import (
	"errors"
	"strings"

	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/common"
)

// Cardinality tells whether a field holds one value or a list of values.
type Cardinality int

const (
	Single   Cardinality = iota // one scalar value
	Multiple                    // an ordered list of values or entries
)

// String returns a human-readable representation of the cardinality.
func (c Cardinality) String() string {
	switch c {
	case Single:
		return "single"
	case Multiple:
		return "multiple"
	default:
		return common.UnknownStr
	}
}

// IsMultiple reports whether the cardinality is Multiple.
func (c Cardinality) IsMultiple() bool {
	return c == Multiple
}

// CardinalityOf maps the repository's boolean "multiple" flag to a Cardinality.
func CardinalityOf(multiple bool) Cardinality {
	if multiple {
		return Multiple
	}

	return Single
}

// TypeClass is the value-shape class of a field.
type TypeClass string

const (
	TypeClassPrimitive  TypeClass = "primitive"
	TypeClassVocabulary TypeClass = "controlledVocabulary"
	TypeClassCompound   TypeClass = "compound"
)

// IsValid returns true if the type class is a recognized value.
func (t TypeClass) IsValid() bool {
	return t == TypeClassPrimitive || t == TypeClassVocabulary || t == TypeClassCompound
}

// UnmarshalYAML implements yaml.Unmarshaler. Matching is case-insensitive and
// accepts "vocabulary" as a short form of controlledVocabulary.
func (t *TypeClass) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return errors.New("expected string for typeClass")
	}

	switch strings.ToLower(strings.TrimSpace(s)) {
	case "primitive":
		*t = TypeClassPrimitive
	case "controlledvocabulary", "vocabulary":
		*t = TypeClassVocabulary
	case "compound":
		*t = TypeClassCompound
	default:
		// Left as-is so validation can report it with the field name.
		*t = TypeClass(s)
	}

	return nil
}

// Descriptor is the static metadata for one recognised field.
type Descriptor struct {
	Name        string
	Cardinality Cardinality
	TypeClass   TypeClass
}

// IsCompound reports whether values are lists of structured entries.
func (d Descriptor) IsCompound() bool {
	return d.TypeClass == TypeClassCompound
}

// IsList reports whether the decoded value is a flat list of strings.
func (d Descriptor) IsList() bool {
	return d.TypeClass == TypeClassVocabulary ||
		(d.TypeClass == TypeClassPrimitive && d.Cardinality.IsMultiple())
}

// Multiple returns the repository's boolean form of the cardinality.
func (d Descriptor) Multiple() bool {
	return d.Cardinality.IsMultiple()
}
