package decode

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/directory"
	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/document"
)

// Separators used in cell text.
const (
	ValueSeparator    = "|"
	SubfieldSeparator = ";"
)

// missingSubfield is the sentinel a dataframe export writes for an absent value.
const missingSubfield = "nan"

// ErrArity is returned by ParseCompoundStrict when an entry's part count
// differs from the subfield count.
var ErrArity = errors.New("subfield count mismatch")

// ArityError describes one entry whose part count does not match its schema.
type ArityError struct {
	Entry     int // zero-based entry position
	Parts     int
	Subfields int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("entry %d: %d parts for %d subfields: %v", e.Entry, e.Parts, e.Subfields, ErrArity)
}

// Unwrap lets errors.Is match ErrArity.
func (e *ArityError) Unwrap() error {
	return ErrArity
}

// SplitList splits text on "|", trims each piece and drops empty pieces.
// Order and duplicates are preserved.
func SplitList(raw string) []string {
	var out []string

	for piece := range strings.SplitSeq(raw, ValueSeparator) {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			out = append(out, piece)
		}
	}

	return out
}

// SplitParts splits one compound entry on ";" and trims each part. Empty
// parts are kept so positions stay aligned with subfield names.
func SplitParts(entry string) []string {
	parts := strings.Split(entry, SubfieldSeparator)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}

// ParseCompound decodes "a; b | c; d" into entries, zipping parts with
// subfields by position. Empty and "nan" parts are skipped, a description
// date without a year is dropped, and entries left without subfields are
// omitted from the result.
func ParseCompound(raw string, subfields []string) []document.Entry {
	var out []document.Entry

	for _, text := range SplitList(raw) {
		entry, ok := buildEntry(SplitParts(text), subfields)
		if ok {
			out = append(out, entry)
		}
	}

	return out
}

// ParseCompoundStrict decodes like ParseCompound but fails on the first entry
// whose part count differs from the number of subfields.
func ParseCompoundStrict(raw string, subfields []string) ([]document.Entry, error) {
	var out []document.Entry

	for i, text := range SplitList(raw) {
		parts := SplitParts(text)
		if len(parts) != len(subfields) {
			return nil, &ArityError{Entry: i, Parts: len(parts), Subfields: len(subfields)}
		}

		entry, ok := buildEntry(parts, subfields)
		if ok {
			out = append(out, entry)
		}
	}

	return out, nil
}

func buildEntry(parts, subfields []string) (document.Entry, bool) {
	entry := document.NewEntry()

	for i, name := range subfields {
		if i >= len(parts) {
			break
		}

		value, ok := subfieldValue(name, parts[i])
		if !ok {
			continue
		}

		entry.Set(name, value)
	}

	return entry, entry.Len() > 0
}

func subfieldValue(name, part string) (string, bool) {
	if name == "" || part == "" || strings.EqualFold(part, missingSubfield) {
		return "", false
	}

	if name == directory.SubfieldDescriptionDate {
		return ExtractYear(part)
	}

	return part, true
}
