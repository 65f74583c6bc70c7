package directory

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/diagnostic"
)

// Overlay is the root of a YAML directory overlay file.
type Overlay struct {
	// Version of the overlay schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Fields are added to, or replace entries of, the built-in directory.
	Fields []FieldDef `yaml:"fields"`
}

// FieldDef defines one directory entry in an overlay.
type FieldDef struct {
	Name      string      `yaml:"name"`
	Multiple  bool        `yaml:"multiple,omitempty"`
	TypeClass TypeClass   `yaml:"typeClass"`
	Subfields StringArray `yaml:"subfields,omitempty"`
}

// Descriptor converts the definition into a Descriptor.
func (f FieldDef) Descriptor() Descriptor {
	return Descriptor{
		Name:        strings.TrimSpace(f.Name),
		Cardinality: CardinalityOf(f.Multiple),
		TypeClass:   f.TypeClass,
	}
}

// StringArray is a string slice that can be unmarshaled from a single string or a list.
// A single string is split on ";" the same way column headers are.
type StringArray []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *StringArray) UnmarshalYAML(unmarshal func(any) error) error {
	var single string
	if err := unmarshal(&single); err == nil {
		var out []string
		for part := range strings.SplitSeq(single, ";") {
			out = append(out, strings.TrimSpace(part))
		}

		*s = out

		return nil
	}

	var multi []string
	if err := unmarshal(&multi); err == nil {
		*s = multi
		return nil
	}

	return errors.New("expected string or list of strings")
}

// LoadOverlayFile loads and parses a YAML overlay file from the given path.
func LoadOverlayFile(path string) (*Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory overlay %s: %w", path, err)
	}

	return ParseOverlay(data)
}

// ParseOverlay parses YAML data into an Overlay.
func ParseOverlay(data []byte) (*Overlay, error) {
	var o Overlay

	err := yaml.Unmarshal(data, &o)
	if err != nil {
		return nil, fmt.Errorf("failed to parse directory overlay YAML: %w", err)
	}

	if o.Version == "" {
		o.Version = "1"
	}

	return &o, nil
}

// ValidateOverlay checks an overlay for structural problems.
func ValidateOverlay(o *Overlay) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if o == nil {
		return res
	}

	seen := map[string]struct{}{}

	for i, f := range o.Fields {
		name := strings.TrimSpace(f.Name)
		if name == "" {
			res.AddError(diagnostic.CodeFieldNameEmpty,
				fmt.Sprintf("overlay field #%d has no name", i+1), 0, "")

			continue
		}

		if _, dup := seen[name]; dup {
			res.AddError(diagnostic.CodeDuplicateDef,
				fmt.Sprintf("field %q is defined more than once", name), 0, name)

			continue
		}

		seen[name] = struct{}{}

		if !f.TypeClass.IsValid() {
			res.AddError(diagnostic.CodeTypeClassInvalid,
				fmt.Sprintf("field %q has invalid typeClass %q", name, f.TypeClass), 0, name)

			continue
		}

		switch {
		case f.TypeClass == TypeClassCompound && len(f.Subfields) == 0:
			res.AddWarning(diagnostic.CodeNoSubfields,
				fmt.Sprintf("compound field %q has no subfields; only header overrides can decode it", name), 0, name)
		case f.TypeClass != TypeClassCompound && len(f.Subfields) > 0:
			res.AddWarning(diagnostic.CodeSubfieldsIgnored,
				fmt.Sprintf("subfields of %s field %q are ignored", f.TypeClass, name), 0, name)
		}
	}

	return res
}

// Apply returns a copy of the registry with the overlay merged in. The
// receiver is left untouched.
func (r *Registry) Apply(o *Overlay) (*Registry, error) {
	diags := ValidateOverlay(o)
	if err := diags.Error(); err != nil {
		return nil, fmt.Errorf("invalid directory overlay: %w", err)
	}

	merged := r.Clone()
	if o == nil {
		return merged, nil
	}

	for _, f := range o.Fields {
		merged.Add(f.Descriptor(), f.Subfields)
	}

	return merged, nil
}
