package document

// Block names and display names.
const (
	BlockCitation      = "citation"
	BlockGeospatial    = "geospatial"
	BlockSocialScience = "socialscience"
)

// MetadataBlock is a named group of fields.
type MetadataBlock struct {
	DisplayName string  `json:"displayName"`
	Name        string  `json:"name"`
	Fields      []Field `json:"fields"`
}

// NewCitationBlock creates an empty citation block.
func NewCitationBlock() MetadataBlock {
	return MetadataBlock{DisplayName: "Citation Metadata", Name: BlockCitation, Fields: []Field{}}
}

// NewGeospatialBlock creates an empty geospatial block.
func NewGeospatialBlock() *MetadataBlock {
	return &MetadataBlock{DisplayName: "Geospatial Metadata", Name: BlockGeospatial, Fields: []Field{}}
}

// NewSocialScienceBlock creates an empty social-science block.
func NewSocialScienceBlock() *MetadataBlock {
	return &MetadataBlock{
		DisplayName: "Social Science and Humanities Metadata",
		Name:        BlockSocialScience,
		Fields:      []Field{},
	}
}

// Append adds a field unless its value is empty. It reports whether the field
// was added.
func (b *MetadataBlock) Append(f Field) bool {
	if f.IsEmpty() {
		return false
	}

	b.Fields = append(b.Fields, f)

	return true
}

// Named returns every field with the given type name, in order.
func (b *MetadataBlock) Named(typeName string) []Field {
	var out []Field

	for _, f := range b.Fields {
		if f.TypeName == typeName {
			out = append(out, f)
		}
	}

	return out
}

// First returns the first field with the given type name.
func (b *MetadataBlock) First(typeName string) (Field, bool) {
	for _, f := range b.Fields {
		if f.TypeName == typeName {
			return f, true
		}
	}

	return Field{}, false
}

// Remove deletes every field with the given type name and returns how many
// were removed.
func (b *MetadataBlock) Remove(typeName string) int {
	kept := b.Fields[:0]
	removed := 0

	for _, f := range b.Fields {
		if f.TypeName == typeName {
			removed++
			continue
		}

		kept = append(kept, f)
	}

	b.Fields = kept

	return removed
}

// Replace removes every field with f's type name and appends f.
func (b *MetadataBlock) Replace(f Field) {
	b.Remove(f.TypeName)
	b.Fields = append(b.Fields, f)
}

// IsEmpty reports whether the block has no fields.
func (b *MetadataBlock) IsEmpty() bool {
	return b == nil || len(b.Fields) == 0
}
