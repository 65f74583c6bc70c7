package assemble

import (
	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/column"
	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/decode"
	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/directory"
	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/document"
)

// geospatialColumns trigger the geospatial block. geographicBoundingBox is
// recognised but not decoded.
var geospatialColumns = []string{"geographicCoverage", "geographicUnit", "geographicBoundingBox"}

var (
	geographicCoverage = directory.Descriptor{
		Name: "geographicCoverage", Cardinality: directory.Multiple, TypeClass: directory.TypeClassCompound,
	}
	geographicUnit = directory.Descriptor{
		Name: "geographicUnit", Cardinality: directory.Multiple, TypeClass: directory.TypeClassPrimitive,
	}
)

// socialScienceFields are the recognised social-science fields, in output order.
var socialScienceFields = []struct {
	name     string
	multiple bool
}{
	{"unitOfAnalysis", true},
	{"universe", true},
	{"timeMethod", false},
	{"frequencyOfDataCollection", false},
	{"samplingProcedure", false},
	{"collectionMode", true},
	{"dataCollectionSituation", false},
	{"weighting", false},
}

func anyColumn(row column.Row, names []string) bool {
	for _, n := range names {
		if row.Has(n) {
			return true
		}
	}

	return false
}

// GeospatialBlock builds the geospatial block, or returns nil when the row
// has no geospatial columns or they produce no field.
func GeospatialBlock(row column.Row) *document.MetadataBlock {
	if !anyColumn(row, geospatialColumns) {
		return nil
	}

	block := document.NewGeospatialBlock()

	if raw, ok := row.Get(geographicCoverage.Name); ok {
		var entries []document.Entry

		for _, country := range decode.SplitList(raw) {
			e := document.NewEntry()
			e.SetField(document.Field{
				TypeName:  "country",
				Multiple:  false,
				TypeClass: directory.TypeClassVocabulary,
				Value:     country,
			})
			entries = append(entries, e)
		}

		block.Append(document.NewField(geographicCoverage, entries))
	}

	if raw, ok := row.Get(geographicUnit.Name); ok {
		block.Append(document.NewField(geographicUnit, decode.SplitList(raw)))
	}

	if block.IsEmpty() {
		return nil
	}

	return block
}

// SocialScienceBlock builds the social-science block, or returns nil when the
// row has none of its columns or they produce no field.
func SocialScienceBlock(row column.Row) *document.MetadataBlock {
	block := document.NewSocialScienceBlock()

	for _, f := range socialScienceFields {
		raw, ok := row.Get(f.name)
		if !ok {
			continue
		}

		desc := directory.Descriptor{
			Name:        f.name,
			Cardinality: directory.CardinalityOf(f.multiple),
			TypeClass:   directory.TypeClassPrimitive,
		}

		var value any = raw
		if f.multiple {
			value = decode.SplitList(raw)
		}

		block.Append(document.NewField(desc, value))
	}

	if block.IsEmpty() {
		return nil
	}

	return block
}
