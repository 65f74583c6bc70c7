package assemble

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/column"
	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/directory"
	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/document"
)

func emptyDataset() *document.Dataset {
	return &document.Dataset{
		DatasetVersion: document.DatasetVersion{
			MetadataBlocks: document.MetadataBlocks{Citation: document.NewCitationBlock()},
		},
	}
}

func onlyEntry(t *testing.T, ds *document.Dataset, typeName string) document.Entry {
	t.Helper()

	fields := ds.CitationBlock().Named(typeName)
	require.Len(t, fields, 1, typeName)

	entries, ok := fields[0].Entries()
	require.True(t, ok)
	require.Len(t, entries, 1, typeName)

	return entries[0]
}

func TestBackfillEmptyDocumentIsIdempotent(t *testing.T) {
	ds := emptyDataset()
	row := column.NewRow(0)

	Backfill{}.Apply(ds, row)

	assert.Equal(t, map[string]string{"authorName": FallbackContributor}, onlyEntry(t, ds, "author").Values())
	assert.Equal(t, map[string]string{
		"datasetContactName":  FallbackContributor,
		"datasetContactEmail": FallbackContactEmail,
	}, onlyEntry(t, ds, "datasetContact").Values())
	assert.Equal(t, map[string]string{"dsDescriptionValue": FallbackDescription}, onlyEntry(t, ds, "dsDescription").Values())

	first, err := json.Marshal(ds)
	require.NoError(t, err)

	Backfill{}.Apply(ds, row)

	second, err := json.Marshal(ds)
	require.NoError(t, err)
	assert.JSONEq(t, string(first), string(second))
	assert.Len(t, ds.CitationBlock().Fields, 3)
}

func TestBackfillContributorChain(t *testing.T) {
	tests := []struct {
		name string
		row  column.Row
		fill Backfill
		want string
	}{
		{
			name: "author column first token",
			row:  column.NewRow(0, "author", "nan; MIT | Jane Doe", "depositor", "Dep"),
			fill: Backfill{Caller: Defaults{Contributor: "Caller"}},
			want: "Dep",
		},
		{
			name: "depositor",
			row:  column.NewRow(0, "depositor", "Jane Depositor"),
			fill: Backfill{Caller: Defaults{Contributor: "Caller"}},
			want: "Jane Depositor",
		},
		{
			name: "caller",
			row:  column.NewRow(0),
			fill: Backfill{Caller: Defaults{Contributor: "Caller"}, Env: Defaults{Contributor: "Env"}},
			want: "Caller",
		},
		{
			name: "environment",
			row:  column.NewRow(0),
			fill: Backfill{Env: Defaults{Contributor: "Env"}},
			want: "Env",
		},
		{
			name: "literal",
			row:  column.NewRow(0, "depositor", "N/A"),
			want: FallbackContributor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := emptyDataset()
			tt.fill.Apply(ds, tt.row)

			assert.Equal(t, tt.want, onlyEntry(t, ds, "author").Value("authorName"))
			assert.Equal(t, tt.want, onlyEntry(t, ds, "datasetContact").Value("datasetContactName"))
		})
	}
}

func TestBackfillAuthorFromRawColumn(t *testing.T) {
	ds := emptyDataset()

	// The assembled block has no author, as happens when every part was dropped.
	Backfill{}.Apply(ds, column.NewRow(0, "author", "  John Smith ; Uni | Jane"))

	assert.Equal(t, "John Smith", onlyEntry(t, ds, "author").Value("authorName"))
}

func TestBackfillContact(t *testing.T) {
	t.Run("from datasetContact parts", func(t *testing.T) {
		ds := emptyDataset()
		row := column.NewRow(0, "datasetContact", "Ann Lee; Uni; ann@uni.edu | Bob; X; bob@x.org")

		Backfill{Caller: Defaults{ContactEmail: "caller@example.org"}}.Apply(ds, row)

		e := onlyEntry(t, ds, "datasetContact")
		assert.Equal(t, []string{"datasetContactName", "datasetContactAffiliation", "datasetContactEmail"}, e.Names())
		assert.Equal(t, "Ann Lee", e.Value("datasetContactName"))
		assert.Equal(t, "Uni", e.Value("datasetContactAffiliation"))
		assert.Equal(t, "ann@uni.edu", e.Value("datasetContactEmail"))
	})

	t.Run("dedicated columns", func(t *testing.T) {
		ds := emptyDataset()
		row := column.NewRow(0,
			"datasetContact", "Ann Lee; nan; nan",
			"datasetContactEmail", "team@uni.edu",
			"datasetContactAffiliation", "Uni",
		)

		Backfill{Caller: Defaults{ContactEmail: "caller@example.org"}}.Apply(ds, row)

		e := onlyEntry(t, ds, "datasetContact")
		assert.Equal(t, "Ann Lee", e.Value("datasetContactName"))
		assert.Equal(t, "Uni", e.Value("datasetContactAffiliation"))
		assert.Equal(t, "team@uni.edu", e.Value("datasetContactEmail"))
	})

	t.Run("caller then environment email", func(t *testing.T) {
		ds := emptyDataset()
		Backfill{Env: Defaults{ContactEmail: "env@example.org"}}.Apply(ds, column.NewRow(0))
		assert.Equal(t, "env@example.org", onlyEntry(t, ds, "datasetContact").Value("datasetContactEmail"))

		ds = emptyDataset()
		Backfill{
			Caller: Defaults{ContactEmail: "caller@example.org"},
			Env:    Defaults{ContactEmail: "env@example.org"},
		}.Apply(ds, column.NewRow(0))
		assert.Equal(t, "caller@example.org", onlyEntry(t, ds, "datasetContact").Value("datasetContactEmail"))
	})
}

func TestBackfillReplacesPartialFields(t *testing.T) {
	ds := emptyDataset()
	block := ds.CitationBlock()

	partial := document.NewEntry()
	partial.Set("authorAffiliation", "MIT")

	author, ok := directory.Default().Lookup("author")
	require.True(t, ok)

	block.Append(document.NewField(author, []document.Entry{partial}))
	block.Append(document.NewField(author, []document.Entry{partial}))

	Backfill{Caller: Defaults{Contributor: "Caller"}}.Apply(ds, column.NewRow(0))

	e := onlyEntry(t, ds, "author")
	assert.Equal(t, map[string]string{"authorName": "Caller"}, e.Values())
}

func TestBackfillKeepsPopulatedFields(t *testing.T) {
	a := newTestAssembler(Options{Defaults: Defaults{Contributor: "Caller", Description: "Caller text"}})

	row := column.NewRow(0,
		"author", "John Smith; Uni",
		"datasetContact", "Ann; Lab; ann@lab.org",
		"dsDescription", "A survey; 2019-04-01",
	)

	ds, _ := a.Assemble(row)

	assert.Equal(t, map[string]string{"authorName": "John Smith", "authorAffiliation": "Uni"},
		onlyEntry(t, ds, "author").Values())
	assert.Equal(t, "ann@lab.org", onlyEntry(t, ds, "datasetContact").Value("datasetContactEmail"))
	assert.Equal(t, map[string]string{"dsDescriptionValue": "A survey", "dsDescriptionDate": "2019"},
		onlyEntry(t, ds, "dsDescription").Values())
}

func TestBackfillDescriptionChain(t *testing.T) {
	tests := []struct {
		name     string
		row      column.Row
		citation string
		fill     Backfill
		want     string
	}{
		{
			name: "description column",
			row:  column.NewRow(0, "dsDescription", "First | Second"),
			fill: Backfill{Caller: Defaults{Description: "Caller"}},
			want: "First",
		},
		{
			name:     "citation text",
			row:      column.NewRow(0),
			citation: "Smith (2020)",
			fill:     Backfill{Caller: Defaults{Description: "Caller"}},
			want:     "Smith (2020)",
		},
		{
			name: "caller",
			row:  column.NewRow(0),
			fill: Backfill{Caller: Defaults{Description: "Caller"}, Env: Defaults{Description: "Env"}},
			want: "Caller",
		},
		{
			name: "environment",
			row:  column.NewRow(0),
			fill: Backfill{Env: Defaults{Description: "Env"}},
			want: "Env",
		},
		{
			name: "literal",
			row:  column.NewRow(0),
			want: FallbackDescription,
		},
		{
			name:     "sanitized citation text is entity-escaped",
			row:      column.NewRow(0),
			citation: "Data & code <script>x()</script>",
			fill:     Backfill{Sanitize: SanitizeHTML},
			want:     "Data &amp; code ",
		},
		{
			name: "sanitized row value",
			row:  column.NewRow(0, "dsDescription", `<b onclick="x()">Bold</b>`),
			fill: Backfill{Sanitize: SanitizeHTML},
			want: "<b>Bold</b>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := emptyDataset()
			ds.Citation = tt.citation

			tt.fill.Apply(ds, tt.row)

			assert.Equal(t, tt.want, onlyEntry(t, ds, "dsDescription").Value("dsDescriptionValue"))
		})
	}
}
