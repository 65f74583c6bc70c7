package assemble

import (
	"strings"

	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/column"
	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/common"
	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/decode"
	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/directory"
	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/document"
)

// Dedicated contact columns read by the backfill.
const (
	ColumnContactEmail       = "datasetContactEmail"
	ColumnContactAffiliation = "datasetContactAffiliation"
)

var backfillColumns = []string{ColumnContactEmail, ColumnContactAffiliation}

var (
	authorField = directory.Descriptor{
		Name: directory.FieldAuthor, Cardinality: directory.Multiple, TypeClass: directory.TypeClassCompound,
	}
	contactField = directory.Descriptor{
		Name: directory.FieldDatasetContact, Cardinality: directory.Multiple, TypeClass: directory.TypeClassCompound,
	}
	descriptionField = directory.Descriptor{
		Name: directory.FieldDescription, Cardinality: directory.Multiple, TypeClass: directory.TypeClassCompound,
	}
)

// Backfill guarantees that a dataset carries an author name, a contact email
// and a description. Each value is taken from the first source that has one:
// row columns, Caller, Env, then the literal fallback.
//
// A field that fails its check is replaced as a whole by a single synthesized
// entry. Existing partial entries of that field are discarded.
type Backfill struct {
	Caller Defaults
	Env    Defaults

	// Sanitize, when set, is applied to a description taken from the row.
	Sanitize func(string) string
}

// Apply backfills ds in place. Fields that already pass their check are left
// untouched, so applying twice is the same as applying once.
func (b Backfill) Apply(ds *document.Dataset, row column.Row) {
	block := ds.CitationBlock()

	if !hasSubfield(block, directory.FieldAuthor, directory.SubfieldAuthorName) {
		b.fillAuthor(block, row)
	}

	if !hasSubfield(block, directory.FieldDatasetContact, directory.SubfieldContactEmail) {
		b.fillContact(block, row)
	}

	if !hasSubfield(block, directory.FieldDescription, directory.SubfieldDescriptionValue) {
		b.fillDescription(block, row, ds.Citation)
	}
}

func (b Backfill) fillAuthor(block *document.MetadataBlock, row column.Row) {
	name := common.FirstNonEmpty(
		firstToken(row, directory.FieldAuthor),
		cell(row, directory.FieldDepositor),
		b.Caller.Contributor,
		b.Env.Contributor,
		FallbackContributor,
	)

	entry := document.NewEntry()
	entry.Set(directory.SubfieldAuthorName, name)

	block.Replace(document.NewField(authorField, []document.Entry{entry}))
}

func (b Backfill) fillContact(block *document.MetadataBlock, row column.Row) {
	parts := contactParts(row)

	name := common.FirstNonEmpty(
		common.At(parts, 0),
		cell(row, directory.FieldDepositor),
		b.Caller.Contributor,
		b.Env.Contributor,
		FallbackContributor,
	)
	affiliation := common.FirstNonEmpty(
		common.At(parts, 1),
		cell(row, ColumnContactAffiliation),
	)
	email := common.FirstNonEmpty(
		common.At(parts, 2),
		cell(row, ColumnContactEmail),
		b.Caller.ContactEmail,
		b.Env.ContactEmail,
		FallbackContactEmail,
	)

	entry := document.NewEntry()
	entry.Set(directory.SubfieldContactName, name)

	if affiliation != "" {
		entry.Set(directory.SubfieldContactAffiliation, affiliation)
	}

	entry.Set(directory.SubfieldContactEmail, email)

	block.Replace(document.NewField(contactField, []document.Entry{entry}))
}

func (b Backfill) fillDescription(block *document.MetadataBlock, row column.Row, citation string) {
	fromRow := common.FirstNonEmpty(
		firstToken(row, directory.FieldDescription),
		strings.TrimSpace(citation),
	)
	if fromRow != "" && b.Sanitize != nil {
		fromRow = b.Sanitize(fromRow)
	}

	text := common.FirstNonEmpty(
		fromRow,
		b.Caller.Description,
		b.Env.Description,
		FallbackDescription,
	)

	entry := document.NewEntry()
	entry.Set(directory.SubfieldDescriptionValue, text)

	block.Replace(document.NewField(descriptionField, []document.Entry{entry}))
}

func hasSubfield(block *document.MetadataBlock, typeName, subfield string) bool {
	for _, f := range block.Named(typeName) {
		if f.HasSubfield(subfield) {
			return true
		}
	}

	return false
}

// cell returns the trimmed cell, or "" when absent or a missing-value sentinel.
func cell(row column.Row, name string) string {
	v, _ := row.Get(name)
	return v
}

// firstToken returns the first ";" part of the first "|" entry of a column.
func firstToken(row column.Row, name string) string {
	raw := cell(row, name)
	if raw == "" {
		return ""
	}

	first, _ := common.First(decode.SplitList(raw))
	token := common.At(decode.SplitParts(first), 0)

	if column.IsMissing(token) {
		return ""
	}

	return token
}

// contactParts returns the positional parts of the first datasetContact entry,
// with missing-value sentinels blanked.
func contactParts(row column.Row) []string {
	raw := cell(row, directory.FieldDatasetContact)
	if raw == "" {
		return nil
	}

	first, _ := common.First(decode.SplitList(raw))

	parts := decode.SplitParts(first)
	for i, p := range parts {
		if column.IsMissing(p) {
			parts[i] = ""
		}
	}

	return parts
}
