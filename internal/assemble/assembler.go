package assemble

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/column"
	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/decode"
	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/diagnostic"
	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/directory"
	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/document"
)

// Columns attached outside the citation block.
const (
	ColumnFiles    = "files"
	ColumnCitation = "citation"
)

var errFilesNotJSON = errors.New("files cell is not valid JSON")

// Assembler builds dataset documents from rows. It holds no per-row state, so
// one Assembler serves a whole run.
type Assembler struct {
	opts     Options
	decoder  *decode.Decoder
	backfill Backfill
	sanitize func(string) string
}

// New creates an Assembler.
func New(opts Options) *Assembler {
	opts = opts.withDefaults()

	a := &Assembler{
		opts:    opts,
		decoder: decode.NewDecoder(opts.Now),
		backfill: Backfill{
			Caller: opts.Defaults,
			Env:    opts.EnvDefaults,
		},
	}

	if opts.SanitizeDescriptions {
		a.sanitize = SanitizeHTML
		a.backfill.Sanitize = SanitizeHTML
	}

	return a
}

// Registry returns the field directory the assembler decodes against.
func (a *Assembler) Registry() *directory.Registry {
	return a.opts.Registry
}

// Assemble produces the document for one row. Diagnostics carry row-level
// problems that were recovered from.
func (a *Assembler) Assemble(row column.Row) (*document.Dataset, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	ds := a.buildEnvelope(row, &diags)
	a.decodeCitation(row, ds.CitationBlock())

	blocks := &ds.DatasetVersion.MetadataBlocks
	blocks.Geospatial = GeospatialBlock(row)
	blocks.SocialScience = SocialScienceBlock(row)

	if raw, ok := row.Get(ColumnFiles); ok {
		files, err := ParseFiles(raw)
		if err != nil {
			diags.AddWarning(diagnostic.CodeFilesJSONInvalid,
				"could not parse files JSON, file list omitted", row.Number(), ColumnFiles)
		} else {
			ds.DatasetVersion.Files = files
		}
	}

	if citation, ok := row.Get(ColumnCitation); ok {
		ds.Citation = citation
	}

	if a.sanitize != nil {
		sanitizeDescriptions(ds.CitationBlock(), a.sanitize)
	}

	a.backfill.Apply(ds, row)

	return ds, diags
}

// decodeCitation appends one field per recognised, non-empty column, in
// column order. Columns sharing a field name each contribute their own field.
func (a *Assembler) decodeCitation(row column.Row, block *document.MetadataBlock) {
	for _, b := range row.Header().Bindings() {
		desc, ok := a.opts.Registry.Lookup(b.Name)
		if !ok {
			continue
		}

		raw, ok := row.Value(b)
		if !ok {
			continue
		}

		subfields := b.Subfields
		if !b.HasOverride() {
			subfields = a.opts.Registry.Subfields(b.Name)
		}

		if f, ok := a.decoder.Field(raw, desc, subfields); ok {
			block.Append(f)
		}
	}
}

// ParseFiles decodes a files cell. An array yields its elements; any other
// JSON value is wrapped in a one-element list.
func ParseFiles(raw string) ([]json.RawMessage, error) {
	raw = strings.TrimSpace(raw)
	if !json.Valid([]byte(raw)) {
		return nil, errFilesNotJSON
	}

	if strings.HasPrefix(raw, "[") {
		var files []json.RawMessage
		if err := json.Unmarshal([]byte(raw), &files); err != nil {
			return nil, err
		}

		return files, nil
	}

	return []json.RawMessage{json.RawMessage(raw)}, nil
}

// IsAuxiliaryColumn reports whether a column is consumed outside the citation
// directory: envelope fields, discipline blocks, files and citation.
func IsAuxiliaryColumn(name string) bool {
	return auxiliaryColumns[name]
}

var auxiliaryColumns = func() map[string]bool {
	m := map[string]bool{ColumnFiles: true, ColumnCitation: true}

	for _, c := range envelopeColumns {
		m[c] = true
	}

	for _, c := range geospatialColumns {
		m[c] = true
	}

	for _, f := range socialScienceFields {
		m[f.name] = true
	}

	for _, c := range backfillColumns {
		m[c] = true
	}

	return m
}()
