package convert

import (
	"fmt"
	"io"
	"log"

	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/assemble"
	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/column"
	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/diagnostic"
	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/directory"
	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/document"
	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/match"
)

// Options configures a run.
type Options struct {
	// Assemble configures per-row assembly.
	Assemble assemble.Options

	// Logger receives progress and diagnostics. Nil discards them.
	Logger *log.Logger

	// Comma is the field delimiter. Zero means ','.
	Comma rune
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard, "", 0)
	}

	return o.Logger
}

// Result holds the documents of a run, in input order.
type Result struct {
	Documents   []*document.Dataset
	Diagnostics diagnostic.Diagnostics
	Bindings    []column.Binding
}

// Output returns what gets serialised: the lone document for a single-row
// input, otherwise the (possibly empty) list of documents.
func (r *Result) Output() any {
	if len(r.Documents) == 1 {
		return r.Documents[0]
	}

	if r.Documents == nil {
		return []*document.Dataset{}
	}

	return r.Documents
}

// Convert reads the whole input and assembles every row.
func Convert(r io.Reader, opts Options) (*Result, error) {
	table, err := ReadTable(r, opts.Comma)
	if err != nil {
		return nil, err
	}

	return ConvertTable(table, opts), nil
}

// ConvertTable assembles every row of an already loaded table.
func ConvertTable(table *Table, opts Options) *Result {
	logger := opts.logger()
	asm := assemble.New(opts.Assemble)

	res := &Result{Bindings: table.Header.Bindings()}
	res.Diagnostics.Merge(inspectHeader(res.Bindings, asm.Registry()))

	for _, row := range table.Rows() {
		ds, diags := asm.Assemble(row)

		res.Documents = append(res.Documents, ds)
		res.Diagnostics.Merge(diags)

		logger.Printf("row %d: dataset id=%d, %d citation fields",
			row.Number(), ds.ID, len(ds.CitationBlock().Fields))

		for _, d := range diags.All() {
			logger.Printf("%s: %s", d.Severity, d)
		}
	}

	for _, d := range res.Diagnostics.All() {
		if d.Row == 0 {
			logger.Printf("%s: %s", d.Severity, d)
		}
	}

	return res
}

// inspectHeader reports columns that resolve to no field but look like a
// known one, and field names bound by more than one column.
func inspectHeader(bindings []column.Binding, reg *directory.Registry) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	known := reg.Names()
	seen := make(map[string]int, len(bindings))

	for _, b := range bindings {
		if b.Name == "" {
			continue
		}

		if reg.Has(b.Name) {
			seen[b.Name]++
			if seen[b.Name] == 2 {
				diags.AddInfo(diagnostic.CodeDuplicateField,
					fmt.Sprintf("field %q is bound by more than one column, each adds its own entry", b.Name),
					0, b.Header)
			}

			continue
		}

		if assemble.IsAuxiliaryColumn(b.Name) {
			continue
		}

		if c, ok := match.Suggest(b.Name, known, match.DefaultThreshold); ok {
			diags.AddInfo(diagnostic.CodeUnknownColumn,
				fmt.Sprintf("column is ignored, did you mean %q?", c.Name), 0, b.Header)
		}
	}

	return diags
}
