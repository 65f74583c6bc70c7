package convert

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/column"
)

// ErrEmptyInput is returned when the input has no header row.
var ErrEmptyInput = errors.New("input has no header row")

const byteOrderMark = "\ufeff"

// Table is a fully loaded input file.
type Table struct {
	Header  *column.Header
	Records [][]string
}

// ReadTable loads delimited text. The first record is the header. Rows may
// have fewer or more cells than the header. Quoting is strict: an unterminated
// or stray quote fails with a *csv.ParseError instead of merging rows.
func ReadTable(r io.Reader, comma rune) (*Table, error) {
	reader := csv.NewReader(r)
	if comma != 0 {
		reader.Comma = comma
	}

	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	headers := records[0]
	headers[0] = strings.TrimPrefix(headers[0], byteOrderMark)

	return &Table{
		Header:  column.NewHeader(headers),
		Records: records[1:],
	}, nil
}

// Rows returns one Row per data record.
func (t *Table) Rows() []column.Row {
	rows := make([]column.Row, len(t.Records))
	for i, cells := range t.Records {
		rows[i] = t.Header.Row(i, cells)
	}

	return rows
}
