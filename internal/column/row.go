package column

import (
	"strings"
)

// missingSentinels are cell texts that mean "no value", the way spreadsheet
// and dataframe exports write them.
var missingSentinels = map[string]bool{
	"nan":  true,
	"na":   true,
	"n/a":  true,
	"#n/a": true,
	"null": true,
	"none": true,
	"<na>": true,
}

// IsMissing reports whether a trimmed cell text stands for an absent value.
func IsMissing(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || missingSentinels[strings.ToLower(s)]
}

// Header is the resolved header row of a table.
type Header struct {
	bindings []Binding
	byHeader map[string]int
	byName   map[string]int
}

// NewHeader binds the raw header cells. When several columns share a header
// or base name, lookups by that name see the first one.
func NewHeader(headers []string) *Header {
	h := &Header{
		bindings: Bind(headers),
		byHeader: make(map[string]int, len(headers)),
		byName:   make(map[string]int, len(headers)),
	}

	for _, b := range h.bindings {
		if _, ok := h.byHeader[b.Header]; !ok {
			h.byHeader[b.Header] = b.Index
		}

		if _, ok := h.byName[b.Name]; !ok {
			h.byName[b.Name] = b.Index
		}
	}

	return h
}

// Bindings returns the column bindings in table order.
func (h *Header) Bindings() []Binding {
	return h.bindings
}

// Len returns the number of columns.
func (h *Header) Len() int {
	return len(h.bindings)
}

// Index returns the position of a column, matched first by exact header and
// then by resolved base name.
func (h *Header) Index(column string) (int, bool) {
	if i, ok := h.byHeader[column]; ok {
		return i, true
	}

	i, ok := h.byName[column]

	return i, ok
}

// Has reports whether the table has the column, whatever its values.
func (h *Header) Has(column string) bool {
	_, ok := h.Index(column)
	return ok
}

// Row creates the row accessor for one data record. index is zero-based.
func (h *Header) Row(index int, cells []string) Row {
	return Row{header: h, index: index, cells: cells}
}

// Row is one data record bound to its table header.
type Row struct {
	header *Header
	index  int
	cells  []string
}

// Index returns the zero-based position of the row among data rows.
func (r Row) Index() int {
	return r.index
}

// Number returns the 1-based row number used in messages.
func (r Row) Number() int {
	return r.index + 1
}

// Header returns the table header the row is bound to.
func (r Row) Header() *Header {
	return r.header
}

// Has reports whether the table has the column, even if this row leaves it empty.
func (r Row) Has(column string) bool {
	return r.header != nil && r.header.Has(column)
}

// Get returns the trimmed value of a column, or false when the column is
// absent, the row is short, or the cell is empty or a missing-value sentinel.
func (r Row) Get(column string) (string, bool) {
	if r.header == nil {
		return "", false
	}

	i, ok := r.header.Index(column)
	if !ok {
		return "", false
	}

	return r.cell(i)
}

// Value returns the trimmed cell bound to b, with the same rules as Get.
func (r Row) Value(b Binding) (string, bool) {
	return r.cell(b.Index)
}

// GetOr returns the column value or def when absent.
func (r Row) GetOr(column, def string) string {
	if v, ok := r.Get(column); ok {
		return v
	}

	return def
}

func (r Row) cell(i int) (string, bool) {
	if i < 0 || i >= len(r.cells) {
		return "", false
	}

	v := strings.TrimSpace(r.cells[i])
	if IsMissing(v) {
		return "", false
	}

	return v, true
}

// NewRow builds a standalone row from column/value pairs, in order.
// It is a convenience for callers that have no table.
func NewRow(index int, pairs ...string) Row {
	headers := make([]string, 0, len(pairs)/2)
	cells := make([]string, 0, len(pairs)/2)

	for i := 0; i+1 < len(pairs); i += 2 {
		headers = append(headers, pairs[i])
		cells = append(cells, pairs[i+1])
	}

	return NewHeader(headers).Row(index, cells)
}
