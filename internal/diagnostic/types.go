package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/common"
)

// Codes used across the converter.
const (
	CodeFilesJSONInvalid = "files_json_invalid"
	CodeIntegerInvalid   = "integer_invalid"
	CodeBoolInvalid      = "bool_invalid"
	CodeUnknownColumn    = "unknown_column"
	CodeDuplicateField   = "duplicate_field"
	CodeFieldNameEmpty   = "field_name_empty"
	CodeTypeClassInvalid = "type_class_invalid"
	CodeSubfieldsIgnored = "subfields_ignored"
	CodeNoSubfields      = "compound_without_subfields"
	CodeDuplicateDef     = "duplicate_field_definition"
)

// Diagnostics holds all diagnostic information from a conversion run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Row is the 1-based data row this relates to, or 0 for run-level messages.
	Row int
	// Column is the header this relates to (if any).
	Column string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message string, row int, column string) {
	d.Errors = append(d.Errors, newDiagnostic(SeverityError, code, message, row, column))
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message string, row int, column string) {
	d.Warnings = append(d.Warnings, newDiagnostic(SeverityWarning, code, message, row, column))
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message string, row int, column string) {
	d.Infos = append(d.Infos, newDiagnostic(SeverityInfo, code, message, row, column))
}

func newDiagnostic(sev Severity, code, message string, row int, column string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  message,
		Row:      row,
		Column:   column,
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Len returns the number of diagnostics of every severity.
func (d *Diagnostics) Len() int {
	return len(d.Errors) + len(d.Warnings) + len(d.Infos)
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// All returns errors, then warnings, then infos.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, d.Len())
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// WithCode returns every diagnostic carrying the given code.
func (d *Diagnostics) WithCode(code string) []Diagnostic {
	var out []Diagnostic

	for _, diag := range d.All() {
		if diag.Code == code {
			out = append(out, diag)
		}
	}

	return out
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Row > 0 {
		prefix = append(prefix, fmt.Sprintf("row %d", d.Row))
	}

	if d.Column != "" {
		prefix = append(prefix, fmt.Sprintf("column %q", d.Column))
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
