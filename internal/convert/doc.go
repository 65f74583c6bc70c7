// Package convert drives a whole conversion run.
//
// A run:
//   - Reads the delimited input into memory, header first
//   - Binds header cells to field names once
//   - Assembles one dataset document per data row, in input order
//   - Writes a lone object for a single row, otherwise an array
//
// Only file-level failures (unreadable or unparseable input, unwritable
// output) are returned as errors. Row-level problems are collected as
// diagnostics and logged.
package convert
