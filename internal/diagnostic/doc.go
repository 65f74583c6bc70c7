// Package diagnostic provides structured warnings and infos collected while
// converting a table of dataset records.
//
// Key capabilities:
//   - Row-level recoverable problems (malformed files JSON, bad integers)
//   - Run-level hints (unrecognised columns, duplicate field columns)
//   - Fatal configuration errors folded into a single error value
package diagnostic
