// Package assemble builds one dataset document per input row.
//
// Assembly runs in a fixed order:
//  1. Resolve or synthesize system identifiers and the version envelope
//  2. Decode every recognised column into the citation block, in column order
//  3. Attach the geospatial and social-science blocks when their columns exist
//  4. Attach the raw file list and the free-text citation
//  5. Backfill author, contact and description so every document carries them
//
// Problems confined to one row (a malformed files cell, a non-numeric id)
// never fail assembly; they are reported as diagnostics and the affected
// value falls back to its default.
package assemble
