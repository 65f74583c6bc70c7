// Package decode turns delimiter-encoded cell text into field values.
//
// Cell conventions:
//   - "|" separates repeated values, or repeated compound entries
//   - ";" separates positional subfields inside one compound entry
//   - whitespace around every token is trimmed and empty tokens are dropped
//   - a subfield reading "nan" (any case) is treated as absent
//
// Compound decoding is positional: the n-th part of an entry is stored under
// the n-th subfield name. Extra parts are discarded and missing trailing parts
// leave their subfields absent. ParseCompoundStrict reports such mismatches
// instead of absorbing them.
package decode
