// Package document models the dataset document produced for each input row:
// the system envelope, the dataset version with its license, and the metadata
// blocks holding typed fields.
//
// Field values take one of three shapes depending on the field's type class:
// a string, a list of strings, or a list of Entry values. An Entry keeps its
// subfields in insertion order so documents serialise deterministically.
package document
