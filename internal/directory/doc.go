// Package directory holds the field directory of the citation metadata block:
// for every recognised field name, its cardinality and type class, and for
// compound fields the ordered list of subfield names used for positional
// decoding.
//
// The built-in table mirrors the repository's citation block. Sites can extend
// it with a YAML overlay file:
//
//	version: "1"
//	fields:
//	  - name: keyword
//	    multiple: true
//	    typeClass: compound
//	    subfields: [keywordValue, keywordTermURI, keywordVocabulary]
//	  - name: originOfSources
//	    typeClass: primitive
//
// An overlay entry with the name of an existing field replaces it; a new name
// adds a field. Unknown names in the input table are never an error: the
// column is simply not mapped.
package directory
