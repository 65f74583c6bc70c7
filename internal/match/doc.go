// Package match provides header name normalisation and edit-distance ranking,
// used to point out columns whose names look like a misspelt directory field.
package match
