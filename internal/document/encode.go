package document

import (
	"bytes"
	"encoding/json"
	"io"
)

const indent = "  "

// Encode writes v as indented JSON. Non-ASCII text and HTML characters are
// written literally rather than escaped.
func Encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)

	return enc.Encode(v)
}

// marshal encodes a single value compactly without HTML escaping.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
