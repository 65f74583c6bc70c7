package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/document"
)

const filePerm = 0o644

// Write serialises the result as indented UTF-8 JSON.
func Write(w io.Writer, res *Result) error {
	return document.Encode(w, res.Output())
}

// WriteFile writes the result to path. The output is staged in a temporary
// file next to path and renamed into place, so a failed run leaves any
// previous output untouched.
func WriteFile(path string, res *Result) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".csv2dataverse-*.json")
	if err != nil {
		return fmt.Errorf("creating temporary output: %w", err)
	}

	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = Write(tmp, res); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("encoding output: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing temporary output: %w", err)
	}

	if err = os.Chmod(tmp.Name(), filePerm); err != nil {
		return fmt.Errorf("setting output permissions: %w", err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

// ConvertFile converts the file at input and writes the JSON to output.
func ConvertFile(input, output string, opts Options) (*Result, error) {
	f, err := os.Open(input)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	res, err := Convert(f, opts)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", input, err)
	}

	if err := WriteFile(output, res); err != nil {
		return nil, err
	}

	logger := opts.logger()
	logger.Printf("converted %s to %s", input, output)
	logger.Printf("total rows processed: %d", len(res.Documents))

	return res, nil
}
