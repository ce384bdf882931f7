// Package vocabfile reads and writes the canonical vocabulary data file:
// a UTF-8 JSON array of objects, indented with two spaces, with non-ASCII
// text stored literally.
package vocabfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"vocabprep/internal/domain"
)

// ReadRows loads the data file as ordered rows
func ReadRows(path string) ([]domain.Row, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingInput, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var rows []domain.Row
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("%w: %s is not a JSON array of objects: %v", domain.ErrInvalidInput, path, err)
	}
	return rows, nil
}

// Encode writes v in the canonical layout
func Encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Write replaces the file at path with v in the canonical layout.
// The data goes to a temporary file first and is renamed into place.
func Write(path string, v any) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := Encode(tmp, v); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
