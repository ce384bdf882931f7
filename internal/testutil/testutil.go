package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"vocabprep/internal/domain"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestRecord creates a test record without examples
func NewTestRecord(id, kanji, kana, meaningZh string) domain.VocabRecord {
	return domain.VocabRecord{
		ID:        id,
		Kanji:     kanji,
		Kana:      kana,
		MeaningZh: meaningZh,
	}
}

// NewTestRow parses a JSON object into a row
func NewTestRow(t *testing.T, object string) domain.Row {
	t.Helper()
	var row domain.Row
	require.NoError(t, json.Unmarshal([]byte(object), &row))
	return row
}

// WriteFile writes content to name inside a fresh temp dir and returns the path
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// ReadFile returns the contents of path
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
