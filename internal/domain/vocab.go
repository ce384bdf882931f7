package domain

import "strings"

// JSON keys of a vocabulary record in the canonical data file
const (
	KeyID        = "id"
	KeyKanji     = "kanji"
	KeyKana      = "kana"
	KeyMeaningZh = "meaningZh"
	KeyExampleJa = "exampleJa"
	KeyExampleZh = "exampleZh"
)

// VocabRecord is a single vocabulary entry
type VocabRecord struct {
	ID        string `json:"id"`
	Kanji     string `json:"kanji"`
	Kana      string `json:"kana"`
	MeaningZh string `json:"meaningZh"`
	ExampleJa string `json:"exampleJa"`
	ExampleZh string `json:"exampleZh"`
}

// HasExample reports whether either example sentence is present
func (v VocabRecord) HasExample() bool {
	return strings.TrimSpace(v.ExampleJa) != "" || strings.TrimSpace(v.ExampleZh) != ""
}

// RecordFromRow reads the vocabulary fields of a row, ignoring any other keys
func RecordFromRow(row Row) VocabRecord {
	return VocabRecord{
		ID:        strings.TrimSpace(row.String(KeyID)),
		Kanji:     row.String(KeyKanji),
		Kana:      row.String(KeyKana),
		MeaningZh: row.String(KeyMeaningZh),
		ExampleJa: row.String(KeyExampleJa),
		ExampleZh: row.String(KeyExampleZh),
	}
}
