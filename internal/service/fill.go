package service

import (
	"fmt"
	"strings"

	"vocabprep/internal/domain"
	"vocabprep/internal/vocabfile"

	"go.uber.org/zap"
)

const (
	exampleJaTemplate = "%sは日常生活でよく使われる表現です。"
	exampleZhTemplate = "「%s」是日常生活中经常使用的表达，意思是「%s」。"
)

// FillService adds templated example sentences to records that have none
type FillService struct {
	logger *zap.Logger
}

// NewFillService creates a new fill service
func NewFillService(logger *zap.Logger) *FillService {
	return &FillService{logger: logger}
}

// SynthesizeExamples builds the example pair for a headword and its gloss
func SynthesizeExamples(kanji, meaningZh string) (exampleJa, exampleZh string) {
	return fmt.Sprintf(exampleJaTemplate, kanji), fmt.Sprintf(exampleZhTemplate, kanji, meaningZh)
}

// Fill updates rows in place and returns how many were changed.
// Rows with any example, or without kanji or meaningZh, are left alone.
func (s *FillService) Fill(rows []domain.Row) int {
	updated := 0
	for i := range rows {
		row := &rows[i]

		exampleJa := strings.TrimSpace(row.String(domain.KeyExampleJa))
		exampleZh := strings.TrimSpace(row.String(domain.KeyExampleZh))
		if exampleJa != "" || exampleZh != "" {
			continue
		}

		kanji := strings.TrimSpace(row.String(domain.KeyKanji))
		meaningZh := strings.TrimSpace(row.String(domain.KeyMeaningZh))
		if kanji == "" || meaningZh == "" {
			s.logger.Debug("Skipping record without kanji or meaning", zap.Int("index", i))
			continue
		}

		ja, zh := SynthesizeExamples(kanji, meaningZh)
		row.SetString(domain.KeyExampleJa, ja)
		row.SetString(domain.KeyExampleZh, zh)
		updated++
	}
	return updated
}

// Run fills the data file at path and writes it back in place
func (s *FillService) Run(path string) (int, error) {
	rows, err := vocabfile.ReadRows(path)
	if err != nil {
		return 0, err
	}

	updated := s.Fill(rows)

	if err := vocabfile.Write(path, rows); err != nil {
		return 0, fmt.Errorf("write rows: %w", err)
	}

	s.logger.Info("Example filling completed",
		zap.String("path", path),
		zap.Int("records", len(rows)),
		zap.Int("updated", updated),
	)
	return updated, nil
}
