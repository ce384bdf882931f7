package service

import (
	"fmt"
	"strings"

	"vocabprep/internal/domain"
	"vocabprep/internal/vocabfile"

	"go.uber.org/zap"
)

// minLineTokens is the token count below which a PDF line is treated as noise
const minLineTokens = 3

// LineSource yields the visual text lines of a document
type LineSource interface {
	Lines(path string) ([]string, error)
}

// ExtractService builds vocabulary records from a PDF word list
type ExtractService struct {
	source LineSource
	logger *zap.Logger
}

// NewExtractService creates a new extract service
func NewExtractService(source LineSource, logger *zap.Logger) *ExtractService {
	return &ExtractService{
		source: source,
		logger: logger,
	}
}

// ParseLine turns one "kanji kana meaning..." line into a record.
// seq is the 1-based position of the line among all non-blank lines.
func ParseLine(seq int, line string) (domain.VocabRecord, bool) {
	parts := strings.Fields(line)
	if len(parts) < minLineTokens {
		return domain.VocabRecord{}, false
	}

	return domain.VocabRecord{
		ID:        fmt.Sprintf("v%d", seq),
		Kanji:     parts[0],
		Kana:      parts[1],
		MeaningZh: strings.Join(parts[2:], " "),
	}, true
}

// Extract reads the document at path and returns its records in line order
func (s *ExtractService) Extract(path string) ([]domain.VocabRecord, error) {
	lines, err := s.source.Lines(path)
	if err != nil {
		return nil, err
	}

	records := make([]domain.VocabRecord, 0, len(lines))
	seq := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		seq++

		record, ok := ParseLine(seq, line)
		if !ok {
			s.logger.Debug("Skipping short line", zap.Int("line", seq), zap.String("text", line))
			continue
		}
		records = append(records, record)
	}

	return records, nil
}

// Run extracts records from pdfPath and writes them to outPath
func (s *ExtractService) Run(pdfPath, outPath string) (int, error) {
	records, err := s.Extract(pdfPath)
	if err != nil {
		return 0, err
	}

	if err := vocabfile.Write(outPath, records); err != nil {
		return 0, fmt.Errorf("write records: %w", err)
	}

	s.logger.Info("Extraction completed",
		zap.String("input", pdfPath),
		zap.String("output", outPath),
		zap.Int("records", len(records)),
	)
	return len(records), nil
}
