package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"vocabprep/internal/domain"
	"vocabprep/internal/vocabfile"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ideographicSpace is the full-width space common in Japanese spreadsheets
const ideographicSpace = "\u3000"

// CleanService normalizes a CSV word list into ordered rows
type CleanService struct {
	logger *zap.Logger
}

// NewCleanService creates a new clean service
func NewCleanService(logger *zap.Logger) *CleanService {
	return &CleanService{logger: logger}
}

// NormalizeText treats the ideographic space as ordinary whitespace,
// trims the value and collapses inner whitespace runs to one space.
func NormalizeText(value string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(value, ideographicSpace, " ")), " ")
}

type column struct {
	name  string
	index int
}

// readColumns maps the header row to output columns.
// Blank names are ignored; a repeated name keeps its first position and reads the last column.
func readColumns(header []string) []column {
	var columns []column
	positions := make(map[string]int, len(header))
	for idx, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if pos, ok := positions[name]; ok {
			columns[pos].index = idx
			continue
		}
		positions[name] = len(columns)
		columns = append(columns, column{name: name, index: idx})
	}
	return columns
}

// Clean reads a CSV table with a header row and returns the non-blank rows
func (s *CleanService) Clean(r io.Reader) ([]domain.Row, error) {
	// Strip a UTF-8 byte order mark if the file has one.
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	reader := csv.NewReader(decoded)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: CSV header is empty", domain.ErrInvalidInput)
	}
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}

	columns := readColumns(header)
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: CSV header has no column names", domain.ErrInvalidInput)
	}

	rows := make([]domain.Row, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read CSV row: %w", err)
		}

		row := domain.NewRow()
		blank := true
		for _, col := range columns {
			value := ""
			if col.index < len(record) {
				value = NormalizeText(record[col.index])
			}
			if value != "" {
				blank = false
			}
			row.SetString(col.name, value)
		}

		if blank {
			line, _ := reader.FieldPos(0)
			s.logger.Debug("Skipping blank row", zap.Int("line", line))
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// CleanFile cleans the CSV file at path
func (s *CleanService) CleanFile(path string) ([]domain.Row, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingInput, path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return s.Clean(f)
}

// Run cleans csvPath and writes the rows to outPath
func (s *CleanService) Run(csvPath, outPath string) (int, error) {
	rows, err := s.CleanFile(csvPath)
	if err != nil {
		return 0, err
	}

	if err := vocabfile.Write(outPath, rows); err != nil {
		return 0, fmt.Errorf("write rows: %w", err)
	}

	s.logger.Info("Cleaning completed",
		zap.String("input", csvPath),
		zap.String("output", outPath),
		zap.Int("rows", len(rows)),
	)
	return len(rows), nil
}
