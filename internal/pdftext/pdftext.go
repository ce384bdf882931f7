// Package pdftext turns the text layer of a PDF into visual lines.
package pdftext

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"sort"
	"strings"

	"vocabprep/internal/domain"

	"github.com/ledongthuc/pdf"
)

const (
	// gapRatio is the horizontal gap, as a fraction of the font size, above
	// which two glyphs on the same row are treated as separate words.
	gapRatio = 0.25

	// rowTolerance is the baseline distance, as a fraction of the font size,
	// within which glyphs belong to the same row.
	rowTolerance = 0.5
)

// Reader reads lines from PDF files on disk
type Reader struct{}

// NewReader creates a new PDF line reader
func NewReader() *Reader {
	return &Reader{}
}

// Lines returns the trimmed, non-blank text lines of every page in document order
func (r *Reader) Lines(path string) ([]string, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingInput, path)
	}

	f, doc, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	for i := 1; i <= doc.NumPage(); i++ {
		page := doc.Page(i)
		if page.V.IsNull() {
			continue
		}

		texts, err := pageText(page)
		if err != nil {
			return nil, fmt.Errorf("read text of page %d: %w", i, err)
		}

		for _, row := range GroupRows(texts) {
			for _, line := range strings.Split(JoinRow(row), "\n") {
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				lines = append(lines, line)
			}
		}
	}

	return lines, nil
}

// pageText interprets the page content stream. The pdf package reports
// malformed streams by panicking.
func pageText(page pdf.Page) (texts []pdf.Text, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed content stream: %v", r)
		}
	}()
	return page.Content().Text, nil
}

// GroupRows buckets glyphs that share a baseline and returns the rows top to
// bottom. Glyphs keep their content-stream order inside a row.
func GroupRows(texts []pdf.Text) [][]pdf.Text {
	type row struct {
		y     float64
		texts []pdf.Text
	}

	var rows []*row
	for _, t := range texts {
		if t.S == "" {
			continue
		}
		tolerance := t.FontSize * rowTolerance
		if tolerance <= 0 {
			tolerance = 1
		}

		var match *row
		for _, r := range rows {
			if math.Abs(r.y-t.Y) <= tolerance {
				match = r
				break
			}
		}
		if match == nil {
			match = &row{y: t.Y}
			rows = append(rows, match)
		}
		match.texts = append(match.texts, t)
	}

	// PDF y grows upwards
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].y > rows[j].y })

	out := make([][]pdf.Text, len(rows))
	for i, r := range rows {
		out[i] = r.texts
	}
	return out
}

// JoinRow concatenates the glyphs of one row left to right, inserting a
// space wherever the gap between glyphs is wider than a fraction of the font size.
func JoinRow(texts []pdf.Text) string {
	if len(texts) == 0 {
		return ""
	}

	sorted := make([]pdf.Text, len(texts))
	copy(sorted, texts)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	var b strings.Builder
	prevEnd := sorted[0].X
	for i, t := range sorted {
		if i > 0 && !endsWithSpace(b.String()) && !strings.HasPrefix(t.S, " ") {
			size := t.FontSize
			if size <= 0 {
				size = 1
			}
			if t.X-prevEnd > size*gapRatio {
				b.WriteByte(' ')
			}
		}
		b.WriteString(t.S)
		prevEnd = t.X + t.W
	}
	return b.String()
}

func endsWithSpace(s string) bool {
	return strings.HasSuffix(s, " ")
}
