package pdftext

import (
	"os"
	"path/filepath"
	"testing"

	"vocabprep/internal/domain"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wordListPDF = "testdata/wordlist.pdf"

func glyphs(x float64, size float64, s string) []pdf.Text {
	var out []pdf.Text
	for _, r := range s {
		out = append(out, pdf.Text{X: x, W: size, FontSize: size, S: string(r)})
		x += size
	}
	return out
}

func TestJoinRow(t *testing.T) {
	tests := []struct {
		name     string
		texts    []pdf.Text
		expected string
	}{
		{
			name:     "empty row",
			texts:    nil,
			expected: "",
		},
		{
			name:     "adjacent glyphs form one word",
			texts:    glyphs(10, 10, "食べる"),
			expected: "食べる",
		},
		{
			name: "wide gap separates words",
			texts: append(append(
				glyphs(10, 10, "食べる"),
				glyphs(60, 10, "たべる")...),
				glyphs(110, 10, "吃、喝")...),
			expected: "食べる たべる 吃、喝",
		},
		{
			name: "runs are ordered by x position",
			texts: append(
				glyphs(60, 10, "たべる"),
				glyphs(10, 10, "食べる")...),
			expected: "食べる たべる",
		},
		{
			name: "small kerning gap stays joined",
			texts: []pdf.Text{
				{X: 0, W: 10, FontSize: 10, S: "経"},
				{X: 11, W: 10, FontSize: 10, S: "験"},
			},
			expected: "経験",
		},
		{
			name: "explicit space in run is kept",
			texts: []pdf.Text{
				{X: 0, W: 30, FontSize: 10, S: "a b"},
			},
			expected: "a b",
		},
		{
			name: "space glyph followed by word spacing is not doubled",
			texts: []pdf.Text{
				{X: 0, W: 6, FontSize: 12, S: "a"},
				{X: 6, W: 3, FontSize: 12, S: " "},
				{X: 20, W: 6, FontSize: 12, S: "b"},
			},
			expected: "a b",
		},
		{
			name: "glyphs without width keep stream order",
			texts: []pdf.Text{
				{X: 72, FontSize: 12, S: "N"},
				{X: 72, FontSize: 12, S: "3"},
				{X: 72, FontSize: 12, S: " "},
				{X: 72, FontSize: 12, S: "x"},
			},
			expected: "N3 x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, JoinRow(tt.texts))
		})
	}
}

func TestReader_LinesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.pdf")

	lines, err := NewReader().Lines(path)
	assert.ErrorIs(t, err, domain.ErrMissingInput)
	assert.Contains(t, err.Error(), path)
	assert.Nil(t, lines)
}

func TestReader_LinesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf"), 0o644))

	lines, err := NewReader().Lines(path)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrMissingInput)
	assert.Nil(t, lines)
}

func TestGroupRows(t *testing.T) {
	texts := []pdf.Text{
		{X: 10, Y: 700, W: 10, FontSize: 12, S: "b"},
		{X: 0, Y: 720, W: 20, FontSize: 12, S: "a"},
		{X: 0, Y: 699, W: 10, FontSize: 12, S: "c"},
		{X: 0, Y: 680, W: 10, FontSize: 12, S: ""},
		{X: 20, Y: 720.5, W: 10, FontSize: 12, S: "d"},
	}

	rows := GroupRows(texts)

	require.Len(t, rows, 2)
	assert.Equal(t, "ad", JoinRow(rows[0]))
	assert.Equal(t, "cb", JoinRow(rows[1]))
}

func TestReader_Lines(t *testing.T) {
	lines, err := NewReader().Lines(wordListPDF)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"taberu tabe eat drink",
		"N3 list",
		"keiken keiken experience",
	}, lines)
}
