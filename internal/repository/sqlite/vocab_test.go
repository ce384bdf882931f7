package sqlite

import (
	"fmt"
	"testing"

	"vocabprep/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var vocabColumns = []string{"id", "kanji", "kana", "meaning_zh", "example_ja", "example_zh"}

func TestVocabRepo_ReplaceAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewVocabRepo(db)

	records := []domain.VocabRecord{
		{ID: "v1", Kanji: "経験", Kana: "けいけん", MeaningZh: "经验"},
		{ID: "v2", Kanji: "残念", Kana: "ざんねん", MeaningZh: "遗憾，可惜", ExampleJa: "残念です。"},
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM vocab_items").WillReturnResult(sqlmock.NewResult(0, 5))
	prep := mock.ExpectPrepare("INSERT INTO vocab_items")
	prep.ExpectExec().
		WithArgs("v1", 1, "経験", "けいけん", "经验", "", "").
		WillReturnResult(sqlmock.NewResult(1, 1))
	prep.ExpectExec().
		WithArgs("v2", 2, "残念", "ざんねん", "遗憾，可惜", "残念です。", "").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	err = repo.ReplaceAll(records)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVocabRepo_ReplaceAll_RollsBackOnInsertError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewVocabRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM vocab_items").WillReturnResult(sqlmock.NewResult(0, 0))
	prep := mock.ExpectPrepare("INSERT INTO vocab_items")
	prep.ExpectExec().
		WithArgs("v1", 1, "経験", "", "", "", "").
		WillReturnError(fmt.Errorf("disk full"))
	mock.ExpectRollback()

	err = repo.ReplaceAll([]domain.VocabRecord{{ID: "v1", Kanji: "経験"}})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "v1")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVocabRepo_ReplaceAll_BeginError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewVocabRepo(db)

	mock.ExpectBegin().WillReturnError(fmt.Errorf("locked"))

	err = repo.ReplaceAll(nil)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVocabRepo_List(t *testing.T) {
	tests := []struct {
		name          string
		mockRows      *sqlmock.Rows
		mockError     error
		expectedCount int
		expectedError bool
	}{
		{
			name: "records found",
			mockRows: sqlmock.NewRows(vocabColumns).
				AddRow("v1", "経験", "けいけん", "经验", "", "").
				AddRow("v2", "残念", "ざんねん", "遗憾，可惜", "", ""),
			expectedCount: 2,
		},
		{
			name:          "empty store",
			mockRows:      sqlmock.NewRows(vocabColumns),
			expectedCount: 0,
		},
		{
			name:          "database error",
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewVocabRepo(db)

			query := "SELECT id, kanji, kana, meaning_zh, example_ja, example_zh FROM vocab_items ORDER BY position"
			if tt.mockError != nil {
				mock.ExpectQuery(query).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WillReturnRows(tt.mockRows)
			}

			records, err := repo.List()

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, records, tt.expectedCount)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestVocabRepo_Count(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewVocabRepo(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM vocab_items").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	count, err := repo.Count()

	assert.NoError(t, err)
	assert.Equal(t, 42, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVocabRepo_CountMissingExamples(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewVocabRepo(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM vocab_items WHERE TRIM\\(example_ja\\) = '' AND TRIM\\(example_zh\\) = ''").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.CountMissingExamples()

	assert.NoError(t, err)
	assert.Equal(t, 7, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
