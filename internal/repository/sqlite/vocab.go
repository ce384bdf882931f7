package sqlite

import (
	"database/sql"
	"fmt"

	"vocabprep/internal/domain"
)

// VocabRepo implements repository.VocabRepository
type VocabRepo struct {
	db *sql.DB
}

// NewVocabRepo creates a new vocabulary repository
func NewVocabRepo(db *sql.DB) *VocabRepo {
	return &VocabRepo{db: db}
}

// ReplaceAll swaps the stored records for the given ones in a single transaction.
// Positions follow slice order.
func (r *VocabRepo) ReplaceAll(records []domain.VocabRecord) (err error) {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.Exec(`DELETE FROM vocab_items`); err != nil {
		return fmt.Errorf("clear vocab_items: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO vocab_items (id, position, kanji, kana, meaning_zh, example_ja, example_zh)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, v := range records {
		if _, err = stmt.Exec(v.ID, i+1, v.Kanji, v.Kana, v.MeaningZh, v.ExampleJa, v.ExampleZh); err != nil {
			return fmt.Errorf("insert %s: %w", v.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// List returns all stored records in position order
func (r *VocabRepo) List() ([]domain.VocabRecord, error) {
	query := `
		SELECT id, kanji, kana, meaning_zh, example_ja, example_zh
		FROM vocab_items
		ORDER BY position
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.VocabRecord
	for rows.Next() {
		var v domain.VocabRecord
		if err := rows.Scan(&v.ID, &v.Kanji, &v.Kana, &v.MeaningZh, &v.ExampleJa, &v.ExampleZh); err != nil {
			return nil, err
		}
		records = append(records, v)
	}

	return records, rows.Err()
}

// Count returns the number of stored records
func (r *VocabRepo) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM vocab_items`).Scan(&count)
	return count, err
}

// CountMissingExamples returns the number of records with neither example sentence
func (r *VocabRepo) CountMissingExamples() (int, error) {
	query := `
		SELECT COUNT(*)
		FROM vocab_items
		WHERE TRIM(example_ja) = '' AND TRIM(example_zh) = ''
	`

	var count int
	err := r.db.QueryRow(query).Scan(&count)
	return count, err
}
