package repository

import "vocabprep/internal/domain"

// VocabRepository defines vocabulary store operations
type VocabRepository interface {
	ReplaceAll(records []domain.VocabRecord) error
	List() ([]domain.VocabRecord, error)
	Count() (int, error)
	CountMissingExamples() (int, error)
}
