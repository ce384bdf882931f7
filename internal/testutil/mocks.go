package testutil

import (
	"vocabprep/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockLineSource is a mock for service.LineSource
type MockLineSource struct {
	mock.Mock
}

func (m *MockLineSource) Lines(path string) ([]string, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockVocabRepository is a mock for VocabRepository
type MockVocabRepository struct {
	mock.Mock
}

func (m *MockVocabRepository) ReplaceAll(records []domain.VocabRecord) error {
	args := m.Called(records)
	return args.Error(0)
}

func (m *MockVocabRepository) List() ([]domain.VocabRecord, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VocabRecord), args.Error(1)
}

func (m *MockVocabRepository) Count() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *MockVocabRepository) CountMissingExamples() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}
