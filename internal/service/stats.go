package service

import (
	"vocabprep/internal/repository"

	"go.uber.org/zap"
)

// Stats summarizes the contents of the vocabulary store
type Stats struct {
	Total           int
	MissingExamples int
}

// StatsService reports on the vocabulary store
type StatsService struct {
	vocabRepo repository.VocabRepository
	logger    *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(vocabRepo repository.VocabRepository, logger *zap.Logger) *StatsService {
	return &StatsService{
		vocabRepo: vocabRepo,
		logger:    logger,
	}
}

// Report counts stored records and those still lacking examples
func (s *StatsService) Report() (Stats, error) {
	total, err := s.vocabRepo.Count()
	if err != nil {
		s.logger.Error("Failed to count records", zap.Error(err))
		return Stats{}, err
	}

	missing, err := s.vocabRepo.CountMissingExamples()
	if err != nil {
		s.logger.Error("Failed to count records without examples", zap.Error(err))
		return Stats{}, err
	}

	s.logger.Info("Store statistics",
		zap.Int("total", total),
		zap.Int("missing_examples", missing),
	)
	return Stats{Total: total, MissingExamples: missing}, nil
}
