package service

import (
	"ersbot/internal/repository"

	"go.uber.org/zap"
)

// DefaultRetentionDays is how long signup attempts are kept
const DefaultRetentionDays = 60

// RetentionService removes old audit data
type RetentionService struct {
	attemptRepo   repository.AttemptRepository
	retentionDays int
	logger        *zap.Logger
}

// NewRetentionService creates a new retention service
func NewRetentionService(attemptRepo repository.AttemptRepository, retentionDays int, logger *zap.Logger) *RetentionService {
	if retentionDays <= 0 {
		retentionDays = DefaultRetentionDays
	}
	return &RetentionService{
		attemptRepo:   attemptRepo,
		retentionDays: retentionDays,
		logger:        logger,
	}
}

// CleanupOldData removes signup attempts older than the retention period
func (s *RetentionService) CleanupOldData() error {
	s.logger.Info("Starting cleanup of old signup attempts", zap.Int("retention_days", s.retentionDays))

	err := s.attemptRepo.CleanOldAttempts(s.retentionDays)
	if err != nil {
		s.logger.Error("Failed to cleanup old signup attempts", zap.Error(err))
		return err
	}

	s.logger.Info("Cleanup completed successfully")
	return nil
}
