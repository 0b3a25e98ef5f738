package service

import (
	"ersbot/internal/domain"
	"ersbot/internal/repository"
)

// AccountService tracks Telegram users and their registrations
type AccountService struct {
	userRepo repository.UserRepository
}

// NewAccountService creates a new account service
func NewAccountService(userRepo repository.UserRepository) *AccountService {
	return &AccountService{userRepo: userRepo}
}

// EnsureUserExists creates user record if doesn't exist
func (s *AccountService) EnsureUserExists(userID int64) error {
	return s.userRepo.EnsureUserExists(userID)
}

// GetUser returns the stored user, nil if unknown
func (s *AccountService) GetUser(userID int64) (*domain.User, error) {
	return s.userRepo.GetUser(userID)
}
