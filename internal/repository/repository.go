package repository

import (
	"ersbot/internal/domain"
)

// UserRepository defines Telegram account operations
type UserRepository interface {
	EnsureUserExists(userID int64) error
	MarkRegistered(userID int64, username string, userType domain.Role) error
	GetUser(userID int64) (*domain.User, error)
}

// AttemptRepository defines signup audit log operations
type AttemptRepository interface {
	SaveAttempt(attempt *domain.Attempt) error
	CleanOldAttempts(days int) error
}
