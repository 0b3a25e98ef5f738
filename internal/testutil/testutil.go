package testutil

import (
	"time"

	"ersbot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user, registered when userType is set
func NewTestUser(userID int64, username string, userType domain.Role) *domain.User {
	u := &domain.User{
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	if userType != "" {
		registeredAt := time.Now()
		u.RegisteredUsername = username
		u.UserType = userType
		u.RegisteredAt = &registeredAt
	}
	return u
}

// NewTestForm creates a filled form with matching passwords
func NewTestForm(userType domain.Role, password string) domain.Form {
	return domain.Form{
		UserType:        userType,
		Email:           "alice@example.com",
		Username:        "alice",
		Password:        password,
		ConfirmPassword: password,
	}
}
