package testutil

import (
	"context"

	"ersbot/internal/client"
	"ersbot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) EnsureUserExists(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) MarkRegistered(userID int64, username string, userType domain.Role) error {
	args := m.Called(userID, username, userType)
	return args.Error(0)
}

func (m *MockUserRepository) GetUser(userID int64) (*domain.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockAttemptRepository is a mock for AttemptRepository
type MockAttemptRepository struct {
	mock.Mock
}

func (m *MockAttemptRepository) SaveAttempt(attempt *domain.Attempt) error {
	args := m.Called(attempt)
	return args.Error(0)
}

func (m *MockAttemptRepository) CleanOldAttempts(days int) error {
	args := m.Called(days)
	return args.Error(0)
}

// MockSignupClient is a mock for the signup endpoint client
type MockSignupClient struct {
	mock.Mock
}

func (m *MockSignupClient) Signup(ctx context.Context, requestID string, payload domain.SignupRequest) (*client.Response, error) {
	args := m.Called(ctx, requestID, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Response), args.Error(1)
}
