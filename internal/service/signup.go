package service

import (
	"context"
	"errors"
	"time"
	"unicode/utf16"

	"ersbot/internal/client"
	"ersbot/internal/domain"
	"ersbot/internal/metrics"
	"ersbot/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MinPasswordLength is the shortest password accepted by the form
const MinPasswordLength = 8

// User-visible messages
const (
	MsgPasswordMismatch = "Passwords do not match"
	MsgPasswordTooShort = "Password must be at least 8 characters long"
	MsgSignupSucceeded  = "Registration successful! You can now log in."
	MsgSignupFailed     = "Registration failed. Please try again."
)

// ValidationError is a local check that failed before any request was sent
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// SignupClient sends registrations to the platform
type SignupClient interface {
	Signup(ctx context.Context, requestID string, payload domain.SignupRequest) (*client.Response, error)
}

// SignupService validates and submits signup forms
type SignupService struct {
	client   SignupClient
	attempts repository.AttemptRepository
	users    repository.UserRepository
	logger   *zap.Logger
	newID    func() string

	// recordAttempt counts a finished submission by role and outcome
	recordAttempt func(userType, outcome string)
}

// NewSignupService creates a new signup service
func NewSignupService(
	signupClient SignupClient,
	attempts repository.AttemptRepository,
	users repository.UserRepository,
	logger *zap.Logger,
) *SignupService {
	return &SignupService{
		client:   signupClient,
		attempts: attempts,
		users:    users,
		logger:   logger,
		newID:    func() string { return uuid.NewString() },

		recordAttempt: metrics.RecordAttempt,
	}
}

// Validate runs the local checks in order and stops at the first failure
func (s *SignupService) Validate(form domain.Form) error {
	if form.Password != form.ConfirmPassword {
		return &ValidationError{Message: MsgPasswordMismatch}
	}
	if passwordLength(form.Password) < MinPasswordLength {
		return &ValidationError{Message: MsgPasswordTooShort}
	}
	return nil
}

// passwordLength counts UTF-16 code units, so characters outside the
// Basic Multilingual Plane count twice, as they do in browser forms
func passwordLength(p string) int {
	return len(utf16.Encode([]rune(p)))
}

// Submit validates the form and, when it passes, posts it to the signup
// endpoint. Every failure is folded into the returned outcome.
func (s *SignupService) Submit(ctx context.Context, userID int64, form domain.Form) domain.Outcome {
	requestID := s.newID()

	if err := s.Validate(form); err != nil {
		outcome := domain.Outcome{
			Status:    domain.StatusFailed,
			Kind:      domain.OutcomeValidationError,
			Message:   err.Error(),
			RequestID: requestID,
		}
		s.record(userID, form, outcome)
		return outcome
	}

	start := time.Now()
	resp, err := s.client.Signup(ctx, requestID, form.Request())
	outcome := s.outcome(requestID, resp, err)
	metrics.ObserveRequest(string(outcome.Kind), time.Since(start))

	switch outcome.Kind {
	case domain.OutcomeSucceeded:
		s.logger.Info("Signup succeeded",
			zap.Int64("user_id", userID),
			zap.String("request_id", requestID),
			zap.String("user_type", string(form.UserType)),
		)
		if err := s.users.MarkRegistered(userID, form.Username, form.UserType); err != nil {
			s.logger.Error("Failed to mark user registered", zap.Error(err), zap.Int64("user_id", userID))
		}
	case domain.OutcomeServerError:
		s.logger.Warn("Signup rejected by server",
			zap.Int64("user_id", userID),
			zap.String("request_id", requestID),
			zap.Int("status", outcome.StatusCode),
			zap.String("message", outcome.Message),
		)
	default:
		s.logger.Error("Signup error",
			zap.Int64("user_id", userID),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
	}

	s.record(userID, form, outcome)
	return outcome
}

func (s *SignupService) outcome(requestID string, resp *client.Response, err error) domain.Outcome {
	if err == nil {
		return domain.Outcome{
			Status:     domain.StatusSucceeded,
			Kind:       domain.OutcomeSucceeded,
			Message:    MsgSignupSucceeded,
			StatusCode: resp.StatusCode,
			RequestID:  requestID,
		}
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return domain.Outcome{
			Status:     domain.StatusFailed,
			Kind:       domain.OutcomeServerError,
			Message:    apiErr.Message,
			StatusCode: apiErr.StatusCode,
			RequestID:  requestID,
		}
	}

	message := err.Error()
	if message == "" {
		message = MsgSignupFailed
	}
	return domain.Outcome{
		Status:    domain.StatusFailed,
		Kind:      domain.OutcomeTransportError,
		Message:   message,
		RequestID: requestID,
	}
}

func (s *SignupService) record(userID int64, form domain.Form, outcome domain.Outcome) {
	s.recordAttempt(string(form.UserType), string(outcome.Kind))

	attempt := &domain.Attempt{
		ID:         outcome.RequestID,
		UserID:     userID,
		Username:   form.Username,
		Email:      form.Email,
		UserType:   form.UserType,
		Kind:       outcome.Kind,
		Message:    outcome.Message,
		StatusCode: outcome.StatusCode,
	}
	if err := s.attempts.SaveAttempt(attempt); err != nil {
		s.logger.Error("Failed to save signup attempt",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("request_id", outcome.RequestID),
		)
	}
}
