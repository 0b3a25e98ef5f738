package postgres

import (
	"database/sql"

	"ersbot/internal/domain"
)

// AttemptRepo implements repository.AttemptRepository
type AttemptRepo struct {
	db *sql.DB
}

// NewAttemptRepo creates a new attempt repository
func NewAttemptRepo(db *sql.DB) *AttemptRepo {
	return &AttemptRepo{db: db}
}

// SaveAttempt stores one signup submission
func (r *AttemptRepo) SaveAttempt(a *domain.Attempt) error {
	query := `
		INSERT INTO signup_attempts (id, user_id, username, email, user_type, outcome, message, status_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	statusCode := sql.NullInt64{Int64: int64(a.StatusCode), Valid: a.StatusCode != 0}
	_, err := r.db.Exec(query,
		a.ID, a.UserID, a.Username, a.Email, string(a.UserType), string(a.Kind), a.Message, statusCode,
	)
	return err
}

// CleanOldAttempts deletes attempts older than the specified number of days
func (r *AttemptRepo) CleanOldAttempts(days int) error {
	query := `
		DELETE FROM signup_attempts
		WHERE created_at < NOW() - INTERVAL '1 day' * $1
	`
	_, err := r.db.Exec(query, days)
	return err
}
