package postgres

import (
	"database/sql"

	"ersbot/internal/domain"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// EnsureUserExists creates user if not exists
func (r *UserRepo) EnsureUserExists(userID int64) error {
	query := `
		INSERT INTO users (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := r.db.Exec(query, userID)
	return err
}

// MarkRegistered links the account created on the platform to the Telegram user
func (r *UserRepo) MarkRegistered(userID int64, username string, userType domain.Role) error {
	query := `
		INSERT INTO users (user_id, registered_username, user_type, registered_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET registered_username = $2, user_type = $3, registered_at = NOW()
	`
	_, err := r.db.Exec(query, userID, username, string(userType))
	return err
}

// GetUser returns the user or nil when the user is unknown
func (r *UserRepo) GetUser(userID int64) (*domain.User, error) {
	var (
		u            domain.User
		username     sql.NullString
		userType     sql.NullString
		registeredAt sql.NullTime
	)
	query := `
		SELECT user_id, registered_username, user_type, registered_at, created_at
		FROM users
		WHERE user_id = $1
	`
	err := r.db.QueryRow(query, userID).Scan(
		&u.UserID, &username, &userType, &registeredAt, &u.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	u.RegisteredUsername = username.String
	u.UserType = domain.Role(userType.String)
	if registeredAt.Valid {
		u.RegisteredAt = &registeredAt.Time
	}

	return &u, nil
}
