package domain

import "time"

// User represents a Telegram account known to the bot
type User struct {
	UserID             int64
	RegisteredUsername string
	UserType           Role
	RegisteredAt       *time.Time
	CreatedAt          time.Time
}

// Registered reports whether a signup from this account succeeded
func (u User) Registered() bool {
	return u.RegisteredAt != nil
}

// Attempt is the audit record of one submit. Passwords are never stored.
type Attempt struct {
	ID         string
	UserID     int64
	Username   string
	Email      string
	UserType   Role
	Kind       OutcomeKind
	Message    string
	StatusCode int
	CreatedAt  time.Time
}
