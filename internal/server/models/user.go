package models

import "time"

// User is an account known to the identity service.
type User struct {
	ID                string
	Email             string
	PasswordHash      string
	PasswordUpdatedAt time.Time
	CreatedAt         time.Time
}

// Identity is the signed-in user as seen by clients: the account plus the
// profile-name claims.
type Identity struct {
	UserID    string
	Email     string
	FirstName string
	LastName  string
}
