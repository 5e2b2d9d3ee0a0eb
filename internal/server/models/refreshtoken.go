package models

import "time"

// RefreshToken is a server-stored, single-use session token. AuthTime is
// the moment the session last proved knowledge of the password; it is
// carried over when the token is rotated.
type RefreshToken struct {
	Token    string
	UserID   string
	Expires  time.Time
	AuthTime time.Time
}
