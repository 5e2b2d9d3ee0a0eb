package models

import "time"

// Profile is the persisted user profile document, keyed by user id.
type Profile struct {
	UserID    string
	FirstName string
	LastName  string
	UpdatedAt time.Time
}

// ProfilePatch is a merge write: nil name fields are left untouched.
type ProfilePatch struct {
	FirstName *string
	LastName  *string
	UpdatedAt time.Time
}

// Apply merges the patch into p.
func (patch ProfilePatch) Apply(p *Profile) {
	if patch.FirstName != nil {
		p.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		p.LastName = *patch.LastName
	}
	p.UpdatedAt = patch.UpdatedAt
}
