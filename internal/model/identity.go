package model

import "github.com/google/uuid"

// Identity is the caller derived from a verified token. It is a snapshot taken
// at issue time and is not re-read from the user store until the token expires.
type Identity struct {
	UserID   uuid.UUID `json:"userId"`
	Email    string    `json:"email"`
	Username string    `json:"username"`
}

func (u *User) Identity() Identity {
	return Identity{
		UserID:   u.ID,
		Email:    u.Email,
		Username: u.Username,
	}
}
