package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered application user.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	Name         string
	PhotoURL     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the user representation safe to return to clients.
type PublicUser struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Name     string    `json:"name"`
	PhotoURL string    `json:"photoUrl"`
}

// Public strips credentials from the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		PhotoURL: u.PhotoURL,
	}
}
