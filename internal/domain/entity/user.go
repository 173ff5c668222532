// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that owns devices and access tokens.
type User struct {
	ID           uuid.UUID // Server-assigned identifier (UUIDv7).
	Name         string    // Display name.
	Email        string    // Login identifier, unique across all users.
	PasswordHash string    // bcrypt hash. Never leaves the service.
	CreatedAt    time.Time // Timestamp of registration.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// PublicUser is the view of a User that may be sent to clients.
type PublicUser struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Public strips credentials from the user.
func (u *User) Public() *PublicUser {
	if u == nil {
		return nil
	}

	return &PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
