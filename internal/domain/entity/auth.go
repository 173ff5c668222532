package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultTokenName labels tokens created by register and login.
const DefaultTokenName = "auth-token"

// AccessToken is a stored bearer credential. Only the hash of the plaintext is kept.
type AccessToken struct {
	ID        uuid.UUID  // Identifier of this token record.
	UserID    uuid.UUID  // Owner of the token.
	Name      string     // Human-readable purpose tag.
	TokenHash string     // Hex SHA-256 of the plaintext credential.
	ExpiresAt *time.Time // Nil means the token lives until it is deleted.
	CreatedAt time.Time
}

// Expired reports whether the token is past its expiry at the given instant.
func (t *AccessToken) Expired(now time.Time) bool {
	return t.ExpiresAt != nil && !now.Before(*t.ExpiresAt)
}

// Principal is the authenticated caller of a request: the user and the token it presented.
// It is produced once by the authentication gate and passed explicitly to usecases.
type Principal struct {
	User    *User
	TokenID uuid.UUID
}

// UserID is a shortcut for the principal's user identifier.
func (p Principal) UserID() uuid.UUID {
	if p.User == nil {
		return uuid.Nil
	}

	return p.User.ID
}
