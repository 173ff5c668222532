// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"inventory/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
// Field-level rules are enforced before the usecase is called.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput is returned by register and login: the user and a freshly issued token.
type AuthOutput struct {
	User  *entity.User
	Token string
}

// AuthUsecase defines the interface for account and session operations.
type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)

	// EmailTaken lets registration report a taken address alongside other field errors.
	EmailTaken(ctx context.Context, email string) (bool, error)

	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// Logout revokes only the token that authenticated the principal.
	Logout(ctx context.Context, principal entity.Principal) error

	CurrentUser(ctx context.Context, principal entity.Principal) (*entity.User, error)

	// Authenticate resolves a bearer credential to the calling principal.
	Authenticate(ctx context.Context, bearer string) (entity.Principal, error)
}
