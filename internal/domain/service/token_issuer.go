package service

import (
	"context"

	"inventory/internal/domain/entity"
	"inventory/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrTokenInvalid is returned when a presented credential resolves to no live token.
var ErrTokenInvalid = errors.New("token invalid")

// TokenIssuer issues bearer credentials and resolves them back to their stored row.
// The repository is passed per call so issuance can join a caller's transaction.
type TokenIssuer interface {
	// Issue stores a new token for the user and returns its plaintext, shown once.
	Issue(ctx context.Context, repo repository.AccessTokenRepository, userID uuid.UUID, name string) (string, error)

	// Resolve maps a plaintext credential to its live token row, or ErrTokenInvalid.
	Resolve(ctx context.Context, repo repository.AccessTokenRepository, plaintext string) (*entity.AccessToken, error)
}
