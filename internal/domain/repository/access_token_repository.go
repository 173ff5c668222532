package repository

import (
	"context"

	"inventory/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrAccessTokenNotFound is returned when no token row matches.
var ErrAccessTokenNotFound = errors.New("access token not found")

// AccessTokenRepository persists issued bearer tokens by their hash.
type AccessTokenRepository interface {
	Create(ctx context.Context, token *entity.AccessToken) error

	// FindByHash retrieves a token by the hash of its plaintext.
	FindByHash(ctx context.Context, tokenHash string) (*entity.AccessToken, error)

	// FindByID retrieves a token by its row ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AccessToken, error)

	// Delete removes a single token. Returns ErrAccessTokenNotFound when nothing was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}
