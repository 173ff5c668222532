package gormdb

import (
	"context"

	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accessTokenRepository implements the repository.AccessTokenRepository interface.
type accessTokenRepository struct {
	db *gorm.DB
}

// NewAccessTokenRepository is the constructor for accessTokenRepository.
func NewAccessTokenRepository(db *gorm.DB) repository.AccessTokenRepository {
	return &accessTokenRepository{db: db}
}

func (repo *accessTokenRepository) Create(ctx context.Context, token *entity.AccessToken) error {
	tokenM := fromAccessTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create access token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

func (repo *accessTokenRepository) FindByHash(ctx context.Context, tokenHash string) (*entity.AccessToken, error) {
	return repo.first(ctx, "token_hash = ?", tokenHash)
}

func (repo *accessTokenRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AccessToken, error) {
	return repo.first(ctx, "id = ?", id)
}

func (repo *accessTokenRepository) first(ctx context.Context, cond string, arg any) (*entity.AccessToken, error) {
	var tokenM model.AccessTokenModel

	if err := repo.db.WithContext(ctx).Where(cond, arg).First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccessTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find access token")
	}

	return toAccessTokenDomain(&tokenM), nil
}

// Delete removes exactly one token row.
func (repo *accessTokenRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AccessTokenModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete access token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAccessTokenNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toAccessTokenDomain(data *model.AccessTokenModel) *entity.AccessToken {
	if data == nil {
		return nil
	}

	return &entity.AccessToken{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

func fromAccessTokenDomain(data *entity.AccessToken) *model.AccessTokenModel {
	if data == nil {
		return nil
	}

	return &model.AccessTokenModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}
