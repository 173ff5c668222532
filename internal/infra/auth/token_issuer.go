package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"inventory/config"
	"inventory/internal/domain/entity"
	"inventory/internal/domain/repository"
	"inventory/internal/domain/service"

	"github.com/pkg/errors"
)

// NewTokenIssuer selects the credential format from auth.tokenFormat.
func NewTokenIssuer(cfg *config.Config) (service.TokenIssuer, error) {
	authCfg := cfg.Auth
	if authCfg == nil {
		authCfg = &config.AuthConfig{}
	}

	switch authCfg.TokenFormat {
	case "", config.TokenFormatOpaque:
		return NewOpaqueTokenIssuer(authCfg.TokenPrefix, authCfg.TokenTTL), nil
	case config.TokenFormatJWT:
		return NewJWTTokenIssuer(cfg.SecretKey.Access, authCfg.TokenTTL)
	default:
		return nil, errors.Errorf("unsupported token format: %s", authCfg.TokenFormat)
	}
}

// hashToken is the lookup key stored for a plaintext credential.
func hashToken(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))

	return hex.EncodeToString(sum[:])
}

func expiry(now time.Time, ttl time.Duration) *time.Time {
	if ttl <= 0 {
		return nil
	}
	at := now.Add(ttl)

	return &at
}

// lookupLive finds the stored row for plaintext and rejects expired ones.
func lookupLive(ctx context.Context, repo repository.AccessTokenRepository, plaintext string, now time.Time) (*entity.AccessToken, error) {
	token, err := repo.FindByHash(ctx, hashToken(plaintext))
	if errors.Is(err, repository.ErrAccessTokenNotFound) {
		return nil, service.ErrTokenInvalid
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up access token")
	}

	if token.Expired(now) {
		return nil, service.ErrTokenInvalid
	}

	return token, nil
}
