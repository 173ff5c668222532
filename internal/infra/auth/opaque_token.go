package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"inventory/internal/domain/entity"
	"inventory/internal/domain/repository"
	"inventory/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const opaqueTokenBytes = 32

// opaqueTokenIssuer issues "<prefix><64 hex chars>" credentials. Only their hash is stored.
type opaqueTokenIssuer struct {
	prefix string
	ttl    time.Duration
	now    func() time.Time
}

// NewOpaqueTokenIssuer returns an issuer of random opaque tokens. A ttl of zero never expires.
func NewOpaqueTokenIssuer(prefix string, ttl time.Duration) service.TokenIssuer {
	return &opaqueTokenIssuer{prefix: prefix, ttl: ttl, now: time.Now}
}

func (i *opaqueTokenIssuer) Issue(ctx context.Context, repo repository.AccessTokenRepository, userID uuid.UUID, name string) (string, error) {
	secret := make([]byte, opaqueTokenBytes)
	if _, err := rand.Read(secret); err != nil {
		return "", errors.Wrap(err, "failed to generate token")
	}
	plaintext := i.prefix + hex.EncodeToString(secret)

	token := &entity.AccessToken{
		UserID:    userID,
		Name:      name,
		TokenHash: hashToken(plaintext),
		ExpiresAt: expiry(i.now(), i.ttl),
	}
	if err := repo.Create(ctx, token); err != nil {
		return "", errors.Wrap(err, "failed to store token")
	}

	return plaintext, nil
}

func (i *opaqueTokenIssuer) Resolve(ctx context.Context, repo repository.AccessTokenRepository, plaintext string) (*entity.AccessToken, error) {
	if !i.wellFormed(plaintext) {
		return nil, service.ErrTokenInvalid
	}

	return lookupLive(ctx, repo, plaintext, i.now())
}

// wellFormed rejects malformed credentials before they reach the database.
func (i *opaqueTokenIssuer) wellFormed(plaintext string) bool {
	body, ok := strings.CutPrefix(plaintext, i.prefix)
	if !ok || len(body) != hex.EncodedLen(opaqueTokenBytes) {
		return false
	}
	_, err := hex.DecodeString(body)

	return err == nil
}
