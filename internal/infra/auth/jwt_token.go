package auth

import (
	"context"
	"time"

	"inventory/internal/domain/entity"
	"inventory/internal/domain/repository"
	"inventory/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// jwtTokenIssuer issues HS256 JWTs carrying sub and jti. The stored hash still
// gates every token, so deleting its row revokes it.
type jwtTokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTTokenIssuer is the constructor for jwtTokenIssuer.
func NewJWTTokenIssuer(secret string, ttl time.Duration) (service.TokenIssuer, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtTokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (i *jwtTokenIssuer) Issue(ctx context.Context, repo repository.AccessTokenRepository, userID uuid.UUID, name string) (string, error) {
	tokenID, err := uuid.NewV7()
	if err != nil {
		return "", errors.Wrap(err, "failed to generate token id")
	}

	now := i.now()
	expiresAt := expiry(now, i.ttl)

	claims := jwt.RegisteredClaims{
		Subject:  userID.String(),
		ID:       tokenID.String(),
		IssuedAt: jwt.NewNumericDate(now),
	}
	if expiresAt != nil {
		claims.ExpiresAt = jwt.NewNumericDate(*expiresAt)
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	token := &entity.AccessToken{
		ID:        tokenID,
		UserID:    userID,
		Name:      name,
		TokenHash: hashToken(signed),
		ExpiresAt: expiresAt,
	}
	if err := repo.Create(ctx, token); err != nil {
		return "", errors.Wrap(err, "failed to store token")
	}

	return signed, nil
}

func (i *jwtTokenIssuer) Resolve(ctx context.Context, repo repository.AccessTokenRepository, plaintext string) (*entity.AccessToken, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(plaintext, &claims, func(*jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		return nil, service.ErrTokenInvalid
	}

	token, err := lookupLive(ctx, repo, plaintext, i.now())
	if err != nil {
		return nil, err
	}

	if token.ID.String() != claims.ID || token.UserID.String() != claims.Subject {
		return nil, service.ErrTokenInvalid
	}

	return token, nil
}
