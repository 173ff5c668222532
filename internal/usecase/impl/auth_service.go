// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "inventory/internal/delivery/context"
	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/domain/service"
	"inventory/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)


// dummyPassword is hashed once and compared against on logins for unknown emails.
const dummyPassword = "inventory-timing-equalizer"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	tokenRepo repository.AccessTokenRepository
	hasher    service.PasswordHasher
	issuer    service.TokenIssuer
	logger    *slog.Logger
	dummyHash func() string
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	TokenRepo repository.AccessTokenRepository
	Hasher    service.PasswordHasher
	Issuer    service.TokenIssuer
	Logger    *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	srv := &authService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		tokenRepo: params.TokenRepo,
		hasher:    params.Hasher,
		issuer:    params.Issuer,
		logger:    params.Logger,
	}
	srv.dummyHash = sync.OnceValue(func() string {
		hash, err := srv.hasher.Hash(dummyPassword)
		if err != nil {
			srv.logger.Error("Failed to prepare dummy password hash", slog.Any("error", err))
		}

		return hash
	})

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// EmailTaken reports whether an account already uses email.
func (srv *authService) EmailTaken(ctx context.Context, email string) (bool, error) {
	_, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, repository.ErrUserNotFound) {
		return false, nil
	}

	return false, errors.Wrap(err, "failed to check email availability")
}

// Register creates the user and its first token in one transaction.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed.WithDetails(err.Error()), "register")
	}

	var out *usecase.AuthOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.NewFieldError("email", domainerrors.MessageEmailTaken)
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email availability")
		}

		user := &entity.User{
			Name:         input.Name,
			Email:        input.Email,
			PasswordHash: hash,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrEmailTaken) {
				return domainerrors.NewFieldError("email", domainerrors.MessageEmailTaken)
			}

			return errors.Wrap(err, "failed to create user")
		}

		token, err := srv.issuer.Issue(ctx, repoFactory.AccessTokenRepo(), user.ID, entity.DefaultTokenName)
		if err != nil {
			return errors.Wrap(domainerrors.ErrTokenIssueFailed.WithDetails(err.Error()), "register")
		}

		out = &usecase.AuthOutput{User: user, Token: token}

		return nil
	})
	if err != nil {
		var validationErr *domainerrors.ValidationError
		if errors.As(err, &validationErr) {
			srv.log(ctx).Info("Registration rejected", slog.Any("fields", validationErr.Fields))

			return nil, err
		}
		srv.log(ctx).Error("Failed to execute registration transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Info("User registered", slog.Any("userID", out.User.ID))

	return out, nil
}

// Login issues a new token. Unknown email and wrong password fail identically.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.hasher.Check(input.Password, srv.dummyHash())
		srv.log(ctx).Info("Login failed")

		return nil, invalidCredentials()
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login failed", slog.Any("userID", user.ID))

		return nil, invalidCredentials()
	}

	token, err := srv.issuer.Issue(ctx, srv.tokenRepo, user.ID, entity.DefaultTokenName)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed.WithDetails(err.Error()), "login")
	}

	srv.log(ctx).Debug("User logged in", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{User: user, Token: token}, nil
}

func invalidCredentials() error {
	return domainerrors.NewFieldError("email", domainerrors.MessageInvalidCredentials)
}

// Logout deletes the presented token. A token already gone counts as logged out.
func (srv *authService) Logout(ctx context.Context, principal entity.Principal) error {
	if principal.User == nil {
		return domainerrors.ErrUnauthenticated
	}

	err := srv.tokenRepo.Delete(ctx, principal.TokenID)
	if err != nil && !errors.Is(err, repository.ErrAccessTokenNotFound) {
		return errors.Wrap(err, "failed to delete access token")
	}

	srv.log(ctx).Debug("User logged out", slog.Any("userID", principal.UserID()), slog.Any("tokenID", principal.TokenID))

	return nil
}

func (srv *authService) CurrentUser(_ context.Context, principal entity.Principal) (*entity.User, error) {
	if principal.User == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	return principal.User, nil
}

// Authenticate maps the bearer credential to its owner. Every rejection is ErrUnauthenticated;
// only storage failures surface as other errors.
func (srv *authService) Authenticate(ctx context.Context, bearer string) (entity.Principal, error) {
	if bearer == "" {
		return entity.Principal{}, domainerrors.ErrUnauthenticated
	}

	token, err := srv.issuer.Resolve(ctx, srv.tokenRepo, bearer)
	if errors.Is(err, service.ErrTokenInvalid) {
		return entity.Principal{}, domainerrors.ErrUnauthenticated
	}
	if err != nil {
		return entity.Principal{}, errors.Wrap(err, "failed to resolve token")
	}

	user, err := srv.userRepo.FindByID(ctx, token.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return entity.Principal{}, domainerrors.ErrUnauthenticated
	}
	if err != nil {
		return entity.Principal{}, errors.Wrap(err, "failed to load token owner")
	}

	return entity.Principal{User: user, TokenID: token.ID}, nil
}
