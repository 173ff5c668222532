package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/domain/service"
	mockRepo "inventory/internal/mocks/repository"
	mockSvc "inventory/internal/mocks/service"
	"inventory/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service   usecase.AuthUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	tokenRepo *mockRepo.MockAccessTokenRepository
	hasher    *mockSvc.MockPasswordHasher
	issuer    *mockSvc.MockTokenIssuer
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	tokenRepo := mockRepo.NewMockAccessTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	issuer := mockSvc.NewMockTokenIssuer(t)

	srv := NewAuthService(AuthServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		TokenRepo: tokenRepo,
		Hasher:    hasher,
		Issuer:    issuer,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return authServiceFixtures{
		service:   srv,
		txManager: txManager,
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		hasher:    hasher,
		issuer:    issuer,
	}
}

// expectTx runs the transaction body against a factory backed by the given mocks.
func (f authServiceFixtures) expectTx(t *testing.T, txUserRepo *mockRepo.MockUserRepository, txTokenRepo *mockRepo.MockAccessTokenRepository) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(txUserRepo).Maybe()
	factory.EXPECT().AccessTokenRepo().Return(txTokenRepo).Maybe()

	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func fieldMessages(t *testing.T, err error, field string) []string {
	t.Helper()

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr), "expected validation error, got %v", err)

	return validationErr.Fields[field]
}

func TestAuthService_Register_Success(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()
	input := usecase.RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "secret123"}

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txTokenRepo := mockRepo.NewMockAccessTokenRepository(t)
	f.expectTx(t, txUserRepo, txTokenRepo)

	userID := uuid.New()
	f.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	txUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "hashed", user.PasswordHash)
			user.ID = userID
		}).
		Return(nil)
	f.issuer.EXPECT().Issue(ctx, txTokenRepo, userID, entity.DefaultTokenName).Return("inv_plain", nil)

	out, err := f.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "inv_plain", out.Token)
	assert.Equal(t, userID, out.User.ID)
	assert.Equal(t, input.Email, out.User.Email)
	assert.Equal(t, input.Name, out.User.Name)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	t.Run("found before insert", func(t *testing.T) {
		f := createTestAuthService(t)
		ctx := context.Background()

		txUserRepo := mockRepo.NewMockUserRepository(t)
		f.expectTx(t, txUserRepo, mockRepo.NewMockAccessTokenRepository(t))

		f.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
		txUserRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(&entity.User{ID: uuid.New()}, nil)

		_, err := f.service.Register(ctx, usecase.RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "secret123"})

		assert.Equal(t, []string{domainerrors.MessageEmailTaken}, fieldMessages(t, err, "email"))
	})

	t.Run("lost insert race", func(t *testing.T) {
		f := createTestAuthService(t)
		ctx := context.Background()

		txUserRepo := mockRepo.NewMockUserRepository(t)
		f.expectTx(t, txUserRepo, mockRepo.NewMockAccessTokenRepository(t))

		f.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
		txUserRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, repository.ErrUserNotFound)
		txUserRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrEmailTaken)

		_, err := f.service.Register(ctx, usecase.RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "secret123"})

		assert.Equal(t, []string{domainerrors.MessageEmailTaken}, fieldMessages(t, err, "email"))
	})
}

func TestAuthService_EmailTaken(t *testing.T) {
	ctx := context.Background()

	t.Run("taken", func(t *testing.T) {
		f := createTestAuthService(t)
		f.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(&entity.User{ID: uuid.New()}, nil)

		taken, err := f.service.EmailTaken(ctx, "ada@example.com")
		require.NoError(t, err)
		assert.True(t, taken)
	})

	t.Run("free", func(t *testing.T) {
		f := createTestAuthService(t)
		f.userRepo.EXPECT().FindByEmail(ctx, "new@example.com").Return(nil, repository.ErrUserNotFound)

		taken, err := f.service.EmailTaken(ctx, "new@example.com")
		require.NoError(t, err)
		assert.False(t, taken)
	})

	t.Run("lookup failure", func(t *testing.T) {
		f := createTestAuthService(t)
		f.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, errors.New("connection reset"))

		_, err := f.service.EmailTaken(ctx, "ada@example.com")
		assert.Error(t, err)
	})
}

func TestAuthService_Register_Failures(t *testing.T) {
	t.Run("hash failure", func(t *testing.T) {
		f := createTestAuthService(t)

		f.hasher.EXPECT().Hash(mock.Anything).Return("", errors.New("boom"))

		_, err := f.service.Register(context.Background(), usecase.RegisterInput{Email: "a@b.c", Password: "secret123"})

		assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
	})

	t.Run("token issue failure rolls back", func(t *testing.T) {
		f := createTestAuthService(t)
		ctx := context.Background()

		txUserRepo := mockRepo.NewMockUserRepository(t)
		f.expectTx(t, txUserRepo, mockRepo.NewMockAccessTokenRepository(t))

		f.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
		txUserRepo.EXPECT().FindByEmail(ctx, mock.Anything).Return(nil, repository.ErrUserNotFound)
		txUserRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
		f.issuer.EXPECT().Issue(ctx, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("disk full"))

		out, err := f.service.Register(ctx, usecase.RegisterInput{Email: "a@b.c", Password: "secret123"})

		assert.Nil(t, out)
		assert.ErrorIs(t, err, domainerrors.ErrTokenIssueFailed)
	})
}

func TestAuthService_Login(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", PasswordHash: "hashed"}

	t.Run("success", func(t *testing.T) {
		f := createTestAuthService(t)
		ctx := context.Background()

		f.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
		f.hasher.EXPECT().Check("secret123", "hashed").Return(true)
		f.issuer.EXPECT().Issue(ctx, f.tokenRepo, user.ID, entity.DefaultTokenName).Return("inv_new", nil)

		out, err := f.service.Login(ctx, usecase.LoginInput{Email: user.Email, Password: "secret123"})

		require.NoError(t, err)
		assert.Equal(t, "inv_new", out.Token)
		assert.Same(t, user, out.User)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := createTestAuthService(t)
		ctx := context.Background()

		f.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
		f.hasher.EXPECT().Check("nope", "hashed").Return(false)

		_, err := f.service.Login(ctx, usecase.LoginInput{Email: user.Email, Password: "nope"})

		assert.Equal(t, []string{domainerrors.MessageInvalidCredentials}, fieldMessages(t, err, "email"))
	})

	t.Run("unknown email still compares a hash", func(t *testing.T) {
		f := createTestAuthService(t)
		ctx := context.Background()

		f.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)
		f.hasher.EXPECT().Hash(dummyPassword).Return("dummy-hash", nil).Once()
		f.hasher.EXPECT().Check("secret123", "dummy-hash").Return(false)

		_, err := f.service.Login(ctx, usecase.LoginInput{Email: "ghost@example.com", Password: "secret123"})

		assert.Equal(t, []string{domainerrors.MessageInvalidCredentials}, fieldMessages(t, err, "email"))
	})

	t.Run("storage failure is not a credential error", func(t *testing.T) {
		f := createTestAuthService(t)
		ctx := context.Background()

		f.userRepo.EXPECT().FindByEmail(ctx, mock.Anything).Return(nil, errors.New("connection reset"))

		_, err := f.service.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: "x"})

		require.Error(t, err)
		var validationErr *domainerrors.ValidationError
		assert.False(t, errors.As(err, &validationErr))
	})
}

func TestAuthService_Logout(t *testing.T) {
	principal := entity.Principal{User: &entity.User{ID: uuid.New()}, TokenID: uuid.New()}

	t.Run("deletes the presented token", func(t *testing.T) {
		f := createTestAuthService(t)
		ctx := context.Background()

		f.tokenRepo.EXPECT().Delete(ctx, principal.TokenID).Return(nil)

		assert.NoError(t, f.service.Logout(ctx, principal))
	})

	t.Run("already deleted token", func(t *testing.T) {
		f := createTestAuthService(t)
		ctx := context.Background()

		f.tokenRepo.EXPECT().Delete(ctx, principal.TokenID).Return(repository.ErrAccessTokenNotFound)

		assert.NoError(t, f.service.Logout(ctx, principal))
	})

	t.Run("anonymous caller", func(t *testing.T) {
		f := createTestAuthService(t)

		assert.ErrorIs(t, f.service.Logout(context.Background(), entity.Principal{}), domainerrors.ErrUnauthenticated)
	})
}

func TestAuthService_CurrentUser(t *testing.T) {
	f := createTestAuthService(t)
	user := &entity.User{ID: uuid.New()}

	got, err := f.service.CurrentUser(context.Background(), entity.Principal{User: user})
	require.NoError(t, err)
	assert.Same(t, user, got)

	_, err = f.service.CurrentUser(context.Background(), entity.Principal{})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthService_Authenticate(t *testing.T) {
	user := &entity.User{ID: uuid.New()}
	token := &entity.AccessToken{ID: uuid.New(), UserID: user.ID}

	t.Run("live token", func(t *testing.T) {
		f := createTestAuthService(t)
		ctx := context.Background()

		f.issuer.EXPECT().Resolve(ctx, f.tokenRepo, "inv_abc").Return(token, nil)
		f.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

		principal, err := f.service.Authenticate(ctx, "inv_abc")

		require.NoError(t, err)
		assert.Same(t, user, principal.User)
		assert.Equal(t, token.ID, principal.TokenID)
	})

	t.Run("missing credential", func(t *testing.T) {
		f := createTestAuthService(t)

		_, err := f.service.Authenticate(context.Background(), "")

		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})

	t.Run("invalid token", func(t *testing.T) {
		f := createTestAuthService(t)
		ctx := context.Background()

		f.issuer.EXPECT().Resolve(ctx, f.tokenRepo, "bogus").Return(nil, service.ErrTokenInvalid)

		_, err := f.service.Authenticate(ctx, "bogus")

		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})

	t.Run("owner gone", func(t *testing.T) {
		f := createTestAuthService(t)
		ctx := context.Background()

		f.issuer.EXPECT().Resolve(ctx, f.tokenRepo, "inv_abc").Return(token, nil)
		f.userRepo.EXPECT().FindByID(ctx, user.ID).Return(nil, repository.ErrUserNotFound)

		_, err := f.service.Authenticate(ctx, "inv_abc")

		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})

	t.Run("storage failure surfaces", func(t *testing.T) {
		f := createTestAuthService(t)
		ctx := context.Background()

		f.issuer.EXPECT().Resolve(ctx, f.tokenRepo, "inv_abc").Return(nil, errors.New("db down"))

		_, err := f.service.Authenticate(ctx, "inv_abc")

		require.Error(t, err)
		assert.NotErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})
}
