package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"voyage/internal/domain/entity"
	domainerrors "voyage/internal/domain/errors"
	"voyage/internal/domain/repository"
	"voyage/internal/domain/service"
	mockRepo "voyage/internal/mocks/repository"
	mockSvc "voyage/internal/mocks/service"
	"voyage/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	googleOAuth  *mockSvc.MockOAuthService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	googleOAuth := mockSvc.NewMockOAuthService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		GoogleOAuth:  googleOAuth,
		Logger:       logger,
	})

	return authServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		googleOAuth:  googleOAuth,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:     "Test@Example.com",
		Password:  "Password123!",
		FirstName: "Test",
		LastName:  "User",
	}

	createdID := uuid.New()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) (*entity.User, error) {
			// Email is normalized before it reaches the repository.
			assert.Equal(t, "test@example.com", user.Email)
			assert.Equal(t, "hashed_password", user.PasswordHash)
			assert.Equal(t, entity.ProviderLocal, user.Provider)

			created := *user
			created.ID = createdID

			return &created, nil
		})

	fx.tokenService.EXPECT().Issue(createdID).Return("signed_token", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "signed_token", output.Token)
	assert.Equal(t, createdID, output.User.ID)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:     "taken@example.com",
		Password:  "Password123!",
		FirstName: "Test",
		LastName:  "User",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil, domainerrors.ErrDuplicateAccount)

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateAccount))
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		Provider:     entity.ProviderLocal,
		PasswordHash: "stored_hash",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "test@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "stored_hash").Return(true)
	fx.tokenService.EXPECT().Issue(user.ID).Return("signed_token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "Test@Example.com",
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed_token", output.Token)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "stored_hash",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "test@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "stored_hash").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "wrong",
	})

	assert.Nil(t, output)
	// Wrong password and unknown email are the same error on the wire.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_DelegatedOnlyAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:       uuid.New(),
		Email:    "google-only@example.com",
		Provider: entity.ProviderGoogle,
		GoogleID: "google-sub-1",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "google-only@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("any password", "").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "google-only@example.com",
		Password: "any password",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_GoogleCallback_FirstSignInCreatesAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	oauthUser := &service.OAuthUser{
		ID:        "google-sub-1",
		Email:     "New@Example.com",
		FirstName: "New",
		LastName:  "User",
		AvatarURL: "https://example.com/avatar.png",
		Provider:  entity.ProviderGoogle,
	}
	createdID := uuid.New()

	fx.googleOAuth.EXPECT().ValidateState("good-state").Return(true)
	fx.googleOAuth.EXPECT().ExchangeCode(ctx, "auth-code").Return(oauthUser, nil)
	fx.userRepo.EXPECT().
		FindByGoogleID(ctx, "google-sub-1").
		Return(nil, repository.ErrUserNotFound)
	fx.googleOAuth.EXPECT().Provider().Return(entity.ProviderGoogle)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) (*entity.User, error) {
			assert.Equal(t, "new@example.com", user.Email)
			assert.Equal(t, "google-sub-1", user.GoogleID)
			assert.Equal(t, entity.ProviderGoogle, user.Provider)
			// Google asserted the identity, the email counts as verified.
			assert.True(t, user.IsEmailVerified)
			assert.Empty(t, user.PasswordHash)

			created := *user
			created.ID = createdID

			return &created, nil
		})
	fx.tokenService.EXPECT().Issue(createdID).Return("signed_token", nil)

	output, err := fx.service.GoogleCallback(ctx, &usecase.GoogleCallbackInput{
		Code:  "auth-code",
		State: "good-state",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed_token", output.Token)
	assert.Equal(t, createdID, output.User.ID)
}

func TestAuthService_GoogleCallback_SecondSignInReusesAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	existing := &entity.User{
		ID:       uuid.New(),
		Email:    "known@example.com",
		Provider: entity.ProviderGoogle,
		GoogleID: "google-sub-1",
	}

	fx.googleOAuth.EXPECT().ValidateState("good-state").Return(true)
	fx.googleOAuth.EXPECT().ExchangeCode(ctx, "auth-code").Return(&service.OAuthUser{
		ID:    "google-sub-1",
		Email: "known@example.com",
	}, nil)
	fx.userRepo.EXPECT().FindByGoogleID(ctx, "google-sub-1").Return(existing, nil)
	fx.tokenService.EXPECT().Issue(existing.ID).Return("signed_token", nil)

	output, err := fx.service.GoogleCallback(ctx, &usecase.GoogleCallbackInput{
		Code:  "auth-code",
		State: "good-state",
	})

	require.NoError(t, err)
	assert.Equal(t, existing.ID, output.User.ID)
}

func TestAuthService_GoogleCallback_MissingSubjectIdentifier(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.googleOAuth.EXPECT().ValidateState("good-state").Return(true)
	fx.googleOAuth.EXPECT().ExchangeCode(ctx, "auth-code").Return(&service.OAuthUser{
		Email: "no-subject@example.com",
	}, nil)

	output, err := fx.service.GoogleCallback(ctx, &usecase.GoogleCallbackInput{
		Code:  "auth-code",
		State: "good-state",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrNoDelegatedIdentity))
}

func TestAuthService_GoogleCallback_StateMismatch(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.googleOAuth.EXPECT().ValidateState("forged").Return(false)

	output, err := fx.service.GoogleCallback(ctx, &usecase.GoogleCallbackInput{
		Code:  "auth-code",
		State: "forged",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthenticationRequired))
}

func TestAuthService_ChangePassword_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, PasswordHash: "old_hash"}

	fx.hasher.EXPECT().Hash("NewPassword123!").Return("new_hash", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			fx.hasher.EXPECT().Check("OldPassword123!", "old_hash").Return(true)
			mockUserRepo.EXPECT().UpdatePasswordHash(ctx, userID, "new_hash").Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{
		UserID:          userID,
		CurrentPassword: "OldPassword123!",
		NewPassword:     "NewPassword123!",
	})

	require.NoError(t, err)
}

func TestAuthService_ChangePassword_WrongCurrentPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, PasswordHash: "old_hash"}

	fx.hasher.EXPECT().Hash("NewPassword123!").Return("new_hash", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			fx.hasher.EXPECT().Check("wrong", "old_hash").Return(false)

			return fn(mockFactory)
		})

	err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{
		UserID:          userID,
		CurrentPassword: "wrong",
		NewPassword:     "NewPassword123!",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_ResolveUser_NotFound(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.ResolveUser(ctx, userID)

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
