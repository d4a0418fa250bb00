// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "voyage/internal/delivery/context"
	"voyage/internal/domain/entity"
	domainerrors "voyage/internal/domain/errors"
	"voyage/internal/domain/repository"
	"voyage/internal/domain/service"
	"voyage/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	googleOAuth  service.OAuthService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	GoogleOAuth  service.OAuthService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		googleOAuth:  params.GoogleOAuth,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a local account. The password is hashed before anything
// touches the database; the plaintext is never stored or logged. Concurrent
// registrations of the same email are settled by the unique constraint on
// the email column.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Email:        email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Provider:     entity.ProviderLocal,
		PasswordHash: hashedPassword,
	}

	createdUser, err := srv.userRepo.Create(ctx, newUser)
	if err != nil {
		if errors.Is(err, domainerrors.ErrDuplicateAccount) {
			srv.log(ctx).Warn("Registration rejected, email already in use", slog.String("email", email))

			return nil, err
		}

		srv.log(ctx).Error("Failed to create user during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	token, err := srv.tokenService.Issue(createdUser.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token after registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", createdUser.ID))

	return &usecase.AuthOutput{Token: token, User: createdUser}, nil
}

// Login verifies a local credential and issues an access token. Every
// failure mode (unknown email, delegated-only account, wrong password)
// collapses into the same invalid-credentials error so responses do not
// reveal which part was wrong.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting login", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed, unknown email", slog.String("email", email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email during login")
	}

	// Accounts created through delegated sign-in carry no local credential;
	// hasher.Check returns false for the empty hash.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed, password mismatch", slog.String("email", email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token during login")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

// GoogleAuthURL builds the Google authorization URL for the sign-in redirect.
func (srv *authService) GoogleAuthURL() string {
	authURL, _ := srv.googleOAuth.BuildAuthorizationURL()

	return authURL
}

// GoogleCallback completes the delegated sign-in flow. The Google identity
// is reconciled against the account store by its Google identifier, never
// by email; a first-time identity gets a fresh account with a verified
// email flag.
func (srv *authService) GoogleCallback(ctx context.Context, input *usecase.GoogleCallbackInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Handling Google callback")

	if !srv.googleOAuth.ValidateState(input.State) {
		srv.log(ctx).Warn("Google callback rejected, state mismatch")

		return nil, errors.Wrap(domainerrors.ErrAuthenticationRequired, "oauth state mismatch")
	}

	oauthUser, err := srv.googleOAuth.ExchangeCode(ctx, input.Code)
	if err != nil {
		srv.log(ctx).Warn("Google code exchange failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrAuthenticationRequired, "failed to exchange authorization code")
	}

	// Without a subject identifier there is nothing to reconcile against.
	if oauthUser.ID == "" {
		srv.log(ctx).Warn("Google callback carried no subject identifier")

		return nil, errors.WithStack(domainerrors.ErrNoDelegatedIdentity)
	}

	user, err := srv.findOrCreateGoogleUser(ctx, oauthUser)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reconcile Google identity")
	}

	token, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token for google auth")
	}

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

// findOrCreateGoogleUser finds the account linked to the Google identity or
// creates a new one.
func (srv *authService) findOrCreateGoogleUser(ctx context.Context, oauthUser *service.OAuthUser) (*entity.User, error) {
	user, err := srv.userRepo.FindByGoogleID(ctx, oauthUser.ID)
	if err == nil {
		srv.log(ctx).Info("Found existing Google user", slog.Any("userID", user.ID))

		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by google id")
	}

	srv.log(ctx).Info("Google user not found, creating new user", slog.String("email", oauthUser.Email))

	newUser := &entity.User{
		Email:           normalizeEmail(oauthUser.Email),
		FirstName:       oauthUser.FirstName,
		LastName:        oauthUser.LastName,
		AvatarURL:       oauthUser.AvatarURL,
		IsEmailVerified: true,
		Provider:        srv.googleOAuth.Provider(),
		GoogleID:        oauthUser.ID,
	}

	createdUser, err := srv.userRepo.Create(ctx, newUser)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user for google auth")
	}

	return createdUser, nil
}

// ChangePassword replaces the local credential of an account. The current
// password must verify against the stored hash; delegated-only accounts
// have no credential to change.
func (srv *authService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) error {
	srv.log(ctx).Info("Attempting password change", slog.Any("userID", input.UserID))

	newHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash new password")
	}

	// Read and write share a transaction so a concurrent change cannot
	// interleave between the verification and the update.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user for password change")
		}

		if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "current password mismatch")
		}

		return userRepo.UpdatePasswordHash(ctx, input.UserID, newHash)
	})
	if err != nil {
		srv.log(ctx).Warn("Password change failed", slog.Any("userID", input.UserID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Password changed", slog.Any("userID", input.UserID))

	return nil
}

// ResolveUser loads the account referenced by an access token subject.
func (srv *authService) ResolveUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve user")
	}

	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
