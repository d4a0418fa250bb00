package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"voyage/internal/domain/entity"
	domainerrors "voyage/internal/domain/errors"
	"voyage/internal/domain/service"
	mockSvc "voyage/internal/mocks/service"
	mockUsecase "voyage/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authMiddlewareFixtures struct {
	middleware  *AuthMiddleware
	tokenSvc    *mockSvc.MockTokenService
	authUsecase *mockUsecase.MockAuthUsecase
}

func createTestAuthMiddleware(t *testing.T) authMiddlewareFixtures {
	tokenSvc := mockSvc.NewMockTokenService(t)
	authUsecase := mockUsecase.NewMockAuthUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return authMiddlewareFixtures{
		middleware:  NewAuthMiddleware(tokenSvc, authUsecase, logger),
		tokenSvc:    tokenSvc,
		authUsecase: authUsecase,
	}
}

func invokeAuthenticate(t *testing.T, m *AuthMiddleware, authHeader string) (echo.Context, bool, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/trips", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	handler := m.Authenticate(func(c echo.Context) error {
		nextCalled = true

		return c.NoContent(http.StatusOK)
	})

	err := handler(c)

	return c, nextCalled, err
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	_, nextCalled, err := invokeAuthenticate(t, fx.middleware, "")

	assert.False(t, nextCalled)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthenticationRequired))
}

func TestAuthMiddleware_NotABearerToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	_, nextCalled, err := invokeAuthenticate(t, fx.middleware, "Basic dXNlcjpwYXNz")

	assert.False(t, nextCalled)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthenticationRequired))
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.tokenSvc.EXPECT().Verify("garbage").Return(nil, service.ErrTokenInvalid)

	_, nextCalled, err := invokeAuthenticate(t, fx.middleware, "Bearer garbage")

	assert.False(t, nextCalled)
	// Same error as a missing header; the response must not say why.
	assert.True(t, errors.Is(err, domainerrors.ErrAuthenticationRequired))
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.tokenSvc.EXPECT().Verify("expired-token").Return(nil, service.ErrTokenExpired)

	_, nextCalled, err := invokeAuthenticate(t, fx.middleware, "Bearer expired-token")

	assert.False(t, nextCalled)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthenticationRequired))
}

func TestAuthMiddleware_DeletedAccount(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	userID := uuid.New()
	fx.tokenSvc.EXPECT().Verify("valid-token").Return(&service.Claims{UserID: userID}, nil)
	fx.authUsecase.EXPECT().
		ResolveUser(mock.Anything, userID).
		Return(nil, domainerrors.ErrUserNotFound)

	_, nextCalled, err := invokeAuthenticate(t, fx.middleware, "Bearer valid-token")

	assert.False(t, nextCalled)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthenticationRequired))
}

func TestAuthMiddleware_ValidTokenAttachesUser(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "test@example.com"}

	fx.tokenSvc.EXPECT().Verify("valid-token").Return(&service.Claims{UserID: userID}, nil)
	fx.authUsecase.EXPECT().ResolveUser(mock.Anything, userID).Return(user, nil)

	c, nextCalled, err := invokeAuthenticate(t, fx.middleware, "Bearer valid-token")

	require.NoError(t, err)
	assert.True(t, nextCalled)
	assert.Equal(t, userID, c.Get(ContextKeyUserID))
	assert.Equal(t, user, c.Get(ContextKeyUser))
}
