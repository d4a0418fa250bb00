package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"voyage/config"
	"voyage/internal/delivery/http/middleware"
	"voyage/internal/delivery/http/response"
	"voyage/internal/delivery/http/validator"
	"voyage/internal/domain/entity"
	domainerrors "voyage/internal/domain/errors"
	mockUsecase "voyage/internal/mocks/usecase"
	"voyage/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authHandlerFixtures struct {
	handler *AuthHandler
	uc      *mockUsecase.MockAuthUsecase
	echo    *echo.Echo
}

// newTestEcho builds an echo instance wired the same way the server is, so
// handler errors travel through the real error middleware.
func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	return e
}

func createTestAuthHandler(t *testing.T) authHandlerFixtures {
	uc := mockUsecase.NewMockAuthUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		GoogleOAuth: &config.GoogleOAuthConfig{ClientURL: "http://localhost:3000"},
	}

	return authHandlerFixtures{
		handler: NewAuthHandler(uc, cfg, logger),
		uc:      uc,
		echo:    newTestEcho(t),
	}
}

func performJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}

func TestAuthHandler_Register_Success(t *testing.T) {
	fx := createTestAuthHandler(t)
	fx.echo.POST("/api/auth/register", fx.handler.Register)

	user := &entity.User{ID: uuid.New(), Email: "test@example.com", Provider: entity.ProviderLocal}
	fx.uc.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(&usecase.AuthOutput{Token: "signed_token", User: user}, nil)

	rec := performJSON(fx.echo, http.MethodPost, "/api/auth/register",
		`{"email":"test@example.com","password":"Password123!","firstName":"Test","lastName":"User"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.NotContains(t, rec.Body.String(), "passwordHash")
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	fx := createTestAuthHandler(t)
	fx.echo.POST("/api/auth/register", fx.handler.Register)

	// Password shorter than eight characters never reaches the usecase.
	rec := performJSON(fx.echo, http.MethodPost, "/api/auth/register",
		`{"email":"test@example.com","password":"short","firstName":"Test","lastName":"User"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthHandler(t)
	fx.echo.POST("/api/auth/register", fx.handler.Register)

	fx.uc.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(nil, domainerrors.ErrDuplicateAccount)

	rec := performJSON(fx.echo, http.MethodPost, "/api/auth/register",
		`{"email":"taken@example.com","password":"Password123!","firstName":"Test","lastName":"User"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Login_FailureIsGeneric(t *testing.T) {
	fx := createTestAuthHandler(t)
	fx.echo.POST("/api/auth/login", fx.handler.Login)

	fx.uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed"))

	rec := performJSON(fx.echo, http.MethodPost, "/api/auth/login",
		`{"email":"test@example.com","password":"wrong-password"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, domainerrors.ErrInvalidCredentials.Message(), resp.Message)
}

func TestAuthHandler_GoogleLogin_Redirects(t *testing.T) {
	fx := createTestAuthHandler(t)
	fx.echo.GET("/api/auth/google", fx.handler.GoogleLogin)

	fx.uc.EXPECT().GoogleAuthURL().Return("https://accounts.google.com/o/oauth2/auth?client_id=x")

	rec := performJSON(fx.echo, http.MethodGet, "/api/auth/google", "")

	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "https://accounts.google.com/o/oauth2/auth?client_id=x", rec.Header().Get(echo.HeaderLocation))
}

func TestAuthHandler_GoogleCallback_RedirectsWithToken(t *testing.T) {
	fx := createTestAuthHandler(t)
	fx.echo.GET("/api/auth/google/callback", fx.handler.GoogleCallback)

	user := &entity.User{ID: uuid.New(), Provider: entity.ProviderGoogle}
	fx.uc.EXPECT().
		GoogleCallback(mock.Anything, &usecase.GoogleCallbackInput{Code: "auth-code", State: "good-state"}).
		Return(&usecase.AuthOutput{Token: "signed_token", User: user}, nil)

	rec := performJSON(fx.echo, http.MethodGet, "/api/auth/google/callback?code=auth-code&state=good-state", "")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "http://localhost:3000/auth/google/callback?token=signed_token", rec.Header().Get(echo.HeaderLocation))
}

func TestAuthHandler_GoogleCallback_MissingCode(t *testing.T) {
	fx := createTestAuthHandler(t)
	fx.echo.GET("/api/auth/google/callback", fx.handler.GoogleCallback)

	rec := performJSON(fx.echo, http.MethodGet, "/api/auth/google/callback?state=good-state", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Me(t *testing.T) {
	fx := createTestAuthHandler(t)

	user := &entity.User{ID: uuid.New(), Email: "test@example.com", Provider: entity.ProviderLocal}
	fx.echo.GET("/api/auth/me", fx.handler.Me, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(middleware.ContextKeyUser, user)

			return next(c)
		}
	})

	rec := performJSON(fx.echo, http.MethodGet, "/api/auth/me", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test@example.com")
}

func TestAuthHandler_ChangePassword_WithoutAuthContext(t *testing.T) {
	fx := createTestAuthHandler(t)
	fx.echo.PATCH("/api/auth/password", fx.handler.ChangePassword)

	rec := performJSON(fx.echo, http.MethodPatch, "/api/auth/password",
		`{"currentPassword":"OldPassword123!","newPassword":"NewPassword123!"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, domainerrors.ErrAuthenticationRequired.Message(), resp.Message)
}
