package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "voyage/internal/delivery/context"
	domainerrors "voyage/internal/domain/errors"
	"voyage/internal/domain/service"
	"voyage/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Context keys set by the request gate for downstream handlers.
const (
	// ContextKeyUserID holds the authenticated account's uuid.UUID.
	ContextKeyUserID = "userID"

	// ContextKeyUser holds the authenticated *entity.User.
	ContextKeyUser = "user"
)

// AuthMiddleware guards protected routes. It verifies the bearer token and
// resolves the account it names; requests only reach handlers with a live
// account attached.
type AuthMiddleware struct {
	tokenSvc    service.TokenService
	authUsecase usecase.AuthUsecase
	logger      *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, authUsecase usecase.AuthUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, authUsecase: authUsecase, logger: logger}
}

// Authenticate validates the access token and loads the account. Every
// failure mode (missing header, malformed token, bad signature, expiry,
// deleted account) yields the same authentication-required error so the
// response never reveals which check tripped.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return errors.Wrap(domainerrors.ErrAuthenticationRequired, err.Error())
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			m.log(c).Debug("Token verification failed", slog.Any("error", err))

			return errors.Wrap(domainerrors.ErrAuthenticationRequired, "token verification failed")
		}

		user, err := m.authUsecase.ResolveUser(c.Request().Context(), claims.UserID)
		if err != nil {
			m.log(c).Warn("Token subject no longer resolves to an account", slog.Any("userID", claims.UserID))

			return errors.Wrap(domainerrors.ErrAuthenticationRequired, "account not found for token subject")
		}

		c.Set(ContextKeyUserID, user.ID)
		c.Set(ContextKeyUser, user)

		return next(c)
	}
}

func (m *AuthMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
}

func extractBearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", errors.New("authorization header is missing")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return "", errors.New("authorization header is not a bearer token")
	}

	return tokenString, nil
}
