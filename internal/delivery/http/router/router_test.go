package router

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"voyage/internal/delivery/http/middleware"
	"voyage/internal/delivery/http/router/handler"
	mockSvc "voyage/internal/mocks/service"
	mockUsecase "voyage/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func createTestRouter(t *testing.T) *router {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	authUsecase := mockUsecase.NewMockAuthUsecase(t)
	tripUsecase := mockUsecase.NewMockTripUsecase(t)
	tokenSvc := mockSvc.NewMockTokenService(t)

	return NewRouter(RouterParams{
		AuthHandler:    handler.NewAuthHandler(authUsecase, nil, logger),
		TripHandler:    handler.NewTripHandler(tripUsecase, logger),
		AuthMiddleware: middleware.NewAuthMiddleware(tokenSvc, authUsecase, logger),
	})
}

func TestRegisterRoutes(t *testing.T) {
	e := echo.New()
	createTestRouter(t).RegisterRoutes(e)

	registered := make(map[string]bool)
	for _, route := range e.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		http.MethodGet + " /health",
		http.MethodPost + " /api/auth/register",
		http.MethodPost + " /api/auth/login",
		http.MethodGet + " /api/auth/google",
		http.MethodGet + " /api/auth/google/callback",
		http.MethodGet + " /api/auth/me",
		http.MethodPatch + " /api/auth/password",
		http.MethodPost + " /api/trips",
		http.MethodGet + " /api/trips",
		http.MethodGet + " /api/trips/:id",
		http.MethodPatch + " /api/trips/:id",
		http.MethodDelete + " /api/trips/:id",
	}
	for _, route := range expected {
		assert.True(t, registered[route], "route %s is not registered", route)
	}

	// Update is PATCH; a PUT registration would break clients.
	assert.False(t, registered[http.MethodPut+" /api/trips/:id"])
}
