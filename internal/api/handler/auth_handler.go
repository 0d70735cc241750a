package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lojinha/commerce-system/internal/api/metrics"
	"github.com/lojinha/commerce-system/internal/core/ports"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles POST /api/users/register.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "requisição inválida")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	metrics.UsersRegisteredTotal.WithLabelValues(metrics.TransportREST).Inc()
	return c.JSON(http.StatusCreated, authResponse{User: user})
}

// Login handles POST /api/users/login and returns a JWT token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "requisição inválida")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(metrics.TransportREST, "failed").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues(metrics.TransportREST, "ok").Inc()
	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}
