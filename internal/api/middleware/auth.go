package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lojinha/commerce-system/internal/core/ports"
)

// TokenVerifier is the interface the middleware uses to validate tokens.
type TokenVerifier interface {
	VerifyToken(token string) (ports.Identity, error)
}

type contextKey string

const identityContextKey contextKey = "identity"

// WithIdentity returns a context carrying the verified identity.
func WithIdentity(ctx context.Context, ident ports.Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, ident)
}

// IdentityFrom extracts the identity injected by Auth or OptionalAuth.
// ok is false when the request was not authenticated.
func IdentityFrom(ctx context.Context) (ident ports.Identity, ok bool) {
	ident, ok = ctx.Value(identityContextKey).(ports.Identity)
	return ident, ok
}

// Auth validates the Bearer token and injects the identity into both the
// echo context and the request context.
func Auth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident, err := bearerIdentity(c, verifier)
			if err != nil {
				return err
			}

			inject(c, ident)
			return next(c)
		}
	}
}

// OptionalAuth injects the identity when a valid Bearer token is present and
// lets the request through either way. The GraphQL endpoint uses it: only
// individual resolvers demand authentication.
func OptionalAuth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if ident, err := bearerIdentity(c, verifier); err == nil {
				inject(c, ident)
			}
			return next(c)
		}
	}
}

func bearerIdentity(c echo.Context, verifier TokenVerifier) (ports.Identity, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ports.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "token não fornecido")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ports.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "token inválido")
	}

	ident, err := verifier.VerifyToken(parts[1])
	if err != nil {
		return ports.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "token inválido")
	}

	return ident, nil
}

func inject(c echo.Context, ident ports.Identity) {
	c.Set("user_id", ident.UserID)
	c.Set("email", ident.Email)
	c.SetRequest(c.Request().WithContext(WithIdentity(c.Request().Context(), ident)))
}
