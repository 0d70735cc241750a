package ports

import (
	"context"

	"github.com/lojinha/commerce-system/internal/core/domain"
)

// Identity is the set of claims carried by a verified token.
type Identity struct {
	UserID int
	Email  string
}

// AuthService implements registration, login and token verification.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// VerifyToken validates a token issued by Login and returns the identity
	// it carries. Any failure surfaces as domain.ErrInvalidToken.
	VerifyToken(token string) (Identity, error)
	// ListUsers returns every registered user in registration order.
	ListUsers(ctx context.Context) ([]*domain.User, error)
}
