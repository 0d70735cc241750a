package ports

import (
	"context"

	"github.com/lojinha/commerce-system/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create appends the user and assigns the next sequential ID.
	// Returns domain.ErrUserExists when the e-mail is already registered.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// All returns every registered user in registration order.
	All(ctx context.Context) ([]*domain.User, error)
}
