// Package memory provides the process-local storage backing the demo: an
// append-only user list and the fixed product catalog.
package memory

import (
	"context"
	"sync"

	"github.com/lojinha/commerce-system/internal/core/domain"
)

// UserRepository keeps users in an ordered slice: registration order,
// sequential IDs from 1, e-mail uniqueness enforced by linear scan. The
// mutex guards the slice because HTTP handlers run concurrently.
type UserRepository struct {
	mu     sync.RWMutex
	users  []*domain.User
	nextID int
}

func NewUserRepository() *UserRepository {
	return &UserRepository{nextID: 1}
}

// Create appends the user after checking e-mail uniqueness and assigns the
// next sequential ID.
func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}

	stored := *user
	stored.ID = r.nextID
	r.nextID++
	r.users = append(r.users, &stored)

	out := stored
	return &out, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// All returns copies of every user in registration order.
func (r *UserRepository) All(_ context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.User, len(r.users))
	for i, u := range r.users {
		c := *u
		out[i] = &c
	}
	return out, nil
}
