// internal/repository/user_repo.go
package repository

import (
	"context"

	"financas/internal/domain"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// Save persists a new user using the provided DBExecutor and fills in its ID.
	Save(ctx context.Context, q DBExecutor, user *domain.User) error
	// FindByID retrieves a user by ID. Returns util.ErrNotFound when absent.
	FindByID(ctx context.Context, q DBExecutor, id int64) (*domain.User, error)
	// FindByEmail retrieves a user by email. Returns util.ErrNotFound when absent.
	FindByEmail(ctx context.Context, q DBExecutor, email string) (*domain.User, error)
	// ExistsByEmail reports whether any user already has the given email.
	ExistsByEmail(ctx context.Context, q DBExecutor, email string) (bool, error)
}
