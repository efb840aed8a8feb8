package ports

import (
	"context"

	"github.com/akkor/hotel-booking-api/internal/core/domain"
)

// UserPatch carries a sparse update: nil fields are left untouched.
type UserPatch struct {
	Username     *string
	Email        *string
	PasswordHash *string
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// Update applies the non-nil fields of patch and returns the updated user.
	Update(ctx context.Context, id string, patch UserPatch) (*domain.User, error)
}
