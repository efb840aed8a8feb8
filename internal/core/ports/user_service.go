package ports

import (
	"context"

	"github.com/akkor/hotel-booking-api/internal/core/domain"
)

// RegisterInput carries the data needed to create an account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// UpdateUserInput is a sparse profile update; the raw password, when set, is
// hashed by the service before it reaches the repository.
type UpdateUserInput struct {
	Username *string
	Email    *string
	Password *string
}

// UserService defines use-case operations for accounts.
type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login returns a signed bearer token on success.
	Login(ctx context.Context, email, password string) (string, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
	Update(ctx context.Context, userID string, input UpdateUserInput) (*domain.User, error)
}
