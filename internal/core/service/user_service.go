package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/akkor/hotel-booking-api/internal/core/domain"
	"github.com/akkor/hotel-booking-api/internal/core/ports"
)

// LoginGuard throttles repeated failed logins (Redis-backed in production).
type LoginGuard interface {
	// Blocked reports whether the email has exhausted its failure budget.
	Blocked(ctx context.Context, email string) (bool, error)
	// RecordFailure counts one failed attempt against the email.
	RecordFailure(ctx context.Context, email string) error
	// Clear resets the failure count after a successful login.
	Clear(ctx context.Context, email string) error
}

// UserService implements registration, login, and profile management.
type UserService struct {
	repo   ports.UserRepository
	tokens ports.TokenService
	guard  LoginGuard
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, tokens ports.TokenService, guard LoginGuard, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, tokens: tokens, guard: guard, logger: logger}
}

// Register creates an account. Username and email are two independent
// uniqueness constraints; either collision yields ErrUserExists. The unique
// indexes on the users collection close the check-then-insert race.
func (s *UserService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if _, err := s.repo.FindByUsername(ctx, input.Username); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.tokens.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("user registered")
	return created, nil
}

// Login verifies credentials and issues a bearer token. An unknown email and
// a wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	if s.guard != nil {
		blocked, err := s.guard.Blocked(ctx, email)
		if err != nil {
			// Fail open: a throttle-store outage must not lock everyone out.
			s.logger.Warn().Err(err).Msg("login guard check failed, allowing attempt")
		} else if blocked {
			return "", domain.ErrTooManyLoginAttempts
		}
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, email)
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !s.tokens.VerifyPassword(password, user.PasswordHash) {
		s.recordFailure(ctx, email)
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.IssueToken(user.ID)
	if err != nil {
		return "", err
	}

	if s.guard != nil {
		if err := s.guard.Clear(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("login guard clear failed")
		}
	}
	return token, nil
}

func (s *UserService) recordFailure(ctx context.Context, email string) {
	if s.guard == nil {
		return
	}
	if err := s.guard.RecordFailure(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("login guard record failed")
	}
}

// Profile returns the account bound to the token subject.
func (s *UserService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

// Update applies a sparse patch to the caller's own account. Only the fields
// present in input change; a supplied password is re-hashed before storage.
func (s *UserService) Update(ctx context.Context, userID string, input ports.UpdateUserInput) (*domain.User, error) {
	patch := ports.UserPatch{
		Username: input.Username,
		Email:    input.Email,
	}
	if input.Password != nil {
		hash, err := s.tokens.HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = &hash
	}

	return s.repo.Update(ctx, userID, patch)
}
