package domain

import "errors"

var (
	// ErrUserExists signals a username or email uniqueness violation. Both
	// collisions surface identically to the caller.
	ErrUserExists = errors.New("username or email already taken")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so the two cases cannot be told apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// ErrForbidden signals an authenticated caller lacking the required
	// role or ownership.
	ErrForbidden = errors.New("forbidden")

	ErrUserNotFound    = errors.New("user not found")
	ErrHotelNotFound   = errors.New("hotel not found")
	ErrBookingNotFound = errors.New("booking not found")

	// ErrTooManyLoginAttempts is returned when the login guard trips.
	ErrTooManyLoginAttempts = errors.New("too many login attempts")
)
