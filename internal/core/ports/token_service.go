package ports

// TokenService is the credential and token boundary: password hashing and
// stateless bearer-token issuance/verification. Implementations are pure
// CPU-bound functions over a process-wide signing secret.
type TokenService interface {
	HashPassword(password string) (string, error)
	// VerifyPassword reports whether password matches hash. Comparison is
	// constant-time safe.
	VerifyPassword(password, hash string) bool
	// IssueToken signs a token whose subject is the given user id.
	IssueToken(userID string) (string, error)
	// VerifyToken returns the subject user id, domain.ErrInvalidToken on a
	// malformed or mis-signed token, or domain.ErrTokenExpired.
	VerifyToken(token string) (string, error)
}
