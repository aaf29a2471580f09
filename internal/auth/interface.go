package auth

import "showcase/internal/domain/models"

// TokenVerifier validates a bearer token and resolves the actor claims it
// carries. The abstraction keeps the middleware agnostic to how tokens
// are actually verified (JWKS in production, a stub in tests).
type TokenVerifier interface {
	// VerifyToken validates a token string and returns the parsed claims.
	// Returns an error if the token is invalid, expired, or has an
	// invalid signature.
	VerifyToken(tokenString string) (*models.AccessClaims, error)

	// Close releases any resources held by the verifier.
	Close() error
}
