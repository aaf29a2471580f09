package models

import "github.com/golang-jwt/jwt/v5"

// AccessClaims is the JWT claims structure issued by the external
// identity collaborator. Identity and session issuance live outside this
// engine; by the time a request reaches it, these claims are all it sees
// of the caller.
type AccessClaims struct {
	jwt.RegisteredClaims        // Standard JWT claims (sub, iss, aud, exp, iat, etc.)
	Role                 string `json:"role"`
	DisplayName          string `json:"display_name"`
	AvatarRef            string `json:"avatar_ref"`
}

// Actor is the resolved identity every engine operation receives: who is
// acting and with what role. Display fields ride along so comment
// creation can stamp the author without a user lookup.
type Actor struct {
	ID          string
	Role        string
	DisplayName string
	AvatarRef   string
}

// Actor converts verified claims into the engine's actor identity.
func (c *AccessClaims) Actor() Actor {
	return Actor{
		ID:          c.Subject,
		Role:        c.Role,
		DisplayName: c.DisplayName,
		AvatarRef:   c.AvatarRef,
	}
}
