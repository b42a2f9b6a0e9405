package ports

import (
	"filevault-api/internal/infrastructure/jwt"
)

// TokenVerifier is the capability the auth gate needs: turn a bearer value
// into claims before any handler side effect runs. Kept as an interface so
// a deployment can swap in a different verification scheme.
type TokenVerifier interface {
	ValidateToken(tokenStr string) (*jwt.Claims, error)
}
