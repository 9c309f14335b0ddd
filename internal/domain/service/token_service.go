package service

import (
	"localdrop/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by access tokens.
// Subject holds the user ID for osd accounts; BusinessRef names the business an osb account manages.
type Claims struct {
	Roles       []string `json:"roles"`
	BusinessRef string   `json:"business_ref,omitempty"`
	jwt.RegisteredClaims
}

// AccountRoles returns the recognised roles of the token.
func (c *Claims) AccountRoles() entity.Roles {
	return entity.RolesFromStrings(c.Roles)
}

// TokenService validates access tokens issued by the identity provider.
type TokenService interface {
	// ValidateToken checks the signature and expiry of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
