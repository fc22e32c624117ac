package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// Role mirrors the roles issued by the core platform API.
type Role string

const (
	RoleCliente        Role = "cliente"
	RoleAdministrativo Role = "administrativo"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleCliente, RoleAdministrativo:
		return true
	}
	return false
}

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	UserID int64
	Email  string
	Name   string
	Role   Role
	// SessionID becomes the jti and keys the redis session record. When
	// empty a fresh id is generated.
	SessionID string
}

// AccessTokenClaims represents the typed JWT issued to browsers.
type AccessTokenClaims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email,omitempty"`
	Name   string `json:"name,omitempty"`
	Role   Role   `json:"role"`
	jwt.RegisteredClaims
}

// SessionID returns the jti tying this token to its redis session record.
func (c *AccessTokenClaims) SessionID() string {
	return c.ID
}
