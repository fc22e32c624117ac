package auth

import (
	pkgauth "github.com/rutamovil/booking-gateway/pkg/auth"
	"github.com/rutamovil/booking-gateway/pkg/coreapi"
)

// LoginRequest carries the credentials submitted to the gateway.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is what the browser receives after a successful login. The
// access token is the gateway JWT, never the upstream bearer token.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int64        `json:"expires_in"`
	Role        pkgauth.Role `json:"role"`
	User        coreapi.User `json:"user"`
}
