package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessTokenClaims is the payload minted by the identity service. The cart
// engine only needs the shopper identity; everything else about sessions is
// handled upstream.
type AccessTokenClaims struct {
	UserID uuid.UUID `json:"uid"`
	jwt.RegisteredClaims
}

// AccessTokenPayload captures the values stamped into a new access token.
type AccessTokenPayload struct {
	UserID uuid.UUID
	JTI    string
}
