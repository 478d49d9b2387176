package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by issued session tokens.
type Claims struct {
	AccountID int64 `json:"accountId"`
	jwt.RegisteredClaims
}

// TokenIssuer defines the interface for minting and validating signed
// session tokens. Issuance happens on successful login; validation is used
// by the HTTP layer to authenticate subsequent requests.
type TokenIssuer interface {
	// Issue creates a signed, time-bounded token asserting that the given
	// account authenticated now.
	Issue(accountID int64, email string) (string, error)

	// Validate checks the signature, structure and expiry of a token string
	// and returns its claims.
	Validate(tokenString string) (*Claims, error)
}
