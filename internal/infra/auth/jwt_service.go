// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"padron/config"
	"padron/internal/domain/service"
	"padron/internal/errors"
)

const defaultSessionTTL = time.Hour

// jwtIssuer is a concrete implementation of the TokenIssuer interface using the JWT standard.
type jwtIssuer struct {
	secret     []byte        // Symmetric key for signing session tokens, loaded once at startup.
	sessionTTL time.Duration // Time-to-live for session tokens.
}

// NewJWTIssuer is the constructor for jwtIssuer.
// The signing key is injected configuration and must never be embedded in source.
func NewJWTIssuer(cfg *config.Config) (service.TokenIssuer, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session signing key must be provided")
	}

	ttl := defaultSessionTTL
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtIssuer{
		secret:     []byte(cfg.SecretKey.Session),
		sessionTTL: ttl,
	}, nil
}

// Issue creates a signed HS256 token carrying the account identifier and the
// issuance/expiry window.
func (s *jwtIssuer) Issue(accountID int64, email string) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		AccountID: accountID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(accountID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Validate parses the token string and returns its claims. Tokens with a
// non-HMAC signing method, a bad signature, a malformed structure or a past
// expiry are all rejected.
func (s *jwtIssuer) Validate(tokenString string) (*service.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &service.Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse session token")
	}

	claims, ok := token.Claims.(*service.Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid session token claims")
	}

	return claims, nil
}
