package middleware

import (
	"strings"

	deliverycontext "padron/internal/delivery/context"
	"padron/internal/delivery/http/response"
	"padron/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	issuer service.TokenIssuer
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(issuer service.TokenIssuer) *AuthMiddleware {
	return &AuthMiddleware{issuer: issuer}
}

// Authenticate validates the bearer token and stores the account ID on the
// request context for handlers to use.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "TOKEN_MISSING", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid token format, must be Bearer token")
		}

		claims, err := m.issuer.Validate(tokenString)
		if err != nil {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid or expired token")
		}

		deliverycontext.SetAccountID(c, claims.AccountID)

		return next(c)
	}
}
