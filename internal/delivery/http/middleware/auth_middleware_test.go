package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "padron/internal/delivery/context"
	"padron/internal/domain/service"
	"padron/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type stubIssuer struct {
	claims *service.Claims
	err    error
}

func (s *stubIssuer) Issue(int64, string) (string, error) {
	return "", nil
}

func (s *stubIssuer) Validate(string) (*service.Claims, error) {
	return s.claims, s.err
}

func performWithAuth(issuer service.TokenIssuer, authHeader string) (*httptest.ResponseRecorder, bool, int64) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/api/users/1", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var reached bool
	var accountID int64
	next := func(c echo.Context) error {
		reached = true
		accountID, _ = deliverycontext.GetAccountID(c)

		return c.NoContent(http.StatusOK)
	}

	_ = NewAuthMiddleware(issuer).Authenticate(next)(c)

	return rec, reached, accountID
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	issuer := &stubIssuer{claims: &service.Claims{AccountID: 42}}

	rec, reached, accountID := performWithAuth(issuer, "Bearer valid.token")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
	assert.Equal(t, int64(42), accountID)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	issuer := &stubIssuer{claims: &service.Claims{AccountID: 42}}

	rec, reached, _ := performWithAuth(issuer, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
	assert.Contains(t, rec.Body.String(), "TOKEN_MISSING")
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	issuer := &stubIssuer{claims: &service.Claims{AccountID: 42}}

	rec, reached, _ := performWithAuth(issuer, "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	issuer := &stubIssuer{err: errors.New("token is expired")}

	rec, reached, _ := performWithAuth(issuer, "Bearer expired.token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
	assert.Contains(t, rec.Body.String(), "TOKEN_INVALID")
}
