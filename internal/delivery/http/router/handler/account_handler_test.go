package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	custommiddleware "padron/internal/delivery/http/middleware"
	"padron/internal/delivery/http/validator"
	domainerrors "padron/internal/domain/errors"
	"padron/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUsecase lets each test plug in just the operation it exercises.
type stubUsecase struct {
	register    func(ctx context.Context, input *usecase.RegisterInput) (*usecase.AccountOutput, error)
	login       func(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error)
	update      func(ctx context.Context, id int64, input *usecase.UpdateInput) (*usecase.AccountOutput, error)
	delete      func(ctx context.Context, id int64) error
	getByID     func(ctx context.Context, id int64) (*usecase.AccountOutput, error)
	getAll      func(ctx context.Context) ([]*usecase.AccountOutput, error)
	getByFilter func(ctx context.Context, input *usecase.FilterInput) ([]*usecase.AccountOutput, error)
}

func (s *stubUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AccountOutput, error) {
	return s.register(ctx, input)
}

func (s *stubUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	return s.login(ctx, input)
}

func (s *stubUsecase) Update(ctx context.Context, id int64, input *usecase.UpdateInput) (*usecase.AccountOutput, error) {
	return s.update(ctx, id, input)
}

func (s *stubUsecase) Delete(ctx context.Context, id int64) error {
	return s.delete(ctx, id)
}

func (s *stubUsecase) GetByID(ctx context.Context, id int64) (*usecase.AccountOutput, error) {
	return s.getByID(ctx, id)
}

func (s *stubUsecase) GetAll(ctx context.Context) ([]*usecase.AccountOutput, error) {
	return s.getAll(ctx)
}

func (s *stubUsecase) GetByFilter(ctx context.Context, input *usecase.FilterInput) ([]*usecase.AccountOutput, error) {
	return s.getByFilter(ctx, input)
}

// newTestEcho wires the pieces a handler needs the way the real server does.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.HTTPErrorHandler = custommiddleware.NewErrorMiddleware(logger).HandleHTTPError

	return e
}

func newTestHandler(uc usecase.AccountUsecase) *AccountHandler {
	return NewAccountHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func performJSON(e *echo.Echo, method, target, body string, handler echo.HandlerFunc, pathParam ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if len(pathParam) == 2 {
		c.SetPath(target)
		c.SetParamNames(pathParam[0])
		c.SetParamValues(pathParam[1])
	}

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	return rec
}

func TestAccountHandler_Register(t *testing.T) {
	uc := &stubUsecase{
		register: func(_ context.Context, input *usecase.RegisterInput) (*usecase.AccountOutput, error) {
			return &usecase.AccountOutput{
				ID:         1,
				GivenName:  input.GivenName,
				FamilyName: input.FamilyName,
				NationalID: input.NationalID,
				Email:      input.Email,
			}, nil
		},
	}
	h := newTestHandler(uc)
	e := newTestEcho()

	body := `{"givenName":"Jane","familyName":"Doe","nationalId":"12345678","email":"jane.doe@example.com","password":"s3cret-pass"}`
	rec := performJSON(e, http.MethodPost, "/api/users/register", body, h.Register)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "jane.doe@example.com", resp.Data["email"])

	// Credential material never appears in the response body.
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "credential")
}

func TestAccountHandler_Register_ValidationFailure(t *testing.T) {
	uc := &stubUsecase{
		register: func(context.Context, *usecase.RegisterInput) (*usecase.AccountOutput, error) {
			t.Fatal("usecase must not be reached on invalid input")

			return nil, nil
		},
	}
	h := newTestHandler(uc)
	e := newTestEcho()

	// Numeric characters in the given name violate the alphaspace rule.
	body := `{"givenName":"J4ne","familyName":"Doe","nationalId":"12345678","email":"jane.doe@example.com","password":"s3cret-pass"}`
	rec := performJSON(e, http.MethodPost, "/api/users/register", body, h.Register)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestAccountHandler_Login(t *testing.T) {
	uc := &stubUsecase{
		login: func(context.Context, *usecase.LoginInput) (*usecase.LoginOutput, error) {
			return &usecase.LoginOutput{Token: "Bearer abc.def.ghi"}, nil
		},
	}
	h := newTestHandler(uc)
	e := newTestEcho()

	body := `{"email":"jane.doe@example.com","password":"s3cret-pass"}`
	rec := performJSON(e, http.MethodPost, "/api/users/login", body, h.Login)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data usecase.LoginOutput `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.Data.Token, "Bearer "))
}

func TestAccountHandler_Login_InvalidCredentials(t *testing.T) {
	uc := &stubUsecase{
		login: func(context.Context, *usecase.LoginInput) (*usecase.LoginOutput, error) {
			return nil, domainerrors.ErrInvalidCredentials
		},
	}
	h := newTestHandler(uc)
	e := newTestEcho()

	body := `{"email":"jane.doe@example.com","password":"wrong"}`
	rec := performJSON(e, http.MethodPost, "/api/users/login", body, h.Login)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
}

func TestAccountHandler_GetByID_NotFound(t *testing.T) {
	uc := &stubUsecase{
		getByID: func(context.Context, int64) (*usecase.AccountOutput, error) {
			return nil, domainerrors.ErrAccountNotFound
		},
	}
	h := newTestHandler(uc)
	e := newTestEcho()

	rec := performJSON(e, http.MethodGet, "/api/users/:id", "", h.GetByID, "id", "99")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "ACCOUNT_NOT_FOUND")
}

func TestAccountHandler_GetByID_InvalidID(t *testing.T) {
	uc := &stubUsecase{
		getByID: func(context.Context, int64) (*usecase.AccountOutput, error) {
			t.Fatal("usecase must not be reached for a malformed id")

			return nil, nil
		},
	}
	h := newTestHandler(uc)
	e := newTestEcho()

	rec := performJSON(e, http.MethodGet, "/api/users/:id", "", h.GetByID, "id", "not-a-number")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAccountHandler_Filter_PassesQueryParams(t *testing.T) {
	var captured *usecase.FilterInput
	uc := &stubUsecase{
		getByFilter: func(_ context.Context, input *usecase.FilterInput) ([]*usecase.AccountOutput, error) {
			captured = input

			return []*usecase.AccountOutput{{ID: 1, GivenName: "Jane"}}, nil
		},
	}
	h := newTestHandler(uc)
	e := newTestEcho()

	rec := performJSON(e, http.MethodGet, "/api/users/filter?name=Jan&nationalId=12345678", "", h.Filter)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)
	assert.Equal(t, "Jan", captured.Name)
	assert.Equal(t, "12345678", captured.NationalID)
	assert.Empty(t, captured.Surname)
	assert.Empty(t, captured.Email)
}

func TestAccountHandler_List_Empty(t *testing.T) {
	uc := &stubUsecase{
		getAll: func(context.Context) ([]*usecase.AccountOutput, error) {
			return nil, domainerrors.ErrNoAccountsFound
		},
	}
	h := newTestHandler(uc)
	e := newTestEcho()

	rec := performJSON(e, http.MethodGet, "/api/users", "", h.List)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NO_ACCOUNTS_FOUND")
}

func TestAccountHandler_Delete(t *testing.T) {
	var deletedID int64
	uc := &stubUsecase{
		delete: func(_ context.Context, id int64) error {
			deletedID = id

			return nil
		},
	}
	h := newTestHandler(uc)
	e := newTestEcho()

	rec := performJSON(e, http.MethodDelete, "/api/users/:id", "", h.Delete, "id", "7")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), deletedID)
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho()

	rec := performJSON(e, http.MethodGet, "/health", "", HealthCheck)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
