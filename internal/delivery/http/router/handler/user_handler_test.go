package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ecoconnect/internal/delivery/http/validator"
	"ecoconnect/internal/domain/entity"
	domainerrors "ecoconnect/internal/domain/errors"
	mockUsecase "ecoconnect/internal/mocks/usecase"
	"ecoconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestUserHandler_Register(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, discardLogger())

	userID := uuid.New()
	uc.EXPECT().
		Register(mock.Anything, mock.MatchedBy(func(input *usecase.RegisterInput) bool {
			return input.Username == "maria" && input.Role == "wastepicker"
		})).
		Return(&usecase.AuthOutput{
			User: &entity.User{
				ID:       userID,
				Username: "maria",
				Email:    "maria@example.com",
				Role:     entity.RoleWastepicker,
				IsActive: true,
			},
			AccessToken: "signed-token",
		}, nil)

	body := `{"username":"maria","email":"maria@example.com","password":"StrongPass123!","role":"wastepicker"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := newTestEcho().NewContext(req, rec)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])

	data := resp["data"].(map[string]any)
	assert.Equal(t, "signed-token", data["access_token"])

	user := data["user"].(map[string]any)
	assert.Equal(t, "maria", user["username"])
	assert.NotContains(t, user, "password_hash")
}

func TestUserHandler_RegisterValidation(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, discardLogger())

	// Missing email and short password
	body := `{"username":"x","password":"short"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := newTestEcho().NewContext(req, rec)

	err := h.Register(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
	uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestUserHandler_Login(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, discardLogger())

	uc.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Username: "maria", Password: "StrongPass123!"}).
		Return(&usecase.AuthOutput{
			User:        &entity.User{ID: uuid.New(), Username: "maria", Role: entity.RoleHousehold, IsActive: true},
			AccessToken: "signed-token",
		}, nil)

	body := `{"username":"maria","password":"StrongPass123!"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := newTestEcho().NewContext(req, rec)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserHandler_LoginFailurePropagates(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, discardLogger())

	uc.EXPECT().
		Login(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCredentials)

	body := `{"username":"maria","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := newTestEcho().NewContext(req, rec)

	err := h.Login(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
}
