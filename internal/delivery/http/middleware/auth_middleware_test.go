package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ecoconnect/internal/domain/service"
	mockService "ecoconnect/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func runAuthenticated(t *testing.T, m *AuthMiddleware, header string) (*httptest.ResponseRecorder, echo.Context, bool) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/pickups", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	reached := false
	err := m.Authenticate(func(c echo.Context) error {
		reached = true

		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)

	return rec, c, reached
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	userID := uuid.New()
	tokenSvc.EXPECT().
		ValidateToken("valid-token").
		Return(&service.Claims{UserID: userID, Role: "household"}, nil)

	rec, c, reached := runAuthenticated(t, m, "Bearer valid-token")
	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, c.Get(ContextUserID))
	assert.Equal(t, "household", c.Get(ContextRole))
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	rec, _, reached := runAuthenticated(t, m, "")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	tokenSvc.AssertNotCalled(t, "ValidateToken", mock.Anything)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	rec, _, reached := runAuthenticated(t, m, "Token abc")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	tokenSvc.EXPECT().
		ValidateToken("bad-token").
		Return(nil, assert.AnError)

	rec, _, reached := runAuthenticated(t, m, "Bearer bad-token")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_OptionalAuthenticate(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	// Anonymous request passes through without user info
	req := httptest.NewRequest(http.MethodPost, "/waste/identify", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	err := m.OptionalAuthenticate(func(c echo.Context) error {
		assert.Nil(t, c.Get(ContextUserID))

		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Valid token attaches the user
	userID := uuid.New()
	tokenSvc.EXPECT().
		ValidateToken("valid-token").
		Return(&service.Claims{UserID: userID, Role: "household"}, nil)

	req = httptest.NewRequest(http.MethodPost, "/waste/identify", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec = httptest.NewRecorder()
	c = echo.New().NewContext(req, rec)

	err = m.OptionalAuthenticate(func(c echo.Context) error {
		assert.Equal(t, userID, c.Get(ContextUserID))

		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	// Matching role passes
	req := httptest.NewRequest(http.MethodPost, "/pickups/x/accept", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.Set(ContextRole, "wastepicker")

	require.NoError(t, m.RequireRole("wastepicker")(next)(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Wrong role is forbidden
	rec = httptest.NewRecorder()
	c = echo.New().NewContext(req, rec)
	c.Set(ContextRole, "household")

	require.NoError(t, m.RequireRole("wastepicker")(next)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Missing role information is forbidden
	rec = httptest.NewRecorder()
	c = echo.New().NewContext(req, rec)

	require.NoError(t, m.RequireRole("wastepicker")(next)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
