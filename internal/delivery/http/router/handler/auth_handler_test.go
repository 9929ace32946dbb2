package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"healthvault/config"
	domainerrors "healthvault/internal/domain/errors"
	mockService "healthvault/internal/mocks/service"
	mockUsecase "healthvault/internal/mocks/usecase"
	"healthvault/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestHandler(t *testing.T) (*AuthHandler, *mockUsecase.MockAuthUsecase, *mockService.MockTokenService) {
	t.Helper()

	uc := mockUsecase.NewMockAuthUsecase(t)
	tokenSvc := mockService.NewMockTokenService(t)
	h := NewAuthHandler(uc, tokenSvc, &config.Config{Auth: &config.AuthConfig{}}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return h, uc, tokenSvc
}

func refreshCookieFrom(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == refreshCookieName {
			return cookie
		}
	}

	t.Fatal("refresh_token cookie not set on the response")

	return nil
}

func TestAuthHandler_Refresh_MissingToken(t *testing.T) {
	h, _, _ := newAuthTestHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	err := h.Refresh(c)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
	assert.Equal(t, "NO_TOKEN", appErr.ErrorCode())
}

func TestAuthHandler_Refresh_RotatesCookie(t *testing.T) {
	h, uc, tokenSvc := newAuthTestHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: refreshCookieName, Value: "old_refresh"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	uc.EXPECT().
		Refresh(c.Request().Context(), mock.MatchedBy(func(input usecase.RefreshInput) bool {
			return input.RefreshToken == "old_refresh"
		})).
		Return(&usecase.RefreshOutput{
			AccessToken:  "new_access",
			RefreshToken: "new_refresh",
		}, nil)
	tokenSvc.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)

	err := h.Refresh(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "new_access")

	cookie := refreshCookieFrom(t, rec)
	assert.Equal(t, "new_refresh", cookie.Value)
	assert.Equal(t, "/auth", cookie.Path)
	assert.Equal(t, 604800, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
}

func TestAuthHandler_Refresh_BodyFallback(t *testing.T) {
	h, uc, tokenSvc := newAuthTestHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", strings.NewReader(`{"refresh_token":"body_refresh"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	uc.EXPECT().
		Refresh(c.Request().Context(), mock.MatchedBy(func(input usecase.RefreshInput) bool {
			return input.RefreshToken == "body_refresh"
		})).
		Return(&usecase.RefreshOutput{
			AccessToken:  "new_access",
			RefreshToken: "new_refresh",
		}, nil)
	tokenSvc.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)

	err := h.Refresh(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "new_refresh", refreshCookieFrom(t, rec).Value)
}

func TestAuthHandler_Refresh_FailureClearsCookie(t *testing.T) {
	h, uc, _ := newAuthTestHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: refreshCookieName, Value: "revoked_refresh"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	uc.EXPECT().
		Refresh(c.Request().Context(), mock.MatchedBy(func(input usecase.RefreshInput) bool {
			return input.RefreshToken == "revoked_refresh"
		})).
		Return(nil, domainerrors.ErrInvalidToken)

	err := h.Refresh(c)

	require.Error(t, err)

	cookie := refreshCookieFrom(t, rec)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	h, uc, _ := newAuthTestHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: refreshCookieName, Value: "current_refresh"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	uc.EXPECT().
		Logout(c.Request().Context(), mock.MatchedBy(func(input usecase.LogoutInput) bool {
			return input.RefreshToken == "current_refresh"
		})).
		Return(nil)

	err := h.Logout(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := refreshCookieFrom(t, rec)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
	assert.Equal(t, "/auth", cookie.Path)
}

func TestAuthHandler_Logout_WithoutToken(t *testing.T) {
	h, _, _ := newAuthTestHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Logout(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, -1, refreshCookieFrom(t, rec).MaxAge)
}
