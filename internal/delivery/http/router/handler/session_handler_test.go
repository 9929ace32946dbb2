package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"healthvault/internal/domain/entity"
	mockUsecase "healthvault/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, target string, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", userID)

	return c, rec
}

func TestSessionHandler_ListSessions(t *testing.T) {
	uc := mockUsecase.NewMockSessionUsecase(t)
	h := NewSessionHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	userID := uuid.New()
	c, rec := newTestContext(t, "/auth/sessions", userID)

	uc.EXPECT().
		GetActiveSessions(c.Request().Context(), userID).
		Return([]*entity.SessionInfo{
			{
				ID:         uuid.New(),
				DeviceInfo: "Desktop - Linux - Firefox",
				ExpiresAt:  time.Now().Add(time.Hour),
			},
		}, nil)

	err := h.ListSessions(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Desktop - Linux - Firefox")
}

func TestSessionHandler_ListSessions_MissingIdentity(t *testing.T) {
	uc := mockUsecase.NewMockSessionUsecase(t)
	h := NewSessionHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/sessions", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	err := h.ListSessions(c)

	assert.Error(t, err)
}

func TestSessionHandler_GetActivity_ForwardsLimit(t *testing.T) {
	uc := mockUsecase.NewMockSessionUsecase(t)
	h := NewSessionHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	userID := uuid.New()
	c, rec := newTestContext(t, "/auth/activity?limit=5", userID)

	uc.EXPECT().
		GetActivity(c.Request().Context(), userID, 5).
		Return([]*entity.AuditEntry{
			{
				Action:    entity.ActionLogin,
				Status:    entity.StatusSuccess,
				IPAddress: "203.0.113.9",
				Timestamp: time.Now(),
			},
		}, nil)

	err := h.GetActivity(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"action":"login"`)
}

func TestSessionHandler_GetActivity_RejectsNonNumericLimit(t *testing.T) {
	uc := mockUsecase.NewMockSessionUsecase(t)
	h := NewSessionHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, _ := newTestContext(t, "/auth/activity?limit=ten", uuid.New())

	err := h.GetActivity(c)

	assert.Error(t, err)
}
