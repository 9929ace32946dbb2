package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"healthvault/internal/delivery/http/response"
	domainerrors "healthvault/internal/domain/errors"
	"healthvault/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler holds dependencies for session management handlers.
type SessionHandler struct {
	uc     usecase.SessionUsecase
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{uc: uc, logger: logger}
}

type revokeSessionRequest struct {
	SessionID string `json:"session_id" validate:"required,uuid"`
}

// activityItem is the API-facing view of one audit entry.
type activityItem struct {
	Action     string    `json:"action"`
	Status     string    `json:"status"`
	IPAddress  string    `json:"ip_address"`
	DeviceInfo string    `json:"device_info"`
	Timestamp  time.Time `json:"timestamp"`
}

// ListSessions returns the caller's active sessions.
func (h *SessionHandler) ListSessions(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	sessions, err := h.uc.GetActiveSessions(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sessions, "")
}

// RevokeSession ends one of the caller's sessions.
func (h *SessionHandler) RevokeSession(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	var req revokeSessionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid revoke session input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid session id")
	}

	if err := h.uc.RevokeSession(c.Request().Context(), userID, sessionID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Session revoked")
}

// GetActivity returns the caller's recent security events.
func (h *SessionHandler) GetActivity(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("limit must be an integer")
		}
		limit = parsed
	}

	entries, err := h.uc.GetActivity(c.Request().Context(), userID, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]activityItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, activityItem{
			Action:     string(entry.Action),
			Status:     string(entry.Status),
			IPAddress:  entry.IPAddress,
			DeviceInfo: entry.DeviceInfo,
			Timestamp:  entry.Timestamp,
		})
	}

	return response.Success(c, http.StatusOK, items, "")
}
