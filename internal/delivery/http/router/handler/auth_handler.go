// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"healthvault/config"
	"healthvault/internal/delivery/http/response"
	domainerrors "healthvault/internal/domain/errors"
	"healthvault/internal/domain/service"
	"healthvault/internal/usecase"
	"healthvault/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const refreshCookieName = "refresh_token"

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc           usecase.AuthUsecase
	tokenSvc     service.TokenService
	cookieSecure bool
	logger       *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, tokenSvc service.TokenService, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:           uc,
		tokenSvc:     tokenSvc,
		cookieSecure: cfg.Auth.CookieSecure,
		logger:       logger,
	}
}

// --- Request DTOs ---

type sendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type verifyOTPRequest struct {
	Email    string `json:"email" validate:"required,email"`
	OTP      string `json:"otp" validate:"required,len=6,numeric"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	FullName string `json:"full_name" validate:"required,min=2,max=100"`
	Role     string `json:"role" validate:"omitempty,oneof=patient doctor"`
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	FullName string `json:"full_name" validate:"required,min=2,max=100"`
}

type verifyEmailRequest struct {
	Token string `json:"token" validate:"required"`
}

type resendVerificationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=72"`
}

// requestMeta builds the audit context from the incoming request.
func requestMeta(c echo.Context) usecase.RequestMeta {
	userAgent := c.Request().UserAgent()

	return usecase.RequestMeta{
		IPAddress:  c.RealIP(),
		UserAgent:  userAgent,
		DeviceInfo: util.ParseDeviceInfo(userAgent),
	}
}

// SendOTP handles the registration code request.
func (h *AuthHandler) SendOTP(c echo.Context) error {
	var req sendOTPRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid send OTP input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.SendOTP(c.Request().Context(), usecase.SendOTPInput{Email: req.Email}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Verification code sent")
}

// VerifyOTP handles registration through the OTP flow. The account is created
// verified and logged in straight away.
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req verifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verify OTP input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.VerifyOTP(c.Request().Context(), usecase.VerifyOTPInput{
		Email:    req.Email,
		Code:     req.OTP,
		Password: req.Password,
		FullName: req.FullName,
		Role:     req.Role,
		Meta:     requestMeta(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setRefreshCookie(c, output.RefreshToken)

	return response.Success(c, http.StatusCreated, map[string]any{
		"access_token": output.AccessToken,
		"user":         output.User.Sanitized(),
	}, "User registered successfully")
}

// Register handles the direct registration request. The account starts
// unverified and a verification code is emailed.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Meta:     requestMeta(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	message := "User registered, verification email sent"
	if !output.EmailSent {
		message = "User registered, but the verification email could not be sent"
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"email": output.User.Email,
	}, message)
}

// VerifyEmail handles the email ownership confirmation request.
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	var req verifyEmailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.VerifyEmail(c.Request().Context(), usecase.VerifyEmailInput{Code: req.Token}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Email verified")
}

// ResendVerification handles reissuing the verification code.
func (h *AuthHandler) ResendVerification(c echo.Context) error {
	var req resendVerificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid resend input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ResendVerification(c.Request().Context(), usecase.ResendVerificationInput{Email: req.Email}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Verification code sent")
}

// Login handles the user login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Meta:     requestMeta(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setRefreshCookie(c, output.RefreshToken)

	return response.Success(c, http.StatusOK, map[string]any{
		"access_token": output.AccessToken,
		"user":         output.User.Sanitized(),
	}, "Login successful")
}

// Refresh handles the token rotation request. The refresh token is read from
// the cookie, with a JSON body fallback for non-browser clients.
func (h *AuthHandler) Refresh(c echo.Context) error {
	refreshToken := h.refreshTokenFromRequest(c)
	if refreshToken == "" {
		return domainerrors.ErrNoToken.WithDetails("refresh token is missing")
	}

	output, err := h.uc.Refresh(c.Request().Context(), usecase.RefreshInput{
		RefreshToken: refreshToken,
		Meta:         requestMeta(c),
	})
	if err != nil {
		h.clearRefreshCookie(c)

		return errors.WithStack(err)
	}

	h.setRefreshCookie(c, output.RefreshToken)

	return response.Success(c, http.StatusOK, map[string]any{
		"access_token": output.AccessToken,
	}, "Token refreshed successfully")
}

// Logout handles the user logout request. Logout always clears the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	refreshToken := h.refreshTokenFromRequest(c)
	h.clearRefreshCookie(c)

	if refreshToken == "" {
		return response.Success(c, http.StatusOK, nil, "Logout successful")
	}

	if err := h.uc.Logout(c.Request().Context(), usecase.LogoutInput{
		RefreshToken: refreshToken,
		Meta:         requestMeta(c),
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// ForgotPassword handles the password reset request.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid forgot password input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ForgotPassword(c.Request().Context(), usecase.ForgotPasswordInput{Email: req.Email}); err != nil {
		return errors.WithStack(err)
	}

	// The same response is returned whether or not the account exists.
	return response.Success(c, http.StatusOK, nil, "If the account exists, a reset code has been sent")
}

// ResetPassword handles the password reset completion request.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset password input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ResetPassword(c.Request().Context(), usecase.ResetPasswordInput{
		Code:        req.Token,
		NewPassword: req.NewPassword,
		Meta:        requestMeta(c),
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password reset successfully")
}

// GetProfile returns the authenticated user's account record.
func (h *AuthHandler) GetProfile(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user.Sanitized(), "")
}

// --- Cookie helpers ---

func (h *AuthHandler) setRefreshCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		Path:     "/auth",
		MaxAge:   int(h.tokenSvc.GetRefreshTokenDuration() / time.Second),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *AuthHandler) clearRefreshCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/auth",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *AuthHandler) refreshTokenFromRequest(c echo.Context) string {
	if cookie, err := c.Cookie(refreshCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return ""
	}

	return req.RefreshToken
}
