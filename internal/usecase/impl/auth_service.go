// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"healthvault/config"
	deliverycontext "healthvault/internal/delivery/context"
	"healthvault/internal/domain/entity"
	domainerrors "healthvault/internal/domain/errors"
	"healthvault/internal/domain/repository"
	"healthvault/internal/domain/service"
	"healthvault/internal/usecase"
	"healthvault/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	otpLength        = 6
	secureTokenBytes = 32
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	sessionRepo       repository.SessionRepository
	auditRepo         repository.AuditRepository
	profileRepo       repository.ProfileRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	mailer            service.Mailer
	otpTTL            time.Duration
	verifyTTL         time.Duration
	resetTTL          time.Duration
	maxFailedLogins   int
	failedLoginWindow time.Duration
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	SessionRepo  repository.SessionRepository
	AuditRepo    repository.AuditRepository
	ProfileRepo  repository.ProfileRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Mailer       service.Mailer
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	authCfg := params.Config.Auth

	return &authService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		sessionRepo:       params.SessionRepo,
		auditRepo:         params.AuditRepo,
		profileRepo:       params.ProfileRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		mailer:            params.Mailer,
		otpTTL:            authCfg.OTPTTL,
		verifyTTL:         authCfg.VerifyTTL,
		resetTTL:          authCfg.ResetTTL,
		maxFailedLogins:   authCfg.MaxFailedLogins,
		failedLoginWindow: authCfg.FailedLoginWindow,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// audit appends a security event. Audit failures are logged but never fail the
// operation that triggered them.
func (srv *authService) audit(ctx context.Context, entry *entity.AuditEntry) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	if err := srv.auditRepo.Create(ctx, entry); err != nil {
		srv.log(ctx).Error("Failed to write audit entry",
			slog.String("action", string(entry.Action)),
			slog.String("status", string(entry.Status)),
			slog.Any("error", err))
	}
}

func auditEntry(action entity.AuditAction, status entity.AuditStatus, userID *uuid.UUID, email string, meta usecase.RequestMeta, errMsg string) *entity.AuditEntry {
	return &entity.AuditEntry{
		UserID:       userID,
		Email:        email,
		Action:       action,
		Status:       status,
		IPAddress:    meta.IPAddress,
		UserAgent:    meta.UserAgent,
		DeviceInfo:   meta.DeviceInfo,
		ErrorMessage: errMsg,
	}
}

// SendOTP issues a fresh registration code for the email, invalidating any
// earlier codes for the same address.
func (srv *authService) SendOTP(ctx context.Context, input usecase.SendOTPInput) error {
	email := util.NormalizeEmail(input.Email)
	srv.log(ctx).Debug("Issuing registration OTP", slog.String("email", email))

	code, err := util.GenerateNumericCode(otpLength)
	if err != nil {
		return errors.Wrap(err, "failed to generate OTP")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		codeRepo := repoFactory.CodeRepo()

		if err := codeRepo.DeleteByEmail(ctx, entity.PurposeOTP, email); err != nil {
			return errors.Wrap(err, "failed to invalidate previous OTPs")
		}

		return codeRepo.Create(ctx, &entity.OneTimeCode{
			Email:     email,
			Code:      code,
			Purpose:   entity.PurposeOTP,
			ExpiresAt: time.Now().Add(srv.otpTTL),
		})
	})
	if err != nil {
		srv.log(ctx).Error("Failed to store OTP", slog.String("email", email), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute send OTP transaction")
	}

	if err := srv.mailer.SendOTP(ctx, email, code); err != nil {
		srv.log(ctx).Error("Failed to send OTP email", slog.String("email", email), slog.Any("error", err))

		return errors.Wrap(err, "failed to send OTP email")
	}

	return nil
}

// VerifyOTP registers an account through the OTP flow. A matching code proves
// address ownership, so the account is created already verified and its first
// session is issued immediately.
func (srv *authService) VerifyOTP(ctx context.Context, input usecase.VerifyOTPInput) (*usecase.VerifyOTPOutput, error) {
	email := util.NormalizeEmail(input.Email)

	role, ok := entity.RoleFromString(input.Role)
	if !ok || role == entity.RoleAdmin {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid role")
	}

	srv.log(ctx).Info("Starting OTP registration", slog.Any("role", role), slog.String("email", email))

	// Hash password outside the transaction (bcrypt is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during OTP registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during OTP registration")
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		codeRepo := repoFactory.CodeRepo()

		otp, err := codeRepo.FindByEmailAndCode(ctx, entity.PurposeOTP, email, input.Code)
		if err != nil {
			if errors.Is(err, repository.ErrCodeNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidOrExpiredCode, "OTP not found")
			}

			return errors.Wrap(err, "failed to find OTP")
		}
		if otp.IsExpired(time.Now()) {
			return errors.Wrap(domainerrors.ErrInvalidOrExpiredCode, "OTP expired")
		}

		newUser := &entity.User{
			Email:         email,
			PasswordHash:  hashedPassword,
			FullName:      input.FullName,
			Role:          role,
			EmailVerified: true,
			IsActive:      true,
		}

		// The unique constraint on email is the enforcement point for
		// concurrent registrations.
		if err := userRepo.Create(ctx, newUser); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return errors.Wrap(domainerrors.ErrDuplicateUser, "email already registered")
			}

			return errors.Wrap(err, "failed to create user during OTP registration")
		}

		if err := codeRepo.Consume(ctx, otp.ID); err != nil {
			return errors.Wrap(err, "failed to consume OTP")
		}

		if err := repoFactory.ProfileRepo().EnsureProfile(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to provision profile during OTP registration")
		}

		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("OTP registration failed", slog.String("email", email), slog.Any("error", err))
		if errors.Is(err, domainerrors.ErrInvalidOrExpiredCode) {
			srv.audit(ctx, auditEntry(entity.ActionRegister, entity.StatusFailure, nil, email, input.Meta, "invalid or expired OTP"))
		}

		return nil, err
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(registeredUser.ID, registeredUser.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens after OTP registration")
	}

	now := time.Now()
	session := &entity.Session{
		UserID:     registeredUser.ID,
		TokenHash:  srv.tokenService.HashToken(refreshToken),
		ExpiresAt:  now.Add(srv.tokenService.GetRefreshTokenDuration()),
		DeviceInfo: input.Meta.DeviceInfo,
		LastUsedAt: now,
	}
	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to create session after OTP registration")
	}

	srv.audit(ctx, auditEntry(entity.ActionRegister, entity.StatusSuccess, &registeredUser.ID, email, input.Meta, ""))

	// Welcome mail is best-effort.
	if err := srv.mailer.SendWelcome(ctx, email, registeredUser.FullName); err != nil {
		srv.log(ctx).Error("Failed to send welcome email", slog.String("email", email), slog.Any("error", err))
	}

	srv.log(ctx).Debug("OTP registration completed", slog.Any("userID", registeredUser.ID))

	return &usecase.VerifyOTPOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         registeredUser,
	}, nil
}

// Register creates an unverified account. Ownership of the address is proven
// afterwards through the emailed verification code.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email := util.NormalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	// Hash password outside the transaction (bcrypt is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	verifyCode, err := util.GenerateSecureToken(secureTokenBytes)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate verification code")
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if _, err := userRepo.FindByEmail(ctx, email); err == nil {
			return errors.Wrap(domainerrors.ErrDuplicateUser, "email already registered")
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing user")
		}

		newUser := &entity.User{
			Email:        email,
			PasswordHash: hashedPassword,
			FullName:     input.FullName,
			Role:         entity.RolePatient,
			IsActive:     true,
		}

		// Two concurrent registrations can both pass the existence check.
		// The unique constraint on email decides the loser.
		if err := userRepo.Create(ctx, newUser); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return errors.Wrap(domainerrors.ErrDuplicateUser, "email already registered")
			}

			return errors.Wrap(err, "failed to create user during registration")
		}

		if err := repoFactory.CodeRepo().Create(ctx, &entity.OneTimeCode{
			UserID:    newUser.ID,
			Email:     email,
			Code:      verifyCode,
			Purpose:   entity.PurposeEmailVerify,
			ExpiresAt: time.Now().Add(srv.verifyTTL),
		}); err != nil {
			return errors.Wrap(err, "failed to create verification code during registration")
		}

		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	// The audit entry is written regardless of whether delivery succeeds.
	srv.audit(ctx, auditEntry(entity.ActionRegister, entity.StatusSuccess, &registeredUser.ID, email, input.Meta, ""))

	// Delivery failure does not undo the registration. The account exists
	// unverified and the user can request a resend.
	emailSent := true
	if err := srv.mailer.SendVerification(ctx, email, verifyCode); err != nil {
		srv.log(ctx).Error("Failed to send verification email", slog.String("email", email), slog.Any("error", err))
		emailSent = false
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser, EmailSent: emailSent}, nil
}

// VerifyEmail confirms ownership of the registered address and activates login.
func (srv *authService) VerifyEmail(ctx context.Context, input usecase.VerifyEmailInput) error {
	var verifiedUser *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		codeRepo := repoFactory.CodeRepo()

		code, err := codeRepo.FindByCode(ctx, entity.PurposeEmailVerify, input.Code)
		if err != nil {
			if errors.Is(err, repository.ErrCodeNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidOrExpiredCode, "verification code not found")
			}

			return errors.Wrap(err, "failed to find verification code")
		}
		if code.IsExpired(time.Now()) {
			return errors.Wrap(domainerrors.ErrInvalidOrExpiredCode, "verification code expired")
		}

		user, err := userRepo.FindByID(ctx, code.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user for verification code")
		}

		if user.EmailVerified {
			if err := codeRepo.Consume(ctx, code.ID); err != nil {
				return errors.Wrap(err, "failed to consume stale verification code")
			}

			return errors.Wrap(domainerrors.ErrAlreadyVerified, "email already verified")
		}

		user.EmailVerified = true
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to mark email verified")
		}

		if err := codeRepo.Consume(ctx, code.ID); err != nil {
			return errors.Wrap(err, "failed to consume verification code")
		}

		verifiedUser = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Email verification failed", slog.Any("error", err))

		return err
	}

	srv.audit(ctx, auditEntry(entity.ActionEmailVerify, entity.StatusSuccess, &verifiedUser.ID, verifiedUser.Email, usecase.RequestMeta{}, ""))

	if err := srv.mailer.SendWelcome(ctx, verifiedUser.Email, verifiedUser.FullName); err != nil {
		srv.log(ctx).Error("Failed to send welcome email", slog.String("email", verifiedUser.Email), slog.Any("error", err))
	}

	return nil
}

// ResendVerification reissues a verification code. Unknown addresses are
// silently accepted so the endpoint cannot be used to probe for accounts.
func (srv *authService) ResendVerification(ctx context.Context, input usecase.ResendVerificationInput) error {
	email := util.NormalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Debug("Resend verification for unknown email", slog.String("email", email))

			return nil
		}

		return errors.Wrap(err, "failed to find user for resend verification")
	}

	if user.EmailVerified {
		return errors.Wrap(domainerrors.ErrAlreadyVerified, "email already verified")
	}

	verifyCode, err := util.GenerateSecureToken(secureTokenBytes)
	if err != nil {
		return errors.Wrap(err, "failed to generate verification code")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		codeRepo := repoFactory.CodeRepo()

		if err := codeRepo.DeleteByUserID(ctx, entity.PurposeEmailVerify, user.ID); err != nil {
			return errors.Wrap(err, "failed to invalidate previous verification codes")
		}

		return codeRepo.Create(ctx, &entity.OneTimeCode{
			UserID:    user.ID,
			Email:     email,
			Code:      verifyCode,
			Purpose:   entity.PurposeEmailVerify,
			ExpiresAt: time.Now().Add(srv.verifyTTL),
		})
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute resend verification transaction")
	}

	if err := srv.mailer.SendVerification(ctx, email, verifyCode); err != nil {
		srv.log(ctx).Error("Failed to send verification email", slog.String("email", email), slog.Any("error", err))

		return errors.Wrap(err, "failed to send verification email")
	}

	return nil
}

// Login orchestrates the user login process. Checks run in a fixed order and
// every rejection is audited.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := util.NormalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	// 1. Throttle on recent failed attempts. The rejection itself is audited
	// as a failed login action, not a failed attempt, so it does not extend
	// the throttle window.
	failures, err := srv.auditRepo.CountFailedLogins(ctx, email, time.Now().Add(-srv.failedLoginWindow))
	if err != nil {
		return nil, errors.Wrap(err, "failed to count failed logins")
	}
	if failures >= srv.maxFailedLogins {
		srv.log(ctx).Warn("Login throttled", slog.String("email", email), slog.Int("failures", failures))
		srv.audit(ctx, auditEntry(entity.ActionLogin, entity.StatusFailure, nil, email, input.Meta, "too many failed attempts"))

		return nil, errors.Wrap(domainerrors.ErrTooManyAttempts, "login throttled")
	}

	// 2. Look up the account.
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.audit(ctx, auditEntry(entity.ActionFailedLogin, entity.StatusFailure, nil, email, input.Meta, "unknown email"))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user during login")
	}

	// 3. Check password outside transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.audit(ctx, auditEntry(entity.ActionFailedLogin, entity.StatusFailure, &user.ID, email, input.Meta, "password mismatch"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	// 4. Email ownership must be confirmed before first login.
	if !user.EmailVerified {
		srv.audit(ctx, auditEntry(entity.ActionLogin, entity.StatusFailure, &user.ID, email, input.Meta, "email not verified"))

		return nil, errors.Wrap(domainerrors.ErrEmailNotVerified, "login rejected")
	}

	// 5. Deactivated accounts keep their data but cannot sign in.
	if !user.IsActive {
		srv.audit(ctx, auditEntry(entity.ActionLogin, entity.StatusFailure, &user.ID, email, input.Meta, "account deactivated"))

		return nil, errors.Wrap(domainerrors.ErrAccountDeactivated, "login rejected")
	}

	// Lazy-create the role profile for accounts predating provisioning.
	if err := srv.profileRepo.EnsureProfile(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to ensure profile during login")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	now := time.Now()
	session := &entity.Session{
		UserID:     user.ID,
		TokenHash:  srv.tokenService.HashToken(refreshToken),
		ExpiresAt:  now.Add(srv.tokenService.GetRefreshTokenDuration()),
		DeviceInfo: input.Meta.DeviceInfo,
		LastUsedAt: now,
	}
	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to create session during login")
	}

	srv.audit(ctx, auditEntry(entity.ActionLogin, entity.StatusSuccess, &user.ID, email, input.Meta, ""))
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// Refresh rotates a refresh token: the presented token's session is revoked
// and a new session is created. A revoked token presented here is treated as
// a replay and rejected.
func (srv *authService) Refresh(ctx context.Context, input usecase.RefreshInput) (*usecase.RefreshOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		srv.audit(ctx, auditEntry(entity.ActionTokenRefresh, entity.StatusFailure, nil, "", input.Meta, "invalid refresh token"))

		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "invalid refresh token")
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)

	var (
		accessToken     string
		newRefreshToken string
		userID          = claims.UserID
		userEmail       string
	)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		sessionRepo := repoFactory.SessionRepo()

		session, err := sessionRepo.FindByTokenHash(ctx, tokenHash)
		if err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidToken, "session not found")
			}

			return errors.Wrap(err, "failed to find session")
		}

		now := time.Now()

		if session.Revoked {
			return errors.Wrap(domainerrors.ErrInvalidToken, "revoked refresh token replayed")
		}
		if !session.IsValid(now) {
			return errors.Wrap(domainerrors.ErrInvalidToken, "session expired")
		}

		// Record the use on the presented session before it is rotated out.
		if err := sessionRepo.Touch(ctx, session.ID, now); err != nil {
			return errors.Wrap(err, "failed to record session use")
		}

		user, err := userRepo.FindByID(ctx, session.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user for session")
		}
		if !user.IsActive {
			return errors.Wrap(domainerrors.ErrAccountDeactivated, "refresh rejected")
		}
		userEmail = user.Email

		accessToken, newRefreshToken, err = srv.tokenService.GenerateTokens(user.ID, user.Role.String())
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens during refresh")
		}

		if err := sessionRepo.Revoke(ctx, session.ID); err != nil {
			return errors.Wrap(err, "failed to revoke rotated session")
		}

		deviceInfo := input.Meta.DeviceInfo
		if deviceInfo == "" {
			deviceInfo = session.DeviceInfo
		}

		return sessionRepo.Create(ctx, &entity.Session{
			UserID:     user.ID,
			TokenHash:  srv.tokenService.HashToken(newRefreshToken),
			ExpiresAt:  now.Add(srv.tokenService.GetRefreshTokenDuration()),
			DeviceInfo: deviceInfo,
			LastUsedAt: now,
		})
	})
	if err != nil {
		srv.log(ctx).Warn("Token refresh failed", slog.Any("userID", userID), slog.Any("error", err))
		srv.audit(ctx, auditEntry(entity.ActionTokenRefresh, entity.StatusFailure, &userID, userEmail, input.Meta, "refresh rejected"))

		return nil, err
	}

	srv.audit(ctx, auditEntry(entity.ActionTokenRefresh, entity.StatusSuccess, &userID, userEmail, input.Meta, ""))

	return &usecase.RefreshOutput{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// Logout revokes the session behind the presented refresh token. It is
// idempotent: missing or already revoked sessions still log out cleanly.
func (srv *authService) Logout(ctx context.Context, input usecase.LogoutInput) error {
	var userID *uuid.UUID

	if claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken); err != nil {
		// An undecodable token still clears the client session, but the
		// attempt is recorded.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
		srv.audit(ctx, auditEntry(entity.ActionLogout, entity.StatusFailure, nil, "", input.Meta, "invalid refresh token"))

		return nil
	} else {
		userID = &claims.UserID
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)

	session, err := srv.sessionRepo.FindByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			srv.audit(ctx, auditEntry(entity.ActionLogout, entity.StatusSuccess, userID, "", input.Meta, ""))

			return nil
		}

		return errors.Wrap(err, "failed to find session during logout")
	}

	if !session.Revoked {
		if err := srv.sessionRepo.Revoke(ctx, session.ID); err != nil {
			return errors.Wrap(err, "failed to revoke session during logout")
		}
	}

	srv.audit(ctx, auditEntry(entity.ActionLogout, entity.StatusSuccess, &session.UserID, "", input.Meta, ""))
	srv.log(ctx).Debug("User logged out", slog.Any("userID", session.UserID))

	return nil
}

// ForgotPassword starts a password reset. Unknown addresses are silently
// accepted so the endpoint cannot be used to probe for accounts.
func (srv *authService) ForgotPassword(ctx context.Context, input usecase.ForgotPasswordInput) error {
	email := util.NormalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Debug("Password reset for unknown email", slog.String("email", email))

			return nil
		}

		return errors.Wrap(err, "failed to find user for password reset")
	}

	resetCode, err := util.GenerateSecureToken(secureTokenBytes)
	if err != nil {
		return errors.Wrap(err, "failed to generate reset code")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		codeRepo := repoFactory.CodeRepo()

		if err := codeRepo.DeleteByUserID(ctx, entity.PurposePasswordReset, user.ID); err != nil {
			return errors.Wrap(err, "failed to invalidate previous reset codes")
		}

		return codeRepo.Create(ctx, &entity.OneTimeCode{
			UserID:    user.ID,
			Email:     email,
			Code:      resetCode,
			Purpose:   entity.PurposePasswordReset,
			ExpiresAt: time.Now().Add(srv.resetTTL),
		})
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute forgot password transaction")
	}

	if err := srv.mailer.SendPasswordReset(ctx, email, resetCode); err != nil {
		srv.log(ctx).Error("Failed to send reset email", slog.String("email", email), slog.Any("error", err))

		return errors.Wrap(err, "failed to send reset email")
	}

	return nil
}

// ResetPassword completes a password reset. All of the user's sessions are
// revoked so stolen refresh tokens die with the old password.
func (srv *authService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) error {
	var resetUser *entity.User

	// Resolve the code first so the bcrypt work happens outside the
	// transaction that applies the change.
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		code, err := repoFactory.CodeRepo().FindByCode(ctx, entity.PurposePasswordReset, input.Code)
		if err != nil {
			if errors.Is(err, repository.ErrCodeNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidOrExpiredCode, "reset code not found")
			}

			return errors.Wrap(err, "failed to find reset code")
		}
		if code.IsExpired(time.Now()) {
			return errors.Wrap(domainerrors.ErrInvalidOrExpiredCode, "reset code expired")
		}

		resetUser, err = repoFactory.UserRepo().FindByID(ctx, code.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user for reset code")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Password reset failed", slog.Any("error", err))

		return err
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash new password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		codeRepo := repoFactory.CodeRepo()
		sessionRepo := repoFactory.SessionRepo()

		// Re-resolve the code inside the applying transaction so a
		// concurrent reset with the same code loses.
		code, err := codeRepo.FindByCode(ctx, entity.PurposePasswordReset, input.Code)
		if err != nil {
			if errors.Is(err, repository.ErrCodeNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidOrExpiredCode, "reset code already used")
			}

			return errors.Wrap(err, "failed to find reset code")
		}

		resetUser.PasswordHash = hashedPassword
		if err := userRepo.Update(ctx, resetUser); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		if err := codeRepo.Consume(ctx, code.ID); err != nil {
			return errors.Wrap(err, "failed to consume reset code")
		}

		if err := sessionRepo.RevokeAllByUserID(ctx, resetUser.ID); err != nil {
			return errors.Wrap(err, "failed to revoke sessions after reset")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Password reset failed", slog.Any("userID", resetUser.ID), slog.Any("error", err))

		return err
	}

	srv.audit(ctx, auditEntry(entity.ActionPasswordReset, entity.StatusSuccess, &resetUser.ID, resetUser.Email, input.Meta, ""))
	srv.log(ctx).Info("Password reset completed", slog.Any("userID", resetUser.ID))

	return nil
}

// GetProfile returns the authenticated user's account record.
func (srv *authService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "profile not found")
		}

		return nil, errors.Wrap(err, "failed to find user profile")
	}

	return user, nil
}
