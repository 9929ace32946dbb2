package impl

import (
	"context"
	"testing"
	"time"

	"healthvault/internal/domain/entity"
	domainerrors "healthvault/internal/domain/errors"
	"healthvault/internal/domain/repository"
	"healthvault/internal/domain/service"
	mockRepo "healthvault/internal/mocks/repository"
	mockSvc "healthvault/internal/mocks/service"
	"healthvault/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	sessionRepo  *mockRepo.MockSessionRepository
	auditRepo    *mockRepo.MockAuditRepository
	profileRepo  *mockRepo.MockProfileRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	mailer       *mockSvc.MockMailer
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	auditRepo := mockRepo.NewMockAuditRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	mailer := mockSvc.NewMockMailer(t)

	svc := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		SessionRepo:  sessionRepo,
		AuditRepo:    auditRepo,
		ProfileRepo:  profileRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Mailer:       mailer,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      svc,
		txManager:    txManager,
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		auditRepo:    auditRepo,
		profileRepo:  profileRepo,
		hasher:       hasher,
		tokenService: tokenService,
		mailer:       mailer,
	}
}

// expectTx wires one transaction round trip through a factory configured by setup.
// The inner function's error propagates unchanged, matching the real manager.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}

func TestAuthService_SendOTP_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	var issued string
	expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		codeRepo := mockRepo.NewMockCodeRepository(t)
		factory.EXPECT().CodeRepo().Return(codeRepo)

		codeRepo.EXPECT().
			DeleteByEmail(ctx, entity.PurposeOTP, "new@example.com").
			Return(nil)

		codeRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.OneTimeCode")).
			Run(func(ctx context.Context, code *entity.OneTimeCode) {
				issued = code.Code
			}).
			Return(nil)
	})

	fx.mailer.EXPECT().
		SendOTP(ctx, "new@example.com", mock.AnythingOfType("string")).
		Return(nil)

	err := fx.service.SendOTP(ctx, usecase.SendOTPInput{Email: "New@Example.com"})

	require.NoError(t, err)
	assert.Len(t, issued, 6)
}

func TestAuthService_SendOTP_MailFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		codeRepo := mockRepo.NewMockCodeRepository(t)
		factory.EXPECT().CodeRepo().Return(codeRepo)

		codeRepo.EXPECT().DeleteByEmail(ctx, entity.PurposeOTP, "new@example.com").Return(nil)
		codeRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.OneTimeCode")).Return(nil)
	})

	fx.mailer.EXPECT().
		SendOTP(ctx, "new@example.com", mock.AnythingOfType("string")).
		Return(errors.New("smtp unreachable"))

	err := fx.service.SendOTP(ctx, usecase.SendOTPInput{Email: "new@example.com"})

	assert.Error(t, err)
}

func TestAuthService_VerifyOTP_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := usecase.VerifyOTPInput{
		Email:    "New@Example.com",
		Code:     "123456",
		Password: "Password123!",
		FullName: "Test User",
		Role:     "patient",
		Meta:     usecase.RequestMeta{DeviceInfo: "Desktop - Linux - Chrome"},
	}
	otpID := uuid.New()
	userID := uuid.New()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		codeRepo := mockRepo.NewMockCodeRepository(t)
		profileRepo := mockRepo.NewMockProfileRepository(t)

		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().CodeRepo().Return(codeRepo)
		factory.EXPECT().ProfileRepo().Return(profileRepo)

		codeRepo.EXPECT().
			FindByEmailAndCode(ctx, entity.PurposeOTP, "new@example.com", "123456").
			Return(&entity.OneTimeCode{
				ID:        otpID,
				Email:     "new@example.com",
				Code:      "123456",
				Purpose:   entity.PurposeOTP,
				ExpiresAt: time.Now().Add(time.Minute),
			}, nil)

		userRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, user *entity.User) {
				user.ID = userID
			}).
			Return(nil)

		codeRepo.EXPECT().Consume(ctx, otpID).Return(nil)
		profileRepo.EXPECT().EnsureProfile(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	})

	fx.tokenService.EXPECT().GenerateTokens(userID, "patient").Return("access", "refresh", nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh_hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)

	fx.sessionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(ctx context.Context, session *entity.Session) {
			assert.Equal(t, userID, session.UserID)
			assert.Equal(t, "refresh_hash", session.TokenHash)
			assert.Equal(t, "Desktop - Linux - Chrome", session.DeviceInfo)
		}).
		Return(nil)

	fx.auditRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AuditEntry")).
		Run(func(ctx context.Context, entry *entity.AuditEntry) {
			assert.Equal(t, entity.ActionRegister, entry.Action)
			assert.Equal(t, entity.StatusSuccess, entry.Status)
		}).
		Return(nil)

	fx.mailer.EXPECT().SendWelcome(ctx, "new@example.com", "Test User").Return(nil)

	output, err := fx.service.VerifyOTP(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, "new@example.com", output.User.Email)
	assert.Equal(t, entity.RolePatient, output.User.Role)
	// The OTP proved address ownership, so the account starts verified.
	assert.True(t, output.User.EmailVerified)
	assert.True(t, output.User.IsActive)
}

func TestAuthService_VerifyOTP_InvalidCode(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("Password123!").Return("hashed_password", nil)

	expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		codeRepo := mockRepo.NewMockCodeRepository(t)

		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().CodeRepo().Return(codeRepo)

		codeRepo.EXPECT().
			FindByEmailAndCode(ctx, entity.PurposeOTP, "new@example.com", "000000").
			Return(nil, repository.ErrCodeNotFound)
	})

	fx.auditRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AuditEntry")).
		Run(func(ctx context.Context, entry *entity.AuditEntry) {
			assert.Equal(t, entity.ActionRegister, entry.Action)
			assert.Equal(t, entity.StatusFailure, entry.Status)
		}).
		Return(nil)

	output, err := fx.service.VerifyOTP(ctx, usecase.VerifyOTPInput{
		Email:    "new@example.com",
		Code:     "000000",
		Password: "Password123!",
		FullName: "Test User",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOrExpiredCode))
}

func TestAuthService_VerifyOTP_ExpiredCode(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("Password123!").Return("hashed_password", nil)

	expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		codeRepo := mockRepo.NewMockCodeRepository(t)

		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().CodeRepo().Return(codeRepo)

		codeRepo.EXPECT().
			FindByEmailAndCode(ctx, entity.PurposeOTP, "new@example.com", "123456").
			Return(&entity.OneTimeCode{
				ID:        uuid.New(),
				ExpiresAt: time.Now().Add(-time.Minute),
			}, nil)
	})

	fx.auditRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.AuditEntry")).Return(nil)

	output, err := fx.service.VerifyOTP(ctx, usecase.VerifyOTPInput{
		Email:    "new@example.com",
		Code:     "123456",
		Password: "Password123!",
		FullName: "Test User",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOrExpiredCode))
}

func TestAuthService_VerifyOTP_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("Password123!").Return("hashed_password", nil)

	expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		codeRepo := mockRepo.NewMockCodeRepository(t)

		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().CodeRepo().Return(codeRepo)

		codeRepo.EXPECT().
			FindByEmailAndCode(ctx, entity.PurposeOTP, "taken@example.com", "123456").
			Return(&entity.OneTimeCode{
				ID:        uuid.New(),
				ExpiresAt: time.Now().Add(time.Minute),
			}, nil)

		userRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			Return(repository.ErrDuplicateEmail)
	})

	output, err := fx.service.VerifyOTP(ctx, usecase.VerifyOTPInput{
		Email:    "taken@example.com",
		Code:     "123456",
		Password: "Password123!",
		FullName: "Test User",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateUser))
}

func TestAuthService_VerifyOTP_AdminRoleRejected(t *testing.T) {
	fx := createTestAuthService(t)

	output, err := fx.service.VerifyOTP(context.Background(), usecase.VerifyOTPInput{
		Email:    "new@example.com",
		Code:     "123456",
		Password: "Password123!",
		FullName: "Test User",
		Role:     "admin",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Email:    "New@Example.com",
		Password: "Password123!",
		FullName: "Test User",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		codeRepo := mockRepo.NewMockCodeRepository(t)

		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().CodeRepo().Return(codeRepo)

		userRepo.EXPECT().
			FindByEmail(ctx, "new@example.com").
			Return(nil, repository.ErrUserNotFound)

		userRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, user *entity.User) {
				user.ID = uuid.New()
			}).
			Return(nil)

		codeRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.OneTimeCode")).
			Run(func(ctx context.Context, code *entity.OneTimeCode) {
				assert.Equal(t, entity.PurposeEmailVerify, code.Purpose)
				assert.Len(t, code.Code, 64)
			}).
			Return(nil)
	})

	fx.auditRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.AuditEntry")).Return(nil)
	fx.mailer.EXPECT().
		SendVerification(ctx, "new@example.com", mock.AnythingOfType("string")).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "new@example.com", output.User.Email)
	assert.Equal(t, entity.RolePatient, output.User.Role)
	assert.False(t, output.User.EmailVerified)
	assert.True(t, output.User.IsActive)
	assert.True(t, output.EmailSent)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("Password123!").Return("hashed_password", nil)

	expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)

		userRepo.EXPECT().
			FindByEmail(ctx, "taken@example.com").
			Return(&entity.User{ID: uuid.New(), Email: "taken@example.com"}, nil)
	})

	output, err := fx.service.Register(ctx, usecase.RegisterInput{
		Email:    "taken@example.com",
		Password: "Password123!",
		FullName: "Test User",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateUser))
}

func TestAuthService_Register_ConcurrentDuplicateLosesOnConstraint(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("Password123!").Return("hashed_password", nil)

	expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)

		// The existence check passes, then the insert hits the unique
		// constraint because a concurrent registration won the race.
		userRepo.EXPECT().
			FindByEmail(ctx, "taken@example.com").
			Return(nil, repository.ErrUserNotFound)

		userRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			Return(repository.ErrDuplicateEmail)
	})

	output, err := fx.service.Register(ctx, usecase.RegisterInput{
		Email:    "taken@example.com",
		Password: "Password123!",
		FullName: "Test User",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateUser))
}

func TestAuthService_Register_MailFailureKeepsAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("Password123!").Return("hashed_password", nil)

	expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		codeRepo := mockRepo.NewMockCodeRepository(t)

		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().CodeRepo().Return(codeRepo)

		userRepo.EXPECT().FindByEmail(ctx, "new@example.com").Return(nil, repository.ErrUserNotFound)
		userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
		codeRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.OneTimeCode")).Return(nil)
	})

	fx.auditRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.AuditEntry")).Return(nil)
	fx.mailer.EXPECT().
		SendVerification(ctx, "new@example.com", mock.AnythingOfType("string")).
		Return(errors.New("smtp unreachable"))

	output, err := fx.service.Register(ctx, usecase.RegisterInput{
		Email:    "new@example.com",
		Password: "Password123!",
		FullName: "Test User",
	})

	// The account exists unverified regardless of delivery.
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.False(t, output.EmailSent)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:            userID,
		Email:         "user@example.com",
		PasswordHash:  "hashed_password",
		Role:          entity.RolePatient,
		EmailVerified: true,
		IsActive:      true,
	}

	fx.auditRepo.EXPECT().
		CountFailedLogins(ctx, "user@example.com", mock.AnythingOfType("time.Time")).
		Return(0, nil)

	fx.userRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed_password").Return(true)
	fx.profileRepo.EXPECT().EnsureProfile(ctx, user).Return(nil)
	fx.tokenService.EXPECT().GenerateTokens(userID, "patient").Return("access", "refresh", nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh_hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)

	fx.sessionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(ctx context.Context, session *entity.Session) {
			assert.Equal(t, userID, session.UserID)
			assert.Equal(t, "refresh_hash", session.TokenHash)
			assert.Equal(t, "Desktop - Linux - Chrome", session.DeviceInfo)
		}).
		Return(nil)

	fx.auditRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AuditEntry")).
		Run(func(ctx context.Context, entry *entity.AuditEntry) {
			assert.Equal(t, entity.ActionLogin, entry.Action)
			assert.Equal(t, entity.StatusSuccess, entry.Status)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "User@Example.com",
		Password: "Password123!",
		Meta:     usecase.RequestMeta{IPAddress: "203.0.113.9", DeviceInfo: "Desktop - Linux - Chrome"},
	})

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestAuthService_Login_Throttled(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.auditRepo.EXPECT().
		CountFailedLogins(ctx, "user@example.com", mock.AnythingOfType("time.Time")).
		Return(5, nil)

	// The throttle rejection is audited as a login failure, not as another
	// failed attempt, so it cannot extend its own window.
	fx.auditRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AuditEntry")).
		Run(func(ctx context.Context, entry *entity.AuditEntry) {
			assert.Equal(t, entity.ActionLogin, entry.Action)
			assert.Equal(t, entity.StatusFailure, entry.Status)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "user@example.com",
		Password: "Password123!",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrTooManyAttempts))
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.auditRepo.EXPECT().
		CountFailedLogins(ctx, "ghost@example.com", mock.AnythingOfType("time.Time")).
		Return(0, nil)

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	fx.auditRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AuditEntry")).
		Run(func(ctx context.Context, entry *entity.AuditEntry) {
			assert.Equal(t, entity.ActionFailedLogin, entry.Action)
			assert.Nil(t, entry.UserID)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:            uuid.New(),
		Email:         "user@example.com",
		PasswordHash:  "hashed_password",
		EmailVerified: true,
		IsActive:      true,
	}

	fx.auditRepo.EXPECT().
		CountFailedLogins(ctx, "user@example.com", mock.AnythingOfType("time.Time")).
		Return(2, nil)

	fx.userRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed_password").Return(false)

	fx.auditRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AuditEntry")).
		Run(func(ctx context.Context, entry *entity.AuditEntry) {
			assert.Equal(t, entity.ActionFailedLogin, entry.Action)
			assert.Equal(t, &user.ID, entry.UserID)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "user@example.com",
		Password: "wrong",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_EmailNotVerified(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "user@example.com",
		PasswordHash: "hashed_password",
		IsActive:     true,
	}

	fx.auditRepo.EXPECT().
		CountFailedLogins(ctx, "user@example.com", mock.AnythingOfType("time.Time")).
		Return(0, nil)

	fx.userRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed_password").Return(true)

	fx.auditRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AuditEntry")).
		Run(func(ctx context.Context, entry *entity.AuditEntry) {
			assert.Equal(t, entity.ActionLogin, entry.Action)
			assert.Equal(t, entity.StatusFailure, entry.Status)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "user@example.com",
		Password: "Password123!",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailNotVerified))
}

func TestAuthService_Login_AccountDeactivated(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:            uuid.New(),
		Email:         "user@example.com",
		PasswordHash:  "hashed_password",
		EmailVerified: true,
		IsActive:      false,
	}

	fx.auditRepo.EXPECT().
		CountFailedLogins(ctx, "user@example.com", mock.AnythingOfType("time.Time")).
		Return(0, nil)

	fx.userRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed_password").Return(true)
	fx.auditRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.AuditEntry")).Return(nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "user@example.com",
		Password: "Password123!",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountDeactivated))
}

func TestAuthService_Refresh_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()
	user := &entity.User{
		ID:       userID,
		Email:    "user@example.com",
		Role:     entity.RolePatient,
		IsActive: true,
	}
	session := &entity.Session{
		ID:         sessionID,
		UserID:     userID,
		TokenHash:  "old_hash",
		DeviceInfo: "Mobile - iOS - Safari",
		ExpiresAt:  time.Now().Add(time.Hour),
	}

	fx.tokenService.EXPECT().
		ValidateRefreshToken("old_refresh").
		Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
	fx.tokenService.EXPECT().HashToken("old_refresh").Return("old_hash")

	expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		sessionRepo := mockRepo.NewMockSessionRepository(t)

		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().SessionRepo().Return(sessionRepo)

		sessionRepo.EXPECT().FindByTokenHash(ctx, "old_hash").Return(session, nil)
		// The presented session's last use is recorded before rotation.
		sessionRepo.EXPECT().Touch(ctx, sessionID, mock.AnythingOfType("time.Time")).Return(nil)
		userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

		fx.tokenService.EXPECT().GenerateTokens(userID, "patient").Return("new_access", "new_refresh", nil)

		sessionRepo.EXPECT().Revoke(ctx, sessionID).Return(nil)

		fx.tokenService.EXPECT().HashToken("new_refresh").Return("new_hash")
		fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)

		sessionRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Session")).
			Run(func(ctx context.Context, created *entity.Session) {
				assert.Equal(t, "new_hash", created.TokenHash)
				// Device info survives rotation when the client sends none.
				assert.Equal(t, "Mobile - iOS - Safari", created.DeviceInfo)
			}).
			Return(nil)
	})

	fx.auditRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AuditEntry")).
		Run(func(ctx context.Context, entry *entity.AuditEntry) {
			assert.Equal(t, entity.ActionTokenRefresh, entry.Action)
			assert.Equal(t, entity.StatusSuccess, entry.Status)
		}).
		Return(nil)

	output, err := fx.service.Refresh(ctx, usecase.RefreshInput{RefreshToken: "old_refresh"})

	require.NoError(t, err)
	assert.Equal(t, "new_access", output.AccessToken)
	assert.Equal(t, "new_refresh", output.RefreshToken)
}

func TestAuthService_Refresh_RevokedTokenReplay(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("stolen_refresh").
		Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
	fx.tokenService.EXPECT().HashToken("stolen_refresh").Return("stolen_hash")

	expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		sessionRepo := mockRepo.NewMockSessionRepository(t)

		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().SessionRepo().Return(sessionRepo)

		sessionRepo.EXPECT().
			FindByTokenHash(ctx, "stolen_hash").
			Return(&entity.Session{
				ID:        uuid.New(),
				UserID:    userID,
				Revoked:   true,
				ExpiresAt: time.Now().Add(time.Hour),
			}, nil)
	})

	fx.auditRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AuditEntry")).
		Run(func(ctx context.Context, entry *entity.AuditEntry) {
			assert.Equal(t, entity.ActionTokenRefresh, entry.Action)
			assert.Equal(t, entity.StatusFailure, entry.Status)
		}).
		Return(nil)

	output, err := fx.service.Refresh(ctx, usecase.RefreshInput{RefreshToken: "stolen_refresh"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestAuthService_Refresh_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("garbage").
		Return(nil, errors.New("token is malformed"))

	fx.auditRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.AuditEntry")).Return(nil)

	output, err := fx.service.Refresh(ctx, usecase.RefreshInput{RefreshToken: "garbage"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestAuthService_Logout_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("refresh").
		Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh_hash")

	fx.sessionRepo.EXPECT().
		FindByTokenHash(ctx, "refresh_hash").
		Return(&entity.Session{ID: sessionID, UserID: userID}, nil)
	fx.sessionRepo.EXPECT().Revoke(ctx, sessionID).Return(nil)

	fx.auditRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.AuditEntry")).Return(nil)

	err := fx.service.Logout(ctx, usecase.LogoutInput{RefreshToken: "refresh"})

	require.NoError(t, err)
}

func TestAuthService_Logout_UnknownTokenIsIdempotent(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("refresh").
		Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh_hash")

	fx.sessionRepo.EXPECT().
		FindByTokenHash(ctx, "refresh_hash").
		Return(nil, repository.ErrSessionNotFound)

	fx.auditRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.AuditEntry")).Return(nil)

	err := fx.service.Logout(ctx, usecase.LogoutInput{RefreshToken: "refresh"})

	require.NoError(t, err)
}

func TestAuthService_Logout_UndecodableToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("garbage").
		Return(nil, errors.New("token is malformed"))

	fx.auditRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AuditEntry")).
		Run(func(ctx context.Context, entry *entity.AuditEntry) {
			assert.Equal(t, entity.ActionLogout, entry.Action)
			assert.Equal(t, entity.StatusFailure, entry.Status)
		}).
		Return(nil)

	err := fx.service.Logout(ctx, usecase.LogoutInput{RefreshToken: "garbage"})

	// The client still clears its state; the attempt is only recorded.
	require.NoError(t, err)
}

func TestAuthService_ForgotPassword_UnknownEmailSilent(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	err := fx.service.ForgotPassword(ctx, usecase.ForgotPasswordInput{Email: "ghost@example.com"})

	require.NoError(t, err)
}

func TestAuthService_ForgotPassword_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "user@example.com").
		Return(&entity.User{ID: userID, Email: "user@example.com"}, nil)

	expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		codeRepo := mockRepo.NewMockCodeRepository(t)
		factory.EXPECT().CodeRepo().Return(codeRepo)

		codeRepo.EXPECT().DeleteByUserID(ctx, entity.PurposePasswordReset, userID).Return(nil)
		codeRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.OneTimeCode")).
			Run(func(ctx context.Context, code *entity.OneTimeCode) {
				assert.Equal(t, entity.PurposePasswordReset, code.Purpose)
				assert.Len(t, code.Code, 64)
			}).
			Return(nil)
	})

	fx.mailer.EXPECT().
		SendPasswordReset(ctx, "user@example.com", mock.AnythingOfType("string")).
		Return(nil)

	err := fx.service.ForgotPassword(ctx, usecase.ForgotPasswordInput{Email: "user@example.com"})

	require.NoError(t, err)
}

func TestAuthService_ResetPassword_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	codeID := uuid.New()
	user := &entity.User{ID: userID, Email: "user@example.com", PasswordHash: "old_hash"}
	resetCode := &entity.OneTimeCode{
		ID:        codeID,
		UserID:    userID,
		Purpose:   entity.PurposePasswordReset,
		ExpiresAt: time.Now().Add(time.Minute),
	}

	// First transaction resolves the code so bcrypt runs outside of it.
	expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		codeRepo := mockRepo.NewMockCodeRepository(t)

		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().CodeRepo().Return(codeRepo)

		codeRepo.EXPECT().FindByCode(ctx, entity.PurposePasswordReset, "reset_token").Return(resetCode, nil)
		userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	})

	fx.hasher.EXPECT().Hash("NewPassword123!").Return("new_hash", nil)

	expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		codeRepo := mockRepo.NewMockCodeRepository(t)
		sessionRepo := mockRepo.NewMockSessionRepository(t)

		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().CodeRepo().Return(codeRepo)
		factory.EXPECT().SessionRepo().Return(sessionRepo)

		codeRepo.EXPECT().FindByCode(ctx, entity.PurposePasswordReset, "reset_token").Return(resetCode, nil)

		userRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, updated *entity.User) {
				assert.Equal(t, "new_hash", updated.PasswordHash)
			}).
			Return(nil)

		codeRepo.EXPECT().Consume(ctx, codeID).Return(nil)
		sessionRepo.EXPECT().RevokeAllByUserID(ctx, userID).Return(nil)
	})

	fx.auditRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AuditEntry")).
		Run(func(ctx context.Context, entry *entity.AuditEntry) {
			assert.Equal(t, entity.ActionPasswordReset, entry.Action)
			assert.Equal(t, entity.StatusSuccess, entry.Status)
		}).
		Return(nil)

	err := fx.service.ResetPassword(ctx, usecase.ResetPasswordInput{
		Code:        "reset_token",
		NewPassword: "NewPassword123!",
	})

	require.NoError(t, err)
}

func TestAuthService_ResetPassword_ExpiredCode(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		codeRepo := mockRepo.NewMockCodeRepository(t)
		factory.EXPECT().CodeRepo().Return(codeRepo)

		codeRepo.EXPECT().
			FindByCode(ctx, entity.PurposePasswordReset, "reset_token").
			Return(&entity.OneTimeCode{
				ID:        uuid.New(),
				ExpiresAt: time.Now().Add(-time.Minute),
			}, nil)
	})

	err := fx.service.ResetPassword(ctx, usecase.ResetPasswordInput{
		Code:        "reset_token",
		NewPassword: "NewPassword123!",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOrExpiredCode))
}

func TestAuthService_VerifyEmail_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	codeID := uuid.New()
	user := &entity.User{ID: userID, Email: "user@example.com", FullName: "Test User"}

	expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		codeRepo := mockRepo.NewMockCodeRepository(t)

		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().CodeRepo().Return(codeRepo)

		codeRepo.EXPECT().
			FindByCode(ctx, entity.PurposeEmailVerify, "verify_token").
			Return(&entity.OneTimeCode{
				ID:        codeID,
				UserID:    userID,
				Purpose:   entity.PurposeEmailVerify,
				ExpiresAt: time.Now().Add(time.Minute),
			}, nil)

		userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

		userRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, updated *entity.User) {
				assert.True(t, updated.EmailVerified)
			}).
			Return(nil)

		codeRepo.EXPECT().Consume(ctx, codeID).Return(nil)
	})

	fx.auditRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.AuditEntry")).Return(nil)
	fx.mailer.EXPECT().SendWelcome(ctx, "user@example.com", "Test User").Return(nil)

	err := fx.service.VerifyEmail(ctx, usecase.VerifyEmailInput{Code: "verify_token"})

	require.NoError(t, err)
}

func TestAuthService_VerifyEmail_AlreadyVerified(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	codeID := uuid.New()

	expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		codeRepo := mockRepo.NewMockCodeRepository(t)

		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().CodeRepo().Return(codeRepo)

		codeRepo.EXPECT().
			FindByCode(ctx, entity.PurposeEmailVerify, "verify_token").
			Return(&entity.OneTimeCode{
				ID:        codeID,
				UserID:    userID,
				ExpiresAt: time.Now().Add(time.Minute),
			}, nil)

		userRepo.EXPECT().
			FindByID(ctx, userID).
			Return(&entity.User{ID: userID, EmailVerified: true}, nil)

		// The stale code is still consumed.
		codeRepo.EXPECT().Consume(ctx, codeID).Return(nil)
	})

	err := fx.service.VerifyEmail(ctx, usecase.VerifyEmailInput{Code: "verify_token"})

	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyVerified))
}

func TestAuthService_ResendVerification_UnknownEmailSilent(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	err := fx.service.ResendVerification(ctx, usecase.ResendVerificationInput{Email: "ghost@example.com"})

	require.NoError(t, err)
}

func TestAuthService_ResendVerification_AlreadyVerified(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "user@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "user@example.com", EmailVerified: true}, nil)

	err := fx.service.ResendVerification(ctx, usecase.ResendVerificationInput{Email: "user@example.com"})

	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyVerified))
}

func TestAuthService_GetProfile_NotFound(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetProfile(ctx, userID)

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
