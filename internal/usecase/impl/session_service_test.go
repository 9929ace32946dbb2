package impl

import (
	"context"
	"testing"
	"time"

	"healthvault/internal/domain/entity"
	domainerrors "healthvault/internal/domain/errors"
	"healthvault/internal/domain/repository"
	mockRepo "healthvault/internal/mocks/repository"
	"healthvault/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionServiceFixtures struct {
	service   usecase.SessionUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)

	svc := NewSessionService(SessionServiceParams{
		TxManager: txManager,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return sessionServiceFixtures{
		service:   svc,
		txManager: txManager,
	}
}

func TestSessionService_GetActiveSessions_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()

	expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		sessionRepo := mockRepo.NewMockSessionRepository(t)

		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().SessionRepo().Return(sessionRepo)

		userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)

		sessionRepo.EXPECT().
			FindValidByUserID(ctx, userID).
			Return([]*entity.Session{
				{
					ID:         sessionID,
					UserID:     userID,
					TokenHash:  "secret_hash",
					DeviceInfo: "Desktop - macOS - Firefox",
					ExpiresAt:  time.Now().Add(time.Hour),
				},
			}, nil)
	})

	sessions, err := fx.service.GetActiveSessions(ctx, userID)

	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, sessionID, sessions[0].ID)
	assert.Equal(t, "Desktop - macOS - Firefox", sessions[0].DeviceInfo)
}

func TestSessionService_GetActiveSessions_UnknownUser(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()

	expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)

		userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	})

	sessions, err := fx.service.GetActiveSessions(ctx, userID)

	assert.Nil(t, sessions)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestSessionService_RevokeSession_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()

	expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		sessionRepo := mockRepo.NewMockSessionRepository(t)
		factory.EXPECT().SessionRepo().Return(sessionRepo)

		sessionRepo.EXPECT().
			FindByID(ctx, sessionID).
			Return(&entity.Session{ID: sessionID, UserID: userID}, nil)
		sessionRepo.EXPECT().Revoke(ctx, sessionID).Return(nil)
	})

	err := fx.service.RevokeSession(ctx, userID, sessionID)

	require.NoError(t, err)
}

func TestSessionService_RevokeSession_OtherUsersSession(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()

	expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		sessionRepo := mockRepo.NewMockSessionRepository(t)
		factory.EXPECT().SessionRepo().Return(sessionRepo)

		// Session exists but belongs to someone else. Reported as not found so
		// the endpoint cannot be used to probe for session IDs.
		sessionRepo.EXPECT().
			FindByID(ctx, sessionID).
			Return(&entity.Session{ID: sessionID, UserID: uuid.New()}, nil)
	})

	err := fx.service.RevokeSession(ctx, userID, sessionID)

	assert.True(t, errors.Is(err, domainerrors.ErrSessionNotFound))
}

func TestSessionService_RevokeSession_AlreadyRevoked(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()

	expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		sessionRepo := mockRepo.NewMockSessionRepository(t)
		factory.EXPECT().SessionRepo().Return(sessionRepo)

		sessionRepo.EXPECT().
			FindByID(ctx, sessionID).
			Return(&entity.Session{ID: sessionID, UserID: userID, Revoked: true}, nil)
		// No Revoke call: revocation is terminal and idempotent.
	})

	err := fx.service.RevokeSession(ctx, userID, sessionID)

	require.NoError(t, err)
}

func TestSessionService_GetActivity_LimitClamped(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name      string
		requested int
		effective int
	}{
		{name: "zero falls back to default", requested: 0, effective: defaultActivityLimit},
		{name: "negative falls back to default", requested: -3, effective: defaultActivityLimit},
		{name: "in range passes through", requested: 50, effective: 50},
		{name: "above max is capped", requested: 500, effective: maxActivityLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
				auditRepo := mockRepo.NewMockAuditRepository(t)
				factory.EXPECT().AuditRepo().Return(auditRepo)

				auditRepo.EXPECT().
					ListByUserID(ctx, userID, tt.effective).
					Return([]*entity.AuditEntry{}, nil)
			})

			_, err := fx.service.GetActivity(ctx, userID, tt.requested)

			require.NoError(t, err)
		})
	}
}

func TestSessionService_CleanupExpired_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()

	expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		sessionRepo := mockRepo.NewMockSessionRepository(t)
		codeRepo := mockRepo.NewMockCodeRepository(t)

		factory.EXPECT().SessionRepo().Return(sessionRepo)
		factory.EXPECT().CodeRepo().Return(codeRepo)

		sessionRepo.EXPECT().
			DeleteStale(ctx, mock.AnythingOfType("time.Time"), 30*24*time.Hour).
			Return(int64(4), nil)
		codeRepo.EXPECT().
			DeleteExpired(ctx, mock.AnythingOfType("time.Time")).
			Return(int64(7), nil)
	})

	sessions, codes, err := fx.service.CleanupExpired(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(4), sessions)
	assert.Equal(t, int64(7), codes)
}
