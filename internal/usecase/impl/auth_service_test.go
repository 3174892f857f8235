package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/domain/service"
	mockRepo "tracker/internal/mocks/repository"
	mockSvc "tracker/internal/mocks/service"
	"tracker/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	return authServiceFixtures{
		service: NewAuthService(AuthServiceParams{
			UserRepo:     userRepo,
			Hasher:       hasher,
			TokenService: tokenService,
			Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		}),
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func (fix authServiceFixtures) expectTokens(userID uuid.UUID) {
	fix.tokenService.EXPECT().GenerateTokens(userID).Return("access", "refresh", nil).Once()
	fix.tokenService.EXPECT().GetAccessTokenDuration().Return(15 * time.Minute).Once()
}

func TestAuthService_Register(t *testing.T) {
	fix := createTestAuthService(t)
	ctx := context.Background()

	fix.hasher.EXPECT().Hash("secret-password").Return("hashed", nil).Once()
	fix.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(user *entity.User) bool {
			return user.Username == "alice" && user.PasswordHash == "hashed"
		})).
		Return(nil).Once()

	user, err := fix.service.Register(ctx, &usecase.RegisterInput{Username: "  alice ", Password: "secret-password"})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	fix := createTestAuthService(t)
	ctx := context.Background()

	fix.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil).Once()
	fix.userRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrUsernameTaken).Once()

	_, err := fix.service.Register(ctx, &usecase.RegisterInput{Username: "alice", Password: "secret-password"})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fix := createTestAuthService(t)

	fix.hasher.EXPECT().Hash(mock.Anything).Return("", errors.New("too long")).Once()

	_, err := fix.service.Register(context.Background(), &usecase.RegisterInput{Username: "alice", Password: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAuthService_Login(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Username: "alice", PasswordHash: "hashed"}

	tests := []struct {
		name     string
		setup    func(fix authServiceFixtures)
		password string
		wantErr  error
	}{
		{
			name: "valid credentials",
			setup: func(fix authServiceFixtures) {
				fix.userRepo.EXPECT().FindByUsername(mock.Anything, "alice").Return(user, nil).Once()
				fix.hasher.EXPECT().Check("secret-password", "hashed").Return(true).Once()
				fix.expectTokens(user.ID)
			},
			password: "secret-password",
		},
		{
			name: "wrong password",
			setup: func(fix authServiceFixtures) {
				fix.userRepo.EXPECT().FindByUsername(mock.Anything, "alice").Return(user, nil).Once()
				fix.hasher.EXPECT().Check("wrong", "hashed").Return(false).Once()
			},
			password: "wrong",
			wantErr:  domainerrors.ErrInvalidCredentials,
		},
		{
			name: "unknown user",
			setup: func(fix authServiceFixtures) {
				fix.userRepo.EXPECT().FindByUsername(mock.Anything, "alice").Return(nil, repository.ErrUserNotFound).Once()
			},
			password: "secret-password",
			wantErr:  domainerrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fix := createTestAuthService(t)
			tt.setup(fix)

			out, err := fix.service.Login(context.Background(), &usecase.LoginInput{Username: "alice", Password: tt.password})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "access", out.AccessToken)
			assert.Equal(t, "refresh", out.RefreshToken)
			assert.Equal(t, int64(900), out.ExpiresIn)
			assert.Equal(t, user, out.User)
		})
	}
}

func TestAuthService_Refresh(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Username: "alice"}

	t.Run("valid token", func(t *testing.T) {
		fix := createTestAuthService(t)
		fix.tokenService.EXPECT().ValidateRefreshToken("refresh-token").
			Return(&service.Claims{UserID: user.ID, Type: service.TokenTypeRefresh}, nil).Once()
		fix.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil).Once()
		fix.expectTokens(user.ID)

		out, err := fix.service.Refresh(context.Background(), "refresh-token")
		require.NoError(t, err)
		assert.Equal(t, "access", out.AccessToken)
	})

	t.Run("invalid token", func(t *testing.T) {
		fix := createTestAuthService(t)
		fix.tokenService.EXPECT().ValidateRefreshToken("bad").Return(nil, errors.New("token is malformed")).Once()

		_, err := fix.service.Refresh(context.Background(), "bad")
		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})

	t.Run("deleted user", func(t *testing.T) {
		fix := createTestAuthService(t)
		fix.tokenService.EXPECT().ValidateRefreshToken("refresh-token").
			Return(&service.Claims{UserID: user.ID, Type: service.TokenTypeRefresh}, nil).Once()
		fix.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(nil, repository.ErrUserNotFound).Once()

		_, err := fix.service.Refresh(context.Background(), "refresh-token")
		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})
}
