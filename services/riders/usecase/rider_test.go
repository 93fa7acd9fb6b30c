package usecase

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	jwtpkg "github.com/swiftcab/backend/internal/pkg/jwt"
	"github.com/swiftcab/backend/internal/pkg/models"
	"github.com/swiftcab/backend/services/riders"
	"github.com/swiftcab/backend/services/riders/mocks"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60 * 24 * 30,
			Issuer:     "swiftcab",
		},
	}
}

func TestRegisterSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRiderRepo(ctrl)
	mockRepo.EXPECT().
		GetRiderByEmail(gomock.Any(), "jane@example.com").
		Return(nil, sql.ErrNoRows)

	var created *models.Rider
	mockRepo.EXPECT().
		CreateRider(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rider *models.Rider) error {
			created = rider
			return nil
		})

	uc := NewRiderUC(testConfig(), mockRepo)
	resp, err := uc.Register(context.Background(), &models.RegisterRiderRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "s3cret-pass",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("s3cret-pass")))

	assert.NotEmpty(t, resp.Token)
	claims, err := jwtpkg.ValidateToken(resp.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, created.ID.String(), claims["user_id"])
	assert.Equal(t, string(models.RoleRider), claims["role"])
}

func TestRegisterEmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRiderRepo(ctrl)
	mockRepo.EXPECT().
		GetRiderByEmail(gomock.Any(), "jane@example.com").
		Return(&models.Rider{ID: uuid.New(), Email: "jane@example.com"}, nil)

	uc := NewRiderUC(testConfig(), mockRepo)
	_, err := uc.Register(context.Background(), &models.RegisterRiderRequest{
		FirstName: "Jane",
		Email:     "jane@example.com",
		Password:  "s3cret-pass",
	})

	assert.ErrorIs(t, err, riders.ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := &models.Rider{
		ID:       uuid.New(),
		Email:    "jane@example.com",
		Password: string(hashed),
	}

	testCases := []struct {
		name     string
		email    string
		password string
		repoErr  error
		wantErr  error
	}{
		{name: "Valid credentials", email: "jane@example.com", password: "s3cret-pass"},
		{name: "Wrong password", email: "jane@example.com", password: "wrong", wantErr: riders.ErrInvalidCredentials},
		{name: "Unknown email", email: "nobody@example.com", password: "s3cret-pass", repoErr: sql.ErrNoRows, wantErr: riders.ErrInvalidCredentials},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockRiderRepo(ctrl)
			if tc.repoErr != nil {
				mockRepo.EXPECT().GetRiderByEmail(gomock.Any(), tc.email).Return(nil, tc.repoErr)
			} else {
				cp := *stored
				mockRepo.EXPECT().GetRiderByEmail(gomock.Any(), tc.email).Return(&cp, nil)
			}

			uc := NewRiderUC(testConfig(), mockRepo)
			resp, err := uc.Login(context.Background(), &models.LoginRequest{
				Email:    tc.email,
				Password: tc.password,
			})

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, resp.Token)
			account, ok := resp.Account.(*models.Rider)
			require.True(t, ok)
			assert.Empty(t, account.Password)
		})
	}
}

func TestLogoutBlacklistsForTokenLifetime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	mockRepo := mocks.NewMockRiderRepo(ctrl)
	mockRepo.EXPECT().
		BlacklistToken(gomock.Any(), "some-token", time.Duration(cfg.JWT.Expiration)*time.Minute).
		Return(nil)

	uc := NewRiderUC(cfg, mockRepo)
	assert.NoError(t, uc.Logout(context.Background(), "some-token"))
}

func TestGetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stored := &models.Rider{ID: uuid.New(), Email: "jane@example.com", Password: "hash"}
	mockRepo := mocks.NewMockRiderRepo(ctrl)
	mockRepo.EXPECT().GetRiderByID(gomock.Any(), stored.ID.String()).Return(stored, nil)

	uc := NewRiderUC(testConfig(), mockRepo)
	rider, err := uc.GetProfile(context.Background(), stored.ID.String())

	require.NoError(t, err)
	assert.Empty(t, rider.Password)
	assert.Equal(t, stored.ID, rider.ID)
}

func TestGetProfileNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRiderRepo(ctrl)
	mockRepo.EXPECT().GetRiderByID(gomock.Any(), "missing").Return(nil, sql.ErrNoRows)

	uc := NewRiderUC(testConfig(), mockRepo)
	_, err := uc.GetProfile(context.Background(), "missing")

	assert.ErrorIs(t, err, riders.ErrNotFound)
}
