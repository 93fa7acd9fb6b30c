package usecase

import (
	"context"
	"database/sql"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	jwtpkg "github.com/swiftcab/backend/internal/pkg/jwt"
	"github.com/swiftcab/backend/internal/pkg/models"
	"github.com/swiftcab/backend/services/drivers"
	"github.com/swiftcab/backend/services/drivers/mocks"
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

func TestRegisterCreatesInactiveDriverWithVehicle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDriverRepo(ctrl)
	mockRepo.EXPECT().
		GetDriverByEmail(gomock.Any(), "max@example.com").
		Return(nil, sql.ErrNoRows)

	var created *models.Driver
	mockRepo.EXPECT().
		CreateDriver(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, driver *models.Driver) error {
			created = driver
			return nil
		})

	uc := NewDriverUC(testConfig(), mockRepo)
	resp, err := uc.Register(context.Background(), &models.RegisterDriverRequest{
		FirstName: "Max",
		Email:     "max@example.com",
		Password:  "s3cret-pass",
		Vehicle: models.Vehicle{
			Color:    "black",
			Plate:    "KA-01-1234",
			Capacity: 4,
			Type:     "car",
		},
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, models.DriverStatusInactive, created.Status)
	assert.Equal(t, "KA-01-1234", created.Vehicle.Plate)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("s3cret-pass")))

	claims, err := jwtpkg.ValidateToken(resp.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, string(models.RoleDriver), claims["role"])
}

func TestRegisterEmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDriverRepo(ctrl)
	mockRepo.EXPECT().
		GetDriverByEmail(gomock.Any(), "max@example.com").
		Return(&models.Driver{ID: uuid.New()}, nil)

	uc := NewDriverUC(testConfig(), mockRepo)
	_, err := uc.Register(context.Background(), &models.RegisterDriverRequest{
		FirstName: "Max",
		Email:     "max@example.com",
		Password:  "s3cret-pass",
	})

	assert.ErrorIs(t, err, drivers.ErrEmailTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hashed, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	mockRepo := mocks.NewMockDriverRepo(ctrl)
	mockRepo.EXPECT().
		GetDriverByEmail(gomock.Any(), "max@example.com").
		Return(&models.Driver{ID: uuid.New(), Password: string(hashed)}, nil)

	uc := NewDriverUC(testConfig(), mockRepo)
	_, err = uc.Login(context.Background(), &models.LoginRequest{
		Email:    "max@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, drivers.ErrInvalidCredentials)
}

func TestGetProfileStripsPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	mockRepo := mocks.NewMockDriverRepo(ctrl)
	mockRepo.EXPECT().
		GetDriverByID(gomock.Any(), id.String()).
		Return(&models.Driver{ID: id, Password: "hash"}, nil)

	uc := NewDriverUC(testConfig(), mockRepo)
	driver, err := uc.GetProfile(context.Background(), id.String())

	require.NoError(t, err)
	assert.Empty(t, driver.Password)
}
