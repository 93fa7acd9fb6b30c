package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swiftcab/backend/internal/pkg/database"
	"github.com/swiftcab/backend/internal/pkg/models"
)

func newTestRepo(t *testing.T) (*DriverRepo, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")
	redisClient := database.NewRedisClientFromClient(redis.NewClient(&redis.Options{
		Addr: "127.0.0.1:1",
	}))

	return NewDriverRepo(db, redisClient), mock
}

func driverColumns() []string {
	return []string{
		"id", "firstname", "lastname", "email", "password", "status", "socket_id",
		"vehicle_color", "vehicle_plate", "vehicle_capacity", "vehicle_type",
		"location", "created_at", "updated_at",
	}
}

func TestCreateDriver(t *testing.T) {
	repo, mock := newTestRepo(t)

	now := time.Now()
	driver := &models.Driver{
		ID:        uuid.New(),
		FirstName: "Max",
		LastName:  "Verst",
		Email:     "max@example.com",
		Password:  "hash",
		Status:    models.DriverStatusInactive,
		Vehicle: models.Vehicle{
			Color:    "black",
			Plate:    "KA-01-1234",
			Capacity: 4,
			Type:     "car",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectExec("INSERT INTO drivers").
		WithArgs(driver.ID, "Max", "Verst", "max@example.com", "hash",
			models.DriverStatusInactive, "black", "KA-01-1234", 4, "car", now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateDriver(context.Background(), driver)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDriverByEmail(t *testing.T) {
	repo, mock := newTestRepo(t)

	id := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows(driverColumns()).
		AddRow(id, "Max", "Verst", "max@example.com", "hash", models.DriverStatusActive,
			"socket-1", "black", "KA-01-1234", 4, "car",
			[]byte(`{"type":"Point","coordinates":[77.5946,12.9716]}`), now, now)

	mock.ExpectQuery("SELECT (.+) FROM drivers WHERE email = \\$1").
		WithArgs("max@example.com").
		WillReturnRows(rows)

	driver, err := repo.GetDriverByEmail(context.Background(), "max@example.com")
	require.NoError(t, err)

	assert.Equal(t, id, driver.ID)
	assert.Equal(t, "KA-01-1234", driver.Vehicle.Plate)
	assert.Equal(t, 4, driver.Vehicle.Capacity)
	require.NotNil(t, driver.Location)
	assert.Equal(t, 12.9716, driver.Location.Latitude())
	assert.Equal(t, 77.5946, driver.Location.Longitude())
}

func TestGetDriverByIDWithoutLocation(t *testing.T) {
	repo, mock := newTestRepo(t)

	id := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows(driverColumns()).
		AddRow(id, "Max", "Verst", "max@example.com", "hash", models.DriverStatusInactive,
			nil, "black", "KA-01-1234", 4, "car", nil, now, now)

	mock.ExpectQuery("SELECT (.+) FROM drivers WHERE id = \\$1").
		WithArgs(id.String()).
		WillReturnRows(rows)

	driver, err := repo.GetDriverByID(context.Background(), id.String())
	require.NoError(t, err)

	assert.Nil(t, driver.Location)
	assert.False(t, driver.SocketID.Valid)
}
