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

func newTestRepo(t *testing.T) (*RideRepo, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")
	redisClient := database.NewRedisClientFromClient(redis.NewClient(&redis.Options{
		Addr: "127.0.0.1:1",
	}))

	return NewRideRepo(db, redisClient), mock
}

func TestCreateRideStoresGeoJSONPoints(t *testing.T) {
	repo, mock := newTestRepo(t)

	now := time.Now()
	ride := &models.Ride{
		ID:          uuid.New(),
		RiderID:     uuid.New(),
		Pickup:      models.Location{Latitude: 12.9716, Longitude: 77.5946},
		Destination: models.Location{Latitude: 12.9352, Longitude: 77.6245},
		Fare:        120,
		Status:      models.RideStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	mock.ExpectExec("INSERT INTO rides").
		WithArgs(ride.ID, ride.RiderID,
			[]byte(`{"type":"Point","coordinates":[77.5946,12.9716]}`),
			[]byte(`{"type":"Point","coordinates":[77.6245,12.9352]}`),
			ride.PickupHash, 120.0, models.RideStatusPending, now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateRide(context.Background(), ride)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRideByID(t *testing.T) {
	repo, mock := newTestRepo(t)

	rideID := uuid.New()
	riderID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"id", "rider_id", "driver_id", "pickup", "destination",
		"pickup_hash", "fare", "status", "created_at", "updated_at",
	}).AddRow(rideID, riderID, nil,
		[]byte(`{"type":"Point","coordinates":[77.5946,12.9716]}`),
		[]byte(`{"type":"Point","coordinates":[77.6245,12.9352]}`),
		"tdr1wx", 120.0, models.RideStatusPending, now, now)

	mock.ExpectQuery("SELECT (.+) FROM rides WHERE id = \\$1").
		WithArgs(rideID.String()).
		WillReturnRows(rows)

	ride, err := repo.GetRideByID(context.Background(), rideID.String())
	require.NoError(t, err)

	assert.Equal(t, rideID, ride.ID)
	assert.Equal(t, 12.9716, ride.Pickup.Latitude)
	assert.Equal(t, 77.5946, ride.Pickup.Longitude)
	assert.Equal(t, 12.9352, ride.Destination.Latitude)
	assert.False(t, ride.DriverID.Valid)
}

func TestAcceptRideGuardedByStatus(t *testing.T) {
	testCases := []struct {
		name    string
		rows    int64
		wantWon bool
	}{
		{name: "First driver wins", rows: 1, wantWon: true},
		{name: "Ride already taken", rows: 0, wantWon: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := newTestRepo(t)

			mock.ExpectExec("UPDATE rides SET driver_id = \\$1, status = \\$2, updated_at = NOW\\(\\) WHERE id = \\$3 AND status = \\$4").
				WithArgs("D1", models.RideStatusAccepted, "ride-1", models.RideStatusPending).
				WillReturnResult(sqlmock.NewResult(0, tc.rows))

			won, err := repo.AcceptRide(context.Background(), "ride-1", "D1")
			require.NoError(t, err)
			assert.Equal(t, tc.wantWon, won)
		})
	}
}

func TestCompleteRideGuardedByOwnerAndStatus(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectExec("UPDATE rides SET status = \\$1, updated_at = NOW\\(\\) WHERE id = \\$2 AND driver_id = \\$3 AND status IN \\(\\$4, \\$5\\)").
		WithArgs(models.RideStatusCompleted, "ride-1", "D1",
			models.RideStatusAccepted, models.RideStatusOngoing).
		WillReturnResult(sqlmock.NewResult(0, 1))

	done, err := repo.CompleteRide(context.Background(), "ride-1", "D1")
	require.NoError(t, err)
	assert.True(t, done)
}

func TestFindNearbyDriversIndexUnavailable(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.FindNearbyDrivers(context.Background(),
		models.Location{Latitude: 12.97, Longitude: 77.59}, 5)

	assert.Error(t, err)
}
