package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/swiftcab/backend/internal/pkg/models"
	"github.com/swiftcab/backend/services/realtime/mocks"
)

func TestIngestLocationCoordinateValidation(t *testing.T) {
	testCases := []struct {
		name        string
		update      *models.LocationUpdate
		expectStore bool
	}{
		{
			name: "Valid coordinates",
			update: &models.LocationUpdate{
				Location: models.Location{Latitude: 12.9, Longitude: 77.6},
			},
			expectStore: true,
		},
		{
			name: "Latitude above range",
			update: &models.LocationUpdate{
				Location: models.Location{Latitude: 91, Longitude: 77.6},
			},
			expectStore: false,
		},
		{
			name: "Longitude below range",
			update: &models.LocationUpdate{
				Location: models.Location{Latitude: 12.9, Longitude: -200},
			},
			expectStore: false,
		},
		{
			name: "Boundary coordinates",
			update: &models.LocationUpdate{
				Location: models.Location{Latitude: -90, Longitude: 180},
			},
			expectStore: true,
		},
		{
			name:        "Missing coordinates",
			update:      &models.LocationUpdate{},
			expectStore: false,
		},
		{
			name:        "Nil report",
			update:      nil,
			expectStore: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockPresenceRepo(ctrl)
			if tc.expectStore {
				mockRepo.EXPECT().
					UpdateDriverLocation(gomock.Any(), "D1", gomock.Any()).
					Return(nil)
			}
			// A rejected report must not alter the stored location: no
			// expectation means ctrl.Finish fails on any repo call

			uc := NewPresenceUC(mockRepo)
			err := uc.IngestLocation(context.Background(), "D1", tc.update)
			assert.NoError(t, err)
		})
	}
}

func TestIngestLocationSetsTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var stored models.Location
	mockRepo := mocks.NewMockPresenceRepo(ctrl)
	mockRepo.EXPECT().
		UpdateDriverLocation(gomock.Any(), "D1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, loc models.Location) error {
			stored = loc
			return nil
		})

	uc := NewPresenceUC(mockRepo)
	err := uc.IngestLocation(context.Background(), "D1", &models.LocationUpdate{
		Location: models.Location{Latitude: 12.9, Longitude: 77.6},
	})

	assert.NoError(t, err)
	assert.False(t, stored.Timestamp.IsZero())
	assert.WithinDuration(t, time.Now(), stored.Timestamp, time.Minute)
}

func TestIngestLocationStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPresenceRepo(ctrl)
	mockRepo.EXPECT().
		UpdateDriverLocation(gomock.Any(), "D1", gomock.Any()).
		Return(errors.New("connection refused"))

	uc := NewPresenceUC(mockRepo)
	err := uc.IngestLocation(context.Background(), "D1", &models.LocationUpdate{
		Location: models.Location{Latitude: 12.9, Longitude: 77.6},
	})

	assert.Error(t, err)
}

func TestRegisterPresence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPresenceRepo(ctrl)
	mockRepo.EXPECT().
		SetSocketID(gomock.Any(), models.RoleDriver, "D1", "socket-1").
		Return(nil)

	uc := NewPresenceUC(mockRepo)
	err := uc.RegisterPresence(context.Background(), "D1", models.RoleDriver, "socket-1")
	assert.NoError(t, err)
}

func TestClearPresence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPresenceRepo(ctrl)
	mockRepo.EXPECT().
		ClearSocketID(gomock.Any(), models.RoleRider, "R1", "socket-1").
		Return(nil)

	uc := NewPresenceUC(mockRepo)
	err := uc.ClearPresence(context.Background(), "R1", models.RoleRider, "socket-1")
	assert.NoError(t, err)
}
