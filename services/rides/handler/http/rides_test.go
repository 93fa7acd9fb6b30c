package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swiftcab/backend/internal/pkg/models"
	"github.com/swiftcab/backend/services/rides"
	"github.com/swiftcab/backend/services/rides/mocks"
)

func newContext(body string, userID, role string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/rides", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != "" {
		c.Set("user_id", userID)
	}
	if role != "" {
		c.Set("role", role)
	}
	return c, rec
}

func TestCreateRide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	riderID := uuid.New().String()
	mockUC := mocks.NewMockRideUC(ctrl)
	mockUC.EXPECT().
		CreateRide(gomock.Any(), riderID, gomock.Any()).
		Return(&models.Ride{ID: uuid.New(), Status: models.RideStatusPending}, nil)

	h := NewRideHandler(mockUC)
	c, rec := newContext(
		`{"pickup":{"latitude":12.97,"longitude":77.59},"destination":{"latitude":12.93,"longitude":77.62}}`,
		riderID, string(models.RoleRider))

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateRideRejectsDrivers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewRideHandler(mocks.NewMockRideUC(ctrl))
	c, rec := newContext(`{}`, uuid.New().String(), string(models.RoleDriver))

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateRideRejectsBadCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewRideHandler(mocks.NewMockRideUC(ctrl))
	c, rec := newContext(
		`{"pickup":{"latitude":91,"longitude":77.59},"destination":{"latitude":12.93,"longitude":77.62}}`,
		uuid.New().String(), string(models.RoleRider))

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAcceptRideConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	driverID := uuid.New().String()
	mockUC := mocks.NewMockRideUC(ctrl)
	mockUC.EXPECT().
		AcceptRide(gomock.Any(), driverID, "ride-1").
		Return(nil, rides.ErrRideUnavailable)

	h := NewRideHandler(mockUC)
	c, rec := newContext(`{"ride_id":"ride-1"}`, driverID, string(models.RoleDriver))

	require.NoError(t, h.Accept(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestFinishRideNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	driverID := uuid.New().String()
	mockUC := mocks.NewMockRideUC(ctrl)
	mockUC.EXPECT().
		FinishRide(gomock.Any(), driverID, "ride-1").
		Return(nil, rides.ErrRideNotFound)

	h := NewRideHandler(mockUC)
	c, rec := newContext(`{"ride_id":"ride-1"}`, driverID, string(models.RoleDriver))

	require.NoError(t, h.Finish(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDecisionRequiresRideID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewRideHandler(mocks.NewMockRideUC(ctrl))
	c, rec := newContext(`{}`, uuid.New().String(), string(models.RoleDriver))

	require.NoError(t, h.Accept(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
