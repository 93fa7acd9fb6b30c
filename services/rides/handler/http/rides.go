package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/swiftcab/backend/internal/pkg/logger"
	"github.com/swiftcab/backend/internal/pkg/models"
	"github.com/swiftcab/backend/internal/utils"
	"github.com/swiftcab/backend/services/rides"
)

// RideHandler handles HTTP requests for the ride lifecycle
type RideHandler struct {
	rideUC rides.RideUC
}

// NewRideHandler creates a new ride handler
func NewRideHandler(rideUC rides.RideUC) *RideHandler {
	return &RideHandler{
		rideUC: rideUC,
	}
}

// RegisterRoutes registers the ride endpoints on the group. The group is
// expected to carry the JWT middleware.
func (h *RideHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/create", h.Create)
	g.POST("/accept", h.Accept)
	g.POST("/finish", h.Finish)
}

// Create handles a rider requesting a ride
func (h *RideHandler) Create(c echo.Context) error {
	actorID, role := identity(c)
	if actorID == "" {
		return utils.UnauthorizedResponse(c, "")
	}
	if role != string(models.RoleRider) {
		return utils.ErrorResponseHandler(c, http.StatusForbidden, "Only riders can request rides")
	}

	var req models.CreateRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if !req.Pickup.Valid() || !req.Destination.Valid() {
		return utils.BadRequestResponse(c, "pickup and destination coordinates are required")
	}

	ride, err := h.rideUC.CreateRide(c.Request().Context(), actorID, &req)
	if err != nil {
		logger.Error("Failed to create ride",
			logger.String("rider_id", actorID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to create ride")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Ride requested successfully", ride)
}

// Accept handles a driver taking a pending ride
func (h *RideHandler) Accept(c echo.Context) error {
	actorID, role := identity(c)
	if actorID == "" {
		return utils.UnauthorizedResponse(c, "")
	}
	if role != string(models.RoleDriver) {
		return utils.ErrorResponseHandler(c, http.StatusForbidden, "Only drivers can accept rides")
	}

	var req models.RideDecisionRequest
	if err := c.Bind(&req); err != nil || req.RideID == "" {
		return utils.BadRequestResponse(c, "ride_id is required")
	}

	ride, err := h.rideUC.AcceptRide(c.Request().Context(), actorID, req.RideID)
	if err != nil {
		return h.decisionError(c, err, actorID, req.RideID, "accept")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride accepted", ride)
}

// Finish handles a driver completing a ride
func (h *RideHandler) Finish(c echo.Context) error {
	actorID, role := identity(c)
	if actorID == "" {
		return utils.UnauthorizedResponse(c, "")
	}
	if role != string(models.RoleDriver) {
		return utils.ErrorResponseHandler(c, http.StatusForbidden, "Only drivers can finish rides")
	}

	var req models.RideDecisionRequest
	if err := c.Bind(&req); err != nil || req.RideID == "" {
		return utils.BadRequestResponse(c, "ride_id is required")
	}

	ride, err := h.rideUC.FinishRide(c.Request().Context(), actorID, req.RideID)
	if err != nil {
		return h.decisionError(c, err, actorID, req.RideID, "finish")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride completed", ride)
}

func (h *RideHandler) decisionError(c echo.Context, err error, driverID, rideID, op string) error {
	switch {
	case errors.Is(err, rides.ErrRideNotFound):
		return utils.NotFoundResponse(c, "Ride not found")
	case errors.Is(err, rides.ErrRideUnavailable):
		return utils.ConflictResponse(c, "Ride is no longer available")
	default:
		logger.Error("Ride transition failed",
			logger.String("op", op),
			logger.String("driver_id", driverID),
			logger.String("ride_id", rideID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to update ride")
	}
}

func identity(c echo.Context) (string, string) {
	actorID, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	return actorID, role
}
