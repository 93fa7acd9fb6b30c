package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/swiftcab/backend/internal/pkg/logger"
	"github.com/swiftcab/backend/internal/pkg/middleware"
	"github.com/swiftcab/backend/internal/pkg/models"
	"github.com/swiftcab/backend/internal/utils"
	"github.com/swiftcab/backend/services/drivers"
)

// DriverHandler handles HTTP requests for driver accounts
type DriverHandler struct {
	driverUC drivers.DriverUC
}

// NewDriverHandler creates a new driver handler
func NewDriverHandler(driverUC drivers.DriverUC) *DriverHandler {
	return &DriverHandler{
		driverUC: driverUC,
	}
}

// RegisterRoutes registers the driver endpoints on the group
func (h *DriverHandler) RegisterRoutes(g *echo.Group, authMW ...echo.MiddlewareFunc) {
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.GET("/logout", h.Logout, authMW...)
	g.GET("/profile", h.Profile, authMW...)
}

// Register handles driver registration requests
func (h *DriverHandler) Register(c echo.Context) error {
	var req models.RegisterDriverRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" || req.Password == "" || req.FirstName == "" {
		return utils.BadRequestResponse(c, "firstname, email and password are required")
	}
	if req.Vehicle.Plate == "" || req.Vehicle.Capacity < 1 {
		return utils.BadRequestResponse(c, "vehicle plate and capacity are required")
	}

	resp, err := h.driverUC.Register(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, drivers.ErrEmailTaken) {
			return utils.ConflictResponse(c, "Email already registered")
		}
		logger.Error("Failed to register driver",
			logger.String("email", req.Email),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to register driver")
	}

	setTokenCookie(c, resp.Token, resp.ExpiresAt)
	return utils.SuccessResponse(c, http.StatusCreated, "Driver registered successfully", resp)
}

// Login handles driver login requests
func (h *DriverHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.driverUC.Login(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, drivers.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, "Invalid email or password")
		}
		logger.Error("Failed to login driver",
			logger.String("email", req.Email),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to login")
	}

	setTokenCookie(c, resp.Token, resp.ExpiresAt)
	return utils.SuccessResponse(c, http.StatusOK, "Logged in successfully", resp)
}

// Logout revokes the presented token and clears the cookie
func (h *DriverHandler) Logout(c echo.Context) error {
	token := middleware.ExtractToken(c)
	if token == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.driverUC.Logout(c.Request().Context(), token); err != nil {
		logger.Error("Failed to logout driver", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to logout")
	}

	clearTokenCookie(c)
	return utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}

// Profile returns the authenticated driver's account
func (h *DriverHandler) Profile(c echo.Context) error {
	driverID, _ := c.Get("user_id").(string)
	if driverID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	driver, err := h.driverUC.GetProfile(c.Request().Context(), driverID)
	if err != nil {
		if errors.Is(err, drivers.ErrNotFound) {
			return utils.NotFoundResponse(c, "Driver not found")
		}
		logger.Error("Failed to fetch driver profile",
			logger.String("driver_id", driverID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to fetch profile")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", driver)
}

func setTokenCookie(c echo.Context, token string, expiresAt int64) {
	c.SetCookie(&http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearTokenCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
