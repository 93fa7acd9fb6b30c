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
	"github.com/swiftcab/backend/services/riders"
)

// RiderHandler handles HTTP requests for rider accounts
type RiderHandler struct {
	riderUC riders.RiderUC
}

// NewRiderHandler creates a new rider handler
func NewRiderHandler(riderUC riders.RiderUC) *RiderHandler {
	return &RiderHandler{
		riderUC: riderUC,
	}
}

// RegisterRoutes registers the rider endpoints on the group
func (h *RiderHandler) RegisterRoutes(g *echo.Group, authMW ...echo.MiddlewareFunc) {
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.GET("/logout", h.Logout, authMW...)
	g.GET("/profile", h.Profile, authMW...)
}

// Register handles rider registration requests
func (h *RiderHandler) Register(c echo.Context) error {
	var req models.RegisterRiderRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" || req.Password == "" || req.FirstName == "" {
		return utils.BadRequestResponse(c, "firstname, email and password are required")
	}

	resp, err := h.riderUC.Register(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, riders.ErrEmailTaken) {
			return utils.ConflictResponse(c, "Email already registered")
		}
		logger.Error("Failed to register rider",
			logger.String("email", req.Email),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to register rider")
	}

	setTokenCookie(c, resp.Token, resp.ExpiresAt)
	return utils.SuccessResponse(c, http.StatusCreated, "Rider registered successfully", resp)
}

// Login handles rider login requests
func (h *RiderHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.riderUC.Login(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, riders.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, "Invalid email or password")
		}
		logger.Error("Failed to login rider",
			logger.String("email", req.Email),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to login")
	}

	setTokenCookie(c, resp.Token, resp.ExpiresAt)
	return utils.SuccessResponse(c, http.StatusOK, "Logged in successfully", resp)
}

// Logout revokes the presented token and clears the cookie
func (h *RiderHandler) Logout(c echo.Context) error {
	token := middleware.ExtractToken(c)
	if token == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.riderUC.Logout(c.Request().Context(), token); err != nil {
		logger.Error("Failed to logout rider", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to logout")
	}

	clearTokenCookie(c)
	return utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}

// Profile returns the authenticated rider's account
func (h *RiderHandler) Profile(c echo.Context) error {
	riderID, _ := c.Get("user_id").(string)
	if riderID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	rider, err := h.riderUC.GetProfile(c.Request().Context(), riderID)
	if err != nil {
		if errors.Is(err, riders.ErrNotFound) {
			return utils.NotFoundResponse(c, "Rider not found")
		}
		logger.Error("Failed to fetch rider profile",
			logger.String("rider_id", riderID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to fetch profile")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", rider)
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
