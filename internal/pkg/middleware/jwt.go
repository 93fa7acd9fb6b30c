package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/swiftcab/backend/internal/pkg/constants"
	"github.com/swiftcab/backend/internal/pkg/models"
)

// TokenBlacklist checks whether a token has been revoked by logout
type TokenBlacklist interface {
	Exists(ctx context.Context, key string) (bool, error)
}

// JWTMiddleware returns the configured JWT middleware. Tokens are accepted
// from the Authorization header or the token cookie, matching what the
// frontends send. Parsing goes through our own token func so the claims
// land on the context under user_id and role.
func JWTMiddleware(cfg *models.Config) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:Authorization:Bearer ,cookie:token",
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			token, err := jwt.Parse(auth, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return []byte(cfg.JWT.Secret), nil
			})
			if err != nil || !token.Valid {
				return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
			}

			if claims, ok := token.Claims.(jwt.MapClaims); ok {
				if userID, exists := claims["user_id"]; exists {
					c.Set("user_id", fmt.Sprintf("%v", userID))
				}
				if role, exists := claims["role"]; exists {
					c.Set("role", fmt.Sprintf("%v", role))
				}
			}
			return token, nil
		},
	})
}

// BlacklistMiddleware rejects tokens revoked by logout. It runs before the
// JWT middleware so revoked tokens never reach handlers.
func BlacklistMiddleware(blacklist TokenBlacklist) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := ExtractToken(c)
			if token == "" {
				return next(c)
			}

			revoked, err := blacklist.Exists(c.Request().Context(), fmt.Sprintf(constants.KeyTokenBlacklist, token))
			if err != nil {
				// Blacklist lookup failures must not lock users out
				return next(c)
			}
			if revoked {
				return echo.NewHTTPError(http.StatusUnauthorized, "Token has been revoked")
			}

			return next(c)
		}
	}
}

// ExtractToken pulls the raw JWT from the Authorization header or the
// token cookie; empty string when absent
func ExtractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie("token"); err == nil {
		return cookie.Value
	}
	return ""
}
