package middleware

import (
	"net/http"
	"regexp"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// defaultOrigins are the local development frontends always allowed
var defaultOrigins = []string{
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

// deployPattern matches preview/production deployments on the hosting platform
var deployPattern = regexp.MustCompile(`^https?://.*\.vercel\.app$`)

// OriginAllowlist decides which origins may reach the HTTP API and the
// WebSocket endpoint. Both transports share one list.
type OriginAllowlist struct {
	origins map[string]struct{}
}

// NewOriginAllowlist builds the allow-list from the defaults plus any
// configured frontend origins
func NewOriginAllowlist(extra []string) *OriginAllowlist {
	origins := make(map[string]struct{}, len(defaultOrigins)+len(extra))
	for _, o := range defaultOrigins {
		origins[o] = struct{}{}
	}
	for _, o := range extra {
		origins[o] = struct{}{}
	}
	return &OriginAllowlist{origins: origins}
}

// Allowed reports whether the origin may connect. Requests without an
// Origin header (same-origin, curl) are allowed.
func (a *OriginAllowlist) Allowed(origin string) bool {
	if origin == "" {
		return true
	}
	if _, ok := a.origins[origin]; ok {
		return true
	}
	return deployPattern.MatchString(origin)
}

// CheckOrigin adapts the allow-list for a WebSocket upgrader
func (a *OriginAllowlist) CheckOrigin(r *http.Request) bool {
	return a.Allowed(r.Header.Get("Origin"))
}

// CORSMiddleware creates CORS middleware backed by the shared allow-list
func CORSMiddleware(allow *OriginAllowlist) echo.MiddlewareFunc {
	return echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOriginFunc: func(origin string) (bool, error) {
			return allow.Allowed(origin), nil
		},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	})
}
