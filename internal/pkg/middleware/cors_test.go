package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOriginAllowlist(t *testing.T) {
	allow := NewOriginAllowlist([]string{"https://app.swiftcab.io"})

	testCases := []struct {
		name    string
		origin  string
		allowed bool
	}{
		{name: "Local dev frontend", origin: "http://localhost:5173", allowed: true},
		{name: "Loopback dev frontend", origin: "http://127.0.0.1:5173", allowed: true},
		{name: "Configured origin", origin: "https://app.swiftcab.io", allowed: true},
		{name: "Preview deployment", origin: "https://swiftcab-pr-42.vercel.app", allowed: true},
		{name: "Plain http deployment", origin: "http://staging.vercel.app", allowed: true},
		{name: "No origin header", origin: "", allowed: true},
		{name: "Unknown origin", origin: "https://evil.example.com", allowed: false},
		{name: "Deployment-ish suffix on another host", origin: "https://vercel.app.evil.com", allowed: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, allow.Allowed(tc.origin))
		})
	}
}

func TestCheckOriginSharesAllowlist(t *testing.T) {
	allow := NewOriginAllowlist(nil)

	req := httptest.NewRequest("GET", "/socket", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	assert.True(t, allow.CheckOrigin(req))

	req.Header.Set("Origin", "https://evil.example.com")
	assert.False(t, allow.CheckOrigin(req))
}
