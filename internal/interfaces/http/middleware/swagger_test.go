package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newSwaggerRouter(cfg SwaggerConfig) *gin.Engine {
	r := gin.New()
	r.GET("/swagger/*any", SwaggerProtection(cfg), func(c *gin.Context) {
		c.String(http.StatusOK, "docs")
	})
	return r
}

func TestSwaggerProtection(t *testing.T) {
	tests := []struct {
		name       string
		cfg        SwaggerConfig
		remoteAddr string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "disabled",
			cfg:        SwaggerConfig{Enabled: false},
			remoteAddr: "127.0.0.1:40000",
			wantStatus: http.StatusNotFound,
			wantBody:   "ERR_NOT_FOUND",
		},
		{
			name:       "enabled without restrictions",
			cfg:        SwaggerConfig{Enabled: true},
			remoteAddr: "203.0.113.7:40000",
			wantStatus: http.StatusOK,
			wantBody:   "docs",
		},
		{
			name:       "exact ip allowed",
			cfg:        SwaggerConfig{Enabled: true, AllowedIPs: []string{"127.0.0.1"}},
			remoteAddr: "127.0.0.1:40000",
			wantStatus: http.StatusOK,
			wantBody:   "docs",
		},
		{
			name:       "cidr allowed",
			cfg:        SwaggerConfig{Enabled: true, AllowedIPs: []string{"10.0.0.0/8"}},
			remoteAddr: "10.20.30.40:40000",
			wantStatus: http.StatusOK,
			wantBody:   "docs",
		},
		{
			name:       "outside allowlist",
			cfg:        SwaggerConfig{Enabled: true, AllowedIPs: []string{"10.0.0.0/8", "127.0.0.1"}},
			remoteAddr: "203.0.113.7:40000",
			wantStatus: http.StatusForbidden,
			wantBody:   "ERR_FORBIDDEN",
		},
		{
			name:       "malformed entries match nothing",
			cfg:        SwaggerConfig{Enabled: true, AllowedIPs: []string{"not-an-ip", "10.0.0.0/99"}},
			remoteAddr: "10.0.0.1:40000",
			wantStatus: http.StatusForbidden,
			wantBody:   "ERR_FORBIDDEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
			req.RemoteAddr = tt.remoteAddr
			w := httptest.NewRecorder()

			newSwaggerRouter(tt.cfg).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}
