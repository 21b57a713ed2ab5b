package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func serveSystem(h *SystemHandler, path string) *httptest.ResponseRecorder {
	r := gin.New()
	r.GET("/health", h.Health)
	r.GET("/system/ping", h.Ping)
	r.GET("/system/info", h.GetSystemInfo)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestSystemHandler_Health(t *testing.T) {
	ok := pingerFunc(func(context.Context) error { return nil })
	down := pingerFunc(func(context.Context) error { return errors.New("connection refused") })

	t.Run("all healthy", func(t *testing.T) {
		w := serveSystem(NewSystemHandler("receiving", "test", map[string]Pinger{"database": ok}), "/health")
		require.Equal(t, http.StatusOK, w.Code)
		var health HealthResponse
		decode(t, w, &health)
		assert.Equal(t, "healthy", health.Status)
		assert.Equal(t, map[string]string{"database": "ok"}, health.Checks)
	})

	t.Run("failing dependency", func(t *testing.T) {
		h := NewSystemHandler("receiving", "test", map[string]Pinger{"database": ok, "redis": down})
		w := serveSystem(h, "/health")
		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		var health HealthResponse
		env := decode(t, w, &health)
		assert.False(t, env.Success)
		assert.Equal(t, "unhealthy", health.Status)
		assert.Equal(t, "connection refused", health.Checks["redis"])
		assert.Equal(t, "ok", health.Checks["database"])
	})
}

func TestSystemHandler_InfoAndPing(t *testing.T) {
	h := NewSystemHandler("receiving", "1.2.3", nil)

	w := serveSystem(h, "/system/info")
	require.Equal(t, http.StatusOK, w.Code)
	var info SystemInfoResponse
	decode(t, w, &info)
	assert.Equal(t, "receiving", info.Name)
	assert.Equal(t, "1.2.3", info.Version)
	assert.NotEmpty(t, info.GoVersion)

	w = serveSystem(h, "/system/ping")
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "pong", body["data"].(map[string]any)["message"])
}
