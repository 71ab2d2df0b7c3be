package web

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joengan/passforge/internal/config"
)

func testService(t *testing.T) *Service {
	t.Helper()

	cfg := &config.Config{
		Webserver: config.Webserver{
			Port:         8080,
			URL:          "http://localhost:8080",
			ShutDownTime: 1,
		},
	}

	return New(cfg)
}

func get(t *testing.T, svc *Service, path string) int {
	t.Helper()

	resp, err := svc.App.Test(httptest.NewRequest(fiber.MethodGet, path, nil), 10000)
	require.NoError(t, err)

	defer resp.Body.Close()

	return resp.StatusCode
}

func TestCheckAlive(t *testing.T) {
	svc := testService(t)

	assert.Equal(t, fiber.StatusOK, get(t, svc, CheckAlivePath))
}

func TestCheckAlive_FailsWhileDraining(t *testing.T) {
	svc := testService(t)
	svc.alive.Store(false)

	assert.Equal(t, fiber.StatusServiceUnavailable, get(t, svc, CheckAlivePath))
}

func TestMetricsRoute(t *testing.T) {
	svc := testService(t)

	assert.Equal(t, fiber.StatusOK, get(t, svc, MetricsPath))
}

func TestUnknownRoute(t *testing.T) {
	svc := testService(t)

	assert.Equal(t, fiber.StatusNotFound, get(t, svc, "/nonexistent"))
}
