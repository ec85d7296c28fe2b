package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"lanchonete/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestIDAndLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	app := fiber.New()
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(zap.New(core)))
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })
	app.Get("/teapot", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot, "short and stout") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	requestID := resp.Header.Get(fiber.HeaderXRequestID)
	assert.Len(t, requestID, 36)

	req := httptest.NewRequest(http.MethodGet, "/teapot", nil)
	req.Header.Set(fiber.HeaderXRequestID, "given-id")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)
	assert.Equal(t, "given-id", resp.Header.Get(fiber.HeaderXRequestID))

	entries := logs.FilterMessage("HTTP Request").All()
	require.Len(t, entries, 2)
	first := entries[0].ContextMap()
	assert.Equal(t, requestID, first["request_id"])
	assert.Equal(t, int64(http.StatusOK), first["status"])
	assert.Equal(t, "/ping", first["path"])
	second := entries[1].ContextMap()
	assert.Equal(t, "given-id", second["request_id"])
	assert.Equal(t, int64(fiber.StatusTeapot), second["status"])
}

func TestMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := middleware.NewMetrics(registry)

	app := fiber.New()
	app.Use(metrics.Middleware())
	app.Get("/metrics", metrics.Handler())
	app.Get("/items/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	for _, path := range []string{"/items/1", "/items/2"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	}

	families, err := registry.Gather()
	require.NoError(t, err)
	var requests *dto.MetricFamily
	for _, f := range families {
		if f.GetName() == "http_requests_total" {
			requests = f
		}
	}
	require.NotNil(t, requests)
	require.Len(t, requests.GetMetric(), 1)
	labels := map[string]string{}
	for _, l := range requests.GetMetric()[0].GetLabel() {
		labels[l.GetName()] = l.GetValue()
	}
	assert.Equal(t, map[string]string{"method": "GET", "route": "/items/:id", "status": "204"}, labels)
	assert.Equal(t, float64(2), requests.GetMetric()[0].GetCounter().GetValue())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMetricsKeepLabelsAcrossRequests(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := middleware.NewMetrics(registry)

	app := fiber.New()
	app.Use(metrics.Middleware())
	app.All("/items/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodGet} {
		resp, err := app.Test(httptest.NewRequest(method, "/items/1", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	}

	families, err := registry.Gather()
	require.NoError(t, err)
	counts := map[string]float64{}
	for _, f := range families {
		if f.GetName() != "http_requests_total" {
			continue
		}
		for _, m := range f.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "method" {
					counts[l.GetValue()] += m.GetCounter().GetValue()
				}
			}
		}
	}
	assert.Equal(t, map[string]float64{"GET": 2, "PUT": 1, "DELETE": 1}, counts)
}

func TestLoggerKeepsFieldsAcrossRequests(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	app := fiber.New()
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(zap.New(core)))
	app.All("/*", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	sent := []struct{ method, path string }{
		{http.MethodGet, "/a-rather-long-path"},
		{http.MethodDelete, "/short"},
		{http.MethodPut, "/x"},
	}
	for _, s := range sent {
		resp, err := app.Test(httptest.NewRequest(s.method, s.path, nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
	}

	entries := logs.FilterMessage("HTTP Request").All()
	require.Len(t, entries, len(sent))
	for i, s := range sent {
		fields := entries[i].ContextMap()
		assert.Equal(t, s.method, fields["method"])
		assert.Equal(t, s.path, fields["path"])
		assert.Len(t, fields["request_id"], 36)
	}
}
