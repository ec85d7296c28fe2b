package server_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"lanchonete/internal/database"
	"lanchonete/internal/server"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenMemory(zaptest.NewLogger(t))
	require.NoError(t, err)
	return db
}

func decode(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestHealth(t *testing.T) {
	db := newTestDB(t)
	app := server.NewApp(db, zaptest.NewLogger(t), prometheus.NewRegistry())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", decode(t, resp)["status"])

	require.NoError(t, database.Close(db))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "unhealthy", decode(t, resp)["status"])
}

func TestMetricsEndpointExposesRequests(t *testing.T) {
	app := server.NewApp(newTestDB(t), zaptest.NewLogger(t), prometheus.NewRegistry())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/customers", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Contains(t, string(body), `http_requests_total{method="GET",route="/api/v1/customers`)
	assert.Contains(t, string(body), "http_request_duration_seconds_bucket")
}

func TestUnknownRouteUsesMessageBody(t *testing.T) {
	app := server.NewApp(newTestDB(t), zaptest.NewLogger(t), prometheus.NewRegistry())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.NotEmpty(t, decode(t, resp)["message"])
}

func TestRequestIDHeader(t *testing.T) {
	app := server.NewApp(newTestDB(t), zaptest.NewLogger(t), prometheus.NewRegistry())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}
