package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApplication(t *testing.T) {
	app, err := NewApplication()
	require.NoError(t, err)

	require.NotNil(t, app.Config)
	require.NotNil(t, app.Router)
	require.NotNil(t, app.Server)
	require.NotNil(t, app.Store)
	require.NotNil(t, app.Dashboard)
	require.NotNil(t, app.Logger)

	assert.Equal(t, ":8080", app.Server.Addr)
}

func TestRouter_HealthDegradedWithoutDataset(t *testing.T) {
	app, err := NewApplication()
	require.NoError(t, err)

	// No workbook exists at the default path in a test checkout, so the
	// health endpoint reports the dataset as unavailable.
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "degraded")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouter_UnknownRoute(t *testing.T) {
	app, err := NewApplication()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_SecurityHeaders(t *testing.T) {
	app, err := NewApplication()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}
