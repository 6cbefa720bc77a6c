package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fundlens/internal/dataset"
)

func healthRouter(store *dataset.Store) *chi.Mux {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))
	NewHealthHandler(store, testLogger()).RegisterRoutes(r)
	return r
}

func TestGetHealth(t *testing.T) {
	store := dataset.NewStoreFromRounds(testRounds(), testLogger())
	r := healthRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var status HealthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))

	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, 2, status.Dataset.Rounds)
	assert.Empty(t, status.Dataset.Error)
	assert.NotEmpty(t, status.Uptime)
}

func TestGetHealth_DatasetUnavailable(t *testing.T) {
	store := dataset.NewStore("missing.xlsx", testLogger())
	r := healthRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var status HealthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))

	assert.Equal(t, "degraded", status.Status)
	assert.Equal(t, "missing.xlsx", status.Dataset.Path)
	assert.Contains(t, status.Dataset.Error, "missing.xlsx")
	assert.Zero(t, status.Dataset.Rounds)
}
