package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"fundlens/internal/dataset"
)

// HealthHandler reports service and dataset readiness
type HealthHandler struct {
	store   *dataset.Store
	logger  *slog.Logger
	started time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store *dataset.Store, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		store:   store,
		logger:  logger,
		started: time.Now(),
	}
}

// RegisterRoutes registers the health routes
func (h *HealthHandler) RegisterRoutes(r chi.Router) {
	r.Get("/api/health", h.GetHealth)
}

// HealthStatus is the health endpoint response body
type HealthStatus struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Dataset struct {
		Path   string `json:"path"`
		Rounds int    `json:"rounds"`
		Error  string `json:"error,omitempty"`
	} `json:"dataset"`
}

// GetHealth reports whether the service and its dataset are usable.
// A dataset that cannot load degrades the service to 503.
func (h *HealthHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	status := HealthStatus{
		Status: "healthy",
		Uptime: time.Since(h.started).Round(time.Second).String(),
	}
	status.Dataset.Path = h.store.Path()

	rounds, err := h.store.Rounds()
	if err != nil {
		h.logger.WarnContext(r.Context(), "health check found dataset unavailable",
			slog.String("error", err.Error()))
		status.Status = "degraded"
		status.Dataset.Error = err.Error()
		render.Status(r, http.StatusServiceUnavailable)
		render.JSON(w, r, status)
		return
	}

	status.Dataset.Rounds = len(rounds)
	render.JSON(w, r, status)
}
