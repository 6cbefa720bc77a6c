// Package http contains the HTTP handlers for the funding dashboard.
package http

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "fundlens/internal/errors"
	"fundlens/internal/services"
)

// DashboardHandler serves the rendered dashboard page and its JSON API
type DashboardHandler struct {
	service      *services.DashboardService
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service *services.DashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		service:      service,
		logger:       logger,
		errorHandler: apierrors.NewErrorHandler(logger, false),
	}
}

// RegisterRoutes registers the dashboard routes
func (h *DashboardHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.GetDashboard)
	r.Get("/api/dashboard", h.GetAnalyses)
}

// GetDashboard renders the full HTML dashboard
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Render to a buffer first so a late failure never produces a
	// half-written page.
	var buf bytes.Buffer
	if err := h.service.RenderDashboard(ctx, &buf); err != nil {
		h.logger.ErrorContext(ctx, "dashboard render failed",
			slog.String("error", err.Error()))
		h.errorHandler.HandleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// GetAnalyses returns the six aggregation results as JSON
func (h *DashboardHandler) GetAnalyses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	analyses, err := h.service.GetAnalyses(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "analyses failed",
			slog.String("error", err.Error()))
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, analyses)
}
