package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/skyhealth/kpi-gateway/internal/domain/analytics"
	"github.com/skyhealth/kpi-gateway/internal/httpx/response"
	"github.com/skyhealth/kpi-gateway/internal/middleware"
)

// AnalyticsService defines the interface for GA4 report retrieval
type AnalyticsService interface {
	Fetch(ctx context.Context, propertyID string, topLimit int) (*analytics.Report, error)
}

// AnalyticsHandler handles HTTP requests for GA4 KPIs
type AnalyticsHandler struct {
	svc               AnalyticsService // nil when GA4 credentials are absent
	defaultPropertyID string
	logger            *slog.Logger
}

// NewAnalyticsHandler creates a new GA4 KPI handler
func NewAnalyticsHandler(svc AnalyticsService, defaultPropertyID string, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc, defaultPropertyID: defaultPropertyID, logger: logger}
}

// RegisterRoutes registers GA4 KPI routes
func (h *AnalyticsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/kpi/ga4", h.Get())
}

// Get handles GET /kpi/ga4
func (h *AnalyticsHandler) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.svc == nil {
			response.InternalError(w, "ga4_failed", "GA4 credentials are not configured")
			return
		}

		q := r.URL.Query()

		propertyID := q.Get("property_id")
		if propertyID == "" {
			propertyID = h.defaultPropertyID
		}
		if propertyID == "" {
			response.BadRequest(w, "missing_property_id", "property_id query parameter is required")
			return
		}

		topLimit, _ := strconv.Atoi(q.Get("top_limit"))

		report, err := h.svc.Fetch(r.Context(), propertyID, topLimit)
		if err != nil {
			h.logger.Error("GA4 report failed",
				"error", err,
				"property_id", propertyID,
				"request_id", middleware.GetRequestID(r.Context()),
			)
			response.InternalError(w, "ga4_failed", err.Error())
			return
		}

		response.OK(w, report)
	}
}
