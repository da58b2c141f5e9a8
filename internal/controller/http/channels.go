package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/skyhealth/kpi-gateway/internal/domain/channels"
	"github.com/skyhealth/kpi-gateway/internal/httpx/response"
)

// ChannelsService defines the interface for channel stats retrieval
type ChannelsService interface {
	Stats(ctx context.Context, in channels.Input) *channels.Result
}

// ChannelsHandler handles HTTP requests for per-channel KPIs
type ChannelsHandler struct {
	svc ChannelsService
}

// NewChannelsHandler creates a new channels KPI handler
func NewChannelsHandler(svc ChannelsService) *ChannelsHandler {
	return &ChannelsHandler{svc: svc}
}

// RegisterRoutes registers channel KPI routes
func (h *ChannelsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/kpi/channels", h.Get())
}

// Get handles GET /kpi/channels. Platforms without credentials or without
// an identifier in the query are skipped; per-platform failures land in
// the errors map of the response.
func (h *ChannelsHandler) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		result := h.svc.Stats(r.Context(), channels.Input{
			YouTubeID:  q.Get("youtube"),
			LinkedInID: q.Get("linkedin"),
			TikTokID:   q.Get("tiktok"),
		})

		response.OK(w, result)
	}
}
