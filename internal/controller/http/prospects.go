package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/skyhealth/kpi-gateway/internal/domain/prospects"
	"github.com/skyhealth/kpi-gateway/internal/httpx/response"
)

// ProspectsHandler serves the static demo prospects listing
type ProspectsHandler struct {
	defaultLimit int
}

// NewProspectsHandler creates a new prospects handler
func NewProspectsHandler(defaultLimit int) *ProspectsHandler {
	return &ProspectsHandler{defaultLimit: defaultLimit}
}

// RegisterRoutes registers prospects routes
func (h *ProspectsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/prospects", h.List())
}

// List handles GET /prospects
func (h *ProspectsHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
		if err != nil || limit <= 0 {
			limit = h.defaultLimit
		}

		response.OK(w, prospects.Sample(limit))
	}
}
